package field

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/geometry"
)

const frame = 10 * time.Millisecond

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1024))
}

func newTestField(t *testing.T, count int) *Field {
	t.Helper()
	cfg := DefaultConfig()
	cfg.ParticleCount = count
	f := New(cfg, WithRand(newTestRand()))
	require.True(t, f.Resize(800, 600, 1))
	require.Len(t, f.Particles(), count)
	return f
}

// recordingCanvas remembers every draw call.
type recordingCanvas struct {
	clears  int
	circles []geometry.Vector2D
}

func (c *recordingCanvas) Clear() { c.clears++ }

func (c *recordingCanvas) FillCircle(x, y, _ float64, _ color.Color) {
	c.circles = append(c.circles, geometry.Vector2D{X: x, Y: y})
}

func TestInitField_EmptyHost(t *testing.T) {
	cfg := DefaultConfig()
	for _, ext := range []Extent{
		{Width: 0, Height: 600, Margin: 220},
		{Width: 800, Height: 0, Margin: 220},
		{Width: -1, Height: -1},
	} {
		st := InitField(ext, cfg, newTestRand())
		assert.Zero(t, st.Len(), "extent %+v", ext)
		assert.Empty(t, st.Origins)
	}
}

func TestInitField_PopulatesWorld(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ParticleCount = 2000
	cfg.MaxRadius = 4
	ext := Extent{Width: 400, Height: 300, Margin: 50}

	st := InitField(ext, cfg, newTestRand())
	require.Equal(t, 2000, st.Len())
	require.Len(t, st.Origins, 2000)

	offscreen := 0
	for i, p := range st.Particles {
		assert.True(t, ext.Contains(p.Pos), "particle %d at %v outside world", i, p.Pos)
		assert.GreaterOrEqual(t, p.Radius, 1.0)
		assert.LessOrEqual(t, p.Radius, 4.0)
		assert.LessOrEqual(t, math.Abs(p.Vel.X), cfg.InitialSpeed/2)
		assert.LessOrEqual(t, math.Abs(p.Vel.Y), cfg.InitialSpeed/2)
		assert.Equal(t, p.Pos, st.Origins[i])
		if !ext.Visible(p.Pos) {
			offscreen++
		}
	}
	// The world is 500x400 around a 400x300 box and a fifth of the flakes
	// are pushed into the margin bands, so well over a third start hidden.
	assert.Greater(t, offscreen, 2000/3)
}

func TestInitField_EdgeBands(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ParticleCount = 500
	cfg.EdgeSpawnChance = 1

	ext := Extent{Width: 400, Height: 300, Margin: 50}
	for i, p := range InitField(ext, cfg, newTestRand()).Particles {
		outside := p.Pos.X < 0 || p.Pos.X >= ext.Width || p.Pos.Y < 0 || p.Pos.Y >= ext.Height
		assert.True(t, outside, "particle %d at %v should start in an edge band", i, p.Pos)
	}

	// No margin means no band: flakes spread over the box instead of
	// piling up on its border lines.
	ext.Margin = 0
	for i, p := range InitField(ext, cfg, newTestRand()).Particles {
		onEdge := p.Pos.X == 0 || p.Pos.X == ext.Width || p.Pos.Y == 0 || p.Pos.Y == ext.Height
		assert.False(t, onEdge, "particle %d spawned on the border at %v", i, p.Pos)
		assert.True(t, ext.Visible(p.Pos))
	}
}

func TestInitField_OriginsAreIndependent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ParticleCount = 10
	st := InitField(Extent{Width: 100, Height: 100, Margin: 10}, cfg, newTestRand())

	want := st.Origins[3]
	st.Particles[3].Pos = geometry.Vector2D{X: -999, Y: -999}
	assert.Equal(t, want, st.Origins[3])
}

func TestField_ResizeReplacesEverything(t *testing.T) {
	f := newTestField(t, 150)
	before := append([]Particle(nil), f.Particles()...)
	oldBacking := &f.Particles()[0]

	assert.False(t, f.Resize(800, 600, 1), "same geometry must not rebuild")
	assert.True(t, f.Resize(1024, 768, 1))
	assert.Len(t, f.Particles(), 150)
	assert.Len(t, f.Origins(), 150)
	assert.NotSame(t, oldBacking, &f.Particles()[0])
	assert.NotEqual(t, before, f.Particles())

	// Pixel density alone is a new geometry.
	assert.True(t, f.Resize(1024, 768, 2))
	assert.Equal(t, 2.0, f.Extent().Scale)
}

func TestField_ZeroSizedHostRetries(t *testing.T) {
	f := New(DefaultConfig(), WithRand(newTestRand()))
	assert.False(t, f.Resize(0, 0, 1))
	assert.Empty(t, f.Particles())

	f.Tick(frame)
	f.OnLeave()
	assert.False(t, f.Resetting(), "an empty field has nothing to reset")

	assert.True(t, f.Resize(320, 200, 1))
	assert.Len(t, f.Particles(), DefaultConfig().ParticleCount)
}

func TestField_BoundaryContainment(t *testing.T) {
	f := newTestField(t, 300)
	ext := f.Extent()

	// Drag the pointer around hard enough to saturate the wake.
	for i := 0; i < 600; i++ {
		x := 400 + 380*math.Sin(float64(i)/7)
		y := 300 + 280*math.Cos(float64(i)/5)
		f.OnMove(x, y)
		f.Tick(frame)
		for j, p := range f.Particles() {
			require.True(t, ext.Contains(p.Pos), "frame %d particle %d escaped to %v", i, j, p.Pos)
		}
	}
}

func TestField_SpeedClamp(t *testing.T) {
	f := newTestField(t, 200)
	maxSpeed := f.Config().MaxSpeed

	for i := range f.Particles() {
		f.Particles()[i].Vel = geometry.Vector2D{X: 40, Y: -30}
	}
	for i := 0; i < 50; i++ {
		f.OnMove(float64(i*15), float64(i*11))
		f.Tick(frame)
		for j, p := range f.Particles() {
			require.LessOrEqual(t, p.Vel.Len(), maxSpeed+1e-9, "frame %d particle %d", i, j)
		}
	}
}

func TestField_RepulsionPushesAway(t *testing.T) {
	f := newTestField(t, 1)
	p := &f.Particles()[0]
	p.Pos = geometry.Vector2D{X: 55, Y: 52}
	p.Vel = geometry.Vector2D{}
	before := p.Vel

	f.OnMove(50, 50)
	f.Tick(frame)

	delta := f.Particles()[0].Vel.Sub(before)
	away := geometry.Vector2D{X: 55 - 50, Y: 52 - 50}
	assert.Greater(t, away.Dot(delta), 0.0)
}

func TestField_NoRepulsionOutsideRadiusOrPointer(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, geometry.Vector2D{}, repulsion(geometry.Vector2D{X: 100}, geometry.Vector2D{}, cfg))
	assert.Equal(t, geometry.Vector2D{}, repulsion(geometry.Vector2D{X: 30}, geometry.Vector2D{}, cfg))
}

func TestField_PointerOnTopOfParticleStaysFinite(t *testing.T) {
	f := newTestField(t, 1)
	f.Particles()[0].Pos = geometry.Vector2D{X: 200, Y: 200}

	f.OnMove(200, 200)
	for i := 0; i < 10; i++ {
		f.Tick(frame)
	}
	p := f.Particles()[0]
	assert.True(t, p.Pos.IsFinite())
	assert.True(t, p.Vel.IsFinite())
}

func TestField_WakeOnlyWhileMoving(t *testing.T) {
	cfg := DefaultConfig()
	ptr := Pointer{}
	ext := Extent{Width: 800, Height: 600, Margin: cfg.WorldMargin}

	ptr.move(100, 100)
	ptr.move(140, 100)
	in := newFrameInput(&ptr, true, ext, cfg)
	assert.InDelta(t, cfg.WakeForce, in.wake.X, 1e-12, "a 40px move saturates the cap")
	assert.Zero(t, in.wake.Y)
	assert.True(t, in.moving())

	rest := newFrameInput(&ptr, false, ext, cfg)
	assert.False(t, rest.moving(), "no new move event means no wake")
}

func TestField_EdgeDampingNearEdges(t *testing.T) {
	cfg := DefaultConfig()
	ext := Extent{Width: 800, Height: 600, Margin: cfg.WorldMargin}
	ptr := Pointer{}
	ptr.move(10, 300)

	in := newFrameInput(&ptr, false, ext, cfg)
	assert.True(t, in.nearEdgeX)
	assert.False(t, in.nearEdgeY)

	cfg.AmbientJitter = 0
	p := Particle{Pos: geometry.Vector2D{X: 400, Y: 300}, Vel: geometry.Vector2D{X: 0.1, Y: 0.1}, Radius: 1}
	stepParticle(&p, frameInput{pointer: in.pointer, inside: true, nearEdgeX: true}, ext, cfg, newTestRand())
	assert.InDelta(t, 0.1*cfg.IdleDampingX*cfg.EdgeDamping, p.Vel.X, 1e-12)
	assert.InDelta(t, 0.1*cfg.IdleDampingY, p.Vel.Y, 1e-12)
}

func TestField_ResetConvergence(t *testing.T) {
	f := newTestField(t, 200)
	origins := append([]geometry.Vector2D(nil), f.Origins()...)

	f.OnMove(400, 300)
	for i := 0; i < 120; i++ {
		f.OnMove(400+float64(i%20)*10, 300)
		f.Tick(frame)
	}
	f.OnLeave()
	require.True(t, f.Resetting())

	for elapsed := time.Duration(0); elapsed < f.Config().ResetDuration; elapsed += frame {
		f.Tick(frame)
	}

	assert.False(t, f.Resetting())
	for i, p := range f.Particles() {
		assert.Equal(t, origins[i], p.Pos, "particle %d", i)
		assert.Equal(t, geometry.Vector2D{}, p.Vel, "particle %d", i)
	}
}

func TestField_ResetDisplacedParticle(t *testing.T) {
	f := newTestField(t, 1)
	origin := f.Origins()[0]
	f.Particles()[0].Pos = origin.Add(geometry.Vector2D{X: 60, Y: 80})
	f.Particles()[0].Vel = geometry.Vector2D{X: 1, Y: 1}

	f.OnMove(10, 10)
	f.OnLeave()
	var prev float64 = 100
	for elapsed := time.Duration(0); elapsed < f.Config().ResetDuration; elapsed += frame {
		f.Tick(frame)
		d := f.Particles()[0].Pos.DistanceTo(origin)
		require.LessOrEqual(t, d, prev+1e-9, "reset must never move away from the origin")
		prev = d
	}
	p := f.Particles()[0]
	assert.LessOrEqual(t, p.Pos.DistanceTo(origin), 1.0)
	assert.InDelta(t, 0, p.Vel.Len(), 1e-9)
}

func TestField_ResetInterruptedByPointer(t *testing.T) {
	f := newTestField(t, 50)
	f.OnMove(100, 100)
	f.Tick(frame)
	f.OnLeave()
	for i := 0; i < 20; i++ {
		f.Tick(frame)
	}
	require.True(t, f.Resetting())

	snapshot := append([]Particle(nil), f.Particles()...)
	f.OnMove(120, 100)
	assert.False(t, f.Resetting())
	assert.Equal(t, snapshot, f.Particles(), "interrupting must leave particles where they are")

	// Normal physics resumes: the next frame is not a reset step.
	f.Tick(frame)
	assert.False(t, f.Resetting())
}

func TestField_EnterCancelsReset(t *testing.T) {
	f := newTestField(t, 10)
	f.OnLeave()
	require.True(t, f.Resetting())
	f.OnEnter()
	assert.False(t, f.Resetting())
	assert.True(t, f.Pointer().Inside)
}

func TestField_ResizeDuringResetAbandonsIt(t *testing.T) {
	f := newTestField(t, 10)
	f.OnLeave()
	require.True(t, f.Resetting())
	f.Resize(640, 480, 1)
	assert.False(t, f.Resetting())
	f.Tick(frame)
	assert.Len(t, f.Particles(), 10)
}

func TestField_ReconfigureRebuildsOnGeometryOnly(t *testing.T) {
	f := newTestField(t, 100)
	first := &f.Particles()[0]

	cfg := f.Config()
	cfg.RepulsionForce = 0.8
	assert.False(t, f.Reconfigure(cfg))
	assert.Same(t, first, &f.Particles()[0])
	assert.Equal(t, 0.8, f.Config().RepulsionForce)

	cfg.ParticleCount = 40
	assert.True(t, f.Reconfigure(cfg))
	assert.Len(t, f.Particles(), 40)
	assert.Len(t, f.Origins(), 40)
}

func TestRender_SkipsHiddenParticles(t *testing.T) {
	ext := Extent{Width: 100, Height: 100, Margin: 50}
	particles := []Particle{
		{Pos: geometry.Vector2D{X: 50, Y: 50}, Radius: 2},
		{Pos: geometry.Vector2D{X: -10, Y: 50}, Radius: 2},
		{Pos: geometry.Vector2D{X: 50, Y: 120}, Radius: 2},
		{Pos: geometry.Vector2D{X: 100, Y: 0}, Radius: 2},
	}
	c := &recordingCanvas{}

	drawn := Render(c, particles, ext, DefaultFill)
	assert.Equal(t, 2, drawn)
	assert.Equal(t, 1, c.clears)
	assert.Equal(t, []geometry.Vector2D{{X: 50, Y: 50}, {X: 100, Y: 0}}, c.circles)
}

func TestField_DrawCountsVisible(t *testing.T) {
	f := newTestField(t, 500)
	c := &recordingCanvas{}
	drawn := f.Draw(c)

	visible := 0
	for _, p := range f.Particles() {
		if f.Extent().Visible(p.Pos) {
			visible++
		}
	}
	assert.Equal(t, visible, drawn)
	assert.Len(t, c.circles, visible)
}

func TestEaseOutQuart(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutQuart(0))
	assert.Equal(t, 1.0, EaseOutQuart(1))
	assert.Equal(t, 1.0, EaseOutQuart(3))
	assert.InDelta(t, 0.9375, EaseOutQuart(0.5), 1e-12)
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.MaxSpeed = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.WorldMargin = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.MovingDamping = 1.2
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
