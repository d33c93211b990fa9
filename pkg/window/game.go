// Package window hosts a particle field in a desktop window with ebiten.
package window

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/field"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/fieldpb"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/ui"
)

var (
	followerColor = color.RGBA{R: 180, G: 210, B: 255, A: 200}
	spriteColor   = color.RGBA{R: 210, G: 200, B: 180, A: 160}
)

// ebitenCanvas draws field particles onto the window.
type ebitenCanvas struct {
	dst *ebiten.Image
	bg  color.Color
}

func (c *ebitenCanvas) Clear() { c.dst.Fill(c.bg) }

func (c *ebitenCanvas) FillCircle(x, y, r float64, clr color.Color) {
	vector.FillCircle(c.dst, float32(x), float32(y), float32(r), clr, true)
}

// Game is the ebiten window host of a field. The field itself runs in the
// Host's actor; Game turns cursor state into input port calls and draws the
// snapshots the actor pushes back.
type Game struct {
	Host   *simulation.Host
	logger *zap.Logger
	cfg    *simulation.GameConfig

	// applied is the field config last sent to the actor. Game is its only
	// writer; file reloads arrive through Reload.
	applied   field.Config
	reloads   chan field.Config
	lastState *fieldpb.Snapshot
	particles []field.Particle
	canvas    *ebitenCanvas
	drawn     int

	follower *behavior.Follower
	scatter  *behavior.Scatter

	width, height int
	scale         float64
	inside        bool
	cursor        geometry.Vector2D

	// UI Controls
	panel *ui.UIPanel

	widgetRepulsionRadius *ui.Slider
	widgetRepulsionForce  *ui.Slider
	widgetMaxSpeed        *ui.Slider
	widgetParticleCount   *ui.Slider
	widgetMaxRadius       *ui.Slider
	widgetShowFollower    *ui.Checkbox
	widgetScatter         *ui.Checkbox
	rebuildRequested      bool

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// NewGame wires a window host to a started Host.
func NewGame(cfg *simulation.GameConfig, host *simulation.Host, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		Host:      host,
		logger:    logger,
		cfg:       cfg,
		applied:   cfg.Field,
		reloads:   make(chan field.Config, 1),
		lastState: &fieldpb.Snapshot{},
		canvas:    &ebitenCanvas{bg: cfg.Background},
		follower: behavior.NewFollower(cfg.Follower.Ease,
			geometry.NewVector(cfg.Follower.OffsetX, cfg.Follower.OffsetY)),
		scatter: behavior.NewScatter(cfg.Scatter.ScatterSettings, simulation.NewRand(cfg.Seed)),
	}

	panel := ui.NewUIPanel(10, 10, 240, 420)
	panel.Title = "Snow field (Tab to hide)"
	panel.Hidden = !cfg.ShowPanel

	panel.AddSection("Pointer")
	g.widgetRepulsionRadius = panel.AddSlider("Repulsion radius", 5, 150, cfg.Field.RepulsionRadius)
	g.widgetRepulsionForce = panel.AddSlider("Repulsion force", 0.01, 2, cfg.Field.RepulsionForce)
	g.widgetMaxSpeed = panel.AddSlider("Max speed", 0.1, 6, cfg.Field.MaxSpeed)

	panel.AddSection("Population")
	g.widgetParticleCount = panel.AddSlider("Particles", 50, 5000, float64(cfg.Field.ParticleCount))
	g.widgetParticleCount.Step = 50
	g.widgetMaxRadius = panel.AddSlider("Max radius", 1, 8, cfg.Field.MaxRadius)
	panel.AddButton("Reset field", func() { g.rebuildRequested = true })

	panel.AddSection("Layers")
	g.widgetShowFollower = panel.AddCheckbox("Show follower", cfg.Follower.Enabled)
	g.widgetScatter = panel.AddCheckbox("Scatter", cfg.Scatter.Enabled)

	g.panel = panel
	return g
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.panel.Toggle()
	}

	// 1. Config: file reloads first, then panel edits on top of them
	if err := g.applyReload(); err != nil {
		g.logger.Warn("reloaded field config rejected", zap.Error(err))
	}
	g.panel.Update()
	if err := g.applyPanel(); err != nil {
		g.logger.Warn("panel change rejected", zap.Error(err))
	}

	// 2. Pointer transitions, then the cosmetic layers
	g.trackPointer()
	if g.cfg.Follower.Enabled {
		g.follower.Step()
	}
	if g.cfg.Scatter.Enabled {
		g.scatter.Step(g.cursor, g.inside)
	}

	// 3. Retrieve Latest State (Non-blocking), then trigger the next step
	g.lastState = g.Host.Latest()
	if err := g.Host.Tick(frameDuration()); err != nil {
		return fmt.Errorf("tick field: %w", err)
	}
	return nil
}

func frameDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// trackPointer turns the polled cursor into enter/move/leave events.
func (g *Game) trackPointer() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	inside := ebiten.IsFocused() && mx >= 0 && my >= 0 && mx < g.width && my < g.height

	switch {
	case inside && !g.inside:
		g.Host.OnEnter()
		g.Host.OnMove(x, y)
		g.follower.Move(x, y)
	case inside && (x != g.cursor.X || y != g.cursor.Y):
		// Dragging a slider should not stir the flakes under the panel.
		if !g.panel.Contains(x, y) {
			g.Host.OnMove(x, y)
		}
		g.follower.Move(x, y)
	case !inside && g.inside:
		g.Host.OnLeave()
		g.follower.Leave()
	}
	g.inside = inside
	if inside {
		g.cursor = geometry.NewVector(x, y)
	}
}

// Reload hands a reloaded field config to the frame loop. It may be called
// from any goroutine; a reload still pending is replaced by the newer one.
func (g *Game) Reload(cfg field.Config) {
	for {
		select {
		case g.reloads <- cfg:
			return
		default:
			select {
			case <-g.reloads:
			default:
			}
		}
	}
}

// applyReload sends a pending reload to the field and moves the sliders to
// match, so later panel edits build on the reloaded values.
func (g *Game) applyReload() error {
	var cfg field.Config
	select {
	case cfg = <-g.reloads:
	default:
		return nil
	}
	if err := g.Host.Reconfigure(cfg); err != nil {
		return err
	}
	g.applied = cfg
	g.widgetRepulsionRadius.SetValue(cfg.RepulsionRadius)
	g.widgetRepulsionForce.SetValue(cfg.RepulsionForce)
	g.widgetMaxSpeed.SetValue(cfg.MaxSpeed)
	g.widgetParticleCount.SetValue(float64(cfg.ParticleCount))
	g.widgetMaxRadius.SetValue(cfg.MaxRadius)
	return nil
}

// applyPanel sends the knobs the user moved to the field. Population knobs
// only apply when the reset button is pressed, since they respawn every
// particle.
func (g *Game) applyPanel() error {
	if g.widgetShowFollower.Value && !g.cfg.Follower.Enabled {
		g.follower.Snap()
	}
	g.cfg.Follower.Enabled = g.widgetShowFollower.Value
	if g.widgetScatter.Value && !g.cfg.Scatter.Enabled && len(g.scatter.Sprites) == 0 {
		g.scatter.Resize(float64(g.width), float64(g.height))
	}
	g.cfg.Scatter.Enabled = g.widgetScatter.Value

	next := g.applied
	changed := false
	if g.widgetRepulsionRadius.Changed() {
		next.RepulsionRadius = g.widgetRepulsionRadius.Value
		changed = true
	}
	if g.widgetRepulsionForce.Changed() {
		next.RepulsionForce = g.widgetRepulsionForce.Value
		changed = true
	}
	if g.widgetMaxSpeed.Changed() {
		next.MaxSpeed = g.widgetMaxSpeed.Value
		changed = true
	}

	rebuild := g.rebuildRequested
	g.rebuildRequested = false
	if rebuild {
		next.ParticleCount = int(g.widgetParticleCount.Value)
		next.MaxRadius = g.widgetMaxRadius.Value
	}
	if !changed && !rebuild {
		return nil
	}

	respawns := next.ParticleCount != g.applied.ParticleCount || next.MaxRadius != g.applied.MaxRadius
	if err := g.Host.Reconfigure(next); err != nil {
		return err
	}
	g.applied = next
	if rebuild && !respawns {
		return g.Host.Rebuild()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Particles from the last known snapshot
	g.canvas.dst = screen
	g.particles = simulation.ParticlesFromProto(g.particles, g.lastState)
	g.drawn = field.Render(g.canvas, g.particles, simulation.ExtentFromProto(g.lastState), field.DefaultFill)

	// 2. Cosmetic layers
	if g.cfg.Scatter.Enabled {
		for _, sp := range g.scatter.Sprites {
			drawSprite(screen, sp)
		}
	}
	if g.cfg.Follower.Enabled && g.follower.Visible {
		vector.StrokeCircle(screen,
			float32(g.follower.Pos.X), float32(g.follower.Pos.Y),
			float32(g.cfg.Follower.Radius), 1.5, followerColor, true)
	}

	// 3. Draw UI Panel
	g.panel.Draw(screen)

	// Display performance stats on the right side to avoid overlap with panel
	state := "drift"
	if g.lastState.GetResetting() {
		state = "reset"
	}
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nFlakes: %d/%d\nState:  %s\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.drawn, len(g.particles),
		state,
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, g.width-150, 10)
}

// drawSprite draws a scatter sprite as a short bar with rounded knobs.
func drawSprite(screen *ebiten.Image, sp behavior.Sprite) {
	half := sp.Size / 2
	dx, dy := math.Cos(sp.Angle)*half, math.Sin(sp.Angle)*half
	x0, y0 := float32(sp.Pos.X-dx), float32(sp.Pos.Y-dy)
	x1, y1 := float32(sp.Pos.X+dx), float32(sp.Pos.Y+dy)
	knob := float32(sp.Size / 8)
	vector.StrokeLine(screen, x0, y0, x1, y1, knob, spriteColor, true)
	vector.FillCircle(screen, x0, y0, knob, spriteColor, true)
	vector.FillCircle(screen, x1, y1, knob, spriteColor, true)
}

// Layout reports the window size as the field size, and resizes the field
// whenever the window or its device scale changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	if outsideWidth != g.width || outsideHeight != g.height || scale != g.scale {
		g.width, g.height, g.scale = outsideWidth, outsideHeight, scale
		if err := g.Host.Resize(float64(outsideWidth), float64(outsideHeight), scale); err != nil {
			g.logger.Warn("resize not delivered", zap.Error(err))
		}
		if g.cfg.Scatter.Enabled {
			g.scatter.Resize(float64(outsideWidth), float64(outsideHeight))
		} else {
			g.scatter.Sprites = nil
		}
		// The ring would otherwise sweep across the resized window.
		g.follower.Snap()
		g.panel.Height = math.Min(420, float64(outsideHeight)-20)
		g.logger.Debug("window resized",
			zap.Int("width", outsideWidth), zap.Int("height", outsideHeight), zap.Float64("scale", scale))
	}
	return outsideWidth, outsideHeight
}
