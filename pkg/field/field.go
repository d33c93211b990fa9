// Package field simulates a pointer-reactive particle field: flakes drift in
// a world slightly larger than the visible box, scatter away from the cursor,
// and ease back to where they spawned once the cursor leaves.
//
// A Field is not safe for concurrent use. Hosts call the input port methods,
// Resize and Tick from a single goroutine (or a single actor), and the field
// never schedules anything on its own.
package field

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/geometry"
)

// InputPort is how a host feeds pointer events to a simulation.
type InputPort interface {
	OnMove(x, y float64)
	OnEnter()
	OnLeave()
}

// Field owns one particle store and everything that mutates it.
type Field struct {
	cfg     Config
	ext     Extent
	state   State
	pointer Pointer
	reset   Resetter
	rng     *rand.Rand
	fill    color.Color

	// lastMoves is pointer.Moves as seen by the previous physics step.
	lastMoves uint64
	frame     uint64
}

var _ InputPort = (*Field)(nil)

// Option configures a Field.
type Option func(*Field)

// WithRand makes the field draw from rng, for reproducible runs.
func WithRand(rng *rand.Rand) Option {
	return func(f *Field) { f.rng = rng }
}

// WithFill overrides the particle colour.
func WithFill(c color.Color) Option {
	return func(f *Field) { f.fill = c }
}

// New creates a field with no particles. The first Resize with a non-empty
// size populates it.
func New(cfg Config, opts ...Option) *Field {
	f := &Field{
		cfg:  cfg,
		fill: DefaultFill,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	f.ext.Margin = cfg.WorldMargin
	return f
}

// OnMove records a pointer position in host-local pixels. It interrupts a
// reset in progress.
func (f *Field) OnMove(x, y float64) {
	f.pointer.move(x, y)
	f.reset.Cancel()
}

// OnEnter marks the pointer as inside the host and interrupts a reset.
func (f *Field) OnEnter() {
	f.pointer.enter()
	f.reset.Cancel()
}

// OnLeave marks the pointer as outside and starts easing particles home.
func (f *Field) OnLeave() {
	f.pointer.leave()
	f.reset.Begin(f.state)
}

// Resize rebuilds the whole field when the host geometry changed. It
// reports whether a new set of particles was spawned. A zero-sized host
// leaves the field empty until a later resize.
func (f *Field) Resize(width, height, scale float64) bool {
	next := Extent{Width: width, Height: height, Margin: f.cfg.WorldMargin, Scale: scale}
	if next == f.ext && (f.state.Len() > 0 || next.Empty()) {
		return false
	}
	f.rebuild(next)
	return f.state.Len() > 0
}

// Reconfigure swaps the tuning. Population or spawn changes rebuild the
// field; everything else applies from the next frame.
func (f *Field) Reconfigure(cfg Config) bool {
	rebuild := f.cfg.geometryChanged(cfg)
	f.cfg = cfg
	if !rebuild {
		return false
	}
	next := f.ext
	next.Margin = cfg.WorldMargin
	f.rebuild(next)
	return true
}

// Rebuild throws the current particles away and spawns a new set for the
// current geometry.
func (f *Field) Rebuild() {
	f.rebuild(f.ext)
}

func (f *Field) rebuild(ext Extent) {
	f.ext = ext
	f.state = InitField(ext, f.cfg, f.rng)
	f.reset.Cancel()
}

// Tick runs one frame: a reset step while resetting, a physics step
// otherwise. dt only drives the reset timeline; physics is per frame.
func (f *Field) Tick(dt time.Duration) {
	f.frame++
	if f.reset.Active() {
		f.reset.Step(f.state, dt, f.cfg)
		return
	}
	moved := f.pointer.Moves != f.lastMoves
	f.lastMoves = f.pointer.Moves
	step(f.state.Particles, newFrameInput(&f.pointer, moved, f.ext, f.cfg), f.ext, f.cfg, f.rng)
}

// Draw renders the visible particles onto c.
func (f *Field) Draw(c Canvas) int {
	return Render(c, f.state.Particles, f.ext, f.fill)
}

// Config returns the active tuning.
func (f *Field) Config() Config { return f.cfg }

// Extent returns the current host geometry.
func (f *Field) Extent() Extent { return f.ext }

// Particles exposes the live particles. Callers must not keep the slice
// across a Resize.
func (f *Field) Particles() []Particle { return f.state.Particles }

// Origins exposes the spawn positions, index-aligned with Particles.
func (f *Field) Origins() []geometry.Vector2D { return f.state.Origins }

// Pointer returns a copy of the pointer state.
func (f *Field) Pointer() Pointer { return f.pointer }

// Resetting reports whether particles are easing back to their origins.
func (f *Field) Resetting() bool { return f.reset.Active() }

// Frame is the number of ticks run so far.
func (f *Field) Frame() uint64 { return f.frame }
