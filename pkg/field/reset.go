package field

import (
	"math"
	"time"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/geometry"
)

// ResetState is the state of the Resetter.
type ResetState int

const (
	Idle ResetState = iota
	Resetting
)

// EaseOutQuart decelerates toward 1 as t goes from 0 to 1.
func EaseOutQuart(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return 1 - math.Pow(1-t, 4)
}

// Resetter eases particles back onto their origins after the pointer left.
type Resetter struct {
	state   ResetState
	elapsed time.Duration
	// start holds each particle's distance to its origin when the reset began.
	start []float64
}

// Active reports whether a reset is in progress.
func (r *Resetter) Active() bool { return r.state == Resetting }

// Progress is the elapsed fraction of the reset in [0, 1].
func (r *Resetter) Progress(duration time.Duration) float64 {
	if r.state != Resetting || duration <= 0 {
		return 0
	}
	return math.Min(1, float64(r.elapsed)/float64(duration))
}

// Begin starts a reset. It is a no-op while already resetting or when the
// store is empty or inconsistent.
func (r *Resetter) Begin(st State) bool {
	if r.state == Resetting || st.Len() == 0 || len(st.Origins) != st.Len() {
		return false
	}
	r.state = Resetting
	r.elapsed = 0
	r.start = r.start[:0]
	for i, p := range st.Particles {
		r.start = append(r.start, p.Pos.DistanceTo(st.Origins[i]))
	}
	return true
}

// Cancel abandons a reset in place. Particles keep their current position.
func (r *Resetter) Cancel() bool {
	if r.state != Resetting {
		return false
	}
	r.state = Idle
	r.elapsed = 0
	return true
}

// Step advances the reset by dt and reports whether it completed this frame.
func (r *Resetter) Step(st State, dt time.Duration, cfg Config) bool {
	if r.state != Resetting {
		return false
	}
	// The store was swapped under us by a resize; nothing left to ease.
	if len(r.start) != st.Len() {
		r.state = Idle
		return false
	}

	r.elapsed += dt
	progress := r.Progress(cfg.ResetDuration)
	envelope := EaseOutQuart(progress)

	for i := range st.Particles {
		p := &st.Particles[i]
		origin := st.Origins[i]

		p.Pos = p.Pos.Lerp(origin, cfg.ResetStep)

		// Never fall behind the eased envelope.
		allowed := (1 - envelope) * r.start[i]
		remaining := origin.Sub(p.Pos)
		if d := remaining.Len(); d > allowed && d > geometry.Epsilon {
			p.Pos = origin.Sub(remaining.Mul(allowed / d))
		}

		p.Vel = p.Vel.Mul(cfg.ResetVelocityDecay)
	}

	if progress < 1 {
		return false
	}
	for i := range st.Particles {
		st.Particles[i].Pos = st.Origins[i]
		st.Particles[i].Vel = geometry.Vector2D{}
	}
	r.state = Idle
	r.elapsed = 0
	return true
}
