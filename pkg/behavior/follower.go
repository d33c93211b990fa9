package behavior

import "github.com/lao-tseu-is-alive/go-snowfield/pkg/geometry"

// DefaultEase is the fraction of the remaining distance covered per frame.
const DefaultEase = 0.16

// Follower trails the pointer with an eased lag, like a lens that sticks to
// the cursor. It is hidden until the first Move and after every Leave.
type Follower struct {
	Pos     geometry.Vector2D
	Target  geometry.Vector2D
	Offset  geometry.Vector2D
	Ease    float64
	Visible bool
}

// NewFollower creates a hidden follower. Non-positive ease falls back to
// DefaultEase; ease above 1 is clamped.
func NewFollower(ease float64, offset geometry.Vector2D) *Follower {
	switch {
	case ease <= 0:
		ease = DefaultEase
	case ease > 1:
		ease = 1
	}
	return &Follower{Ease: ease, Offset: offset}
}

// Move sets the target. A hidden follower jumps straight onto it so it never
// sweeps in from where it was last seen.
func (f *Follower) Move(x, y float64) {
	f.Target = geometry.NewVector(x, y).Add(f.Offset)
	if !f.Visible {
		f.Pos = f.Target
		f.Visible = true
	}
}

// Leave hides the follower in place.
func (f *Follower) Leave() {
	f.Visible = false
}

// Snap jumps to the target without easing.
func (f *Follower) Snap() {
	f.Pos = f.Target
}

// Step eases the position toward the target by one frame.
func (f *Follower) Step() {
	if !f.Visible {
		return
	}
	f.Pos = f.Pos.Lerp(f.Target, f.Ease)
}
