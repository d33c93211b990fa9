package field

import "github.com/lao-tseu-is-alive/go-snowfield/pkg/geometry"

// Particle is one simulated snow flake. Radius never changes after creation.
type Particle struct {
	Pos    geometry.Vector2D
	Vel    geometry.Vector2D
	Radius float64
}

// Extent is the geometry of the host surface. Particles live in the world
// rectangle, which extends the visible box by Margin on every side.
type Extent struct {
	Width  float64
	Height float64
	Margin float64
	// Scale is the device pixel ratio of the surface.
	Scale float64
}

// Empty reports whether the host has no usable area yet.
func (e Extent) Empty() bool {
	return e.Width <= 0 || e.Height <= 0
}

// Left, Right, Top and Bottom are the world bounds.
func (e Extent) Left() float64   { return -e.Margin }
func (e Extent) Right() float64  { return e.Width + e.Margin }
func (e Extent) Top() float64    { return -e.Margin }
func (e Extent) Bottom() float64 { return e.Height + e.Margin }

// Visible reports whether p lies in the on-screen box.
func (e Extent) Visible(p geometry.Vector2D) bool {
	return p.X >= 0 && p.X <= e.Width && p.Y >= 0 && p.Y <= e.Height
}

// Contains reports whether p lies in the world rectangle.
func (e Extent) Contains(p geometry.Vector2D) bool {
	return p.X >= e.Left() && p.X <= e.Right() && p.Y >= e.Top() && p.Y <= e.Bottom()
}

// State is the particle store: the live particles and, at the same index,
// the position each one was spawned at.
type State struct {
	Particles []Particle
	Origins   []geometry.Vector2D
}

// Len returns the number of particles.
func (s State) Len() int { return len(s.Particles) }
