package field

import "github.com/lao-tseu-is-alive/go-snowfield/pkg/geometry"

// Pointer is the last known cursor state relative to the host. Only the
// input port methods of Field write to it; the physics step reads it.
type Pointer struct {
	Position    geometry.Vector2D
	Previous    geometry.Vector2D
	HasPosition bool
	HasPrevious bool
	Inside      bool
	// Moves counts move events; the physics step compares it between frames
	// to tell a moving cursor from a resting one.
	Moves uint64
}

func (p *Pointer) move(x, y float64) {
	p.Previous, p.HasPrevious = p.Position, p.HasPosition
	p.Position, p.HasPosition = geometry.Vector2D{X: x, Y: y}, true
	p.Inside = true
	p.Moves++
}

func (p *Pointer) enter() {
	p.Inside = true
}

func (p *Pointer) leave() {
	p.Inside = false
}

// displacement is the last event-to-event movement, or zero when there is
// no previous sample.
func (p *Pointer) displacement() geometry.Vector2D {
	if !p.Inside || !p.HasPosition || !p.HasPrevious {
		return geometry.Vector2D{}
	}
	return p.Position.Sub(p.Previous)
}
