package field

import (
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/geometry"
)

// frameInput is what one physics step knows about the pointer.
type frameInput struct {
	pointer geometry.Vector2D
	inside  bool
	// wake is the directional push shared by every particle this frame.
	wake geometry.Vector2D
	// nearEdgeX/Y are set when the resting pointer sits close to a vertical
	// or horizontal edge of the visible box.
	nearEdgeX bool
	nearEdgeY bool
}

func (in frameInput) moving() bool {
	return in.wake.X != 0 || in.wake.Y != 0
}

// newFrameInput derives the per-frame pointer forces. moved is false when
// no move event arrived since the previous step.
func newFrameInput(ptr *Pointer, moved bool, ext Extent, cfg Config) frameInput {
	in := frameInput{
		pointer: ptr.Position,
		inside:  ptr.Inside && ptr.HasPosition,
	}
	if moved {
		in.wake = ptr.displacement().ClampAxes(cfg.WakeCap).Mul(cfg.WakeForce / cfg.WakeCap)
	}
	if in.inside {
		in.nearEdgeX = in.pointer.X < cfg.EdgeZone || ext.Width-in.pointer.X < cfg.EdgeZone
		in.nearEdgeY = in.pointer.Y < cfg.EdgeZone || ext.Height-in.pointer.Y < cfg.EdgeZone
	}
	return in
}

// step advances every particle by one frame.
func step(particles []Particle, in frameInput, ext Extent, cfg Config, rng *rand.Rand) {
	for i := range particles {
		stepParticle(&particles[i], in, ext, cfg, rng)
	}
}

func stepParticle(p *Particle, in frameInput, ext Extent, cfg Config, rng *rand.Rand) {
	// 1. Repulsion
	if in.inside {
		p.Vel = p.Vel.Add(repulsion(p.Pos, in.pointer, cfg))
	}

	// 2. Wake: every particle gets the push, each with its own strength.
	if in.wake.X != 0 {
		p.Vel.X += in.wake.X * (1 - cfg.WakeJitter + rng.Float64()*cfg.WakeJitter)
	}
	if in.wake.Y != 0 {
		p.Vel.Y += in.wake.Y * (1 - cfg.WakeJitter + rng.Float64()*cfg.WakeJitter)
	}

	// 3. Ambient drift keeps the field from ever settling.
	p.Vel.X += (rng.Float64() - 0.5) * cfg.AmbientJitter
	p.Vel.Y += (rng.Float64() - 0.5) * cfg.AmbientJitter

	// 4. Damping
	if in.moving() {
		p.Vel = p.Vel.Mul(cfg.MovingDamping)
	} else {
		p.Vel.X *= cfg.IdleDampingX
		p.Vel.Y *= cfg.IdleDampingY
		if in.nearEdgeX && math.Abs(p.Vel.X) < cfg.EdgeDampingThreshold {
			p.Vel.X *= cfg.EdgeDamping
		}
		if in.nearEdgeY && math.Abs(p.Vel.Y) < cfg.EdgeDampingThreshold {
			p.Vel.Y *= cfg.EdgeDamping
		}
	}

	// 5. Speed limit
	p.Vel = p.Vel.ClampLen(cfg.MaxSpeed)

	// 6. Integrate
	p.Pos = p.Pos.Add(p.Vel)

	// 7. Bounce
	bounce(p, ext)
}

// repulsion is the impulse pushing pos away from the pointer. Distances
// below MinDistance have no direction and produce no force.
func repulsion(pos, pointer geometry.Vector2D, cfg Config) geometry.Vector2D {
	d := pos.Sub(pointer)
	dist := d.Len()
	if dist >= cfg.RepulsionRadius || dist <= cfg.MinDistance {
		return geometry.Vector2D{}
	}
	f := (cfg.RepulsionRadius - dist) / cfg.RepulsionRadius * cfg.RepulsionForce
	return d.Mul(f / dist)
}

// bounce reflects p off the world edges, offset by its radius.
func bounce(p *Particle, ext Extent) {
	left, right := ext.Left(), ext.Right()
	top, bottom := ext.Top(), ext.Bottom()

	if p.Pos.X <= left+p.Radius {
		p.Pos.X = left + p.Radius
		p.Vel.X = math.Abs(p.Vel.X)
	}
	if p.Pos.X >= right-p.Radius {
		p.Pos.X = right - p.Radius
		p.Vel.X = -math.Abs(p.Vel.X)
	}
	if p.Pos.Y <= top+p.Radius {
		p.Pos.Y = top + p.Radius
		p.Vel.Y = math.Abs(p.Vel.Y)
	}
	if p.Pos.Y >= bottom-p.Radius {
		p.Pos.Y = bottom - p.Radius
		p.Vel.Y = -math.Abs(p.Vel.Y)
	}

	// A world narrower than the particle cannot honour both offsets.
	p.Pos.X = math.Max(left, math.Min(right, p.Pos.X))
	p.Pos.Y = math.Max(top, math.Min(bottom, p.Pos.Y))
}
