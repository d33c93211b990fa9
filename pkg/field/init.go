package field

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/geometry"
)

const (
	edgeLeft = iota
	edgeRight
	edgeTop
	edgeBottom
)

// InitField builds a brand new particle store for ext. It never mutates a
// previous store; callers swap the result in whole. An empty extent yields an
// empty store so the host can retry on its next resize.
func InitField(ext Extent, cfg Config, rng *rand.Rand) State {
	if ext.Empty() || cfg.ParticleCount <= 0 {
		return State{}
	}

	worldW := ext.Width + ext.Margin*2
	worldH := ext.Height + ext.Margin*2
	maxRadius := max(cfg.MaxRadius, 1)

	st := State{
		Particles: make([]Particle, cfg.ParticleCount),
		Origins:   make([]geometry.Vector2D, cfg.ParticleCount),
	}
	for i := range st.Particles {
		pos := geometry.Vector2D{
			X: rng.Float64()*worldW - ext.Margin,
			Y: rng.Float64()*worldH - ext.Margin,
		}
		// A share of the flakes starts in a band just outside one visible
		// edge so they drift in shortly after mount. Without a margin there
		// is no such band.
		if ext.Margin > 0 && rng.Float64() < cfg.EdgeSpawnChance {
			switch rng.IntN(4) {
			case edgeLeft:
				pos.X = -ext.Margin + rng.Float64()*ext.Margin
			case edgeRight:
				pos.X = ext.Width + rng.Float64()*ext.Margin
			case edgeTop:
				pos.Y = -ext.Margin + rng.Float64()*ext.Margin
			case edgeBottom:
				pos.Y = ext.Height + rng.Float64()*ext.Margin
			}
		}

		st.Particles[i] = Particle{
			Pos: pos,
			Vel: geometry.Vector2D{
				X: (rng.Float64() - 0.5) * cfg.InitialSpeed,
				Y: (rng.Float64() - 0.5) * cfg.InitialSpeed,
			},
			Radius: rng.Float64()*(maxRadius-1) + 1,
		}
		st.Origins[i] = pos
	}
	return st
}
