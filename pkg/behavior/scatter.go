package behavior

import (
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/geometry"
)

// Sprite is one scattered piece. Origin is where it rests when left alone.
type Sprite struct {
	Pos    geometry.Vector2D
	Origin geometry.Vector2D
	Size   float64
	Angle  float64 // radians
}

// ScatterSettings controls the scatter layer. Passing this into NewScatter
// lets the host tune it from config.
type ScatterSettings struct {
	Count   int     `mapstructure:"count" json:"count" yaml:"count"`
	Radius  float64 `mapstructure:"radius" json:"radius" yaml:"radius"` // pointer influence radius
	Push    float64 `mapstructure:"push" json:"push" yaml:"push"`       // displacement per frame at distance zero
	Spring  float64 `mapstructure:"spring" json:"spring" yaml:"spring"` // fraction of the way home per frame
	MinSize float64 `mapstructure:"min_size" json:"min_size" yaml:"min_size"`
	MaxSize float64 `mapstructure:"max_size" json:"max_size" yaml:"max_size"`
}

// DefaultScatterSettings returns the tuning used by the window host.
func DefaultScatterSettings() ScatterSettings {
	return ScatterSettings{
		Count:   150,
		Radius:  100,
		Push:    4,
		Spring:  0.05,
		MinSize: 15,
		MaxSize: 45,
	}
}

// Scatter is a layer of sprites that get shoved aside by the pointer and
// spring back to their resting place once it moves away.
type Scatter struct {
	Sprites  []Sprite
	settings ScatterSettings
	rng      *rand.Rand
}

// NewScatter creates an empty layer. Call Resize to lay the sprites out.
func NewScatter(s ScatterSettings, rng *rand.Rand) *Scatter {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Scatter{settings: s, rng: rng}
}

// Settings returns the active tuning.
func (s *Scatter) Settings() ScatterSettings { return s.settings }

// Resize scatters a fresh set of sprites over a width x height area.
func (s *Scatter) Resize(width, height float64) {
	if width <= 0 || height <= 0 || s.settings.Count <= 0 {
		s.Sprites = nil
		return
	}
	sizeSpan := math.Max(s.settings.MaxSize-s.settings.MinSize, 0)
	s.Sprites = make([]Sprite, s.settings.Count)
	for i := range s.Sprites {
		origin := geometry.NewVector(s.rng.Float64()*width, s.rng.Float64()*height)
		s.Sprites[i] = Sprite{
			Pos:    origin,
			Origin: origin,
			Size:   s.settings.MinSize + s.rng.Float64()*sizeSpan,
			Angle:  s.rng.Float64() * 2 * math.Pi,
		}
	}
}

// Step moves every sprite by one frame. Sprites inside the radius are pushed
// straight away from the pointer, harder the closer they are; the rest drift
// back toward their origin.
func (s *Scatter) Step(pointer geometry.Vector2D, inside bool) {
	r := s.settings.Radius
	for i := range s.Sprites {
		sp := &s.Sprites[i]
		if inside {
			away := sp.Pos.Sub(pointer)
			d := away.Len()
			if d < r {
				if d > geometry.Epsilon {
					sp.Pos = sp.Pos.Add(away.Mul((r - d) / r * s.settings.Push / d))
				}
				continue
			}
		}
		sp.Pos = sp.Pos.Add(sp.Origin.Sub(sp.Pos).Mul(s.settings.Spring))
	}
}
