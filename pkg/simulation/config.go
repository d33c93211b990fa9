package simulation

import (
	"image/color"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/field"
)

// FollowerConfig tunes the eased ring that trails the cursor.
type FollowerConfig struct {
	Enabled bool    `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	Ease    float64 `mapstructure:"ease" json:"ease" yaml:"ease"`
	OffsetX float64 `mapstructure:"offset_x" json:"offset_x" yaml:"offset_x"`
	OffsetY float64 `mapstructure:"offset_y" json:"offset_y" yaml:"offset_y"`
	Radius  float64 `mapstructure:"radius" json:"radius" yaml:"radius"`
}

// ScatterConfig wraps the scatter layer tuning with an on/off switch.
type ScatterConfig struct {
	Enabled                  bool `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	behavior.ScatterSettings `mapstructure:",squash" yaml:",inline"`
}

// GameConfig is everything the window host needs besides the field itself.
type GameConfig struct {
	Field     field.Config
	Follower  FollowerConfig
	Scatter   ScatterConfig
	ShowPanel bool
	// Background is the clear colour behind the particles.
	Background color.Color
	Seed       uint64
}

func DefaultFollowerConfig() FollowerConfig {
	return FollowerConfig{
		Enabled: true,
		Ease:    behavior.DefaultEase,
		Radius:  24,
	}
}

func DefaultScatterConfig() ScatterConfig {
	return ScatterConfig{
		Enabled:         false,
		ScatterSettings: behavior.DefaultScatterSettings(),
	}
}

// NewRand returns a PCG generator. Seed zero picks a random seed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
