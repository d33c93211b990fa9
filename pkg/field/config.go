package field

import (
	"errors"
	"fmt"
	"time"
)

// Config holds every tuning knob of a particle field. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// Population and geometry. Changing any of these forces a full re-init.
	ParticleCount int     `json:"particle_count" mapstructure:"particle_count" yaml:"particle_count"`
	MaxRadius     float64 `json:"max_radius" mapstructure:"max_radius" yaml:"max_radius"`
	WorldMargin   float64 `json:"world_margin" mapstructure:"world_margin" yaml:"world_margin"`

	// Spawn
	InitialSpeed    float64 `json:"initial_speed" mapstructure:"initial_speed" yaml:"initial_speed"`
	EdgeSpawnChance float64 `json:"edge_spawn_chance" mapstructure:"edge_spawn_chance" yaml:"edge_spawn_chance"`

	// Pointer repulsion
	RepulsionRadius float64 `json:"repulsion_radius" mapstructure:"repulsion_radius" yaml:"repulsion_radius"`
	RepulsionForce  float64 `json:"repulsion_force" mapstructure:"repulsion_force" yaml:"repulsion_force"`
	MinDistance     float64 `json:"min_distance" mapstructure:"min_distance" yaml:"min_distance"`

	// Directional wake pushed by fast pointer movement
	WakeForce  float64 `json:"wake_force" mapstructure:"wake_force" yaml:"wake_force"`
	WakeCap    float64 `json:"wake_cap" mapstructure:"wake_cap" yaml:"wake_cap"`
	WakeJitter float64 `json:"wake_jitter" mapstructure:"wake_jitter" yaml:"wake_jitter"`

	AmbientJitter float64 `json:"ambient_jitter" mapstructure:"ambient_jitter" yaml:"ambient_jitter"`

	// Damping
	IdleDampingX         float64 `json:"idle_damping_x" mapstructure:"idle_damping_x" yaml:"idle_damping_x"`
	IdleDampingY         float64 `json:"idle_damping_y" mapstructure:"idle_damping_y" yaml:"idle_damping_y"`
	MovingDamping        float64 `json:"moving_damping" mapstructure:"moving_damping" yaml:"moving_damping"`
	EdgeZone             float64 `json:"edge_zone" mapstructure:"edge_zone" yaml:"edge_zone"`
	EdgeDamping          float64 `json:"edge_damping" mapstructure:"edge_damping" yaml:"edge_damping"`
	EdgeDampingThreshold float64 `json:"edge_damping_threshold" mapstructure:"edge_damping_threshold" yaml:"edge_damping_threshold"`

	MaxSpeed float64 `json:"max_speed" mapstructure:"max_speed" yaml:"max_speed"`

	// Reset to origin
	ResetDuration      time.Duration `json:"reset_duration" mapstructure:"reset_duration" yaml:"reset_duration"`
	ResetStep          float64       `json:"reset_step" mapstructure:"reset_step" yaml:"reset_step"`
	ResetVelocityDecay float64       `json:"reset_velocity_decay" mapstructure:"reset_velocity_decay" yaml:"reset_velocity_decay"`
}

// DefaultConfig returns the tuning the hero-section snow field shipped with.
func DefaultConfig() Config {
	return Config{
		ParticleCount: 1000,
		MaxRadius:     3,
		WorldMargin:   220,

		InitialSpeed:    1,
		EdgeSpawnChance: 0.2,

		RepulsionRadius: 30,
		RepulsionForce:  0.3,
		MinDistance:     0.0009,

		WakeForce:  0.6,
		WakeCap:    40,
		WakeJitter: 0.3,

		AmbientJitter: 0.09,

		IdleDampingX:         0.96,
		IdleDampingY:         0.965,
		MovingDamping:        0.988,
		EdgeZone:             30,
		EdgeDamping:          0.6,
		EdgeDampingThreshold: 0.25,

		MaxSpeed: 1.5,

		ResetDuration:      2500 * time.Millisecond,
		ResetStep:          0.02,
		ResetVelocityDecay: 0.98,
	}
}

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid field config")

// Validate checks that every knob is in a usable range.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"particle_count", float64(c.ParticleCount)},
		{"max_radius", c.MaxRadius},
		{"repulsion_radius", c.RepulsionRadius},
		{"repulsion_force", c.RepulsionForce},
		{"wake_cap", c.WakeCap},
		{"max_speed", c.MaxSpeed},
		{"reset_duration", float64(c.ResetDuration)},
		{"reset_step", c.ResetStep},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"world_margin", c.WorldMargin},
		{"initial_speed", c.InitialSpeed},
		{"min_distance", c.MinDistance},
		{"wake_force", c.WakeForce},
		{"ambient_jitter", c.AmbientJitter},
		{"edge_zone", c.EdgeZone},
		{"edge_damping_threshold", c.EdgeDampingThreshold},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	unit := []struct {
		name  string
		value float64
	}{
		{"edge_spawn_chance", c.EdgeSpawnChance},
		{"wake_jitter", c.WakeJitter},
		{"idle_damping_x", c.IdleDampingX},
		{"idle_damping_y", c.IdleDampingY},
		{"moving_damping", c.MovingDamping},
		{"edge_damping", c.EdgeDamping},
		{"reset_step", c.ResetStep},
		{"reset_velocity_decay", c.ResetVelocityDecay},
	}
	for _, p := range unit {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalidConfig, p.name, p.value)
		}
	}
	return nil
}

// geometryChanged reports whether moving from c to next requires a new field.
func (c Config) geometryChanged(next Config) bool {
	return c.ParticleCount != next.ParticleCount ||
		c.MaxRadius != next.MaxRadius ||
		c.WorldMargin != next.WorldMargin ||
		c.InitialSpeed != next.InitialSpeed ||
		c.EdgeSpawnChance != next.EdgeSpawnChance
}
