package simulation

import (
	"reflect"
	"time"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/field"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/fieldpb"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/geometry"
)

// ToProto converts the field state into the snapshot envelope pushed to hosts.
func ToProto(f *field.Field) *fieldpb.Snapshot {
	ext := f.Extent()
	particles := f.Particles()
	snap := &fieldpb.Snapshot{
		Width:     ext.Width,
		Height:    ext.Height,
		Margin:    ext.Margin,
		Resetting: f.Resetting(),
		Frame:     f.Frame(),
		Particles: make([]*fieldpb.Particle, len(particles)),
	}
	for i, p := range particles {
		snap.Particles[i] = &fieldpb.Particle{
			X:      p.Pos.X,
			Y:      p.Pos.Y,
			Vx:     p.Vel.X,
			Vy:     p.Vel.Y,
			Radius: p.Radius,
		}
	}
	return snap
}

// ParticlesFromProto converts a snapshot back into particles, reusing dst's
// capacity so a frame loop does not allocate once warmed up.
func ParticlesFromProto(dst []field.Particle, snap *fieldpb.Snapshot) []field.Particle {
	dst = dst[:0]
	for _, p := range snap.GetParticles() {
		dst = append(dst, field.Particle{
			Pos:    geometry.Vector2D{X: p.GetX(), Y: p.GetY()},
			Vel:    geometry.Vector2D{X: p.GetVx(), Y: p.GetVy()},
			Radius: p.GetRadius(),
		})
	}
	return dst
}

// ExtentFromProto returns the geometry a snapshot was taken with.
func ExtentFromProto(snap *fieldpb.Snapshot) field.Extent {
	return field.Extent{
		Width:  snap.GetWidth(),
		Height: snap.GetHeight(),
		Margin: snap.GetMargin(),
	}
}

// ConfigToProto extracts the runtime-editable knobs of cfg.
func ConfigToProto(cfg field.Config) *fieldpb.UpdateConfig {
	return &fieldpb.UpdateConfig{
		ParticleCount:   int32(cfg.ParticleCount),
		MaxRadius:       cfg.MaxRadius,
		WorldMargin:     cfg.WorldMargin,
		RepulsionRadius: cfg.RepulsionRadius,
		RepulsionForce:  cfg.RepulsionForce,
		MaxSpeed:        cfg.MaxSpeed,
		ResetDurationMs: cfg.ResetDuration.Milliseconds(),
	}
}

// ApplyUpdate overlays the set fields of msg onto cfg. Zero values mean
// "unchanged", except for the world margin which may legitimately be zero
// and is therefore always applied.
func ApplyUpdate(cfg field.Config, msg *fieldpb.UpdateConfig) field.Config {
	if v := msg.GetParticleCount(); v != 0 {
		cfg.ParticleCount = int(v)
	}
	if v := msg.GetMaxRadius(); v != 0 {
		cfg.MaxRadius = v
	}
	cfg.WorldMargin = msg.GetWorldMargin()
	if v := msg.GetRepulsionRadius(); v != 0 {
		cfg.RepulsionRadius = v
	}
	if v := msg.GetRepulsionForce(); v != 0 {
		cfg.RepulsionForce = v
	}
	if v := msg.GetMaxSpeed(); v != 0 {
		cfg.MaxSpeed = v
	}
	if v := msg.GetResetDurationMs(); v != 0 {
		cfg.ResetDuration = time.Duration(v) * time.Millisecond
	}
	return cfg
}

// UnappliedChanges lists, by config key, the knobs that differ between prev
// and next but that an UpdateConfig cannot carry. Those only take effect
// when the field is created again.
func UnappliedChanges(prev, next field.Config) []string {
	carried := reflect.ValueOf(ApplyUpdate(prev, ConfigToProto(next)))
	want := reflect.ValueOf(next)
	typ := want.Type()

	var keys []string
	for i := range typ.NumField() {
		if !reflect.DeepEqual(carried.Field(i).Interface(), want.Field(i).Interface()) {
			keys = append(keys, typ.Field(i).Tag.Get("mapstructure"))
		}
	}
	return keys
}
