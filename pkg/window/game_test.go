package window

import (
	"context"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/field"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/simulation"
)

func newTestGame(t *testing.T) (*Game, *simulation.Host) {
	t.Helper()
	cfg := &simulation.GameConfig{
		Field:      field.DefaultConfig(),
		Follower:   simulation.DefaultFollowerConfig(),
		Scatter:    simulation.DefaultScatterConfig(),
		ShowPanel:  true,
		Background: color.Black,
		Seed:       3,
	}
	cfg.Field.ParticleCount = 300

	ctx := context.Background()
	host := simulation.NewHost(cfg.Field, simulation.WithFieldOptions(field.WithRand(simulation.NewRand(cfg.Seed))))
	require.NoError(t, host.Start(ctx))
	t.Cleanup(func() { _ = host.Stop(ctx) })
	require.NoError(t, host.Resize(640, 480, 1))

	return NewGame(cfg, host, zaptest.NewLogger(t)), host
}

func TestGame_PanelEditKeepsReloadedConfig(t *testing.T) {
	g, host := newTestGame(t)
	ctx := context.Background()

	reloaded := g.applied
	reloaded.ParticleCount = 600
	reloaded.MaxRadius = 5
	reloaded.RepulsionRadius = 80
	g.Reload(reloaded)
	require.NoError(t, g.applyReload())

	assert.Equal(t, reloaded, g.applied)
	assert.Equal(t, 600.0, g.widgetParticleCount.Value)
	assert.Equal(t, 80.0, g.widgetRepulsionRadius.Value)
	assert.False(t, g.widgetRepulsionRadius.Changed(), "a reload is not a panel edit")

	before, err := host.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, before.GetParticles(), 600)

	// Drag max speed to the end of its track.
	g.widgetMaxSpeed.SetValueAt(g.widgetMaxSpeed.X + g.widgetMaxSpeed.W)
	require.NoError(t, g.applyPanel())

	assert.Equal(t, 6.0, g.applied.MaxSpeed)
	assert.Equal(t, 600, g.applied.ParticleCount)
	assert.Equal(t, 5.0, g.applied.MaxRadius)
	assert.Equal(t, 80.0, g.applied.RepulsionRadius)

	after, err := host.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(before.GetParticles(), after.GetParticles(), protocmp.Transform()),
		"a tuning edit must not respawn the field")
}

func TestGame_ReloadKeepsNewest(t *testing.T) {
	g, _ := newTestGame(t)

	first, second := g.applied, g.applied
	first.RepulsionRadius = 40
	second.RepulsionRadius = 90
	g.Reload(first)
	g.Reload(second)

	require.NoError(t, g.applyReload())
	assert.Equal(t, 90.0, g.applied.RepulsionRadius)

	require.NoError(t, g.applyReload(), "nothing pending")
	assert.Equal(t, 90.0, g.applied.RepulsionRadius)
}

func TestGame_InvalidReloadIsRejected(t *testing.T) {
	g, _ := newTestGame(t)
	want := g.applied

	bad := g.applied
	bad.MaxSpeed = 0
	g.Reload(bad)
	assert.ErrorIs(t, g.applyReload(), field.ErrInvalidConfig)
	assert.Equal(t, want, g.applied)
}
