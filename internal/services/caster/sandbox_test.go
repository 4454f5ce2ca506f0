package caster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rune-caster/internal/domain/combat"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
	"github.com/KirkDiggler/rune-caster/internal/sandbox"
	"github.com/KirkDiggler/rune-caster/internal/services/caster"
	"github.com/KirkDiggler/rune-caster/internal/testutils"
)

func TestCast_Sandbox(t *testing.T) {
	world := sandbox.NewWorld(nil)
	player := sandbox.NewEntity(sandbox.EntityConfig{ID: "player", Radius: 0.5})
	health := combat.NewHealth("Dummy", 200)
	dummy := sandbox.NewEntity(sandbox.EntityConfig{
		ID:        "dummy",
		Position:  geometry.Vec3{0, 0, 10},
		Radius:    1,
		Behaviors: []any{health},
	})
	require.NoError(t, world.Add(player))
	require.NoError(t, world.Add(dummy))

	svc := caster.NewService(&caster.ServiceConfig{
		Spellbook: testutils.CreateTestSpellbook(
			testutils.CreateTestSpellData("firebolt"),
			testutils.CreateTestConeData("frost", 30),
		),
		World: world,
	})

	result, err := svc.Cast(context.Background(), &caster.CastInput{SpellKey: "firebolt", Caster: player})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "dummy", result.Hits[0].Target.ID())
	assert.Equal(t, 50.0, health.Points())

	result, err = svc.Cast(context.Background(), &caster.CastInput{SpellKey: "frost", Caster: player})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, geometry.Vec3{0, 0, 10}, result.Hits[0].Point)
	assert.Equal(t, 0.0, health.Points())
	assert.True(t, health.Dead())

	// turned away, the cone finds nothing and reports no miss
	back := geometry.Vec3{0, 0, -1}
	result, err = svc.Cast(context.Background(), &caster.CastInput{SpellKey: "frost", Caster: player, Direction: &back})
	require.NoError(t, err)
	assert.Empty(t, result.Hits)
	assert.False(t, result.Missed)

	_, err = svc.Cast(context.Background(), &caster.CastInput{SpellKey: "unknown", Caster: player})
	assert.Error(t, err)
}
