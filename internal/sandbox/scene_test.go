package sandbox_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rune-caster/internal/domain/combat"
	"github.com/KirkDiggler/rune-caster/internal/domain/spell"
	"github.com/KirkDiggler/rune-caster/internal/errors"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
	"github.com/KirkDiggler/rune-caster/internal/sandbox"
)

const scene = `
main_camera: [0, 0, 1]
entities:
  - id: player
    name: Player
    tag: Player
    position: [0, 1, 0]
    radius: 0.5
    camera: [0, 0, 1]
    mana: 100
  - id: ground
    tag: Ground
    layer: 1
    plane: [0, 1, 0]
  - id: dummy
    name: Training Dummy
    position: [0, 1, 15]
    radius: 1
    health: 100
prefabs:
  - {name: rune_fire}
  - {name: fire_burst, radius: 2}
`

func TestParseAndBuildScene(t *testing.T) {
	data, err := sandbox.ParseScene([]byte(scene))
	require.NoError(t, err)

	world, err := data.Build(nil)
	require.NoError(t, err)
	require.Len(t, world.Entities(), 3)
	require.NotNil(t, world.MainCamera())

	player, err := world.Get("player")
	require.NoError(t, err)
	assert.Equal(t, "Player", player.Name())
	assert.Equal(t, geometry.Forward, player.Camera().Forward())
	mana, ok := sandbox.Behavior[*combat.Mana](player)
	require.True(t, ok)
	assert.Equal(t, 100.0, mana.Max())

	dummy, err := world.Get("dummy")
	require.NoError(t, err)
	_, ok = sandbox.Behavior[*combat.Health](dummy)
	assert.True(t, ok)

	_, err = world.Spawn("fire_burst", geometry.Zero, geometry.Up)
	assert.NoError(t, err)
}

func TestScene_DeathDeactivates(t *testing.T) {
	data, err := sandbox.ParseScene([]byte(scene))
	require.NoError(t, err)
	world, err := data.Build(nil)
	require.NoError(t, err)

	dummy, err := world.Get("dummy")
	require.NoError(t, err)
	health, _ := sandbox.Behavior[*combat.Health](dummy)

	health.ReceiveDamage(spell.Hit{Amount: 150})
	assert.False(t, dummy.Active())
}

func TestScene_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "entities:\n  - id: a\n    colour: red\n"},
		{"short vector", "entities:\n  - id: a\n    position: [1, 2]\n"},
		{"missing id", "entities:\n  - name: a\n"},
		{"duplicate id", "entities:\n  - id: a\n  - id: a\n"},
		{"bad layer", "entities:\n  - id: a\n    layer: 40\n"},
		{"bad camera", "main_camera: [1]\nentities: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := sandbox.ParseScene([]byte(tt.doc))
			if err == nil {
				_, err = data.Build(nil)
			}
			assert.Error(t, err)
		})
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scene), 0o600))

	world, err := sandbox.LoadScene(path, nil)
	require.NoError(t, err)
	assert.Len(t, world.Entities(), 3)

	_, err = sandbox.LoadScene(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.True(t, errors.IsNotFound(err))
}
