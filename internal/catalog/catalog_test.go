package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rune-caster/internal/catalog"
	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/domain/runes"
	"github.com/KirkDiggler/rune-caster/internal/domain/spell"
	"github.com/KirkDiggler/rune-caster/internal/errors"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
)

const document = `
spells:
  - key: firebolt
    name: Firebolt
    base_power: 10
    base_range: 20
    shape: {type: projectile}
    effect: {type: damage, base_damage: 10}
    augments:
      - {type: increase_power, multiplier: 1.5}
      - {type: increase_range, extra_range: 5}
  - key: frost_cone
    shape: {type: cone, angle: 30, layer: 2}
    effect: {type: damage}
  - key: mend
    shape: {type: ray}
    effect: {type: heal, heal_multiplier: 2}
runes:
  - {name: Fire, color: "#ff4000", prefab: rune_fire, effect_prefab: fire_burst, lifetime: 5}
  - {name: Ward, prefab: rune_ward, infinite: true}
`

func TestLoadAndBuild(t *testing.T) {
	file, err := catalog.Load([]byte(document))
	require.NoError(t, err)
	require.Len(t, file.Spells, 3)
	assert.Equal(t, 1.5, file.Spells[0].Augments[0].Params["multiplier"])

	book, err := catalog.NewSpellbook(catalog.DefaultRegistry(), file)
	require.NoError(t, err)
	assert.Equal(t, []string{"firebolt", "frost_cone", "mend"}, book.Keys())

	firebolt, err := book.Get("firebolt")
	require.NoError(t, err)
	assert.Equal(t, "Firebolt", firebolt.Name)
	assert.IsType(t, &spell.ProjectileShape{}, firebolt.Shape)
	require.Len(t, firebolt.Augments, 2)

	ctx, ok := firebolt.Prepare(nil, nil, geometry.Zero, geometry.Forward)
	require.True(t, ok)
	assert.Equal(t, 15.0, ctx.Power)
	assert.Equal(t, 25.0, ctx.Range)
	assert.Equal(t, 150.0, firebolt.Effect.(*spell.DamageEffect).Amount(ctx))

	cone, err := book.Get("frost_cone")
	require.NoError(t, err)
	assert.Equal(t, "frost_cone", cone.Name)
	assert.Equal(t, spell.DefaultBasePower, cone.BasePower)
	assert.Equal(t, spell.DefaultBaseRange, cone.BaseRange)
	coneShape := cone.Shape.(*spell.ConeShape)
	assert.Equal(t, 30.0, coneShape.Angle)
	assert.Equal(t, host.Layer(2), coneShape.Mask)

	mend, err := book.Get("mend")
	require.NoError(t, err)
	assert.Equal(t, 2.0, mend.Effect.(*spell.HealEffect).HealMultiplier)

	rs := book.Runes()
	require.Len(t, rs, 2)
	assert.Equal(t, 5.0, rs[0].Lifetime)
	assert.Equal(t, runes.DefaultPositionOffset, rs[0].PositionOffset)
	assert.Equal(t, runes.DefaultManaCost, rs[0].ManaCost)
	assert.True(t, rs[1].Infinite)
	assert.Equal(t, runes.DefaultLifetime, rs[1].Lifetime)

	_, err = book.Get("meteor")
	assert.True(t, errors.IsNotFound(err))
}

func TestBuild_BaseValues(t *testing.T) {
	file, err := catalog.Load([]byte(`
spells:
  - key: inert
    base_power: 0
    base_range: 0
    shape: {type: ray}
    effect: {type: damage}
  - key: plain
    shape: {type: ray}
    effect: {type: damage}
`))
	require.NoError(t, err)
	require.NotNil(t, file.Spells[0].BasePower)
	assert.Nil(t, file.Spells[1].BasePower)

	registry := catalog.DefaultRegistry()

	inert, err := registry.Build(&file.Spells[0])
	require.NoError(t, err)
	assert.Zero(t, inert.BasePower)
	assert.Zero(t, inert.BaseRange)

	plain, err := registry.Build(&file.Spells[1])
	require.NoError(t, err)
	assert.Equal(t, spell.DefaultBasePower, plain.BasePower)
	assert.Equal(t, spell.DefaultBaseRange, plain.BaseRange)
}

func TestLoad_ComponentFlags(t *testing.T) {
	file, err := catalog.Load([]byte(`
spells:
  - key: traced
    shape: {type: projectile, debug_log: true}
    effect: {type: damage}
  - key: quiet
    shape: {type: projectile, debug_log: false}
    effect: {type: damage}
  - key: numeric
    shape: {type: ray, debug_log: 1}
    effect: {type: damage, base_damage: 4}
`))
	require.NoError(t, err)
	assert.Equal(t, 1.0, file.Spells[0].Shape.Params["debug_log"])
	assert.Equal(t, 0.0, file.Spells[1].Shape.Params["debug_log"])

	book, err := catalog.NewSpellbook(catalog.DefaultRegistry(), file)
	require.NoError(t, err)

	for key, want := range map[string]bool{"traced": true, "quiet": false, "numeric": true} {
		def, err := book.Get(key)
		require.NoError(t, err)
		assert.Equal(t, want, def.Shape.(*spell.ProjectileShape).DebugLog, key)
	}

	_, err = catalog.Load([]byte(`
spells:
  - key: bad
    shape: {type: cone, angle: wide}
    effect: {type: damage}
`))
	assert.True(t, errors.IsValidation(err), "got %v", err)
}

func TestBuild_Validation(t *testing.T) {
	registry := catalog.DefaultRegistry()

	tests := []struct {
		name string
		data catalog.SpellData
	}{
		{"missing key", catalog.SpellData{
			Shape: catalog.ComponentData{Type: "ray"}, Effect: catalog.ComponentData{Type: "damage"},
		}},
		{"missing shape", catalog.SpellData{
			Key: "a", Effect: catalog.ComponentData{Type: "damage"},
		}},
		{"missing effect", catalog.SpellData{
			Key: "a", Shape: catalog.ComponentData{Type: "ray"},
		}},
		{"unknown shape", catalog.SpellData{
			Key: "a", Shape: catalog.ComponentData{Type: "sphere"}, Effect: catalog.ComponentData{Type: "damage"},
		}},
		{"unknown effect", catalog.SpellData{
			Key: "a", Shape: catalog.ComponentData{Type: "ray"}, Effect: catalog.ComponentData{Type: "poison"},
		}},
		{"unknown augment", catalog.SpellData{
			Key: "a", Shape: catalog.ComponentData{Type: "ray"}, Effect: catalog.ComponentData{Type: "damage"},
			Augments: []catalog.ComponentData{{Type: "haste"}},
		}},
		{"unknown parameter", catalog.SpellData{
			Key: "a", Shape: catalog.ComponentData{Type: "ray"},
			Effect: catalog.ComponentData{Type: "damage", Params: map[string]float64{"base_dmg": 3}},
		}},
		{"cone angle", catalog.SpellData{
			Key: "a", Shape: catalog.ComponentData{Type: "cone", Params: map[string]float64{"angle": 200}},
			Effect: catalog.ComponentData{Type: "damage"},
		}},
		{"cone layer", catalog.SpellData{
			Key: "a", Shape: catalog.ComponentData{Type: "cone", Params: map[string]float64{"layer": 1.5}},
			Effect: catalog.ComponentData{Type: "damage"},
		}},
		{"negative power", catalog.SpellData{
			Key: "a", BasePower: catalog.Float64(-1), Shape: catalog.ComponentData{Type: "ray"}, Effect: catalog.ComponentData{Type: "damage"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registry.Build(&tt.data)
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err), "got %v", err)
		})
	}
}

func TestRegistry_Register(t *testing.T) {
	registry := catalog.DefaultRegistry()

	err := registry.RegisterShape(catalog.ShapeCone, func(*catalog.Params) (spell.Shape, error) { return nil, nil })
	assert.True(t, errors.IsAlreadyExists(err))

	err = registry.RegisterEffect("", func(*catalog.Params) (spell.Effect, error) { return nil, nil })
	assert.True(t, errors.IsInvalidArgument(err))

	err = registry.RegisterAugment("nothing", nil)
	assert.True(t, errors.IsInvalidArgument(err))

	require.NoError(t, registry.RegisterAugment("triple", func(p *catalog.Params) (spell.Augment, error) {
		return &spell.IncreasePower{Multiplier: p.Float("factor", 3)}, nil
	}))
	shapes, effects, augments := registry.Variants()
	assert.Equal(t, []string{"cone", "projectile", "ray"}, shapes)
	assert.Equal(t, []string{"damage", "heal"}, effects)
	assert.Equal(t, []string{"increase_power", "increase_range", "triple"}, augments)

	def, err := registry.Build(&catalog.SpellData{
		Key:      "tri",
		Shape:    catalog.ComponentData{Type: "ray"},
		Effect:   catalog.ComponentData{Type: "damage"},
		Augments: []catalog.ComponentData{{Type: "triple"}},
	})
	require.NoError(t, err)
	ctx, ok := def.Prepare(nil, nil, geometry.Zero, geometry.Forward)
	require.True(t, ok)
	assert.Equal(t, 30.0, ctx.Power)
}

func TestLoad_Errors(t *testing.T) {
	file, err := catalog.Load(nil)
	require.NoError(t, err)
	assert.Empty(t, file.Spells)

	_, err = catalog.Load([]byte("spells:\n  - key: a\n    colour: red\n"))
	assert.True(t, errors.IsValidation(err))

	_, err = catalog.Load([]byte("spells:\n  - key: a\n    shape: {type: cone, angle: wide}\n"))
	assert.True(t, errors.IsValidation(err))

	_, err = catalog.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsNotFound(err))
}

func TestLoadFile_RoundTrip(t *testing.T) {
	file, err := catalog.Load([]byte(document))
	require.NoError(t, err)

	raw, err := catalog.Marshal(file)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "spells.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	again, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, file.Spells, again.Spells)
}

func TestSpellbook_Duplicates(t *testing.T) {
	spellData := catalog.SpellData{
		Key:    "dup",
		Shape:  catalog.ComponentData{Type: "ray"},
		Effect: catalog.ComponentData{Type: "damage"},
	}
	_, err := catalog.NewSpellbook(catalog.DefaultRegistry(), &catalog.File{
		Spells: []catalog.SpellData{spellData, spellData},
	})
	assert.True(t, errors.IsAlreadyExists(err))
}

func TestSpellbook_InvalidRune(t *testing.T) {
	_, err := catalog.NewSpellbook(catalog.DefaultRegistry(), &catalog.File{
		Runes: []catalog.RuneData{{Name: "Empty"}},
	})
	assert.True(t, errors.IsValidation(err))
}

type stubSource struct {
	data []*catalog.SpellData
	err  error
}

func (s *stubSource) List(context.Context) ([]*catalog.SpellData, error) {
	return s.data, s.err
}

func TestLoadSpellbook(t *testing.T) {
	book, err := catalog.LoadSpellbook(context.Background(), catalog.DefaultRegistry(), &stubSource{
		data: []*catalog.SpellData{{
			Key:    "zap",
			Shape:  catalog.ComponentData{Type: "projectile"},
			Effect: catalog.ComponentData{Type: "damage", Params: map[string]float64{"base_damage": 4}},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, book.Len())

	_, err = catalog.LoadSpellbook(context.Background(), catalog.DefaultRegistry(), &stubSource{
		err: errors.New(errors.CodeUnavailable, "redis down"),
	})
	assert.True(t, errors.IsUnavailable(err))
}
