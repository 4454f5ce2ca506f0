package testutils

import (
	"github.com/KirkDiggler/rune-caster/internal/catalog"
)

// CreateTestSpellData creates a ray damage spell with the power and range
// augments used throughout the tests: 10 base damage, power 10 x 1.5, range
// 20 + 5.
func CreateTestSpellData(key string) *catalog.SpellData {
	return &catalog.SpellData{
		Key:       key,
		Name:      key,
		BasePower: catalog.Float64(10),
		BaseRange: catalog.Float64(20),
		Shape:     catalog.ComponentData{Type: catalog.ShapeProjectile},
		Effect: catalog.ComponentData{
			Type:   catalog.EffectDamage,
			Params: map[string]float64{"base_damage": 10},
		},
		Augments: []catalog.ComponentData{
			{Type: catalog.AugmentIncreasePower, Params: map[string]float64{"multiplier": 1.5}},
			{Type: catalog.AugmentIncreaseRange, Params: map[string]float64{"extra_range": 5}},
		},
	}
}

// CreateTestConeData creates a cone damage spell with the given half-angle
func CreateTestConeData(key string, angle float64) *catalog.SpellData {
	return &catalog.SpellData{
		Key:    key,
		Name:   key,
		Shape:  catalog.ComponentData{Type: catalog.ShapeCone, Params: map[string]float64{"angle": angle}},
		Effect: catalog.ComponentData{Type: catalog.EffectDamage},
	}
}

// CreateTestSpellbook builds a spellbook from the given spells with the
// default registry. It panics on invalid data.
func CreateTestSpellbook(spells ...*catalog.SpellData) *catalog.Spellbook {
	file := &catalog.File{}
	for _, s := range spells {
		file.Spells = append(file.Spells, *s)
	}

	book, err := catalog.NewSpellbook(catalog.DefaultRegistry(), file)
	if err != nil {
		panic(err)
	}
	return book
}
