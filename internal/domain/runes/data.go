// Package runes implements placeable runes: a rune is dropped on the ground in
// front of the player, waits out its lifetime and then releases its effect.
package runes

// Defaults for authored rune data
const (
	DefaultLifetime       = 10.0
	DefaultPositionOffset = 3.01
	DefaultManaCost       = 20.0
)

// Data describes one kind of rune
type Data struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`

	// Prefab is spawned where the rune is placed; EffectPrefab when it triggers.
	Prefab       string `json:"prefab"`
	EffectPrefab string `json:"effect_prefab,omitempty"`

	// Lifetime in seconds before the rune triggers
	Lifetime float64 `json:"lifetime"`
	// PositionOffset lifts the rune off the surface along the hit normal
	PositionOffset float64 `json:"position_offset"`
	ManaCost       float64 `json:"mana_cost"`
	// Infinite runes never trigger on their own
	Infinite bool `json:"infinite,omitempty"`
}

// NewData returns rune data with the default lifetime, offset and cost
func NewData(name, prefab string) *Data {
	return &Data{
		Name:           name,
		Prefab:         prefab,
		Lifetime:       DefaultLifetime,
		PositionOffset: DefaultPositionOffset,
		ManaCost:       DefaultManaCost,
	}
}
