// Package catalog turns authored spell data into runnable spell definitions.
// Spells reference their shape, effect and augments by variant id; a Registry
// maps those ids to constructors.
package catalog

import (
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rune-caster/internal/domain/runes"
	"github.com/KirkDiggler/rune-caster/internal/errors"
)

// ComponentData selects one shape, effect or augment variant. Every key other
// than type is a numeric parameter of that variant; YAML booleans are stored
// as 1 and 0.
type ComponentData struct {
	Type   string             `yaml:"type" json:"type"`
	Params map[string]float64 `yaml:",inline" json:"params,omitempty"`
}

// UnmarshalYAML decodes a component mapping, accepting true/false for flags
func (c *ComponentData) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.Validationf("line %d: component must be a mapping", node.Line)
	}

	out := ComponentData{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		if key == "type" {
			if err := value.Decode(&out.Type); err != nil {
				return err
			}
			continue
		}

		if out.Params == nil {
			out.Params = make(map[string]float64)
		}
		if value.Tag == "!!bool" {
			var flag bool
			if err := value.Decode(&flag); err != nil {
				return err
			}
			if flag {
				out.Params[key] = 1
			} else {
				out.Params[key] = 0
			}
			continue
		}

		var number float64
		if err := value.Decode(&number); err != nil {
			return errors.Validationf("line %d: parameter %s must be a number or boolean", value.Line, key).
				WithMeta("param", key)
		}
		out.Params[key] = number
	}

	*c = out
	return nil
}

// SpellData is the serializable form of a spell definition
type SpellData struct {
	Key       string          `yaml:"key" json:"key"`
	Name      string          `yaml:"name,omitempty" json:"name,omitempty"`
	BasePower *float64        `yaml:"base_power,omitempty" json:"base_power,omitempty"`
	BaseRange *float64        `yaml:"base_range,omitempty" json:"base_range,omitempty"`
	Shape     ComponentData   `yaml:"shape" json:"shape"`
	Effect    ComponentData   `yaml:"effect" json:"effect"`
	Augments  []ComponentData `yaml:"augments,omitempty" json:"augments,omitempty"`
}

// Float64 returns a pointer to v, for optional numbers set from code.
func Float64(v float64) *float64 {
	return &v
}

// RuneData is the serializable form of runes.Data. Unset numbers take the rune
// defaults.
type RuneData struct {
	Name           string   `yaml:"name"`
	Color          string   `yaml:"color,omitempty"`
	Prefab         string   `yaml:"prefab"`
	EffectPrefab   string   `yaml:"effect_prefab,omitempty"`
	Lifetime       *float64 `yaml:"lifetime,omitempty"`
	PositionOffset *float64 `yaml:"position_offset,omitempty"`
	ManaCost       *float64 `yaml:"mana_cost,omitempty"`
	Infinite       bool     `yaml:"infinite,omitempty"`
}

// File is the top level of a catalog document
type File struct {
	Spells []SpellData `yaml:"spells"`
	Runes  []RuneData  `yaml:"runes,omitempty"`
}

// Build converts authored rune data, applying defaults
func (r *RuneData) Build() (*runes.Data, error) {
	if r.Name == "" {
		return nil, errors.Validation("rune name is required")
	}
	if r.Prefab == "" {
		return nil, errors.Validationf("rune %s: prefab is required", r.Name)
	}

	data := runes.NewData(r.Name, r.Prefab)
	data.Color = r.Color
	data.EffectPrefab = r.EffectPrefab
	data.Infinite = r.Infinite
	if r.Lifetime != nil {
		data.Lifetime = *r.Lifetime
	}
	if r.PositionOffset != nil {
		data.PositionOffset = *r.PositionOffset
	}
	if r.ManaCost != nil {
		data.ManaCost = *r.ManaCost
	}

	if data.Lifetime < 0 || data.ManaCost < 0 {
		return nil, errors.Validationf("rune %s: lifetime and mana cost cannot be negative", r.Name)
	}
	return data, nil
}
