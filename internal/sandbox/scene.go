package sandbox

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rune-caster/internal/domain/combat"
	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/errors"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
	"github.com/KirkDiggler/rune-caster/internal/uuid"
)

// SceneData is the YAML form of a sandbox world
type SceneData struct {
	MainCamera []float64    `yaml:"main_camera,omitempty"`
	Entities   []EntityData `yaml:"entities"`
	Prefabs    []PrefabData `yaml:"prefabs,omitempty"`
}

// EntityData describes one scene entity. Vectors are [x, y, z].
type EntityData struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name,omitempty"`
	Tag      string    `yaml:"tag,omitempty"`
	Layer    uint      `yaml:"layer,omitempty"`
	Position []float64 `yaml:"position,omitempty"`
	Forward  []float64 `yaml:"forward,omitempty"`
	Radius   float64   `yaml:"radius,omitempty"`
	Plane    []float64 `yaml:"plane,omitempty"`
	Camera   []float64 `yaml:"camera,omitempty"`

	// Health and Mana attach combat behaviors with that maximum
	Health float64 `yaml:"health,omitempty"`
	Mana   float64 `yaml:"mana,omitempty"`
}

// PrefabData describes a spawnable template
type PrefabData struct {
	Name   string  `yaml:"name"`
	Tag    string  `yaml:"tag,omitempty"`
	Layer  uint    `yaml:"layer,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
}

// LoadScene reads and builds a scene file
func LoadScene(path string, ids uuid.Generator) (*World, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.CodeNotFound, "scene file not found").
				WithMeta("path", path)
		}
		return nil, errors.Wrapf(err, "failed to read scene %s", path)
	}

	scene, err := ParseScene(raw)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return scene.Build(ids)
}

// ParseScene decodes a YAML scene document
func ParseScene(raw []byte) (*SceneData, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var scene SceneData
	if err := dec.Decode(&scene); err != nil {
		if err == io.EOF {
			return &scene, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeValidation, "invalid scene document")
	}
	return &scene, nil
}

// Build creates a world from the scene. Entities with health are deactivated
// when they die.
func (s *SceneData) Build(ids uuid.Generator) (*World, error) {
	world := NewWorld(&WorldConfig{UUIDGenerator: ids})

	if s.MainCamera != nil {
		forward, err := vec(s.MainCamera, "main_camera")
		if err != nil {
			return nil, err
		}
		world.SetMainCamera(NewCamera(forward))
	}

	for i := range s.Entities {
		e, err := s.Entities[i].build()
		if err != nil {
			return nil, err
		}
		if err := world.Add(e); err != nil {
			return nil, err
		}
	}

	for _, p := range s.Prefabs {
		if err := world.RegisterPrefab(Prefab{Name: p.Name, Tag: p.Tag, Layer: p.Layer, Radius: p.Radius}); err != nil {
			return nil, err
		}
	}

	return world, nil
}

func (d *EntityData) build() (*Entity, error) {
	if d.ID == "" {
		return nil, errors.Validation("scene entity id is required")
	}
	if d.Layer > 31 {
		return nil, errors.Validationf("entity %s: layer must be in 0..31", d.ID)
	}

	cfg := EntityConfig{
		ID:     d.ID,
		Name:   d.Name,
		Tag:    d.Tag,
		Layer:  d.Layer,
		Radius: d.Radius,
	}

	var err error
	if cfg.Position, err = optionalVec(d.Position, d.ID+".position"); err != nil {
		return nil, err
	}
	if cfg.Forward, err = optionalVec(d.Forward, d.ID+".forward"); err != nil {
		return nil, err
	}
	if cfg.PlaneNormal, err = optionalVec(d.Plane, d.ID+".plane"); err != nil {
		return nil, err
	}
	if d.Camera != nil {
		forward, err := vec(d.Camera, d.ID+".camera")
		if err != nil {
			return nil, err
		}
		cfg.Camera = NewCamera(forward)
	}

	e := NewEntity(cfg)

	if d.Health > 0 {
		health := combat.NewHealth(e.Name(), d.Health)
		health.OnDeath = func(_ *combat.Health, _ host.Entity) {
			e.SetActive(false)
		}
		e.AddBehavior(health)
	}
	if d.Mana > 0 {
		e.AddBehavior(combat.NewMana(d.Mana))
	}

	return e, nil
}

func optionalVec(v []float64, field string) (geometry.Vec3, error) {
	if v == nil {
		return geometry.Vec3{}, nil
	}
	return vec(v, field)
}

func vec(v []float64, field string) (geometry.Vec3, error) {
	if len(v) != 3 {
		return geometry.Vec3{}, errors.Validationf("%s: expected [x, y, z], got %d values", field, len(v))
	}
	return geometry.Vec3{v[0], v[1], v[2]}, nil
}
