package catalog

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/domain/spell"
	"github.com/KirkDiggler/rune-caster/internal/errors"
)

// Variant ids understood by DefaultRegistry
const (
	ShapeProjectile = "projectile"
	ShapeRay        = "ray"
	ShapeCone       = "cone"

	EffectDamage = "damage"
	EffectHeal   = "heal"

	AugmentIncreasePower = "increase_power"
	AugmentIncreaseRange = "increase_range"
)

type (
	ShapeFactory   func(p *Params) (spell.Shape, error)
	EffectFactory  func(p *Params) (spell.Effect, error)
	AugmentFactory func(p *Params) (spell.Augment, error)
)

// Registry maps variant ids to factories
type Registry struct {
	mu       sync.RWMutex
	shapes   map[string]ShapeFactory
	effects  map[string]EffectFactory
	augments map[string]AugmentFactory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		shapes:   make(map[string]ShapeFactory),
		effects:  make(map[string]EffectFactory),
		augments: make(map[string]AugmentFactory),
	}
}

// DefaultRegistry returns a registry with every built-in variant
func DefaultRegistry() *Registry {
	r := NewRegistry()

	projectile := func(p *Params) (spell.Shape, error) {
		return &spell.ProjectileShape{DebugLog: p.Bool("debug_log", false)}, nil
	}
	mustRegister(r.RegisterShape(ShapeProjectile, projectile))
	mustRegister(r.RegisterShape(ShapeRay, projectile))
	mustRegister(r.RegisterShape(ShapeCone, newCone))

	mustRegister(r.RegisterEffect(EffectDamage, func(p *Params) (spell.Effect, error) {
		e := spell.NewDamageEffect()
		e.BaseDamage = p.Float("base_damage", e.BaseDamage)
		if e.BaseDamage < 0 {
			return nil, errors.Validationf("base_damage cannot be negative: %g", e.BaseDamage)
		}
		return e, nil
	}))
	mustRegister(r.RegisterEffect(EffectHeal, func(p *Params) (spell.Effect, error) {
		e := spell.NewHealEffect()
		e.HealMultiplier = p.Float("heal_multiplier", e.HealMultiplier)
		if e.HealMultiplier < 0 {
			return nil, errors.Validationf("heal_multiplier cannot be negative: %g", e.HealMultiplier)
		}
		return e, nil
	}))

	mustRegister(r.RegisterAugment(AugmentIncreasePower, func(p *Params) (spell.Augment, error) {
		a := spell.NewIncreasePower()
		a.Multiplier = p.Float("multiplier", a.Multiplier)
		return a, nil
	}))
	mustRegister(r.RegisterAugment(AugmentIncreaseRange, func(p *Params) (spell.Augment, error) {
		a := spell.NewIncreaseRange()
		a.ExtraRange = p.Float("extra_range", a.ExtraRange)
		return a, nil
	}))

	return r
}

func newCone(p *Params) (spell.Shape, error) {
	cone := spell.NewConeShape()
	cone.Angle = p.Float("angle", cone.Angle)
	if cone.Angle <= 0 || cone.Angle > 180 {
		return nil, errors.Validationf("cone angle must be in (0, 180]: %g", cone.Angle)
	}

	if p.Has("layer") {
		layer := p.Float("layer", 0)
		if layer < 0 || layer > 31 || layer != float64(int(layer)) {
			return nil, errors.Validationf("cone layer must be an integer in 0..31: %g", layer)
		}
		cone.Mask = host.Layer(uint(layer))
	}
	return cone, nil
}

func mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}

// RegisterShape adds a shape variant
func (r *Registry) RegisterShape(id string, factory ShapeFactory) error {
	if factory == nil {
		return errors.InvalidArgumentf("shape %q: factory cannot be nil", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := checkID("shape", id, r.shapes[id] != nil); err != nil {
		return err
	}
	r.shapes[id] = factory
	return nil
}

// RegisterEffect adds an effect variant
func (r *Registry) RegisterEffect(id string, factory EffectFactory) error {
	if factory == nil {
		return errors.InvalidArgumentf("effect %q: factory cannot be nil", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := checkID("effect", id, r.effects[id] != nil); err != nil {
		return err
	}
	r.effects[id] = factory
	return nil
}

// RegisterAugment adds an augment variant
func (r *Registry) RegisterAugment(id string, factory AugmentFactory) error {
	if factory == nil {
		return errors.InvalidArgumentf("augment %q: factory cannot be nil", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := checkID("augment", id, r.augments[id] != nil); err != nil {
		return err
	}
	r.augments[id] = factory
	return nil
}

func checkID(kind, id string, taken bool) error {
	if id == "" {
		return errors.InvalidArgumentf("%s id cannot be empty", kind)
	}
	if taken {
		return errors.AlreadyExistsf("%s %s already registered", kind, id)
	}
	return nil
}

// Variants lists the registered ids of each kind, sorted
func (r *Registry) Variants() (shapes, effects, augments []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.shapes), sortedKeys(r.effects), sortedKeys(r.augments)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// BuildShape constructs the shape variant described by data
func (r *Registry) BuildShape(data ComponentData) (spell.Shape, error) {
	r.mu.RLock()
	factory, ok := r.shapes[data.Type]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Validationf("unknown shape type %q", data.Type)
	}

	p := newParams(data.Params)
	shape, err := factory(p)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeValidation, "shape "+data.Type)
	}
	if err := p.checkUnused("shape " + data.Type); err != nil {
		return nil, err
	}
	return shape, nil
}

// BuildEffect constructs the effect variant described by data
func (r *Registry) BuildEffect(data ComponentData) (spell.Effect, error) {
	r.mu.RLock()
	factory, ok := r.effects[data.Type]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Validationf("unknown effect type %q", data.Type)
	}

	p := newParams(data.Params)
	effect, err := factory(p)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeValidation, "effect "+data.Type)
	}
	if err := p.checkUnused("effect " + data.Type); err != nil {
		return nil, err
	}
	return effect, nil
}

// BuildAugment constructs the augment variant described by data
func (r *Registry) BuildAugment(data ComponentData) (spell.Augment, error) {
	r.mu.RLock()
	factory, ok := r.augments[data.Type]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Validationf("unknown augment type %q", data.Type)
	}

	p := newParams(data.Params)
	augment, err := factory(p)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeValidation, "augment "+data.Type)
	}
	if err := p.checkUnused("augment " + data.Type); err != nil {
		return nil, err
	}
	return augment, nil
}

// Build turns authored data into a spell definition. Missing base values take
// the definition defaults.
func (r *Registry) Build(data *SpellData) (*spell.Definition, error) {
	if data == nil {
		return nil, errors.InvalidArgument("spell data is required")
	}
	if data.Key == "" {
		return nil, errors.Validation("spell key is required")
	}
	if data.Shape.Type == "" || data.Effect.Type == "" {
		return nil, errors.Validationf("spell %s: shape and effect are required", data.Key).
			WithMeta("spell", data.Key)
	}
	if negative(data.BasePower) || negative(data.BaseRange) {
		return nil, errors.Validationf("spell %s: base power and range cannot be negative", data.Key).
			WithMeta("spell", data.Key)
	}

	shape, err := r.BuildShape(data.Shape)
	if err != nil {
		return nil, errors.Wrapf(err, "spell %s", data.Key).WithMeta("spell", data.Key)
	}
	effect, err := r.BuildEffect(data.Effect)
	if err != nil {
		return nil, errors.Wrapf(err, "spell %s", data.Key).WithMeta("spell", data.Key)
	}

	augments := make([]spell.Augment, 0, len(data.Augments))
	for i, ad := range data.Augments {
		augment, err := r.BuildAugment(ad)
		if err != nil {
			return nil, errors.Wrapf(err, "spell %s augment %d", data.Key, i).WithMeta("spell", data.Key)
		}
		augments = append(augments, augment)
	}

	def := spell.NewDefinition(data.Key, shape, effect, augments...)
	if data.Name != "" {
		def.Name = data.Name
	}
	// unset keeps the definition default, an explicit zero is kept
	if data.BasePower != nil {
		def.BasePower = *data.BasePower
	}
	if data.BaseRange != nil {
		def.BaseRange = *data.BaseRange
	}
	return def, nil
}

func negative(v *float64) bool {
	return v != nil && *v < 0
}
