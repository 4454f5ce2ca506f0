package spell

import (
	"log"

	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
)

const (
	DefaultBasePower = 10.0
	DefaultBaseRange = 20.0
)

// Definition binds a shape, an effect and a list of augments with base
// magnitudes. Definitions are built once from authoring data and shared by
// every cast; casting never writes to them.
type Definition struct {
	Key  string
	Name string

	Shape    Shape
	Effect   Effect
	Augments []Augment

	BasePower float64
	BaseRange float64
}

// NewDefinition returns a definition with the default base power and range
func NewDefinition(key string, shape Shape, effect Effect, augments ...Augment) *Definition {
	return &Definition{
		Key:       key,
		Name:      key,
		Shape:     shape,
		Effect:    effect,
		Augments:  augments,
		BasePower: DefaultBasePower,
		BaseRange: DefaultBaseRange,
	}
}

// Cast runs one full cast: augment pass, then target resolution by the shape.
// A definition without a shape or effect logs a warning and does nothing.
func (d *Definition) Cast(world host.World, caster host.Entity, origin, direction geometry.Vec3) {
	ctx, ok := d.Prepare(world, caster, origin, direction)
	if !ok {
		return
	}
	d.Execute(ctx)
}

// Prepare builds the cast context and runs every augment over it in list
// order. It reports false when the definition is not castable.
func (d *Definition) Prepare(world host.World, caster host.Entity, origin, direction geometry.Vec3) (*Context, bool) {
	if d == nil {
		return nil, false
	}
	if isNil(d.Shape) || isNil(d.Effect) {
		log.Printf("SpellDefinition %q missing shape or effect.", d.Key)
		return nil, false
	}

	augments := make([]Augment, len(d.Augments))
	copy(augments, d.Augments)

	ctx := &Context{
		Caster:     caster,
		Origin:     origin,
		Direction:  geometry.Normalize(direction),
		Power:      d.BasePower,
		Range:      d.BaseRange,
		Definition: d,
		Augments:   augments,
		World:      world,
	}

	applyAugments(ctx, ctx.Augments)
	return ctx, true
}

// Execute hands a prepared context to the shape.
func (d *Definition) Execute(ctx *Context) {
	if ctx == nil || isNil(d.Shape) || isNil(d.Effect) {
		return
	}
	d.Shape.Execute(ctx, d.Effect)
}
