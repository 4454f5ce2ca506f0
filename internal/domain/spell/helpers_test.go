package spell_test

import (
	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/domain/spell"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
)

type testEntity struct {
	id        string
	position  geometry.Vec3
	forward   geometry.Vec3
	behaviors []any
	camera    host.Camera
}

func newEntity(id string, behaviors ...any) *testEntity {
	return &testEntity{id: id, forward: geometry.Forward, behaviors: behaviors}
}

func (e *testEntity) ID() string              { return e.id }
func (e *testEntity) Name() string            { return e.id }
func (e *testEntity) Tag() string             { return "" }
func (e *testEntity) Position() geometry.Vec3 { return e.position }
func (e *testEntity) Forward() geometry.Vec3  { return e.forward }
func (e *testEntity) Behaviors() []any        { return e.behaviors }
func (e *testEntity) Camera() host.Camera     { return e.camera }

type fixedCamera struct{ forward geometry.Vec3 }

func (c fixedCamera) Forward() geometry.Vec3 { return c.forward }

type applyCall struct {
	target host.Entity
	point  geometry.Vec3
	normal geometry.Vec3
	power  float64
}

// recordingEffect remembers every call a shape makes.
type recordingEffect struct {
	applies []applyCall
	misses  []geometry.Vec3
}

func (r *recordingEffect) Apply(ctx *spell.Context, target host.Entity, point, normal geometry.Vec3) {
	r.applies = append(r.applies, applyCall{target: target, point: point, normal: normal, power: ctx.Power})
}

func (r *recordingEffect) OnMiss(_ *spell.Context, missPoint geometry.Vec3) {
	r.misses = append(r.misses, missPoint)
}

// legacyFloatTarget mimics a behavior using the name-based damage convention.
type legacyFloatTarget struct {
	received []float64
}

func (l *legacyFloatTarget) ApplyDamage(amount float64) {
	l.received = append(l.received, amount)
}

type recordingShape struct {
	contexts []*spell.Context
}

func (s *recordingShape) Execute(ctx *spell.Context, _ spell.Effect) {
	s.contexts = append(s.contexts, ctx)
}
