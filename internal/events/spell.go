package events

import (
	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/domain/spell"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
)

// BeforeSpellCastEvent is emitted after the augment pass and before the shape
// runs. Listeners may adjust Context.Power or Context.Range, or cancel the cast.
type BeforeSpellCastEvent struct {
	BaseEvent
	CastID   string
	SpellKey string
	Context  *spell.Context
}

// SpellCastEvent is emitted once a cast has been resolved
type SpellCastEvent struct {
	BaseEvent
	CastID    string
	SpellKey  string
	Caster    host.Entity
	Origin    geometry.Vec3
	Direction geometry.Vec3
	Power     float64
	Range     float64
	Hits      int
	Missed    bool
}

// SpellHitEvent is emitted for every target an effect was applied to
type SpellHitEvent struct {
	BaseEvent
	CastID   string
	SpellKey string
	Caster   host.Entity
	Target   host.Entity
	Point    geometry.Vec3
	Normal   geometry.Vec3
}

// SpellMissEvent is emitted when a ray spell hits nothing
type SpellMissEvent struct {
	BaseEvent
	CastID   string
	SpellKey string
	Caster   host.Entity
	Point    geometry.Vec3
}
