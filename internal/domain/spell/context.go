package spell

import (
	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
)

// Context is the per-cast state threaded from the augment pass through the
// shape into the effect. One is built per cast and owned by that cast only.
type Context struct {
	// Caster may be nil for casts with no owning entity (traps, runes).
	Caster host.Entity

	Origin geometry.Vec3
	// Direction is unit length (or zero) by the time a shape sees it.
	Direction geometry.Vec3

	Power float64
	Range float64

	Definition *Definition
	// Augments is a copy of Definition.Augments taken when the cast started.
	Augments []Augment

	World host.World
}

// CasterName is used in log lines.
func (c *Context) CasterName() string {
	if c == nil {
		return "null"
	}
	return host.NameOf(c.Caster)
}
