package spell

import (
	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
)

// Effect is the terminal action of a cast. Shapes call Apply once per resolved
// target, or OnMiss when they resolved nothing and report misses.
type Effect interface {
	Apply(ctx *Context, target host.Entity, point, normal geometry.Vec3)
	OnMiss(ctx *Context, missPoint geometry.Vec3)
}

// IgnoreMiss can be embedded by effects with nothing to do on a miss.
type IgnoreMiss struct{}

func (IgnoreMiss) OnMiss(*Context, geometry.Vec3) {}
