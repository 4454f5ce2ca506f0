package spell

import (
	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
)

// ConeShape hits everything inside a sphere of ctx.Range whose bearing from the
// origin is within Angle degrees of the cast direction. The test ignores
// distance inside the sphere, so it is a spherical sector rather than a
// frustum. Sweep hits have no real contact: the point is the candidate's
// position and the normal is the reversed cast direction.
type ConeShape struct {
	Angle float64
	Mask  host.LayerMask
}

// NewConeShape returns a 45 degree cone that sees every layer
func NewConeShape() *ConeShape {
	return &ConeShape{Angle: 45, Mask: host.AllLayers}
}

func (s *ConeShape) Execute(ctx *Context, effect Effect) {
	if ctx == nil || isNil(effect) || isNil(ctx.World) {
		return
	}

	normal := ctx.Direction.Mul(-1)
	for _, candidate := range ctx.World.OverlapSphere(ctx.Origin, ctx.Range, s.Mask) {
		if host.IsNil(candidate.Entity) || host.SameEntity(candidate.Entity, ctx.Caster) {
			continue
		}

		toTarget := candidate.Position.Sub(ctx.Origin)
		dist := toTarget.Len()
		if dist <= geometry.Epsilon || dist > ctx.Range {
			continue
		}

		if geometry.AngleDeg(ctx.Direction, toTarget) <= s.Angle {
			effect.Apply(ctx, candidate.Entity, candidate.Position, normal)
		}
	}
}
