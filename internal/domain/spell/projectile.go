package spell

import (
	"log"

	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
)

// ProjectileShape fires a single ray of ctx.Range and resolves exactly one
// outcome: Apply on the first thing hit, otherwise OnMiss at the ray's end.
type ProjectileShape struct {
	DebugLog bool
}

func (s *ProjectileShape) Execute(ctx *Context, effect Effect) {
	if ctx == nil || isNil(effect) {
		log.Printf("ProjectileShape.Execute called with null ctx or effect")
		return
	}

	direction := s.aim(ctx)
	if s.DebugLog {
		log.Printf("ProjectileShape.Execute: caster=%s, origin=%v, direction=%v, range=%g",
			ctx.CasterName(), ctx.Origin, direction, ctx.Range)
	}

	if !isNil(ctx.World) {
		if hit, ok := ctx.World.Raycast(ctx.Origin, direction, ctx.Range); ok {
			if s.DebugLog {
				log.Printf("ProjectileShape hit: %s at %v, normal=%v", host.NameOf(hit.Entity), hit.Point, hit.Normal)
			}
			effect.Apply(ctx, hit.Entity, hit.Point, hit.Normal)
			return
		}
	}

	missPoint := geometry.PointAlong(ctx.Origin, direction, ctx.Range)
	log.Printf("ProjectileShape missed. Miss point: %v", missPoint)
	effect.OnMiss(ctx, missPoint)
}

// aim picks where the caster is looking: a camera on the caster, the caster's
// own forward, the world's main camera when there is no caster, and finally
// the context direction.
func (s *ProjectileShape) aim(ctx *Context) geometry.Vec3 {
	var dir geometry.Vec3
	switch {
	case !host.IsNil(ctx.Caster):
		if cam := ctx.Caster.Camera(); !isNil(cam) {
			dir = cam.Forward()
		} else {
			dir = ctx.Caster.Forward()
		}
	case !isNil(ctx.World):
		if cam := ctx.World.MainCamera(); !isNil(cam) {
			dir = cam.Forward()
		}
	}

	if geometry.IsZero(dir) {
		return geometry.Normalize(ctx.Direction)
	}
	return geometry.Normalize(dir)
}
