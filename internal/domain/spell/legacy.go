package spell

import (
	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
)

// Receiver shapes accepted from behaviors written against the older
// name-based damage convention. Go has no overloading, so a behavior carries
// at most one method per name and the order below only matters across names.

type amount interface {
	~float64 | ~float32 | ~int | ~int64
}

type (
	applyDamage[N amount]     interface{ ApplyDamage(N) }
	applyDamageAt[N amount]   interface{ ApplyDamage(N, geometry.Vec3) }
	applyDamageAt2D[N amount] interface{ ApplyDamage(N, geometry.Vec2) }
	applyDamageOn[N amount]   interface{ ApplyDamage(N, host.Entity) }
	takeDamage[N amount]      interface{ TakeDamage(N) }
	takeDamageAt[N amount]    interface{ TakeDamage(N, geometry.Vec3) }
	takeDamageAt2D[N amount]  interface{ TakeDamage(N, geometry.Vec2) }
	takeDamageOn[N amount]    interface{ TakeDamage(N, host.Entity) }
	applyHit[N amount]        interface{ ApplyHit(N) }
	applyHitAt[N amount]      interface{ ApplyHit(N, geometry.Vec3) }
	applyHitAt2D[N amount]    interface{ ApplyHit(N, geometry.Vec2) }
	applyHitOn[N amount]      interface{ ApplyHit(N, host.Entity) }
	applyHeal[N amount]       interface{ ApplyHeal(N) }
)

func applyDamageForms[N amount](num string) []Adapter {
	return []Adapter{
		adapt("ApplyDamage("+num+")", func(r applyDamage[N], h Hit) { r.ApplyDamage(N(h.Amount)) }),
		adapt("ApplyDamage("+num+", Vec3)", func(r applyDamageAt[N], h Hit) { r.ApplyDamage(N(h.Amount), h.Point) }),
		adapt("ApplyDamage("+num+", Vec2)", func(r applyDamageAt2D[N], h Hit) { r.ApplyDamage(N(h.Amount), geometry.Planar(h.Point)) }),
		adapt("ApplyDamage("+num+", Entity)", func(r applyDamageOn[N], h Hit) { r.ApplyDamage(N(h.Amount), h.Target) }),
	}
}

func takeDamageForms[N amount](num string) []Adapter {
	return []Adapter{
		adapt("TakeDamage("+num+")", func(r takeDamage[N], h Hit) { r.TakeDamage(N(h.Amount)) }),
		adapt("TakeDamage("+num+", Vec3)", func(r takeDamageAt[N], h Hit) { r.TakeDamage(N(h.Amount), h.Point) }),
		adapt("TakeDamage("+num+", Vec2)", func(r takeDamageAt2D[N], h Hit) { r.TakeDamage(N(h.Amount), geometry.Planar(h.Point)) }),
		adapt("TakeDamage("+num+", Entity)", func(r takeDamageOn[N], h Hit) { r.TakeDamage(N(h.Amount), h.Target) }),
	}
}

func applyHitForms[N amount](num string) []Adapter {
	return []Adapter{
		adapt("ApplyHit("+num+")", func(r applyHit[N], h Hit) { r.ApplyHit(N(h.Amount)) }),
		adapt("ApplyHit("+num+", Vec3)", func(r applyHitAt[N], h Hit) { r.ApplyHit(N(h.Amount), h.Point) }),
		adapt("ApplyHit("+num+", Vec2)", func(r applyHitAt2D[N], h Hit) { r.ApplyHit(N(h.Amount), geometry.Planar(h.Point)) }),
		adapt("ApplyHit("+num+", Entity)", func(r applyHitOn[N], h Hit) { r.ApplyHit(N(h.Amount), h.Target) }),
	}
}
