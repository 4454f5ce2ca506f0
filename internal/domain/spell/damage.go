package spell

import (
	"log"

	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
)

// DamageEffect deals BaseDamage scaled by the cast power to the first
// damage receiver found on the target.
type DamageEffect struct {
	BaseDamage float64

	// Dispatcher defaults to NewDamageDispatcher when nil.
	Dispatcher *Dispatcher
}

// NewDamageEffect returns a damage effect with the default base damage of 10
func NewDamageEffect() *DamageEffect {
	return &DamageEffect{BaseDamage: 10}
}

// Amount is the damage a cast with this context deals.
func (e *DamageEffect) Amount(ctx *Context) float64 {
	power := 1.0
	if ctx != nil {
		power = ctx.Power
	}
	return e.BaseDamage * power
}

func (e *DamageEffect) Apply(ctx *Context, target host.Entity, point, normal geometry.Vec3) {
	damage := e.Amount(ctx)
	log.Printf("DamageEffect.Apply: target=%s, damage=%g, point=%v, caster=%s",
		host.NameOf(target), damage, point, ctx.CasterName())

	if host.IsNil(target) {
		log.Printf("DamageEffect.Apply called with null target")
		return
	}

	hit := Hit{Amount: damage, Point: point, Target: target}
	if ctx != nil {
		hit.Source = ctx.Caster
	}

	if !e.dispatcher().Dispatch(target, hit) {
		log.Printf("DamageEffect: no damage receiver on %s, ignoring", target.Name())
	}
}

func (e *DamageEffect) OnMiss(ctx *Context, missPoint geometry.Vec3) {
	log.Printf("DamageEffect.OnMiss: caster=%s, missPoint=%v", ctx.CasterName(), missPoint)
}

func (e *DamageEffect) dispatcher() *Dispatcher {
	if e.Dispatcher != nil {
		return e.Dispatcher
	}
	return defaultDamageDispatcher
}

var defaultDamageDispatcher = NewDamageDispatcher()
