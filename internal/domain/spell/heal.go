package spell

import (
	"log"

	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
)

// HealEffect restores Power * HealMultiplier to the first heal receiver on the
// target. It uses the same single-delivery dispatch policy as DamageEffect.
type HealEffect struct {
	IgnoreMiss

	HealMultiplier float64

	// Dispatcher defaults to NewHealDispatcher when nil.
	Dispatcher *Dispatcher
}

// NewHealEffect returns a heal effect with multiplier 1
func NewHealEffect() *HealEffect {
	return &HealEffect{HealMultiplier: 1}
}

// Amount is the healing a cast with this context restores.
func (e *HealEffect) Amount(ctx *Context) float64 {
	power := 1.0
	if ctx != nil {
		power = ctx.Power
	}
	return power * e.HealMultiplier
}

func (e *HealEffect) Apply(ctx *Context, target host.Entity, point, _ geometry.Vec3) {
	if host.IsNil(target) {
		log.Printf("HealEffect.Apply called with null target")
		return
	}

	amount := e.Amount(ctx)
	hit := Hit{Amount: amount, Point: point, Target: target}
	if ctx != nil {
		hit.Source = ctx.Caster
	}

	dispatcher := e.Dispatcher
	if dispatcher == nil {
		dispatcher = defaultHealDispatcher
	}
	if !dispatcher.Dispatch(target, hit) {
		log.Printf("HealEffect: no heal receiver on %s, ignoring", target.Name())
		return
	}

	log.Printf("HealEffect healed %s for %g", target.Name(), amount)
}

var defaultHealDispatcher = NewHealDispatcher()
