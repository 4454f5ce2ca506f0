package spell

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
)

// Hit is one delivery of an effect amount to a target.
type Hit struct {
	Amount float64
	Point  geometry.Vec3
	Source host.Entity
	Target host.Entity
}

// Damageable is implemented by behaviors that react to damage.
type Damageable interface {
	ReceiveDamage(hit Hit)
}

// Healable is implemented by behaviors that can be healed.
type Healable interface {
	ReceiveHeal(amount float64)
}

// Adapter recognises one receiver signature on a behavior. When the behavior
// matches it returns a deliver func bound to the hit and a printable
// signature.
type Adapter func(behavior any, hit Hit) (deliver func(), signature string, ok bool)

// Dispatcher finds the first behavior on a target that one of its adapters
// recognises and delivers the hit to it. Behaviors are scanned in attachment
// order and, per behavior, adapters in slice order; the first successful
// delivery ends the scan.
type Dispatcher struct {
	Kind     string
	Adapters []Adapter
}

// Dispatch returns true when a receiver was invoked. A receiver that panics is
// logged and the scan moves on.
func (d *Dispatcher) Dispatch(target host.Entity, hit Hit) bool {
	if host.IsNil(target) {
		return false
	}

	for _, behavior := range target.Behaviors() {
		if isNil(behavior) {
			continue
		}
		for _, adapt := range d.Adapters {
			deliver, signature, ok := adapt(behavior, hit)
			if !ok {
				continue
			}
			if err := invoke(deliver); err != nil {
				log.Printf("%s: %s on %T failed: %v", d.Kind, signature, behavior, err)
				continue
			}
			log.Printf("%s: invoked %s on %T", d.Kind, signature, behavior)
			return true
		}
	}

	return false
}

func invoke(deliver func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	deliver()
	return nil
}

// adapt builds an Adapter for any behavior assignable to R.
func adapt[R any](signature string, call func(R, Hit)) Adapter {
	return func(behavior any, hit Hit) (func(), string, bool) {
		r, ok := behavior.(R)
		if !ok {
			return nil, "", false
		}
		return func() { call(r, hit) }, signature, true
	}
}

// NewDamageDispatcher returns a dispatcher that prefers Damageable and falls
// back to the legacy ApplyDamage, TakeDamage and ApplyHit receivers.
func NewDamageDispatcher() *Dispatcher {
	return &Dispatcher{Kind: "DamageEffect", Adapters: DamageAdapters()}
}

// NewHealDispatcher returns a dispatcher that prefers Healable and falls back
// to a legacy ApplyHeal receiver.
func NewHealDispatcher() *Dispatcher {
	return &Dispatcher{Kind: "HealEffect", Adapters: HealAdapters()}
}

// DamageAdapters returns a fresh copy of the default damage adapter table.
func DamageAdapters() []Adapter {
	out := []Adapter{
		adapt("ReceiveDamage(Hit)", func(r Damageable, h Hit) { r.ReceiveDamage(h) }),
	}
	out = append(out, applyDamageForms[float64]("float64")...)
	out = append(out, applyDamageForms[float32]("float32")...)
	out = append(out, applyDamageForms[int]("int")...)
	out = append(out, applyDamageForms[int64]("int64")...)
	out = append(out, takeDamageForms[float64]("float64")...)
	out = append(out, takeDamageForms[float32]("float32")...)
	out = append(out, takeDamageForms[int]("int")...)
	out = append(out, takeDamageForms[int64]("int64")...)
	out = append(out, applyHitForms[float64]("float64")...)
	out = append(out, applyHitForms[float32]("float32")...)
	out = append(out, applyHitForms[int]("int")...)
	out = append(out, applyHitForms[int64]("int64")...)
	return out
}

// HealAdapters returns a fresh copy of the default heal adapter table.
func HealAdapters() []Adapter {
	return []Adapter{
		adapt("ReceiveHeal(float64)", func(r Healable, h Hit) { r.ReceiveHeal(h.Amount) }),
		adapt("ApplyHeal(float64)", func(r applyHeal[float64], h Hit) { r.ApplyHeal(h.Amount) }),
		adapt("ApplyHeal(float32)", func(r applyHeal[float32], h Hit) { r.ApplyHeal(float32(h.Amount)) }),
		adapt("ApplyHeal(int)", func(r applyHeal[int], h Hit) { r.ApplyHeal(int(h.Amount)) }),
		adapt("ApplyHeal(int64)", func(r applyHeal[int64], h Hit) { r.ApplyHeal(int64(h.Amount)) }),
	}
}
