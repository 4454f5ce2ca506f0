// Package combat holds the behaviors that react to spell effects.
package combat

import (
	"log"
	"sync"

	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/domain/spell"
)

// DefaultMaxHealth is used when a Health is created without a maximum
const DefaultMaxHealth = 100.0

// Health is a hit point pool that can be attached to an entity as a behavior.
// It receives damage and heals from the spell dispatchers.
type Health struct {
	Name    string
	Max     float64
	Current float64

	// OnDeath runs once when Current first reaches zero. The host uses it to
	// deactivate the entity.
	OnDeath func(h *Health, killer host.Entity)

	mu   sync.Mutex
	dead bool
}

// NewHealth creates a full health pool
func NewHealth(name string, max float64) *Health {
	if max <= 0 {
		max = DefaultMaxHealth
	}
	return &Health{Name: name, Max: max, Current: max}
}

// ReceiveDamage implements spell.Damageable
func (h *Health) ReceiveDamage(hit spell.Hit) {
	h.mu.Lock()
	if h.dead {
		h.mu.Unlock()
		log.Printf("Health: %s is already dead, ignoring %g damage", h.Name, hit.Amount)
		return
	}

	h.Current -= hit.Amount
	if h.Current < 0 {
		h.Current = 0
	}
	log.Printf("%s took %g damage. HP=%g/%g", h.Name, hit.Amount, h.Current, h.Max)

	died := h.Current <= 0
	if died {
		h.dead = true
	}
	onDeath := h.OnDeath
	h.mu.Unlock()

	if died {
		log.Printf("%s died.", h.Name)
		if onDeath != nil {
			onDeath(h, hit.Source)
		}
	}
}

// ReceiveHeal implements spell.Healable. Heals never revive.
func (h *Health) ReceiveHeal(amount float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.dead {
		log.Printf("Health: %s is dead, ignoring heal of %g", h.Name, amount)
		return
	}

	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	log.Printf("%s healed %g. HP=%g/%g", h.Name, amount, h.Current, h.Max)
}

// Dead reports whether the pool has been emptied
func (h *Health) Dead() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dead
}

// Points returns the current hit points
func (h *Health) Points() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Current
}

// Reset refills the pool and clears the death flag
func (h *Health) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Current = h.Max
	h.dead = false
}
