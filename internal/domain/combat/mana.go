package combat

import (
	"sync"

	"github.com/KirkDiggler/rune-caster/internal/errors"
)

// Mana is a spendable resource pool.
type Mana struct {
	mu      sync.Mutex
	current float64
	max     float64
}

// NewMana creates a full pool
func NewMana(max float64) *Mana {
	return &Mana{current: max, max: max}
}

// Spend removes cost from the pool. It fails without changing anything when
// the pool cannot cover the cost.
func (m *Mana) Spend(cost float64) error {
	if cost < 0 {
		return errors.InvalidArgumentf("mana cost cannot be negative: %g", cost)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if cost > m.current {
		return errors.Newf(errors.CodeInsufficientResource, "not enough mana: need %g, have %g", cost, m.current).
			WithMeta("cost", cost).
			WithMeta("current", m.current)
	}
	m.current -= cost
	return nil
}

// Restore adds amount back, capped at the maximum
func (m *Mana) Restore(amount float64) {
	if amount <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.current += amount
	if m.current > m.max {
		m.current = m.max
	}
}

// Current returns the available mana
func (m *Mana) Current() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Max returns the pool size
func (m *Mana) Max() float64 {
	return m.max
}
