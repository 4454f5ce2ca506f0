package spells

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rune-caster/internal/catalog"
	"github.com/KirkDiggler/rune-caster/internal/errors"
)

// InMemoryRepository is an in-memory implementation of Repository
type InMemoryRepository struct {
	mu     sync.RWMutex
	spells map[string]*catalog.SpellData
}

// NewInMemoryRepository creates a new in-memory spell repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		spells: make(map[string]*catalog.SpellData),
	}
}

// Create stores a new spell
func (r *InMemoryRepository) Create(ctx context.Context, spell *catalog.SpellData) error {
	if err := validate(spell); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.spells[spell.Key]; exists {
		return errors.AlreadyExistsf("spell with key '%s' already exists", spell.Key).
			WithMeta("spell_key", spell.Key)
	}

	r.spells[spell.Key] = clone(spell)
	return nil
}

// Get retrieves a spell by key
func (r *InMemoryRepository) Get(ctx context.Context, key string) (*catalog.SpellData, error) {
	if key == "" {
		return nil, errors.InvalidArgument("spell key is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	spell, exists := r.spells[key]
	if !exists {
		return nil, errors.NotFoundf("spell with key '%s' not found", key).
			WithMeta("spell_key", key)
	}

	return clone(spell), nil
}

// List returns every stored spell sorted by key
func (r *InMemoryRepository) List(ctx context.Context) ([]*catalog.SpellData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*catalog.SpellData, 0, len(r.spells))
	for _, spell := range r.spells {
		result = append(result, clone(spell))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })

	return result, nil
}

// Update replaces an existing spell
func (r *InMemoryRepository) Update(ctx context.Context, spell *catalog.SpellData) error {
	if err := validate(spell); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.spells[spell.Key]; !exists {
		return errors.NotFoundf("spell with key '%s' not found", spell.Key).
			WithMeta("spell_key", spell.Key)
	}

	r.spells[spell.Key] = clone(spell)
	return nil
}

// Delete removes a spell
func (r *InMemoryRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.InvalidArgument("spell key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.spells[key]; !exists {
		return errors.NotFoundf("spell with key '%s' not found", key).
			WithMeta("spell_key", key)
	}

	delete(r.spells, key)
	return nil
}

func validate(spell *catalog.SpellData) error {
	if spell == nil {
		return errors.InvalidArgument("spell cannot be nil")
	}
	if spell.Key == "" {
		return errors.InvalidArgument("spell key is required")
	}
	return nil
}

// clone copies the data so callers cannot mutate stored records
func clone(spell *catalog.SpellData) *catalog.SpellData {
	out := *spell
	out.Shape = cloneComponent(spell.Shape)
	out.Effect = cloneComponent(spell.Effect)
	if spell.Augments != nil {
		out.Augments = make([]catalog.ComponentData, len(spell.Augments))
		for i, a := range spell.Augments {
			out.Augments[i] = cloneComponent(a)
		}
	}
	return &out
}

func cloneComponent(c catalog.ComponentData) catalog.ComponentData {
	out := catalog.ComponentData{Type: c.Type}
	if c.Params != nil {
		out.Params = make(map[string]float64, len(c.Params))
		for k, v := range c.Params {
			out.Params[k] = v
		}
	}
	return out
}
