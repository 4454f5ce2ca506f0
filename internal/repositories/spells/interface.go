package spells

//go:generate mockgen -destination=mock/mock.go -package=mockspells -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/rune-caster/internal/catalog"
)

// Repository defines the interface for authored spell persistence
type Repository interface {
	// Create stores a new spell
	Create(ctx context.Context, spell *catalog.SpellData) error

	// Get retrieves a spell by key
	Get(ctx context.Context, key string) (*catalog.SpellData, error)

	// List returns every stored spell
	List(ctx context.Context) ([]*catalog.SpellData, error)

	// Update replaces an existing spell
	Update(ctx context.Context, spell *catalog.SpellData) error

	// Delete removes a spell
	Delete(ctx context.Context, key string) error
}
