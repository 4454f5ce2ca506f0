package catalog

import (
	"context"
	"sort"

	"github.com/KirkDiggler/rune-caster/internal/domain/runes"
	"github.com/KirkDiggler/rune-caster/internal/domain/spell"
	"github.com/KirkDiggler/rune-caster/internal/errors"
)

// Source lists stored spell data, e.g. a spells repository
type Source interface {
	List(ctx context.Context) ([]*SpellData, error)
}

// Spellbook is an immutable set of built definitions and rune types. It is
// built once and shared by every caster.
type Spellbook struct {
	spells map[string]*spell.Definition
	keys   []string
	runes  []*runes.Data
}

// NewSpellbook builds every spell and rune in file
func NewSpellbook(registry *Registry, file *File) (*Spellbook, error) {
	if registry == nil {
		return nil, errors.InvalidArgument("registry is required")
	}
	if file == nil {
		file = &File{}
	}

	data := make([]*SpellData, len(file.Spells))
	for i := range file.Spells {
		data[i] = &file.Spells[i]
	}

	book, err := build(registry, data)
	if err != nil {
		return nil, err
	}

	for i := range file.Runes {
		r, err := file.Runes[i].Build()
		if err != nil {
			return nil, err
		}
		book.runes = append(book.runes, r)
	}
	return book, nil
}

// LoadSpellbook builds a spellbook from every spell a source holds
func LoadSpellbook(ctx context.Context, registry *Registry, source Source) (*Spellbook, error) {
	if registry == nil {
		return nil, errors.InvalidArgument("registry is required")
	}
	if source == nil {
		return nil, errors.InvalidArgument("source is required")
	}

	data, err := source.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spells")
	}
	return build(registry, data)
}

func build(registry *Registry, data []*SpellData) (*Spellbook, error) {
	book := &Spellbook{spells: make(map[string]*spell.Definition, len(data))}

	for _, sd := range data {
		if sd == nil {
			continue
		}
		if _, exists := book.spells[sd.Key]; exists {
			return nil, errors.AlreadyExistsf("spell %s defined twice", sd.Key).WithMeta("spell", sd.Key)
		}

		def, err := registry.Build(sd)
		if err != nil {
			return nil, err
		}
		book.spells[sd.Key] = def
		book.keys = append(book.keys, sd.Key)
	}

	sort.Strings(book.keys)
	return book, nil
}

// Get returns the definition for key
func (b *Spellbook) Get(key string) (*spell.Definition, error) {
	def, ok := b.spells[key]
	if !ok {
		return nil, errors.NotFoundf("spell %s not found", key).WithMeta("spell", key)
	}
	return def, nil
}

// Keys returns every spell key, sorted
func (b *Spellbook) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Len returns the number of spells
func (b *Spellbook) Len() int {
	return len(b.spells)
}

// Runes returns the rune types in authored order
func (b *Spellbook) Runes() []*runes.Data {
	out := make([]*runes.Data, len(b.runes))
	copy(out, b.runes)
	return out
}
