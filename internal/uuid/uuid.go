// Package uuid wraps id generation behind an interface so casts, runes and
// spawned sandbox entities can be given deterministic ids in tests.
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator is an interface for generating UUIDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// Prefixed tags every id from Base with a kind prefix, e.g. "cast_<uuid>" or
// "rune_<uuid>", so ids from different sources stay readable in logs.
type Prefixed struct {
	Prefix string
	Base   Generator
}

// NewPrefixed creates a prefixed generator backed by google/uuid
func NewPrefixed(prefix string) *Prefixed {
	return &Prefixed{Prefix: prefix, Base: NewGoogleUUIDGenerator()}
}

// New returns Prefix + "_" + Base.New()
func (p *Prefixed) New() string {
	base := p.Base
	if base == nil {
		base = NewGoogleUUIDGenerator()
	}
	if p.Prefix == "" {
		return base.New()
	}
	return p.Prefix + "_" + base.New()
}
