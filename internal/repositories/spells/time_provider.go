package spells

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mockspells github.com/KirkDiggler/rune-caster/internal/repositories/spells TimeProvider

// TimeProvider stamps stored records
type TimeProvider interface {
	Now() time.Time
}

type realTime struct{}

func (realTime) Now() time.Time { return time.Now().UTC() }
