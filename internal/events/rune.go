package events

import (
	"github.com/KirkDiggler/rune-caster/internal/geometry"
)

// RunePlacedEvent is emitted when a rune lands on the ground
type RunePlacedEvent struct {
	BaseEvent
	RuneID   string
	RuneName string
	Position geometry.Vec3
	Normal   geometry.Vec3
	ManaCost float64
}

// RuneTriggeredEvent is emitted when a rune's lifetime runs out
type RuneTriggeredEvent struct {
	BaseEvent
	RuneID       string
	RuneName     string
	Position     geometry.Vec3
	EffectPrefab string
}
