package events

// Event type constants
const (
	// Spell Events
	EventTypeBeforeSpellCast EventType = "spell.before_cast"
	EventTypeOnSpellCast     EventType = "spell.cast"
	EventTypeOnSpellHit      EventType = "spell.hit"
	EventTypeOnSpellMiss     EventType = "spell.miss"

	// Rune Events
	EventTypeOnRunePlaced    EventType = "rune.placed"
	EventTypeOnRuneTriggered EventType = "rune.triggered"
)

// Priority levels for listener order
const (
	PriorityPreCalculation  = 0   // Set base values
	PriorityAugments        = 100 // Buffs that scale power or range
	PriorityStatusEffects   = 200 // Silences, cooldowns
	PriorityTemporary       = 400 // One-shot modifiers
	PriorityPostCalculation = 500 // Caps, limits
	PriorityObservers       = 900 // Logging, recording
)
