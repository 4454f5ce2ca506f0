package runes

import (
	"context"
	"log"
	"sync"

	"go.uber.org/multierr"

	"github.com/KirkDiggler/rune-caster/internal/domain/combat"
	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/errors"
	"github.com/KirkDiggler/rune-caster/internal/events"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
	"github.com/KirkDiggler/rune-caster/internal/uuid"
)

const (
	// GroundTag marks entities runes may be placed on
	GroundTag = "Ground"

	// DefaultPlacementRange is how far ahead a rune can be placed
	DefaultPlacementRange = 10.0

	// MaxSlots is the number of selectable rune slots
	MaxSlots = 9
)

// PlacerConfig holds configuration for the rune placer
type PlacerConfig struct {
	Types          []*Data
	PlacementRange float64
	World          host.World
	Spawner        host.Spawner

	// Optional
	Mana          *combat.Mana
	EventBus      *events.Bus
	UUIDGenerator uuid.Generator
}

// Placer places runes on the ground and drives their lifetime.
type Placer struct {
	types          []*Data
	placementRange float64
	world          host.World
	spawner        host.Spawner
	mana           *combat.Mana
	eventBus       *events.Bus
	uuidGenerator  uuid.Generator

	mu       sync.Mutex
	selected int
	active   []*Rune
}

// NewPlacer creates a rune placer
func NewPlacer(cfg *PlacerConfig) *Placer {
	if cfg.World == nil {
		panic("world is required")
	}
	if cfg.Spawner == nil {
		panic("spawner is required")
	}

	p := &Placer{
		types:          cfg.Types,
		placementRange: cfg.PlacementRange,
		world:          cfg.World,
		spawner:        cfg.Spawner,
		mana:           cfg.Mana,
		eventBus:       cfg.EventBus,
		uuidGenerator:  cfg.UUIDGenerator,
	}

	if p.placementRange <= 0 {
		p.placementRange = DefaultPlacementRange
	}
	if p.uuidGenerator == nil {
		p.uuidGenerator = uuid.NewPrefixed("rune")
	}

	return p
}

// Select picks the rune type for slot 1..9. Slots beyond the number of rune
// types are rejected.
func (p *Placer) Select(slot int) error {
	limit := min(len(p.types), MaxSlots)
	if slot < 1 || slot > limit {
		return errors.InvalidArgumentf("rune slot %d out of range 1..%d", slot, limit)
	}

	p.mu.Lock()
	p.selected = slot - 1
	p.mu.Unlock()

	log.Printf("Selected Rune: %s", p.types[slot-1].Name)
	return nil
}

// Selected returns the current rune type, nil when there are none
func (p *Placer) Selected() *Data {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.types) == 0 {
		return nil
	}
	return p.types[p.selected]
}

// Place casts a ray from origin along direction and drops the selected rune
// where it lands on the ground.
func (p *Placer) Place(ctx context.Context, origin, direction geometry.Vec3) (*Rune, error) {
	data := p.Selected()
	if data == nil {
		return nil, errors.NotFound("no rune types configured")
	}
	if data.Prefab == "" {
		return nil, errors.Validationf("rune %s has no prefab", data.Name)
	}

	dir := geometry.Normalize(direction)
	if geometry.IsZero(dir) {
		return nil, errors.InvalidArgument("placement direction is required")
	}

	hit, ok := p.world.Raycast(origin, dir, p.placementRange)
	if !ok {
		return nil, errors.NotFoundf("nothing within placement range %g", p.placementRange)
	}
	if host.IsNil(hit.Entity) || hit.Entity.Tag() != GroundTag {
		return nil, errors.InvalidArgumentf("cannot place rune on %s", host.NameOf(hit.Entity)).
			WithMeta("tag", tagOf(hit.Entity))
	}

	if p.mana != nil {
		if err := p.mana.Spend(data.ManaCost); err != nil {
			return nil, errors.Wrapf(err, "cannot place rune %s", data.Name)
		}
	}

	position := hit.Point.Add(hit.Normal.Mul(data.PositionOffset))
	entity, err := p.spawner.Spawn(data.Prefab, position, hit.Normal)
	if err != nil {
		if p.mana != nil {
			p.mana.Restore(data.ManaCost)
		}
		return nil, errors.Wrapf(err, "failed to spawn rune %s", data.Name)
	}

	r := newRune(p.uuidGenerator.New(), data, entity, position, hit.Normal, p.spawner)

	p.mu.Lock()
	p.active = append(p.active, r)
	p.mu.Unlock()

	log.Printf("Placed rune %s (%s) at %v", r.ID, data.Name, position)

	if err := p.eventBus.Emit(&events.RunePlacedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeOnRunePlaced},
		RuneID:    r.ID,
		RuneName:  data.Name,
		Position:  position,
		Normal:    hit.Normal,
		ManaCost:  data.ManaCost,
	}); err != nil {
		log.Printf("Failed to emit rune placed event: %v", err)
	}

	return r, nil
}

// Update ticks every active rune by dt seconds and drops the ones that have
// expired. Errors from individual runes are collected; every rune is ticked.
func (p *Placer) Update(ctx context.Context, dt float64) error {
	p.mu.Lock()
	active := make([]*Rune, len(p.active))
	copy(active, p.active)
	p.mu.Unlock()

	var errs error
	for _, r := range active {
		triggered, err := r.Update(ctx, dt)
		errs = multierr.Append(errs, err)
		if !triggered {
			continue
		}

		if emitErr := p.eventBus.Emit(&events.RuneTriggeredEvent{
			BaseEvent:    events.BaseEvent{Type: events.EventTypeOnRuneTriggered},
			RuneID:       r.ID,
			RuneName:     r.Data.Name,
			Position:     r.Position,
			EffectPrefab: r.Data.EffectPrefab,
		}); emitErr != nil {
			log.Printf("Failed to emit rune triggered event: %v", emitErr)
		}
	}

	p.mu.Lock()
	kept := p.active[:0]
	for _, r := range p.active {
		if !r.Expired() {
			kept = append(kept, r)
		}
	}
	p.active = kept
	p.mu.Unlock()

	return errs
}

// Active returns the runes that have not expired yet
func (p *Placer) Active() []*Rune {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]*Rune, len(p.active))
	copy(out, p.active)
	return out
}

func tagOf(e host.Entity) string {
	if host.IsNil(e) {
		return ""
	}
	return e.Tag()
}
