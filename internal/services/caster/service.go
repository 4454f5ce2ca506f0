package caster

//go:generate mockgen -destination=mock/mock_service.go -package=mockcaster -source=service.go

import (
	"context"
	"log"

	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/domain/spell"
	"github.com/KirkDiggler/rune-caster/internal/errors"
	"github.com/KirkDiggler/rune-caster/internal/events"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
	"github.com/KirkDiggler/rune-caster/internal/uuid"
)

// Service casts spells from a spellbook into a world
type Service interface {
	// Cast resolves the spell by key and runs it from the input's origin
	Cast(ctx context.Context, input *CastInput) (*CastResult, error)
}

// Spellbook resolves built spell definitions by key
type Spellbook interface {
	Get(key string) (*spell.Definition, error)
}

// CastInput contains data for a single cast
type CastInput struct {
	SpellKey string
	Caster   host.Entity // Optional

	// CastOrigin is the entity the spell leaves from, defaults to Caster
	CastOrigin host.Entity

	// Direction overrides the origin's forward vector when set
	Direction *geometry.Vec3
}

// Hit is one target the effect was applied to
type Hit struct {
	Target host.Entity
	Point  geometry.Vec3
	Normal geometry.Vec3
}

// CastResult describes how a cast resolved
type CastResult struct {
	CastID    string
	SpellKey  string
	Origin    geometry.Vec3
	Direction geometry.Vec3
	Power     float64
	Range     float64
	Hits      []Hit
	Missed    bool
	MissPoint geometry.Vec3
	Cancelled bool
}

type service struct {
	spellbook     Spellbook
	world         host.World
	eventBus      *events.Bus
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Spellbook     Spellbook      // Required
	World         host.World     // Required
	EventBus      *events.Bus    // Optional
	UUIDGenerator uuid.Generator // Optional, will use default if nil
}

// NewService creates a new caster service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Spellbook == nil {
		panic("spellbook is required")
	}
	if cfg.World == nil {
		panic("world is required")
	}

	svc := &service{
		spellbook:     cfg.Spellbook,
		world:         cfg.World,
		eventBus:      cfg.EventBus,
		uuidGenerator: cfg.UUIDGenerator,
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewPrefixed("cast")
	}

	return svc
}

// Cast resolves and runs one spell. Listener failures after the spell has
// resolved are logged and do not fail the cast.
func (s *service) Cast(ctx context.Context, input *CastInput) (*CastResult, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.SpellKey == "" {
		return nil, errors.InvalidArgument("spell key is required")
	}

	origin := input.CastOrigin
	if origin == nil {
		origin = input.Caster
	}
	if origin == nil {
		return nil, errors.InvalidArgument("caster or cast origin is required").
			WithMeta("spell_key", input.SpellKey)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "cast aborted")
	}

	def, err := s.spellbook.Get(input.SpellKey)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve spell %s", input.SpellKey)
	}

	direction := origin.Forward()
	if input.Direction != nil {
		direction = geometry.Normalize(*input.Direction)
	}

	spellCtx, ok := def.Prepare(s.world, input.Caster, origin.Position(), direction)
	if !ok {
		return nil, errors.Validationf("spell %s cannot be cast", input.SpellKey).
			WithMeta("spell_key", input.SpellKey)
	}

	result := &CastResult{
		CastID:    s.uuidGenerator.New(),
		SpellKey:  def.Key,
		Origin:    spellCtx.Origin,
		Direction: spellCtx.Direction,
	}

	before := &events.BeforeSpellCastEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeBeforeSpellCast},
		CastID:    result.CastID,
		SpellKey:  def.Key,
		Context:   spellCtx,
	}
	if err := s.eventBus.Emit(before); err != nil {
		return nil, errors.Wrapf(err, "cast %s rejected", result.CastID)
	}

	result.Power = spellCtx.Power
	result.Range = spellCtx.Range

	if before.IsCancelled() {
		log.Printf("Caster: cast %s of %s cancelled", result.CastID, def.Key)
		result.Cancelled = true
		return result, nil
	}

	rec := &recorder{Effect: def.Effect}
	def.Shape.Execute(spellCtx, rec)

	result.Hits = rec.hits
	result.Missed = rec.missed
	result.MissPoint = rec.missPoint

	s.publish(result, input.Caster)

	log.Printf("Caster: %s cast %s (%s): hits=%d missed=%t",
		host.NameOf(input.Caster), def.Key, result.CastID, len(result.Hits), result.Missed)

	return result, nil
}

func (s *service) publish(result *CastResult, caster host.Entity) {
	for _, hit := range result.Hits {
		s.emit(&events.SpellHitEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypeOnSpellHit},
			CastID:    result.CastID,
			SpellKey:  result.SpellKey,
			Caster:    caster,
			Target:    hit.Target,
			Point:     hit.Point,
			Normal:    hit.Normal,
		})
	}

	if result.Missed {
		s.emit(&events.SpellMissEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypeOnSpellMiss},
			CastID:    result.CastID,
			SpellKey:  result.SpellKey,
			Caster:    caster,
			Point:     result.MissPoint,
		})
	}

	s.emit(&events.SpellCastEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeOnSpellCast},
		CastID:    result.CastID,
		SpellKey:  result.SpellKey,
		Caster:    caster,
		Origin:    result.Origin,
		Direction: result.Direction,
		Power:     result.Power,
		Range:     result.Range,
		Hits:      len(result.Hits),
		Missed:    result.Missed,
	})
}

func (s *service) emit(event events.Event) {
	if err := s.eventBus.Emit(event); err != nil {
		log.Printf("Caster: %v", err)
	}
}

// recorder forwards to the spell's effect and keeps what the shape resolved
type recorder struct {
	spell.Effect

	hits      []Hit
	missed    bool
	missPoint geometry.Vec3
}

func (r *recorder) Apply(ctx *spell.Context, target host.Entity, point, normal geometry.Vec3) {
	r.hits = append(r.hits, Hit{Target: target, Point: point, Normal: normal})
	r.Effect.Apply(ctx, target, point, normal)
}

func (r *recorder) OnMiss(ctx *spell.Context, missPoint geometry.Vec3) {
	r.missed = true
	r.missPoint = missPoint
	r.Effect.OnMiss(ctx, missPoint)
}
