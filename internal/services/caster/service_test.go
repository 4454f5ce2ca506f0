package caster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	mockhost "github.com/KirkDiggler/rune-caster/internal/domain/host/mock"
	"github.com/KirkDiggler/rune-caster/internal/domain/spell"
	"github.com/KirkDiggler/rune-caster/internal/errors"
	"github.com/KirkDiggler/rune-caster/internal/events"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
	"github.com/KirkDiggler/rune-caster/internal/services/caster"
	mockcaster "github.com/KirkDiggler/rune-caster/internal/services/caster/mock"
	mockuuid "github.com/KirkDiggler/rune-caster/internal/uuid/mocks"
)

type CasterServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSpellbook *mockcaster.MockSpellbook
	mockWorld     *mockhost.MockWorld
	mockCaster    *mockhost.MockEntity
	mockTarget    *mockhost.MockEntity
	mockUUID      *mockuuid.MockGenerator
	bus           *events.Bus
	service       caster.Service
	ctx           context.Context

	target *damageTarget
	bolt   *spell.Definition
}

type damageTarget struct {
	hits []spell.Hit
}

func (d *damageTarget) ReceiveDamage(hit spell.Hit) { d.hits = append(d.hits, hit) }

func (s *CasterServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSpellbook = mockcaster.NewMockSpellbook(s.ctrl)
	s.mockWorld = mockhost.NewMockWorld(s.ctrl)
	s.mockCaster = mockhost.NewMockEntity(s.ctrl)
	s.mockTarget = mockhost.NewMockEntity(s.ctrl)
	s.mockUUID = mockuuid.NewMockGenerator(s.ctrl)
	s.bus = events.NewBus()
	s.ctx = context.Background()

	s.target = &damageTarget{}
	s.bolt = spell.NewDefinition("bolt", &spell.ProjectileShape{}, spell.NewDamageEffect(),
		&spell.IncreasePower{Multiplier: 1.5}, &spell.IncreaseRange{ExtraRange: 5})

	s.mockCaster.EXPECT().ID().Return("wizard").AnyTimes()
	s.mockCaster.EXPECT().Name().Return("Wizard").AnyTimes()
	s.mockCaster.EXPECT().Position().Return(geometry.Vec3{0, 1, 0}).AnyTimes()
	s.mockCaster.EXPECT().Forward().Return(geometry.Forward).AnyTimes()
	s.mockCaster.EXPECT().Camera().Return(nil).AnyTimes()
	s.mockTarget.EXPECT().ID().Return("dummy").AnyTimes()
	s.mockTarget.EXPECT().Name().Return("Dummy").AnyTimes()
	s.mockTarget.EXPECT().Behaviors().Return([]any{s.target}).AnyTimes()
	s.mockUUID.EXPECT().New().Return("cast_1").AnyTimes()

	s.service = caster.NewService(&caster.ServiceConfig{
		Spellbook:     s.mockSpellbook,
		World:         s.mockWorld,
		EventBus:      s.bus,
		UUIDGenerator: s.mockUUID,
	})
}

func (s *CasterServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCasterServiceSuite(t *testing.T) {
	suite.Run(t, new(CasterServiceTestSuite))
}

func (s *CasterServiceTestSuite) TestCast_Hit() {
	s.mockSpellbook.EXPECT().Get("bolt").Return(s.bolt, nil)
	s.mockWorld.EXPECT().
		Raycast(geometry.Vec3{0, 1, 0}, geometry.Forward, 25.0).
		Return(host.RaycastHit{
			Entity: s.mockTarget,
			Point:  geometry.Vec3{0, 1, 15},
			Normal: geometry.Vec3{0, 0, -1},
		}, true)

	var hitEvents []*events.SpellHitEvent
	var castEvents []*events.SpellCastEvent
	s.bus.Subscribe(events.EventTypeOnSpellHit, events.NewFuncListener("hits", events.PriorityObservers,
		func(e events.Event) error {
			hitEvents = append(hitEvents, e.(*events.SpellHitEvent))
			return nil
		}))
	s.bus.Subscribe(events.EventTypeOnSpellCast, events.NewFuncListener("casts", events.PriorityObservers,
		func(e events.Event) error {
			castEvents = append(castEvents, e.(*events.SpellCastEvent))
			return nil
		}))

	result, err := s.service.Cast(s.ctx, &caster.CastInput{SpellKey: "bolt", Caster: s.mockCaster})
	s.Require().NoError(err)

	s.Equal("cast_1", result.CastID)
	s.Equal(15.0, result.Power)
	s.Equal(25.0, result.Range)
	s.False(result.Missed)
	s.Require().Len(result.Hits, 1)
	s.Equal(geometry.Vec3{0, 1, 15}, result.Hits[0].Point)

	s.Require().Len(s.target.hits, 1)
	s.Equal(150.0, s.target.hits[0].Amount)

	s.Require().Len(hitEvents, 1)
	s.Equal("cast_1", hitEvents[0].CastID)
	s.Require().Len(castEvents, 1)
	s.Equal(1, castEvents[0].Hits)
	s.Equal(15.0, castEvents[0].Power)
}

func (s *CasterServiceTestSuite) TestCast_Miss() {
	s.mockSpellbook.EXPECT().Get("bolt").Return(s.bolt, nil)
	s.mockWorld.EXPECT().Raycast(gomock.Any(), gomock.Any(), 25.0).Return(host.RaycastHit{}, false)

	var misses []*events.SpellMissEvent
	s.bus.Subscribe(events.EventTypeOnSpellMiss, events.NewFuncListener("misses", events.PriorityObservers,
		func(e events.Event) error {
			misses = append(misses, e.(*events.SpellMissEvent))
			return nil
		}))

	result, err := s.service.Cast(s.ctx, &caster.CastInput{SpellKey: "bolt", Caster: s.mockCaster})
	s.Require().NoError(err)

	s.True(result.Missed)
	s.Empty(result.Hits)
	s.Equal(geometry.Vec3{0, 1, 25}, result.MissPoint)
	s.Require().Len(misses, 1)
	s.Equal(result.MissPoint, misses[0].Point)
}

func (s *CasterServiceTestSuite) TestCast_DirectionOverride() {
	shape := &directionShape{}
	def := spell.NewDefinition("probe", shape, spell.NewDamageEffect())
	s.mockSpellbook.EXPECT().Get("probe").Return(def, nil)

	dir := geometry.Vec3{3, 0, 0}
	result, err := s.service.Cast(s.ctx, &caster.CastInput{
		SpellKey:  "probe",
		Caster:    s.mockCaster,
		Direction: &dir,
	})
	s.Require().NoError(err)
	s.Equal(geometry.Right, result.Direction)
	s.Equal(geometry.Right, shape.direction)
}

func (s *CasterServiceTestSuite) TestCast_CastOrigin() {
	wand := mockhost.NewMockEntity(s.ctrl)
	wand.EXPECT().Position().Return(geometry.Vec3{1, 1, 1})
	wand.EXPECT().Forward().Return(geometry.Right)

	shape := &directionShape{}
	def := spell.NewDefinition("probe", shape, spell.NewDamageEffect())
	s.mockSpellbook.EXPECT().Get("probe").Return(def, nil)

	result, err := s.service.Cast(s.ctx, &caster.CastInput{
		SpellKey:   "probe",
		Caster:     s.mockCaster,
		CastOrigin: wand,
	})
	s.Require().NoError(err)
	s.Equal(geometry.Vec3{1, 1, 1}, result.Origin)
	s.Equal(geometry.Right, shape.direction)
	s.Same(s.mockCaster, shape.caster)
}

func (s *CasterServiceTestSuite) TestCast_BeforeCastListenerAdjustsPower() {
	s.mockSpellbook.EXPECT().Get("bolt").Return(s.bolt, nil)
	s.mockWorld.EXPECT().Raycast(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(host.RaycastHit{Entity: s.mockTarget}, true)

	s.bus.Subscribe(events.EventTypeBeforeSpellCast, events.NewFuncListener("empower", events.PriorityAugments,
		func(e events.Event) error {
			e.(*events.BeforeSpellCastEvent).Context.Power *= 2
			return nil
		}))

	result, err := s.service.Cast(s.ctx, &caster.CastInput{SpellKey: "bolt", Caster: s.mockCaster})
	s.Require().NoError(err)
	s.Equal(30.0, result.Power)
	s.Require().Len(s.target.hits, 1)
	s.Equal(300.0, s.target.hits[0].Amount)

	// the definition is untouched for the next cast
	s.Equal(10.0, s.bolt.BasePower)
}

func (s *CasterServiceTestSuite) TestCast_Cancelled() {
	s.mockSpellbook.EXPECT().Get("bolt").Return(s.bolt, nil)

	var casts int
	s.bus.Subscribe(events.EventTypeBeforeSpellCast, events.NewFuncListener("silence", events.PriorityStatusEffects,
		func(e events.Event) error {
			e.Cancel()
			return nil
		}))
	s.bus.Subscribe(events.EventTypeOnSpellCast, events.NewFuncListener("casts", events.PriorityObservers,
		func(events.Event) error {
			casts++
			return nil
		}))

	result, err := s.service.Cast(s.ctx, &caster.CastInput{SpellKey: "bolt", Caster: s.mockCaster})
	s.Require().NoError(err)
	s.True(result.Cancelled)
	s.Empty(s.target.hits)
	s.Zero(casts)
}

func (s *CasterServiceTestSuite) TestCast_ListenerRejects() {
	s.mockSpellbook.EXPECT().Get("bolt").Return(s.bolt, nil)
	s.bus.Subscribe(events.EventTypeBeforeSpellCast, events.NewFuncListener("broken", 0,
		func(events.Event) error { return errors.Internalf("boom") }))

	result, err := s.service.Cast(s.ctx, &caster.CastInput{SpellKey: "bolt", Caster: s.mockCaster})
	s.Error(err)
	s.Nil(result)
}

func (s *CasterServiceTestSuite) TestCast_ObserverErrorDoesNotFailCast() {
	s.mockSpellbook.EXPECT().Get("bolt").Return(s.bolt, nil)
	s.mockWorld.EXPECT().Raycast(gomock.Any(), gomock.Any(), gomock.Any()).Return(host.RaycastHit{}, false)
	s.bus.Subscribe(events.EventTypeOnSpellMiss, events.NewFuncListener("broken", 0,
		func(events.Event) error { return errors.Internalf("boom") }))

	result, err := s.service.Cast(s.ctx, &caster.CastInput{SpellKey: "bolt", Caster: s.mockCaster})
	s.Require().NoError(err)
	s.True(result.Missed)
}

func (s *CasterServiceTestSuite) TestCast_Errors() {
	_, err := s.service.Cast(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.Cast(s.ctx, &caster.CastInput{Caster: s.mockCaster})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.Cast(s.ctx, &caster.CastInput{SpellKey: "bolt"})
	s.True(errors.IsInvalidArgument(err))

	s.mockSpellbook.EXPECT().Get("nope").Return(nil, errors.NotFound("spell nope not found"))
	_, err = s.service.Cast(s.ctx, &caster.CastInput{SpellKey: "nope", Caster: s.mockCaster})
	s.True(errors.IsNotFound(err))

	broken := spell.NewDefinition("broken", nil, spell.NewDamageEffect())
	s.mockSpellbook.EXPECT().Get("broken").Return(broken, nil)
	_, err = s.service.Cast(s.ctx, &caster.CastInput{SpellKey: "broken", Caster: s.mockCaster})
	s.True(errors.IsValidation(err))

	cancelled, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err = s.service.Cast(cancelled, &caster.CastInput{SpellKey: "bolt", Caster: s.mockCaster})
	s.Error(err)
}

func (s *CasterServiceTestSuite) TestNewServiceRequiresSpellbook() {
	s.Panics(func() {
		caster.NewService(&caster.ServiceConfig{World: s.mockWorld})
	})
	s.Panics(func() {
		caster.NewService(&caster.ServiceConfig{Spellbook: s.mockSpellbook})
	})
}

// directionShape records the context it was executed with
type directionShape struct {
	direction geometry.Vec3
	caster    host.Entity
}

func (d *directionShape) Execute(ctx *spell.Context, _ spell.Effect) {
	d.direction = ctx.Direction
	d.caster = ctx.Caster
}
