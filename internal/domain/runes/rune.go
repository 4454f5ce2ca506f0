package runes

import (
	"context"
	"log"

	"github.com/looplab/fsm"

	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/errors"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
)

// Rune lifecycle states
const (
	StateArmed     = "armed"
	StateTriggered = "triggered"
	StateExpired   = "expired"
)

// Rune lifecycle events
const (
	EventTrigger = "trigger"
	EventExpire  = "expire"
)

// Rune is a placed instance of Data.
type Rune struct {
	ID       string
	Data     *Data
	Entity   host.Entity
	Position geometry.Vec3
	Normal   geometry.Vec3

	remaining float64
	spawner   host.Spawner
	state     *fsm.FSM
}

func newRune(id string, data *Data, entity host.Entity, position, normal geometry.Vec3, spawner host.Spawner) *Rune {
	r := &Rune{
		ID:        id,
		Data:      data,
		Entity:    entity,
		Position:  position,
		Normal:    normal,
		remaining: data.Lifetime,
		spawner:   spawner,
	}

	r.state = fsm.NewFSM(
		StateArmed,
		fsm.Events{
			{Name: EventTrigger, Src: []string{StateArmed}, Dst: StateTriggered},
			{Name: EventExpire, Src: []string{StateTriggered}, Dst: StateExpired},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				log.Printf("Rune %s (%s): %s -> %s", r.ID, r.Data.Name, e.Src, e.Dst)
			},
		},
	)
	return r
}

// State returns the current lifecycle state
func (r *Rune) State() string {
	return r.state.Current()
}

// Remaining is the lifetime left in seconds
func (r *Rune) Remaining() float64 {
	return r.remaining
}

// Expired reports whether the rune has finished
func (r *Rune) Expired() bool {
	return r.state.Is(StateExpired)
}

// Update advances the rune's timer by dt seconds and triggers it once the
// lifetime runs out. It reports whether the rune triggered on this tick.
func (r *Rune) Update(ctx context.Context, dt float64) (bool, error) {
	if !r.state.Is(StateArmed) {
		return false, nil
	}

	r.remaining -= dt
	if r.Data.Infinite || r.remaining > 0 {
		return false, nil
	}

	return true, r.Trigger(ctx)
}

// Trigger releases the effect prefab at the rune's position and removes the
// rune entity.
func (r *Rune) Trigger(ctx context.Context) error {
	if err := r.state.Event(ctx, EventTrigger); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "rune cannot trigger").
			WithMeta("rune_id", r.ID).
			WithMeta("state", r.state.Current())
	}

	var spawnErr error
	if r.Data.EffectPrefab != "" && r.spawner != nil {
		if _, err := r.spawner.Spawn(r.Data.EffectPrefab, r.Position, geometry.Up); err != nil {
			spawnErr = errors.Wrapf(err, "failed to spawn effect %s for rune %s", r.Data.EffectPrefab, r.ID)
		}
	}

	if r.Entity != nil && r.spawner != nil {
		r.spawner.Destroy(r.Entity)
	}

	if err := r.state.Event(ctx, EventExpire); err != nil {
		return errors.Wrapf(err, "failed to expire rune %s", r.ID)
	}

	return spawnErr
}
