package sandbox

import (
	"log"
	"sync"

	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/errors"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
	"github.com/KirkDiggler/rune-caster/internal/uuid"
)

// Prefab is a template the spawner instantiates
type Prefab struct {
	Name   string
	Tag    string
	Layer  uint
	Radius float64
}

// WorldConfig holds configuration for a sandbox world
type WorldConfig struct {
	MainCamera    *Camera
	UUIDGenerator uuid.Generator
}

// World implements host.World and host.Spawner in memory
type World struct {
	mu         sync.RWMutex
	entities   []*Entity
	byID       map[string]*Entity
	prefabs    map[string]Prefab
	mainCamera *Camera
	ids        uuid.Generator
}

// NewWorld creates an empty world
func NewWorld(cfg *WorldConfig) *World {
	if cfg == nil {
		cfg = &WorldConfig{}
	}

	ids := cfg.UUIDGenerator
	if ids == nil {
		ids = uuid.NewPrefixed("entity")
	}

	return &World{
		byID:       make(map[string]*Entity),
		prefabs:    make(map[string]Prefab),
		mainCamera: cfg.MainCamera,
		ids:        ids,
	}
}

// Add places an entity in the world
func (w *World) Add(e *Entity) error {
	if e == nil {
		return errors.InvalidArgument("entity cannot be nil")
	}
	if e.ID() == "" {
		return errors.InvalidArgument("entity ID is required")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.byID[e.ID()]; exists {
		return errors.AlreadyExistsf("entity with ID '%s' already exists", e.ID()).
			WithMeta("entity_id", e.ID())
	}

	w.entities = append(w.entities, e)
	w.byID[e.ID()] = e
	return nil
}

// Get returns the entity with the given id
func (w *World) Get(id string) (*Entity, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	e, ok := w.byID[id]
	if !ok {
		return nil, errors.NotFoundf("entity with ID '%s' not found", id).
			WithMeta("entity_id", id)
	}
	return e, nil
}

// Remove deletes the entity with the given id; unknown ids are ignored
func (w *World) Remove(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.byID[id]; !ok {
		return
	}
	delete(w.byID, id)
	for i, e := range w.entities {
		if e.ID() == id {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			break
		}
	}
}

// Entities returns every entity in insertion order
func (w *World) Entities() []*Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]*Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// SetMainCamera replaces the scene camera
func (w *World) SetMainCamera(c *Camera) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mainCamera = c
}

// MainCamera implements host.World
func (w *World) MainCamera() host.Camera {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.mainCamera == nil {
		return nil
	}
	return w.mainCamera
}

// OverlapSphere implements host.World. Inactive entities and entities on
// layers outside mask are skipped.
func (w *World) OverlapSphere(center geometry.Vec3, radius float64, mask host.LayerMask) []host.Overlap {
	var out []host.Overlap
	for _, e := range w.Entities() {
		if !e.Active() || !mask.Contains(e.Layer()) {
			continue
		}
		if pos, ok := e.overlaps(center, radius); ok {
			out = append(out, host.Overlap{Entity: e, Position: pos})
		}
	}
	return out
}

// Raycast implements host.World. Colliders that contain the ray origin are
// ignored.
func (w *World) Raycast(origin, direction geometry.Vec3, maxDistance float64) (host.RaycastHit, bool) {
	dir := geometry.Normalize(direction)
	if geometry.IsZero(dir) {
		return host.RaycastHit{}, false
	}

	var (
		best  host.RaycastHit
		found bool
	)
	for _, e := range w.Entities() {
		if !e.Active() {
			continue
		}
		hit, ok := e.intersect(origin, dir, maxDistance)
		if !ok || hit.Distance <= 0 {
			continue
		}
		if !found || hit.Distance < best.Distance {
			best = host.RaycastHit{Entity: e, Point: hit.Point, Normal: hit.Normal, Distance: hit.Distance}
			found = true
		}
	}
	return best, found
}

// RegisterPrefab makes a prefab available to Spawn
func (w *World) RegisterPrefab(p Prefab) error {
	if p.Name == "" {
		return errors.InvalidArgument("prefab name is required")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.prefabs[p.Name]; exists {
		return errors.AlreadyExistsf("prefab %s already registered", p.Name)
	}
	w.prefabs[p.Name] = p
	return nil
}

// Spawn implements host.Spawner. The new entity faces along normal.
func (w *World) Spawn(prefab string, position, normal geometry.Vec3) (host.Entity, error) {
	w.mu.RLock()
	p, ok := w.prefabs[prefab]
	w.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("prefab %s not found", prefab).WithMeta("prefab", prefab)
	}

	id := w.ids.New()
	e := NewEntity(EntityConfig{
		ID:       id,
		Name:     p.Name,
		Tag:      p.Tag,
		Layer:    p.Layer,
		Radius:   p.Radius,
		Position: position,
		Forward:  normal,
	})
	if err := w.Add(e); err != nil {
		return nil, err
	}

	log.Printf("Sandbox: spawned %s (%s) at %v", p.Name, id, position)
	return e, nil
}

// Destroy implements host.Spawner
func (w *World) Destroy(entity host.Entity) {
	if entity == nil {
		return
	}
	w.Remove(entity.ID())
	log.Printf("Sandbox: destroyed %s (%s)", entity.Name(), entity.ID())
}
