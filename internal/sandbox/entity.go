// Package sandbox is an in-memory host world: entities with sphere or plane
// colliders, nearest-hit ray casts, sphere overlap queries and a prefab
// spawner. The CLI and the end-to-end tests cast spells inside it.
package sandbox

import (
	"sync"

	"github.com/KirkDiggler/rune-caster/internal/domain/host"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
)

// ColliderKind selects how an entity takes part in spatial queries
type ColliderKind int

const (
	// ColliderNone entities are never returned by queries
	ColliderNone ColliderKind = iota
	ColliderSphere
	ColliderPlane
)

// Camera is a fixed view direction
type Camera struct {
	forward geometry.Vec3
}

// NewCamera creates a camera looking along forward
func NewCamera(forward geometry.Vec3) *Camera {
	return &Camera{forward: geometry.Normalize(forward)}
}

func (c *Camera) Forward() geometry.Vec3 { return c.forward }

// Entity is a sandbox object implementing host.Entity
type Entity struct {
	mu sync.RWMutex

	id       string
	name     string
	tag      string
	position geometry.Vec3
	forward  geometry.Vec3
	layer    uint
	active   bool

	collider ColliderKind
	radius   float64
	normal   geometry.Vec3

	camera    *Camera
	behaviors []any
}

// EntityConfig describes a new entity
type EntityConfig struct {
	ID       string
	Name     string
	Tag      string
	Position geometry.Vec3
	Forward  geometry.Vec3
	Layer    uint

	// Radius > 0 gives the entity a sphere collider
	Radius float64
	// PlaneNormal, when set, makes the entity an infinite plane through Position
	PlaneNormal geometry.Vec3

	Camera    *Camera
	Behaviors []any
}

// NewEntity creates an active entity
func NewEntity(cfg EntityConfig) *Entity {
	e := &Entity{
		id:        cfg.ID,
		name:      cfg.Name,
		tag:       cfg.Tag,
		position:  cfg.Position,
		forward:   geometry.Normalize(cfg.Forward),
		layer:     cfg.Layer,
		active:    true,
		radius:    cfg.Radius,
		camera:    cfg.Camera,
		behaviors: append([]any(nil), cfg.Behaviors...),
	}

	if e.name == "" {
		e.name = e.id
	}
	if geometry.IsZero(e.forward) {
		e.forward = geometry.Forward
	}

	switch {
	case !geometry.IsZero(cfg.PlaneNormal):
		e.collider = ColliderPlane
		e.normal = geometry.Normalize(cfg.PlaneNormal)
	case cfg.Radius > 0:
		e.collider = ColliderSphere
	}
	return e
}

func (e *Entity) ID() string   { return e.id }
func (e *Entity) Name() string { return e.name }
func (e *Entity) Tag() string  { return e.tag }
func (e *Entity) Layer() uint  { return e.layer }

func (e *Entity) Position() geometry.Vec3 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.position
}

func (e *Entity) Forward() geometry.Vec3 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.forward
}

// Camera returns the attached camera, nil when there is none
func (e *Entity) Camera() host.Camera {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.camera == nil {
		return nil
	}
	return e.camera
}

func (e *Entity) Behaviors() []any {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]any, len(e.behaviors))
	copy(out, e.behaviors)
	return out
}

// AddBehavior attaches a component after the existing ones
func (e *Entity) AddBehavior(b any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.behaviors = append(e.behaviors, b)
}

// SetPosition moves the entity
func (e *Entity) SetPosition(p geometry.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.position = p
}

// SetForward turns the entity; zero vectors are ignored
func (e *Entity) SetForward(f geometry.Vec3) {
	if geometry.IsZero(f) {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.forward = geometry.Normalize(f)
}

// SetCamera attaches or, with nil, removes the entity's camera
func (e *Entity) SetCamera(c *Camera) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.camera = c
}

// Active reports whether the entity takes part in queries
func (e *Entity) Active() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.active
}

// SetActive enables or disables the entity
func (e *Entity) SetActive(active bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = active
}

// Behavior returns the first behavior of type T attached to e
func Behavior[T any](e host.Entity) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	for _, b := range e.Behaviors() {
		if t, ok := b.(T); ok {
			return t, true
		}
	}
	return zero, false
}

// overlaps reports whether the entity's collider touches the query sphere and
// the position reported for it
func (e *Entity) overlaps(center geometry.Vec3, radius float64) (geometry.Vec3, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	switch e.collider {
	case ColliderSphere:
		s := geometry.Sphere{Center: e.position, Radius: e.radius}
		return e.position, s.Overlaps(center, radius)
	case ColliderPlane:
		p := geometry.Plane{Point: e.position, Normal: e.normal}
		return p.Closest(center), p.Distance(center) <= radius
	default:
		return geometry.Vec3{}, false
	}
}

func (e *Entity) intersect(origin, dir geometry.Vec3, maxDistance float64) (geometry.RayHit, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	switch e.collider {
	case ColliderSphere:
		return geometry.Sphere{Center: e.position, Radius: e.radius}.IntersectRay(origin, dir, maxDistance)
	case ColliderPlane:
		return geometry.Plane{Point: e.position, Normal: e.normal}.IntersectRay(origin, dir, maxDistance)
	default:
		return geometry.RayHit{}, false
	}
}
