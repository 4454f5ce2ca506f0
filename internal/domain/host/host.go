// Package host describes what the spell pipeline needs from the engine it runs
// inside: spatial queries, entity introspection, cameras and spawning. Nothing
// in here is implemented by the pipeline itself.
package host

//go:generate mockgen -destination=mock/mock_host.go -package=mockhost -source=host.go

import (
	"reflect"

	"github.com/KirkDiggler/rune-caster/internal/geometry"
)

// LayerMask filters which collision layers a spatial query sees.
type LayerMask uint32

// AllLayers matches every layer.
const AllLayers LayerMask = ^LayerMask(0)

// Layer returns the mask for a single layer index (0..31).
func Layer(index uint) LayerMask {
	return LayerMask(1) << index
}

// Contains reports whether the mask includes the given layer index.
func (m LayerMask) Contains(index uint) bool {
	return m&Layer(index) != 0
}

// Entity is an object in the world. Behaviors are the components attached to
// it, in attachment order; the damage and heal dispatchers look for receivers
// among them.
type Entity interface {
	ID() string
	Name() string
	Tag() string
	Position() geometry.Vec3
	Forward() geometry.Vec3
	Behaviors() []any
	// Camera returns the camera attached to the entity or one of its
	// children, nil when there is none.
	Camera() Camera
}

// Camera exposes the view direction of a camera.
type Camera interface {
	Forward() geometry.Vec3
}

// Overlap is one candidate returned by an overlap query.
type Overlap struct {
	Entity   Entity
	Position geometry.Vec3
}

// RaycastHit is the first thing a ray touched.
type RaycastHit struct {
	Entity   Entity
	Point    geometry.Vec3
	Normal   geometry.Vec3
	Distance float64
}

// World answers spatial questions synchronously.
type World interface {
	// OverlapSphere returns every entity whose collider touches the sphere.
	OverlapSphere(center geometry.Vec3, radius float64, mask LayerMask) []Overlap

	// Raycast returns the nearest hit within maxDistance along the unit
	// vector direction.
	Raycast(origin, direction geometry.Vec3, maxDistance float64) (RaycastHit, bool)

	// MainCamera is the scene's default camera, nil when there is none.
	MainCamera() Camera
}

// Spawner instantiates and removes prefab entities.
type Spawner interface {
	Spawn(prefab string, position, normal geometry.Vec3) (Entity, error)
	Destroy(entity Entity)
}

// IsNil reports whether e is nil or an interface holding a nil pointer, such
// as a destroyed entity handle.
func IsNil(e Entity) bool {
	if e == nil {
		return true
	}
	rv := reflect.ValueOf(e)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// SameEntity compares two entities by id; nil never matches.
func SameEntity(a, b Entity) bool {
	if IsNil(a) || IsNil(b) {
		return false
	}
	return a.ID() == b.ID()
}

// NameOf returns the entity's name or "null", for log lines.
func NameOf(e Entity) string {
	if IsNil(e) {
		return "null"
	}
	return e.Name()
}
