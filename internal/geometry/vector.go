// Package geometry holds the small amount of vector math the spell pipeline
// and the sandbox world share. Vectors are mathgl float64 vectors so values
// coming from a host engine can be passed through without conversion.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a world-space position or direction.
type Vec3 = mgl64.Vec3

// Vec2 is used only by legacy damage receivers that take a planar point.
type Vec2 = mgl64.Vec2

// Epsilon is the distance under which two points are considered coincident.
const Epsilon = 0.001

var (
	Zero    = Vec3{0, 0, 0}
	Up      = Vec3{0, 1, 0}
	Right   = Vec3{1, 0, 0}
	Forward = Vec3{0, 0, 1}
)

// Normalize returns v scaled to unit length, or the zero vector when v has no
// length. mgl64's Normalize divides by zero in that case.
func Normalize(v Vec3) Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return Zero
	}
	return v.Mul(1 / l)
}

// IsZero reports whether v has (near) zero length.
func IsZero(v Vec3) bool {
	return v.LenSqr() < 1e-12
}

// AngleDeg returns the unsigned angle between a and b in degrees, in [0, 180].
// A zero-length input yields 0.
func AngleDeg(a, b Vec3) float64 {
	denom := math.Sqrt(a.LenSqr() * b.LenSqr())
	if denom < 1e-15 {
		return 0
	}
	cos := mgl64.Clamp(a.Dot(b)/denom, -1, 1)
	return mgl64.RadToDeg(math.Acos(cos))
}

// PointAlong returns origin + direction*distance.
func PointAlong(origin, direction Vec3, distance float64) Vec3 {
	return origin.Add(direction.Mul(distance))
}

// Planar drops the z component, matching how engines widen a Vector3 to a
// Vector2.
func Planar(v Vec3) Vec2 {
	return Vec2{v[0], v[1]}
}
