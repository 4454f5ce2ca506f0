package geometry

import "math"

// Sphere is a bounding sphere used by the sandbox collider.
type Sphere struct {
	Center Vec3
	Radius float64
}

// Overlaps reports whether the sphere touches the query sphere (center, radius).
func (s Sphere) Overlaps(center Vec3, radius float64) bool {
	r := s.Radius + radius
	return s.Center.Sub(center).LenSqr() <= r*r
}

// RayHit is the first contact of a ray with a sphere.
type RayHit struct {
	Distance float64
	Point    Vec3
	Normal   Vec3
}

// IntersectRay casts a ray from origin along the unit vector dir and returns the
// nearest contact within maxDistance. A ray that starts inside the sphere
// reports a contact at distance 0 with the normal pointing back at the origin.
func (s Sphere) IntersectRay(origin, dir Vec3, maxDistance float64) (RayHit, bool) {
	oc := origin.Sub(s.Center)
	b := oc.Dot(dir)
	c := oc.LenSqr() - s.Radius*s.Radius

	if c <= 0 {
		return RayHit{Distance: 0, Point: origin, Normal: dir.Mul(-1)}, true
	}
	// origin outside and pointing away
	if b > 0 {
		return RayHit{}, false
	}

	disc := b*b - c
	if disc < 0 {
		return RayHit{}, false
	}

	t := -b - math.Sqrt(disc)
	if t < 0 || t > maxDistance {
		return RayHit{}, false
	}

	point := PointAlong(origin, dir, t)
	return RayHit{
		Distance: t,
		Point:    point,
		Normal:   Normalize(point.Sub(s.Center)),
	}, true
}

// Plane is an infinite surface through Point, used for ground colliders.
type Plane struct {
	Point  Vec3
	Normal Vec3
}

// Distance returns the unsigned distance from v to the plane
func (p Plane) Distance(v Vec3) float64 {
	return math.Abs(v.Sub(p.Point).Dot(Normalize(p.Normal)))
}

// Closest returns the point on the plane nearest to v
func (p Plane) Closest(v Vec3) Vec3 {
	n := Normalize(p.Normal)
	return v.Sub(n.Mul(v.Sub(p.Point).Dot(n)))
}

// IntersectRay returns where a ray along the unit vector dir crosses the
// plane within maxDistance. The normal faces the ray origin.
func (p Plane) IntersectRay(origin, dir Vec3, maxDistance float64) (RayHit, bool) {
	n := Normalize(p.Normal)
	denom := n.Dot(dir)
	if math.Abs(denom) < 1e-9 {
		return RayHit{}, false
	}

	t := p.Point.Sub(origin).Dot(n) / denom
	if t < 0 || t > maxDistance {
		return RayHit{}, false
	}

	if denom > 0 {
		n = n.Mul(-1)
	}
	return RayHit{Distance: t, Point: PointAlong(origin, dir, t), Normal: n}, true
}
