package physics

import "math"

// Contact describes an overlap between two shapes. Normal is unit length and
// points from the first shape toward the second; Penetration is the overlap
// depth and is never negative. Contacts are produced and consumed within a
// single tick.
type Contact struct {
	Normal      Vec2
	Penetration float64
}

// PointInCircle reports whether p lies inside or on the circle.
func PointInCircle(p, center Vec2, radius float64) bool {
	return p.DistSq(center) <= radius*radius
}

// CircleCircle reports whether two circles overlap or touch.
func CircleCircle(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	rs := r1 + r2
	return c1.DistSq(c2) <= rs*rs
}

// CircleCircleContact returns the contact between two circles. When the
// centers coincide the normal is (1, 0) and the penetration is r1+r2.
func CircleCircleContact(c1 Vec2, r1 float64, c2 Vec2, r2 float64) (Contact, bool) {
	if !CircleCircle(c1, r1, c2, r2) {
		return Contact{}, false
	}

	d := SubV(c2, c1)
	dist := d.Len()
	normal := V(1, 0)
	if dist > 0 {
		normal = Scaled(d, 1/dist)
	}
	return Contact{Normal: normal, Penetration: r1 + r2 - dist}, true
}

// ClosestPointOnSegment projects p onto segment ab, clamped to its endpoints.
// A zero-length segment returns a.
func ClosestPointOnSegment(p, a, b Vec2) Vec2 {
	ab := SubV(b, a)
	lenSq := ab.LenSq()
	if lenSq == 0 {
		return a
	}
	t := clamp(SubV(p, a).Dot(ab)/lenSq, 0, 1)
	return AddV(a, Scaled(ab, t))
}

// CircleSegment reports whether the circle touches segment ab.
// A degenerate segment is tested as the point a.
func CircleSegment(center Vec2, radius float64, a, b Vec2) bool {
	if a == b {
		return PointInCircle(a, center, radius)
	}
	closest := ClosestPointOnSegment(center, a, b)
	return center.DistSq(closest) <= radius*radius
}

// CircleSegmentContact returns the contact pushing a circle out of seg.
// The normal points from the segment toward the circle center. If the center
// lies exactly on the segment the segment's upper normal is used.
func CircleSegmentContact(center Vec2, radius float64, seg Segment) (Contact, bool) {
	closest := ClosestPointOnSegment(center, seg.A, seg.B)
	d := SubV(center, closest)
	distSq := d.LenSq()
	if distSq >= radius*radius {
		return Contact{}, false
	}

	dist := math.Sqrt(distSq)
	normal := seg.Normal()
	if dist > 0 {
		normal = Scaled(d, 1/dist)
	}
	return Contact{Normal: normal, Penetration: radius - dist}, true
}
