package physics

import "math"

// Body is a dynamic circle. The physics functions borrow a Body for the
// duration of a call and never keep the pointer.
type Body struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
	// Mass defaults to 1 when zero or negative.
	Mass float64
	// Static bodies have infinite mass: resolution never moves them and
	// integration skips them.
	Static bool
}

// InvMass returns 1/mass, or 0 for static bodies.
func (b *Body) InvMass() float64 {
	if b.Static {
		return 0
	}
	if b.Mass <= 0 {
		return 1
	}
	return 1 / b.Mass
}

// Speed returns the magnitude of the body's velocity.
func (b *Body) Speed() float64 {
	return b.Vel.Len()
}

// Segment is a line segment, ordered left to right for terrain use.
type Segment struct {
	A, B Vec2
}

// Seg builds a segment from endpoint coordinates.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: V(x1, y1), B: V(x2, y2)}
}

// Len returns the segment length.
func (s Segment) Len() float64 {
	return s.A.Dist(s.B)
}

// Angle returns the slope angle in radians. Positive angles descend to the
// right on screen.
func (s Segment) Angle() float64 {
	return math.Atan2(s.B.Y-s.A.Y, s.B.X-s.A.X)
}

// Spans reports whether x falls within the segment's horizontal range.
func (s Segment) Spans(x float64) bool {
	return x >= s.A.X && x <= s.B.X
}

// YAt linearly interpolates the segment's height at x. Vertical segments
// return the first endpoint's height.
func (s Segment) YAt(x float64) float64 {
	dx := s.B.X - s.A.X
	if dx == 0 {
		return s.A.Y
	}
	t := (x - s.A.X) / dx
	return s.A.Y + (s.B.Y-s.A.Y)*t
}

// Normal returns the unit normal on the upper side of a left-to-right
// segment (negative Y on screen). Degenerate segments report straight up.
func (s Segment) Normal() Vec2 {
	d := SubV(s.B, s.A)
	if d.IsZero() {
		return V(0, -1)
	}
	n := V(d.Y, -d.X)
	return *n.Normalize()
}
