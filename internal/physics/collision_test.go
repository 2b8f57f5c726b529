package physics

import (
	"math"
	"testing"
)

func TestCircleCircleContact(t *testing.T) {
	tests := []struct {
		name        string
		c1          Vec2
		r1          float64
		c2          Vec2
		r2          float64
		hit         bool
		normal      Vec2
		penetration float64
	}{
		{"overlapping on x axis", V(0, 0), 5, V(8, 0), 5, true, V(1, 0), 2},
		{"overlapping on y axis", V(0, 0), 5, V(0, -6), 5, true, V(0, -1), 4},
		{"touching", V(0, 0), 5, V(10, 0), 5, true, V(1, 0), 0},
		{"separated", V(0, 0), 5, V(11, 0), 5, false, Vec2{}, 0},
		{"coincident centers", V(3, 3), 4, V(3, 3), 6, true, V(1, 0), 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleCircle(tc.c1, tc.r1, tc.c2, tc.r2); got != tc.hit {
				t.Errorf("CircleCircle() = %v, expected %v", got, tc.hit)
			}

			c, ok := CircleCircleContact(tc.c1, tc.r1, tc.c2, tc.r2)
			if ok != tc.hit {
				t.Fatalf("CircleCircleContact() ok = %v, expected %v", ok, tc.hit)
			}
			if !ok {
				return
			}
			if math.IsNaN(c.Normal.X) || math.IsNaN(c.Normal.Y) {
				t.Fatalf("normal is NaN: %v", c.Normal)
			}
			if !approxV(c.Normal, tc.normal) {
				t.Errorf("Normal = %v, expected %v", c.Normal, tc.normal)
			}
			if !approx(c.Penetration, tc.penetration) {
				t.Errorf("Penetration = %v, expected %v", c.Penetration, tc.penetration)
			}
		})
	}
}

func TestPointInCircle(t *testing.T) {
	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"center", V(0, 0), true},
		{"on edge", V(5, 0), true},
		{"inside", V(3, 3), true},
		{"outside", V(4, 4), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PointInCircle(tc.p, V(0, 0), 5); got != tc.expected {
				t.Errorf("PointInCircle(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	a, b := V(0, 0), V(10, 0)
	tests := []struct {
		name     string
		p        Vec2
		expected Vec2
	}{
		{"projects inside", V(4, 7), V(4, 0)},
		{"clamps before start", V(-5, 2), V(0, 0)},
		{"clamps past end", V(15, -3), V(10, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClosestPointOnSegment(tc.p, a, b); !approxV(got, tc.expected) {
				t.Errorf("ClosestPointOnSegment(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}

	if got := ClosestPointOnSegment(V(9, 9), V(1, 1), V(1, 1)); got != V(1, 1) {
		t.Errorf("degenerate segment closest point = %v, expected (1, 1)", got)
	}
}

func TestCircleSegment(t *testing.T) {
	a, b := V(0, 100), V(100, 100)
	tests := []struct {
		name     string
		center   Vec2
		expected bool
	}{
		{"resting above", V(50, 95), true},
		{"clear above", V(50, 80), false},
		{"past right end", V(108, 100), true},
		{"far past right end", V(120, 100), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleSegment(tc.center, 10, a, b); got != tc.expected {
				t.Errorf("CircleSegment(%v) = %v, expected %v", tc.center, got, tc.expected)
			}
		})
	}
}

func TestCircleSegmentDegenerateMatchesPoint(t *testing.T) {
	a := V(5, 5)
	centers := []Vec2{V(5, 5), V(8, 5), V(9, 9), V(20, 0), V(5, 10)}

	for _, c := range centers {
		want := PointInCircle(a, c, 5)
		if got := CircleSegment(c, 5, a, a); got != want {
			t.Errorf("CircleSegment(%v, 5, a, a) = %v, expected %v", c, got, want)
		}
	}
}

func TestCircleSegmentContact(t *testing.T) {
	flat := Seg(0, 100, 100, 100)

	c, ok := CircleSegmentContact(V(50, 95), 10, flat)
	if !ok {
		t.Fatal("expected contact")
	}
	if !approxV(c.Normal, V(0, -1)) {
		t.Errorf("Normal = %v, expected (0, -1)", c.Normal)
	}
	if !approx(c.Penetration, 5) {
		t.Errorf("Penetration = %v, expected 5", c.Penetration)
	}

	// Center exactly on the line falls back to the upper normal.
	c, ok = CircleSegmentContact(V(50, 100), 10, flat)
	if !ok || !approxV(c.Normal, V(0, -1)) || !approx(c.Penetration, 10) {
		t.Errorf("on-line contact = %+v ok=%v, expected up normal and depth 10", c, ok)
	}

	if _, ok := CircleSegmentContact(V(50, 85), 10, flat); ok {
		t.Error("expected no contact when clear of the segment")
	}
}
