package physics

import (
	"math"
	"testing"
)

func TestResolveAgainstStaticBody(t *testing.T) {
	ground := &Body{Pos: V(0, 10), Radius: 5, Static: true}
	ball := &Body{Pos: V(0, 0), Vel: V(0, 5), Radius: 5, Mass: 1}

	ResolveCircles(ground, ball, Contact{Normal: V(0, -1)}, 0.7)

	if !approx(ball.Vel.Y, -3.5) {
		t.Errorf("ball Vel.Y = %v, expected -3.5", ball.Vel.Y)
	}
	if ground.Vel != (Vec2{}) || ground.Pos != V(0, 10) {
		t.Errorf("static body moved: pos=%v vel=%v", ground.Pos, ground.Vel)
	}
}

func TestResolvePositionalSplit(t *testing.T) {
	tests := []struct {
		name         string
		massA, massB float64
		moveA, moveB float64
	}{
		{"equal masses", 1, 1, 1, 1},
		{"heavy A", 3, 1, 0.5, 1.5},
		{"default mass", 0, 1, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := &Body{Pos: V(0, 0), Radius: 5, Mass: tc.massA}
			b := &Body{Pos: V(8, 0), Radius: 5, Mass: tc.massB}
			c, _ := CircleCircleContact(a.Pos, a.Radius, b.Pos, b.Radius)

			ResolveCircles(a, b, c, 1)

			if !approx(-a.Pos.X, tc.moveA) {
				t.Errorf("A moved %v, expected %v", -a.Pos.X, tc.moveA)
			}
			if !approx(b.Pos.X-8, tc.moveB) {
				t.Errorf("B moved %v, expected %v", b.Pos.X-8, tc.moveB)
			}
			if !approx(a.Pos.Dist(b.Pos), 10) {
				t.Errorf("distance after correction = %v, expected 10", a.Pos.Dist(b.Pos))
			}
		})
	}
}

func TestResolveDoesNotAddEnergy(t *testing.T) {
	velocities := []struct{ a, b Vec2 }{
		{V(2, 0), V(-2, 0)},
		{V(5, 1), V(0, 0)},
		{V(1, 3), V(-4, -1)},
		{V(0, 0), V(-0.5, 0.2)},
	}
	masses := []float64{0.5, 1, 4}
	restitutions := []float64{0, 0.3, 0.7, 1}

	for _, vel := range velocities {
		for _, m := range masses {
			for _, e := range restitutions {
				a := &Body{Pos: V(0, 0), Vel: vel.a, Radius: 5, Mass: m}
				b := &Body{Pos: V(9, 0), Vel: vel.b, Radius: 5, Mass: 1}
				c, ok := CircleCircleContact(a.Pos, a.Radius, b.Pos, b.Radius)
				if !ok {
					t.Fatal("expected contact")
				}

				before := math.Abs(SubV(b.Vel, a.Vel).Dot(c.Normal))
				ResolveCircles(a, b, c, e)
				after := math.Abs(SubV(b.Vel, a.Vel).Dot(c.Normal))

				if after > before+eps {
					t.Errorf("vel=%v m=%v e=%v: normal speed grew from %v to %v", vel, m, e, before, after)
				}
			}
		}
	}
}

func TestResolveSeparatingBodiesKeepVelocity(t *testing.T) {
	a := &Body{Pos: V(0, 0), Vel: V(-1, 0), Radius: 5}
	b := &Body{Pos: V(8, 0), Vel: V(1, 0), Radius: 5}

	DetectAndResolve(a, b, 0.5)

	if a.Vel != V(-1, 0) || b.Vel != V(1, 0) {
		t.Errorf("velocities changed for separating bodies: a=%v b=%v", a.Vel, b.Vel)
	}
}

func TestDetectAndResolveNoContact(t *testing.T) {
	a := &Body{Pos: V(0, 0), Vel: V(1, 0), Radius: 1}
	b := &Body{Pos: V(10, 0), Vel: V(-1, 0), Radius: 1}

	if _, ok := DetectAndResolve(a, b, 1); ok {
		t.Fatal("expected no contact")
	}
	if a.Pos != V(0, 0) || b.Pos != V(10, 0) || a.Vel != V(1, 0) || b.Vel != V(-1, 0) {
		t.Error("bodies changed without a contact")
	}
}

func TestResolveSegment(t *testing.T) {
	surface := Surface{BounceEnergyLoss: 0.3, SlopeEffect: 0.8}

	tests := []struct {
		name    string
		seg     Segment
		body    Body
		hit     bool
		wantPos Vec2
		wantVel Vec2
	}{
		{
			name:    "falling onto flat ground",
			seg:     Seg(0, 100, 100, 100),
			body:    Body{Pos: V(50, 95), Vel: V(0, 5), Radius: 10},
			hit:     true,
			wantPos: V(50, 90),
			wantVel: V(0, -3.5),
		},
		{
			name:    "leaving the surface keeps velocity",
			seg:     Seg(0, 100, 100, 100),
			body:    Body{Pos: V(50, 95), Vel: V(1, -2), Radius: 10},
			hit:     true,
			wantPos: V(50, 90),
			wantVel: V(1, -2),
		},
		{
			name:    "clear of the ground",
			seg:     Seg(0, 100, 100, 100),
			body:    Body{Pos: V(50, 50), Vel: V(0, 5), Radius: 10},
			hit:     false,
			wantPos: V(50, 50),
			wantVel: V(0, 5),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.body
			_, ok := ResolveSegment(&b, tc.seg, surface, 1)
			if ok != tc.hit {
				t.Fatalf("ResolveSegment() ok = %v, expected %v", ok, tc.hit)
			}
			if !approxV(b.Pos, tc.wantPos) {
				t.Errorf("Pos = %v, expected %v", b.Pos, tc.wantPos)
			}
			if !approxV(b.Vel, tc.wantVel) {
				t.Errorf("Vel = %v, expected %v", b.Vel, tc.wantVel)
			}
		})
	}
}

func TestResolveSegmentRollsDownhill(t *testing.T) {
	slope := Seg(0, 0, 100, 100)
	b := Body{Pos: V(50, 45), Radius: 10}

	if _, ok := ResolveSegment(&b, slope, Surface{SlopeEffect: 0.8}, 1); !ok {
		t.Fatal("expected contact with slope")
	}
	want := math.Sin(math.Pi/4) * 0.8
	if !approx(b.Vel.X, want) {
		t.Errorf("Vel.X = %v, expected %v", b.Vel.X, want)
	}
}

func TestRestitution(t *testing.T) {
	if got := Restitution(0.3); !approx(got, 0.7) {
		t.Errorf("Restitution(0.3) = %v, expected 0.7", got)
	}
}
