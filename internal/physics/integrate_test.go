package physics

import "testing"

func TestIntegrate(t *testing.T) {
	tests := []struct {
		name    string
		forces  Forces
		body    Body
		dt      float64
		wantVel Vec2
		wantPos Vec2
	}{
		{
			name:    "gravity",
			forces:  Forces{Gravity: 0.2},
			body:    Body{},
			dt:      1,
			wantVel: V(0, 0.2),
			wantPos: V(0, 0.2),
		},
		{
			name:    "gravity scales with dt",
			forces:  Forces{Gravity: 0.2},
			body:    Body{},
			dt:      2,
			wantVel: V(0, 0.4),
			wantPos: V(0, 0.8),
		},
		{
			name:    "horizontal friction",
			forces:  Forces{Friction: 0.5},
			body:    Body{Vel: V(4, 0)},
			dt:      1,
			wantVel: V(2, 0),
			wantPos: V(2, 0),
		},
		{
			name:    "max velocity",
			forces:  Forces{MaxVelocity: 5},
			body:    Body{Vel: V(6, 8)},
			dt:      1,
			wantVel: V(3, 4),
			wantPos: V(3, 4),
		},
		{
			name:    "forward speed floor",
			forces:  Forces{MinVelocityX: 1.5},
			body:    Body{Vel: V(0.2, 0)},
			dt:      1,
			wantVel: V(1.5, 0),
			wantPos: V(1.5, 0),
		},
		{
			name:    "static bodies are skipped",
			forces:  Forces{Gravity: 1},
			body:    Body{Vel: V(1, 1), Static: true},
			dt:      1,
			wantVel: V(1, 1),
			wantPos: V(0, 0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.body
			Integrate(&b, tc.forces, tc.dt)
			if !approxV(b.Vel, tc.wantVel) {
				t.Errorf("Vel = %v, expected %v", b.Vel, tc.wantVel)
			}
			if !approxV(b.Pos, tc.wantPos) {
				t.Errorf("Pos = %v, expected %v", b.Pos, tc.wantPos)
			}
		})
	}
}

func TestIntegrateAirResistance(t *testing.T) {
	b := Body{Vel: V(10, 0)}
	Integrate(&b, Forces{AirResistance: 0.01}, 1)

	// 1 - 0.01*10 = 0.9
	if !approx(b.Vel.X, 9) {
		t.Errorf("Vel.X = %v, expected 9", b.Vel.X)
	}
}

func TestApplyFriction(t *testing.T) {
	up := V(0, -1)
	tests := []struct {
		name     string
		vel      Vec2
		expected Vec2
	}{
		{"slows rolling", V(3, 0), V(2.5, 0)},
		{"slows rolling backward", V(-3, 0), V(-2.5, 0)},
		{"stops without reversing", V(0.2, 0), V(0, 0)},
		{"ignores normal component", V(0, 4), V(0, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Body{Vel: tc.vel}
			ApplyFriction(&b, up, Forces{Friction: 0.5}, 1)
			if !approxV(b.Vel, tc.expected) {
				t.Errorf("Vel = %v, expected %v", b.Vel, tc.expected)
			}
		})
	}
}

func TestBroadPhase(t *testing.T) {
	bodies := []*Body{
		{Pos: V(0, 0), Radius: 5},
		{Pos: V(12, 0), Radius: 5},                  // within reach of 0 only with velocity
		{Pos: V(100, 0), Radius: 5, Static: true},   // far away
		{Pos: V(105, 0), Radius: 5, Static: true},   // static neighbour of 2
		{Pos: V(0, 9), Radius: 5, Vel: V(0.5, 0.5)}, // close to 0
	}

	pairs := BroadPhase(bodies)
	want := map[Pair]bool{{I: 0, J: 4}: true}
	if len(pairs) != len(want) {
		t.Fatalf("BroadPhase() = %v, expected %v", pairs, want)
	}
	for _, p := range pairs {
		if !want[p] {
			t.Errorf("unexpected pair %v", p)
		}
	}

	bodies[1].Vel = V(-3, 0)
	pairs = BroadPhase(bodies)
	found := false
	for _, p := range pairs {
		if p == (Pair{I: 0, J: 1}) {
			found = true
		}
	}
	if !found {
		t.Errorf("BroadPhase() = %v, expected velocity to bring pair (0, 1) into reach", pairs)
	}
}
