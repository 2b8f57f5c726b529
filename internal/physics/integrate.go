package physics

import "math"

// Forces is the immutable set of per-tick tunables applied by Integrate.
// All rates are per base tick.
type Forces struct {
	Gravity       float64
	AirResistance float64
	Friction      float64
	MaxVelocity   float64
	// MinVelocityX keeps bodies rolling forward; 0 disables it.
	MinVelocityX float64
}

// Integrate advances b by dt base ticks: gravity, horizontal friction,
// speed-proportional drag, forward speed floor, velocity cap, then position.
// Static bodies are skipped.
func Integrate(b *Body, f Forces, dt float64) {
	if b.Static || dt <= 0 {
		return
	}

	b.Vel.Y += f.Gravity * dt
	b.Vel.X *= math.Max(0, 1-f.Friction*dt)

	if speed := b.Vel.Len(); speed > 0 && f.AirResistance > 0 {
		b.Vel.Mul(math.Max(0, 1-f.AirResistance*speed*dt))
	}

	if f.MinVelocityX > 0 && b.Vel.X < f.MinVelocityX {
		b.Vel.X = f.MinVelocityX
	}
	if f.MaxVelocity > 0 {
		b.Vel.Limit(f.MaxVelocity)
	}

	b.Pos.Add(Scaled(b.Vel, dt))
}

// ApplyFriction removes up to Friction*dt of the velocity component tangent
// to a surface with the given unit normal. It never reverses the tangential
// direction.
func ApplyFriction(b *Body, normal Vec2, f Forces, dt float64) {
	if b.Static {
		return
	}
	tangent := V(-normal.Y, normal.X)
	vt := b.Vel.Dot(tangent)
	if vt == 0 {
		return
	}
	amount := math.Min(math.Abs(vt), f.Friction*dt)
	if vt > 0 {
		amount = -amount
	}
	b.Vel.Add(Scaled(tangent, amount))
}
