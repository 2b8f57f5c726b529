package physics

import "math"

// Restitution converts a bounce energy loss fraction into a restitution
// coefficient.
func Restitution(bounceEnergyLoss float64) float64 {
	return 1 - bounceEnergyLoss
}

// ResolveCircles separates two overlapping bodies along c.Normal (pointing
// from a to b) and, if they are approaching, exchanges an impulse scaled by
// restitution. Positional correction is split by inverse mass so a static
// body never moves. Callers must only pass contacts that were detected.
func ResolveCircles(a, b *Body, c Contact, restitution float64) {
	invA, invB := a.InvMass(), b.InvMass()
	invSum := invA + invB
	if invSum == 0 {
		return
	}

	// Positional correction
	a.Pos.Sub(Scaled(c.Normal, c.Penetration*invA/invSum))
	b.Pos.Add(Scaled(c.Normal, c.Penetration*invB/invSum))

	// Velocity response, only while closing
	vn := SubV(b.Vel, a.Vel).Dot(c.Normal)
	if vn >= 0 {
		return
	}
	j := -(1 + restitution) * vn / invSum
	a.Vel.Sub(Scaled(c.Normal, j*invA))
	b.Vel.Add(Scaled(c.Normal, j*invB))
}

// DetectAndResolve tests a and b for overlap and resolves the contact if
// there is one. The returned contact is only meaningful when ok is true.
func DetectAndResolve(a, b *Body, restitution float64) (c Contact, ok bool) {
	c, ok = CircleCircleContact(a.Pos, a.Radius, b.Pos, b.Radius)
	if ok {
		ResolveCircles(a, b, c, restitution)
	}
	return c, ok
}

// Surface holds the tunables for body-versus-terrain resolution.
type Surface struct {
	BounceEnergyLoss float64
	SlopeEffect      float64
}

// ResolveSegment pushes b out of the static segment seg. Velocity is
// reflected and attenuated only when moving into the surface, then a
// horizontal term proportional to sin(slope) makes the body roll downhill.
// dt is measured in base ticks.
func ResolveSegment(b *Body, seg Segment, s Surface, dt float64) (Contact, bool) {
	if b.Static {
		return Contact{}, false
	}
	c, ok := CircleSegmentContact(b.Pos, b.Radius, seg)
	if !ok {
		return Contact{}, false
	}

	b.Pos.Add(Scaled(c.Normal, c.Penetration))
	if b.Vel.Dot(c.Normal) < 0 {
		b.Vel.Reflect(c.Normal).Mul(1 - s.BounceEnergyLoss)
	}
	b.Vel.X += math.Sin(seg.Angle()) * s.SlopeEffect * dt
	return c, true
}
