// Package physics implements the 2D arcade physics used by the snowball game:
// a chainable vector type, circle and segment collision tests, impulse
// resolution and per-tick force integration.
//
// Coordinates follow the screen convention: X grows to the right and Y grows
// downward, so gravity is a positive Y acceleration.
package physics

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector. Mutating methods use a pointer receiver and return the
// receiver so calls can be chained; the package-level helpers below return
// new values and leave their operands untouched.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns a vector of the given length pointing at angle radians.
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Set overwrites both components.
func (v *Vec2) Set(x, y float64) *Vec2 {
	v.X, v.Y = x, y
	return v
}

// Add adds o to v.
func (v *Vec2) Add(o Vec2) *Vec2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

// Sub subtracts o from v.
func (v *Vec2) Sub(o Vec2) *Vec2 {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

// Mul scales v by s.
func (v *Vec2) Mul(s float64) *Vec2 {
	v.X *= s
	v.Y *= s
	return v
}

// Div divides v by s. Division by zero leaves v unchanged.
func (v *Vec2) Div(s float64) *Vec2 {
	if s == 0 {
		return v
	}
	v.X /= s
	v.Y /= s
	return v
}

// Normalize scales v to unit length. The zero vector is left as is.
func (v *Vec2) Normalize() *Vec2 {
	return v.Div(v.Len())
}

// Rotate rotates v counter-clockwise (in math orientation) by angle radians.
func (v *Vec2) Rotate(angle float64) *Vec2 {
	sin, cos := math.Sincos(angle)
	v.X, v.Y = v.X*cos-v.Y*sin, v.X*sin+v.Y*cos
	return v
}

// Limit clamps the length of v to max without changing its direction.
func (v *Vec2) Limit(max float64) *Vec2 {
	if v.LenSq() > max*max {
		v.Normalize().Mul(max)
	}
	return v
}

// Lerp moves v toward target by fraction t.
func (v *Vec2) Lerp(target Vec2, t float64) *Vec2 {
	v.X += (target.X - v.X) * t
	v.Y += (target.Y - v.Y) * t
	return v
}

// Reflect mirrors v about the unit normal n: v - 2(v·n)n.
func (v *Vec2) Reflect(n Vec2) *Vec2 {
	d := 2 * v.Dot(n)
	v.X -= d * n.X
	v.Y -= d * n.Y
	return v
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared magnitude of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dot returns the dot product v·o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the scalar 2D cross product v×o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleBetween returns the unsigned angle between v and o.
// It is zero when either vector has no length.
func (v Vec2) AngleBetween(o Vec2) float64 {
	m := v.Len() * o.Len()
	if m == 0 {
		return 0
	}
	return math.Acos(clamp(v.Dot(o)/m, -1, 1))
}

// Dist returns the distance between the points v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// DistSq returns the squared distance between the points v and o.
func (v Vec2) DistSq(o Vec2) float64 {
	dx, dy := o.X-v.X, o.Y-v.Y
	return dx*dx + dy*dy
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}

// AddV returns a + b.
func AddV(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// SubV returns a - b.
func SubV(a, b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scaled returns v * s.
func Scaled(v Vec2, s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LerpV returns the point a fraction t of the way from a to b.
func LerpV(a, b Vec2, t float64) Vec2 {
	return Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Normalized returns v scaled to unit length, or v itself when it is zero.
func Normalized(v Vec2) Vec2 {
	v.Normalize()
	return v
}

// Reflected returns v mirrored about the unit normal n.
func Reflected(v, n Vec2) Vec2 {
	v.Reflect(n)
	return v
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
