// Package vec2 implements the 2D vector and rotation-matrix primitives the
// solver needs: dot, the three distinct cross-product variants, squared
// length, and a safe self-normalize. Add, Sub, Scale, Dot, the length
// functions and Normalize are backed by github.com/go-gl/mathgl's mgl64.Vec2;
// the cross-product family, Mul, Neg and Clamp are plain Go.
package vec2

import "github.com/go-gl/mathgl/mgl64"

// Epsilon is the threshold below which a vector is treated as the zero
// vector by Normalize, and below which face-clip / inside-polygon tests
// treat a separation as zero.
const Epsilon = 1e-4

// EpsilonSq is Epsilon squared, used to avoid a sqrt in length comparisons.
const EpsilonSq = Epsilon * Epsilon

// V is a 2D vector.
type V struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = V{}

func toMgl(v V) mgl64.Vec2 { return mgl64.Vec2{v.X, v.Y} }

func fromMgl(v mgl64.Vec2) V { return V{X: v.X(), Y: v.Y()} }

// Add returns a+b.
func Add(a, b V) V { return fromMgl(toMgl(a).Add(toMgl(b))) }

// Sub returns a-b.
func Sub(a, b V) V { return fromMgl(toMgl(a).Sub(toMgl(b))) }

// Scale returns v scaled by s.
func Scale(v V, s float64) V { return fromMgl(toMgl(v).Mul(s)) }

// Mul returns the component-wise product of a and b.
func Mul(a, b V) V { return V{a.X * b.X, a.Y * b.Y} }

// Neg returns -v.
func Neg(v V) V { return V{-v.X, -v.Y} }

// Dot returns the dot product of a and b.
func Dot(a, b V) float64 { return toMgl(a).Dot(toMgl(b)) }

// Cross returns the 2D scalar cross product a.x*b.y - a.y*b.x.
//
// mgl64 has no 2D cross product (it isn't defined on Vec2, only via the
// 3D Vec3.Cross), so this and the two variants below stay bespoke.
//
// This is NOT interchangeable with CrossVS or CrossSV below; the three
// variants differ by operand type and, for the vector results, by sign.
// Keeping them as distinct named functions avoids the sign errors the
// original source warns about (spec §9 "Cross operations overloading").
func Cross(a, b V) float64 { return a.X*b.Y - a.Y*b.X }

// CrossVS returns the perpendicular vector (s*a.y, -s*a.x) — "vector cross
// scalar". The contact resolver does not use it.
func CrossVS(a V, s float64) V { return V{s * a.Y, -s * a.X} }

// CrossSV returns the perpendicular vector (-s*a.y, s*a.x) — "scalar cross
// vector". The mirror image of CrossVS; the contact resolver uses it on both
// sides of a contact to turn a body's angular velocity into the linear
// velocity of the contact point.
func CrossSV(s float64, a V) V { return V{-s * a.Y, s * a.X} }

// LengthSq returns the squared magnitude of v.
func LengthSq(v V) float64 { return toMgl(v).LenSqr() }

// Length returns the magnitude of v.
func Length(v V) float64 { return toMgl(v).Len() }

// Normalize returns v scaled to unit length. If v's squared length is below
// EpsilonSq, v is returned unchanged rather than dividing by a near-zero
// length. mgl64.Vec2.Normalize has no such guard (it divides by Len()
// unconditionally), so the guard stays here and only safe vectors are
// handed to it.
func Normalize(v V) V {
	if LengthSq(v) <= EpsilonSq {
		return v
	}
	return fromMgl(toMgl(v).Normalize())
}

// Clamp clamps each component of v between the matching components of min
// and max.
func Clamp(v, min, max V) V {
	return V{
		clampf(v.X, min.X, max.X),
		clampf(v.Y, min.Y, max.Y),
	}
}

func clampf(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
