package vec2

import "github.com/go-gl/mathgl/mgl64"

// M is a 2x2 rotation matrix, row-major:
//
//	[m00 m01]
//	[m10 m11]
//
// Arithmetic is backed by github.com/go-gl/mathgl's mgl64.Mat2, which is
// column-major internally; toMglMat/fromMglMat do the reindexing so callers
// never see mgl64's layout.
type M struct {
	M00, M01 float64
	M10, M11 float64
}

func toMglMat(m M) mgl64.Mat2 { return mgl64.Mat2{m.M00, m.M10, m.M01, m.M11} }

func fromMglMat(m mgl64.Mat2) M {
	return M{
		M00: m.At(0, 0), M01: m.At(0, 1),
		M10: m.At(1, 0), M11: m.At(1, 1),
	}
}

// Identity returns the identity matrix.
func Identity() M { return fromMglMat(mgl64.Ident2()) }

// FromAngle builds the rotation matrix for the given angle in radians.
func FromAngle(radians float64) M { return fromMglMat(mgl64.Rotate2D(radians)) }

// Transpose returns the transpose of m (for a pure rotation matrix, this is
// also its inverse).
func (m M) Transpose() M { return fromMglMat(toMglMat(m).Transpose()) }

// MulVec rotates v by m.
func (m M) MulVec(v V) V { return fromMgl(toMglMat(m).Mul2x1(toMgl(v))) }

// MulMat returns m * other.
func (m M) MulMat(other M) M { return fromMglMat(toMglMat(m).Mul2(toMglMat(other))) }
