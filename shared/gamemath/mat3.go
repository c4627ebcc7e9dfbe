package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Mat3 is a 3x3 matrix for 2D homogeneous transforms, stored column-major:
//
//	| m[0] m[3] m[6] |
//	| m[1] m[4] m[7] |
//	| m[2] m[5] m[8] |
//
// The layout matches what a GLSL mat3 uniform expects.
type Mat3 [9]float64

// Identity returns the identity matrix.
func Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Projection maps pixel space (origin top-left, y down) of a width x height
// surface to clip space (-1..1, y up).
func Projection(width, height float64) Mat3 {
	return Mat3{
		2 / width, 0, 0,
		0, -2 / height, 0,
		-1, 1, 1,
	}
}

// Translation returns a translation matrix.
func Translation(x, y float64) Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		x, y, 1,
	}
}

// Scaling returns a scaling matrix.
func Scaling(sx, sy float64) Mat3 {
	return Mat3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Multiply returns m * o.
func (m Mat3) Multiply(o Mat3) Mat3 {
	var out Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			out[col*3+row] = m[row]*o[col*3] +
				m[3+row]*o[col*3+1] +
				m[6+row]*o[col*3+2]
		}
	}
	return out
}

// Translate returns m * Translation(x, y).
func (m Mat3) Translate(x, y float64) Mat3 {
	return m.Multiply(Translation(x, y))
}

// Scale returns m * Scaling(sx, sy).
func (m Mat3) Scale(sx, sy float64) Mat3 {
	return m.Multiply(Scaling(sx, sy))
}

// Determinant returns the determinant of m.
func (m Mat3) Determinant() float64 {
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[3], m[4], m[5]
	a20, a21, a22 := m[6], m[7], m[8]
	return a00*(a22*a11-a12*a21) +
		a01*(-a22*a10+a12*a20) +
		a02*(a21*a10-a11*a20)
}

// Invert returns the inverse of m. ok is false when m is singular, in which
// case the returned matrix is the identity.
func (m Mat3) Invert() (inv Mat3, ok bool) {
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[3], m[4], m[5]
	a20, a21, a22 := m[6], m[7], m[8]

	b01 := a22*a11 - a12*a21
	b11 := -a22*a10 + a12*a20
	b21 := a21*a10 - a11*a20

	det := a00*b01 + a01*b11 + a02*b21
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity(), false
	}
	det = 1 / det

	return Mat3{
		b01 * det,
		(-a22*a01 + a02*a21) * det,
		(a12*a01 - a02*a11) * det,
		b11 * det,
		(a22*a00 - a02*a20) * det,
		(-a12*a00 + a02*a10) * det,
		b21 * det,
		(-a21*a00 + a01*a20) * det,
		(a11*a00 - a01*a10) * det,
	}, true
}

// TransformVec2 applies m to the point p (w = 1).
func (m Mat3) TransformVec2(p dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{
		X: m[0]*p.X + m[3]*p.Y + m[6],
		Y: m[1]*p.X + m[4]*p.Y + m[7],
	}
}

// Float32 returns m as a column-major float32 slice for shader uniforms.
func (m Mat3) Float32() []float32 {
	out := make([]float32, 9)
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}
