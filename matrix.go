package gglyph

import (
	"math"

	"github.com/gogpu/gglyph/font"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Translations are in pixels. The zero Matrix is treated as the identity
// wherever a Rendering is applied.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p font.Point) font.Point {
	return font.Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p font.Point) font.Point {
	return font.Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsZero returns true if every coefficient is zero.
func (m Matrix) IsZero() bool {
	return m == Matrix{}
}

// orIdentity returns the identity for the zero matrix and m otherwise.
func (m Matrix) orIdentity() Matrix {
	if m.IsZero() {
		return Identity()
	}
	return m
}

// finite reports whether every coefficient is a finite number.
func (m Matrix) finite() bool {
	return allFinite(m.A, m.B, m.C, m.D, m.E, m.F)
}

// Linear is a 2x2 linear transformation, used for the rotations that
// bracket grid fitting:
//
//	x' = a*x + b*y
//	y' = c*x + d*y
//
// The zero Linear is treated as the identity.
type Linear struct {
	A, B float64
	C, D float64
}

// IdentityLinear returns the identity linear transformation.
func IdentityLinear() Linear {
	return Linear{A: 1, D: 1}
}

// Rotation returns a counter-clockwise rotation by angle radians.
func Rotation(angle float64) Linear {
	sin, cos := math.Sincos(angle)
	return Linear{
		A: cos, B: -sin,
		C: sin, D: cos,
	}
}

// Matrix returns l as an affine matrix without translation.
func (l Linear) Matrix() Matrix {
	return Matrix{
		A: l.A, B: l.B,
		D: l.C, E: l.D,
	}
}

// IsZero returns true if every coefficient is zero.
func (l Linear) IsZero() bool {
	return l == Linear{}
}

// orIdentity returns the identity for the zero value and l otherwise.
func (l Linear) orIdentity() Linear {
	if l.IsZero() {
		return IdentityLinear()
	}
	return l
}

func (l Linear) finite() bool {
	return allFinite(l.A, l.B, l.C, l.D)
}

func allFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
