package canvas

import "math"

// Point is a position in user or device space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Matrix is an affine transform stored in the order a 2D canvas
// setTransform takes its arguments:
//
//	| A  C  E |
//	| B  D  F |
//	| 0  0  1 |
//
// so that x' = A*x + C*y + E and y' = B*x + D*y + F.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate returns a transform that moves by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, E: x, F: y}
}

// Scale returns a transform that scales by (x, y) around the origin.
// A negative factor mirrors the axis.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, D: y}
}

// Multiply returns m followed by n in user space, the composition a canvas
// builds when transform calls are issued in order: points go through n
// first, then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// TransformPoint maps p from user space to device space.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

func (m Matrix) det() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse transform. A singular matrix inverts to the
// identity so that degenerate scales draw nothing rather than NaNs.
func (m Matrix) Invert() Matrix {
	det := m.det()
	if math.Abs(det) < 1e-10 {
		return Identity()
	}
	a, b, c, d := m.D/det, -m.B/det, -m.C/det, m.A/det
	return Matrix{
		A: a, B: b, C: c, D: d,
		E: -(a*m.E + c*m.F),
		F: -(b*m.E + d*m.F),
	}
}

// ScaleFactor returns the uniform scale implied by the matrix, the square
// root of the absolute determinant. Font sizes and clip radii use it.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.det()))
}

// IsIdentity reports whether m leaves every point in place.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
