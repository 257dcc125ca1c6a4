package raster2d

import "math"

// Matrix is a 2x3 affine transform:
//
//	| A  C  E |
//	| B  D  F |
//
// representing x' = A*x + C*y + E, y' = B*x + D*y + F.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the affine transform that leaves points unchanged.
var Identity = Matrix{A: 1, D: 1}

// Translate returns a matrix that translates by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Scale returns a matrix that scales by (sx, sy) about the origin.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotate returns a matrix that rotates by radians about the origin.
func Rotate(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Identity
}

// Concat returns the matrix m ∘ other: a point is mapped by other first,
// then by m. This matches the canvas convention where ctm.Concat(m)
// prepends m to the current transform, so subsequent drawing is expressed
// in the new, nested coordinate system.
func (m Matrix) Concat(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// MapPoint transforms p by m.
func (m Matrix) MapPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// MapVector transforms p as a vector, ignoring translation.
func (m Matrix) MapVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// MapPoints transforms a slice of points into dst, which must have the same
// length as src (dst and src may be the same slice).
func (m Matrix) MapPoints(dst, src []Point) {
	for i, p := range src {
		dst[i] = m.MapPoint(p)
	}
}

// Determinant returns A*D - C*B. The matrix is singular when this is zero.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.C*m.B
}

// Invert returns the inverse of m and true, or the zero Matrix and false if
// m is singular (determinant zero).
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, false
	}
	return Matrix{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}, true
}
