package raster

import "math"

// lerp linearly interpolates between p and q at parameter t.
func lerp(p, q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

func length(p Point) float64 {
	return math.Hypot(p.X, p.Y)
}

// ChopQuadAt splits a quadratic Bezier (p0, p1, p2) at parameter t into two
// quadratics using de Casteljau subdivision, returning the five control
// points (p0, d, m, e, p2) where (p0, d, m) and (m, e, p2) are the halves.
func ChopQuadAt(p0, p1, p2 Point, t float64) (a, b, c, d, e Point) {
	d1 := lerp(p0, p1, t)
	e1 := lerp(p1, p2, t)
	m := lerp(d1, e1, t)
	return p0, d1, m, e1, p2
}

// ChopCubicAt splits a cubic Bezier (p0, p1, p2, p3) at parameter t using
// de Casteljau subdivision, returning the seven control points of the two
// halves: (a, b, c, d) and (d, e, f, g).
func ChopCubicAt(p0, p1, p2, p3 Point, t float64) (a, b, c, d, e, f, g Point) {
	ab := lerp(p0, p1, t)
	bc := lerp(p1, p2, t)
	cd := lerp(p2, p3, t)
	abc := lerp(ab, bc, t)
	bcd := lerp(bc, cd, t)
	abcd := lerp(abc, bcd, t)
	return p0, ab, abc, abcd, bcd, cd, p3
}

// QuadSubdivisions returns the number of de Casteljau bisections needed to
// flatten the quadratic (p0, p1, p2) to within a quarter-pixel of its true
// shape: E = p0 - 2*p1 + p2, err = |E|/4, segments = ceil(sqrt(4*err)),
// subdivisions = ceil(log2(segments)).
func QuadSubdivisions(p0, p1, p2 Point) int {
	e := Point{
		X: p0.X - 2*p1.X + p2.X,
		Y: p0.Y - 2*p1.Y + p2.Y,
	}
	err := math.Abs(length(e) / 4)
	segments := math.Ceil(math.Sqrt(err * 4))
	return ceilLog2(segments)
}

// CubicSubdivisions returns the number of de Casteljau bisections needed to
// flatten the cubic (p0, p1, p2, p3): E0 = p0-2p1+p2, E1 = p1-2p2+p3, E is
// their component-wise max, err = |E|, segments = ceil(sqrt(3*err)),
// subdivisions = ceil(log2(segments)).
//
// The component-wise max (rather than a Euclidean combination of E0 and E1)
// can over-subdivide for skewed curves; this is inherited from the
// reference implementation and preserved for output compatibility.
func CubicSubdivisions(p0, p1, p2, p3 Point) int {
	e0 := Point{X: p0.X - 2*p1.X + p2.X, Y: p0.Y - 2*p1.Y + p2.Y}
	e1 := Point{X: p1.X - 2*p2.X + p3.X, Y: p1.Y - 2*p2.Y + p3.Y}
	e := Point{X: math.Max(e0.X, e1.X), Y: math.Max(e0.Y, e1.Y)}
	err := math.Abs(length(e))
	segments := math.Ceil(math.Sqrt(3 * err))
	return ceilLog2(segments)
}

// ceilLog2 returns ceil(log2(n)) for n >= 1, and 0 for n <= 1.
func ceilLog2(n float64) int {
	if n <= 1 {
		return 0
	}
	return int(math.Ceil(math.Log2(n)))
}

// EmitQuadLines recursively bisects the quadratic (p0, p1, p2) numToChop
// times and calls emit with the endpoints of each resulting straight
// segment, in order along the curve.
func EmitQuadLines(p0, p1, p2 Point, numToChop int, emit func(a, b Point)) {
	if numToChop == 0 {
		emit(p0, p2)
		return
	}
	a, b, c, d, e := ChopQuadAt(p0, p1, p2, 0.5)
	EmitQuadLines(a, b, c, numToChop-1, emit)
	EmitQuadLines(c, d, e, numToChop-1, emit)
}

// EmitCubicLines recursively bisects the cubic (p0, p1, p2, p3) numToChop
// times and calls emit with the endpoints of each resulting straight
// segment, in order along the curve.
func EmitCubicLines(p0, p1, p2, p3 Point, numToChop int, emit func(a, b Point)) {
	if numToChop == 0 {
		emit(p0, p3)
		return
	}
	a, b, c, d, e, f, g := ChopCubicAt(p0, p1, p2, p3, 0.5)
	EmitCubicLines(a, b, c, d, numToChop-1, emit)
	EmitCubicLines(d, e, f, g, numToChop-1, emit)
}
