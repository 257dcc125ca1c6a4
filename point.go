package raster2d

// Point is a 2D coordinate. Vector is an alias used where a value represents
// a displacement rather than a position; the underlying arithmetic is the
// same either way.
type Point struct {
	X, Y float64
}

// Vector is a displacement between two [Point] values.
type Vector = Point

// Add returns p+q, component-wise.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q, component-wise.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Lerp linearly interpolates between p and q at parameter t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}
