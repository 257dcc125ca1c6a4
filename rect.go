package raster2d

import "math"

// Rect is an axis-aligned rectangle in user space, Left <= Right and
// Top <= Bottom by convention (callers are responsible for normalizing).
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Round rounds each edge to the nearest integer device coordinate.
func (r Rect) Round() (left, top, right, bottom int) {
	return int(math.Round(r.Left)), int(math.Round(r.Top)), int(math.Round(r.Right)), int(math.Round(r.Bottom))
}
