// Package raster implements the edge-based scan converters at the heart of
// the rendering kernel: a clipped directed-edge primitive, adaptive curve
// flattening, a two-edge convex polygon fill, and a general active-edge
// non-zero winding fill.
//
// The package works entirely in device-space coordinates and knows nothing
// about paints, shaders, or pixels — it reports filled spans to a callback
// and lets the caller decide how to paint them.
package raster

import "math"

// Point is a 2D device-space coordinate. It duplicates raster2d.Point
// rather than importing it, so that this package stays free of a
// dependency on its parent.
type Point struct {
	X, Y float64
}

// Edge is a directed line segment between two y-coordinates, the central
// entity of both scan converters.
//
// Invariants: Top.Y <= Bottom.Y; the edge has already been discarded by
// [CreateEdge]'s caller if it is horizontal after rounding.
type Edge struct {
	Top, Bottom Point
	// Slope is dx/dy: X = Slope*Y + Intercept.
	Slope, Intercept float64
	// Winding is -1 if the original, undirected line ran top-to-bottom in
	// y (i.e. its first point became Top), +1 otherwise.
	Winding int
}

// roundInt rounds to the nearest integer, ties away from zero for
// non-negative values (the only sign curve-flattened and clipped
// coordinates ever take on here is irrelevant: math.Round already does the
// right thing for both).
func roundInt(v float64) int {
	return int(math.Round(v))
}

// floorInt truncates toward negative infinity.
func floorInt(v float64) int {
	return int(math.Floor(v))
}

// IsHorizontal reports whether p0 and p1 round to the same device scanline,
// i.e. whether a line between them would contribute no filled rows.
func IsHorizontal(p0, p1 Point) bool {
	return roundInt(p0.Y) == roundInt(p1.Y)
}

// CreateEdge builds an Edge from an undirected segment, orienting it so
// Top.Y <= Bottom.Y and recording the original direction in Winding.
func CreateEdge(p0, p1 Point) Edge {
	var top, bottom Point
	var winding int
	if roundInt(p0.Y) < roundInt(p1.Y) {
		top, bottom, winding = p0, p1, -1
	} else {
		top, bottom, winding = p1, p0, 1
	}
	e := Edge{Top: top, Bottom: bottom, Winding: winding}
	e.recompute()
	return e
}

// recompute derives Slope and Intercept from Top/Bottom. dy is never zero
// here: horizontal edges are filtered out by callers before the edge is
// used, and clipping only ever shortens an edge's y-extent, never zeroes
// it without the caller noticing.
func (e *Edge) recompute() {
	dy := e.Top.Y - e.Bottom.Y
	e.Slope = (e.Top.X - e.Bottom.X) / dy
	e.Intercept = e.Top.X - e.Slope*e.Top.Y
}

// Horizontal reports whether the edge spans a single device scanline.
func (e Edge) Horizontal() bool {
	return roundInt(e.Top.Y) == roundInt(e.Bottom.Y)
}

// Valid reports whether the edge contributes to scanline y.
func (e Edge) Valid(y float64) bool {
	return y >= float64(roundInt(e.Top.Y)) && y <= float64(roundInt(e.Bottom.Y))
}

// XAtY evaluates the edge's line at y.
func (e Edge) XAtY(y float64) float64 {
	return e.Slope*y + e.Intercept
}
