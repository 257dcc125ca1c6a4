package raster2d

import "math"

// Verb is one record in a Path's verb stream. It is a sealed interface: the
// only implementations are [Move], [Line], [Quad], [Cubic], and [Close].
type Verb interface {
	isVerb()
}

// Move begins a new contour at Point, without drawing.
type Move struct{ Point Point }

func (Move) isVerb() {}

// Line draws a straight segment from the current point to Point.
type Line struct{ Point Point }

func (Line) isVerb() {}

// Quad draws a quadratic Bezier from the current point through Control to
// Point.
type Quad struct{ Control, Point Point }

func (Quad) isVerb() {}

// Cubic draws a cubic Bezier from the current point through Control1 and
// Control2 to Point.
type Cubic struct{ Control1, Control2, Point Point }

func (Cubic) isVerb() {}

// Close draws a straight segment back to the contour's starting point.
type Close struct{}

func (Close) isVerb() {}

// Path is an immutable, ordered sequence of verbs. Build one with
// [PathBuilder] or [NewPath] plus its append methods; [Canvas.DrawPath]
// consumes the finished result.
type Path struct {
	verbs   []Verb
	start   Point
	current Point
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// Verbs returns the path's verb stream.
func (p *Path) Verbs() []Verb {
	return p.verbs
}

// Bounds returns the smallest rectangle (as min, max points) containing
// every point the path visits, including control points. An empty path
// returns two zero points.
func (p *Path) Bounds() (min, max Point) {
	first := true
	visit := func(pt Point) {
		if first {
			min, max = pt, pt
			first = false
			return
		}
		min.X, min.Y = math.Min(min.X, pt.X), math.Min(min.Y, pt.Y)
		max.X, max.Y = math.Max(max.X, pt.X), math.Max(max.Y, pt.Y)
	}
	for _, v := range p.verbs {
		switch e := v.(type) {
		case Move:
			visit(e.Point)
		case Line:
			visit(e.Point)
		case Quad:
			visit(e.Control)
			visit(e.Point)
		case Cubic:
			visit(e.Control1)
			visit(e.Control2)
			visit(e.Point)
		}
	}
	return min, max
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	pt := Point{X: x, Y: y}
	p.verbs = append(p.verbs, Move{Point: pt})
	p.start, p.current = pt, pt
	return p
}

// LineTo draws a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	pt := Point{X: x, Y: y}
	p.verbs = append(p.verbs, Line{Point: pt})
	p.current = pt
	return p
}

// QuadTo draws a quadratic Bezier through (cx, cy) to (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	pt := Point{X: x, Y: y}
	p.verbs = append(p.verbs, Quad{Control: Point{X: cx, Y: cy}, Point: pt})
	p.current = pt
	return p
}

// CubicTo draws a cubic Bezier through (c1x, c1y) and (c2x, c2y) to (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	pt := Point{X: x, Y: y}
	p.verbs = append(p.verbs, Cubic{
		Control1: Point{X: c1x, Y: c1y},
		Control2: Point{X: c2x, Y: c2y},
		Point:    pt,
	})
	p.current = pt
	return p
}

// ClosePath closes the current contour back to its starting point.
func (p *Path) ClosePath() *Path {
	p.verbs = append(p.verbs, Close{})
	p.current = p.start
	return p
}

// AddRect appends a closed rectangular contour with corners (x0, y0) and
// (x1, y1).
func (p *Path) AddRect(x0, y0, x1, y1 float64) *Path {
	return p.MoveTo(x0, y0).LineTo(x1, y0).LineTo(x1, y1).LineTo(x0, y1).ClosePath()
}

// AddPolygon appends a closed contour through points. It requires at least
// three points; fewer is a contract error, not a recoverable condition, so
// it panics rather than silently producing a degenerate path.
func (p *Path) AddPolygon(points []Point) *Path {
	if len(points) < 3 {
		panic("raster2d: AddPolygon requires at least 3 points")
	}
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	return p.ClosePath()
}

// circleBezierConstant is the control-point offset fraction that makes a
// four-cubic approximation of a circle deviate from true roundness by less
// than 0.03%: 4/3 * (sqrt(2) - 1).
const circleBezierConstant = 4.0 / 3.0 * (math.Sqrt2 - 1)

// AddCircle appends a closed contour approximating a circle of radius r
// centered at (cx, cy), built from four cubic Bezier quadrants.
func (p *Path) AddCircle(cx, cy, r float64) *Path {
	return p.AddEllipse(cx, cy, r, r)
}

// AddEllipse appends a closed contour approximating an axis-aligned
// ellipse centered at (cx, cy) with radii (rx, ry).
func (p *Path) AddEllipse(cx, cy, rx, ry float64) *Path {
	ox, oy := rx*circleBezierConstant, ry*circleBezierConstant
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	return p.ClosePath()
}

// AddStar appends a closed contour alternating between outerRadius and
// innerRadius every 180/points degrees, starting with an outer vertex
// straight above the center. Consecutive vertices are joined in angular
// order, so the contour does not cross itself: it is a simple, concave
// star outline, not a self-intersecting star polygon.
func (p *Path) AddStar(cx, cy, outerRadius, innerRadius float64, points int) *Path {
	if points < 3 {
		panic("raster2d: AddStar requires at least 3 points")
	}
	angleStep := math.Pi / float64(points)
	startAngle := -math.Pi / 2
	for i := 0; i < points*2; i++ {
		angle := startAngle + float64(i)*angleStep
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		x, y := cx+r*math.Cos(angle), cy+r*math.Sin(angle)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	return p.ClosePath()
}

// PathBuilder provides a fluent wrapper over Path's append methods.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo starts a new contour.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a straight segment.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

// QuadTo draws a quadratic Bezier.
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	b.path.QuadTo(cx, cy, x, y)
	return b
}

// CubicTo draws a cubic Bezier.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
	return b
}

// Close closes the current contour.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.ClosePath()
	return b
}

// Rect appends a rectangle.
func (b *PathBuilder) Rect(x0, y0, x1, y1 float64) *PathBuilder {
	b.path.AddRect(x0, y0, x1, y1)
	return b
}

// Polygon appends an arbitrary closed polygon.
func (b *PathBuilder) Polygon(points []Point) *PathBuilder {
	b.path.AddPolygon(points)
	return b
}

// Circle appends a circle.
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	b.path.AddCircle(cx, cy, r)
	return b
}

// Star appends a star.
func (b *PathBuilder) Star(cx, cy, outerRadius, innerRadius float64, points int) *PathBuilder {
	b.path.AddStar(cx, cy, outerRadius, innerRadius, points)
	return b
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}
