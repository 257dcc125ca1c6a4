package raster2d

import (
	"github.com/kelvinraster/raster2d/internal/raster"
)

// Canvas is a device bitmap paired with a current transform and a stack of
// saved transforms. It is the façade the rest of this package's
// components — the blend table, shaders, the edge clipper, the curve
// flattener, and the two scan converters — are wired behind.
//
// A Canvas is not safe for concurrent use: draw calls mutate the bitmap in
// place and, when the paint carries a shader, temporarily mutate that
// shader's cached transform.
type Canvas struct {
	bitmap *Bitmap
	ctm    Matrix
	stack  []Matrix
}

// NewCanvas creates a canvas over a freshly allocated width x height
// bitmap, or over a caller-supplied one via [WithBitmap].
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	bmp := o.bitmap
	if bmp == nil {
		bmp = NewBitmap(width, height)
	}
	return &Canvas{bitmap: bmp, ctm: Identity}
}

// Bitmap returns the canvas's device bitmap.
func (c *Canvas) Bitmap() *Bitmap { return c.bitmap }

// CTM returns the canvas's current transform.
func (c *Canvas) CTM() Matrix { return c.ctm }

// Save pushes a copy of the current transform onto the stack.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.ctm)
}

// Restore pops the most recently saved transform. Calling Restore with an
// empty stack is a contract error: the caller has mismatched Save/Restore
// calls, so this panics rather than silently doing nothing.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		panic("raster2d: Restore called with an empty transform stack")
	}
	n := len(c.stack) - 1
	c.ctm = c.stack[n]
	c.stack = c.stack[:n]
}

// Concat prepends m to the current transform: subsequent drawing is
// expressed in the coordinate system m establishes relative to the
// previous one.
func (c *Canvas) Concat(m Matrix) {
	c.ctm = c.ctm.Concat(m)
}

// Clear fills every pixel of the device bitmap with color.
func (c *Canvas) Clear(color Color) {
	c.bitmap.Clear(color)
}

// DrawRect fills rect with paint. When the current transform is identity
// and paint has no shader, this fills rows directly; otherwise it degrades
// to a 4-point polygon through DrawConvexPolygon, since a transformed or
// shaded rectangle needs the general scan conversion machinery.
func (c *Canvas) DrawRect(rect Rect, paint Paint) {
	left, top, right, bottom := rect.Round()

	if paint.Shader != nil || !c.ctm.IsIdentity() {
		points := []Point{
			{X: float64(left), Y: float64(top)},
			{X: float64(right), Y: float64(top)},
			{X: float64(right), Y: float64(bottom)},
			{X: float64(left), Y: float64(bottom)},
		}
		c.DrawConvexPolygon(points, paint)
		return
	}

	l := left
	if l < 0 {
		l = 0
	}
	r := right
	if r > c.bitmap.Width() {
		r = c.bitmap.Width()
	}
	if l >= r {
		return
	}

	t := top
	if t < 0 {
		t = 0
	}
	b := bottom
	if b > c.bitmap.Height() {
		b = c.bitmap.Height()
	}
	for y := t; y < b; y++ {
		compositeRow(c.bitmap, paint, l, y, r-l)
	}
}

// DrawConvexPolygon fills the convex polygon described by points (at least
// 3, wound either direction) with paint, under the current transform.
func (c *Canvas) DrawConvexPolygon(points []Point, paint Paint) {
	if !c.bindShader(paint) {
		return
	}
	defer c.unbindShader(paint)

	device := make([]Point, len(points))
	if !c.ctm.IsIdentity() {
		for i, p := range points {
			device[i] = c.ctm.MapPoint(p)
		}
	} else {
		copy(device, points)
	}

	rpoints := make([]raster.Point, len(device))
	for i, p := range device {
		rpoints[i] = raster.Point{X: p.X, Y: p.Y}
	}

	width, height := c.bitmap.Width(), c.bitmap.Height()
	raster.FillConvexPolygon(rpoints, width, height, func(y, x0, x1 int) {
		c.emitSpan(paint, y, x0, x1)
	})
}

// DrawPath fills path using the non-zero winding rule, under the current
// transform. Curves are flattened adaptively per the error bound in
// internal/raster.
func (c *Canvas) DrawPath(path *Path, paint Paint) {
	if !c.bindShader(paint) {
		return
	}
	defer c.unbindShader(paint)

	width, height := c.bitmap.Width(), c.bitmap.Height()
	var edges []raster.Edge
	current := raster.Point{}
	var start raster.Point

	toDevice := func(p Point) raster.Point {
		d := c.ctm.MapPoint(p)
		return raster.Point{X: d.X, Y: d.Y}
	}

	addLine := func(p0, p1 raster.Point) {
		if raster.IsHorizontal(p0, p1) {
			return
		}
		edges = raster.ClipEdgeTo(edges, width, height, raster.CreateEdge(p0, p1))
	}

	for _, v := range path.Verbs() {
		switch e := v.(type) {
		case Move:
			current = toDevice(e.Point)
			start = current
		case Line:
			p := toDevice(e.Point)
			addLine(current, p)
			current = p
		case Quad:
			ctrl := toDevice(e.Control)
			p := toDevice(e.Point)
			n := raster.QuadSubdivisions(current, ctrl, p)
			raster.EmitQuadLines(current, ctrl, p, n, addLine)
			current = p
		case Cubic:
			c1 := toDevice(e.Control1)
			c2 := toDevice(e.Control2)
			p := toDevice(e.Point)
			n := raster.CubicSubdivisions(current, c1, c2, p)
			raster.EmitCubicLines(current, c1, c2, p, n, addLine)
			current = p
		case Close:
			addLine(current, start)
			current = start
		}
	}

	if len(edges) < 2 {
		return
	}

	raster.FillPath(edges, width, height, func(y, x0, x1 int) {
		c.emitSpan(paint, y, x0, x1)
	})
}

// bindShader binds paint's shader (if any) to the current transform,
// reporting false when the transform is singular and the draw must be
// skipped silently.
func (c *Canvas) bindShader(paint Paint) bool {
	if paint.Shader == nil {
		return true
	}
	if !paint.Shader.Bind(c.ctm) {
		logger().Debug("raster2d: skipping draw, shader bind failed on singular transform")
		return false
	}
	return true
}

// unbindShader restores paint's shader to its unbound state, so that
// reusing the same shader instance for a later draw under a different
// transform starts from the shader's own local matrix rather than one
// still composed with this draw's CTM.
func (c *Canvas) unbindShader(paint Paint) {
	if paint.Shader != nil {
		paint.Shader.Bind(Identity)
	}
}

// emitSpan clamps [x0, x1) to the bitmap width and runs the row compositor
// over the clamped span. Rows outside the bitmap and spans with zero or
// negative width after clamping are dropped.
func (c *Canvas) emitSpan(paint Paint, y, x0, x1 int) {
	if y < 0 || y >= c.bitmap.Height() {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > c.bitmap.Width() {
		x1 = c.bitmap.Width()
	}
	if x1 <= x0 {
		return
	}
	compositeRow(c.bitmap, paint, x0, y, x1-x0)
}
