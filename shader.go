package raster2d

import "math"

// Shader produces source pixels for a horizontal span of a draw call. It is
// a sealed interface: the only implementations are [SolidShader],
// [BitmapShader], and [LinearGradientShader], built by this package's
// factory functions.
//
// A Shader is shared between a [Paint] and whatever is currently drawing
// with it. Bind mutates a cached inverse transform and is not safe to call
// concurrently from two draws sharing the same shader instance — this
// mirrors the single-threaded, one-draw-at-a-time contract of the whole
// package.
type Shader interface {
	// Opaque reports whether every pixel the shader can produce has alpha
	// 255, letting the row compositor apply mode-specialization.
	Opaque() bool
	// Bind prepares the shader for a single draw under ctm, composing ctm's
	// inverse into the shader's cached device-to-local mapping. It returns
	// false if ctm is singular, in which case the draw must be skipped.
	Bind(ctm Matrix) bool
	// ShadeRow fills buf[0:count] with source pixels for the horizontal run
	// starting at device pixel (x, y).
	ShadeRow(x, y, count int, buf []Pixel)

	shaderMarker()
}

// SolidShader returns the same pixel for every position. It never needs a
// transform, so Bind always succeeds.
type SolidShader struct {
	pixel  Pixel
	opaque bool
}

// NewSolidShader builds a shader that paints every sample with c.
func NewSolidShader(c Color) *SolidShader {
	return &SolidShader{pixel: c.ToPixel(), opaque: c.A >= 1}
}

func (s *SolidShader) shaderMarker() {}

// Opaque implements Shader.
func (s *SolidShader) Opaque() bool { return s.opaque }

// Bind implements Shader. A solid color has no geometry to transform.
func (s *SolidShader) Bind(ctm Matrix) bool { return true }

// ShadeRow implements Shader.
func (s *SolidShader) ShadeRow(x, y, count int, buf []Pixel) {
	for i := 0; i < count; i++ {
		buf[i] = s.pixel
	}
}

// BitmapShader samples a source bitmap through a local transform, tiling
// out-of-range coordinates per mode.
//
// Construction inverts localMatrix once; [BitmapShader.Bind] then composes
// the current transform's inverse on each draw, so shadeRow only ever walks
// a forward step in source space.
type BitmapShader struct {
	bitmap      *Bitmap
	localMatrix Matrix // cached inverse, updated by Bind
	invLocal    Matrix // the local matrix's inverse, fixed at construction
	tileMode    TileMode
	valid       bool
}

// NewBitmapShader builds a shader that samples bitmap, mapping device space
// to bitmap space through the inverse of localMatrix, with out-of-range
// coordinates handled by tileMode. It returns nil if localMatrix is
// singular.
func NewBitmapShader(bitmap *Bitmap, localMatrix Matrix, tileMode TileMode) *BitmapShader {
	inv, ok := localMatrix.Invert()
	if !ok {
		return nil
	}
	return &BitmapShader{bitmap: bitmap, invLocal: inv, localMatrix: inv, tileMode: tileMode}
}

func (s *BitmapShader) shaderMarker() {}

// Opaque implements Shader.
func (s *BitmapShader) Opaque() bool { return s.bitmap.IsOpaque() }

// Bind implements Shader.
func (s *BitmapShader) Bind(ctm Matrix) bool {
	inv, ok := ctm.Invert()
	if !ok {
		s.valid = false
		return false
	}
	s.localMatrix = s.invLocal.Concat(inv)
	s.valid = true
	return true
}

// ShadeRow implements Shader.
func (s *BitmapShader) ShadeRow(x, y, count int, buf []Pixel) {
	if !s.valid {
		for i := range buf[:count] {
			buf[i] = 0
		}
		return
	}
	m := s.localMatrix
	px := m.A*(float64(x)+0.5) + m.C*(float64(y)+0.5) + m.E
	py := m.B*(float64(x)+0.5) + m.D*(float64(y)+0.5) + m.F
	w, h := float64(s.bitmap.Width()), float64(s.bitmap.Height())
	for i := 0; i < count; i++ {
		ix := tileTexture(s.tileMode, px, w)
		iy := tileTexture(s.tileMode, py, h)
		buf[i] = s.bitmap.PixelAt(int(math.Floor(ix)), int(math.Floor(iy)))
		px += m.A
		py += m.B
	}
}

// LinearGradientShader interpolates between N colors along the axis from P0
// to P1, tiling the scalar gradient coordinate outside [0, N-1] per mode.
// The axis perpendicular to P0->P1 is ignored: every point on a line
// perpendicular to the gradient axis gets the same color.
type LinearGradientShader struct {
	colors      []Color
	tileMode    TileMode
	localMatrix Matrix // cached inverse, updated by Bind
	base        Matrix // maps device space to gradient index, pre-ctm
	opaque      bool
	valid       bool
}

// NewLinearGradientShader builds a gradient shader between p0 and p1 using
// colors (at least 2 required), tiling beyond the endpoints per tileMode.
// It returns nil if p0 == p1, since the gradient axis would be undefined.
func NewLinearGradientShader(p0, p1 Point, colors []Color, tileMode TileMode) *LinearGradientShader {
	if len(colors) < 2 {
		return nil
	}
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	if dx == 0 && dy == 0 {
		return nil
	}
	// Basis matrix whose columns are the gradient axis and its
	// perpendicular, translated to p0; inverting it maps device space onto
	// a frame where the gradient axis is the x-axis.
	basis := Matrix{A: dx, B: dy, C: -dy, D: dx, E: p0.X, F: p0.Y}
	invBasis, ok := basis.Invert()
	if !ok {
		return nil
	}
	n := float64(len(colors) - 1)
	scale := Matrix{A: n, D: n}
	base := scale.Concat(invBasis)

	opaque := true
	for _, c := range colors {
		if c.A < 1 {
			opaque = false
			break
		}
	}
	cs := make([]Color, len(colors))
	copy(cs, colors)
	return &LinearGradientShader{colors: cs, tileMode: tileMode, base: base, localMatrix: base, opaque: opaque}
}

func (s *LinearGradientShader) shaderMarker() {}

// Opaque implements Shader. It is true iff every color stop is fully
// opaque.
func (s *LinearGradientShader) Opaque() bool { return s.opaque }

// Bind implements Shader.
func (s *LinearGradientShader) Bind(ctm Matrix) bool {
	inv, ok := ctm.Invert()
	if !ok {
		s.valid = false
		return false
	}
	s.localMatrix = s.base.Concat(inv)
	s.valid = true
	return true
}

// ShadeRow implements Shader.
func (s *LinearGradientShader) ShadeRow(x, y, count int, buf []Pixel) {
	if !s.valid {
		for i := range buf[:count] {
			buf[i] = 0
		}
		return
	}
	m := s.localMatrix
	px := m.A*(float64(x)+0.5) + m.C*(float64(y)+0.5) + m.E
	n := len(s.colors)
	for i := 0; i < count; i++ {
		ix := tileGradient(s.tileMode, px, n)
		flo := math.Floor(ix)
		lo := int(flo)
		t := ix - flo
		if lo >= n-1 {
			// ix landed exactly on the last stop (a fixed point of the
			// Mirror fold); treat it as the end of the last segment.
			lo = n - 2
			t = 1
		}
		c0, c1 := s.colors[lo], s.colors[lo+1]
		buf[i] = lerpColor(c0, c1, t).ToPixel()
		px += m.A
	}
}

// lerpColor linearly interpolates two unpremultiplied colors.
func lerpColor(a, b Color, t float64) Color {
	return Color{
		A: a.A + (b.A-a.A)*t,
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}
