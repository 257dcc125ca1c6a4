package raster2d

import (
	"image"
	"image/color"
	"image/draw"
)

// Compile-time interface checks: a Bitmap is usable anywhere the standard
// image library expects a read/write image.
var (
	_ image.Image = (*Bitmap)(nil)
	_ draw.Image  = (*Bitmap)(nil)
)

// Bitmap is a row-major width x height buffer of premultiplied Pixels, with
// an explicit row stride (in pixels, not bytes) so a Bitmap can address a
// sub-rectangle of a larger buffer.
//
// A Bitmap is owned by its caller. The canvas holds a non-owning view and
// never reallocates or resizes it.
type Bitmap struct {
	width, height int
	stride        int
	pix           []Pixel
	// opaque is a caller-supplied hint: when true, every pixel in the
	// buffer is known to have A == 255. Clear sets it from the clear
	// color's alpha; no other write verifies or updates it, and callers
	// that violate it get no special error, just a shader or compositor
	// that trusts a lie.
	opaque bool
}

// NewBitmap allocates a width x height bitmap, cleared to transparent black.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		width:  width,
		height: height,
		stride: width,
		pix:    make([]Pixel, width*height),
	}
}

// Width returns the bitmap's width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap's height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Stride returns the number of pixels between the start of one row and the
// next.
func (b *Bitmap) Stride() int { return b.stride }

// IsOpaque reports the bitmap's opacity hint. Shaders use this to skip
// alpha handling entirely when sampling a known-opaque source.
func (b *Bitmap) IsOpaque() bool { return b.opaque }

// SetOpaque sets the opacity hint. Callers that fill every pixel with an
// opaque color should set this to let shaders and the row compositor take
// faster paths.
func (b *Bitmap) SetOpaque(opaque bool) { b.opaque = opaque }

// RowOffset returns the index into Pixels of row y's first pixel.
func (b *Bitmap) RowOffset(y int) int { return y * b.stride }

// Pixels returns the raw backing slice, in row-major order with the
// configured stride. Mutating it mutates the bitmap.
func (b *Bitmap) Pixels() []Pixel { return b.pix }

// PixelAt returns the pixel at (x, y). Out-of-bounds coordinates return a
// transparent pixel rather than panicking, matching the degenerate-geometry
// handling used throughout the rasterizer.
func (b *Bitmap) PixelAt(x, y int) Pixel {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[b.RowOffset(y)+x]
}

// SetPixel writes the pixel at (x, y), silently discarding out-of-bounds
// writes.
func (b *Bitmap) SetPixel(x, y int, p Pixel) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[b.RowOffset(y)+x] = p
}

// Clear fills every pixel with c converted to a premultiplied Pixel. This is
// the implementation behind Canvas.Clear, exposed directly for callers that
// want to reset a bitmap without going through a canvas.
func (b *Bitmap) Clear(c Color) {
	p := c.ToPixel()
	for y := 0; y < b.height; y++ {
		row := b.pix[b.RowOffset(y) : b.RowOffset(y)+b.width]
		for i := range row {
			row[i] = p
		}
	}
	b.opaque = c.A >= 1
}

// image.Image and draw.Image implementation below, so a Bitmap can be
// handed directly to image/png or image/draw.

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image using unpremultiplied color.NRGBA, since the
// standard library's own premultiplied color.RGBA rounds differently than
// this package's Pixel type.
func (b *Bitmap) At(x, y int) color.Color {
	p := b.PixelAt(x, y)
	a := p.A()
	if a == 0 {
		return color.NRGBA{}
	}
	unpremul := func(c uint8) uint8 {
		return uint8((uint32(c)*255 + uint32(a)/2) / uint32(a))
	}
	return color.NRGBA{R: unpremul(p.R()), G: unpremul(p.G()), B: unpremul(p.B()), A: a}
}

// Set implements draw.Image.
func (b *Bitmap) Set(x, y int, c color.Color) {
	r, g, bl, a := c.RGBA()
	pr := uint8((r * 255) / 65535)
	pg := uint8((g * 255) / 65535)
	pb := uint8((bl * 255) / 65535)
	pa := uint8((a * 255) / 65535)
	b.SetPixel(x, y, PackPixel(pa, pr, pg, pb))
}
