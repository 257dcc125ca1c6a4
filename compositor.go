package raster2d

import "github.com/kelvinraster/raster2d/internal/blend"

// compositeRow is the row compositor: given a horizontal run [x, x+count)
// on row y, it fetches source pixels from paint (a solid color or a bound
// shader), selects a blend function, and writes the result into dst.
//
// Mode-specialization collapses a blend mode into an equivalent, cheaper
// one when the source alpha is known statically for the whole run (either
// because the paint has no shader and its color's alpha is constant, or
// the shader reports itself fully opaque). This mirrors the algebraic
// simplifications every one of the twelve operators reduces to at the
// alpha extremes; it changes no visible output, only the path taken to
// reach it.
func compositeRow(dst *Bitmap, paint Paint, x, y, count int) {
	if count <= 0 {
		return
	}

	mode := paint.BlendMode

	if paint.Shader == nil {
		if paint.Color.A == 1 {
			mode = specializeOpaque(mode)
		} else if paint.Color.A == 0 {
			mode = specializeTransparent(mode)
		}
		fn := blend.Get(blend.Mode(mode))
		sa, sr, sg, sb := channels(paint.Color.ToPixel())
		row := dst.Pixels()[dst.RowOffset(y)+x : dst.RowOffset(y)+x+count]
		for i := range row {
			da, dr, dg, db := channels(row[i])
			r, g, b, a := fn(sr, sg, sb, sa, dr, dg, db, da)
			row[i] = PackPixel(a, r, g, b)
		}
		return
	}

	if paint.Shader.Opaque() {
		mode = specializeOpaque(mode)
	}
	fn := blend.Get(blend.Mode(mode))

	buf := make([]Pixel, count)
	paint.Shader.ShadeRow(x, y, count, buf)

	row := dst.Pixels()[dst.RowOffset(y)+x : dst.RowOffset(y)+x+count]
	for i := range row {
		sa, sr, sg, sb := channels(buf[i])
		da, dr, dg, db := channels(row[i])
		r, g, b, a := fn(sr, sg, sb, sa, dr, dg, db, da)
		row[i] = PackPixel(a, r, g, b)
	}
}

func channels(p Pixel) (a, r, g, b uint8) {
	return p.A(), p.R(), p.G(), p.B()
}

// specializeOpaque replaces a blend mode with a cheaper equivalent when the
// source is known to be fully opaque (alpha 255).
func specializeOpaque(mode BlendMode) BlendMode {
	switch mode {
	case BlendSrcOver:
		return BlendSrc
	case BlendDstIn:
		return BlendDst
	case BlendDstOut:
		return BlendClear
	case BlendSrcATop:
		return BlendSrcIn
	case BlendDstATop:
		return BlendDstOver
	default:
		return mode
	}
}

// specializeTransparent replaces a blend mode with Clear or Dst when the
// source is known to be fully transparent (alpha 0), per the algebraic
// collapse of each of the twelve operators at Sa=0.
func specializeTransparent(mode BlendMode) BlendMode {
	switch mode {
	case BlendDst, BlendSrcOver, BlendDstOver, BlendDstOut, BlendSrcATop, BlendXor:
		return BlendDst
	default:
		return BlendClear
	}
}
