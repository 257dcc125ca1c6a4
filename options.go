package raster2d

// CanvasOption configures a Canvas during construction.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	bitmap *Bitmap
}

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{}
}

// WithBitmap supplies an existing bitmap for the canvas to draw into,
// instead of allocating a fresh one. The bitmap's own dimensions govern the
// canvas's device rectangle; the width/height passed to [NewCanvas] are
// ignored when this option is used.
func WithBitmap(b *Bitmap) CanvasOption {
	return func(o *canvasOptions) {
		o.bitmap = b
	}
}
