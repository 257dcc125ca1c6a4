// Command raster2ddemo exercises the raster2d package end to end: it draws
// a handful of primitives onto a canvas and writes the result as a PNG, and
// can optionally tile a loaded BMP image as a bitmap shader background.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/bmp"

	"github.com/kelvinraster/raster2d"
)

func main() {
	var (
		width   = flag.Int("width", 400, "image width")
		height  = flag.Int("height", 300, "image height")
		output  = flag.String("output", "demo.png", "output PNG path")
		bgBmp   = flag.String("bg", "", "optional BMP file tiled as the background")
		verbose = flag.Bool("v", false, "log degenerate-geometry conditions to stderr")
	)
	flag.Parse()

	if *verbose {
		raster2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	canvas := raster2d.NewCanvas(*width, *height)
	canvas.Clear(raster2d.Color{A: 1, R: 0.08, G: 0.08, B: 0.12})

	if *bgBmp != "" {
		if err := drawBackground(canvas, *bgBmp); err != nil {
			log.Fatalf("raster2ddemo: background: %v", err)
		}
	}

	drawShapesDemo(canvas)
	drawTransformDemo(canvas)
	drawGradientDemo(canvas)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("raster2ddemo: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, canvas.Bitmap()); err != nil {
		log.Fatalf("raster2ddemo: encode: %v", err)
	}
	log.Printf("raster2ddemo: wrote %s (%dx%d)", *output, *width, *height)
}

// drawBackground decodes a BMP file and tiles it as a Repeat bitmap shader
// across the whole canvas.
func drawBackground(canvas *raster2d.Canvas, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := bmp.Decode(f)
	if err != nil {
		return err
	}

	bounds := src.Bounds()
	bitmap := raster2d.NewBitmap(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			bitmap.Set(x-bounds.Min.X, y-bounds.Min.Y, src.At(x, y))
		}
	}

	shader := raster2d.NewBitmapShader(bitmap, raster2d.Identity, raster2d.TileRepeat)
	if shader == nil {
		return nil
	}
	w, h := canvas.Bitmap().Width(), canvas.Bitmap().Height()
	canvas.DrawRect(raster2d.Rect{Right: float64(w), Bottom: float64(h)}, raster2d.ShaderPaint(raster2d.BlendSrcOver, shader))
	return nil
}

func drawShapesDemo(canvas *raster2d.Canvas) {
	canvas.DrawPath(
		raster2d.NewPath().AddCircle(100, 100, 60),
		raster2d.SolidPaint(raster2d.BlendSrcOver, raster2d.Color{A: 0.8, R: 1, G: 0.3, B: 0.3}),
	)
	canvas.DrawConvexPolygon(
		[]raster2d.Point{{X: 180, Y: 40}, {X: 260, Y: 40}, {X: 260, Y: 120}, {X: 180, Y: 120}},
		raster2d.SolidPaint(raster2d.BlendSrcOver, raster2d.Color{A: 0.8, G: 1, B: 0.3}),
	)
	canvas.DrawPath(
		raster2d.NewPath().AddStar(320, 80, 55, 22, 5),
		raster2d.SolidPaint(raster2d.BlendSrcOver, raster2d.Color{A: 1, R: 1, G: 0.85}),
	)
}

func drawTransformDemo(canvas *raster2d.Canvas) {
	canvas.Save()
	defer canvas.Restore()
	canvas.Concat(raster2d.Translate(200, 220))
	canvas.Concat(raster2d.Rotate(0.4))
	canvas.DrawRect(
		raster2d.Rect{Left: -40, Top: -40, Right: 40, Bottom: 40},
		raster2d.SolidPaint(raster2d.BlendSrcOver, raster2d.Color{A: 0.9, R: 0.4, G: 0.6, B: 1}),
	)
}

func drawGradientDemo(canvas *raster2d.Canvas) {
	colors := []raster2d.Color{
		{A: 1, R: 1, G: 0, B: 0},
		{A: 1, R: 1, G: 1, B: 0},
		{A: 1, R: 0, G: 1, B: 0},
	}
	shader := raster2d.NewLinearGradientShader(
		raster2d.Point{X: 10, Y: 260}, raster2d.Point{X: 390, Y: 260},
		colors, raster2d.TileClamp,
	)
	if shader == nil {
		return
	}
	canvas.DrawRect(
		raster2d.Rect{Left: 10, Top: 250, Right: 390, Bottom: 280},
		raster2d.ShaderPaint(raster2d.BlendSrc, shader),
	)
}
