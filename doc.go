// Package raster2d implements a CPU-based 2D raster graphics engine.
//
// # Overview
//
// raster2d renders vector primitives — rectangles, convex polygons, and
// general paths built from line, quadratic, and cubic segments — into a
// pixel buffer. It applies affine transforms, Porter-Duff compositing, and
// three kinds of shading: solid color, tiled bitmap sampling, and linear
// gradients.
//
// # Scope
//
// This package is the rendering kernel plus the path-construction helpers
// ([Path.AddRect], [Path.AddPolygon], [Path.AddCircle], [Path.AddStar], and
// [PathBuilder]) needed to build real geometry without hand-rolling a verb
// stream. It does not provide general matrix algebra beyond the affine
// [Matrix] the kernel itself needs, or image codecs beyond implementing
// [image.Image] and [image/draw.Image] on [Bitmap]. Callers own the
// [Bitmap] memory and the transform stack; raster2d turns a path and a
// [Paint] into pixels.
//
// # Architecture
//
//   - Public API: [Canvas], [Path], [Paint], [Matrix], [Bitmap], shaders
//   - internal/raster: edge construction, clipping, curve flattening, and
//     the two scan converters (convex polygon, general winding fill)
//   - internal/blend: the twelve Porter-Duff compositing operators
//
// # Coordinate system
//
// Device space has its origin at the top-left pixel, X increasing right and
// Y increasing down. Pixel (x, y) occupies [x, x+1) x [y, y+1); the sample
// point used for coverage decisions is its center, (x+0.5, y+0.5).
//
// # Non-goals
//
// No anti-aliasing (coverage is binary per pixel), no stroking, no
// subpixel positioning beyond the 0.5-pixel sample center, no clip regions
// other than the device rectangle, and no concurrent use of a single
// [Canvas] or shader.
package raster2d
