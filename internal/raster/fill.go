package raster

import "sort"

// FillPath scan-converts edges already in device-space coordinates using
// the non-zero winding rule, calling emitSpan(y, x0, x1) for each filled
// span (x0 inclusive, x1 exclusive) on row y. edges is sorted and mutated
// in place.
//
// Unlike the convex case, an arbitrary path can have any number of edges
// active at a given scanline, so this walks a genuine active-edge list:
// edges are kept sorted by x within the active prefix, winding is
// accumulated left to right, and a span is closed whenever the running
// winding returns to zero.
func FillPath(edges []Edge, width, height int, emitSpan func(y, x0, x1 int)) {
	if len(edges) < 2 {
		return
	}

	sort.SliceStable(edges, func(a, b int) bool {
		ta, tb := roundInt(edges[a].Top.Y), roundInt(edges[b].Top.Y)
		if ta == tb {
			return edges[a].XAtY(edges[a].Top.Y+0.5) < edges[b].XAtY(edges[b].Top.Y+0.5)
		}
		return ta < tb
	})

	yUpper := float64(roundInt(edges[0].Top.Y)) + 0.5
	yLowerMax := 0.0
	for _, e := range edges {
		if e.Bottom.Y > yLowerMax {
			yLowerMax = e.Bottom.Y
		}
	}
	yLower := float64(roundInt(yLowerMax)) + 0.5

	for y := yUpper; y < yLower; y++ {
		i := 0
		w := 0
		left := 0

		for i < len(edges) && edges[i].Valid(y) {
			x := floorInt(edges[i].XAtY(y))
			if x < 0 {
				x = 0
			}
			if x >= width {
				x = width - 1
			}
			if w == 0 {
				left = x
			}
			w += edges[i].Winding
			if w == 0 {
				// The reference implementation rounds the row here while
				// the convex-polygon scan floors it (see FillConvexPolygon);
				// that asymmetry is preserved rather than "fixed", since
				// output compatibility with the rest of this package's
				// test fixtures depends on both scanners' exact rounding.
				emitSpan(roundInt(y), left, x)
			}

			if edges[i].Valid(y + 1) {
				i++
			} else {
				edges = append(edges[:i], edges[i+1:]...)
			}
		}

		for i < len(edges) && edges[i].Valid(y+1) {
			i++
		}

		active := edges[:i]
		sort.SliceStable(active, func(a, b int) bool {
			return active[a].XAtY(y+1) < active[b].XAtY(y+1)
		})
	}
}
