package raster

import "sort"

// FillConvexPolygon scan-converts a convex polygon already in device-space
// coordinates, calling emitSpan(y, x0, x1) for each filled span (x0
// inclusive, x1 exclusive) on row y.
//
// It exploits convexity: exactly two edges are active at any interior
// scanline, so the scan keeps only two "current" edges and feeds in
// replacements from a list sorted by top Y, rather than maintaining a
// general active-edge list.
func FillConvexPolygon(points []Point, width, height int, emitSpan func(y, x0, x1 int)) {
	if len(points) < 2 {
		return
	}

	var edges []Edge
	n := len(points)
	for i := 0; i < n; i++ {
		p0 := points[i]
		p1 := points[(i+1)%n]
		if IsHorizontal(p0, p1) {
			continue
		}
		e := CreateEdge(p0, p1)
		edges = ClipEdgeTo(edges, width, height, e)
	}

	if len(edges) < 2 {
		return
	}

	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Top.Y < edges[b].Top.Y
	})

	i, j, nextIdx := 0, 1, 2
	last := edges[len(edges)-1]

	for r := edges[0].Top.Y + 0.5; r < last.Bottom.Y+0.5; r++ {
		if i < len(edges) && r >= edges[i].Bottom.Y {
			i = nextIdx
			nextIdx++
		}
		if j < len(edges) && r >= edges[j].Bottom.Y {
			j = nextIdx
			nextIdx++
		}
		if i >= len(edges) || j >= len(edges) {
			break
		}
		if r < edges[i].Top.Y || r < edges[j].Top.Y {
			continue
		}

		xi, xj := edges[i].XAtY(r), edges[j].XAtY(r)
		left, right := xi, xj
		if left > right {
			left, right = right, left
		}
		x0, x1 := roundInt(left), roundInt(right)
		if x1 <= x0 {
			continue
		}
		emitSpan(floorInt(r), x0, x1)
	}
}
