package raster

// ClipEdgeTo restricts e to the device rectangle [0, width-1] x [0,
// height-1] (rounded), appending zero, one, or two surviving edges to
// edges, and returns the updated slice.
//
// The clip is a cascade of axis-aligned cuts. Clipping against the left or
// right boundary can split an edge in two: the portion that was outside
// becomes a vertical "filler" edge running along the boundary column,
// which preserves the original edge's winding contribution so that
// non-zero winding fills stay correct right up to the clip edges. This is
// expressed as an explicit worklist rather than recursion, since splitting
// produces two edges that both need independent further clipping.
func ClipEdgeTo(edges []Edge, width, height int, e Edge) []Edge {
	minX, maxX := 0, width-1
	minY, maxY := 0, height-1

	stack := []Edge{e}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		topY, botY := roundInt(cur.Top.Y), roundInt(cur.Bottom.Y)

		// Entirely above or below the device: discard.
		if topY < minY && botY < minY {
			continue
		}
		if topY > maxY && botY > maxY {
			continue
		}

		// Pull the top endpoint down to y=minY along the line.
		if topY < minY {
			cur.Top.X = cur.Top.X + cur.Slope*(float64(minY)-cur.Top.Y)
			cur.Top.Y = float64(minY)
			stack = append(stack, cur)
			continue
		}
		// Pull the bottom endpoint up to y=maxY along the line.
		if botY > maxY {
			cur.Bottom.X = cur.Bottom.X + cur.Slope*(float64(maxY)-cur.Bottom.Y)
			cur.Bottom.Y = float64(maxY)
			stack = append(stack, cur)
			continue
		}

		topX, botX := roundInt(cur.Top.X), roundInt(cur.Bottom.X)

		// Entirely left or right of the device: collapse onto the
		// boundary column. The edge becomes vertical but keeps its
		// winding, since it still separates inside from outside along
		// that boundary.
		if topX < minX && botX < minX {
			cur.Top.X, cur.Bottom.X = float64(minX), float64(minX)
			cur.recompute()
			stack = append(stack, cur)
			continue
		}
		if topX > maxX && botX > maxX {
			cur.Top.X, cur.Bottom.X = float64(maxX), float64(maxX)
			cur.recompute()
			stack = append(stack, cur)
			continue
		}

		// Exactly one endpoint past the left boundary: split into a
		// vertical filler along x=minX and the shortened interior edge.
		if topX < minX {
			crossY := (float64(minX) - cur.Intercept) / cur.Slope
			filler := CreateEdge(Point{X: float64(minX), Y: cur.Top.Y}, Point{X: float64(minX), Y: crossY})
			filler.Winding = cur.Winding
			stack = append(stack, filler)
			cur.Top.X, cur.Top.Y = float64(minX), crossY
			cur.recompute()
			stack = append(stack, cur)
			continue
		}
		if botX < minX {
			crossY := (float64(minX) - cur.Intercept) / cur.Slope
			filler := CreateEdge(Point{X: float64(minX), Y: cur.Bottom.Y}, Point{X: float64(minX), Y: crossY})
			filler.Winding = cur.Winding
			stack = append(stack, filler)
			cur.Bottom.X, cur.Bottom.Y = float64(minX), crossY
			cur.recompute()
			stack = append(stack, cur)
			continue
		}
		// Symmetric for the right boundary.
		if topX > maxX {
			crossY := (float64(maxX) - cur.Intercept) / cur.Slope
			filler := CreateEdge(Point{X: float64(maxX), Y: cur.Top.Y}, Point{X: float64(maxX), Y: crossY})
			filler.Winding = cur.Winding
			stack = append(stack, filler)
			cur.Top.X, cur.Top.Y = float64(maxX), crossY
			cur.recompute()
			stack = append(stack, cur)
			continue
		}
		if botX > maxX {
			crossY := (float64(maxX) - cur.Intercept) / cur.Slope
			filler := CreateEdge(Point{X: float64(maxX), Y: cur.Bottom.Y}, Point{X: float64(maxX), Y: crossY})
			filler.Winding = cur.Winding
			stack = append(stack, filler)
			cur.Bottom.X, cur.Bottom.Y = float64(maxX), crossY
			cur.recompute()
			stack = append(stack, cur)
			continue
		}

		cur.recompute()
		if !cur.Horizontal() {
			edges = append(edges, cur)
		}
	}

	return edges
}
