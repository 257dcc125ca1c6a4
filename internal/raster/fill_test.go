package raster

import (
	"math"
	"testing"
)

func buildRectEdges(x0, y0, x1, y1 float64, width, height int) []Edge {
	pts := []Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
	var edges []Edge
	for i := range pts {
		p0, p1 := pts[i], pts[(i+1)%len(pts)]
		if IsHorizontal(p0, p1) {
			continue
		}
		edges = ClipEdgeTo(edges, width, height, CreateEdge(p0, p1))
	}
	return edges
}

func TestFillPathRectangle(t *testing.T) {
	edges := buildRectEdges(2, 2, 6, 6, 10, 10)
	var spans []span
	FillPath(edges, 10, 10, func(y, x0, x1 int) {
		spans = append(spans, span{y, x0, x1})
	})
	if len(spans) == 0 {
		t.Fatal("no spans emitted")
	}
	for _, s := range spans {
		if s.x0 < 2 || s.x1 > 6 {
			t.Errorf("span [%d,%d) outside expected [2,6)", s.x0, s.x1)
		}
	}
}

func TestFillPathTooFewEdges(t *testing.T) {
	var called bool
	FillPath([]Edge{CreateEdge(Point{X: 0, Y: 0}, Point{X: 0, Y: 5})}, 10, 10, func(y, x0, x1 int) {
		called = true
	})
	if called {
		t.Error("emitSpan called with fewer than 2 edges")
	}
}

// TestFillPathStarNonZeroWinding builds a 5-point self-intersecting star
// and confirms the inner pentagon (where winding reaches 2) is filled,
// matching the non-zero winding rule rather than even-odd (which would
// leave the inner pentagon empty).
func TestFillPathStarNonZeroWinding(t *testing.T) {
	// Pentagram centered at (50, 50): the five outer vertices visited in
	// every-other order, so the contour crosses itself and winds twice
	// around the inner pentagon.
	const cx, cy = 50.0, 50.0
	const outer = 40.0
	const points = 5

	var pts []Point
	for i := 0; i < points; i++ {
		angle := -math.Pi/2 + float64(i)*4*math.Pi/points
		pts = append(pts, Point{X: cx + outer*math.Cos(angle), Y: cy + outer*math.Sin(angle)})
	}

	var edges []Edge
	for i := range pts {
		p0, p1 := pts[i], pts[(i+1)%len(pts)]
		if IsHorizontal(p0, p1) {
			continue
		}
		edges = ClipEdgeTo(edges, 100, 100, CreateEdge(p0, p1))
	}

	var hitCenter bool
	FillPath(edges, 100, 100, func(y, x0, x1 int) {
		if y == 50 && x0 <= 50 && 50 < x1 {
			hitCenter = true
		}
	})
	if !hitCenter {
		t.Error("center of star was not filled under non-zero winding")
	}
}
