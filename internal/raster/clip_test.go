package raster

import "testing"

func TestClipEdgeToFullyInsideUnchanged(t *testing.T) {
	e := CreateEdge(Point{X: 2, Y: 2}, Point{X: 8, Y: 8})
	edges := ClipEdgeTo(nil, 10, 10, e)
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
	if edges[0].Top != e.Top || edges[0].Bottom != e.Bottom {
		t.Errorf("edge changed: got %+v, want %+v", edges[0], e)
	}
}

func TestClipEdgeToAboveDeviceDiscarded(t *testing.T) {
	e := CreateEdge(Point{X: 1, Y: -10}, Point{X: 2, Y: -5})
	edges := ClipEdgeTo(nil, 10, 10, e)
	if len(edges) != 0 {
		t.Errorf("got %d edges, want 0 (entirely above device)", len(edges))
	}
}

func TestClipEdgeToBelowDeviceDiscarded(t *testing.T) {
	e := CreateEdge(Point{X: 1, Y: 20}, Point{X: 2, Y: 30})
	edges := ClipEdgeTo(nil, 10, 10, e)
	if len(edges) != 0 {
		t.Errorf("got %d edges, want 0 (entirely below device)", len(edges))
	}
}

func TestClipEdgeToTopPulledToZero(t *testing.T) {
	e := CreateEdge(Point{X: 5, Y: -5}, Point{X: 5, Y: 5})
	edges := ClipEdgeTo(nil, 10, 10, e)
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
	if edges[0].Top.Y != 0 {
		t.Errorf("Top.Y = %v, want 0", edges[0].Top.Y)
	}
}

func TestClipEdgeToLeftOfDeviceCollapsesToColumn(t *testing.T) {
	e := CreateEdge(Point{X: -10, Y: 2}, Point{X: -5, Y: 8})
	edges := ClipEdgeTo(nil, 10, 10, e)
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
	if edges[0].Top.X != 0 || edges[0].Bottom.X != 0 {
		t.Errorf("edge not collapsed to x=0: %+v", edges[0])
	}
}

func TestClipEdgeToSplitAtLeftBoundaryPreservesWinding(t *testing.T) {
	// One endpoint off-screen to the left, the other well inside: this
	// should split into a vertical filler at x=0 and a shortened interior
	// edge, both carrying the original winding.
	e := CreateEdge(Point{X: -5, Y: 0}, Point{X: 5, Y: 10})
	edges := ClipEdgeTo(nil, 10, 10, e)
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2 (filler + interior)", len(edges))
	}
	for _, got := range edges {
		if got.Winding != e.Winding {
			t.Errorf("edge %+v has winding %d, want %d", got, got.Winding, e.Winding)
		}
	}
}

func TestClipEdgeToRightOfDeviceCollapsesToColumn(t *testing.T) {
	e := CreateEdge(Point{X: 15, Y: 2}, Point{X: 20, Y: 8})
	edges := ClipEdgeTo(nil, 10, 10, e)
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
	if edges[0].Top.X != 9 || edges[0].Bottom.X != 9 {
		t.Errorf("edge not collapsed to x=width-1=9: %+v", edges[0])
	}
}
