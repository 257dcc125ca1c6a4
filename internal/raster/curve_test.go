package raster

import "testing"

func TestChopQuadAtMidpoint(t *testing.T) {
	p0, p1, p2 := Point{X: 0, Y: 0}, Point{X: 10, Y: 10}, Point{X: 20, Y: 0}
	a, b, m, e, c := ChopQuadAt(p0, p1, p2, 0.5)
	if a != p0 || c != p2 {
		t.Errorf("endpoints changed: a=%v c=%v", a, c)
	}
	if m.X != 10 || m.Y != 5 {
		t.Errorf("midpoint = %v, want (10, 5)", m)
	}
	_ = b
	_ = e
}

func TestChopCubicAtMidpointSymmetric(t *testing.T) {
	p0, p1, p2, p3 := Point{X: 0, Y: 0}, Point{X: 0, Y: 10}, Point{X: 10, Y: 10}, Point{X: 10, Y: 0}
	a, _, _, d, _, _, g := ChopCubicAt(p0, p1, p2, p3, 0.5)
	if a != p0 || g != p3 {
		t.Errorf("endpoints changed: a=%v g=%v", a, g)
	}
	// The arch is symmetric about x=5, so its t=0.5 point lies on that axis,
	// at height (0 + 3*10 + 3*10 + 0)/8 = 7.5.
	if d.X != 5 || d.Y != 7.5 {
		t.Errorf("midpoint = %v, want (5, 7.5)", d)
	}
}

func TestQuadSubdivisionsStraightLineIsZero(t *testing.T) {
	// A "quadratic" whose control point lies on the chord has zero error
	// and needs no subdivision.
	n := QuadSubdivisions(Point{X: 0, Y: 0}, Point{X: 5, Y: 0}, Point{X: 10, Y: 0})
	if n != 0 {
		t.Errorf("QuadSubdivisions(straight) = %d, want 0", n)
	}
}

func TestQuadSubdivisionsIncreaseWithError(t *testing.T) {
	small := QuadSubdivisions(Point{X: 0, Y: 0}, Point{X: 5, Y: 1}, Point{X: 10, Y: 0})
	large := QuadSubdivisions(Point{X: 0, Y: 0}, Point{X: 5, Y: 1000}, Point{X: 10, Y: 0})
	if large < small {
		t.Errorf("a larger control-point deviation should need at least as many subdivisions: %d < %d", large, small)
	}
}

func TestEmitQuadLinesCount(t *testing.T) {
	var segs [][2]Point
	EmitQuadLines(Point{X: 0, Y: 0}, Point{X: 5, Y: 5}, Point{X: 10, Y: 0}, 3, func(a, b Point) {
		segs = append(segs, [2]Point{a, b})
	})
	if want := 1 << 3; len(segs) != want {
		t.Errorf("got %d segments, want %d", len(segs), want)
	}
	// The chain of segments must be contiguous from the curve's start to
	// its end.
	if segs[0][0] != (Point{X: 0, Y: 0}) {
		t.Errorf("first segment starts at %v, want (0,0)", segs[0][0])
	}
	if segs[len(segs)-1][1] != (Point{X: 10, Y: 0}) {
		t.Errorf("last segment ends at %v, want (10,0)", segs[len(segs)-1][1])
	}
	for i := 1; i < len(segs); i++ {
		if segs[i-1][1] != segs[i][0] {
			t.Errorf("segment %d does not start where %d ended: %v != %v", i, i-1, segs[i][0], segs[i-1][1])
		}
	}
}

func TestEmitCubicLinesZeroChopsIsOneSegment(t *testing.T) {
	var segs [][2]Point
	EmitCubicLines(Point{X: 0, Y: 0}, Point{}, Point{}, Point{X: 1, Y: 1}, 0, func(a, b Point) {
		segs = append(segs, [2]Point{a, b})
	})
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if segs[0][0] != (Point{X: 0, Y: 0}) || segs[0][1] != (Point{X: 1, Y: 1}) {
		t.Errorf("segment = %v, want endpoints (0,0)-(1,1)", segs[0])
	}
}
