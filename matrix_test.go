package raster2d

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestMatrixIdentityMapsUnchanged(t *testing.T) {
	p := Point{X: 3, Y: 7}
	if got := Identity.MapPoint(p); got != p {
		t.Errorf("Identity.MapPoint(%v) = %v", p, got)
	}
}

func TestMatrixTranslate(t *testing.T) {
	m := Translate(5, -2)
	got := m.MapPoint(Point{X: 1, Y: 1})
	if got != (Point{X: 6, Y: -1}) {
		t.Errorf("Translate.MapPoint = %v, want (6,-1)", got)
	}
}

func TestMatrixConcatOrderAppliesRightFirst(t *testing.T) {
	translate := Translate(10, 0)
	scale := Scale(2, 2)
	// translate.Concat(scale): scale first, then translate.
	m := translate.Concat(scale)
	got := m.MapPoint(Point{X: 1, Y: 1})
	if got != (Point{X: 12, Y: 2}) {
		t.Errorf("Concat order wrong: got %v, want (12, 2)", got)
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Translate(3, 4).Concat(Rotate(0.7)).Concat(Scale(2, 3))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("expected invertible matrix")
	}
	p := Point{X: 13, Y: -5}
	roundTrip := inv.MapPoint(m.MapPoint(p))
	if !approxEqual(roundTrip.X, p.X, 1e-9) || !approxEqual(roundTrip.Y, p.Y, 1e-9) {
		t.Errorf("round trip = %v, want %v", roundTrip, p)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	m := Matrix{} // all zero: determinant zero
	if _, ok := m.Invert(); ok {
		t.Error("expected singular matrix to fail to invert")
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	if !Identity.IsIdentity() {
		t.Error("Identity.IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1,0).IsIdentity() = true")
	}
}
