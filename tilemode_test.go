package raster2d

import "testing"

func TestTileTextureClamp(t *testing.T) {
	if got := tileTexture(TileClamp, -5, 4); got != 0 {
		t.Errorf("Clamp(-5, dim=4) = %v, want 0", got)
	}
	if got := tileTexture(TileClamp, 10, 4); got != 3 {
		t.Errorf("Clamp(10, dim=4) = %v, want 3", got)
	}
}

func TestTileTextureRepeat(t *testing.T) {
	if got := tileTexture(TileRepeat, 5, 4); got != 1 {
		t.Errorf("Repeat(5, dim=4) = %v, want 1", got)
	}
	if got := tileTexture(TileRepeat, -1, 4); got != 3 {
		t.Errorf("Repeat(-1, dim=4) = %v, want 3", got)
	}
}

func TestTileTextureMirror(t *testing.T) {
	// Unlike the gradient fold, the texture mirror reflects values >= dim
	// by 2*dim-1-v: value dim should reflect to dim-1.
	if got := tileTexture(TileMirror, 4, 4); got != 3 {
		t.Errorf("Mirror(4, dim=4) = %v, want 3", got)
	}
	if got := tileTexture(TileMirror, 0, 4); got != 0 {
		t.Errorf("Mirror(0, dim=4) = %v, want 0", got)
	}
}

func TestTileGradientMirrorScenario(t *testing.T) {
	// Spec scenario 7: gradient (0,0)-(10,0), colors {black, white} (N=2,
	// last=1), Mirror. ix=10 -> white; ix=20 -> black; ix=15 -> mid-gray.
	// The gradient shader maps device x into gradient index via its local
	// matrix; here we exercise the tile fold directly on index values 1
	// (mapped end) and 2 (one full mirror period) in this 2-stop
	// gradient's domain [0,1].
	if got := tileGradient(TileMirror, 1, 2); got != 1 {
		t.Errorf("tileGradient(Mirror, 1, n=2) = %v, want 1", got)
	}
	if got := tileGradient(TileMirror, 2, 2); got != 0 {
		t.Errorf("tileGradient(Mirror, 2, n=2) = %v, want 0", got)
	}
}
