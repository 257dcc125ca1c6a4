package blend

import "testing"

func TestDiv255(t *testing.T) {
	// Exhaustive over the full range a multiplication of two 8-bit
	// channels can produce: Div255(n) must equal round(n/255) via the
	// standard "add half, integer-divide" rounding rule (half of 255 rounds
	// down to 127 for integer n), and must never panic or overflow.
	for n := 0; n <= 255*255; n++ {
		got := Div255(uint32(n))
		want := uint8((n + 127) / 255)
		if got != want {
			t.Fatalf("Div255(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestMul(t *testing.T) {
	tests := []struct{ a, b, want uint8 }{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{128, 128, 64},
		{100, 100, 39},
	}
	for _, tt := range tests {
		if got := mul(tt.a, tt.b); got != tt.want {
			t.Errorf("mul(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAddClamp(t *testing.T) {
	tests := []struct{ a, b, want uint8 }{
		{0, 0, 0},
		{200, 100, 255},
		{255, 255, 255},
		{10, 20, 30},
	}
	for _, tt := range tests {
		if got := addClamp(tt.a, tt.b); got != tt.want {
			t.Errorf("addClamp(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

// TestSrcOverIdentity verifies "Src over transparent = Src": compositing an
// opaque source over a fully transparent destination yields the source
// unchanged.
func TestSrcOverIdentity(t *testing.T) {
	r, g, b, a := Get(SrcOver)(200, 50, 10, 255, 0, 0, 0, 0)
	if r != 200 || g != 50 || b != 10 || a != 255 {
		t.Errorf("SrcOver(opaque, transparent) = (%d,%d,%d,%d), want (200,50,10,255)", r, g, b, a)
	}
}

// TestDstIsNoop verifies "Dst blended with Dst mode = Dst".
func TestDstIsNoop(t *testing.T) {
	r, g, b, a := Get(Dst)(10, 20, 30, 40, 100, 110, 120, 130)
	if r != 100 || g != 110 || b != 120 || a != 130 {
		t.Errorf("Dst(...) = (%d,%d,%d,%d), want (100,110,120,130)", r, g, b, a)
	}
}

// TestClearIsAlwaysTransparent verifies "anything blended with Clear =
// transparent" by applying the Clear mode to arbitrary inputs.
func TestClearIsAlwaysTransparent(t *testing.T) {
	r, g, b, a := Get(Clear)(1, 2, 3, 4, 5, 6, 7, 8)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("Clear(...) = (%d,%d,%d,%d), want (0,0,0,0)", r, g, b, a)
	}
}

func TestTableCoversEveryMode(t *testing.T) {
	// Table must be indexable by every declared Mode without panicking,
	// and Get must return a function for each of them.
	for m := Clear; m < numModes; m++ {
		if fn := Get(m); fn == nil {
			t.Errorf("Table has no function for mode %d", m)
		}
	}
}

func TestSrcATopOnAlphaReducesToDa(t *testing.T) {
	// SrcATop's formula, applied uniformly to alpha, must reduce to the
	// destination alpha: Da*Sa + (1-Sa)*Da = Da.
	for sa := 0; sa <= 255; sa += 17 {
		for da := 0; da <= 255; da += 17 {
			_, _, _, a := srcATop(0, 0, 0, uint8(sa), 0, 0, 0, uint8(da))
			// allow the fixed-point rounding error of one Div255 step
			if diff := int(a) - da; diff < -1 || diff > 1 {
				t.Errorf("srcATop alpha(sa=%d, da=%d) = %d, want ~%d", sa, da, a, da)
			}
		}
	}
}
