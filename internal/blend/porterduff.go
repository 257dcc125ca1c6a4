// Package blend implements the twelve Porter-Duff compositing operators
// over premultiplied, 8-bit-per-channel pixels.
//
// Every operator has the signature (source, destination) -> new
// destination, operating independently on each of the four channels
// (including alpha, which uses the same formula as the color channels).
// Multiplications are done in 8-bit fixed point using [Div255], which must
// be used instead of integer division to match the reference output for
// every value in [0, 255*255].
package blend

// Func composites a source pixel (sr, sg, sb, sa) with a destination pixel
// (dr, dg, db, da), returning the new destination pixel. All values are
// premultiplied, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

// Mode identifies one of the twelve operators. Its values are ordinal
// indices into [Table] and must stay in the same order as
// raster2d.BlendMode: Clear, Src, Dst, SrcOver, DstOver, SrcIn, DstIn,
// SrcOut, DstOut, SrcATop, DstATop, Xor.
type Mode uint8

const (
	Clear Mode = iota
	Src
	Dst
	SrcOver
	DstOver
	SrcIn
	DstIn
	SrcOut
	DstOut
	SrcATop
	DstATop
	Xor
	numModes
)

// Table maps a [Mode] to its blend function.
var Table = [numModes]Func{
	Clear:    clear_,
	Src:      src,
	Dst:      dst,
	SrcOver:  srcOver,
	DstOver:  dstOver,
	SrcIn:    srcIn,
	DstIn:    dstIn,
	SrcOut:   srcOut,
	DstOut:   dstOut,
	SrcATop:  srcATop,
	DstATop:  dstATop,
	Xor:      xor,
}

// Get returns the blend function for mode. Panics if mode is out of range,
// since an invalid mode indicates a programming error in the caller rather
// than a recoverable runtime condition.
func Get(mode Mode) Func {
	return Table[mode]
}

// Div255 computes round(n/255) for n in [0, 255*255] without a division,
// using the identity (n+128)*257 >> 16. This is exact across the full
// range and is the only form that must be used for fixed-point blending;
// plain integer division truncates, which rounds the wrong way for about
// half of inputs.
func Div255(n uint32) uint8 {
	return uint8((n + 128) * 257 >> 16)
}

func mul(a, b uint8) uint8 {
	return Div255(uint32(a) * uint32(b))
}

func addClamp(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func clear_(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return 0, 0, 0, 0
}

func src(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return sr, sg, sb, sa
}

func dst(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return dr, dg, db, da
}

// srcOver: S + (1-Sa)*D
func srcOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - sa
	return addClamp(sr, mul(dr, inv)),
		addClamp(sg, mul(dg, inv)),
		addClamp(sb, mul(db, inv)),
		addClamp(sa, mul(da, inv))
}

// dstOver: D + (1-Da)*S
func dstOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - da
	return addClamp(dr, mul(sr, inv)),
		addClamp(dg, mul(sg, inv)),
		addClamp(db, mul(sb, inv)),
		addClamp(da, mul(sa, inv))
}

// srcIn: Da*S
func srcIn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mul(sr, da), mul(sg, da), mul(sb, da), mul(sa, da)
}

// dstIn: Sa*D
func dstIn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mul(dr, sa), mul(dg, sa), mul(db, sa), mul(da, sa)
}

// srcOut: (1-Da)*S
func srcOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - da
	return mul(sr, inv), mul(sg, inv), mul(sb, inv), mul(sa, inv)
}

// dstOut: (1-Sa)*D
func dstOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - sa
	return mul(dr, inv), mul(dg, inv), mul(db, inv), mul(da, inv)
}

// srcATop: Da*S + (1-Sa)*D
func srcATop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - sa
	return addClamp(mul(sr, da), mul(dr, inv)),
		addClamp(mul(sg, da), mul(dg, inv)),
		addClamp(mul(sb, da), mul(db, inv)),
		addClamp(mul(sa, da), mul(da, inv))
}

// dstATop: Sa*D + (1-Da)*S
func dstATop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - da
	return addClamp(mul(dr, sa), mul(sr, inv)),
		addClamp(mul(dg, sa), mul(sg, inv)),
		addClamp(mul(db, sa), mul(sb, inv)),
		addClamp(mul(da, sa), mul(sa, inv))
}

// xor: (1-Sa)*D + (1-Da)*S
func xor(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	invDa := 255 - da
	return addClamp(mul(dr, invSa), mul(sr, invDa)),
		addClamp(mul(dg, invSa), mul(sg, invDa)),
		addClamp(mul(db, invSa), mul(sb, invDa)),
		addClamp(mul(da, invSa), mul(sa, invDa))
}
