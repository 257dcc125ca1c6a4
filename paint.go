package raster2d

// Paint describes how a fill is drawn: a blend mode, a solid color, and an
// optional shader. When Shader is non-nil it supplies source pixels and
// Color is ignored; otherwise every sample uses Color.
//
// A Paint is a plain value and may be freely copied; a copied Paint and its
// original share the same Shader instance, matching the shared-ownership
// model described for shaders.
type Paint struct {
	BlendMode BlendMode
	Color     Color
	Shader    Shader
}

// SolidPaint returns a Paint that fills with color using mode.
func SolidPaint(mode BlendMode, color Color) Paint {
	return Paint{BlendMode: mode, Color: color}
}

// ShaderPaint returns a Paint that fills using shader, with mode selecting
// the compositing operator.
func ShaderPaint(mode BlendMode, shader Shader) Paint {
	return Paint{BlendMode: mode, Shader: shader}
}
