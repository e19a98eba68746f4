package sdl

import "image/color"

// Color is an 8-bit RGBA color, not premultiplied. Layout matches SDL_Color.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts any color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// BlendMode selects how drawing combines with the target.
type BlendMode uint32

// Blend modes.
const (
	BlendModeNone               BlendMode = 0x00000000
	BlendModeBlend              BlendMode = 0x00000001
	BlendModeAdd                BlendMode = 0x00000002
	BlendModeMod                BlendMode = 0x00000004
	BlendModeMul                BlendMode = 0x00000008
	BlendModeBlendPremultiplied BlendMode = 0x00000010
	BlendModeAddPremultiplied   BlendMode = 0x00000020
	BlendModeInvalid            BlendMode = 0x7FFFFFFF
)
