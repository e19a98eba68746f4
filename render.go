package sdl

import "github.com/gogpu/sdl3/internal/marshal"

// VSync values accepted by Renderer.SetVSync besides positive intervals.
const (
	VSyncDisabled = 0
	VSyncAdaptive = -1
)

// FlipMode mirrors a texture when rendering.
type FlipMode int32

// Flip modes.
const (
	FlipNone       FlipMode = 0
	FlipHorizontal FlipMode = 1
	FlipVertical   FlipMode = 2
)

// Renderer is a native SDL_Renderer handle.
// The zero Renderer is "no renderer"; see handle for equality rules.
type Renderer struct {
	handle
}

func (r Renderer) String() string { return r.format("Renderer") }

// CreateRenderer creates a 2D rendering context for a window.
//
// Without WithRenderDriver, SDL picks the driver. On failure it returns the
// zero Renderer and an *Error.
func CreateRenderer(window Window, opts ...RendererOption) (Renderer, error) {
	var o rendererOptions
	for _, opt := range opts {
		opt(&o)
	}

	addr := native.CreateRenderer(window.addr, marshal.OptionalCString(o.driver))
	if addr == 0 {
		return Renderer{}, lastError("SDL_CreateRenderer")
	}
	r := Renderer{handle{addr}}

	if o.vsync != nil {
		if err := r.SetVSync(*o.vsync); err != nil {
			r.Destroy()
			return Renderer{}, err
		}
	}
	return r, nil
}

// GetNumRenderDrivers returns the number of compiled-in render drivers.
func GetNumRenderDrivers() int {
	return int(native.GetNumRenderDrivers())
}

// GetRenderDriver returns the name of render driver index.
// ok is false when index is out of range.
func GetRenderDriver(index int) (name string, ok bool) {
	return marshal.GoString(native.GetRenderDriver(int32(index)))
}

// RenderDrivers returns the names of all render drivers, in SDL's
// preference order.
func RenderDrivers() []string {
	n := GetNumRenderDrivers()
	names := make([]string, 0, n)
	for i := range n {
		if name, ok := GetRenderDriver(i); ok {
			names = append(names, name)
		}
	}
	return names
}

// Destroy destroys the renderer and every texture created from it.
func (r Renderer) Destroy() {
	native.DestroyRenderer(r.addr)
}

// Name returns the name of the driver backing the renderer.
func (r Renderer) Name() (string, error) {
	s, ok := marshal.GoString(native.GetRendererName(r.addr))
	if !ok {
		return "", lastError("SDL_GetRendererName")
	}
	return s, nil
}

// Window returns the window the renderer draws to, or the zero Window for
// offscreen renderers.
func (r Renderer) Window() Window {
	return Window{handle{native.GetRenderWindow(r.addr)}}
}

// SetVSync sets the presentation interval.
func (r Renderer) SetVSync(interval int) error {
	return check("SDL_SetRenderVSync", native.SetRenderVSync(r.addr, int32(interval)))
}

// VSync returns the presentation interval.
func (r Renderer) VSync() (int, error) {
	var v int32
	if !native.GetRenderVSync(r.addr, &v) {
		return 0, lastError("SDL_GetRenderVSync")
	}
	return int(v), nil
}

// SetDrawColor sets the color used by Clear, FillRect, Rect, Line and Point.
func (r Renderer) SetDrawColor(red, green, blue, alpha uint8) error {
	return check("SDL_SetRenderDrawColor", native.SetRenderDrawColor(r.addr, red, green, blue, alpha))
}

// DrawColor returns the current draw color.
func (r Renderer) DrawColor() (Color, error) {
	var c Color
	if !native.GetRenderDrawColor(r.addr, &c.R, &c.G, &c.B, &c.A) {
		return Color{}, lastError("SDL_GetRenderDrawColor")
	}
	return c, nil
}

// SetDrawBlendMode sets the blend mode used by drawing operations.
func (r Renderer) SetDrawBlendMode(mode BlendMode) error {
	return check("SDL_SetRenderDrawBlendMode", native.SetRenderDrawBlendMode(r.addr, uint32(mode)))
}

// Clear fills the whole target with the draw color, ignoring the viewport.
func (r Renderer) Clear() error {
	return check("SDL_RenderClear", native.RenderClear(r.addr))
}

// Present shows everything drawn since the previous Present.
func (r Renderer) Present() error {
	return check("SDL_RenderPresent", native.RenderPresent(r.addr))
}

// FillRect fills rect with the draw color. A nil rect fills the whole target.
func (r Renderer) FillRect(rect *FRect) error {
	return check("SDL_RenderFillRect", native.RenderFillRect(r.addr, rect))
}

// Rect outlines rect with the draw color. A nil rect outlines the whole target.
func (r Renderer) Rect(rect *FRect) error {
	return check("SDL_RenderRect", native.RenderRect(r.addr, rect))
}

// Line draws a line with the draw color.
func (r Renderer) Line(x1, y1, x2, y2 float32) error {
	return check("SDL_RenderLine", native.RenderLine(r.addr, x1, y1, x2, y2))
}

// Point draws a point with the draw color.
func (r Renderer) Point(x, y float32) error {
	return check("SDL_RenderPoint", native.RenderPoint(r.addr, x, y))
}

// SetViewport restricts drawing to rect. A nil rect resets to the whole target.
func (r Renderer) SetViewport(rect *Rect) error {
	return check("SDL_SetRenderViewport", native.SetRenderViewport(r.addr, rect))
}

// SetScale sets the drawing scale factors.
func (r Renderer) SetScale(sx, sy float32) error {
	return check("SDL_SetRenderScale", native.SetRenderScale(r.addr, sx, sy))
}

// OutputSize returns the output size in pixels.
func (r Renderer) OutputSize() (width, height int, err error) {
	var w, h int32
	if !native.GetRenderOutputSize(r.addr, &w, &h) {
		return 0, 0, lastError("SDL_GetRenderOutputSize")
	}
	return int(w), int(h), nil
}

// RenderTexture copies part of a texture to the target.
//
// src selects the part of the texture, dst the area on the target; a nil
// rectangle means the whole texture or the whole target. Each rectangle is
// forwarded on its own, so an absent one always reaches SDL as NULL and
// never as a zero-sized rectangle.
func (r Renderer) RenderTexture(t Texture, src, dst *FRect) error {
	var ok bool
	switch {
	case src != nil && dst != nil:
		ok = native.RenderTexture(r.addr, t.addr, src, dst)
	case src != nil && dst == nil:
		ok = native.RenderTexture(r.addr, t.addr, src, nil)
	case src == nil && dst != nil:
		ok = native.RenderTexture(r.addr, t.addr, nil, dst)
	default:
		ok = native.RenderTexture(r.addr, t.addr, nil, nil)
	}
	return check("SDL_RenderTexture", ok)
}

// RenderTextureRotated is RenderTexture with rotation and mirroring.
//
// angle is in degrees, clockwise. center is relative to dst; nil rotates
// around the center of dst. src and dst follow the RenderTexture rules.
func (r Renderer) RenderTextureRotated(t Texture, src, dst *FRect, angle float64, center *FPoint, flip FlipMode) error {
	var ok bool
	switch {
	case src != nil && dst != nil:
		ok = native.RenderTextureRotated(r.addr, t.addr, src, dst, angle, center, int32(flip))
	case src != nil && dst == nil:
		ok = native.RenderTextureRotated(r.addr, t.addr, src, nil, angle, center, int32(flip))
	case src == nil && dst != nil:
		ok = native.RenderTextureRotated(r.addr, t.addr, nil, dst, angle, center, int32(flip))
	default:
		ok = native.RenderTextureRotated(r.addr, t.addr, nil, nil, angle, center, int32(flip))
	}
	return check("SDL_RenderTextureRotated", ok)
}
