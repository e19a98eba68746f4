// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsdl

import (
	"errors"
	"fmt"

	sdl "github.com/gogpu/sdl3"
)

// ErrForeignTexture is returned when a Renderer is asked to draw a texture
// it did not create.
var ErrForeignTexture = errors.New("ggsdl: texture not created by this renderer")

// Texture is the texture a Canvas uploads into. sdl.Texture implements it.
type Texture interface {
	Update(rect *sdl.Rect, pixels []byte, pitch int) error
	SetAlphaMod(a uint8) error
	Destroy()
}

// Renderer creates and draws canvas textures.
type Renderer interface {
	// NewTexture creates a streaming texture for premultiplied RGBA pixels.
	NewTexture(width, height int) (Texture, error)

	// DrawTexture copies t to dst, mirrored vertically when flipY is set.
	DrawTexture(t Texture, dst *sdl.FRect, flipY bool) error
}

// FromRenderer adapts an sdl.Renderer. It returns nil for the zero Renderer.
func FromRenderer(r sdl.Renderer) Renderer {
	if r.IsNil() {
		return nil
	}
	return sdlRenderer{r}
}

type sdlRenderer struct {
	r sdl.Renderer
}

func (s sdlRenderer) NewTexture(width, height int) (Texture, error) {
	t, err := sdl.CreateTexture(s.r, sdl.PixelFormatRGBA32, sdl.TextureAccessStreaming, width, height)
	if err != nil {
		return nil, err
	}
	if err := t.SetBlendMode(sdl.BlendModeBlendPremultiplied); err != nil {
		t.Destroy()
		return nil, err
	}
	return t, nil
}

func (s sdlRenderer) DrawTexture(t Texture, dst *sdl.FRect, flipY bool) error {
	tex, ok := t.(sdl.Texture)
	if !ok || tex.Renderer() != s.r {
		return ErrForeignTexture
	}
	if flipY {
		return s.r.RenderTextureRotated(tex, nil, dst, 0, nil, sdl.FlipVertical)
	}
	return s.r.RenderTexture(tex, nil, dst)
}

// RenderOptions controls how the canvas is drawn.
type RenderOptions struct {
	// X, Y is the top-left corner on the target (default: 0, 0)
	X, Y float32

	// ScaleX, ScaleY are the scale factors (default: 1, 1)
	ScaleX float32
	ScaleY float32

	// Alpha is the opacity from 0 (transparent) to 1 (opaque) (default: 1)
	Alpha float32

	// FlipY mirrors the canvas vertically (default: false)
	FlipY bool
}

// DefaultRenderOptions returns options with sensible defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{ScaleX: 1, ScaleY: 1, Alpha: 1}
}

// dst returns the destination rectangle for a canvas of the given size.
func (o RenderOptions) dst(width, height int) *sdl.FRect {
	return &sdl.FRect{
		X: o.X,
		Y: o.Y,
		W: float32(width) * o.ScaleX,
		H: float32(height) * o.ScaleY,
	}
}

func (o RenderOptions) alpha() uint8 {
	switch {
	case o.Alpha <= 0:
		return 0
	case o.Alpha >= 1:
		return 255
	default:
		return uint8(o.Alpha*255 + 0.5)
	}
}

// RenderTo flushes the canvas and draws it unscaled at (x, y).
func (c *Canvas) RenderTo(x, y float32) error {
	opts := DefaultRenderOptions()
	opts.X, opts.Y = x, y
	return c.RenderToEx(opts)
}

// RenderToEx flushes the canvas and draws it with opts.
func (c *Canvas) RenderToEx(opts RenderOptions) error {
	if c.closed {
		return ErrCanvasClosed
	}
	tex, err := c.Flush()
	if err != nil {
		return err
	}
	if err := tex.SetAlphaMod(opts.alpha()); err != nil {
		return fmt.Errorf("ggsdl: set alpha: %w", err)
	}
	return c.renderer.DrawTexture(tex, opts.dst(c.width, c.height), opts.FlipY)
}

// RenderToScaled draws the canvas at the origin with uniform scaling.
func (c *Canvas) RenderToScaled(scale float32) error {
	return c.RenderToEx(RenderOptions{ScaleX: scale, ScaleY: scale, Alpha: 1})
}
