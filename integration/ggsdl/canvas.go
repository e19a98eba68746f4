// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsdl

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"

	sdl "github.com/gogpu/sdl3"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("ggsdl: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggsdl: invalid dimensions")

	// ErrNilRenderer is returned when New gets no renderer.
	ErrNilRenderer = errors.New("ggsdl: nil renderer")
)

// Canvas wraps a gg.Context and keeps an SDL texture in sync with it.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	ctx         *gg.Context
	renderer    Renderer
	texture     Texture
	dirty       bool // needs upload
	sizeChanged bool // texture must be recreated
	width       int
	height      int
	closed      bool
}

// New creates a Canvas drawing through r.
// Returns an error if dimensions are invalid or r is nil.
func New(r Renderer, width, height int) (*Canvas, error) {
	if r == nil {
		return nil, ErrNilRenderer
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		ctx:      gg.NewContext(width, height),
		renderer: r,
		width:    width,
		height:   height,
		dirty:    true,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(r Renderer, width, height int) *Canvas {
	c, err := New(r, width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// Context returns the gg drawing context, or nil if the canvas is closed.
// Call MarkDirty after drawing through it directly.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// MarkDirty flags the canvas for upload on the next Flush.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// IsDirty reports whether the canvas has changes not yet uploaded.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Draw calls fn with the gg context and marks the canvas dirty.
func (c *Canvas) Draw(fn func(*gg.Context)) error {
	if c.closed {
		return ErrCanvasClosed
	}
	fn(c.ctx)
	c.dirty = true
	return nil
}

// Resize changes the canvas dimensions and clears it.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if c.width == width && c.height == height {
		return nil
	}
	if err := c.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("ggsdl: context resize failed: %w", err)
	}
	c.width = width
	c.height = height
	c.sizeChanged = true
	c.dirty = true
	return nil
}

// Flush uploads the pixmap into the texture if the canvas is dirty and
// returns the texture. The texture is created on first use.
func (c *Canvas) Flush() (Texture, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	// SDL defers texture release until the renderer no longer uses it, so
	// the old texture can go right away.
	if c.sizeChanged {
		if c.texture != nil {
			c.texture.Destroy()
			c.texture = nil
		}
		c.sizeChanged = false
	}

	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	if err := c.ctx.FlushGPU(); err != nil {
		// CPU-rendered content is still in the pixmap.
		sdl.Logger().Debug("ggsdl: gpu flush failed", "err", err)
	}

	if c.texture == nil {
		tex, err := c.renderer.NewTexture(c.width, c.height)
		if err != nil {
			return nil, fmt.Errorf("ggsdl: texture creation failed: %w", err)
		}
		c.texture = tex
	}

	pixmap := c.ctx.ResizeTarget()
	if err := c.texture.Update(nil, pixmap.Data(), pixmap.Width()*4); err != nil {
		return nil, fmt.Errorf("ggsdl: texture update failed: %w", err)
	}

	c.dirty = false
	return c.texture, nil
}

// Texture returns the current texture without flushing, or nil.
func (c *Canvas) Texture() Texture {
	return c.texture
}

// Close destroys the texture and the gg context.
// Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if c.texture != nil {
		c.texture.Destroy()
		c.texture = nil
	}
	if c.ctx != nil {
		_ = c.ctx.Close()
		c.ctx = nil
	}
	c.renderer = nil
	return nil
}
