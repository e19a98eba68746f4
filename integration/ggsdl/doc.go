// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggsdl draws gg 2D graphics into SDL windows.
//
// The data flow is:
//
//	gg.Context (draw) -> Pixmap (CPU) -> streaming SDL texture -> Renderer
//
// # Usage
//
//	canvas, err := ggsdl.New(ggsdl.FromRenderer(r), 800, 600)
//	if err != nil {
//		return err
//	}
//	defer canvas.Close()
//
//	canvas.Draw(func(cc *gg.Context) {
//		cc.SetRGB(1, 0, 0)
//		cc.DrawCircle(400, 300, 100)
//		cc.Fill()
//	})
//
//	r.Clear()
//	canvas.RenderTo(0, 0)
//	r.Present()
//
// # Textures
//
// The texture is created on the first Flush and uploaded again only after
// Draw or MarkDirty. gg pixels are premultiplied RGBA, so the texture uses
// sdl.BlendModeBlendPremultiplied. Resize replaces the texture on the next
// Flush.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Like every SDL rendering call, use
// it from the thread that created the renderer.
package ggsdl
