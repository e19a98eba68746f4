package main

import (
	"math"

	"github.com/gogpu/gg"

	sdl "github.com/gogpu/sdl3"
	"github.com/gogpu/sdl3/integration/ggsdl"
)

// demo animates a ring of rotating squares over a gradient.
type demo struct {
	angle  float64
	paused bool
}

// handleEvents drains the event queue. It returns false when the program
// should exit.
func (d *demo) handleEvents(canvas *ggsdl.Canvas) bool {
	var e sdl.Event
	for sdl.PollEvent(&e) {
		switch e.Type() {
		case sdl.EventQuit, sdl.EventWindowCloseRequested:
			return false
		case sdl.EventKeyDown:
			k, _ := e.Keyboard()
			switch k.Key {
			case sdl.KeyEscape:
				return false
			case sdl.KeySpace:
				d.paused = !d.paused
			}
		case sdl.EventWindowPixelSizeChanged:
			w, _ := e.Window()
			if err := canvas.Resize(int(w.Data1), int(w.Data2)); err != nil {
				sdl.Logger().Warn("canvas resize failed", "err", err)
			}
		}
	}
	return true
}

func (d *demo) drawFrame(r sdl.Renderer, canvas *ggsdl.Canvas) error {
	if !d.paused {
		d.angle += math.Pi / 180
	}
	if err := canvas.Draw(d.paint); err != nil {
		return err
	}

	if err := r.SetDrawColor(100, 149, 237, 255); err != nil {
		return err
	}
	if err := r.Clear(); err != nil {
		return err
	}
	if err := canvas.RenderTo(0, 0); err != nil {
		return err
	}
	return r.Present()
}

func (d *demo) paint(dc *gg.Context) {
	w, h := dc.Width(), dc.Height()
	dc.Clear()

	steps := 50
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		dc.SetRGBA(0.1+t*0.4, 0.2+t*0.3, 0.4+t*0.2, 0.5)
		dc.DrawRectangle(0, float64(h)*t, float64(w), float64(h)/float64(steps)+1)
		_ = dc.Fill()
	}

	cx, cy := float64(w)/2, float64(h)/2
	for i := 0; i < 8; i++ {
		dc.Push()
		dc.Translate(cx, cy)
		dc.Rotate(d.angle + float64(i)*math.Pi/4)
		dc.Translate(120, 0)
		dc.Rotate(-d.angle * 2)
		dc.SetColor(gg.HSL(float64(i)*45, 0.8, 0.6))
		dc.DrawRectangle(-30, -30, 60, 60)
		_ = dc.Fill()
		dc.Pop()
	}

	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(4)
	dc.DrawCircle(cx, cy, 60)
	_ = dc.Stroke()
}
