package sdl

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/sdl3/internal/marshal"
)

func TestTextureUpdate(t *testing.T) {
	f, _, r := newTestRenderer(t)
	tex, err := CreateTexture(r, PixelFormatRGBA32, TextureAccessStreaming, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	pixels := []byte{
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	}
	rect := &Rect{W: 2, H: 2}
	if err := tex.Update(rect, pixels, 8); err != nil {
		t.Fatal(err)
	}

	u := f.updates[0]
	if u.rect != rect {
		t.Error("rect not forwarded")
	}
	if diff := cmp.Diff(pixels, u.pixels); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
	if u.pinned < 1 {
		t.Errorf("pixels not pinned during the call: Active() = %d", u.pinned)
	}
	if n := marshal.Active(); n != 0 {
		t.Errorf("Active() = %d after Update, want 0", n)
	}
}

func TestTextureUpdateNilArguments(t *testing.T) {
	f, _, r := newTestRenderer(t)
	tex, _ := CreateTexture(r, PixelFormatRGBA32, TextureAccessStreaming, 2, 2)

	if err := tex.Update(nil, nil, 0); err != nil {
		t.Fatal(err)
	}
	u := f.updates[0]
	if u.rect != nil {
		t.Error("nil rect should reach SDL as NULL")
	}
	if u.pixels != nil {
		t.Error("empty pixels should reach SDL as NULL")
	}
}

func TestTextureUpdateFailureReleasesPins(t *testing.T) {
	f, _, r := newTestRenderer(t)
	tex, _ := CreateTexture(r, PixelFormatRGBA32, TextureAccessStreaming, 1, 1)
	f.fail["SDL_UpdateTexture"] = true

	if err := tex.Update(nil, []byte{1, 2, 3, 4}, 4); err == nil {
		t.Fatal("Update() = nil after native failure")
	}
	if n := marshal.Active(); n != 0 {
		t.Errorf("Active() = %d after failed Update, want 0", n)
	}
}

func TestTextureUpdateShortBuffer(t *testing.T) {
	// 4x4 RGBA32 texture, rows padded to 20 bytes.
	tests := []struct {
		name    string
		rect    *Rect
		size    int
		wantErr bool
	}{
		{"whole texture nil rect", nil, 4, true},
		{"whole texture exact", nil, 3*20 + 16, false},
		{"rect one row short", &Rect{W: 4, H: 4}, 2*20 + 16, true},
		{"rect last row unpadded", &Rect{W: 4, H: 4}, 3*20 + 16, false},
		{"rect last row one byte short", &Rect{W: 4, H: 4}, 3*20 + 15, true},
		{"rect clipped to texture", &Rect{X: 2, Y: 2, W: 4, H: 4}, 20 + 8, false},
		{"rect clipped one byte short", &Rect{X: 2, Y: 2, W: 4, H: 4}, 20 + 7, true},
		{"rect outside texture", &Rect{X: 8, Y: 8, W: 4, H: 4}, 1, false},
		{"empty rect", &Rect{W: 0, H: 4}, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _, r := newTestRenderer(t)
			tex, err := CreateTexture(r, PixelFormatRGBA32, TextureAccessStreaming, 4, 4)
			if err != nil {
				t.Fatal(err)
			}

			err = tex.Update(tt.rect, make([]byte, tt.size), 20)
			if tt.wantErr {
				if err != errShortPixels {
					t.Errorf("Update() = %v, want %v", err, errShortPixels)
				}
				if len(f.updates) != 0 {
					t.Error("SDL_UpdateTexture called with a short buffer")
				}
				return
			}
			if err != nil {
				t.Fatalf("Update() = %v", err)
			}
			if got := len(f.updates[0].pixels); got > tt.size {
				t.Errorf("SDL read %d bytes from a %d byte buffer", got, tt.size)
			}
		})
	}
}

func TestTextureUpdateNegativePitch(t *testing.T) {
	f, _, r := newTestRenderer(t)
	tex, _ := CreateTexture(r, PixelFormatRGBA32, TextureAccessStreaming, 2, 2)

	if err := tex.Update(nil, make([]byte, 16), -8); err != errShortPixels {
		t.Errorf("Update() = %v, want %v", err, errShortPixels)
	}
	if len(f.updates) != 0 {
		t.Error("SDL_UpdateTexture called with a negative pitch")
	}
}

func TestTextureUpdatePropertiesFailure(t *testing.T) {
	f, _, r := newTestRenderer(t)
	tex, _ := CreateTexture(r, PixelFormatRGBA32, TextureAccessStreaming, 2, 2)
	f.fail["SDL_GetTextureProperties"] = true

	err := tex.Update(nil, make([]byte, 16), 8)
	var sdlErr *Error
	if !errors.As(err, &sdlErr) || sdlErr.Op != "SDL_GetTextureProperties" {
		t.Errorf("Update() = %v, want *Error from SDL_GetTextureProperties", err)
	}
	if len(f.updates) != 0 {
		t.Error("SDL_UpdateTexture called without a size check")
	}
}

func TestTextureFormat(t *testing.T) {
	_, _, r := newTestRenderer(t)
	tex, _ := CreateTexture(r, PixelFormatRGB24, TextureAccessStatic, 3, 1)

	got, err := tex.Format()
	if err != nil {
		t.Fatal(err)
	}
	if got != PixelFormatRGB24 {
		t.Errorf("Format() = %v, want %v", got, PixelFormatRGB24)
	}
}

func TestCreateTextureFailure(t *testing.T) {
	f, _, r := newTestRenderer(t)
	f.fail["SDL_CreateTexture"] = true

	tex, err := CreateTexture(r, PixelFormatRGBA32, TextureAccessStatic, 1, 1)
	if err == nil || !tex.IsNil() {
		t.Errorf("CreateTexture() = %v, %v; want nil handle and error", tex, err)
	}
}

func TestCreateTextureFromImage(t *testing.T) {
	f, _, r := newTestRenderer(t)

	img := image.NewRGBA(image.Rect(10, 10, 12, 14))
	img.Set(10, 10, color.RGBA{R: 255, A: 255})

	tex, err := CreateTextureFromImage(r, img)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Renderer() != r {
		t.Error("texture not owned by renderer")
	}
	u := f.updates[0]
	if u.pitch != 2*4 {
		t.Errorf("pitch = %d, want 8", u.pitch)
	}
	if diff := cmp.Diff([]byte{255, 0, 0, 255}, u.pixels[:4]); diff != "" {
		t.Errorf("first pixel mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateTextureFromImageUpdateFailure(t *testing.T) {
	f, _, r := newTestRenderer(t)
	f.fail["SDL_UpdateTexture"] = true

	tex, err := CreateTextureFromImage(r, image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	if err == nil || !tex.IsNil() {
		t.Fatalf("CreateTextureFromImage() = %v, %v; want nil handle and error", tex, err)
	}
	if n := f.count("SDL_DestroyTexture"); n != 1 {
		t.Errorf("texture destroyed %d times, want 1", n)
	}
}

func TestTextureProperties(t *testing.T) {
	_, _, r := newTestRenderer(t)
	tex, _ := CreateTexture(r, PixelFormatRGBA32, TextureAccessTarget, 64, 32)

	if w, h, err := tex.Size(); err != nil || w != 64 || h != 32 {
		t.Errorf("Size() = %v, %v, %v", w, h, err)
	}
	if err := tex.SetBlendMode(BlendModeBlendPremultiplied); err != nil {
		t.Error(err)
	}
	if err := tex.SetColorMod(255, 128, 0); err != nil {
		t.Error(err)
	}
	if err := tex.SetAlphaMod(128); err != nil {
		t.Error(err)
	}
}
