package sdl

import (
	"errors"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sdl3/internal/marshal"
)

// TextureAccess describes how a texture is expected to change.
type TextureAccess int32

// Texture access patterns.
const (
	TextureAccessStatic    TextureAccess = 0
	TextureAccessStreaming TextureAccess = 1
	TextureAccessTarget    TextureAccess = 2
)

// errShortPixels is returned by Texture.Update when SDL would read past the
// end of the pixel buffer.
var errShortPixels = errors.New("sdl: pixel buffer does not cover the updated area")

// Texture property names.
const (
	propTextureFormat = "SDL.texture.format"
	propTextureWidth  = "SDL.texture.width"
	propTextureHeight = "SDL.texture.height"
)

// Texture is a native SDL_Texture handle owned by a Renderer.
// The zero Texture is "no texture"; see handle for equality rules.
type Texture struct {
	handle
}

func (t Texture) String() string { return t.format("Texture") }

// CreateTexture creates a texture for r.
// On failure it returns the zero Texture and an *Error.
func CreateTexture(r Renderer, format PixelFormat, access TextureAccess, width, height int) (Texture, error) {
	addr := native.CreateTexture(r.addr, uint32(format), int32(access), int32(width), int32(height))
	if addr == 0 {
		return Texture{}, lastError("SDL_CreateTexture")
	}
	return Texture{handle{addr}}, nil
}

// CreateTextureFromImage creates a static PixelFormatRGBA32 texture holding
// a copy of img. Colors are stored non-premultiplied.
func CreateTextureFromImage(r Renderer, img image.Image) (Texture, error) {
	b := img.Bounds()
	src, ok := img.(*image.NRGBA)
	if !ok || src.Rect.Min != (image.Point{}) {
		src = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Copy(src, image.Point{}, img, b, xdraw.Src, nil)
	}

	t, err := CreateTexture(r, PixelFormatRGBA32, TextureAccessStatic, b.Dx(), b.Dy())
	if err != nil {
		return Texture{}, err
	}
	if err := t.Update(nil, src.Pix, src.Stride); err != nil {
		t.Destroy()
		return Texture{}, err
	}
	return t, nil
}

// Destroy destroys the texture.
func (t Texture) Destroy() {
	native.DestroyTexture(t.addr)
}

// Update replaces the pixels of rect, or of the whole texture when rect is
// nil. pitch is the length of one row of pixels in bytes. An empty pixels
// slice is passed to SDL as NULL.
//
// Update fails without calling SDL_UpdateTexture when pixels is shorter than
// the area SDL reads: pitch*(h-1) + w*BytesPerPixel for the part of rect
// inside the texture. For YUV formats only the first plane is checked.
//
// pixels stays pinned for the duration of the call only.
func (t Texture) Update(rect *Rect, pixels []byte, pitch int) error {
	if len(pixels) > 0 {
		if pitch < 0 {
			return errShortPixels
		}
		l, err := t.layout()
		if err != nil {
			return err
		}
		if len(pixels) < l.span(rect, pitch) {
			return errShortPixels
		}
	}

	var p marshal.Pinner
	defer p.Unpin()
	return check("SDL_UpdateTexture", native.UpdateTexture(t.addr, rect, p.Bytes(pixels), int32(pitch)))
}

// Size returns the texture size in pixels.
func (t Texture) Size() (width, height float32, err error) {
	if !native.GetTextureSize(t.addr, &width, &height) {
		return 0, 0, lastError("SDL_GetTextureSize")
	}
	return width, height, nil
}

// Format returns the pixel format the texture was created with.
func (t Texture) Format() (PixelFormat, error) {
	l, err := t.layout()
	return l.format, err
}

type textureLayout struct {
	format        PixelFormat
	width, height int
}

func (t Texture) layout() (textureLayout, error) {
	props := native.GetTextureProperties(t.addr)
	if props == 0 {
		return textureLayout{}, lastError("SDL_GetTextureProperties")
	}
	num := func(name string) int64 {
		return native.GetNumberProperty(props, marshal.CString(name), 0)
	}
	return textureLayout{
		format: PixelFormat(num(propTextureFormat)),
		width:  int(num(propTextureWidth)),
		height: int(num(propTextureHeight)),
	}, nil
}

// span returns the number of bytes SDL_UpdateTexture reads for rect, which
// SDL clips to the texture first.
func (l textureLayout) span(rect *Rect, pitch int) int {
	area := image.Rect(0, 0, l.width, l.height)
	if rect != nil {
		if rect.W <= 0 || rect.H <= 0 {
			return 0
		}
		x, y := int(rect.X), int(rect.Y)
		area = area.Intersect(image.Rect(x, y, x+int(rect.W), y+int(rect.H)))
	}
	if area.Empty() {
		return 0
	}
	if l.format.isFourCC() {
		return pitch * area.Dy()
	}
	return pitch*(area.Dy()-1) + area.Dx()*l.format.BytesPerPixel()
}

// SetBlendMode sets how the texture blends with the target.
func (t Texture) SetBlendMode(mode BlendMode) error {
	return check("SDL_SetTextureBlendMode", native.SetTextureBlendMode(t.addr, uint32(mode)))
}

// SetColorMod multiplies texture colors by (r, g, b)/255 when rendering.
func (t Texture) SetColorMod(r, g, b uint8) error {
	return check("SDL_SetTextureColorMod", native.SetTextureColorMod(t.addr, r, g, b))
}

// SetAlphaMod multiplies texture alpha by a/255 when rendering.
func (t Texture) SetAlphaMod(a uint8) error {
	return check("SDL_SetTextureAlphaMod", native.SetTextureAlphaMod(t.addr, a))
}

// Renderer returns the renderer that owns the texture.
func (t Texture) Renderer() Renderer {
	return Renderer{handle{native.GetRendererFromTexture(t.addr)}}
}
