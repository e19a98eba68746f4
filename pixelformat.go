package sdl

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// PixelFormat is an SDL_PixelFormat value.
//
// Packed formats encode their layout as
// (1<<28) | type<<24 | order<<20 | layout<<16 | bits<<8 | bytes.
type PixelFormat uint32

// Pixel formats used by this package. The byte-order aliases
// PixelFormatRGBA32 and PixelFormatBGRA32 are defined per architecture.
const (
	PixelFormatUnknown  PixelFormat = 0
	PixelFormatXRGB8888 PixelFormat = 0x16161804
	PixelFormatARGB8888 PixelFormat = 0x16362004
	PixelFormatRGBA8888 PixelFormat = 0x16462004
	PixelFormatABGR8888 PixelFormat = 0x16762004
	PixelFormatBGRA8888 PixelFormat = 0x16862004
	PixelFormatRGB24    PixelFormat = 0x17101803
)

var pixelFormatNames = map[PixelFormat]string{
	PixelFormatUnknown:  "UNKNOWN",
	PixelFormatXRGB8888: "XRGB8888",
	PixelFormatARGB8888: "ARGB8888",
	PixelFormatRGBA8888: "RGBA8888",
	PixelFormatABGR8888: "ABGR8888",
	PixelFormatBGRA8888: "BGRA8888",
	PixelFormatRGB24:    "RGB24",
}

func (f PixelFormat) String() string {
	if s, ok := pixelFormatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("PixelFormat(%#08x)", uint32(f))
}

// BitsPerPixel returns the significant bits per pixel.
func (f PixelFormat) BitsPerPixel() int {
	return int(f>>8) & 0xFF
}

// BytesPerPixel returns the storage size of one pixel.
func (f PixelFormat) BytesPerPixel() int {
	return int(f) & 0xFF
}

// isFourCC reports whether f is a FOURCC (YUV) code rather than a packed
// layout.
func (f PixelFormat) isFourCC() bool {
	return f != PixelFormatUnknown && (f>>28)&0x0F != 1
}

// Pitch returns the row length in bytes for an image width pixels wide.
func (f PixelFormat) Pitch(width int) int {
	return width * f.BytesPerPixel()
}

// TextureFormat returns the GPU texture format with the same memory layout,
// or gputypes.TextureFormatUndefined when there is none.
func (f PixelFormat) TextureFormat() gputypes.TextureFormat {
	switch f {
	case PixelFormatRGBA32:
		return gputypes.TextureFormatRGBA8Unorm
	case PixelFormatBGRA32:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// PixelFormatFromTextureFormat is the inverse of PixelFormat.TextureFormat.
// It returns PixelFormatUnknown for formats SDL textures cannot hold.
func PixelFormatFromTextureFormat(tf gputypes.TextureFormat) PixelFormat {
	switch tf {
	case gputypes.TextureFormatRGBA8Unorm:
		return PixelFormatRGBA32
	case gputypes.TextureFormatBGRA8Unorm:
		return PixelFormatBGRA32
	default:
		return PixelFormatUnknown
	}
}
