//go:build mips || mips64 || ppc64 || s390x

package sdl

// Byte-order formats: RGBA32 stores R, G, B, A at increasing addresses.
const (
	PixelFormatRGBA32 = PixelFormatRGBA8888
	PixelFormatARGB32 = PixelFormatARGB8888
	PixelFormatBGRA32 = PixelFormatBGRA8888
	PixelFormatABGR32 = PixelFormatABGR8888
)
