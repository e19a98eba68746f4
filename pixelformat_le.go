//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm

package sdl

// Byte-order formats: RGBA32 stores R, G, B, A at increasing addresses.
const (
	PixelFormatRGBA32 = PixelFormatABGR8888
	PixelFormatARGB32 = PixelFormatBGRA8888
	PixelFormatBGRA32 = PixelFormatARGB8888
	PixelFormatABGR32 = PixelFormatRGBA8888
)
