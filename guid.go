package sdl

import (
	"encoding/hex"

	"github.com/gogpu/sdl3/internal/marshal"
)

// GUID is a 128-bit device identifier. GUIDs are values: assignment copies
// all 16 bytes and == compares them.
type GUID [16]byte

// nativeGUID is SDL_GUID as returned by value.
type nativeGUID struct {
	data [16]byte
}

// GUIDFromBytes copies the first 16 bytes of b into a GUID. Shorter input
// leaves the remaining bytes zero.
func GUIDFromBytes(b []byte) GUID {
	var g GUID
	copy(g[:], b)
	return g
}

func guidFromNative(n *nativeGUID) GUID {
	return GUIDFromBytes(marshal.Copy16(&n.data))
}

// Data returns a fresh copy of the 16 bytes. Changing it does not affect g.
func (g GUID) Data() []byte {
	return marshal.Copy16((*[16]byte)(&g))
}

// IsZero reports whether every byte is zero.
func (g GUID) IsZero() bool {
	return g == GUID{}
}

// String returns the 32 lowercase hex digits SDL_GUIDToString produces.
func (g GUID) String() string {
	return hex.EncodeToString(g[:])
}

// ParseGUID decodes the SDL_StringToGUID format. Like SDL, it is lenient:
// invalid digits decode as zero nibbles, a short string leaves the
// remaining bytes zero and characters past the 32nd are ignored.
func ParseGUID(s string) GUID {
	var g GUID
	for i := 0; i+1 < len(s) && i/2 < len(g); i += 2 {
		g[i/2] = nibble(s[i])<<4 | nibble(s[i+1])
	}
	return g
}

func nibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
