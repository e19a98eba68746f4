package sdl

import (
	"unsafe"

	"github.com/gogpu/sdl3/internal/marshal"
)

// JoystickID identifies a joystick for as long as it stays connected.
// Zero is invalid.
type JoystickID uint32

// GetJoysticks returns the IDs of the connected joysticks.
// Initialize InitJoystick first.
func GetJoysticks() ([]JoystickID, error) {
	var n int32
	p := native.GetJoysticks(&n)
	if p == nil {
		return nil, lastError("SDL_GetJoysticks")
	}
	defer native.Free(unsafe.Pointer(p))
	return marshal.CopySlice(p, int(n)), nil
}

// GetJoystickNameForID returns the implementation-dependent name of a
// joystick. ok is false when id is unknown or the device has no name.
func GetJoystickNameForID(id JoystickID) (name string, ok bool) {
	return marshal.GoString(native.GetJoystickNameForID(id))
}

// GetJoystickGUIDForID returns the GUID of a joystick.
// It returns ErrUnsupported when the entry point could not be bound.
func GetJoystickGUIDForID(id JoystickID) (GUID, error) {
	if native.GetJoystickGUIDForID == nil {
		return GUID{}, ErrUnsupported
	}
	n := native.GetJoystickGUIDForID(id)
	g := guidFromNative(&n)
	if g.IsZero() {
		return GUID{}, lastError("SDL_GetJoystickGUIDForID")
	}
	return g, nil
}
