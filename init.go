package sdl

import (
	"fmt"

	"github.com/gogpu/sdl3/internal/marshal"
)

// InitFlags selects SDL subsystems.
type InitFlags uint32

// Subsystem flags. Video implies Events; Joystick and Gamepad imply Events.
const (
	InitAudio    InitFlags = 0x00000010
	InitVideo    InitFlags = 0x00000020
	InitJoystick InitFlags = 0x00000200
	InitHaptic   InitFlags = 0x00001000
	InitGamepad  InitFlags = 0x00002000
	InitEvents   InitFlags = 0x00004000
	InitSensor   InitFlags = 0x00008000
	InitCamera   InitFlags = 0x00010000
)

// Init initializes the given subsystems. Call it from the main thread.
func Init(flags InitFlags) error {
	return check("SDL_Init", native.Init(uint32(flags)))
}

// InitSubSystem initializes additional subsystems after Init.
func InitSubSystem(flags InitFlags) error {
	return check("SDL_InitSubSystem", native.InitSubSystem(uint32(flags)))
}

// QuitSubSystem shuts down the given subsystems.
func QuitSubSystem(flags InitFlags) {
	native.QuitSubSystem(uint32(flags))
}

// WasInit returns the subset of flags that is currently initialized.
// WasInit(0) returns every initialized subsystem.
func WasInit(flags InitFlags) InitFlags {
	return InitFlags(native.WasInit(uint32(flags)))
}

// Quit shuts down all subsystems. Destroy windows and renderers first.
func Quit() {
	native.Quit()
}

// Version is an SDL version number encoded as major*1000000 + minor*1000 + micro.
type Version int32

// Major returns the major version.
func (v Version) Major() int { return int(v) / 1000000 }

// Minor returns the minor version.
func (v Version) Minor() int { return (int(v) / 1000) % 1000 }

// Micro returns the micro (patch) version.
func (v Version) Micro() int { return int(v) % 1000 }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Micro())
}

// GetVersion returns the version of the loaded library.
func GetVersion() Version {
	return Version(native.GetVersion())
}

// GetRevision returns the source revision the library was built from.
func GetRevision() string {
	s, _ := marshal.GoString(native.GetRevision())
	return s
}

// Frequently used hint names.
const (
	HintAppName      = "SDL_APP_NAME"
	HintRenderDriver = "SDL_RENDER_DRIVER"
	HintRenderVSync  = "SDL_RENDER_VSYNC"
	HintVideoDriver  = "SDL_VIDEO_DRIVER"
)

// SetHint sets a configuration hint at normal priority.
func SetHint(name, value string) error {
	return check("SDL_SetHint", native.SetHint(marshal.CString(name), marshal.CString(value)))
}

// GetHint returns the value of a hint. ok is false when the hint is unset,
// which is distinct from a hint set to the empty string.
func GetHint(name string) (value string, ok bool) {
	return marshal.GoString(native.GetHint(marshal.CString(name)))
}

// ResetHint restores a hint to its default value.
func ResetHint(name string) error {
	return check("SDL_ResetHint", native.ResetHint(marshal.CString(name)))
}

// Delay sleeps the calling thread for at least ms milliseconds.
func Delay(ms uint32) {
	native.Delay(ms)
}

// GetTicks returns the milliseconds elapsed since SDL was initialized.
func GetTicks() uint64 {
	return native.GetTicks()
}
