package sdl

import "github.com/gogpu/sdl3/internal/marshal"

// WindowFlags describe window state and creation options.
type WindowFlags uint64

// Window flags.
const (
	WindowFullscreen        WindowFlags = 0x0000000000000001
	WindowOpenGL            WindowFlags = 0x0000000000000002
	WindowOccluded          WindowFlags = 0x0000000000000004
	WindowHidden            WindowFlags = 0x0000000000000008
	WindowBorderless        WindowFlags = 0x0000000000000010
	WindowResizable         WindowFlags = 0x0000000000000020
	WindowMinimized         WindowFlags = 0x0000000000000040
	WindowMaximized         WindowFlags = 0x0000000000000080
	WindowMouseGrabbed      WindowFlags = 0x0000000000000100
	WindowInputFocus        WindowFlags = 0x0000000000000200
	WindowMouseFocus        WindowFlags = 0x0000000000000400
	WindowExternal          WindowFlags = 0x0000000000000800
	WindowModal             WindowFlags = 0x0000000000001000
	WindowHighPixelDensity  WindowFlags = 0x0000000000002000
	WindowMouseCapture      WindowFlags = 0x0000000000004000
	WindowMouseRelativeMode WindowFlags = 0x0000000000008000
	WindowAlwaysOnTop       WindowFlags = 0x0000000000010000
	WindowUtility           WindowFlags = 0x0000000000020000
	WindowTooltip           WindowFlags = 0x0000000000040000
	WindowPopupMenu         WindowFlags = 0x0000000000080000
	WindowKeyboardGrabbed   WindowFlags = 0x0000000000100000
	WindowVulkan            WindowFlags = 0x0000000010000000
	WindowMetal             WindowFlags = 0x0000000020000000
	WindowTransparent       WindowFlags = 0x0000000040000000
	WindowNotFocusable      WindowFlags = 0x0000000080000000
)

// WindowID identifies a window in events. Zero is invalid.
type WindowID uint32

// Window is a native SDL_Window handle.
// The zero Window is "no window"; see handle for equality rules.
type Window struct {
	handle
}

func (w Window) String() string { return w.format("Window") }

// CreateWindow creates a window of the given size in screen coordinates.
// On failure it returns the zero Window and an *Error.
func CreateWindow(title string, width, height int, flags WindowFlags) (Window, error) {
	addr := native.CreateWindow(marshal.CString(title), int32(width), int32(height), uint64(flags))
	if addr == 0 {
		return Window{}, lastError("SDL_CreateWindow")
	}
	return Window{handle{addr}}, nil
}

// CreateWindowAndRenderer creates a window and a default renderer for it.
// Either both handles are valid or both are zero.
func CreateWindowAndRenderer(title string, width, height int, flags WindowFlags) (Window, Renderer, error) {
	var w, r uintptr
	if !native.CreateWindowAndRenderer(marshal.CString(title), int32(width), int32(height), uint64(flags), &w, &r) {
		return Window{}, Renderer{}, lastError("SDL_CreateWindowAndRenderer")
	}
	return Window{handle{w}}, Renderer{handle{r}}, nil
}

// GetWindowFromID returns the window with the given ID, or the zero Window.
func GetWindowFromID(id WindowID) Window {
	return Window{handle{native.GetWindowFromID(uint32(id))}}
}

// Destroy destroys the window. Destroy its renderer first.
func (w Window) Destroy() {
	native.DestroyWindow(w.addr)
}

// ID returns the window's numeric ID, or 0 on failure.
func (w Window) ID() WindowID {
	return WindowID(native.GetWindowID(w.addr))
}

// Title returns the window title. ok is false when SDL returns NULL; an
// untitled window yields "" and true.
func (w Window) Title() (title string, ok bool) {
	return marshal.GoString(native.GetWindowTitle(w.addr))
}

// SetTitle sets the window title.
func (w Window) SetTitle(title string) error {
	return check("SDL_SetWindowTitle", native.SetWindowTitle(w.addr, marshal.CString(title)))
}

// Size returns the window size in screen coordinates.
func (w Window) Size() (width, height int, err error) {
	var cw, ch int32
	if !native.GetWindowSize(w.addr, &cw, &ch) {
		return 0, 0, lastError("SDL_GetWindowSize")
	}
	return int(cw), int(ch), nil
}

// SetSize requests a new window size in screen coordinates.
func (w Window) SetSize(width, height int) error {
	return check("SDL_SetWindowSize", native.SetWindowSize(w.addr, int32(width), int32(height)))
}

// Position returns the window position in screen coordinates.
func (w Window) Position() (x, y int, err error) {
	var cx, cy int32
	if !native.GetWindowPosition(w.addr, &cx, &cy) {
		return 0, 0, lastError("SDL_GetWindowPosition")
	}
	return int(cx), int(cy), nil
}

// SetPosition requests a new window position in screen coordinates.
func (w Window) SetPosition(x, y int) error {
	return check("SDL_SetWindowPosition", native.SetWindowPosition(w.addr, int32(x), int32(y)))
}

// Flags returns the current window flags.
func (w Window) Flags() WindowFlags {
	return WindowFlags(native.GetWindowFlags(w.addr))
}

// Show shows the window.
func (w Window) Show() error {
	return check("SDL_ShowWindow", native.ShowWindow(w.addr))
}

// Hide hides the window.
func (w Window) Hide() error {
	return check("SDL_HideWindow", native.HideWindow(w.addr))
}

// Raise raises the window above other windows and requests input focus.
func (w Window) Raise() error {
	return check("SDL_RaiseWindow", native.RaiseWindow(w.addr))
}

// Renderer returns the renderer attached to the window, or the zero Renderer.
func (w Window) Renderer() Renderer {
	return Renderer{handle{native.GetRenderer(w.addr)}}
}
