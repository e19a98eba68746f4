package sdl

import (
	"encoding/binary"
	"math"
	"time"
)

// EventType identifies the kind of an Event.
type EventType uint32

// Event types.
const (
	EventQuit        EventType = 0x100
	EventTerminating EventType = 0x101

	EventWindowShown               EventType = 0x202
	EventWindowHidden              EventType = 0x203
	EventWindowExposed             EventType = 0x204
	EventWindowMoved               EventType = 0x205
	EventWindowResized             EventType = 0x206
	EventWindowPixelSizeChanged    EventType = 0x207
	EventWindowMetalViewResized    EventType = 0x208
	EventWindowMinimized           EventType = 0x209
	EventWindowMaximized           EventType = 0x20A
	EventWindowRestored            EventType = 0x20B
	EventWindowMouseEnter          EventType = 0x20C
	EventWindowMouseLeave          EventType = 0x20D
	EventWindowFocusGained         EventType = 0x20E
	EventWindowFocusLost           EventType = 0x20F
	EventWindowCloseRequested      EventType = 0x210
	EventWindowHitTest             EventType = 0x211
	EventWindowICCProfChanged      EventType = 0x212
	EventWindowDisplayChanged      EventType = 0x213
	EventWindowDisplayScaleChanged EventType = 0x214
	EventWindowSafeAreaChanged     EventType = 0x215
	EventWindowOccluded            EventType = 0x216
	EventWindowEnterFullscreen     EventType = 0x217
	EventWindowLeaveFullscreen     EventType = 0x218
	EventWindowDestroyed           EventType = 0x219
	EventWindowHDRStateChanged     EventType = 0x21A

	EventWindowFirst = EventWindowShown
	EventWindowLast  = EventWindowHDRStateChanged

	EventKeyDown     EventType = 0x300
	EventKeyUp       EventType = 0x301
	EventTextEditing EventType = 0x302
	EventTextInput   EventType = 0x303

	EventMouseMotion     EventType = 0x400
	EventMouseButtonDown EventType = 0x401
	EventMouseButtonUp   EventType = 0x402
	EventMouseWheel      EventType = 0x403
)

// IsWindow reports whether t is one of the EventWindow types.
func (t EventType) IsWindow() bool {
	return t >= EventWindowFirst && t <= EventWindowLast
}

// Keycode is a layout-dependent key code.
type Keycode uint32

// Common keycodes.
const (
	KeyReturn Keycode = 0x0d
	KeyEscape Keycode = 0x1b
	KeySpace  Keycode = 0x20
)

// Mouse buttons.
const (
	ButtonLeft   = 1
	ButtonMiddle = 2
	ButtonRight  = 3
)

// Event is an SDL_Event. Its layout matches the native union; read it
// through Type and the typed views.
type Event struct {
	_    [0]uint64
	data [128]byte
}

func (e *Event) u32(off int) uint32  { return binary.NativeEndian.Uint32(e.data[off:]) }
func (e *Event) i32(off int) int32   { return int32(e.u32(off)) }
func (e *Event) f32(off int) float32 { return math.Float32frombits(e.u32(off)) }

// Type returns the event type.
func (e *Event) Type() EventType {
	return EventType(e.u32(0))
}

// Timestamp returns the time the event was queued, relative to SDL
// initialization.
func (e *Event) Timestamp() time.Duration {
	return time.Duration(binary.NativeEndian.Uint64(e.data[8:]))
}

// WindowEvent is the payload of the EventWindow types.
type WindowEvent struct {
	WindowID WindowID
	Data1    int32
	Data2    int32
}

// Window returns the window payload. ok is false for non-window events.
func (e *Event) Window() (ev WindowEvent, ok bool) {
	if !e.Type().IsWindow() {
		return WindowEvent{}, false
	}
	return WindowEvent{
		WindowID: WindowID(e.u32(16)),
		Data1:    e.i32(20),
		Data2:    e.i32(24),
	}, true
}

// KeyboardEvent is the payload of EventKeyDown and EventKeyUp.
type KeyboardEvent struct {
	WindowID WindowID
	Which    uint32
	Scancode uint32
	Key      Keycode
	Mod      uint16
	Raw      uint16
	Down     bool
	Repeat   bool
}

// Keyboard returns the keyboard payload. ok is false for other events.
func (e *Event) Keyboard() (ev KeyboardEvent, ok bool) {
	if t := e.Type(); t != EventKeyDown && t != EventKeyUp {
		return KeyboardEvent{}, false
	}
	return KeyboardEvent{
		WindowID: WindowID(e.u32(16)),
		Which:    e.u32(20),
		Scancode: e.u32(24),
		Key:      Keycode(e.u32(28)),
		Mod:      binary.NativeEndian.Uint16(e.data[32:]),
		Raw:      binary.NativeEndian.Uint16(e.data[34:]),
		Down:     e.data[36] != 0,
		Repeat:   e.data[37] != 0,
	}, true
}

// MouseMotionEvent is the payload of EventMouseMotion.
type MouseMotionEvent struct {
	WindowID WindowID
	Which    uint32
	State    uint32
	X, Y     float32
	XRel     float32
	YRel     float32
}

// MouseMotion returns the mouse motion payload. ok is false for other events.
func (e *Event) MouseMotion() (ev MouseMotionEvent, ok bool) {
	if e.Type() != EventMouseMotion {
		return MouseMotionEvent{}, false
	}
	return MouseMotionEvent{
		WindowID: WindowID(e.u32(16)),
		Which:    e.u32(20),
		State:    e.u32(24),
		X:        e.f32(28),
		Y:        e.f32(32),
		XRel:     e.f32(36),
		YRel:     e.f32(40),
	}, true
}

// MouseButtonEvent is the payload of EventMouseButtonDown and
// EventMouseButtonUp.
type MouseButtonEvent struct {
	WindowID WindowID
	Which    uint32
	Button   uint8
	Down     bool
	Clicks   uint8
	X, Y     float32
}

// MouseButton returns the mouse button payload. ok is false for other events.
func (e *Event) MouseButton() (ev MouseButtonEvent, ok bool) {
	if t := e.Type(); t != EventMouseButtonDown && t != EventMouseButtonUp {
		return MouseButtonEvent{}, false
	}
	return MouseButtonEvent{
		WindowID: WindowID(e.u32(16)),
		Which:    e.u32(20),
		Button:   e.data[24],
		Down:     e.data[25] != 0,
		Clicks:   e.data[26],
		X:        e.f32(28),
		Y:        e.f32(32),
	}, true
}

// PollEvent fills e with the next pending event and reports whether there
// was one. It never blocks.
func PollEvent(e *Event) bool {
	return native.PollEvent(e)
}

// WaitEventTimeout waits up to timeout for an event. A negative timeout
// waits forever. It reports false on timeout or error.
func WaitEventTimeout(e *Event, timeout time.Duration) bool {
	ms := int32(-1)
	if timeout >= 0 {
		ms = int32(min(timeout.Milliseconds(), math.MaxInt32))
	}
	return native.WaitEventTimeout(e, ms)
}

// PumpEvents gathers pending input without reading it.
func PumpEvents() {
	native.PumpEvents()
}
