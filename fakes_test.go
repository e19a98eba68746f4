package sdl

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/gogpu/sdl3/internal/marshal"
)

// fakeSDL stands in for libSDL3. It hands out fake addresses, records every
// call and flags any use of a destroyed handle.
type fakeSDL struct {
	t *testing.T

	calls     []string
	errMsg    string
	fail      map[string]bool
	nextAddr  uintptr
	kinds     map[uintptr]string
	destroyed map[uintptr]bool
	owner     map[uintptr]uintptr // texture -> renderer, renderer -> window
	textures  map[uintptr]fakeTexture

	hints      map[string]string
	drivers    []string
	drawColor  Color
	vsync      int32
	titles     map[uintptr]string
	lastDriver *string

	renderTextureArgs []rectPair
	rotatedCenters    []*FPoint
	updates           []textureUpdate
	messageBox        *messageBoxSnapshot
	simpleMessageBox  []string
	events            []Event
	joysticks         []JoystickID
	joystickGUIDs     map[JoystickID]GUID
	freed             int
}

// rectPair records the rectangles that reached the native side.
type rectPair struct {
	src, dst *FRect
}

// fakeTexture is what SDL reports through the texture properties.
type fakeTexture struct {
	format PixelFormat
	w, h   int32
}

// readLen returns how many bytes SDL_UpdateTexture reads for rect.
func (ft fakeTexture) readLen(rect *Rect, pitch int32) int {
	x0, y0, x1, y1 := int32(0), int32(0), ft.w, ft.h
	if rect != nil {
		x0, y0 = max(x0, rect.X), max(y0, rect.Y)
		x1, y1 = min(x1, rect.X+rect.W), min(y1, rect.Y+rect.H)
	}
	if x1 <= x0 || y1 <= y0 {
		return 0
	}
	return int(pitch*(y1-y0-1)) + int(x1-x0)*ft.format.BytesPerPixel()
}

type textureUpdate struct {
	rect   *Rect
	pixels []byte // nil when NULL was passed
	pitch  int32
	pinned int64 // marshal.Active during the call
}

// messageBoxSnapshot is a Go-side copy of what ShowMessageBox received.
type messageBoxSnapshot struct {
	Flags       uint32
	Window      uintptr
	Title       string
	Message     string
	NumButtons  int32
	ButtonsNil  bool
	Buttons     []MessageBoxButton
	ColorScheme *MessageBoxColorScheme
	Pinned      int64
}

// installFakes replaces the live binding table with fakes for the duration
// of the test.
func installFakes(t *testing.T) *fakeSDL {
	t.Helper()

	f := &fakeSDL{
		t:             t,
		fail:          make(map[string]bool),
		nextAddr:      0x1000,
		kinds:         make(map[uintptr]string),
		destroyed:     make(map[uintptr]bool),
		owner:         make(map[uintptr]uintptr),
		textures:      make(map[uintptr]fakeTexture),
		hints:         make(map[string]string),
		titles:        make(map[uintptr]string),
		drivers:       []string{"opengl", "vulkan", "software"},
		joystickGUIDs: make(map[JoystickID]GUID),
	}

	saved := native
	t.Cleanup(func() { native = saved })
	native = f.funcs()
	return f
}

func (f *fakeSDL) record(op string) bool {
	f.calls = append(f.calls, op)
	if f.fail[op] {
		f.errMsg = op + " failed in fake"
		return false
	}
	return true
}

func (f *fakeSDL) alloc(kind string) uintptr {
	f.nextAddr += 0x10
	f.kinds[f.nextAddr] = kind
	return f.nextAddr
}

// use checks that addr is a live handle of the given kind.
func (f *fakeSDL) use(op string, addr uintptr, kind string) {
	f.t.Helper()
	switch {
	case addr == 0:
		f.t.Errorf("%s called with a nil %s", op, kind)
	case f.destroyed[addr]:
		f.t.Errorf("%s called on destroyed %s %#x", op, kind, addr)
	case f.kinds[addr] != kind:
		f.t.Errorf("%s called with %#x, a %q, want a %s", op, addr, f.kinds[addr], kind)
	}
}

func (f *fakeSDL) destroy(op string, addr uintptr, kind string) {
	f.t.Helper()
	f.record(op)
	if addr == 0 {
		return
	}
	f.use(op, addr, kind)
	f.destroyed[addr] = true
}

func (f *fakeSDL) count(op string) int {
	n := 0
	for _, c := range f.calls {
		if c == op {
			n++
		}
	}
	return n
}

func goStr(p *byte) string {
	s, _ := marshal.GoString(p)
	return s
}

func (f *fakeSDL) funcs() nativeFuncs {
	return nativeFuncs{
		Init:          func(flags uint32) bool { return f.record("SDL_Init") },
		InitSubSystem: func(flags uint32) bool { return f.record("SDL_InitSubSystem") },
		QuitSubSystem: func(flags uint32) { f.record("SDL_QuitSubSystem") },
		WasInit:       func(flags uint32) uint32 { f.record("SDL_WasInit"); return flags & uint32(InitVideo|InitEvents) },
		Quit:          func() { f.record("SDL_Quit") },

		GetError: func() *byte {
			if f.errMsg == "" {
				return marshal.CString("")
			}
			return marshal.CString(f.errMsg)
		},
		ClearError:  func() bool { f.errMsg = ""; return true },
		GetVersion:  func() int32 { return 3002010 },
		GetRevision: func() *byte { return marshal.CString("release-3.2.10-0-gdeadbeef") },
		SetHint: func(name, value *byte) bool {
			if !f.record("SDL_SetHint") {
				return false
			}
			f.hints[goStr(name)] = goStr(value)
			return true
		},
		GetHint: func(name *byte) *byte {
			f.record("SDL_GetHint")
			v, ok := f.hints[goStr(name)]
			if !ok {
				return nil
			}
			return marshal.CString(v)
		},
		ResetHint: func(name *byte) bool {
			delete(f.hints, goStr(name))
			return f.record("SDL_ResetHint")
		},
		Delay:    func(ms uint32) { f.record("SDL_Delay") },
		GetTicks: func() uint64 { return 42 },
		Free:     func(mem unsafe.Pointer) { f.record("SDL_free"); f.freed++ },

		CreateWindow: func(title *byte, w, h int32, flags uint64) uintptr {
			if !f.record("SDL_CreateWindow") {
				return 0
			}
			addr := f.alloc("window")
			f.titles[addr] = goStr(title)
			return addr
		},
		CreateWindowAndRenderer: func(title *byte, w, h int32, flags uint64, window, renderer *uintptr) bool {
			if !f.record("SDL_CreateWindowAndRenderer") {
				return false
			}
			*window = f.alloc("window")
			*renderer = f.alloc("renderer")
			f.owner[*renderer] = *window
			f.titles[*window] = goStr(title)
			return true
		},
		DestroyWindow: func(window uintptr) { f.destroy("SDL_DestroyWindow", window, "window") },
		GetWindowID: func(window uintptr) uint32 {
			f.use("SDL_GetWindowID", window, "window")
			return uint32(window >> 4)
		},
		GetWindowFromID: func(id uint32) uintptr {
			addr := uintptr(id) << 4
			if f.kinds[addr] != "window" || f.destroyed[addr] {
				return 0
			}
			return addr
		},
		SetWindowTitle: func(window uintptr, title *byte) bool {
			f.use("SDL_SetWindowTitle", window, "window")
			f.titles[window] = goStr(title)
			return f.record("SDL_SetWindowTitle")
		},
		GetWindowTitle: func(window uintptr) *byte {
			f.use("SDL_GetWindowTitle", window, "window")
			if !f.record("SDL_GetWindowTitle") {
				return nil
			}
			return marshal.CString(f.titles[window])
		},
		GetWindowSize: func(window uintptr, w, h *int32) bool {
			f.use("SDL_GetWindowSize", window, "window")
			*w, *h = 800, 600
			return f.record("SDL_GetWindowSize")
		},
		SetWindowSize: func(window uintptr, w, h int32) bool { return f.record("SDL_SetWindowSize") },
		GetWindowPosition: func(window uintptr, x, y *int32) bool {
			*x, *y = 10, 20
			return f.record("SDL_GetWindowPosition")
		},
		SetWindowPosition: func(window uintptr, x, y int32) bool { return f.record("SDL_SetWindowPosition") },
		GetWindowFlags:    func(window uintptr) uint64 { return uint64(WindowResizable | WindowHighPixelDensity) },
		ShowWindow:        func(window uintptr) bool { return f.record("SDL_ShowWindow") },
		HideWindow:        func(window uintptr) bool { return f.record("SDL_HideWindow") },
		RaiseWindow:       func(window uintptr) bool { return f.record("SDL_RaiseWindow") },

		GetRenderer: func(window uintptr) uintptr {
			for r, w := range f.owner {
				if w == window && f.kinds[r] == "renderer" && !f.destroyed[r] {
					return r
				}
			}
			return 0
		},
		GetNumRenderDrivers: func() int32 { return int32(len(f.drivers)) },
		GetRenderDriver: func(index int32) *byte {
			if index < 0 || int(index) >= len(f.drivers) {
				return nil
			}
			return marshal.CString(f.drivers[index])
		},
		CreateRenderer: func(window uintptr, name *byte) uintptr {
			f.use("SDL_CreateRenderer", window, "window")
			f.lastDriver = nil
			if name != nil {
				s := goStr(name)
				f.lastDriver = &s
			}
			if !f.record("SDL_CreateRenderer") {
				return 0
			}
			addr := f.alloc("renderer")
			f.owner[addr] = window
			return addr
		},
		GetRenderWindow: func(renderer uintptr) uintptr { return f.owner[renderer] },
		GetRendererName: func(renderer uintptr) *byte {
			f.use("SDL_GetRendererName", renderer, "renderer")
			if !f.record("SDL_GetRendererName") {
				return nil
			}
			return marshal.CString(f.drivers[0])
		},
		SetRenderVSync: func(renderer uintptr, vsync int32) bool {
			f.use("SDL_SetRenderVSync", renderer, "renderer")
			if !f.record("SDL_SetRenderVSync") {
				return false
			}
			f.vsync = vsync
			return true
		},
		GetRenderVSync: func(renderer uintptr, vsync *int32) bool {
			*vsync = f.vsync
			return f.record("SDL_GetRenderVSync")
		},
		SetRenderDrawColor: func(renderer uintptr, r, g, b, a uint8) bool {
			f.use("SDL_SetRenderDrawColor", renderer, "renderer")
			f.drawColor = Color{r, g, b, a}
			return f.record("SDL_SetRenderDrawColor")
		},
		GetRenderDrawColor: func(renderer uintptr, r, g, b, a *uint8) bool {
			*r, *g, *b, *a = f.drawColor.R, f.drawColor.G, f.drawColor.B, f.drawColor.A
			return f.record("SDL_GetRenderDrawColor")
		},
		SetRenderDrawBlendMode: func(renderer uintptr, mode uint32) bool {
			return f.record("SDL_SetRenderDrawBlendMode")
		},
		RenderClear: func(renderer uintptr) bool {
			f.use("SDL_RenderClear", renderer, "renderer")
			return f.record("SDL_RenderClear")
		},
		RenderPresent: func(renderer uintptr) bool {
			f.use("SDL_RenderPresent", renderer, "renderer")
			return f.record("SDL_RenderPresent")
		},
		RenderFillRect:    func(renderer uintptr, rect *FRect) bool { return f.record("SDL_RenderFillRect") },
		RenderRect:        func(renderer uintptr, rect *FRect) bool { return f.record("SDL_RenderRect") },
		RenderLine:        func(renderer uintptr, x1, y1, x2, y2 float32) bool { return f.record("SDL_RenderLine") },
		RenderPoint:       func(renderer uintptr, x, y float32) bool { return f.record("SDL_RenderPoint") },
		SetRenderViewport: func(renderer uintptr, rect *Rect) bool { return f.record("SDL_SetRenderViewport") },
		SetRenderScale:    func(renderer uintptr, sx, sy float32) bool { return f.record("SDL_SetRenderScale") },
		GetRenderOutputSize: func(renderer uintptr, w, h *int32) bool {
			*w, *h = 1600, 1200
			return f.record("SDL_GetRenderOutputSize")
		},
		DestroyRenderer: func(renderer uintptr) {
			f.destroy("SDL_DestroyRenderer", renderer, "renderer")
			for tex, r := range f.owner {
				if r == renderer && f.kinds[tex] == "texture" {
					f.destroyed[tex] = true
				}
			}
		},

		CreateTexture: func(renderer uintptr, format uint32, access int32, w, h int32) uintptr {
			f.use("SDL_CreateTexture", renderer, "renderer")
			if !f.record("SDL_CreateTexture") {
				return 0
			}
			addr := f.alloc("texture")
			f.owner[addr] = renderer
			f.textures[addr] = fakeTexture{format: PixelFormat(format), w: w, h: h}
			return addr
		},
		UpdateTexture: func(texture uintptr, rect *Rect, pixels *byte, pitch int32) bool {
			f.use("SDL_UpdateTexture", texture, "texture")
			u := textureUpdate{rect: rect, pitch: pitch, pinned: marshal.Active()}
			if pixels != nil {
				u.pixels = marshal.CopySlice(pixels, f.textures[texture].readLen(rect, pitch))
			}
			f.updates = append(f.updates, u)
			return f.record("SDL_UpdateTexture")
		},
		RenderTexture: func(renderer, texture uintptr, src, dst *FRect) bool {
			f.use("SDL_RenderTexture", renderer, "renderer")
			f.use("SDL_RenderTexture", texture, "texture")
			f.renderTextureArgs = append(f.renderTextureArgs, rectPair{src, dst})
			return f.record("SDL_RenderTexture")
		},
		RenderTextureRotated: func(renderer, texture uintptr, src, dst *FRect, angle float64, center *FPoint, flip int32) bool {
			f.use("SDL_RenderTextureRotated", texture, "texture")
			f.renderTextureArgs = append(f.renderTextureArgs, rectPair{src, dst})
			f.rotatedCenters = append(f.rotatedCenters, center)
			return f.record("SDL_RenderTextureRotated")
		},
		GetTextureSize: func(texture uintptr, w, h *float32) bool {
			f.use("SDL_GetTextureSize", texture, "texture")
			*w, *h = 64, 32
			return f.record("SDL_GetTextureSize")
		},
		GetTextureProperties: func(texture uintptr) uint32 {
			f.use("SDL_GetTextureProperties", texture, "texture")
			if !f.record("SDL_GetTextureProperties") {
				return 0
			}
			return uint32(texture)
		},
		GetNumberProperty: func(props uint32, name *byte, def int64) int64 {
			ft, ok := f.textures[uintptr(props)]
			if !ok {
				return def
			}
			switch goStr(name) {
			case propTextureFormat:
				return int64(ft.format)
			case propTextureWidth:
				return int64(ft.w)
			case propTextureHeight:
				return int64(ft.h)
			}
			return def
		},
		SetTextureBlendMode: func(texture uintptr, mode uint32) bool { return f.record("SDL_SetTextureBlendMode") },
		SetTextureColorMod:  func(texture uintptr, r, g, b uint8) bool { return f.record("SDL_SetTextureColorMod") },
		SetTextureAlphaMod:  func(texture uintptr, a uint8) bool { return f.record("SDL_SetTextureAlphaMod") },
		GetRendererFromTexture: func(texture uintptr) uintptr {
			return f.owner[texture]
		},
		DestroyTexture: func(texture uintptr) { f.destroy("SDL_DestroyTexture", texture, "texture") },

		PollEvent: func(event *Event) bool {
			f.record("SDL_PollEvent")
			if len(f.events) == 0 {
				return false
			}
			*event = f.events[0]
			f.events = f.events[1:]
			return true
		},
		WaitEventTimeout: func(event *Event, timeoutMS int32) bool {
			f.record(fmt.Sprintf("SDL_WaitEventTimeout(%d)", timeoutMS))
			if len(f.events) == 0 {
				return false
			}
			*event = f.events[0]
			f.events = f.events[1:]
			return true
		},
		PumpEvents: func() { f.record("SDL_PumpEvents") },

		ShowSimpleMessageBox: func(flags uint32, title, message *byte, window uintptr) bool {
			f.simpleMessageBox = []string{goStr(title), goStr(message)}
			return f.record("SDL_ShowSimpleMessageBox")
		},
		ShowMessageBox: func(data *messageBoxData, buttonID *int32) bool {
			s := &messageBoxSnapshot{
				Flags:      data.flags,
				Window:     data.window,
				Title:      goStr(data.title),
				Message:    goStr(data.message),
				NumButtons: data.numButtons,
				ButtonsNil: data.buttons == nil,
				Pinned:     marshal.Active(),
			}
			for _, b := range marshal.CopySlice(data.buttons, int(data.numButtons)) {
				s.Buttons = append(s.Buttons, MessageBoxButton{
					Flags: MessageBoxButtonFlags(b.flags),
					ID:    int(b.buttonID),
					Text:  goStr(b.text),
				})
			}
			if data.colorScheme != nil {
				cs := *data.colorScheme
				s.ColorScheme = &cs
			}
			f.messageBox = s
			if !f.record("SDL_ShowMessageBox") {
				return false
			}
			if data.numButtons > 0 {
				*buttonID = marshal.CopySlice(data.buttons, 1)[0].buttonID
			}
			return true
		},

		GetJoysticks: func(count *int32) *JoystickID {
			if !f.record("SDL_GetJoysticks") {
				return nil
			}
			*count = int32(len(f.joysticks))
			// SDL returns a zero-terminated array even when empty.
			ids := append(append([]JoystickID(nil), f.joysticks...), 0)
			return &ids[0]
		},
		GetJoystickNameForID: func(id JoystickID) *byte {
			if _, ok := f.joystickGUIDs[id]; !ok {
				return nil
			}
			return marshal.CString(fmt.Sprintf("Pad %d", id))
		},
		GetJoystickGUIDForID: func(id JoystickID) nativeGUID {
			f.record("SDL_GetJoystickGUIDForID")
			return nativeGUID{data: f.joystickGUIDs[id]}
		},
	}
}
