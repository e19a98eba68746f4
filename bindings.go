package sdl

import (
	"unsafe"

	"github.com/gogpu/sdl3/internal/loader"
)

// nativeFuncs holds the bound SDL3 entry points.
//
// Every field mirrors one C function: same name without the SDL_ prefix,
// same argument order. Native object pointers travel as uintptr, strings as
// *byte (nil is NULL) and struct pointers as Go pointers to layout-identical
// types. Fields stay nil until Load succeeds.
type nativeFuncs struct {
	// init
	Init          func(flags uint32) bool
	InitSubSystem func(flags uint32) bool
	QuitSubSystem func(flags uint32)
	WasInit       func(flags uint32) uint32
	Quit          func()

	// error, version, hints, timer, stdinc
	GetError    func() *byte
	ClearError  func() bool
	GetVersion  func() int32
	GetRevision func() *byte
	SetHint     func(name, value *byte) bool
	GetHint     func(name *byte) *byte
	ResetHint   func(name *byte) bool
	Delay       func(ms uint32)
	GetTicks    func() uint64
	Free        func(mem unsafe.Pointer)

	// properties
	GetNumberProperty func(props uint32, name *byte, def int64) int64

	// video
	CreateWindow            func(title *byte, w, h int32, flags uint64) uintptr
	CreateWindowAndRenderer func(title *byte, w, h int32, flags uint64, window, renderer *uintptr) bool
	DestroyWindow           func(window uintptr)
	GetWindowID             func(window uintptr) uint32
	GetWindowFromID         func(id uint32) uintptr
	SetWindowTitle          func(window uintptr, title *byte) bool
	GetWindowTitle          func(window uintptr) *byte
	GetWindowSize           func(window uintptr, w, h *int32) bool
	SetWindowSize           func(window uintptr, w, h int32) bool
	GetWindowPosition       func(window uintptr, x, y *int32) bool
	SetWindowPosition       func(window uintptr, x, y int32) bool
	GetWindowFlags          func(window uintptr) uint64
	ShowWindow              func(window uintptr) bool
	HideWindow              func(window uintptr) bool
	RaiseWindow             func(window uintptr) bool
	GetRenderer             func(window uintptr) uintptr
	GetNumRenderDrivers     func() int32
	GetRenderDriver         func(index int32) *byte
	CreateRenderer          func(window uintptr, name *byte) uintptr
	GetRenderWindow         func(renderer uintptr) uintptr
	GetRendererName         func(renderer uintptr) *byte
	SetRenderVSync          func(renderer uintptr, vsync int32) bool
	GetRenderVSync          func(renderer uintptr, vsync *int32) bool
	SetRenderDrawColor      func(renderer uintptr, r, g, b, a uint8) bool
	GetRenderDrawColor      func(renderer uintptr, r, g, b, a *uint8) bool
	SetRenderDrawBlendMode  func(renderer uintptr, mode uint32) bool
	RenderClear             func(renderer uintptr) bool
	RenderPresent           func(renderer uintptr) bool
	RenderFillRect          func(renderer uintptr, rect *FRect) bool
	RenderRect              func(renderer uintptr, rect *FRect) bool
	RenderLine              func(renderer uintptr, x1, y1, x2, y2 float32) bool
	RenderPoint             func(renderer uintptr, x, y float32) bool
	SetRenderViewport       func(renderer uintptr, rect *Rect) bool
	SetRenderScale          func(renderer uintptr, sx, sy float32) bool
	GetRenderOutputSize     func(renderer uintptr, w, h *int32) bool
	DestroyRenderer         func(renderer uintptr)
	CreateTexture           func(renderer uintptr, format uint32, access int32, w, h int32) uintptr
	UpdateTexture           func(texture uintptr, rect *Rect, pixels *byte, pitch int32) bool
	RenderTexture           func(renderer, texture uintptr, src, dst *FRect) bool
	RenderTextureRotated    func(renderer, texture uintptr, src, dst *FRect, angle float64, center *FPoint, flip int32) bool
	GetTextureSize          func(texture uintptr, w, h *float32) bool
	GetTextureProperties    func(texture uintptr) uint32
	SetTextureBlendMode     func(texture uintptr, mode uint32) bool
	SetTextureColorMod      func(texture uintptr, r, g, b uint8) bool
	SetTextureAlphaMod      func(texture uintptr, a uint8) bool
	GetRendererFromTexture  func(texture uintptr) uintptr
	DestroyTexture          func(texture uintptr)

	// events
	PollEvent        func(event *Event) bool
	WaitEventTimeout func(event *Event, timeoutMS int32) bool
	PumpEvents       func()

	// messagebox
	ShowSimpleMessageBox func(flags uint32, title, message *byte, window uintptr) bool
	ShowMessageBox       func(data *messageBoxData, buttonID *int32) bool

	// joystick
	GetJoysticks         func(count *int32) *JoystickID
	GetJoystickNameForID func(id JoystickID) *byte
	GetJoystickGUIDForID func(id JoystickID) nativeGUID
}

// native is the live binding table.
var native nativeFuncs

// binding names one entry point. Optional entry points may fail to bind
// (missing symbol or a signature purego cannot express on this platform);
// their field then stays nil.
type binding struct {
	fptr     any
	symbol   string
	optional bool
}

func (n *nativeFuncs) bindings() []binding {
	return []binding{
		{&n.Init, "SDL_Init", false},
		{&n.InitSubSystem, "SDL_InitSubSystem", false},
		{&n.QuitSubSystem, "SDL_QuitSubSystem", false},
		{&n.WasInit, "SDL_WasInit", false},
		{&n.Quit, "SDL_Quit", false},

		{&n.GetError, "SDL_GetError", false},
		{&n.ClearError, "SDL_ClearError", false},
		{&n.GetVersion, "SDL_GetVersion", false},
		{&n.GetRevision, "SDL_GetRevision", false},
		{&n.SetHint, "SDL_SetHint", false},
		{&n.GetHint, "SDL_GetHint", false},
		{&n.ResetHint, "SDL_ResetHint", false},
		{&n.Delay, "SDL_Delay", false},
		{&n.GetTicks, "SDL_GetTicks", false},
		{&n.Free, "SDL_free", false},
		{&n.GetNumberProperty, "SDL_GetNumberProperty", false},

		{&n.CreateWindow, "SDL_CreateWindow", false},
		{&n.CreateWindowAndRenderer, "SDL_CreateWindowAndRenderer", false},
		{&n.DestroyWindow, "SDL_DestroyWindow", false},
		{&n.GetWindowID, "SDL_GetWindowID", false},
		{&n.GetWindowFromID, "SDL_GetWindowFromID", false},
		{&n.SetWindowTitle, "SDL_SetWindowTitle", false},
		{&n.GetWindowTitle, "SDL_GetWindowTitle", false},
		{&n.GetWindowSize, "SDL_GetWindowSize", false},
		{&n.SetWindowSize, "SDL_SetWindowSize", false},
		{&n.GetWindowPosition, "SDL_GetWindowPosition", false},
		{&n.SetWindowPosition, "SDL_SetWindowPosition", false},
		{&n.GetWindowFlags, "SDL_GetWindowFlags", false},
		{&n.ShowWindow, "SDL_ShowWindow", false},
		{&n.HideWindow, "SDL_HideWindow", false},
		{&n.RaiseWindow, "SDL_RaiseWindow", false},

		{&n.GetRenderer, "SDL_GetRenderer", false},
		{&n.GetNumRenderDrivers, "SDL_GetNumRenderDrivers", false},
		{&n.GetRenderDriver, "SDL_GetRenderDriver", false},
		{&n.CreateRenderer, "SDL_CreateRenderer", false},
		{&n.GetRenderWindow, "SDL_GetRenderWindow", false},
		{&n.GetRendererName, "SDL_GetRendererName", false},
		{&n.SetRenderVSync, "SDL_SetRenderVSync", false},
		{&n.GetRenderVSync, "SDL_GetRenderVSync", false},
		{&n.SetRenderDrawColor, "SDL_SetRenderDrawColor", false},
		{&n.GetRenderDrawColor, "SDL_GetRenderDrawColor", false},
		{&n.SetRenderDrawBlendMode, "SDL_SetRenderDrawBlendMode", false},
		{&n.RenderClear, "SDL_RenderClear", false},
		{&n.RenderPresent, "SDL_RenderPresent", false},
		{&n.RenderFillRect, "SDL_RenderFillRect", false},
		{&n.RenderRect, "SDL_RenderRect", false},
		{&n.RenderLine, "SDL_RenderLine", false},
		{&n.RenderPoint, "SDL_RenderPoint", false},
		{&n.SetRenderViewport, "SDL_SetRenderViewport", false},
		{&n.SetRenderScale, "SDL_SetRenderScale", false},
		{&n.GetRenderOutputSize, "SDL_GetRenderOutputSize", false},
		{&n.DestroyRenderer, "SDL_DestroyRenderer", false},
		{&n.CreateTexture, "SDL_CreateTexture", false},
		{&n.UpdateTexture, "SDL_UpdateTexture", false},
		{&n.RenderTexture, "SDL_RenderTexture", false},
		{&n.RenderTextureRotated, "SDL_RenderTextureRotated", false},
		{&n.GetTextureSize, "SDL_GetTextureSize", false},
		{&n.GetTextureProperties, "SDL_GetTextureProperties", false},
		{&n.SetTextureBlendMode, "SDL_SetTextureBlendMode", false},
		{&n.SetTextureColorMod, "SDL_SetTextureColorMod", false},
		{&n.SetTextureAlphaMod, "SDL_SetTextureAlphaMod", false},
		{&n.GetRendererFromTexture, "SDL_GetRendererFromTexture", false},
		{&n.DestroyTexture, "SDL_DestroyTexture", false},

		{&n.PollEvent, "SDL_PollEvent", false},
		{&n.WaitEventTimeout, "SDL_WaitEventTimeout", false},
		{&n.PumpEvents, "SDL_PumpEvents", false},

		{&n.ShowSimpleMessageBox, "SDL_ShowSimpleMessageBox", false},
		{&n.ShowMessageBox, "SDL_ShowMessageBox", false},

		{&n.GetJoysticks, "SDL_GetJoysticks", false},
		{&n.GetJoystickNameForID, "SDL_GetJoystickNameForID", false},
		// Returns SDL_GUID by value; purego supports struct returns only on
		// some platforms.
		{&n.GetJoystickGUIDForID, "SDL_GetJoystickGUIDForID", true},
	}
}

// bind resolves every entry point from lib into n.
// It stops at the first missing required symbol.
func (n *nativeFuncs) bind(lib *loader.Library) (bound, skipped int, err error) {
	for _, b := range n.bindings() {
		if err := lib.Bind(b.fptr, b.symbol); err != nil {
			if b.optional {
				Logger().Warn("sdl: optional entry point unavailable", "symbol", b.symbol, "err", err)
				skipped++
				continue
			}
			return bound, skipped, err
		}
		bound++
	}
	return bound, skipped, nil
}
