package sdl

import (
	"errors"

	"github.com/gogpu/sdl3/internal/loader"
	"github.com/gogpu/sdl3/internal/marshal"
)

// Binding errors.
var (
	// ErrNotFound is returned by Load when no SDL3 library could be opened.
	ErrNotFound = loader.ErrNotFound

	// ErrSymbolNotFound is returned by Load when the library lacks a
	// required entry point.
	ErrSymbolNotFound = loader.ErrSymbolNotFound

	// ErrUnsupported is returned by operations whose entry point could not
	// be bound on this platform.
	ErrUnsupported = errors.New("sdl: operation not supported on this platform")
)

// Error is a failed native call.
//
// Op is the SDL entry point that failed and Msg is the text SDL_GetError
// reported right after the failure, unmodified. Msg may be empty when SDL
// did not set an error.
type Error struct {
	Op  string
	Msg string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "sdl: " + e.Op + " failed"
	}
	return "sdl: " + e.Op + ": " + e.Msg
}

// GetError returns the message of the last error on the calling thread.
// It returns the empty string when no error is set.
func GetError() string {
	s, _ := marshal.GoString(native.GetError())
	return s
}

// ClearError clears the last error message on the calling thread.
func ClearError() {
	native.ClearError()
}

// lastError captures the native error text for a failed call to op.
func lastError(op string) *Error {
	err := &Error{Op: op, Msg: GetError()}
	Logger().Debug("sdl: native call failed", "op", op, "msg", err.Msg)
	return err
}

// check converts a native bool status into an error.
func check(op string, ok bool) error {
	if ok {
		return nil
	}
	return lastError(op)
}
