// Package sdl binds the SDL3 C library to Go without cgo.
//
// # Overview
//
// The package loads libSDL3 at run time and calls its C entry points
// directly. It adds no behavior of its own: every function translates its
// arguments, calls SDL and translates the result back. Windows, renderers
// and textures are small value types wrapping the native pointer.
//
// # Quick Start
//
//	func init() { runtime.LockOSThread() }
//
//	func main() {
//		if err := sdl.Load(); err != nil {
//			log.Fatal(err)
//		}
//		if err := sdl.Init(sdl.InitVideo); err != nil {
//			log.Fatal(err)
//		}
//		defer sdl.Quit()
//
//		win, err := sdl.CreateWindow("hello", 800, 600, 0)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer win.Destroy()
//
//		r, err := sdl.CreateRenderer(win)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer r.Destroy()
//
//		r.SetDrawColor(100, 149, 237, 255)
//		r.Clear()
//		r.Present()
//	}
//
// # Threading
//
// SDL expects video and event calls on the thread that called Init. Lock the
// main goroutine to its OS thread in an init function, as above. The package
// does no locking around native calls.
//
// # Handles
//
// Window, Renderer and Texture compare with == by native address, hash with
// Hash and are zero when absent. They must be released explicitly with
// Destroy; Scope helps release several in reverse creation order. Using a
// handle after Destroy is undefined, as in C.
//
// # Errors
//
// Failed SDL calls return *Error, which carries the entry point name and the
// SDL_GetError text at the time of failure. Creation functions return the
// zero handle together with the error.
//
// # Loading
//
// Load searches, in order: WithLibraryPath, the SDL3_LIBRARY_PATH
// environment variable, the executable's directory and the platform's
// default library names. All other functions require a successful Load.
package sdl

// Version information
const (
	// BindingVersion is the version of this package.
	BindingVersion = "0.1.0"

	// MinSDLVersion is the oldest SDL release whose ABI the bindings match.
	MinSDLVersion Version = 3002000
)
