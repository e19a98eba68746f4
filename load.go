package sdl

import (
	"fmt"
	"sync"

	"github.com/gogpu/sdl3/internal/loader"
)

var (
	libMu sync.Mutex
	lib   *loader.Library
)

// Load opens the SDL3 shared library and binds its entry points.
//
// Candidates are tried in this order: WithLibraryPath, $SDL3_LIBRARY_PATH,
// the library names next to the executable, then the names handed to the
// system loader. Once Load succeeds, later calls return nil without
// reopening the library. A failed Load leaves nothing bound and may be
// retried.
//
// Every other function in this package requires a successful Load.
func Load(opts ...LoadOption) error {
	libMu.Lock()
	defer libMu.Unlock()

	if lib != nil {
		return nil
	}

	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	candidates := loader.Candidates(o.path, o.names)
	Logger().Debug("sdl: loading library", "candidates", candidates)

	l, err := loader.Open(candidates)
	if err != nil {
		return fmt.Errorf("sdl: load: %w", err)
	}

	var n nativeFuncs
	bound, skipped, err := n.bind(l)
	if err != nil {
		_ = l.Close()
		return fmt.Errorf("sdl: load %s: %w", l.Name(), err)
	}

	native = n
	lib = l
	v := GetVersion()
	Logger().Info("sdl: library loaded",
		"path", l.Name(), "version", v.String(), "bound", bound, "skipped", skipped)
	if v < MinSDLVersion {
		Logger().Warn("sdl: library older than supported ABI",
			"version", v.String(), "min", MinSDLVersion.String())
	}
	return nil
}

// Unload clears every binding and closes the library.
// Handles obtained before Unload must not be used afterwards.
func Unload() error {
	libMu.Lock()
	defer libMu.Unlock()

	if lib == nil {
		return nil
	}
	native = nativeFuncs{}
	err := lib.Close()
	Logger().Info("sdl: library unloaded", "path", lib.Name())
	lib = nil
	return err
}

// Loaded reports whether Load has succeeded and Unload has not been called.
func Loaded() bool {
	libMu.Lock()
	defer libMu.Unlock()
	return lib != nil
}
