package sdl

// LoadOption configures how Load locates the SDL3 library.
//
// Example:
//
//	// Search the platform default names
//	err := sdl.Load()
//
//	// Use a bundled library
//	err := sdl.Load(sdl.WithLibraryPath("./lib/libSDL3.so.0"))
type LoadOption func(*loadOptions)

// loadOptions holds optional configuration for Load.
type loadOptions struct {
	path  string
	names []string
}

// WithLibraryPath tries path before any other candidate.
// $SDL3_LIBRARY_PATH is still consulted if path cannot be opened.
func WithLibraryPath(path string) LoadOption {
	return func(o *loadOptions) {
		o.path = path
	}
}

// WithLibraryNames replaces the platform default library names
// (libSDL3.so.0, libSDL3.0.dylib, SDL3.dll, ...).
func WithLibraryNames(names ...string) LoadOption {
	return func(o *loadOptions) {
		o.names = append([]string(nil), names...)
	}
}

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	// Let SDL pick the best driver
//	r, err := sdl.CreateRenderer(win)
//
//	// Ask for a specific driver with vsync on
//	r, err := sdl.CreateRenderer(win, sdl.WithRenderDriver("vulkan"), sdl.WithVSync(1))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for CreateRenderer.
type rendererOptions struct {
	driver *string // nil: let SDL choose (NULL name)
	vsync  *int
}

// WithRenderDriver requests a render driver by name. Without this option
// SDL receives a NULL name and picks the driver itself. A comma-separated
// list is tried in order. The empty string is forwarded as an empty name,
// not as NULL.
func WithRenderDriver(name string) RendererOption {
	return func(o *rendererOptions) {
		o.driver = &name
	}
}

// WithVSync sets the vsync interval right after creation.
// Use VSyncDisabled, VSyncAdaptive or a positive interval.
func WithVSync(interval int) RendererOption {
	return func(o *rendererOptions) {
		o.vsync = &interval
	}
}
