package sdl

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled returns false so the Debug calls in
// lastError cost nothing on the failure path of native calls.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

// logger is read on every failed SDL call and may be swapped by SetLogger
// from any goroutine.
var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(silent)
}

// SetLogger routes the package's diagnostics to l. Nil restores the default,
// which discards everything.
//
// Records and their attributes:
//   - [slog.LevelDebug] "sdl: loading library" (candidates) and
//     "sdl: native call failed" (op, msg), one per *Error
//   - [slog.LevelInfo] "sdl: library loaded" (path, version, bound, skipped)
//     and "sdl: library unloaded" (path)
//   - [slog.LevelWarn] "sdl: optional entry point unavailable" (symbol, err)
//     and "sdl: library older than supported ABI" (version, min)
//
// To see why CreateWindow or CreateRenderer failed without inspecting every
// error:
//
//	sdl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger. integration/ggsdl logs through
// it too, so one SetLogger call covers both packages.
func Logger() *slog.Logger {
	return logger.Load()
}
