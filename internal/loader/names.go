// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loader

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvLibraryPath overrides the library search when set.
const EnvLibraryPath = "SDL3_LIBRARY_PATH"

// DefaultNames returns the SDL3 library names for the current platform,
// most specific first.
func DefaultNames() []string {
	return namesFor(runtime.GOOS)
}

func namesFor(goos string) []string {
	switch goos {
	case "darwin", "ios":
		return []string{"libSDL3.0.dylib", "libSDL3.dylib", "SDL3.framework/SDL3"}
	case "windows":
		return []string{"SDL3.dll"}
	default:
		return []string{"libSDL3.so.0", "libSDL3.so"}
	}
}

// Candidates returns the names to try in order: the explicit path if any,
// then $SDL3_LIBRARY_PATH, then names resolved next to the executable, then
// the bare names for the system loader.
func Candidates(path string, names []string) []string {
	var out []string
	if path != "" {
		out = append(out, path)
	}
	if env := os.Getenv(EnvLibraryPath); env != "" {
		out = append(out, env)
	}
	if len(names) == 0 {
		names = DefaultNames()
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		for _, n := range names {
			p := filepath.Join(dir, n)
			if _, err := os.Stat(p); err == nil {
				out = append(out, p)
			}
		}
	}
	return append(out, names...)
}
