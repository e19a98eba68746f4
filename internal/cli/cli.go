// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cli holds setup shared by the sdl commands.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is a terminal, including Cygwin and MSYS
// pseudo terminals.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewLogger returns a logger writing to w. Terminals get the text format,
// anything else gets JSON lines.
func NewLogger(w io.Writer, tty, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if tty {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// StderrLogger is NewLogger for os.Stderr.
func StderrLogger(verbose bool) *slog.Logger {
	return NewLogger(os.Stderr, IsTerminal(os.Stderr), verbose)
}
