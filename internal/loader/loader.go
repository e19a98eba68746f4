// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package loader opens the SDL3 shared library and binds its symbols to Go
// function variables without cgo.
//
// On Unix-like systems the library is opened with purego's dlopen. On
// Windows it is opened with LoadLibrary from golang.org/x/sys/windows.
// Either way, symbols are bound with purego.RegisterFunc.
package loader

import (
	"errors"
	"fmt"
	"strings"
)

// Loader errors.
var (
	// ErrNotFound is returned when none of the candidate names could be opened.
	ErrNotFound = errors.New("loader: library not found")

	// ErrSymbolNotFound is returned when a symbol is missing from the library.
	ErrSymbolNotFound = errors.New("loader: symbol not found")

	// ErrBadSignature is returned when purego cannot bind a Go function
	// type on this platform (for example, a struct return value).
	ErrBadSignature = errors.New("loader: unsupported function signature")

	// ErrUnsupportedPlatform is returned on platforms without a dynamic loader.
	ErrUnsupportedPlatform = errors.New("loader: unsupported platform")
)

// Library is an open shared library.
type Library struct {
	name   string
	handle uintptr
}

// Open tries each name in order and returns the first library that opens.
// The returned error lists every attempt when all of them fail.
func Open(names []string) (*Library, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no candidate names", ErrNotFound)
	}
	var errs []string
	for _, name := range names {
		h, err := openLibrary(name)
		if err == nil {
			return &Library{name: name, handle: h}, nil
		}
		if errors.Is(err, ErrUnsupportedPlatform) {
			return nil, err
		}
		errs = append(errs, fmt.Sprintf("%s: %v", name, err))
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, strings.Join(errs, "; "))
}

// Name returns the name the library was opened with.
func (l *Library) Name() string {
	return l.name
}

// Lookup returns the address of symbol.
func (l *Library) Lookup(symbol string) (uintptr, error) {
	addr, err := lookupSymbol(l.handle, symbol)
	if err != nil || addr == 0 {
		return 0, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}
	return addr, nil
}

// Bind resolves symbol and stores a Go function calling it in *fptr.
// fptr must be a pointer to a variable of function type.
func (l *Library) Bind(fptr any, symbol string) error {
	addr, err := l.Lookup(symbol)
	if err != nil {
		return err
	}
	return register(fptr, addr, symbol)
}

// Close releases the library. Bound functions must not be called afterwards.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := closeLibrary(l.handle)
	l.handle = 0
	return err
}
