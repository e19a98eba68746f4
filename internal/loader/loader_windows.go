// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build windows

package loader

import (
	"fmt"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

func openLibrary(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func lookupSymbol(handle uintptr, symbol string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), symbol)
}

func closeLibrary(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}

// register wraps purego.RegisterFunc, which panics on signatures it cannot
// express on the current platform.
func register(fptr any, addr uintptr, symbol string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrBadSignature, symbol, r)
		}
	}()
	purego.RegisterFunc(fptr, addr)
	return nil
}
