// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build darwin || freebsd || linux

package loader

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func openLibrary(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func lookupSymbol(handle uintptr, symbol string) (uintptr, error) {
	return purego.Dlsym(handle, symbol)
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
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
