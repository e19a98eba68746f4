// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !darwin && !freebsd && !linux && !windows

package loader

func openLibrary(string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func lookupSymbol(uintptr, string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func closeLibrary(uintptr) error {
	return nil
}

func register(any, uintptr, string) error {
	return ErrUnsupportedPlatform
}
