// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package marshal

import "unsafe"

// CopySlice copies n elements starting at p into a fresh Go slice.
// It returns nil when p is nil or n is not positive. The native memory can be
// released as soon as CopySlice returns.
func CopySlice[T any](p *T, n int) []T {
	if p == nil || n <= 0 {
		return nil
	}
	return append([]T(nil), unsafe.Slice(p, n)...)
}

// Copy16 returns a fresh copy of a 16-byte field.
// Later writes to *p are not observed by the returned value.
func Copy16(p *[16]byte) []byte {
	if p == nil {
		return nil
	}
	out := make([]byte, len(p))
	copy(out, p[:])
	return out
}
