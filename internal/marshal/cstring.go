// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package marshal

import (
	"unicode/utf8"
	"unsafe"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// CBytes returns s as a NUL-terminated UTF-8 buffer.
// Ill-formed UTF-8 is replaced with U+FFFD so the native side never sees
// invalid sequences. The native side stops reading at the first NUL, so a
// string with embedded NULs is truncated there.
func CBytes(s string) []byte {
	if !utf8.ValidString(s) {
		s, _, _ = transform.String(runes.ReplaceIllFormed(), s)
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// CString returns a pointer to a NUL-terminated copy of s.
// The result is never nil: the empty string becomes a pointer to a single NUL.
func CString(s string) *byte {
	return &CBytes(s)[0]
}

// OptionalCString is like CString but returns nil when s is nil.
func OptionalCString(s *string) *byte {
	if s == nil {
		return nil
	}
	return CString(*s)
}

// GoString decodes the NUL-terminated string at p.
// ok is false when p is nil. Bytes that are not valid UTF-8 decode to U+FFFD.
// The result is a copy and stays valid after the native side frees p.
func GoString(p *byte) (s string, ok bool) {
	if p == nil {
		return "", false
	}
	b := unsafe.Slice(p, strlen(p))
	if utf8.Valid(b) {
		return string(b), true
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return string(b), true
	}
	return string(out), true
}

// strlen counts bytes up to, not including, the NUL terminator.
func strlen(p *byte) int {
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return n
}
