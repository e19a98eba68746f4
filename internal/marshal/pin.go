// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package marshal

import (
	"runtime"
	"sync/atomic"
)

// active counts Pinners that currently hold pinned memory.
var active atomic.Int64

// Active reports how many Pinners still hold pinned memory.
// Tests use it to check that every native call released its buffers.
func Active() int64 {
	return active.Load()
}

// Pinner keeps Go memory in place while a native call reads it.
//
// Use one Pinner per call and release it with defer:
//
//	var p marshal.Pinner
//	defer p.Unpin()
//	data.title = p.CString(title)
//
// The zero value is ready to use. A Pinner must not be copied after first use.
type Pinner struct {
	pinner runtime.Pinner
	held   bool
}

// Pin pins the object ptr points to. ptr must be a pointer.
func (p *Pinner) Pin(ptr any) {
	p.pinner.Pin(ptr)
	if !p.held {
		p.held = true
		active.Add(1)
	}
}

// Bytes pins b and returns a pointer to its first element.
// An empty or nil slice yields nil, which the native side reads as NULL.
func (p *Pinner) Bytes(b []byte) *byte {
	if len(b) == 0 {
		return nil
	}
	p.Pin(&b[0])
	return &b[0]
}

// CString returns a pinned NUL-terminated copy of s.
func (p *Pinner) CString(s string) *byte {
	b := CBytes(s)
	p.Pin(&b[0])
	return &b[0]
}

// Unpin releases everything pinned so far. It is safe to call more than once.
func (p *Pinner) Unpin() {
	p.pinner.Unpin()
	if p.held {
		p.held = false
		active.Add(-1)
	}
}
