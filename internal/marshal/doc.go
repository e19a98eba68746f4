// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package marshal moves data across the SDL3 C ABI boundary.
//
// It covers three concerns:
//   - C strings: UTF-8 with a trailing NUL on the way in, decoded up to the
//     terminator on the way out. A nil pointer means "absent" and is kept
//     distinct from the empty string.
//   - Fixed-size copies: data owned by the native side is copied into fresh
//     Go memory before it is handed to callers.
//   - Call-scoped pinning: Go buffers referenced from structs passed to the
//     native side stay pinned until the call returns, on every exit path.
package marshal
