package sdl

import (
	"fmt"
	"hash/maphash"
	"slices"
)

// handleSeed makes Hash stable for the life of the process.
var handleSeed = maphash.MakeSeed()

// handle is an opaque native address owned by SDL.
//
// Handles compare by address: two handles are equal exactly when they refer
// to the same native object, regardless of where the Go values live. The
// zero handle is the "no resource" sentinel SDL itself uses.
type handle struct {
	addr uintptr
}

// IsNil reports whether the handle refers to no native object.
func (h handle) IsNil() bool {
	return h.addr == 0
}

// Hash returns a hash derived only from the native address.
// Equal handles always hash equally.
func (h handle) Hash() uint64 {
	return maphash.Comparable(handleSeed, h.addr)
}

func (h handle) format(kind string) string {
	if h.addr == 0 {
		return kind + "(nil)"
	}
	return fmt.Sprintf("%s(%#x)", kind, h.addr)
}

// Destroyer is a native resource released by an explicit call.
// Window, Renderer and Texture implement it.
type Destroyer interface {
	Destroy()
	IsNil() bool
}

// Scope releases resources in reverse acquisition order.
//
// A Scope makes teardown symmetric with creation:
//
//	var scope sdl.Scope
//	defer scope.Close()
//
//	win, err := sdl.CreateWindow("demo", 800, 600, 0)
//	if err != nil {
//	    return err
//	}
//	scope.Add(win)
//
//	r, err := sdl.CreateRenderer(win)
//	if err != nil {
//	    return err
//	}
//	scope.Add(r) // destroyed before win
//
// Each resource is destroyed at most once. Scope is not safe for concurrent
// use, matching SDL's own threading rules.
type Scope struct {
	items  []Destroyer
	closed bool
}

// Add registers d for destruction on Close. Nil handles are ignored.
// Adding to a closed Scope destroys d immediately.
func (s *Scope) Add(d Destroyer) {
	if d == nil || d.IsNil() {
		return
	}
	if s.closed {
		d.Destroy()
		return
	}
	s.items = append(s.items, d)
}

// Release removes d from the Scope without destroying it and reports
// whether it was registered. Use it when ownership moves elsewhere or the
// resource was destroyed explicitly.
func (s *Scope) Release(d Destroyer) bool {
	i := slices.Index(s.items, d)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// Len returns the number of resources awaiting destruction.
func (s *Scope) Len() int {
	return len(s.items)
}

// Close destroys every registered resource, last added first.
// Close is idempotent.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.items) - 1; i >= 0; i-- {
		s.items[i].Destroy()
		s.items[i] = nil
	}
	s.items = nil
}
