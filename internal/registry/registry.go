// Package registry implements the shared-state exercise: a single process-wide
// mutable cell that every handle sees by reference. The original attached the
// cell to a class; here sharing is explicit — callers acquire a handle, and the
// handle is what they pass around.
package registry

import "sync"

// cell is the shared backing store. One per process.
type cell struct {
	mu    sync.Mutex
	value int
}

var shared cell

// Handle gives access to the process-wide shared cell. All handles alias the
// same cell: a Set through any handle is observed by every other handle,
// including ones acquired earlier.
type Handle struct {
	c *cell
}

// Acquire returns a handle to the shared cell without touching its value.
func Acquire() Handle {
	return Handle{c: &shared}
}

// AcquireWith returns a handle and overwrites the shared value, mirroring the
// original's construct-with-argument form.
func AcquireWith(value int) Handle {
	h := Acquire()
	h.Set(value)
	return h
}

// Set overwrites the shared value.
func (h Handle) Set(value int) {
	h.c.mu.Lock()
	defer h.c.mu.Unlock()
	h.c.value = value
}

// Value reads the shared value.
func (h Handle) Value() int {
	h.c.mu.Lock()
	defer h.c.mu.Unlock()
	return h.c.value
}

// Reset restores the zero value. Useful between demo runs and tests; the
// original had no teardown, so nothing in the exercises depends on it.
func Reset() {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	shared.value = 0
}
