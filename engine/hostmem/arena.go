// Package hostmem hands out byte buffers a host can write into directly,
// e.g. a string placed in wasm linear memory before a boundary call.
package hostmem

import (
	"sync"
	"unsafe"
)

// Arena keeps allocated buffers reachable until they are freed, so the
// garbage collector does not reclaim memory the host still points at.
type Arena struct {
	mu   sync.Mutex
	bufs map[uintptr][]byte
}

// NewArena creates an empty arena
func NewArena() *Arena {
	return &Arena{bufs: make(map[uintptr][]byte)}
}

// Alloc returns a zeroed buffer of size bytes, or nil for size <= 0
func (a *Arena) Alloc(size int) unsafe.Pointer {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size)
	p := unsafe.Pointer(unsafe.SliceData(buf))

	a.mu.Lock()
	a.bufs[uintptr(p)] = buf
	a.mu.Unlock()
	return p
}

// Free releases a buffer returned by Alloc. Unknown pointers are ignored
// and reported as false.
func (a *Arena) Free(p unsafe.Pointer) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.bufs[uintptr(p)]; !ok {
		return false
	}
	delete(a.bufs, uintptr(p))
	return true
}

// Len returns the number of live buffers
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.bufs)
}
