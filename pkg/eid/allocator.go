package eid

// ID identifies one live element instance.
type ID uint64

// Root is the reserved root identity. It is always alive and is never
// returned by Allocate.
const Root ID = 0

// Allocator hands out unique element IDs with free-list slot reuse.
//
// The zero Allocator is not ready for use; call New. An Allocator is
// single-owner: callers needing cross-goroutine access must serialize
// it externally.
type Allocator struct {
	next ID
	live map[ID]struct{}
	free []ID // freed ids eligible for reuse, reused LIFO
}

// New returns an empty allocator. Only the root identity is alive:
// Count() is 1 and UserCount() is 0.
func New() *Allocator {
	return &Allocator{
		next: 1,
		live: make(map[ID]struct{}),
	}
}

// Allocate returns an identifier that is not currently alive. Freed
// identifiers are reused (most recently freed first) before the
// monotonic counter is advanced. Allocate never fails.
func (a *Allocator) Allocate() ID {
	var id ID
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		id = a.next
		a.next++
	}
	a.live[id] = struct{}{}
	return id
}

// Free releases id for reuse. Freeing the root or an identifier that
// is not currently alive is a no-op, so double frees are safe.
func (a *Allocator) Free(id ID) {
	if id == Root {
		return
	}
	if _, ok := a.live[id]; !ok {
		return
	}
	delete(a.live, id)
	a.free = append(a.free, id)
}

// IsAlive reports whether id is currently allocated. The root identity
// is always alive.
func (a *Allocator) IsAlive(id ID) bool {
	if id == Root {
		return true
	}
	_, ok := a.live[id]
	return ok
}

// Count returns the number of alive identifiers including the root.
func (a *Allocator) Count() uint {
	return 1 + uint(len(a.live))
}

// UserCount returns the number of alive identifiers excluding the root.
func (a *Allocator) UserCount() uint {
	return uint(len(a.live))
}

// Reset drops all bookkeeping. Outstanding identifiers become
// meaningless; the allocator is ready for reuse as if freshly created.
func (a *Allocator) Reset() {
	a.next = 1
	a.live = make(map[ID]struct{})
	a.free = nil
}
