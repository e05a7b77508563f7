// Package arena implements a fixed-capacity slab allocator with stable
// addresses, suitable as the backing store for intrusive list nodes in
// code that must not allocate after startup.
package arena

import "unsafe"

// Arena is a slab of T slots. All storage is allocated once by New;
// Alloc and Free only move slots between the used state and a free-slot
// chain threaded through the vacant slots themselves. Pointers returned
// by Alloc stay valid until the slot is freed.
type Arena[T any] struct {
	slots []slot[T]
	free  int
	used  int
}

type slot[T any] struct {
	// value must stay the first field: Free recovers the slot index
	// from the value's address.
	value  T
	next   int
	vacant bool
}

// New creates an arena with room for capacity values.
// It panics if capacity is not positive.
func New[T any](capacity int) *Arena[T] {
	if capacity <= 0 {
		panic("arena: capacity must be positive")
	}
	a := &Arena[T]{
		slots: make([]slot[T], capacity),
	}
	for i := range a.slots {
		a.slots[i].next = i + 1
		a.slots[i].vacant = true
	}
	a.slots[capacity-1].next = -1
	return a
}

// Len returns the number of values currently allocated.
func (a *Arena[T]) Len() int {
	return a.used
}

// Cap returns the total number of slots.
func (a *Arena[T]) Cap() int {
	return len(a.slots)
}

// Alloc claims a vacant slot and returns a pointer to its zeroed value.
// It reports false when the arena is exhausted.
func (a *Arena[T]) Alloc() (*T, bool) {
	if a.free < 0 {
		return nil, false
	}
	s := &a.slots[a.free]
	a.free = s.next
	s.vacant = false
	var zero T
	s.value = zero
	a.used++
	return &s.value, true
}

// Free returns the slot holding the value at p to the free chain.
// It panics if p does not address a slot of this arena or if the slot is
// already vacant.
func (a *Arena[T]) Free(p *T) {
	i := a.indexOf(p)
	s := &a.slots[i]
	if s.vacant {
		panic("arena: double free")
	}
	s.vacant = true
	s.next = a.free
	a.free = i
	a.used--
}

// indexOf recovers the slot index from a value address. This is the only
// pointer arithmetic in the package; a foreign or misaligned address is
// a fatal caller error.
func (a *Arena[T]) indexOf(p *T) int {
	size := unsafe.Sizeof(a.slots[0])
	base := uintptr(unsafe.Pointer(&a.slots[0]))
	off := uintptr(unsafe.Pointer(p)) - base
	if off >= uintptr(len(a.slots))*size {
		panic("arena: foreign pointer")
	}
	if off%size != 0 {
		panic("arena: misaligned pointer")
	}
	return int(off / size)
}
