package arena_test

import (
	"testing"
	"unsafe"

	"github.com/mgnsk/intrusive/arena"
	. "github.com/mgnsk/intrusive/internal/testing"
)

type payload struct {
	a, b uint64
}

func TestAllocUntilExhausted(t *testing.T) {
	a := arena.New[payload](3)

	seen := map[*payload]bool{}
	for i := 0; i < 3; i++ {
		p, ok := a.Alloc()
		AssertTrue(t, ok)
		AssertTrue(t, !seen[p])
		seen[p] = true
	}

	AssertEqual(t, a.Len(), 3)
	AssertEqual(t, a.Cap(), 3)

	_, ok := a.Alloc()
	AssertTrue(t, !ok)
}

func TestFreeMakesRoom(t *testing.T) {
	a := arena.New[payload](1)

	p, ok := a.Alloc()
	AssertTrue(t, ok)
	p.a = 42

	a.Free(p)
	AssertEqual(t, a.Len(), 0)

	q, ok := a.Alloc()
	AssertTrue(t, ok)
	AssertTrue(t, p == q)

	// Reused slots come back zeroed.
	AssertEqual(t, q.a, 0)
}

func TestFreeOrderIsReused(t *testing.T) {
	a := arena.New[payload](4)

	var ptrs []*payload
	for i := 0; i < 4; i++ {
		p, ok := a.Alloc()
		AssertTrue(t, ok)
		ptrs = append(ptrs, p)
	}

	a.Free(ptrs[1])
	a.Free(ptrs[2])
	AssertEqual(t, a.Len(), 2)

	// Most recently freed slot is handed out first.
	p, ok := a.Alloc()
	AssertTrue(t, ok)
	AssertTrue(t, p == ptrs[2])

	p, ok = a.Alloc()
	AssertTrue(t, ok)
	AssertTrue(t, p == ptrs[1])
}

func TestInvalidCapacity(t *testing.T) {
	AssertPanics(t, func() {
		arena.New[payload](0)
	})
}

func TestForeignPointer(t *testing.T) {
	a := arena.New[payload](1)

	AssertPanics(t, func() {
		a.Free(&payload{})
	})
}

func TestMisalignedPointer(t *testing.T) {
	a := arena.New[payload](2)

	p, ok := a.Alloc()
	AssertTrue(t, ok)

	inner := (*payload)(unsafe.Pointer(&p.b))
	AssertPanics(t, func() {
		a.Free(inner)
	})
}

func TestDoubleFree(t *testing.T) {
	a := arena.New[payload](1)

	p, ok := a.Alloc()
	AssertTrue(t, ok)

	a.Free(p)
	AssertPanics(t, func() {
		a.Free(p)
	})
}
