package main

import (
	"fmt"

	"github.com/mgnsk/intrusive/arena"
	"github.com/mgnsk/intrusive/list"
)

// region is a span of free memory. Its link fields live inside the
// record itself, so tracking the region on a free list costs nothing.
type region struct {
	next, prev list.Link[*region]
	addr       uintptr
	size       uintptr
}

func (r *region) Next() *list.Link[*region] { return &r.next }
func (r *region) Prev() *list.Link[*region] { return &r.prev }

func main() {
	slab := arena.New[region](8)

	var free list.List[region, *region, list.Unique[*region]]

	// Seed the free list with four regions of increasing size.
	for i := uintptr(0); i < 4; i++ {
		r, ok := slab.Alloc()
		if !ok {
			panic("slab exhausted")
		}
		r.addr = i * 0x10000
		r.size = 0x1000 << i
		free.PushBack(list.NewUnique(r))
	}

	// First fit: splice out the first region large enough, in one pass.
	cur := free.Cursor()
	h, ok := cur.FindAndRemove(func(r *region) bool {
		return r.size >= 0x4000
	})
	if !ok {
		panic("no region large enough")
	}

	r := h.Release()
	fmt.Printf("allocated %#x bytes at %#x, %d regions remain\n", r.size, r.addr, free.Len())

	slab.Free(r)
}
