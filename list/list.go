// Package list implements an intrusive doubly linked list.
//
// An intrusive list stores its link fields inside the element type
// itself, so linking and unlinking never allocate. This makes the list
// usable from code that manages its own memory, such as an allocator
// tracking its free blocks, where a per-element wrapper node would
// require the very allocator being implemented.
package list

// List is an intrusive doubly linked list.
//
// The stored type T carries its own link fields and its pointer type E
// satisfies Node. H is the owning-handle type elements are pushed and
// popped as. While a node is resident the list owns it exclusively: the
// only paths to it are links, and ownership returns to the caller only
// through a pop or a cursor removal.
//
// The zero value is a ready to use empty list.
type List[T any, E interface {
	*T
	Node[E]
}, H Handle[E, H]] struct {
	head Link[E]
	tail Link[E]
	len  int
}

// Len returns the number of elements in the list.
func (l *List[T, E, H]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[T, E, H]) IsEmpty() bool {
	return l.head.IsNone()
}

// Front returns the first node of the list or nil.
func (l *List[T, E, H]) Front() E {
	e, _ := l.head.Resolve()
	return e
}

// Back returns the last node of the list or nil.
func (l *List[T, E, H]) Back() E {
	e, _ := l.tail.Resolve()
	return e
}

// PushFront transfers ownership of h's node into the list and links it
// as the new head. h must not be used afterwards.
func (l *List[T, E, H]) PushFront(h H) {
	e := h.Get()
	if head, ok := l.head.Resolve(); ok {
		*e.Next() = Some(head)
		*e.Prev() = None[E]()
		*head.Prev() = Some(e)
	} else {
		*e.Next() = None[E]()
		*e.Prev() = None[E]()
		l.tail = Some(e)
	}
	l.head = Some(e)
	// Ownership moves only after the node is fully wired.
	h.Release()
	l.len++
}

// PushBack transfers ownership of h's node into the list and links it
// as the new tail. h must not be used afterwards.
func (l *List[T, E, H]) PushBack(h H) {
	e := h.Get()
	if tail, ok := l.tail.Resolve(); ok {
		*e.Next() = None[E]()
		*e.Prev() = Some(tail)
		*tail.Next() = Some(e)
	} else {
		*e.Next() = None[E]()
		*e.Prev() = None[E]()
		l.head = Some(e)
	}
	l.tail = Some(e)
	h.Release()
	l.len++
}

// PopFront unlinks the head node and returns ownership of it to the
// caller. It reports false if the list is empty.
func (l *List[T, E, H]) PopFront() (H, bool) {
	var h H
	head, ok := l.head.Take().Resolve()
	if !ok {
		return h, false
	}
	if next, ok := head.Next().Take().Resolve(); ok {
		*next.Prev() = None[E]()
		l.head = Some(next)
	} else {
		l.tail = None[E]()
	}
	l.len--
	return h.FromRaw(head), true
}

// PopBack unlinks the tail node and returns ownership of it to the
// caller. It reports false if the list is empty.
func (l *List[T, E, H]) PopBack() (H, bool) {
	var h H
	tail, ok := l.tail.Take().Resolve()
	if !ok {
		return h, false
	}
	if prev, ok := tail.Prev().Take().Resolve(); ok {
		*prev.Next() = None[E]()
		l.tail = Some(prev)
	} else {
		l.head = None[E]()
	}
	l.len--
	return h.FromRaw(tail), true
}

// Cursor returns a cursor over the list, positioned before the first
// element. The list must not be accessed through any other path while
// the cursor is in use.
func (l *List[T, E, H]) Cursor() Cursor[T, E, H] {
	return Cursor[T, E, H]{list: l}
}
