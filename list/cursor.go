package list

// Cursor is a traversal handle bound to one list. It starts positioned
// before the first element; Next steps forward and Remove unlinks the
// node just ahead of the cursor.
type Cursor[T any, E interface {
	*T
	Node[E]
}, H Handle[E, H]] struct {
	list    *List[T, E, H]
	current Link[E]
}

// Next advances the cursor by one position and returns the node it moved
// to, or nil once it moves past the end. Moving past the end resets the
// cursor before the first element.
func (c *Cursor[T, E, H]) Next() E {
	var zero E
	if current, ok := c.current.Take().Resolve(); ok {
		if next, ok := current.Next().Resolve(); ok {
			c.current = Some(next)
			return next
		}
		return zero
	}
	if head, ok := c.list.head.Resolve(); ok {
		c.current = Some(head)
		return head
	}
	return zero
}

// PeekNext returns the node Next would move to, without moving the
// cursor: the list front when the cursor is before the first element,
// otherwise the current node's next neighbor. Returns nil past the end.
func (c *Cursor[T, E, H]) PeekNext() E {
	if current, ok := c.current.Resolve(); ok {
		e, _ := current.Next().Resolve()
		return e
	}
	return c.list.Front()
}

// Remove unlinks the node PeekNext reports and returns ownership of it,
// or reports false if there is none. The cursor itself does not move:
// after a removal the next successor is the node that was two ahead.
func (c *Cursor[T, E, H]) Remove() (H, bool) {
	current, ok := c.current.Resolve()
	if !ok {
		return c.list.PopFront()
	}

	var h H
	victim, ok := current.Next().Take().Resolve()
	if !ok {
		return h, false
	}
	if next, ok := victim.Next().Take().Resolve(); ok {
		*next.Prev() = Some(current)
		*current.Next() = Some(next)
	} else {
		c.list.tail = Some(current)
	}
	*victim.Prev() = None[E]()
	c.list.len--
	return h.FromRaw(victim), true
}

// FindAndRemove scans forward from the cursor's position and removes the
// first node satisfying pred, returning ownership of it. The predicate
// is evaluated at most once per resident node, in list order. It reports
// false if no node matches.
func (c *Cursor[T, E, H]) FindAndRemove(pred func(E) bool) (H, bool) {
	var zero E
	for next := c.PeekNext(); next != zero; next = c.PeekNext() {
		if pred(next) {
			return c.Remove()
		}
		c.Next()
	}
	var h H
	return h, false
}
