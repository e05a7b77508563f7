package list

// Boxed is a heap-owning handle for hosted use: the node's storage is an
// ordinary allocation and the runtime reclaims it once no handle or list
// refers to it.
type Boxed[E comparable] struct {
	e E
}

// Box wraps an owned node in a Boxed handle.
func Box[E comparable](e E) Boxed[E] {
	return Boxed[E]{e: e}
}

// FromRaw reclaims ownership of the node e.
func (Boxed[E]) FromRaw(e E) Boxed[E] {
	return Boxed[E]{e: e}
}

// Release relinquishes ownership and returns the node.
func (b Boxed[E]) Release() E {
	return b.e
}

// Get borrows the underlying node.
func (b Boxed[E]) Get() E {
	return b.e
}

// Unique is an always-valid owning pointer handle, for nodes whose
// storage is managed out of band, typically in an arena slab.
type Unique[E comparable] struct {
	e E
}

// NewUnique wraps an owned node in a Unique handle.
// It panics if e is nil.
func NewUnique[E comparable](e E) Unique[E] {
	var zero E
	if e == zero {
		panic("list: nil node")
	}
	return Unique[E]{e: e}
}

// FromRaw reclaims ownership of the node e.
// It panics if e is nil.
func (Unique[E]) FromRaw(e E) Unique[E] {
	return NewUnique(e)
}

// Release relinquishes ownership and returns the node.
func (u Unique[E]) Release() E {
	return u.e
}

// Get borrows the underlying node.
func (u Unique[E]) Get() E {
	return u.e
}
