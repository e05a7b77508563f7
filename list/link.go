package list

// Link is a nullable, non-owning reference to a node of type E.
//
// Links are how nodes address their neighbors and how a list addresses its
// head and tail. A link never owns the node it points to: ownership of
// resident nodes belongs to the containing list and moves in and out of it
// only through the Handle contract. All pointer rewiring in this package
// goes through Link operations.
//
// The zero value is the absent link.
type Link[E comparable] struct {
	e E
}

// None returns an absent link.
func None[E comparable]() Link[E] {
	return Link[E]{}
}

// Some returns a link pointing at e.
// Some of a nil node is the absent link.
func Some[E comparable](e E) Link[E] {
	return Link[E]{e: e}
}

// IsNone reports whether the link is absent.
func (l Link[E]) IsNone() bool {
	var zero E
	return l.e == zero
}

// Resolve returns the node the link points at,
// or ok=false if the link is absent.
func (l Link[E]) Resolve() (e E, ok bool) {
	var zero E
	if l.e == zero {
		return zero, false
	}
	return l.e, true
}

// Take returns the link's current state and resets the link to absent.
// Rewiring through taken links cannot reach one node through two live
// paths at once.
func (l *Link[E]) Take() Link[E] {
	taken := *l
	*l = Link[E]{}
	return taken
}
