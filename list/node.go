package list

// Node is the contract a type must satisfy to be stored in a List: it
// exposes its own previous and next links for the list to rewire. The
// element is the list node; no separate wrapper is allocated per element.
type Node[E comparable] interface {
	// Next returns the node's next link.
	Next() *Link[E]

	// Prev returns the node's previous link.
	Prev() *Link[E]
}

// Handle is the ownership contract for values stored in a List.
//
// A handle owns its node while the node is outside a list. Pushing
// transfers ownership into the list's pointer graph via Release; popping
// reconstructs a handle from the raw node via FromRaw. FromRaw is invoked
// on the zero H and must not depend on receiver state.
//
// A handle must not be used after it has been pushed or Released, and no
// handle to a resident node may be retained. Violations are not detected
// at runtime.
type Handle[E comparable, H any] interface {
	// FromRaw reclaims ownership of the node e.
	FromRaw(e E) H

	// Release relinquishes ownership of the node without destroying it
	// and returns it.
	Release() E

	// Get borrows the underlying node.
	Get() E
}
