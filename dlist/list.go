// Package dlist implements a generic circular doubly linked list whose
// nodes carry a key and an element. The list has no "head" node of its
// own: a list is identified by a pointer to any one of its nodes, and
// every operation takes that pointer explicitly and returns the
// (possibly updated) head to use for subsequent calls. An empty list is
// represented by a nil head.
//
// Each Node is a single Go allocation holding both the key and the
// element inline; this gives the same pointer-stability guarantee the
// C original achieves via fixed-offset carving of one malloc'd block
// (key_block/node_links/elt_block) without needing manual offset
// arithmetic, because Go's allocator already places struct fields
// contiguously in one object. See DESIGN.md for the full rationale.
package dlist

// Node is one element of the list. Key and Elt return pointers into this
// same allocation, valid for the node's entire lifetime.
type Node[K comparable, E any] struct {
	key  K
	elt  E
	next *Node[K, E]
	prev *Node[K, E]
}

// Key returns a pointer to the node's key block.
func (n *Node[K, E]) Key() *K { return &n.key }

// Elt returns a pointer to the node's element block.
func (n *Node[K, E]) Elt() *E { return &n.elt }

// Next returns the node clockwise of n.
func (n *Node[K, E]) Next() *Node[K, E] { return n.next }

// Prev returns the node counter-clockwise of n.
func (n *Node[K, E]) Prev() *Node[K, E] { return n.prev }

// EqualFunc reports whether a and b denote the same key. A nil EqualFunc
// passed to the search functions below falls back to Go's == on K.
type EqualFunc[K comparable] func(a, b K) bool

func equalOrDefault[K comparable](eq EqualFunc[K]) EqualFunc[K] {
	if eq != nil {
		return eq
	}
	return func(a, b K) bool { return a == b }
}

// New allocates a fresh, unlinked single-node list holding key/elt and
// returns it as the new head.
func New[K comparable, E any](key K, elt E) *Node[K, E] {
	n := &Node[K, E]{key: key, elt: elt}
	n.next = n
	n.prev = n
	return n
}

// PrependNew allocates a node for key/elt, links it immediately before
// head (counter-clockwise), and returns the new node as the new head. A
// nil head yields a fresh single-node circular list.
func PrependNew[K comparable, E any](head *Node[K, E], key K, elt E) *Node[K, E] {
	n := &Node[K, E]{key: key, elt: elt}
	if head == nil {
		n.next, n.prev = n, n
		return n
	}
	linkBefore(head, n)
	return n
}

// AppendNew allocates a node for key/elt, links it immediately before
// head (i.e. at the end of the clockwise traversal order that starts at
// head), and returns head unchanged. A nil head yields a fresh
// single-node circular list, which becomes the returned head.
func AppendNew[K comparable, E any](head *Node[K, E], key K, elt E) *Node[K, E] {
	n := &Node[K, E]{key: key, elt: elt}
	if head == nil {
		n.next, n.prev = n, n
		return n
	}
	linkBefore(head, n)
	return head
}

// Prepend links the already-allocated, unlinked node n immediately
// before head and returns n as the new head.
func Prepend[K comparable, E any](head *Node[K, E], n *Node[K, E]) *Node[K, E] {
	if head == nil {
		n.next, n.prev = n, n
		return n
	}
	linkBefore(head, n)
	return n
}

// Append links the already-allocated, unlinked node n immediately before
// head and returns head unchanged (nil head: n becomes the head).
func Append[K comparable, E any](head *Node[K, E], n *Node[K, E]) *Node[K, E] {
	if head == nil {
		n.next, n.prev = n, n
		return n
	}
	linkBefore(head, n)
	return head
}

// linkBefore splices the unlinked node n into the circle immediately
// before at.
func linkBefore[K comparable, E any](at *Node[K, E], n *Node[K, E]) {
	tail := at.prev
	n.prev = tail
	n.next = at
	tail.next = n
	at.prev = n
}

// SearchKey returns the first node clockwise from head (inclusive) whose
// key equals key under eq (nil eq uses ==), or nil if the full circle is
// walked without a match.
//
// This mutates the list transiently: it nils head.prev.next as an
// end-of-traversal marker so the walk can stop without comparing against
// an already-visited pointer, then restores the link before returning.
// Because of this transient mutation, SearchKey must not be called
// concurrently with any other operation on the same list, including
// another SearchKey. Use SearchUnique for that.
func SearchKey[K comparable, E any](head *Node[K, E], key K, eq EqualFunc[K]) *Node[K, E] {
	if head == nil {
		return nil
	}
	equal := equalOrDefault(eq)
	tail := head.prev
	marker := tail.next
	tail.next = nil
	defer func() { tail.next = marker }()

	for n := head; n != nil; n = n.next {
		if equal(n.key, key) {
			return n
		}
	}
	return nil
}

// SearchUnique is functionally identical to SearchKey but performs no
// mutation, at the cost of an extra per-step comparison against head to
// detect having completed the circle. Because it never mutates the
// list, multiple goroutines may call SearchUnique concurrently against
// the same list as long as no writer is active concurrently.
func SearchUnique[K comparable, E any](head *Node[K, E], key K, eq EqualFunc[K]) *Node[K, E] {
	if head == nil {
		return nil
	}
	equal := equalOrDefault(eq)
	n := head
	for {
		if equal(n.key, key) {
			return n
		}
		n = n.next
		if n == head {
			return nil
		}
	}
}

// Remove unlinks n from the circle and returns the new head to use
// (nil if n was the last remaining node, head unchanged if n != head, or
// n.next if n == head). It does not invoke any destructor.
func Remove[K comparable, E any](head *Node[K, E], n *Node[K, E]) *Node[K, E] {
	if n.next == n {
		return nil
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	newHead := head
	if head == n {
		newHead = n.next
	}
	n.next, n.prev = nil, nil
	return newHead
}

// Delete removes n from the circle (as Remove) and, if freeKey/freeElt
// are non-nil, invokes them on n's key/elt blocks before n becomes
// eligible for garbage collection.
func Delete[K comparable, E any](head *Node[K, E], n *Node[K, E], freeKey func(*K), freeElt func(*E)) *Node[K, E] {
	newHead := Remove(head, n)
	if freeKey != nil {
		freeKey(&n.key)
	}
	if freeElt != nil {
		freeElt(&n.elt)
	}
	return newHead
}

// Free deletes every node reachable from head, invoking freeKey/freeElt
// (if non-nil) on each.
func Free[K comparable, E any](head *Node[K, E], freeKey func(*K), freeElt func(*E)) {
	if head == nil {
		return
	}
	n := head
	for {
		next := n.next
		if freeKey != nil {
			freeKey(&n.key)
		}
		if freeElt != nil {
			freeElt(&n.elt)
		}
		n.next, n.prev = nil, nil
		if next == head {
			return
		}
		n = next
	}
}

// AlignElt is a documented no-op retained for API compatibility with the
// element-block alignment knob a manually-laid-out node would need: Go's
// allocator already aligns every Node[K, E] field for E, so there is no
// offset left to adjust. alignment is unused.
func AlignElt[K comparable, E any](head *Node[K, E], alignment int) {}

// Len walks the full circle starting at head and counts its nodes.
func Len[K comparable, E any](head *Node[K, E]) int {
	if head == nil {
		return 0
	}
	n := 1
	for cur := head.next; cur != head; cur = cur.next {
		n++
	}
	return n
}
