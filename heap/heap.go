package heap

import "github.com/dstruct/corekit/buffer"

// CompareFunc orders priorities: negative if a < b, zero if equal,
// positive if a > b.
type CompareFunc[P any] func(a, b P) int

type pair[P any, E comparable] struct {
	pty P
	elt E
}

// Heap is a binary min-heap over (priority, element) pairs with an
// associated MembershipMap tracking each live element's array position.
// Scheduling is strictly sequential; Heap is not safe for concurrent use.
type Heap[P any, E comparable] struct {
	pairs   *buffer.Stack[pair[P, E]]
	members MembershipMap[E]
	cmp     CompareFunc[P]
}

// New constructs an empty heap ordered by cmp and backed by members for
// position tracking. members may be a *DenseMembership, a
// *DivisionMembership, or a *MultiplicationMembership; the heap's logic
// never inspects which.
func New[P any, E comparable](cmp CompareFunc[P], members MembershipMap[E]) *Heap[P, E] {
	return &Heap[P, E]{
		pairs:   buffer.NewStack[pair[P, E]](16, nil),
		members: members,
		cmp:     cmp,
	}
}

// Len reports the number of live elements.
func (h *Heap[P, E]) Len() int { return h.pairs.Len() }

// Push inserts (pty, elt), records its position in the membership map,
// and restores the min-heap property by sifting up.
func (h *Heap[P, E]) Push(pty P, elt E) {
	h.pairs.Push(pair[P, E]{pty: pty, elt: elt})
	pos := h.pairs.Len() - 1
	h.members.Insert(elt, pos)
	h.siftUp(pos)
}

// Pop removes and returns the minimum-priority pair. The second return
// value is false if the heap was empty.
func (h *Heap[P, E]) Pop() (P, E, bool) {
	var zeroP P
	var zeroE E
	n := h.pairs.Len()
	if n == 0 {
		return zeroP, zeroE, false
	}
	root := h.pairs.At(0)
	h.members.Remove(root.elt)
	last := h.pairs.Pop()
	if h.pairs.Len() > 0 {
		h.pairs.Set(0, last)
		h.members.Insert(last.elt, 0)
		h.siftDown(0)
	}
	return root.pty, root.elt, true
}

// Update changes elt's priority to pty, looking up its current array
// position via the membership map and sifting in whichever direction
// the new priority requires. Update is a no-op if elt is not currently
// in the heap.
func (h *Heap[P, E]) Update(pty P, elt E) {
	posPtr, ok := h.members.Search(elt)
	if !ok {
		return
	}
	pos := *posPtr
	old := h.pairs.At(pos)
	h.pairs.Set(pos, pair[P, E]{pty: pty, elt: elt})
	if h.cmp(pty, old.pty) < 0 {
		h.siftUp(pos)
	} else {
		h.siftDown(pos)
	}
}

// Free releases the heap's backing storage and its membership map.
func (h *Heap[P, E]) Free() {
	h.pairs.Free()
	h.members.Free()
}

// Align forwards to the membership map's alignment hook. Every built-in
// MembershipMap implements it as a no-op; the hook exists only so a
// future Go-allocator-bypassing backend has somewhere to plug in.
func (h *Heap[P, E]) Align(alignment int) {
	h.members.Align(alignment)
}

func (h *Heap[P, E]) swap(i, j int) {
	pi, pj := h.pairs.At(i), h.pairs.At(j)
	h.pairs.Set(i, pj)
	h.pairs.Set(j, pi)
	h.members.Insert(pj.elt, i)
	h.members.Insert(pi.elt, j)
}

func (h *Heap[P, E]) siftUp(pos int) {
	for pos > 0 {
		parent := (pos - 1) / 2
		if h.cmp(h.pairs.At(pos).pty, h.pairs.At(parent).pty) >= 0 {
			return
		}
		h.swap(pos, parent)
		pos = parent
	}
}

func (h *Heap[P, E]) siftDown(pos int) {
	n := h.pairs.Len()
	for {
		left, right := 2*pos+1, 2*pos+2
		smallest := pos
		if left < n && h.cmp(h.pairs.At(left).pty, h.pairs.At(smallest).pty) < 0 {
			smallest = left
		}
		if right < n && h.cmp(h.pairs.At(right).pty, h.pairs.At(smallest).pty) < 0 {
			smallest = right
		}
		if smallest == pos {
			return
		}
		h.swap(pos, smallest)
		pos = smallest
	}
}
