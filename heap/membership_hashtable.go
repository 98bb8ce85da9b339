package heap

import "github.com/dstruct/corekit/hashtable"

// DivisionMembership adapts a hashtable.Division into a MembershipMap,
// so a Heap can track element positions in a chained hash table instead
// of a dense array.
type DivisionMembership[E comparable] struct {
	table *hashtable.Division[E, int]
}

// NewDivisionMembership constructs a DivisionMembership; opts are
// forwarded to hashtable.NewDivision (reducer, comparator, load factor).
func NewDivisionMembership[E comparable](opts ...hashtable.DivisionOption[E, int]) *DivisionMembership[E] {
	return &DivisionMembership[E]{table: hashtable.NewDivision[E, int](opts...)}
}

func (m *DivisionMembership[E]) Insert(elt E, pos int)     { m.table.Insert(elt, pos) }
func (m *DivisionMembership[E]) Search(elt E) (*int, bool) { return m.table.Search(elt) }
func (m *DivisionMembership[E]) Remove(elt E) (int, bool)  { return m.table.Remove(elt) }
func (m *DivisionMembership[E]) Free()                     { m.table.Free() }
func (m *DivisionMembership[E]) Align(alignment int)       { m.table.AlignElt(alignment) }

// MultiplicationMembership adapts a hashtable.Multiplication into a
// MembershipMap, giving a Heap an open-addressing membership backend.
type MultiplicationMembership[E comparable] struct {
	table *hashtable.Multiplication[E, int]
}

// NewMultiplicationMembership constructs a MultiplicationMembership;
// opts are forwarded to hashtable.NewMultiplication.
func NewMultiplicationMembership[E comparable](opts ...hashtable.MultiplicationOption[E, int]) *MultiplicationMembership[E] {
	return &MultiplicationMembership[E]{table: hashtable.NewMultiplication[E, int](opts...)}
}

func (m *MultiplicationMembership[E]) Insert(elt E, pos int)     { m.table.Insert(elt, pos) }
func (m *MultiplicationMembership[E]) Search(elt E) (*int, bool) { return m.table.Search(elt) }
func (m *MultiplicationMembership[E]) Remove(elt E) (int, bool)  { return m.table.Remove(elt) }
func (m *MultiplicationMembership[E]) Free()                     { m.table.Free() }
func (m *MultiplicationMembership[E]) Align(alignment int)       { m.table.AlignElt(alignment) }
