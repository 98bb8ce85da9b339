// Package heap implements the generic min-heap and its pluggable
// membership map abstraction: the same heap works unmodified whether
// positions are tracked in a dense array, a division-chained hash table,
// or a multiplication-open-addressing hash table.
package heap

// MembershipMap is the abstract element->array-position map a Heap
// consults on every push/pop/update. Search's returned pointer is valid
// only until the next mutating call on the map.
type MembershipMap[E comparable] interface {
	Insert(elt E, pos int)
	Search(elt E) (*int, bool)
	Remove(elt E) (int, bool)
	Free()
	Align(alignment int)
}

// Index is the set of integer types DenseMembership may be keyed on: a
// dense-array backend only makes sense when the element itself is
// directly usable as a slice index (a vertex ID).
type Index interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// DenseMembership is the default MembershipMap: a num_vts-length buffer
// indexed directly by vertex value, with -1 marking a vertex as absent.
type DenseMembership[E Index] struct {
	pos []int
}

// NewDenseMembership allocates a membership map over numVts elements,
// all initially absent.
func NewDenseMembership[E Index](numVts int) *DenseMembership[E] {
	pos := make([]int, numVts)
	for i := range pos {
		pos[i] = -1
	}
	return &DenseMembership[E]{pos: pos}
}

// Insert records elt's position, upserting any prior value.
func (d *DenseMembership[E]) Insert(elt E, pos int) { d.pos[int(elt)] = pos }

// Search returns a pointer to elt's recorded position, or (nil, false)
// if elt is marked absent.
func (d *DenseMembership[E]) Search(elt E) (*int, bool) {
	p := &d.pos[int(elt)]
	if *p < 0 {
		return nil, false
	}
	return p, true
}

// Remove returns elt's recorded position and marks it absent.
func (d *DenseMembership[E]) Remove(elt E) (int, bool) {
	i := int(elt)
	if d.pos[i] < 0 {
		return 0, false
	}
	p := d.pos[i]
	d.pos[i] = -1
	return p, true
}

// Free releases the backing buffer.
func (d *DenseMembership[E]) Free() { d.pos = nil }

// Align is a documented no-op retained for API compatibility with the
// MembershipMap plug-in ABI's alignment hook; a dense []int buffer has
// no element-block layout to realign. alignment is unused.
func (d *DenseMembership[E]) Align(alignment int) {}
