package hashtable

import "github.com/dstruct/corekit/dlist"

// Division is the division-chained hash table: a prime-modulus
// bucket array with a dlist chain per bucket. Slot count only ever grows
// (stepping through divisionPrimes); it never shrinks.
type Division[K comparable, E any] struct {
	buckets  []*dlist.Node[K, E]
	count    uint64
	numElts  uint64
	alpha    float64
	reduce   Reducer[K]
	equal    EqualFunc[K]
	destroy  func(*E)
}

// DivisionOption configures a Division table at construction time.
type DivisionOption[K comparable, E any] func(*Division[K, E])

// WithDivisionReducer injects the key->word reduction used to compute a
// bucket index. Defaults to a maphash-backed generic reducer.
func WithDivisionReducer[K comparable, E any](r Reducer[K]) DivisionOption[K, E] {
	return func(d *Division[K, E]) { d.reduce = r }
}

// WithDivisionEqual injects the key-equality comparator. Defaults to ==.
func WithDivisionEqual[K comparable, E any](eq EqualFunc[K]) DivisionOption[K, E] {
	return func(d *Division[K, E]) { d.equal = eq }
}

// WithDivisionDestructor injects the element destructor invoked when a
// live element is replaced or removed.
func WithDivisionDestructor[K comparable, E any](destroy func(*E)) DivisionOption[K, E] {
	return func(d *Division[K, E]) { d.destroy = destroy }
}

// WithDivisionLoadFactor overrides the default load-factor bound alpha
// (num_elts/count) above which an insert triggers growth. Unlike an
// open-addressing table, Division imposes no upper bound on alpha other
// than this caller choice, since unbounded chains keep the table
// correct (just slower) past it.
func WithDivisionLoadFactor[K comparable, E any](alpha float64) DivisionOption[K, E] {
	return func(d *Division[K, E]) { d.alpha = alpha }
}

// NewDivision constructs an empty Division table at the smallest
// built-in prime size.
func NewDivision[K comparable, E any](opts ...DivisionOption[K, E]) *Division[K, E] {
	d := &Division[K, E]{
		count: divisionPrimes[0],
		alpha: 1.0,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.reduce = reducerOrDefault(d.reduce)
	d.equal = equalOrDefault(d.equal)
	d.buckets = make([]*dlist.Node[K, E], d.count)
	return d
}

// AlignElt is a documented no-op retained for API compatibility with the
// element-block alignment knob a hand-offset bucket layout would need;
// Go's allocator already aligns every stored E. alignment is unused.
func (d *Division[K, E]) AlignElt(alignment int) {}

// Count reports the current bucket-array size.
func (d *Division[K, E]) Count() uint64 { return d.count }

// NumElts reports the number of live keys.
func (d *Division[K, E]) NumElts() uint64 { return d.numElts }

func (d *Division[K, E]) indexFor(key K, count uint64) uint64 {
	return d.reduce(key) % count
}

// Insert upserts key->elt: if key is already present, its element is
// destroyed (via the injected destructor, if any) and replaced; otherwise
// a new chain node is prepended. Growth is checked after every insert.
func (d *Division[K, E]) Insert(key K, elt E) {
	idx := d.indexFor(key, d.count)
	if existing := dlist.SearchKey(d.buckets[idx], key, dlist.EqualFunc[K](d.equal)); existing != nil {
		if d.destroy != nil {
			d.destroy(existing.Elt())
		}
		*existing.Elt() = elt
		return
	}
	d.buckets[idx] = dlist.PrependNew(d.buckets[idx], key, elt)
	d.numElts++
	d.maybeGrow()
}

// Search returns a pointer to the element stored under key, or (nil,
// false) if key is absent. The pointer is valid until the next mutating
// call on this table.
func (d *Division[K, E]) Search(key K) (*E, bool) {
	idx := d.indexFor(key, d.count)
	n := dlist.SearchKey(d.buckets[idx], key, dlist.EqualFunc[K](d.equal))
	if n == nil {
		return nil, false
	}
	return n.Elt(), true
}

// Remove deletes key and returns its element and true, or a zero value
// and false if key was absent. No destructor is invoked; the caller now
// owns the returned element.
func (d *Division[K, E]) Remove(key K) (E, bool) {
	idx := d.indexFor(key, d.count)
	n := dlist.SearchKey(d.buckets[idx], key, dlist.EqualFunc[K](d.equal))
	if n == nil {
		var zero E
		return zero, false
	}
	elt := *n.Elt()
	d.buckets[idx] = dlist.Remove(d.buckets[idx], n)
	d.numElts--
	return elt, true
}

// Delete removes key, invoking the injected destructor (if any) on its
// element, and reports whether key was present.
func (d *Division[K, E]) Delete(key K) bool {
	idx := d.indexFor(key, d.count)
	n := dlist.SearchKey(d.buckets[idx], key, dlist.EqualFunc[K](d.equal))
	if n == nil {
		return false
	}
	d.buckets[idx] = dlist.Delete(d.buckets[idx], n, nil, d.destroy)
	d.numElts--
	return true
}

// ForEach calls fn once for every live key/element pair, in unspecified
// order. fn may mutate the element through its pointer but must not
// insert or remove keys from d.
func (d *Division[K, E]) ForEach(fn func(key K, elt *E)) {
	for _, head := range d.buckets {
		if head == nil {
			continue
		}
		n := head
		for {
			fn(*n.Key(), n.Elt())
			n = n.Next()
			if n == head {
				break
			}
		}
	}
}

// Free invokes the destructor (if any) on every live element and drops
// every bucket chain.
func (d *Division[K, E]) Free() {
	for i, head := range d.buckets {
		dlist.Free(head, nil, d.destroy)
		d.buckets[i] = nil
	}
	d.numElts = 0
}

// maybeGrow steps count to the next built-in prime and rehashes every
// live key if the load factor exceeds alpha and the table has not yet
// reached the largest built-in prime.
func (d *Division[K, E]) maybeGrow() {
	if float64(d.numElts)/float64(d.count) <= d.alpha {
		return
	}
	newCount := nextPrime(d.count)
	if newCount == d.count {
		return // already at divisionMaxCount
	}
	newBuckets := make([]*dlist.Node[K, E], newCount)
	for _, head := range d.buckets {
		if head == nil {
			continue
		}
		for n, first := head, true; first || n != head; n, first = n.Next(), false {
			idx := d.indexFor(*n.Key(), newCount)
			newBuckets[idx] = dlist.AppendNew(newBuckets[idx], *n.Key(), *n.Elt())
		}
	}
	d.buckets = newBuckets
	d.count = newCount
}
