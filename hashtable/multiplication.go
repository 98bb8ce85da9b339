package hashtable

// wordBits is the machine word width the multiplier table's hash
// constants are sized for, and the basis of the table's hard capacity
// 2^(wordBits-1).
const wordBits = 64

// maxLogSize is the largest L such that Multiplication will grow to
// 2^L slots.
const maxLogSize = wordBits - 1

type slotState uint8

const (
	slotEmpty slotState = iota
	slotLive
	slotTomb
)

type mSlot[K comparable, E any] struct {
	state  slotState
	key    K
	h1, h2 uint64
	elt    E
}

// Multiplication is the multiplication-open-addressing hash table:
// a power-of-two slot array probed via Knuth multiplicative double
// hashing, with three-state slots (empty/live/tombstone) so deletion
// never breaks a probe chain.
type Multiplication[K comparable, E any] struct {
	slots          []mSlot[K, E]
	logSize        uint
	numElts        int
	numPlaceholders int
	maxNumProbes   int
	alpha          float64
	reduce         Reducer[K]
	equal          EqualFunc[K]
	destroy        func(*E)
	p1, p2         uint64
}

// MultiplicationOption configures a Multiplication table at construction time.
type MultiplicationOption[K comparable, E any] func(*Multiplication[K, E])

// WithMultiplicationReducer injects the key->word reduction used as the
// multiplicand for both hash constants. Defaults to a maphash-backed
// generic reducer.
func WithMultiplicationReducer[K comparable, E any](r Reducer[K]) MultiplicationOption[K, E] {
	return func(m *Multiplication[K, E]) { m.reduce = r }
}

// WithMultiplicationEqual injects the key-equality comparator. Defaults to ==.
func WithMultiplicationEqual[K comparable, E any](eq EqualFunc[K]) MultiplicationOption[K, E] {
	return func(m *Multiplication[K, E]) { m.equal = eq }
}

// WithMultiplicationDestructor injects the element destructor invoked
// when a live element is replaced or removed.
func WithMultiplicationDestructor[K comparable, E any](destroy func(*E)) MultiplicationOption[K, E] {
	return func(m *Multiplication[K, E]) { m.destroy = destroy }
}

// WithMultiplicationLoadFactor overrides the default load-factor bound
// alpha (strictly less than one) on (num_elts+num_placeholders)/count,
// enforced before each insert until the table reaches its 2^(wordBits-1)
// ceiling; past that point the load may exceed alpha.
func WithMultiplicationLoadFactor[K comparable, E any](alpha float64) MultiplicationOption[K, E] {
	return func(m *Multiplication[K, E]) { m.alpha = alpha }
}

// WithMultiplicationInitialLogSize sets the initial slot count to 2^l.
func WithMultiplicationInitialLogSize[K comparable, E any](l uint) MultiplicationOption[K, E] {
	return func(m *Multiplication[K, E]) { m.logSize = l }
}

// NewMultiplication constructs an empty Multiplication table.
func NewMultiplication[K comparable, E any](opts ...MultiplicationOption[K, E]) *Multiplication[K, E] {
	m := &Multiplication[K, E]{
		logSize: 4,
		alpha:   0.9,
		p1:      multiplierPairs[0],
		p2:      multiplierPairs[1],
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.alpha >= 1.0 {
		m.alpha = 0.9
	}
	m.reduce = reducerOrDefault(m.reduce)
	m.equal = equalOrDefault(m.equal)
	m.slots = make([]mSlot[K, E], 1<<m.logSize)
	return m
}

// AlignElt is a documented no-op retained for API compatibility with the
// element-block alignment knob a hand-offset slot layout would need;
// Go's allocator already aligns every stored E. alignment is unused.
func (m *Multiplication[K, E]) AlignElt(alignment int) {}

// Count reports the current slot count (2^logSize).
func (m *Multiplication[K, E]) Count() uint64 { return uint64(len(m.slots)) }

// NumElts reports the number of live keys.
func (m *Multiplication[K, E]) NumElts() int { return m.numElts }

// NumPlaceholders reports the number of tombstone slots.
func (m *Multiplication[K, E]) NumPlaceholders() int { return m.numPlaceholders }

// MaxNumProbes reports the longest successful-insert probe distance ever
// observed against the table's current layout; Search never visits more
// slots than this.
func (m *Multiplication[K, E]) MaxNumProbes() int { return m.maxNumProbes }

func (m *Multiplication[K, E]) hashes(key K) (h1, h2 uint64) {
	w := m.reduce(key)
	return m.p1 * w, m.p2 * w
}

func hiBits(x uint64, l uint) uint64 {
	if l == 0 {
		return 0
	}
	return x >> (wordBits - l)
}

func makeOdd(x uint64) uint64 { return x | 1 }

func (m *Multiplication[K, E]) initialIndex(h1 uint64) uint64 { return hiBits(h1, m.logSize) }
func (m *Multiplication[K, E]) stepOf(h2 uint64) uint64       { return makeOdd(hiBits(h2, m.logSize)) }

// Insert upserts key->elt. An equal-key hit replaces the element (via the
// injected destructor, if any); otherwise a new live slot is claimed,
// reusing the first tombstone encountered along the probe sequence when
// one exists, ahead of an eventual empty slot.
func (m *Multiplication[K, E]) Insert(key K, elt E) {
	m.maybeGrowOrClean()
	h1, h2 := m.hashes(key)
	m.insertWithHashes(key, elt, h1, h2)
}

func (m *Multiplication[K, E]) insertWithHashes(key K, elt E, h1, h2 uint64) {
	count := uint64(len(m.slots))
	ix := m.initialIndex(h1)
	step := m.stepOf(h2)
	firstTomb := -1
	for probes := 1; uint64(probes) <= count; probes++ {
		s := &m.slots[ix]
		switch s.state {
		case slotEmpty:
			target := ix
			if firstTomb >= 0 {
				target = uint64(firstTomb)
				m.numPlaceholders--
			}
			m.slots[target] = mSlot[K, E]{state: slotLive, key: key, h1: h1, h2: h2, elt: elt}
			m.numElts++
			if probes > m.maxNumProbes {
				m.maxNumProbes = probes
			}
			return
		case slotLive:
			if m.equal(s.key, key) {
				if m.destroy != nil {
					m.destroy(&s.elt)
				}
				s.elt = elt
				if probes > m.maxNumProbes {
					m.maxNumProbes = probes
				}
				return
			}
		case slotTomb:
			if firstTomb < 0 {
				firstTomb = int(ix)
			}
		}
		ix = (ix + step) % count
	}
	panic("corekit/hashtable: Multiplication probe sequence exhausted without an empty slot")
}

// Search returns a pointer to the element stored under key, or (nil,
// false) if key is absent. The pointer is valid until the next mutating
// call on this table. Search visits at most MaxNumProbes slots.
func (m *Multiplication[K, E]) Search(key K) (*E, bool) {
	if len(m.slots) == 0 {
		return nil, false
	}
	h1, h2 := m.hashes(key)
	count := uint64(len(m.slots))
	ix := m.initialIndex(h1)
	step := m.stepOf(h2)
	for p := 0; p < m.maxNumProbes; p++ {
		s := &m.slots[ix]
		switch s.state {
		case slotEmpty:
			return nil, false
		case slotLive:
			if m.equal(s.key, key) {
				return &s.elt, true
			}
		}
		ix = (ix + step) % count
	}
	return nil, false
}

// Remove converts key's slot to a tombstone and returns its element and
// true, or a zero value and false if key was absent.
func (m *Multiplication[K, E]) Remove(key K) (E, bool) {
	var zero E
	if len(m.slots) == 0 {
		return zero, false
	}
	h1, h2 := m.hashes(key)
	count := uint64(len(m.slots))
	ix := m.initialIndex(h1)
	step := m.stepOf(h2)
	for p := 0; p < m.maxNumProbes; p++ {
		s := &m.slots[ix]
		switch s.state {
		case slotEmpty:
			return zero, false
		case slotLive:
			if m.equal(s.key, key) {
				elt := s.elt
				s.state = slotTomb
				s.elt = zero
				m.numElts--
				m.numPlaceholders++
				return elt, true
			}
		}
		ix = (ix + step) % count
	}
	return zero, false
}

// Delete removes key, invoking the injected destructor (if any) on its
// element, and reports whether key was present.
func (m *Multiplication[K, E]) Delete(key K) bool {
	elt, ok := m.Remove(key)
	if ok && m.destroy != nil {
		m.destroy(&elt)
	}
	return ok
}

// Free invokes the destructor (if any) on every live element and resets
// the table to empty at its current size.
func (m *Multiplication[K, E]) Free() {
	if m.destroy != nil {
		for i := range m.slots {
			if m.slots[i].state == slotLive {
				m.destroy(&m.slots[i].elt)
			}
		}
	}
	for i := range m.slots {
		m.slots[i] = mSlot[K, E]{}
	}
	m.numElts, m.numPlaceholders, m.maxNumProbes = 0, 0, 0
}

// maybeGrowOrClean applies the table's growth/clean rule, evaluated
// before each insert: clean (rebuild at the same size, dropping
// tombstones) when tombstones outnumber live entries, grow (double) when
// growth headroom remains, or give up enforcing alpha once the table has
// reached its 2^(wordBits-1) ceiling.
func (m *Multiplication[K, E]) maybeGrowOrClean() {
	for float64(m.numElts+m.numPlaceholders)/float64(len(m.slots)) > m.alpha {
		if m.numElts < m.numPlaceholders {
			m.rebuild(m.logSize)
		} else if m.logSize < maxLogSize {
			m.rebuild(m.logSize + 1)
		} else {
			return
		}
	}
}

// rebuild reconstructs the table at 2^newLogSize slots, reinserting every
// live entry using its cached h1/h2 so the multiplier is never re-run,
// and dropping every tombstone.
func (m *Multiplication[K, E]) rebuild(newLogSize uint) {
	old := m.slots
	m.slots = make([]mSlot[K, E], 1<<newLogSize)
	m.logSize = newLogSize
	m.numElts, m.numPlaceholders, m.maxNumProbes = 0, 0, 0
	for _, s := range old {
		if s.state == slotLive {
			m.insertWithHashes(s.key, s.elt, s.h1, s.h2)
		}
	}
}
