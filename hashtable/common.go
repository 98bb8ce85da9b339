// Package hashtable implements the two hash-table families described by
// the core's abstract model: Division, a prime-modulus table with
// chaining, and Multiplication, a power-of-two table with
// multiplicative double hashing and tombstones. Both share the Reducer /
// EqualFunc / destructor vocabulary defined here.
package hashtable

import "github.com/dolthub/maphash"

// Reducer maps an arbitrary comparable key to a single hashed word. Both
// table families call this exactly once per key per probe/chain lookup
// (Multiplication caches the two resulting words alongside the key so
// growth and cleaning never re-run it).
type Reducer[K comparable] func(key K) uint64

// EqualFunc reports whether a and b denote the same key. A table built
// without an EqualFunc option (or with a nil one) falls back to Go's ==
// on K.
type EqualFunc[K comparable] func(a, b K) bool

func equalOrDefault[K comparable](eq EqualFunc[K]) EqualFunc[K] {
	if eq != nil {
		return eq
	}
	return func(a, b K) bool { return a == b }
}

// defaultReducer returns a Reducer backed by a seeded, allocation-free
// generic hash of K (github.com/dolthub/maphash). Since K here is an
// arbitrary Go comparable type rather than a raw byte block, there is no
// "interpret the key as a word" fast path to fall back to, so every
// table defaults to this reducer unless the caller injects their own.
func defaultReducer[K comparable]() Reducer[K] {
	h := maphash.NewHasher[K]()
	return func(key K) uint64 { return h.Hash(key) }
}

func reducerOrDefault[K comparable](r Reducer[K]) Reducer[K] {
	if r != nil {
		return r
	}
	return defaultReducer[K]()
}
