package corekit

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Key is the byte-block key representation used when a hash table, list,
// or heap membership map is instantiated over raw binary data rather than
// a native Go comparable type (vertex labels, TSP subset encodings, and
// similar fixed-format identifiers).
//
// Key is not itself `comparable` (it is backed by a slice), so it cannot
// be used directly as the K type parameter of the generic containers in
// hashtable/heap/dlist. Call AsComparable to obtain a `string`; Go's
// string type is comparable and a conversion from []byte to string copies
// the bytes, so the result is safe to use as a map/table key independent
// of later mutation of the originating Key.
type Key []byte

// FromBytes copies b into a new Key. A nil b yields an empty, non-nil Key.
func FromBytes(b []byte) Key {
	if b == nil {
		return []byte{}
	}
	kb := make([]byte, len(b))
	copy(kb, b)
	return Key(kb)
}

// FromString returns a Key holding the UTF-8 encoding of s after
// normalizing it to Unicode NFC, so that two strings differing only in
// composed/decomposed accent form produce the same Key (and therefore the
// same hash and the same position in any table keyed on it).
func FromString(s string) Key {
	return FromBytes([]byte(norm.NFC.String(s)))
}

// fromOffsetUint64 is the encoder behind FromInt64: it writes u+offset
// big-endian so lexicographic Key order matches signed numeric order.
func fromOffsetUint64(u uint64) Key {
	var b [8]byte
	const offset = uint64(1) << 63
	binary.BigEndian.PutUint64(b[:], u+offset)
	return Key(b[:])
}

// FromInt64 converts a signed 64-bit value to an order-preserving 8-byte Key.
func FromInt64(i int64) Key { return fromOffsetUint64(uint64(i)) }

// FromUint64 converts an unsigned 64-bit value to an order-preserving 8-byte Key.
func FromUint64(u uint64) Key {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], u)
	return Key(b[:])
}

// AsComparable returns a string view of k's bytes for use as a generic
// `comparable` key (hashtable.Division[K,...], hashtable.Multiplication[K,...],
// heap.MembershipMap[K] implementations all require K comparable).
func (k Key) AsComparable() string { return string(k) }

// Bytes returns a copy of k's contents.
func (k Key) Bytes() []byte {
	if k == nil {
		return nil
	}
	b := make([]byte, len(k))
	copy(b, k)
	return b
}

// Clone returns an independent copy of k.
func (k Key) Clone() Key {
	if k == nil {
		return nil
	}
	return FromBytes(k)
}

// String renders k as uppercase hex byte pairs, e.g. "[01,AB,00]".
func (k Key) String() string {
	if len(k) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	const hex = "0123456789ABCDEF"
	for i, b := range k {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(hex[b>>4])
		sb.WriteByte(hex[b&0x0F])
	}
	sb.WriteByte(']')
	return sb.String()
}

// Equal reports whether k and other hold identical bytes.
func (k Key) Equal(other Key) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// LessThan reports whether k sorts lexicographically before other.
func (k Key) LessThan(other Key) bool {
	for i := 0; i < len(k) && i < len(other); i++ {
		if k[i] != other[i] {
			return k[i] < other[i]
		}
	}
	return len(k) < len(other)
}

// IsEmpty reports whether k has zero length.
func (k Key) IsEmpty() bool { return len(k) == 0 }
