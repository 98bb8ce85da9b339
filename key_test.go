package corekit

import "testing"

func TestFromStringNormalizesToNFC(t *testing.T) {
	composed := FromString("é")   // e + combining acute accent
	precomposed := FromString("é") // é, already composed
	if !composed.Equal(precomposed) {
		t.Fatalf("expected NFC-normalized forms to produce equal keys, got %s vs %s", composed, precomposed)
	}
}

func TestFromInt64PreservesOrdering(t *testing.T) {
	vals := []int64{-100, -1, 0, 1, 100}
	for i := 0; i < len(vals)-1; i++ {
		a, b := FromInt64(vals[i]), FromInt64(vals[i+1])
		if !a.LessThan(b) {
			t.Fatalf("expected FromInt64(%d) < FromInt64(%d)", vals[i], vals[i+1])
		}
	}
}

func TestFromUint64PreservesOrdering(t *testing.T) {
	vals := []uint64{0, 1, 1000, 1 << 40}
	for i := 0; i < len(vals)-1; i++ {
		a, b := FromUint64(vals[i]), FromUint64(vals[i+1])
		if !a.LessThan(b) {
			t.Fatalf("expected FromUint64(%d) < FromUint64(%d)", vals[i], vals[i+1])
		}
	}
}

func TestAsComparableRoundTripsThroughMapKey(t *testing.T) {
	m := map[string]int{}
	m[FromBytes([]byte("hello")).AsComparable()] = 1
	if got := m[FromBytes([]byte("hello")).AsComparable()]; got != 1 {
		t.Fatalf("expected independently-constructed equal Keys to collide in a map, got %d", got)
	}
}

func TestCloneIsIndependentOfSource(t *testing.T) {
	orig := FromBytes([]byte{1, 2, 3})
	clone := orig.Clone()
	orig[0] = 99
	if clone[0] != 1 {
		t.Fatalf("expected clone to be unaffected by mutation of the source, got %d", clone[0])
	}
}

func TestIsEmpty(t *testing.T) {
	if !FromBytes(nil).IsEmpty() {
		t.Fatalf("expected FromBytes(nil) to be empty")
	}
	if FromBytes([]byte{0}).IsEmpty() {
		t.Fatalf("expected a single zero byte to not be empty")
	}
}

func TestStringFormatsAsHexPairs(t *testing.T) {
	k := FromBytes([]byte{0x01, 0xAB, 0x00})
	if got, want := k.String(), "[01,AB,00]"; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
