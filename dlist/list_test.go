package dlist

import "testing"

func TestAppendNewPreservesOrderBothDirections(t *testing.T) {
	var head *Node[int, string]
	values := []string{"a", "b", "c", "d", "e"}
	for i, v := range values {
		head = AppendNew(head, i, v)
	}

	// clockwise traversal yields values in insertion order
	n := head
	for i := 0; i < len(values); i++ {
		if *n.Elt() != values[i] {
			t.Fatalf("clockwise[%d]: want %q, got %q", i, values[i], *n.Elt())
		}
		n = n.Next()
	}
	if n != head {
		t.Fatalf("expected to return to head after %d steps", len(values))
	}

	// counter-clockwise traversal yields values reversed
	n = head.Prev()
	for i := len(values) - 1; i >= 0; i-- {
		if *n.Elt() != values[i] {
			t.Fatalf("ccw[%d]: want %q, got %q", i, values[i], *n.Elt())
		}
		n = n.Prev()
	}
}

func TestPrependNewBecomesHead(t *testing.T) {
	head := AppendNew[int, string](nil, 1, "one")
	head = PrependNew(head, 0, "zero")
	if *head.Elt() != "zero" {
		t.Fatalf("expected prepended node to be new head, got %q", *head.Elt())
	}
	if *head.Next().Elt() != "one" {
		t.Fatalf("expected original node to follow new head")
	}
}

func TestSearchKeyFindsAndRestoresInvariant(t *testing.T) {
	var head *Node[int, string]
	for i := 0; i < 5; i++ {
		head = AppendNew(head, i, string(rune('a'+i)))
	}
	found := SearchKey(head, 3, nil)
	if found == nil || *found.Elt() != "d" {
		t.Fatalf("expected to find key 3 with elt d")
	}
	// the circular invariant must be fully restored after search
	if head.Prev().Next() != head {
		t.Fatalf("head.prev.next != head after SearchKey")
	}
	if SearchKey(head, 99, nil) != nil {
		t.Fatalf("expected nil for missing key")
	}
}

func TestSearchUniqueMatchesSearchKey(t *testing.T) {
	var head *Node[int, string]
	for i := 0; i < 5; i++ {
		head = AppendNew(head, i, string(rune('a'+i)))
	}
	for i := 0; i < 5; i++ {
		a := SearchKey(head, i, nil)
		b := SearchUnique(head, i, nil)
		if a != b {
			t.Fatalf("SearchKey and SearchUnique disagree for key %d", i)
		}
	}
	if SearchUnique(head, 99, nil) != nil {
		t.Fatalf("expected nil for missing key")
	}
}

func TestRemoveAndDelete(t *testing.T) {
	var head *Node[int, string]
	for i := 0; i < 4; i++ {
		head = AppendNew(head, i, string(rune('a'+i)))
	}
	mid := SearchKey(head, 1, nil)
	head = Remove(head, mid)
	if Len(head) != 3 {
		t.Fatalf("expected len 3 after remove, got %d", Len(head))
	}
	if SearchKey(head, 1, nil) != nil {
		t.Fatalf("removed key should no longer be found")
	}

	freedKeys, freedElts := 0, 0
	last := SearchKey(head, 0, nil)
	head = Delete(head, last, func(*int) { freedKeys++ }, func(*string) { freedElts++ })
	if freedKeys != 1 || freedElts != 1 {
		t.Fatalf("expected exactly one key/elt destructor call each")
	}
	if Len(head) != 2 {
		t.Fatalf("expected len 2 after delete, got %d", Len(head))
	}
}

func TestRemoveLastNodeYieldsNilHead(t *testing.T) {
	head := New[int, string](1, "only")
	head = Remove(head, head)
	if head != nil {
		t.Fatalf("expected nil head after removing the only node")
	}
}

func TestAlignEltIsNoop(t *testing.T) {
	head := PrependNew[int, string](nil, 1, "a")
	AlignElt(head, 64)
	if head.Key() == nil || *head.Key() != 1 || *head.Elt() != "a" {
		t.Fatalf("AlignElt must not disturb the list")
	}
}

func TestFreeInvokesDestructorsOnEveryNode(t *testing.T) {
	var head *Node[int, string]
	for i := 0; i < 5; i++ {
		head = AppendNew(head, i, string(rune('a'+i)))
	}
	count := 0
	Free(head, nil, func(*string) { count++ })
	if count != 5 {
		t.Fatalf("expected 5 destructor calls, got %d", count)
	}
}
