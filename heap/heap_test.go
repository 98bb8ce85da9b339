package heap

import (
	"math/rand"
	"testing"
)

func intCmp(a, b int) int { return a - b }

func TestHeapPopYieldsNonDecreasingPriorities(t *testing.T) {
	h := New[int, int](intCmp, NewDenseMembership[int](1000))
	vals := rand.New(rand.NewSource(1)).Perm(500)
	for _, v := range vals {
		h.Push(v, v)
	}
	prev := -1
	for h.Len() > 0 {
		pty, elt, ok := h.Pop()
		if !ok {
			t.Fatalf("unexpected empty pop")
		}
		if pty != elt {
			t.Fatalf("priority %d should equal element %d in this test", pty, elt)
		}
		if pty < prev {
			t.Fatalf("pop order violated min-heap property: %d after %d", pty, prev)
		}
		prev = pty
	}
}

func TestHeapUpdateDecreaseAndIncrease(t *testing.T) {
	h := New[int, int](intCmp, NewDenseMembership[int](10))
	for i := 0; i < 10; i++ {
		h.Push(10-i, i)
	}
	h.Update(-5, 3) // vertex 3 had priority 7; drop it to the new minimum
	pty, elt, _ := h.Pop()
	if elt != 3 || pty != -5 {
		t.Fatalf("expected decreased element 3 at priority -5 first, got elt=%d pty=%d", elt, pty)
	}

	h2 := New[int, int](intCmp, NewDenseMembership[int](10))
	for i := 0; i < 10; i++ {
		h2.Push(i, i)
	}
	h2.Update(99, 0) // vertex 0 had the minimum priority; push it to the back
	pty2, elt2, _ := h2.Pop()
	if elt2 == 0 {
		t.Fatalf("expected element 0 to no longer be the minimum after increase")
	}
	if pty2 != 1 {
		t.Fatalf("expected new minimum priority 1, got %d", pty2)
	}
}

func TestHeapUpdateOnAbsentElementIsNoop(t *testing.T) {
	h := New[int, int](intCmp, NewDenseMembership[int](10))
	h.Push(1, 1)
	h.Update(-100, 5) // element 5 was never pushed
	if h.Len() != 1 {
		t.Fatalf("expected heap unaffected, len=%d", h.Len())
	}
}

func TestHeapAlignIsNoop(t *testing.T) {
	h := New[int, int](intCmp, NewDenseMembership[int](10))
	h.Push(1, 1)
	h.Align(64)
	pty, elt, ok := h.Pop()
	if !ok || pty != 1 || elt != 1 {
		t.Fatalf("Align must not disturb the heap, got pty=%d elt=%d ok=%v", pty, elt, ok)
	}
}

func TestHeapWithDivisionMembership(t *testing.T) {
	h := New[int, string](intCmp, NewDivisionMembership[string]())
	h.Push(3, "c")
	h.Push(1, "a")
	h.Push(2, "b")
	pty, elt, _ := h.Pop()
	if pty != 1 || elt != "a" {
		t.Fatalf("expected (1, a) first, got (%d, %s)", pty, elt)
	}
}

func TestHeapWithMultiplicationMembership(t *testing.T) {
	h := New[int, string](intCmp, NewMultiplicationMembership[string]())
	h.Push(3, "c")
	h.Push(1, "a")
	h.Push(2, "b")
	pty, elt, _ := h.Pop()
	if pty != 1 || elt != "a" {
		t.Fatalf("expected (1, a) first, got (%d, %s)", pty, elt)
	}
}
