package hashtable

import "testing"

func TestDivisionRoundTrip(t *testing.T) {
	d := NewDivision[int, string]()
	for i := 0; i < 500; i++ {
		d.Insert(i, string(rune('a'+i%26)))
	}
	if d.NumElts() != 500 {
		t.Fatalf("expected 500 elements, got %d", d.NumElts())
	}
	for i := 0; i < 500; i++ {
		v, ok := d.Search(i)
		if !ok || *v != string(rune('a'+i%26)) {
			t.Fatalf("key %d: expected hit with %q, got ok=%v v=%v", i, string(rune('a'+i%26)), ok, v)
		}
	}
}

func TestDivisionReplacementDoesNotChangeCount(t *testing.T) {
	d := NewDivision[string, int]()
	d.Insert("k", 1)
	d.Insert("k", 2)
	if d.NumElts() != 1 {
		t.Fatalf("expected 1 element after replacement, got %d", d.NumElts())
	}
	v, ok := d.Search("k")
	if !ok || *v != 2 {
		t.Fatalf("expected replaced value 2, got ok=%v v=%v", ok, v)
	}
}

func TestDivisionReplacementInvokesDestructorOnOldValue(t *testing.T) {
	destroyed := []int{}
	d := NewDivision[string, int](WithDivisionDestructor[string, int](func(e *int) { destroyed = append(destroyed, *e) }))
	d.Insert("k", 1)
	d.Insert("k", 2)
	if len(destroyed) != 1 || destroyed[0] != 1 {
		t.Fatalf("expected destructor called once with old value 1, got %v", destroyed)
	}
}

func TestDivisionRemoveAndDelete(t *testing.T) {
	d := NewDivision[int, int]()
	for i := 0; i < 10; i++ {
		d.Insert(i, i*i)
	}
	v, ok := d.Remove(3)
	if !ok || v != 9 {
		t.Fatalf("expected remove(3) = 9, got ok=%v v=%v", ok, v)
	}
	if _, ok := d.Search(3); ok {
		t.Fatalf("expected key 3 gone after remove")
	}
	if d.NumElts() != 9 {
		t.Fatalf("expected 9 elements after remove, got %d", d.NumElts())
	}
	if !d.Delete(4) {
		t.Fatalf("expected delete(4) to report present")
	}
	if _, ok := d.Search(4); ok {
		t.Fatalf("expected key 4 gone after delete")
	}
	if d.NumElts() != 8 {
		t.Fatalf("expected 8 elements after delete, got %d", d.NumElts())
	}
}

func TestDivisionForEachVisitsEveryLiveEntryExactlyOnce(t *testing.T) {
	d := NewDivision[int, int]()
	for i := 0; i < 200; i++ {
		d.Insert(i, i*2)
	}
	d.Remove(5)
	seen := map[int]int{}
	d.ForEach(func(key int, elt *int) { seen[key] = *elt })
	if len(seen) != 199 {
		t.Fatalf("expected 199 entries visited, got %d", len(seen))
	}
	if _, ok := seen[5]; ok {
		t.Fatalf("expected removed key 5 to be absent from ForEach")
	}
	for k, v := range seen {
		if v != k*2 {
			t.Fatalf("key %d: got value %d, want %d", k, v, k*2)
		}
	}
}

func TestDivisionAlignEltIsNoop(t *testing.T) {
	d := NewDivision[string, int]()
	d.Insert("k", 1)
	d.AlignElt(64)
	v, ok := d.Search("k")
	if !ok || *v != 1 {
		t.Fatalf("AlignElt must not disturb table contents, got ok=%v v=%v", ok, v)
	}
}

func TestDivisionGrowsAcrossPrimeSteps(t *testing.T) {
	d := NewDivision[int, int](WithDivisionLoadFactor[int, int](0.75))
	start := d.Count()
	for i := 0; i < 5000; i++ {
		d.Insert(i, i)
	}
	if d.Count() <= start {
		t.Fatalf("expected table to have grown past initial count %d, still %d", start, d.Count())
	}
	for _, p := range divisionPrimes {
		if d.Count() == p {
			return
		}
	}
	t.Fatalf("grown count %d is not a built-in prime", d.Count())
}
