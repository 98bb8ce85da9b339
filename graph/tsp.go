package graph

import (
	"encoding/binary"

	"github.com/dstruct/corekit"
	"github.com/dstruct/corekit/hashtable"
	"github.com/dstruct/corekit/heap"
)

// dpEntry is one TSP-DP table row: the minimum cost of a path from start
// to last that visits exactly the vertices in set (sorted ascending,
// always including last and start).
type dpEntry[V heap.Index, W any] struct {
	last V
	set  []V
	cost W
}

// encodeSubsetKey builds the byte-block key for a (last vertex, visited
// set) pair: last, then rest in the order given, each as a big-endian
// uint64. At a given DP level every key has the same length, so
// comparing exactly k+1 entries never needs an in-band terminator. The
// raw bytes are wrapped in a corekit.Key and reduced to the string form
// the hash table actually keys on via AsComparable, the same byte-block
// key machinery corekit.FromString/FromInt64 build on.
func encodeSubsetKey[V heap.Index](last V, rest []V) string {
	buf := make([]byte, 8*(1+len(rest)))
	binary.BigEndian.PutUint64(buf[0:8], uint64(last))
	for i, v := range rest {
		binary.BigEndian.PutUint64(buf[8*(i+1):8*(i+2)], uint64(v))
	}
	return corekit.FromBytes(buf).AsComparable()
}

func insertSorted[V heap.Index](set []V, v V) []V {
	out := make([]V, len(set)+1)
	i := 0
	for i < len(set) && set[i] < v {
		out[i] = set[i]
		i++
	}
	out[i] = v
	copy(out[i+1:], set[i:])
	return out
}

func contains[V heap.Index](set []V, v V) bool {
	for _, x := range set {
		if x == v {
			return true
		}
	}
	return false
}

// TSP computes the minimum-weight Hamiltonian tour starting and ending
// at start, over a graph of at most word-width-1 vertices. It builds,
// level by level, a hash table mapping (last
// vertex, visited subset) to the minimum path weight reaching last
// having visited exactly that subset, then closes the tour back to
// start after the final level. The second return value is false if no
// Hamiltonian tour exists (some vertex is unreachable, or start has no
// return edge from the final level).
//
// n == 0 is an undefined-behaviour precondition upstream; TSP panics
// instead of emulating it. n == 1 is not otherwise constrained; the
// natural reading is the empty tour, so TSP returns (zero, true) for it.
func TSP[V heap.Index, W any](al *AdjacencyList[V, W], start V, ops WeightOps[W], zero W) (W, bool) {
	n := al.NumVts()
	if n == 0 {
		panic("corekit/graph: TSP requires at least one vertex")
	}
	if n == 1 {
		return zero, true
	}

	level := hashtable.NewDivision[string, dpEntry[V, W]]()
	level.Insert(encodeSubsetKey(start, nil), dpEntry[V, W]{last: start, set: []V{start}, cost: zero})

	for k := 1; k < n; k++ {
		next := hashtable.NewDivision[string, dpEntry[V, W]]()
		level.ForEach(func(_ string, entry *dpEntry[V, W]) {
			for _, nb := range al.Neighbors(entry.last) {
				v, w := nb.Vertex, nb.Weight
				if contains(entry.set, v) {
					continue
				}
				key := encodeSubsetKey(v, entry.set)
				cost := ops.Add(entry.cost, w)
				if existing, ok := next.Search(key); ok && ops.Cmp(cost, existing.cost) >= 0 {
					continue
				}
				next.Insert(key, dpEntry[V, W]{last: v, set: insertSorted(entry.set, v), cost: cost})
			}
		})
		level.Free()
		level = next
	}

	var best W
	found := false
	level.ForEach(func(_ string, entry *dpEntry[V, W]) {
		for _, nb := range al.Neighbors(entry.last) {
			if nb.Vertex != start {
				continue
			}
			total := ops.Add(entry.cost, nb.Weight)
			if !found || ops.Cmp(total, best) < 0 {
				best = total
				found = true
			}
		}
	})
	level.Free()
	return best, found
}
