package graph

import "github.com/dstruct/corekit/heap"

// Dijkstra computes single-source shortest paths under non-negative
// weights. newMembership constructs the
// MembershipMap the driving heap.Heap uses for position tracking; pass
// a constructor around heap.NewDenseMembership, heap.NewDivisionMembership,
// or heap.NewMultiplicationMembership to select the backend; Dijkstra's
// own logic never depends on which.
func Dijkstra[V heap.Index, W any](al *AdjacencyList[V, W], start V, ops WeightOps[W], zero W, newMembership func() heap.MembershipMap[V]) (dist []W, prev []V) {
	n := al.NumVts()
	if n == 0 {
		panic("corekit/graph: Dijkstra requires at least one vertex")
	}
	nr := V(n)
	dist = make([]W, n)
	prev = make([]V, n)
	for i := range prev {
		prev[i] = nr
	}
	dist[int(start)] = zero
	prev[int(start)] = start

	h := heap.New[W, V](ops.Cmp, newMembership())
	h.Push(zero, start)
	for {
		du, u, ok := h.Pop()
		if !ok {
			break
		}
		for _, nb := range al.Neighbors(u) {
			v, w := nb.Vertex, nb.Weight
			sum := ops.Add(du, w)
			switch {
			case prev[int(v)] == nr:
				dist[int(v)] = sum
				prev[int(v)] = u
				h.Push(sum, v)
			case ops.Cmp(sum, dist[int(v)]) < 0:
				dist[int(v)] = sum
				prev[int(v)] = u
				h.Update(sum, v)
			}
		}
	}
	return dist, prev
}
