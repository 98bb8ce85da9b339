package graph

import "github.com/dstruct/corekit/heap"

// Prim computes a minimum spanning tree of start's connected component.
// It shares Dijkstra's skeleton, except that
// the candidate priority for relaxing neighbour (v, w) is the edge
// weight w itself rather than an accumulated path sum, and neighbours
// already popped into the tree are never relaxed again. Vertices outside
// start's component keep prev[v] == NR.
func Prim[V heap.Index, W any](al *AdjacencyList[V, W], start V, ops WeightOps[W], zero W, newMembership func() heap.MembershipMap[V]) (dist []W, prev []V) {
	n := al.NumVts()
	if n == 0 {
		panic("corekit/graph: Prim requires at least one vertex")
	}
	nr := V(n)
	dist = make([]W, n)
	prev = make([]V, n)
	for i := range prev {
		prev[i] = nr
	}
	dist[int(start)] = zero
	prev[int(start)] = start

	inTree := make([]bool, n)
	h := heap.New[W, V](ops.Cmp, newMembership())
	h.Push(zero, start)
	for {
		_, u, ok := h.Pop()
		if !ok {
			break
		}
		inTree[int(u)] = true
		for _, nb := range al.Neighbors(u) {
			v, w := nb.Vertex, nb.Weight
			if inTree[int(v)] {
				continue
			}
			switch {
			case prev[int(v)] == nr:
				dist[int(v)] = w
				prev[int(v)] = u
				h.Push(w, v)
			case ops.Cmp(w, dist[int(v)]) < 0:
				dist[int(v)] = w
				prev[int(v)] = u
				h.Update(w, v)
			}
		}
	}
	return dist, prev
}
