package graph

import (
	"github.com/dstruct/corekit/buffer"
	"github.com/dstruct/corekit/heap"
)

// BFS computes shortest edge-count distances from start over al.
// dist[v] is the number of edges on the shortest
// path from start to v; prev[v] is v's predecessor on that path. NR
// (== al.NumVts()) marks a vertex as unreached; prev[start] == start.
func BFS[V heap.Index, W any](al *AdjacencyList[V, W], start V) (dist, prev []V) {
	n := al.NumVts()
	if n == 0 {
		panic("corekit/graph: BFS requires at least one vertex")
	}
	nr := V(n)
	dist = make([]V, n)
	prev = make([]V, n)
	for i := range prev {
		prev[i] = nr
	}
	dist[int(start)] = 0
	prev[int(start)] = start

	q := buffer.NewQueue[V](16, nil)
	q.PushBack(start)
	for q.Len() > 0 {
		u := q.PopFront()
		for _, nb := range al.Neighbors(u) {
			v := nb.Vertex
			if prev[int(v)] == nr {
				dist[int(v)] = dist[int(u)] + 1
				prev[int(v)] = u
				q.PushBack(v)
			}
		}
	}
	return dist, prev
}
