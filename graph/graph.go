// Package graph implements the adjacency-list view and the
// heap-driven traversal algorithms: BFS, DFS, Dijkstra, Prim, and
// TSP-DP. Every traversal is generic over the vertex ID type and the
// weight type. BFS, DFS, Dijkstra and Prim depend only on
// heap.MembershipMap and AdjacencyList, never on a concrete hash-table
// implementation; TSP is the exception and stores its DP levels in
// hashtable.Division directly, with no way to select another table.
package graph

import (
	"github.com/dstruct/corekit/buffer"
	"github.com/dstruct/corekit/heap"
)

// Graph is the edge-array form supplied by the caller: two parallel
// arrays of source/destination vertex indices and, for weighted graphs,
// a parallel array of edge weights. Wts is left nil/empty for
// unweighted graphs.
type Graph[V heap.Index, W any] struct {
	NumVts int
	U, Vs  []V
	Wts    []W
}

// Pair is one adjacency-list entry: a neighbour vertex and, for weighted
// graphs, the edge weight to reach it.
type Pair[V heap.Index, W any] struct {
	Vertex V
	Weight W
}

// AdjacencyList is the packed per-vertex neighbour view traversals read
// from. Each vertex's neighbours live in their own buffer.Stack so
// appends during construction amortize by doubling.
type AdjacencyList[V heap.Index, W any] struct {
	vtWts []*buffer.Stack[Pair[V, W]]
}

// BaseInit allocates numVts empty per-vertex neighbour buffers.
func BaseInit[V heap.Index, W any](numVts int) *AdjacencyList[V, W] {
	al := &AdjacencyList[V, W]{vtWts: make([]*buffer.Stack[Pair[V, W]], numVts)}
	for i := range al.vtWts {
		al.vtWts[i] = buffer.NewStack[Pair[V, W]](0, nil)
	}
	return al
}

// DirBuild builds a directed adjacency list: each edge (u, v, w) becomes
// one pair (v, w) in vtWts[u].
func DirBuild[V heap.Index, W any](g *Graph[V, W]) *AdjacencyList[V, W] {
	al := BaseInit[V, W](g.NumVts)
	for i := range g.U {
		al.push(g.U[i], g.Vs[i], g.weightAt(i))
	}
	return al
}

// UndirBuild builds an undirected adjacency list: each edge (u, v, w)
// becomes a pair in both vtWts[u] and vtWts[v].
func UndirBuild[V heap.Index, W any](g *Graph[V, W]) *AdjacencyList[V, W] {
	al := BaseInit[V, W](g.NumVts)
	for i := range g.U {
		w := g.weightAt(i)
		al.push(g.U[i], g.Vs[i], w)
		al.push(g.Vs[i], g.U[i], w)
	}
	return al
}

func (g *Graph[V, W]) weightAt(i int) W {
	var w W
	if len(g.Wts) > 0 {
		w = g.Wts[i]
	}
	return w
}

func (al *AdjacencyList[V, W]) push(u, v V, w W) {
	al.vtWts[int(u)].Push(Pair[V, W]{Vertex: v, Weight: w})
}

// NumVts reports the number of vertices the adjacency list was built over.
func (al *AdjacencyList[V, W]) NumVts() int { return len(al.vtWts) }

// Neighbors returns u's outgoing (vertex, weight) pairs. The returned
// slice shares the adjacency list's backing storage and must not be
// retained past the next mutation of al.
func (al *AdjacencyList[V, W]) Neighbors(u V) []Pair[V, W] {
	return al.vtWts[int(u)].Slice()
}

// WeightOps supplies the add/compare operations the core never inspects
// weight values itself for: Add combines a running distance with an
// edge weight, Cmp orders two weights (negative/zero/positive for
// less/equal/greater).
type WeightOps[W any] struct {
	Add func(a, b W) W
	Cmp func(a, b W) int
}
