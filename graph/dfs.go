package graph

import (
	"github.com/dstruct/corekit/buffer"
	"github.com/dstruct/corekit/heap"
)

type dfsFrame[V heap.Index] struct {
	v    V
	next int
}

// DFS visits every vertex of al, starting a new tree at each unvisited
// vertex in index order, using an explicit stack rather than recursion
// so adversarial (deep/degenerate) graphs cannot overflow the call stack.
// pre[v] and post[v] are v's discovery and finishing timestamps, both
// drawn from one shared monotonic counter, so post[v] > pre[v].
func DFS[V heap.Index, W any](al *AdjacencyList[V, W]) (pre, post []int) {
	n := al.NumVts()
	if n == 0 {
		panic("corekit/graph: DFS requires at least one vertex")
	}
	pre = make([]int, n)
	post = make([]int, n)
	visited := make([]bool, n)
	counter := 0

	for s := 0; s < n; s++ {
		start := V(s)
		if visited[s] {
			continue
		}
		visited[s] = true
		pre[s] = counter
		counter++

		stack := buffer.NewStack[dfsFrame[V]](16, nil)
		stack.Push(dfsFrame[V]{v: start, next: 0})

		for stack.Len() > 0 {
			top := stack.Len() - 1
			fr := stack.At(top)
			neighbors := al.Neighbors(fr.v)

			advanced := false
			for fr.next < len(neighbors) {
				nb := neighbors[fr.next].Vertex
				fr.next++
				stack.Set(top, fr)
				if !visited[int(nb)] {
					visited[int(nb)] = true
					pre[int(nb)] = counter
					counter++
					stack.Push(dfsFrame[V]{v: nb, next: 0})
					advanced = true
					break
				}
			}
			if !advanced && fr.next >= len(neighbors) {
				post[int(fr.v)] = counter
				counter++
				stack.Pop()
			}
		}
	}
	return pre, post
}
