// Package randgraph builds small deterministic and pseudo-random fixture
// graphs for exercising the graph package's traversal algorithms. It is
// an external collaborator, not part of the core: each constructor
// builds a valid graph.Graph internally and hands back the adjacency
// list built from it.
package randgraph

import (
	"errors"
	"fmt"
	"math/rand"

	set3 "github.com/TomTonic/Set3"

	"github.com/dstruct/corekit/graph"
)

// Sentinel errors returned by every constructor in this package; none of
// them ever panics.
var (
	ErrTooFewVertices    = errors.New("randgraph: too few vertices")
	ErrInvalidProbability = errors.New("randgraph: probability outside [0, 1]")
)

// config is the resolved set of Option values for one constructor call.
type config struct {
	directed bool
	weight   func(u, v int) int
	rng      *rand.Rand
}

// Option configures a fixture constructor.
type Option func(*config)

// WithDirected builds a directed adjacency list instead of the default
// undirected one.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithWeight injects the per-edge weight function; edges default to
// weight 0 (suitable for the unweighted BFS/DFS algorithms).
func WithWeight(fn func(u, v int) int) Option {
	return func(c *config) { c.weight = fn }
}

// WithSeed freezes RandomSparse's edge sampler to a reproducible stream.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

func newConfig(opts ...Option) config {
	c := config{weight: func(u, v int) int { return 0 }}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func (c config) build(g *graph.Graph[int, int]) *graph.AdjacencyList[int, int] {
	if c.directed {
		return graph.DirBuild(g)
	}
	return graph.UndirBuild(g)
}

// Path builds a simple path 0-1-...-(n-1) (n >= 2).
func Path(n int, opts ...Option) (*graph.AdjacencyList[int, int], error) {
	if n < 2 {
		return nil, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	g := &graph.Graph[int, int]{NumVts: n}
	for i := 0; i < n-1; i++ {
		g.U = append(g.U, i)
		g.Vs = append(g.Vs, i+1)
		g.Wts = append(g.Wts, cfg.weight(i, i+1))
	}
	return cfg.build(g), nil
}

// Cycle builds a simple n-cycle 0-1-...-(n-1)-0 (n >= 3).
func Cycle(n int, opts ...Option) (*graph.AdjacencyList[int, int], error) {
	if n < 3 {
		return nil, fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	g := &graph.Graph[int, int]{NumVts: n}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		g.U = append(g.U, i)
		g.Vs = append(g.Vs, j)
		g.Wts = append(g.Wts, cfg.weight(i, j))
	}
	return cfg.build(g), nil
}

// Fan builds a star with hub 0 and n-1 spokes (n >= 2).
func Fan(n int, opts ...Option) (*graph.AdjacencyList[int, int], error) {
	if n < 2 {
		return nil, fmt.Errorf("Fan: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	g := &graph.Graph[int, int]{NumVts: n}
	for i := 1; i < n; i++ {
		g.U = append(g.U, 0)
		g.Vs = append(g.Vs, i)
		g.Wts = append(g.Wts, cfg.weight(0, i))
	}
	return cfg.build(g), nil
}

// Complete builds the complete graph K_n (n >= 1).
func Complete(n int, opts ...Option) (*graph.AdjacencyList[int, int], error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	g := &graph.Graph[int, int]{NumVts: n}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.U = append(g.U, i)
			g.Vs = append(g.Vs, j)
			g.Wts = append(g.Wts, cfg.weight(i, j))
		}
	}
	return cfg.build(g), nil
}

// RandomSparse builds an Erdős–Rényi-style sparse graph over n vertices
// with target density p (fraction of the n*(n-1)/2 possible undirected
// pairs present). Edges are sampled one unordered pair at a time,
// rejecting repeats via a Set3 of already-chosen pairs rather than
// scanning all n^2 candidate pairs up front, so the cost tracks the
// number of edges requested rather than the vertex count squared.
func RandomSparse(n int, p float64, opts ...Option) (*graph.AdjacencyList[int, int], error) {
	if n < 2 {
		return nil, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	maxEdges := n * (n - 1) / 2
	target := int(p * float64(maxEdges))

	chosen := set3.Empty[[2]int]()
	g := &graph.Graph[int, int]{NumVts: n}
	for chosen.Len() < target {
		i, j := rng.Intn(n), rng.Intn(n)
		if i == j {
			continue
		}
		if i > j {
			i, j = j, i
		}
		pair := [2]int{i, j}
		if chosen.Contains(pair) {
			continue
		}
		chosen.Add(pair)
		g.U = append(g.U, i)
		g.Vs = append(g.Vs, j)
		g.Wts = append(g.Wts, cfg.weight(i, j))
	}
	return cfg.build(g), nil
}
