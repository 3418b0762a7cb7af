// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, GraphOption, IndexSource, sentinel errors and NewGraph.
// Policy:
//   - Absence is signaled by (value, bool) returns; errors are reserved for
//     operations whose precondition cannot be met (empty graph, mutation).
//   - All exported methods lock g.mu; internal helpers assume it is held.

package core

import (
	"cmp"
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEmptyGraph indicates random sampling on a graph with no vertices
	// (RandomVertex) or no edges (RandomEdge).
	ErrEmptyGraph = errors.New("core: graph is empty")

	// ErrGraphMutated indicates the graph changed underneath a live visitor.
	ErrGraphMutated = errors.New("core: graph mutated during traversal")
)

// Edge is an undirected weighted edge in canonical form: From <= To.
type Edge[V cmp.Ordered, W any] struct {
	// From is the smaller endpoint.
	From V

	// To is the larger endpoint (equal to From for a self-loop).
	To V

	// Weight is the value stored for the canonical pair.
	Weight W
}

// Loop reports whether the edge is a self-loop.
func (e Edge[V, W]) Loop() bool { return e.From == e.To }

// edgeKey is the canonical unordered pair (min(u,v), max(u,v)).
type edgeKey[V cmp.Ordered] struct {
	lo, hi V
}

// canonical orders u and v so (u,v) and (v,u) share one key.
func canonical[V cmp.Ordered](u, v V) edgeKey[V] {
	if v < u {
		return edgeKey[V]{lo: v, hi: u}
	}

	return edgeKey[V]{lo: u, hi: v}
}

// IndexSource draws uniform indices in [0, n). *math/rand.Rand satisfies it.
// Implementations need not be goroutine-safe; the graph serializes access.
type IndexSource interface {
	Intn(n int) int
}

// graphConfig collects construction-time settings applied by GraphOption.
type graphConfig struct {
	src IndexSource
}

// GraphOption configures a Graph before creation.
type GraphOption func(c *graphConfig)

// WithIndexSource installs src as the uniform-index source used by
// RandomVertex, RandomEdge and everything built on them. A nil src is ignored.
func WithIndexSource(src IndexSource) GraphOption {
	return func(c *graphConfig) {
		if src != nil {
			c.src = src
		}
	}
}

// WithSeed installs a deterministic math/rand stream seeded with seed.
// Seed 0 maps to the package default seed.
func WithSeed(seed int64) GraphOption {
	return func(c *graphConfig) { c.src = rngFromSeed(seed) }
}

// Graph is an undirected weighted graph over ordered vertex identifiers.
//
// Vertices map to insertion-ordered neighbor sets; weights are kept once per
// canonical pair. Both containers are dense and index-addressable, which is
// what makes uniform sampling and deterministic iteration O(1) per element.
//
// Invariants (hold after every exported method):
//   - a vertex is in adjacency iff it is counted in order;
//   - u ∈ N(v) iff v ∈ N(u);
//   - a canonical key is in edges iff both endpoint entries exist;
//   - size == edges.Len() and order == adjacency.Len().
type Graph[V cmp.Ordered, W any] struct {
	mu sync.RWMutex // guards every field below

	adjacency *orderedMap[V, *orderedSet[V]] // vertex → ordered neighbor set
	edges     *orderedMap[edgeKey[V], W]     // canonical pair → weight

	order int // vertex count, maintained incrementally
	size  int // edge count, maintained incrementally

	version uint64      // bumped on every mutation
	src     IndexSource // uniform-index source for random sampling
}

// NewGraph creates an empty Graph. Without options the index source is the
// default deterministic stream (seed 0 policy).
// Complexity: O(1)
func NewGraph[V cmp.Ordered, W any](opts ...GraphOption) *Graph[V, W] {
	c := graphConfig{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.src == nil {
		c.src = rngFromSeed(0)
	}

	return &Graph[V, W]{
		adjacency: newOrderedMap[V, *orderedSet[V]](0),
		edges:     newOrderedMap[edgeKey[V], W](0),
		src:       c.src,
	}
}

// GraphStats is a read-only snapshot of graph counters.
type GraphStats struct {
	Order     int // number of vertices
	Size      int // number of edges
	Loops     int // number of self-loops
	Isolated  int // vertices with no neighbors
	MaxDegree int // largest neighbor-set size
}
