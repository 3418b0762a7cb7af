// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices(), VertexList() and VertexAt() follow insertion order.
//   - Neighbors() follows the order in which neighbors were attached.
//
// Concurrency:
//   - Every method locks g.mu; lazy sequences snapshot under the read lock.
package core

import "iter"

// AddVertex inserts u with an empty neighbor set if absent (idempotent).
// Reports whether u was inserted.
//
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddVertex(u V) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertex(u)
}

// addVertex is AddVertex without locking.
func (g *Graph[V, W]) addVertex(u V) bool {
	if g.adjacency.Has(u) {
		return false // no-op for existing vertex
	}
	g.adjacency.Put(u, newOrderedSet[V]())
	g.order++
	g.version++

	return true
}

// HasVertex reports whether u is in the graph.
// Complexity: O(1).
func (g *Graph[V, W]) HasVertex(u V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency.Has(u)
}

// RemoveVertex deletes u and every incident edge. For each neighbor x the
// reverse entry u ∈ N(x) and the weight of (u,x) are removed and size drops
// by one; then u leaves the adjacency map and order drops by one.
// Missing u is a no-op; the result reports whether anything was removed.
//
// Complexity: O(deg(u) · (deg(x) + E)) with the shift-based removals.
func (g *Graph[V, W]) RemoveVertex(u V) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.adjacency.Get(u)
	if !ok {
		return false
	}
	for _, x := range nbrs.Slice() {
		if x != u {
			if xs, ok := g.adjacency.Get(x); ok {
				xs.Remove(u)
			}
		}
		g.edges.Delete(canonical(u, x))
		g.size--
	}
	g.adjacency.Delete(u)
	g.order--
	g.version++

	return true
}

// Neighbors returns a copy of u's neighbor set in insertion order, or
// (nil, false) when u is absent. A self-loop lists u itself once.
//
// Complexity: O(deg(u)).
func (g *Graph[V, W]) Neighbors(u V) ([]V, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency.Get(u)
	if !ok {
		return nil, false
	}

	return nbrs.Slice(), true
}

// NeighborAt returns the i-th neighbor of u in insertion order.
// Complexity: O(1).
func (g *Graph[V, W]) NeighborAt(u V, i int) (V, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency.Get(u)
	if !ok {
		var zero V
		return zero, false
	}

	return nbrs.At(i)
}

// Degree returns the size of u's neighbor set (a loop counts once).
// Complexity: O(1).
func (g *Graph[V, W]) Degree(u V) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency.Get(u)
	if !ok {
		return 0, false
	}

	return nbrs.Len(), true
}

// Order returns the number of vertices. O(1).
func (g *Graph[V, W]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.order
}

// VertexAt returns the vertex at insertion position i.
// Complexity: O(1).
func (g *Graph[V, W]) VertexAt(i int) (V, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u, _, ok := g.adjacency.At(i)
	return u, ok
}

// VertexList returns all vertices in insertion order.
// Complexity: O(V).
func (g *Graph[V, W]) VertexList() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency.Keys()
}

// Vertices returns a lazy, finite sequence over the vertex set as it was at
// call time. The keys are snapshotted up front, so mutating the graph while
// ranging never corrupts the sequence; it simply does not see the change.
//
// Complexity: O(V) snapshot, O(1) per element.
func (g *Graph[V, W]) Vertices() iter.Seq[V] {
	snapshot := g.VertexList()

	return func(yield func(V) bool) {
		for _, u := range snapshot {
			if !yield(u) {
				return
			}
		}
	}
}
