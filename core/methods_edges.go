// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle, weight access & enumeration.
//
// Determinism:
//   - Edges(), EdgeList() and EdgeAt() follow canonical-key insertion order.
//   - Every Edge value is canonical: From <= To.
//
// Concurrency:
//   - Every method locks g.mu; Edges() snapshots under the read lock.
package core

import "iter"

// AddEdge connects u and v with weight w, auto-inserting missing endpoints.
//
// Implementation:
//   - Stage 1: ensure both endpoints exist.
//   - Stage 2: insert v into N(u) and u into N(v), each only if absent.
//     For a loop the single insertion satisfies both directions.
//   - Stage 3: store w under the canonical key only if the key is absent;
//     an existing weight is never overwritten (use SetWeight).
//   - Stage 4: count the edge only when both adjacency insertions were new.
//
// Returns true when a new edge was counted.
//
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddEdge(u, v V, w W) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addEdge(u, v, w)
}

// addEdge is AddEdge without locking.
func (g *Graph[V, W]) addEdge(u, v V, w W) bool {
	g.addVertex(u)
	g.addVertex(v)

	un, _ := g.adjacency.Get(u)
	back := un.Insert(v)
	forth := back
	if u != v {
		vn, _ := g.adjacency.Get(v)
		forth = vn.Insert(u)
	}

	key := canonical(u, v)
	if !g.edges.Has(key) {
		g.edges.Put(key, w)
		g.version++
	}

	if back && forth {
		g.size++
		g.version++
		return true
	}

	return false
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Symmetric: HasEdge(u,v) == HasEdge(v,u).
// Complexity: O(1).
func (g *Graph[V, W]) HasEdge(u, v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.Has(canonical(u, v))
}

// RemoveEdge deletes {u,v}: both adjacency entries, the canonical weight,
// and one unit of size. Missing edge is a no-op returning false.
//
// Complexity: O(deg(u) + deg(v) + E) with the shift-based removals.
func (g *Graph[V, W]) RemoveEdge(u, v V) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeEdge(u, v)
}

// removeEdge is RemoveEdge without locking.
func (g *Graph[V, W]) removeEdge(u, v V) bool {
	key := canonical(u, v)
	if !g.edges.Has(key) {
		return false
	}
	if un, ok := g.adjacency.Get(u); ok {
		un.Remove(v)
	}
	if vn, ok := g.adjacency.Get(v); ok {
		vn.Remove(u)
	}
	g.edges.Delete(key)
	g.size--
	g.version++

	return true
}

// Weight returns the weight of {u,v}, or (zero, false) when absent.
// Complexity: O(1).
func (g *Graph[V, W]) Weight(u, v V) (W, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.Get(canonical(u, v))
}

// SetWeight overwrites the weight of {u,v} in place. No-op (false) when the
// edge is absent.
// Complexity: O(1).
func (g *Graph[V, W]) SetWeight(u, v V, w W) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := canonical(u, v)
	if !g.edges.Has(key) {
		return false
	}
	g.edges.Put(key, w)
	g.version++

	return true
}

// UpdateWeight replaces the weight of {u,v} with fn(current). It is the
// read-modify-write form of SetWeight; fn runs under the write lock and must
// not call back into g. No-op (false) when the edge is absent.
func (g *Graph[V, W]) UpdateWeight(u, v V, fn func(W) W) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := canonical(u, v)
	cur, ok := g.edges.Get(key)
	if !ok {
		return false
	}
	g.edges.Put(key, fn(cur))
	g.version++

	return true
}

// Size returns the number of edges. O(1).
func (g *Graph[V, W]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.size
}

// EdgeAt returns the edge at canonical-key position i, or (zero, false) when
// i is out of range.
// Complexity: O(1).
func (g *Graph[V, W]) EdgeAt(i int) (Edge[V, W], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeAt(i)
}

func (g *Graph[V, W]) edgeAt(i int) (Edge[V, W], bool) {
	k, w, ok := g.edges.At(i)
	if !ok {
		return Edge[V, W]{}, false
	}

	return Edge[V, W]{From: k.lo, To: k.hi, Weight: w}, true
}

// EdgeList returns every edge in canonical-key insertion order.
// Complexity: O(E).
func (g *Graph[V, W]) EdgeList() []Edge[V, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[V, W], 0, g.edges.Len())
	for i := 0; i < g.edges.Len(); i++ {
		e, _ := g.edgeAt(i)
		out = append(out, e)
	}

	return out
}

// Edges returns a lazy, finite sequence over the canonical edge set as it was
// at call time (weights included).
//
// Complexity: O(E) snapshot, O(1) per element.
func (g *Graph[V, W]) Edges() iter.Seq[Edge[V, W]] {
	snapshot := g.EdgeList()

	return func(yield func(Edge[V, W]) bool) {
		for _, e := range snapshot {
			if !yield(e) {
				return
			}
		}
	}
}
