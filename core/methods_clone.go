// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves vertex, neighbor and edge insertion order exactly, so a
//     clone iterates and samples like its source.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the topology and weights. Weights are copied
// by value; if W holds references they are shared. The clone shares the
// source's IndexSource, so interleaved sampling on both draws from one stream.
//
// Complexity: O(V + E).
func (g *Graph[V, W]) Clone() *Graph[V, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph[V, W]{
		adjacency: newOrderedMap[V, *orderedSet[V]](g.adjacency.Len()),
		edges:     newOrderedMap[edgeKey[V], W](g.edges.Len()),
		order:     g.order,
		size:      g.size,
		src:       g.src,
	}
	for i := 0; i < g.adjacency.Len(); i++ {
		u, nbrs, _ := g.adjacency.At(i)
		out.adjacency.Put(u, nbrs.clone())
	}
	for i := 0; i < g.edges.Len(); i++ {
		k, w, _ := g.edges.At(i)
		out.edges.Put(k, w)
	}

	return out
}

// Clear removes every vertex and edge. The index source is kept.
// Complexity: O(1).
func (g *Graph[V, W]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency = newOrderedMap[V, *orderedSet[V]](0)
	g.edges = newOrderedMap[edgeKey[V], W](0)
	g.order, g.size = 0, 0
	g.version++
}
