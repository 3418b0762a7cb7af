// SPDX-License-Identifier: MIT
//
// File: methods_random.go
// Role: Uniform random sampling over the index-addressable containers.
//
// Determinism:
//   - For a fixed insertion history and a fixed IndexSource stream the
//     sampled vertices and edges are reproducible.
//
// Concurrency:
//   - Sampling advances the IndexSource, so it takes the write lock.
package core

// RandomVertex draws an index in [0, Order()) from the graph's IndexSource
// and returns the vertex at that insertion position.
//
// Errors:
//   - ErrEmptyGraph when the graph has no vertices.
//
// Complexity: O(1).
func (g *Graph[V, W]) RandomVertex() (V, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.order == 0 {
		var zero V
		return zero, ErrEmptyGraph
	}
	u, _, _ := g.adjacency.At(drawIndex(g.src, g.order))

	return u, nil
}

// RandomEdge draws an index in [0, Size()) from the graph's IndexSource and
// returns the canonical edge at that position.
//
// Errors:
//   - ErrEmptyGraph when the graph has no edges.
//
// Complexity: O(1).
func (g *Graph[V, W]) RandomEdge() (Edge[V, W], error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.size == 0 {
		return Edge[V, W]{}, ErrEmptyGraph
	}
	e, _ := g.edgeAt(drawIndex(g.src, g.size))

	return e, nil
}
