// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and snapshots.

package core

// Version returns the mutation counter. It changes after every successful
// mutation (vertex or edge insertion/removal, weight update, Clear) and is
// otherwise stable, so a reader can detect whether the graph changed
// between two observations.
// Complexity: O(1).
func (g *Graph[V, W]) Version() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.version
}

// Stats produces a snapshot of graph counters.
// Complexity: O(V + E).
func (g *Graph[V, W]) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{Order: g.order, Size: g.size}
	for i := 0; i < g.adjacency.Len(); i++ {
		_, nbrs, _ := g.adjacency.At(i)
		d := nbrs.Len()
		if d == 0 {
			st.Isolated++
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
	}
	for i := 0; i < g.edges.Len(); i++ {
		k, _, _ := g.edges.At(i)
		if k.lo == k.hi {
			st.Loops++
		}
	}

	return st
}
