package dfs

import (
	"cmp"

	"github.com/katalvlaran/grough/core"
)

// Components partitions g into connected components. Each component is in
// depth-first visitation order; components are rooted at the first
// unvisited vertex in insertion order.
//
// Complexity: O(V + E).
func Components[V cmp.Ordered, W any](g *core.Graph[V, W]) [][]V {
	seen := make(map[V]struct{}, g.Order())
	var out [][]V

	for root := range g.Vertices() {
		if _, ok := seen[root]; ok {
			continue
		}
		comp, _ := Component(g, root)
		for _, v := range comp {
			seen[v] = struct{}{}
		}
		out = append(out, comp)
	}

	return out
}

// HasCycle reports whether the undirected graph g contains a cycle. A forest
// has exactly Order() - components edges; any extra edge (a self-loop
// included) closes a cycle.
//
// Complexity: O(V + E).
func HasCycle[V cmp.Ordered, W any](g *core.Graph[V, W]) bool {
	return g.Size() > g.Order()-len(Components(g))
}
