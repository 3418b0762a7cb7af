package mst

import (
	"cmp"
	"errors"
	"slices"

	"github.com/katalvlaran/grough/contract"
	"github.com/katalvlaran/grough/core"
)

// ErrDisconnected is returned when no spanning tree exists.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// Kruskal returns the edges of a minimum spanning tree, in the order they
// were accepted, and their total weight. Self-loops never join a tree.
// A single-vertex graph yields an empty tree.
func Kruskal[V cmp.Ordered, W contract.Number](g *core.Graph[V, W]) ([]core.Edge[V, W], W, error) {
	var total W
	vertices := g.VertexList()
	if len(vertices) == 0 {
		return nil, total, core.ErrEmptyGraph
	}
	if len(vertices) == 1 {
		return []core.Edge[V, W]{}, total, nil
	}

	edges := make([]core.Edge[V, W], 0, g.Size())
	for e := range g.Edges() {
		if !e.Loop() {
			edges = append(edges, e)
		}
	}
	slices.SortStableFunc(edges, func(a, b core.Edge[V, W]) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	parent := make(map[V]V, len(vertices))
	rank := make(map[V]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	// find with path halving
	find := func(u V) V {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	union := func(ru, rv V) {
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	tree := make([]core.Edge[V, W], 0, len(vertices)-1)
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		union(ru, rv)
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == len(vertices)-1 {
			break
		}
	}

	if len(tree) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// Pairs converts tree edges into a contraction plan. Applying it with
// contract.ContractEdges collapses the graph to a single vertex.
func Pairs[V cmp.Ordered, W any](tree []core.Edge[V, W]) []contract.Pair[V] {
	out := make([]contract.Pair[V], len(tree))
	for i, e := range tree {
		out[i] = contract.Pair[V]{U: e.From, V: e.To}
	}

	return out
}
