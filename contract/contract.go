// SPDX-License-Identifier: MIT
package contract

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/grough/core"
)

// Cost computes the cost of contracting {u,v} without mutating g.
//
// The fold is seeded with w(u,v); combine is then applied left to right with
// the weight of every other edge incident to u (skipping v), and after that
// with every other edge incident to v (skipping u), in neighbor-insertion
// order. A self-loop on either endpoint takes part once.
//
// Returns an error wrapping core.ErrEdgeNotFound when {u,v} is not an edge.
func Cost[V cmp.Ordered, W any](g *core.Graph[V, W], u, v V, combine Combine[W]) (W, error) {
	cost, ok := g.Weight(u, v)
	if !ok {
		var zero W
		return zero, fmt.Errorf("%w: (%v,%v)", core.ErrEdgeNotFound, u, v)
	}

	cost = foldIncident(g, cost, u, v, combine)
	cost = foldIncident(g, cost, v, u, combine)

	return cost, nil
}

// foldIncident folds the weights of edges incident to a, except {a,skip}, into acc.
func foldIncident[V cmp.Ordered, W any](g *core.Graph[V, W], acc W, a, skip V, combine Combine[W]) W {
	nbrs, _ := g.Neighbors(a)
	for _, x := range nbrs {
		if x == skip {
			continue
		}
		w, _ := g.Weight(a, x)
		acc = combine(acc, w)
	}

	return acc
}

// move is one re-homed edge: (x,v) becomes (target,u) with weight w.
type move[V cmp.Ordered, W any] struct {
	x, target V
	w         W
}

// ContractEdge fuses v into u:
//
//  1. remove {u,v};
//  2. for each remaining neighbor x of v, in order: when {u,x} exists the
//     parallel pair merges into combine(w(v,x), w(u,x)), otherwise w(v,x)
//     carries over;
//  3. remove {x,v}, then overwrite {x,u} in place or create it;
//  4. remove v.
//
// A self-loop on v becomes a self-loop on u (merged with u's own loop if
// present). On a loop-free graph Order() drops by one and Size() drops by
// 1 + |N(u) ∩ N(v)|.
//
// Errors: ErrSelfContraction when u == v; core.ErrEdgeNotFound (wrapped) when
// {u,v} is not an edge. The graph is untouched on error.
func ContractEdge[V cmp.Ordered, W any](g *core.Graph[V, W], u, v V, combine Combine[W]) error {
	if u == v {
		return fmt.Errorf("%w: %v", ErrSelfContraction, u)
	}
	if !g.HasEdge(u, v) {
		return fmt.Errorf("%w: (%v,%v)", core.ErrEdgeNotFound, u, v)
	}

	g.RemoveEdge(u, v)

	// Compute every new weight before touching any edge, so merges see the
	// pre-fusion weights of u.
	nbrs, _ := g.Neighbors(v)
	moves := make([]move[V, W], 0, len(nbrs))
	for _, x := range nbrs {
		target := x
		if x == v {
			target = u
		}
		w, _ := g.Weight(v, x)
		if wu, ok := g.Weight(u, target); ok {
			w = combine(w, wu)
		}
		moves = append(moves, move[V, W]{x: x, target: target, w: w})
	}

	for _, m := range moves {
		g.RemoveEdge(m.x, v)
		if !g.SetWeight(m.target, u, m.w) {
			g.AddEdge(m.target, u, m.w)
		}
	}
	g.RemoveVertex(v)

	return nil
}
