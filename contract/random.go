// SPDX-License-Identifier: MIT
package contract

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/grough/core"
)

// ContractRandomEdge picks a uniformly random edge through g's IndexSource,
// computes its cost and contracts it (To fused into From).
//
// A sampled self-loop fuses nothing: it is removed and its weight returned
// as the cost.
//
// Errors: core.ErrEmptyGraph when g has no edges.
func ContractRandomEdge[V cmp.Ordered, W any](g *core.Graph[V, W], combine Combine[W]) (W, error) {
	e, err := g.RandomEdge()
	if err != nil {
		var zero W
		return zero, fmt.Errorf("contract: random edge: %w", err)
	}
	if e.Loop() {
		g.RemoveEdge(e.From, e.To)
		return e.Weight, nil
	}

	cost, err := Cost(g, e.From, e.To, combine)
	if err != nil {
		return cost, err
	}
	if err = ContractEdge(g, e.From, e.To, combine); err != nil {
		return cost, err
	}

	return cost, nil
}

// ContractRandomUntil contracts random edges until at most k vertices remain
// or no edges are left. It returns base plus the accumulated costs (folded
// with add) and the number of steps taken.
//
// With Sum as combine and unit weights, stopping at k == 2 leaves a single
// edge whose weight is the size of a cut of the original graph, as in
// Karger's randomized minimum-cut algorithm.
func ContractRandomUntil[V cmp.Ordered, W any](g *core.Graph[V, W], k int, base W, combine, add Combine[W]) (W, int, error) {
	total := base
	steps := 0
	for g.Order() > k && g.Size() > 0 {
		cost, err := ContractRandomEdge(g, combine)
		if err != nil {
			return total, steps, err
		}
		total = add(total, cost)
		steps++
	}

	return total, steps, nil
}
