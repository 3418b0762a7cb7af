// SPDX-License-Identifier: MIT
package contract

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/grough/core"
)

// ContractEdges applies pairs in order as successive contractions and returns
// base plus the sum of the individual contraction costs.
//
// Earlier contractions rename vertices, so every endpoint is resolved through
// an AliasTable seeded with the vertices present when the call starts. A pair
// whose endpoints resolve to the same representative is skipped. Otherwise the
// cost is computed at the resolved identities, the edge is contracted
// (representative of V fused into representative of U) and the alias recorded.
//
// The total depends on the order of pairs; it is not permutation-invariant.
//
// On error the total accumulated so far is returned together with the error,
// and g keeps the contractions already applied.
func ContractEdges[V cmp.Ordered, W Number](g *core.Graph[V, W], pairs []Pair[V], base W, combine Combine[W]) (W, error) {
	return ContractEdgesFunc(g, pairs, base, combine, Sum[W])
}

// ContractEdgesFunc is ContractEdges with an explicit accumulator, for weight
// types that are not Number. add(total, cost) folds each step into the total.
func ContractEdgesFunc[V cmp.Ordered, W any](g *core.Graph[V, W], pairs []Pair[V], base W, combine, add Combine[W]) (W, error) {
	aliases := NewAliasTable(g.Vertices())
	total := base

	for i, p := range pairs {
		u, ok := aliases.Resolve(p.U)
		if !ok {
			return total, fmt.Errorf("contract: pair %d: %w: %v", i, core.ErrVertexNotFound, p.U)
		}
		v, ok := aliases.Resolve(p.V)
		if !ok {
			return total, fmt.Errorf("contract: pair %d: %w: %v", i, core.ErrVertexNotFound, p.V)
		}
		if u == v {
			continue // already collapsed by an earlier step, or a loop
		}

		cost, err := Cost(g, u, v, combine)
		if err != nil {
			return total, fmt.Errorf("contract: pair %d (%v,%v) resolved to (%v,%v): %w", i, p.U, p.V, u, v, err)
		}
		if err = ContractEdge(g, u, v, combine); err != nil {
			return total, fmt.Errorf("contract: pair %d: %w", i, err)
		}
		aliases.Alias(v, u)
		total = add(total, cost)
	}

	return total, nil
}

// Cheapest evaluates every candidate order on its own clone of g (g itself
// is never mutated) and returns the index and total of the cheapest order.
// Ties keep the earliest candidate.
//
// Errors: ErrNoCandidates for an empty list; the first failing order's error
// otherwise, wrapped with its index.
func Cheapest[V cmp.Ordered, W Number](g *core.Graph[V, W], orders [][]Pair[V], base W, combine Combine[W]) (int, W, error) {
	var best W
	if len(orders) == 0 {
		return -1, best, ErrNoCandidates
	}

	bestIdx := -1
	for i, order := range orders {
		total, err := ContractEdges(g.Clone(), order, base, combine)
		if err != nil {
			return -1, best, fmt.Errorf("contract: order %d: %w", i, err)
		}
		if bestIdx < 0 || total < best {
			bestIdx, best = i, total
		}
	}

	return bestIdx, best, nil
}
