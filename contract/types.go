// SPDX-License-Identifier: MIT
package contract

import (
	"cmp"
	"errors"
)

var (
	// ErrSelfContraction is returned when both endpoints of a contraction are the same vertex.
	ErrSelfContraction = errors.New("contract: cannot contract a vertex into itself")

	// ErrNoCandidates is returned by Cheapest when no orders are supplied.
	ErrNoCandidates = errors.New("contract: no candidate orders")
)

// Combine merges two weights. The same function serves both roles in this
// package: folding incident weights into a contraction cost, and merging two
// parallel edge weights into the replacement weight.
type Combine[W any] func(a, b W) W

// Number is the additive constraint used to accumulate total cost.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum returns a + b.
func Sum[W Number](a, b W) W { return a + b }

// Product returns a * b.
func Product[W Number](a, b W) W { return a * b }

// Pair names the two endpoints of a contraction step. Endpoints refer to the
// original vertex identities; ContractEdges resolves them through aliases.
type Pair[T cmp.Ordered] struct {
	U, V T
}

// PairsOf builds a pair list from [u, v] literals.
func PairsOf[T cmp.Ordered](uv ...[2]T) []Pair[T] {
	out := make([]Pair[T], len(uv))
	for i, p := range uv {
		out[i] = Pair[T]{U: p[0], V: p[1]}
	}

	return out
}
