// SPDX-License-Identifier: MIT
//
// Package builder generates deterministic fixture graphs for grough: paths,
// cycles, complete graphs, stars, wheels, grids and Erdős–Rényi random
// graphs, all over int vertices and int64 weights so they feed straight into
// contract, bfs/dfs and the edgelist writer.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithSeed(7)},
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeights(1, 9)},
//		builder.Cycle(6),
//		builder.RandomSparse(6, 0.3),
//	)
//
// Determinism: same options, seed and constructor order ⇒ identical graphs,
// including edge insertion order.
//
// Errors:
//
//	ErrTooFewVertices     – size parameter below the constructor minimum
//	ErrInvalidProbability – p outside [0,1]
//	ErrNeedRandSource     – a stochastic choice without WithSeed/WithRand
//	ErrConstructFailed    – nil constructor passed to BuildGraph
package builder
