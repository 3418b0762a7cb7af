// Package mst computes minimum spanning trees of core.Graph values with
// Kruskal's algorithm.
//
// Kruskal scans edges by ascending weight (ties keep canonical insertion
// order) and keeps an edge when its endpoints lie in different trees, which
// is the same as contracting the cheapest remaining non-loop edge until one
// vertex is left. Pairs returns the kept edges as a contraction plan.
//
// Complexity: O(E log E) for the sort plus near-linear union-find work.
//
// Errors:
//
//	ErrDisconnected  – the graph has more than one component
//	core.ErrEmptyGraph – the graph has no vertices
package mst
