// Package contract implements weighted edge contraction on core.Graph:
// computing the cost of fusing two vertices, performing the fusion, and
// driving sequences of fusions while tracking vertex aliases.
//
// What
//
//   - Cost(g, u, v, combine): the cost of contracting {u,v} without mutating g.
//     Seeded with w(u,v), folded left to right with combine over u's other
//     incident edges, then v's other incident edges, each in neighbor order.
//   - ContractEdge(g, u, v, combine): fuses v into u. Parallel edges (v,x)
//     and (u,x) merge into combine(w(v,x), w(u,x)); the rest carry over.
//   - ContractEdges(g, pairs, base, combine): applies an ordered list of
//     contractions through an AliasTable and returns base + Σ costs.
//   - ContractRandomEdge / ContractRandomUntil: uniform random contraction
//     driven by the graph's IndexSource.
//   - Cheapest(g, orders, base, combine): evaluates candidate orders on
//     clones and returns the cheapest.
//
// Determinism
//
//	Costs are reproducible bit for bit: folding follows neighbor-insertion
//	order, and re-homed edges are attached in v's neighbor order. combine is
//	never assumed commutative or associative.
//
// Complexity
//
//   - Cost:         O(deg(u) + deg(v))
//   - ContractEdge: O(deg(v)) edge operations (each O(deg + E) with the
//     order-preserving removals of core)
//   - Alias resolution: O(chain length); there is no path compression, so
//     resolution never rewrites the table.
//
// Errors
//
//   - core.ErrEdgeNotFound    contracting or costing a non-edge.
//   - core.ErrVertexNotFound  a pair names a vertex absent at sequence start.
//   - core.ErrEmptyGraph      random contraction on a graph with no edges.
//   - ErrSelfContraction      ContractEdge(g, u, u, ...).
//   - ErrNoCandidates         Cheapest with no orders.
package contract
