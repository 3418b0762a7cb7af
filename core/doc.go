// Package core provides a generic, in-memory undirected weighted Graph with
// insertion-ordered, index-addressable storage.
//
// The Graph G = (V,E) is parameterized by a vertex type V (any cmp.Ordered
// type) and a weight type W (any type):
//
//   - Adjacency: ordered map vertex → ordered neighbor set.
//   - Weights: ordered map canonical pair (min(u,v), max(u,v)) → W, so
//     {u,v} and {v,u} share one entry.
//   - Order and size are maintained incrementally.
//   - Self-loops are representable and count as one edge.
//   - Parallel edges are not: a second AddEdge on the same pair is a no-op.
//
// Why ordered, dense containers?
//
//   - Deterministic iteration: Vertices(), Edges(), Neighbors() follow
//     insertion order, never map order.
//   - Uniform sampling in O(1): RandomVertex/RandomEdge draw an index from
//     an injected IndexSource and resolve it positionally.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(u V) bool                   // O(1), idempotent
//	HasVertex(u V) bool                   // O(1)
//	RemoveVertex(u V) bool                // cascades to incident edges
//
//	// Edge lifecycle
//	AddEdge(u, v V, w W) bool             // O(1)†, never overwrites a weight
//	HasEdge(u, v V) bool                  // O(1), symmetric
//	RemoveEdge(u, v V) bool               // symmetric
//
//	// Weights
//	Weight(u, v V) (W, bool)              // O(1)
//	SetWeight(u, v V, w W) bool           // O(1), in place
//	UpdateWeight(u, v V, fn func(W) W) bool
//
//	// Query
//	Neighbors(u V) ([]V, bool)            // O(deg), copy, insertion order
//	Order() int, Size() int               // O(1)
//	Vertices() iter.Seq[V]                // snapshot at call time
//	Edges() iter.Seq[Edge[V, W]]          // snapshot at call time
//	EdgeAt(i int) (Edge[V, W], bool)      // O(1) positional access
//
//	// Sampling
//	RandomVertex() (V, error)             // ErrEmptyGraph when Order()==0
//	RandomEdge() (Edge[V, W], error)      // ErrEmptyGraph when Size()==0
//
// Configuration Options (GraphOption):
//
//	– WithIndexSource(src IndexSource)
//	    Inject the uniform-index source (e.g. *rand.Rand).
//	– WithSeed(seed int64)
//	    Deterministic math/rand stream; seed 0 maps to a fixed default.
//
// Errors:
//
//	ErrVertexNotFound – missing vertex (used by higher layers)
//	ErrEdgeNotFound   – missing edge (used by higher layers)
//	ErrEmptyGraph     – random sampling on an empty vertex/edge set
//	ErrGraphMutated   – a live visitor observed a mutation
//
// † amortized: slice append + map insertion.
//
// Concurrency: each method takes an internal RWMutex, but the package offers
// no multi-call atomicity; treat a Graph as single-writer.
package core
