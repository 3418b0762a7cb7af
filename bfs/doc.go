// Package bfs provides a lazy breadth-first visitor over a core.Graph and a
// search helper built on it.
//
// What
//
//   - Visitor: a FIFO frontier seeded with the start vertex. Each Next pops
//     until an unseen vertex appears, marks it seen, enqueues its unseen
//     neighbors in insertion order, and returns it.
//   - All exposes the visitor as an iter.Seq[V]; a visitor is single-pass.
//   - Depth reports the hop distance at which a returned vertex was reached.
//   - Search returns the full visitation order from start up to and
//     including end. It is the order vertices were dequeued, not a
//     parent-pointer route.
//
// Determinism
//
//	core.Graph keeps neighbors in insertion order, so the visitation order
//	is fully reproducible for a given insertion history.
//
// Mutation
//
//	A visitor records core.Graph.Version at construction. Once the graph is
//	mutated it stops and Err reports core.ErrGraphMutated.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) plus O(deg) per Neighbors copy
//   - Memory: O(V + E) (the frontier may hold duplicates, deduped on pop)
//
// Usage
//
//	it := bfs.New(g, 1, bfs.WithContext(ctx))
//	for v := range it.All() {
//		d, _ := it.Depth(v)
//		fmt.Println(v, d)
//	}
//	if err := it.Err(); err != nil {
//		// context.Canceled, core.ErrGraphMutated or ErrOptionViolation
//	}
package bfs
