// Package dfs implements a lazy depth-first visitor over a core.Graph plus
// the helpers built on it: Search, Component, Components and HasCycle.
//
// Key features:
//   - Visitor: LIFO stack seeded with the start vertex; a vertex is marked
//     seen when popped, and its unseen neighbors are pushed in reverse
//     insertion order so they pop in insertion order (recursive preorder).
//   - Search(g, start, end): visitation-order prefix ending at end.
//   - Component(g, start): full visitation order of start's component.
//   - Components(g): every component, roots in vertex insertion order.
//   - HasCycle(g): undirected cycle test, self-loops included.
//
// Complexity:
//
//   - Time:   O(V + E) per traversal.
//   - Memory: O(V + E) for the stack (duplicates are skipped on pop).
//
// Errors:
//
//   - context.Canceled          if the visitor's ctx is done.
//   - core.ErrGraphMutated      if g changed since the visitor was built.
package dfs
