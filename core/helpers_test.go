// SPDX-License-Identifier: MIT
// Package core_test contains fixtures and invariant checks for core.Graph.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grough/core"
)

// scriptedSource replays a fixed list of indices, cycling when exhausted.
type scriptedSource struct {
	idx  []int
	next int
}

func (s *scriptedSource) Intn(n int) int {
	i := s.idx[s.next%len(s.idx)] % n
	s.next++

	return i
}

// triangleWithTail builds edges (1,2,5),(2,3,4),(3,1,3),(4,2,7).
func triangleWithTail() *core.Graph[int, int] {
	g := core.NewGraph[int, int]()
	g.AddEdge(1, 2, 5)
	g.AddEdge(2, 3, 4)
	g.AddEdge(3, 1, 3)
	g.AddEdge(4, 2, 7)

	return g
}

// requireInvariants checks adjacency symmetry, edge/adjacency co-presence and
// the order/size counters against the public read surface.
func requireInvariants[V interface{ ~int | ~string }, W any](t *testing.T, g *core.Graph[V, W]) {
	t.Helper()

	vertices := g.VertexList()
	require.Len(t, vertices, g.Order(), "order must match vertex count")

	incidences := 0
	for _, u := range vertices {
		nbrs, ok := g.Neighbors(u)
		require.True(t, ok)
		for _, x := range nbrs {
			back, ok := g.Neighbors(x)
			require.True(t, ok, "neighbor %v of %v must be a vertex", x, u)
			require.Contains(t, back, u, "adjacency must be symmetric for %v-%v", u, x)
			require.True(t, g.HasEdge(u, x), "adjacent pair %v-%v must carry a weight", u, x)
			if x == u {
				incidences += 2
			} else {
				incidences++
			}
		}
	}

	edges := g.EdgeList()
	require.Len(t, edges, g.Size(), "size must match edge count")
	require.Equal(t, 2*g.Size(), incidences, "handshake: each edge seen from both ends")
	for _, e := range edges {
		require.LessOrEqual(t, e.From, e.To, "edge keys must be canonical")
		require.True(t, g.HasVertex(e.From))
		require.True(t, g.HasVertex(e.To))
	}
}
