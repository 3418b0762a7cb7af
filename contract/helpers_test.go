// SPDX-License-Identifier: MIT
package contract_test

import (
	"github.com/katalvlaran/grough/contract"
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
func triangleWithTail(opts ...core.GraphOption) *core.Graph[int, int] {
	g := core.NewGraph[int, int](opts...)
	g.AddEdge(1, 2, 5)
	g.AddEdge(2, 3, 4)
	g.AddEdge(3, 1, 3)
	g.AddEdge(4, 2, 7)

	return g
}

// sevenVertexPlan returns the 7-vertex, 11-edge graph (every weight 2) and the
// contraction order that collapses it completely.
func sevenVertexPlan() (*core.Graph[int, int], []contract.Pair[int]) {
	g := core.NewGraph[int, int]()
	for _, e := range [][2]int{
		{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {2, 5},
		{3, 5}, {4, 5}, {4, 6}, {5, 7}, {6, 7},
	} {
		g.AddEdge(e[0], e[1], 2)
	}
	order := contract.PairsOf(
		[2]int{1, 3}, [2]int{1, 2}, [2]int{2, 3}, [2]int{1, 4},
		[2]int{2, 4}, [2]int{2, 5}, [2]int{3, 5}, [2]int{4, 6},
		[2]int{4, 5}, [2]int{5, 7}, [2]int{6, 7},
	)

	return g, order
}

// twoTrianglesBridge is two unit-weight triangles {1,2,3} and {4,5,6} joined by
// the single bridge 3-4; its minimum cut is 1.
func twoTrianglesBridge(opts ...core.GraphOption) *core.Graph[int, int] {
	g := core.NewGraph[int, int](opts...)
	for _, e := range [][2]int{{1, 2}, {2, 3}, {1, 3}, {4, 5}, {5, 6}, {4, 6}, {3, 4}} {
		g.AddEdge(e[0], e[1], 1)
	}

	return g
}
