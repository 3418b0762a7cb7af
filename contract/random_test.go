// SPDX-License-Identifier: MIT
package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grough/contract"
	"github.com/katalvlaran/grough/core"
)

// TestContractRandomEdge_Scripted forces index 0, i.e. the canonical edge (1,2).
func TestContractRandomEdge_Scripted(t *testing.T) {
	g := triangleWithTail(core.WithIndexSource(&scriptedSource{idx: []int{0}}))

	cost, err := contract.ContractRandomEdge(g, contract.Sum[int])
	require.NoError(t, err)
	assert.Equal(t, 19, cost)
	assert.False(t, g.HasVertex(2))
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 2, g.Size())
}

// TestContractRandomEdge_Loop removes a sampled loop and charges its weight.
func TestContractRandomEdge_Loop(t *testing.T) {
	g := core.NewGraph[int, int](core.WithIndexSource(&scriptedSource{idx: []int{0}}))
	g.AddEdge(1, 1, 9)
	g.AddEdge(1, 2, 1)

	cost, err := contract.ContractRandomEdge(g, contract.Sum[int])
	require.NoError(t, err)
	assert.Equal(t, 9, cost)
	assert.Equal(t, 2, g.Order())
	assert.Equal(t, 1, g.Size())
	assert.False(t, g.HasEdge(1, 1))
}

func TestContractRandomEdge_Empty(t *testing.T) {
	g := core.NewGraph[int, int]()
	g.AddVertex(1)

	_, err := contract.ContractRandomEdge(g, contract.Sum[int])
	require.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestContractRandomUntil_Scripted(t *testing.T) {
	g := triangleWithTail(core.WithIndexSource(&scriptedSource{idx: []int{0}}))

	total, steps, err := contract.ContractRandomUntil(g, 2, 0, contract.Sum[int], contract.Sum[int])
	require.NoError(t, err)
	assert.Equal(t, 2, steps)
	assert.Equal(t, 19+14, total)
	assert.Equal(t, []int{1, 4}, g.VertexList())
	w, _ := g.Weight(1, 4)
	assert.Equal(t, 7, w)
}

func TestContractRandomUntil_NoEdges(t *testing.T) {
	g := core.NewGraph[int, int]()
	for v := 1; v <= 5; v++ {
		g.AddVertex(v)
	}

	total, steps, err := contract.ContractRandomUntil(g, 1, 42, contract.Sum[int], contract.Sum[int])
	require.NoError(t, err)
	assert.Equal(t, 42, total)
	assert.Zero(t, steps)
	assert.Equal(t, 5, g.Order())
}

// TestContractRandomUntil_MinCut runs repeated seeded trials down to two
// super-vertices: every trial leaves exactly one edge whose weight is a cut,
// and the best trial finds the bridge.
func TestContractRandomUntil_MinCut(t *testing.T) {
	best := -1
	for seed := int64(1); seed <= 60; seed++ {
		g := twoTrianglesBridge(core.WithSeed(seed))
		_, steps, err := contract.ContractRandomUntil(g, 2, 0, contract.Sum[int], contract.Sum[int])
		require.NoError(t, err)
		require.Equal(t, 4, steps)
		require.Equal(t, 2, g.Order())
		require.Equal(t, 1, g.Size())

		e, ok := g.EdgeAt(0)
		require.True(t, ok)
		require.GreaterOrEqual(t, e.Weight, 1)
		if best < 0 || e.Weight < best {
			best = e.Weight
		}
	}
	assert.Equal(t, 1, best)
}

// TestContractRandomUntil_Deterministic replays one seed twice.
func TestContractRandomUntil_Deterministic(t *testing.T) {
	run := func() (int, []int) {
		g := twoTrianglesBridge(core.WithSeed(7))
		total, _, err := contract.ContractRandomUntil(g, 2, 0, contract.Sum[int], contract.Sum[int])
		require.NoError(t, err)
		return total, g.VertexList()
	}
	t1, v1 := run()
	t2, v2 := run()
	assert.Equal(t, t1, t2)
	assert.Equal(t, v1, v2)
}
