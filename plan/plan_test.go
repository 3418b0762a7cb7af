package plan_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grough/contract"
	"github.com/katalvlaran/grough/plan"
)

func TestLoadFile(t *testing.T) {
	p, err := plan.LoadFile(filepath.Join("testdata", "seven.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "seven-vertex collapse", p.Name)
	assert.Equal(t, plan.CombineProduct, p.CombineName)
	assert.Equal(t, int64(0), p.Base)

	pairs := p.Pairs()
	require.Len(t, pairs, 11)
	assert.Equal(t, contract.Pair[int]{U: 1, V: 3}, pairs[0])
	assert.Equal(t, contract.Pair[int]{U: 6, V: 7}, pairs[10])

	combine, err := p.Combine()
	require.NoError(t, err)
	assert.Equal(t, int64(12), combine(3, 4))
}

func TestLoad_Defaults(t *testing.T) {
	p, err := plan.Load(strings.NewReader("edges:\n  - [1, 2]\n"))
	require.NoError(t, err)
	assert.Equal(t, plan.CombineSum, p.CombineName)
	assert.Zero(t, p.Base)

	combine, err := p.Combine()
	require.NoError(t, err)
	assert.Equal(t, int64(7), combine(3, 4))

	p, err = plan.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, p.Pairs())
}

func TestLoad_Errors(t *testing.T) {
	_, err := plan.Load(strings.NewReader("combine: max\n"))
	require.ErrorIs(t, err, plan.ErrUnknownCombine)

	_, err = plan.Load(strings.NewReader("edges:\n  - [1, 2]\n  - [3]\n"))
	require.ErrorIs(t, err, plan.ErrBadPair)
	assert.Contains(t, err.Error(), "edges[1]")

	_, err = plan.Load(strings.NewReader("combin: sum\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = plan.Load(strings.NewReader("edges: [[a, b]]\n"))
	require.Error(t, err)

	_, err = plan.LoadFile(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
}

func TestValidate_NormalizesName(t *testing.T) {
	p := &plan.Plan{CombineName: "  Product "}
	require.NoError(t, p.Validate())
	assert.Equal(t, plan.CombineProduct, p.CombineName)
}
