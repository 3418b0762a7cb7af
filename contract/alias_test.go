// SPDX-License-Identifier: MIT
package contract_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grough/contract"
)

func TestAliasTable(t *testing.T) {
	at := contract.NewAliasTable(slices.Values([]int{1, 2, 3, 4}))
	require.Equal(t, 4, at.Len())

	for v := 1; v <= 4; v++ {
		r, ok := at.Resolve(v)
		require.True(t, ok)
		assert.Equal(t, v, r)
		assert.Zero(t, at.Depth(v))
	}

	at.Alias(2, 1)
	at.Alias(3, 2) // chain 3 → 2 → 1

	r, ok := at.Resolve(3)
	require.True(t, ok)
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, at.Depth(3))
	assert.Equal(t, 1, at.Depth(2))

	// Resolve never compresses.
	assert.Equal(t, 2, at.Depth(3))

	_, ok = at.Resolve(99)
	assert.False(t, ok)

	// Unregistered endpoints are ignored.
	at.Alias(4, 99)
	r, _ = at.Resolve(4)
	assert.Equal(t, 4, r)
}
