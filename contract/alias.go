// SPDX-License-Identifier: MIT
package contract

import (
	"cmp"
	"iter"
)

// AliasTable maps original vertex identities to their surviving
// representative after a sequence of contractions. Every vertex starts as
// its own alias; resolving follows the chain to a fixed point. It is a
// union-find without path compression or ranks: Resolve never writes.
type AliasTable[V cmp.Ordered] struct {
	parent map[V]V
}

// NewAliasTable registers every vertex of vs as its own representative.
func NewAliasTable[V cmp.Ordered](vs iter.Seq[V]) *AliasTable[V] {
	t := &AliasTable[V]{parent: make(map[V]V)}
	for v := range vs {
		t.parent[v] = v
	}

	return t
}

// Len returns the number of registered identities.
func (t *AliasTable[V]) Len() int { return len(t.parent) }

// Resolve follows x's alias chain to its fixed point. Reports false when x
// was never registered.
// Complexity: O(chain length).
func (t *AliasTable[V]) Resolve(x V) (V, bool) {
	cur, ok := t.parent[x]
	if !ok {
		return x, false
	}
	last := x
	for cur != last {
		last = cur
		cur = t.parent[cur]
	}

	return cur, true
}

// Alias records that from has been fused into to. Both must be registered;
// from should be a current representative (the caller resolves first).
func (t *AliasTable[V]) Alias(from, to V) {
	if _, ok := t.parent[from]; !ok {
		return
	}
	if _, ok := t.parent[to]; !ok {
		return
	}
	t.parent[from] = to
}

// Depth returns the number of hops from x to its representative.
func (t *AliasTable[V]) Depth(x V) int {
	cur, ok := t.parent[x]
	if !ok {
		return 0
	}
	hops := 0
	for last := x; cur != last; hops++ {
		last = cur
		cur = t.parent[cur]
	}

	return hops
}
