// SPDX-License-Identifier: MIT
//
// File: ordered.go
// Role: Dense, slice-backed ordered containers with O(1) lookup and O(1)
// positional access.
// Determinism:
//   - Iteration and positional order are insertion order.
//   - Delete shifts later elements left, so survivors keep their relative order.

package core

// orderedMap is an insertion-ordered map: keys and values live in parallel
// slices, index maps a key to its position.
type orderedMap[K comparable, T any] struct {
	keys  []K
	vals  []T
	index map[K]int
}

func newOrderedMap[K comparable, T any](capacity int) *orderedMap[K, T] {
	return &orderedMap[K, T]{
		keys:  make([]K, 0, capacity),
		vals:  make([]T, 0, capacity),
		index: make(map[K]int, capacity),
	}
}

// Len returns the number of entries. O(1).
func (m *orderedMap[K, T]) Len() int { return len(m.keys) }

// Has reports key membership. O(1).
func (m *orderedMap[K, T]) Has(k K) bool {
	_, ok := m.index[k]
	return ok
}

// Get returns the value stored under k. O(1).
func (m *orderedMap[K, T]) Get(k K) (T, bool) {
	i, ok := m.index[k]
	if !ok {
		var zero T
		return zero, false
	}

	return m.vals[i], true
}

// Put stores v under k, appending k when new. Reports whether k was new. O(1) amortized.
func (m *orderedMap[K, T]) Put(k K, v T) bool {
	if i, ok := m.index[k]; ok {
		m.vals[i] = v
		return false
	}
	m.index[k] = len(m.keys)
	m.keys = append(m.keys, k)
	m.vals = append(m.vals, v)

	return true
}

// At returns the entry at position i. O(1).
func (m *orderedMap[K, T]) At(i int) (K, T, bool) {
	if i < 0 || i >= len(m.keys) {
		var (
			zk K
			zv T
		)
		return zk, zv, false
	}

	return m.keys[i], m.vals[i], true
}

// Delete removes k and reports whether it was present.
// Complexity: O(n - i) for the shift and re-index of the tail.
func (m *orderedMap[K, T]) Delete(k K) bool {
	i, ok := m.index[k]
	if !ok {
		return false
	}
	delete(m.index, k)
	copy(m.keys[i:], m.keys[i+1:])
	copy(m.vals[i:], m.vals[i+1:])
	last := len(m.keys) - 1
	var (
		zk K
		zv T
	)
	m.keys[last], m.vals[last] = zk, zv // release references held by the tail slot
	m.keys = m.keys[:last]
	m.vals = m.vals[:last]
	for j := i; j < last; j++ {
		m.index[m.keys[j]] = j
	}

	return true
}

// Keys returns a copy of the keys in order. O(n).
func (m *orderedMap[K, T]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)

	return out
}

// orderedSet is an insertion-ordered set built on orderedMap.
type orderedSet[T comparable] struct {
	m *orderedMap[T, struct{}]
}

func newOrderedSet[T comparable]() *orderedSet[T] {
	return &orderedSet[T]{m: newOrderedMap[T, struct{}](0)}
}

// Len returns the number of members. O(1).
func (s *orderedSet[T]) Len() int { return s.m.Len() }

// Has reports membership. O(1).
func (s *orderedSet[T]) Has(x T) bool { return s.m.Has(x) }

// Insert adds x if absent and reports whether it was added. O(1) amortized.
func (s *orderedSet[T]) Insert(x T) bool {
	if s.m.Has(x) {
		return false
	}

	return s.m.Put(x, struct{}{})
}

// Remove deletes x and reports whether it was present.
func (s *orderedSet[T]) Remove(x T) bool { return s.m.Delete(x) }

// At returns the member at position i.
func (s *orderedSet[T]) At(i int) (T, bool) {
	x, _, ok := s.m.At(i)
	return x, ok
}

// Slice returns a copy of the members in order.
func (s *orderedSet[T]) Slice() []T { return s.m.Keys() }

// clone returns an independent copy with the same order.
func (s *orderedSet[T]) clone() *orderedSet[T] {
	c := &orderedSet[T]{m: newOrderedMap[T, struct{}](s.m.Len())}
	for _, x := range s.m.keys {
		c.m.Put(x, struct{}{})
	}

	return c
}
