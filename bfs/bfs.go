package bfs

import (
	"cmp"
	"context"
	"fmt"
	"iter"

	"github.com/katalvlaran/grough/core"
)

// queueItem pairs a vertex with the depth at which it was enqueued.
type queueItem[V cmp.Ordered] struct {
	id    V
	depth int
}

// Visitor is a lazy, single-pass breadth-first walk over a core.Graph.
// A Visitor is not safe for concurrent use.
type Visitor[V cmp.Ordered, W any] struct {
	graph   *core.Graph[V, W]
	ctx     context.Context
	opts    Options
	version uint64
	queue   []queueItem[V]
	depth   map[V]int // seen set; value is the hop distance from start
	err     error
}

// New returns a visitor rooted at start. When start is not a vertex of g
// the visitor is empty; Next reports false straight away.
func New[V cmp.Ordered, W any](g *core.Graph[V, W], start V, opts ...Option) *Visitor[V, W] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	it := &Visitor[V, W]{
		graph:   g,
		ctx:     o.Ctx,
		opts:    o,
		version: g.Version(),
		depth:   make(map[V]int),
		err:     o.err,
	}
	if it.err == nil && g.HasVertex(start) {
		it.queue = append(it.queue, queueItem[V]{id: start})
	}

	return it
}

// Next returns the next newly seen vertex, or false when the walk is over.
// A false result after a failure leaves the cause in Err.
func (it *Visitor[V, W]) Next() (V, bool) {
	var zero V
	for it.err == nil && len(it.queue) > 0 {
		if err := it.ctx.Err(); err != nil {
			it.stop(err)
			break
		}
		if it.graph.Version() != it.version {
			it.stop(fmt.Errorf("bfs: %w", core.ErrGraphMutated))
			break
		}

		item := it.queue[0]
		it.queue = it.queue[1:]
		if _, seen := it.depth[item.id]; seen {
			continue // enqueued twice before its first pop
		}
		it.depth[item.id] = item.depth
		it.enqueueNeighbors(item)

		return item.id, true
	}

	return zero, false
}

// enqueueNeighbors appends every unseen neighbor in insertion order,
// respecting MaxDepth.
func (it *Visitor[V, W]) enqueueNeighbors(item queueItem[V]) {
	next := item.depth + 1
	if it.opts.MaxDepth > 0 && next > it.opts.MaxDepth {
		return
	}
	nbrs, _ := it.graph.Neighbors(item.id)
	for _, x := range nbrs {
		if _, seen := it.depth[x]; !seen {
			it.queue = append(it.queue, queueItem[V]{id: x, depth: next})
		}
	}
}

func (it *Visitor[V, W]) stop(err error) {
	it.err = err
	it.queue = nil
}

// All drains the visitor as a sequence. Breaking out of the loop leaves the
// remaining frontier in place for a later Next.
func (it *Visitor[V, W]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Err returns the error that stopped the walk, if any.
func (it *Visitor[V, W]) Err() error { return it.err }

// Depth returns the hop distance at which v was first dequeued.
func (it *Visitor[V, W]) Depth(v V) (int, bool) {
	d, ok := it.depth[v]
	return d, ok
}

// Seen returns the number of vertices returned so far.
func (it *Visitor[V, W]) Seen() int { return len(it.depth) }

// Search walks breadth-first from start and returns the visitation order up
// to and including end. Reports false when end is never dequeued, including
// when start is not a vertex.
func Search[V cmp.Ordered, W any](g *core.Graph[V, W], start, end V) ([]V, bool) {
	var path []V
	for v := range New(g, start).All() {
		path = append(path, v)
		if v == end {
			return path, true
		}
	}

	return nil, false
}
