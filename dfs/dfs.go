package dfs

import (
	"cmp"
	"context"
	"fmt"
	"iter"

	"github.com/katalvlaran/grough/core"
)

// Option configures a Visitor.
type Option func(*Options)

// Options holds configurable parameters for a Visitor.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns the zero-configuration Options.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Visitor is a lazy, single-pass depth-first walk over a core.Graph.
type Visitor[V cmp.Ordered, W any] struct {
	graph   *core.Graph[V, W]
	ctx     context.Context
	version uint64
	stack   []V
	seen    map[V]struct{}
	err     error
}

// New returns a visitor rooted at start; empty when start is absent.
func New[V cmp.Ordered, W any](g *core.Graph[V, W], start V, opts ...Option) *Visitor[V, W] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	it := &Visitor[V, W]{
		graph:   g,
		ctx:     o.Ctx,
		version: g.Version(),
		seen:    make(map[V]struct{}),
	}
	if g.HasVertex(start) {
		it.stack = append(it.stack, start)
	}

	return it
}

// Next pops until a vertex not yet seen appears, marks it, pushes its unseen
// neighbors and returns it. False when the walk is over; see Err.
func (it *Visitor[V, W]) Next() (V, bool) {
	var zero V
	for it.err == nil && len(it.stack) > 0 {
		if err := it.ctx.Err(); err != nil {
			it.stop(err)
			break
		}
		if it.graph.Version() != it.version {
			it.stop(fmt.Errorf("dfs: %w", core.ErrGraphMutated))
			break
		}

		top := len(it.stack) - 1
		u := it.stack[top]
		it.stack = it.stack[:top]
		if _, ok := it.seen[u]; ok {
			continue
		}
		it.seen[u] = struct{}{}

		nbrs, _ := it.graph.Neighbors(u)
		for i := len(nbrs) - 1; i >= 0; i-- {
			if _, ok := it.seen[nbrs[i]]; !ok {
				it.stack = append(it.stack, nbrs[i])
			}
		}

		return u, true
	}

	return zero, false
}

func (it *Visitor[V, W]) stop(err error) {
	it.err = err
	it.stack = nil
}

// All drains the visitor as a sequence.
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

// Seen returns the number of vertices returned so far.
func (it *Visitor[V, W]) Seen() int { return len(it.seen) }

// Search returns the depth-first visitation order from start up to and
// including end. False when start is absent or end is unreachable.
func Search[V cmp.Ordered, W any](g *core.Graph[V, W], start, end V) ([]V, bool) {
	if !g.HasVertex(start) {
		return nil, false
	}

	var path []V
	for v := range New(g, start).All() {
		path = append(path, v)
		if v == end {
			return path, true
		}
	}

	return nil, false
}

// Component returns the full depth-first visitation order of everything
// reachable from start. False when start is absent.
func Component[V cmp.Ordered, W any](g *core.Graph[V, W], start V) ([]V, bool) {
	if !g.HasVertex(start) {
		return nil, false
	}

	var order []V
	for v := range New(g, start).All() {
		order = append(order, v)
	}

	return order, true
}
