package bfs

import (
	"context"
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures a Visitor via functional arguments.
// An invalid Option is recorded internally and surfaced through Visitor.Err.
type Option func(*Options)

// Options holds the parameters of a Visitor.
type Options struct {
	// Ctx allows cancellation; checked once per Next.
	Ctx context.Context

	// MaxDepth, if > 0, stops enqueueing beyond this hop distance.
	// A value of 0 disables the limit.
	MaxDepth int

	err error
}

// DefaultOptions returns context.Background() and no depth limit.
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

// WithMaxDepth limits exploration to vertices at most d hops from start.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
