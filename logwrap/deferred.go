package logwrap

import (
	"context"
	"sync"
)

// Deferred is a pending invocation of a (possibly wrapped) callable.
//
// Creating a Deferred has no side effects: none of the wrapper layers run —
// no argument binding, no formatting, no log emission — until Await drives
// the computation. A Deferred that is never awaited therefore logs nothing.
type Deferred struct {
	fn   Callable
	args Args

	once   sync.Once
	result any
	err    error
}

// Defer captures a callable and the arguments of one invocation without
// running anything.
func Defer(fn Callable, args Args) *Deferred {
	return &Deferred{fn: fn, args: args}
}

// Await drives the deferred invocation to completion and returns its
// outcome. The callable runs at most once; subsequent Await calls return the
// memoized result without re-running the wrapper layers.
func (d *Deferred) Await(ctx context.Context) (any, error) {
	d.once.Do(func() {
		d.result, d.err = d.fn(ctx, d.args)
	})

	return d.result, d.err
}
