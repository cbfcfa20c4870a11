package logwrap

import (
	"context"
)

// Typed adapters box ordinary Go functions into the Callable shape, wrap
// them with the given wrappers (first one outermost) and unbox the result,
// so a decorated function keeps the exact signature of the original.
//
// Arguments are bound positionally: the first declared parameter of the
// wrapper's Signature receives the first function argument, and so on.
// When a wrapper swallows a matched error, the decorated function returns
// the zero value of its result type and a nil error.

// Wrap0 decorates a function without arguments.
func Wrap0[R any](fn func(ctx context.Context) (R, error), wrappers ...Wrapper) func(ctx context.Context) (R, error) {
	name := callableName(fn)
	wrapped := chainNamed(name, func(ctx context.Context, _ Args) (any, error) {
		return fn(ctx)
	}, wrappers...)

	return func(ctx context.Context) (R, error) {
		result, err := wrapped(ctx, NoArgs())
		return unbox[R](result), err
	}
}

// Wrap1 decorates a function with one argument.
func Wrap1[A, R any](fn func(ctx context.Context, a A) (R, error), wrappers ...Wrapper) func(ctx context.Context, a A) (R, error) {
	name := callableName(fn)
	wrapped := chainNamed(name, func(ctx context.Context, args Args) (any, error) {
		return fn(ctx, args.positional[0].(A))
	}, wrappers...)

	return func(ctx context.Context, a A) (R, error) {
		result, err := wrapped(ctx, Positional(a))
		return unbox[R](result), err
	}
}

// Wrap2 decorates a function with two arguments.
func Wrap2[A, B, R any](fn func(ctx context.Context, a A, b B) (R, error), wrappers ...Wrapper) func(ctx context.Context, a A, b B) (R, error) {
	name := callableName(fn)
	wrapped := chainNamed(name, func(ctx context.Context, args Args) (any, error) {
		return fn(ctx, args.positional[0].(A), args.positional[1].(B))
	}, wrappers...)

	return func(ctx context.Context, a A, b B) (R, error) {
		result, err := wrapped(ctx, Positional(a, b))
		return unbox[R](result), err
	}
}

// Wrap3 decorates a function with three arguments.
func Wrap3[A, B, C, R any](fn func(ctx context.Context, a A, b B, c C) (R, error), wrappers ...Wrapper) func(ctx context.Context, a A, b B, c C) (R, error) {
	name := callableName(fn)
	wrapped := chainNamed(name, func(ctx context.Context, args Args) (any, error) {
		return fn(ctx, args.positional[0].(A), args.positional[1].(B), args.positional[2].(C))
	}, wrappers...)

	return func(ctx context.Context, a A, b B, c C) (R, error) {
		result, err := wrapped(ctx, Positional(a, b, c))
		return unbox[R](result), err
	}
}

// unbox converts a wrapper-layer result back to the typed result, yielding
// the zero value for the absent result of a swallowed error.
func unbox[R any](result any) R {
	if typed, ok := result.(R); ok {
		return typed
	}

	var zero R

	return zero
}
