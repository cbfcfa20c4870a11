package logwrap

import (
	"context"

	"github.com/google/uuid"
)

// CallIDVariable is the format variable name under which the per-invocation
// correlation ID is exposed to templates of wrappers configured with
// WithCallID.
const CallIDVariable = "call_id"

type callIDContextKey struct{}

// ContextWithCallID returns a context carrying a correlation ID for one
// invocation of a wrapped callable, generating a new ID only when the
// context does not carry one yet. Stacked wrappers therefore share the ID of
// the outermost layer.
func ContextWithCallID(ctx context.Context) context.Context {
	if _, ok := CallIDFromContext(ctx); ok {
		return ctx
	}

	return context.WithValue(ctx, callIDContextKey{}, uuid.NewString())
}

// CallIDFromContext returns the invocation's correlation ID, if any.
func CallIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(callIDContextKey{}).(string)
	return id, ok
}
