// Package logwrap provides call-wrapping decorators that emit log records
// before a call, after a successful call, and/or when a call returns an
// error, deriving the log message from the call's own argument bindings.
//
// A decorator is built from a severity level, a message template with named
// placeholders, and the declared parameter list of the callable it wraps:
//   - Signature: the ordered parameter names with optional defaults,
//     declared once at decoration time
//   - Template placeholders like {arg1} or {count:d} are substituted from
//     the bound arguments of each invocation
//   - Extra variables are injected per variant: the callable ({callable}),
//     the returned value ({result}) and the returned error ({e})
//
// Four policy variants exist, all implementing the Wrapper interface:
//   - OnStart: log, then invoke
//   - OnEnd: invoke, log only on success
//   - OnError: invoke, log only a matched error, then re-return or swallow it
//   - OnException: like OnError but always emits through the sink's
//     stack-trace path at error level
//
// Common usage pattern:
//
//	sig, _ := logwrap.NewSignature(logwrap.P("arg1"), logwrap.P("arg2"), logwrap.D("kwarg1", nil))
//
//	start, _ := logwrap.OnStart(logwrap.LevelDebug, "call {arg1}, {arg2}, {kwarg1}", sig)
//	onEnd, _ := logwrap.OnEnd(logwrap.LevelInfo, "{arg1}+{arg2}={result}", sig)
//
//	add := logwrap.Wrap2(func(_ context.Context, a, b int) (int, error) {
//		return a + b, nil
//	}, start, onEnd)
//
//	sum, err := add(ctx, 1, 2) // logs "call 1, 2, <nil>" before, "1+2=3" after
//
// Log records are emitted through the dependency-free Logger interface.
// NewSlogLogger adapts a *slog.Logger; the oteladapters subpackage provides
// OpenTelemetry-backed implementations and the handlers subpackage provides
// a rotating-file slog.Handler.
package logwrap
