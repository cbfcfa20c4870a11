package logwrap

import (
	"context"
	"log/slog"
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// Callable is the canonical shape of a wrapped callable: it receives the
// invocation's arguments and returns a result or an error. Typed functions
// are adapted to this shape with Wrap0 through Wrap3.
type Callable func(ctx context.Context, args Args) (any, error)

// Wrapper wraps a callable with logging behavior. A callable may be wrapped
// by multiple Wrapper instances in sequence; each layer fully delegates to
// the next inner one, so the outermost wrapper logs first on entry and the
// innermost error handler sees a returned error first.
type Wrapper interface {
	Wrap(fn Callable) Callable
}

// namedWrapper lets Chain and the typed adapters carry the original
// callable's name through closure layers.
type namedWrapper interface {
	wrapNamed(name string, fn Callable) Callable
}

// Chain wraps fn with the given wrappers, the first one outermost.
// All layers report the same callable name in their log messages.
func Chain(fn Callable, wrappers ...Wrapper) Callable {
	return chainNamed(callableName(fn), fn, wrappers...)
}

func chainNamed(name string, fn Callable, wrappers ...Wrapper) Callable {
	wrapped := fn
	for i := len(wrappers) - 1; i >= 0; i-- {
		if nw, ok := wrappers[i].(namedWrapper); ok {
			wrapped = nw.wrapNamed(name, wrapped)
			continue
		}

		wrapped = wrappers[i].Wrap(wrapped)
	}

	return wrapped
}

// callableName derives a short name for the wrapped callable, e.g.
// "mypkg.Add". Anonymous functions yield their compiler-assigned name.
func callableName(fn any) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "callable"
	}

	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}

	return name
}

/***** shared decorator configuration *****/

// config is the immutable per-wrapper configuration, constructed once and
// reused across invocations. Only the lazily memoized sink mutates after
// construction.
type config struct {
	level           Level
	levelOverridden bool
	template        *Template
	sig             Signature
	logger          Logger
	handler         slog.Handler
	loggerName      string
	callableVar     string
	resultVar       string
	errorVar        string
	matchers        []ErrorMatcher
	reraise         bool
	callID          bool

	resolveOnce sync.Once
	resolved    Logger
}

func newConfig(level Level, message string, sig Signature, opts ...Option) (*config, error) {
	template, err := ParseTemplate(message)
	if err != nil {
		return nil, err
	}

	cfg := &config{
		level:       level,
		template:    template,
		sig:         sig,
		callableVar: DefaultCallableVariable,
		resultVar:   DefaultResultVariable,
		errorVar:    DefaultErrorVariable,
		reraise:     true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.logger != nil && cfg.handler != nil {
		cfg.warn("mixed use of the logger and handler options, the handler option is ignored")
		cfg.handler = nil
	}

	return cfg, nil
}

// warn reports a non-fatal configuration problem through the supplied sink,
// falling back to slog.Default for wrappers without one.
func (c *config) warn(msg string) {
	sink := c.logger
	if sink == nil {
		sink = NewSlogLogger(slog.Default())
	}

	sink.Log(context.Background(), LevelWarn, msg)
}

// resolveLogger acquires the wrapper's sink on first use and memoizes it:
// the supplied Logger, a logger built from the supplied handler, or the
// named sink from the registry.
func (c *config) resolveLogger() Logger {
	c.resolveOnce.Do(func() {
		switch {
		case c.logger != nil:
			c.resolved = c.logger
		case c.handler != nil:
			c.resolved = NewSlogLogger(slog.New(c.handler))
		default:
			name := c.loggerName
			if name == "" {
				name = DefaultLoggerName
			}
			c.resolved = GetLogger(name)
		}
	})

	return c.resolved
}

// callContext injects the per-invocation correlation ID when enabled.
func (c *config) callContext(ctx context.Context) context.Context {
	if c.callID {
		return ContextWithCallID(ctx)
	}

	return ctx
}

// extras builds the injected format variables shared by all variants.
func (c *config) extras(ctx context.Context, callable string) BoundArgs {
	extras := BoundArgs{c.callableVar: callable}

	if c.callID {
		if id, ok := CallIDFromContext(ctx); ok {
			extras[CallIDVariable] = id
		}
	}

	return extras
}

// buildMessage binds the invocation's arguments, merges the injected extras
// (extras win on name collision) and renders the template.
func (c *config) buildMessage(args Args, extras BoundArgs) (string, error) {
	vars := c.sig.Bind(args)
	for name, value := range extras {
		vars[name] = value
	}

	return c.template.Format(vars)
}

// matches reports whether err belongs to the configured error filter.
// An empty filter matches nothing.
func (c *config) matches(err error) bool {
	for _, matcher := range c.matchers {
		if matcher(err) {
			return true
		}
	}

	return false
}

/***** on-start *****/

// StartWrapper emits one log record before the wrapped callable runs.
type StartWrapper struct {
	cfg *config
}

// OnStart creates a wrapper that binds arguments, formats the message and
// emits a record before invoking the wrapped callable. A formatting failure
// is returned as the call's error and the callable is never invoked.
func OnStart(level Level, message string, sig Signature, opts ...Option) (*StartWrapper, error) {
	cfg, err := newConfig(level, message, sig, opts...)
	if err != nil {
		return nil, err
	}

	return &StartWrapper{cfg: cfg}, nil
}

// Wrap returns a callable that logs on entry and then delegates to fn.
func (w *StartWrapper) Wrap(fn Callable) Callable {
	return w.wrapNamed(callableName(fn), fn)
}

func (w *StartWrapper) wrapNamed(name string, fn Callable) Callable {
	return func(ctx context.Context, args Args) (any, error) {
		ctx = w.cfg.callContext(ctx)

		msg, err := w.cfg.buildMessage(args, w.cfg.extras(ctx, name))
		if err != nil {
			return nil, err
		}

		w.cfg.resolveLogger().Log(ctx, w.cfg.level, msg)

		return fn(ctx, args)
	}
}

/***** on-end *****/

// EndWrapper emits one log record after the wrapped callable returns
// successfully.
type EndWrapper struct {
	cfg *config
}

// OnEnd creates a wrapper that invokes the wrapped callable first and emits
// a record only on a successful return; the returned value is exposed to the
// template as {result} (see WithResultVariable). A returned error passes
// through unlogged and unmodified.
func OnEnd(level Level, message string, sig Signature, opts ...Option) (*EndWrapper, error) {
	cfg, err := newConfig(level, message, sig, opts...)
	if err != nil {
		return nil, err
	}

	return &EndWrapper{cfg: cfg}, nil
}

// Wrap returns a callable that delegates to fn and logs on success.
func (w *EndWrapper) Wrap(fn Callable) Callable {
	return w.wrapNamed(callableName(fn), fn)
}

func (w *EndWrapper) wrapNamed(name string, fn Callable) Callable {
	return func(ctx context.Context, args Args) (any, error) {
		ctx = w.cfg.callContext(ctx)

		result, err := fn(ctx, args)
		if err != nil {
			return result, err
		}

		extras := w.cfg.extras(ctx, name)
		extras[w.cfg.resultVar] = result

		msg, fmtErr := w.cfg.buildMessage(args, extras)
		if fmtErr != nil {
			return nil, fmtErr
		}

		w.cfg.resolveLogger().Log(ctx, w.cfg.level, msg)

		return result, nil
	}
}

/***** on-error *****/

// ErrorWrapper emits one log record when the wrapped callable returns an
// error that belongs to the configured filter.
type ErrorWrapper struct {
	cfg *config
}

// OnError creates a wrapper that invokes the wrapped callable inside a
// protected region. A successful return passes through silently. A returned
// error outside the configured filter (see OnErrors) passes through unlogged
// and unmodified. A matched error is logged exactly once — the error is
// exposed to the template as {e} (see WithErrorVariable) — and then either
// returned unchanged (the default) or swallowed when WithReraise(false) is
// configured, in which case the call returns the absent value.
func OnError(level Level, message string, sig Signature, opts ...Option) (*ErrorWrapper, error) {
	cfg, err := newConfig(level, message, sig, opts...)
	if err != nil {
		return nil, err
	}

	return &ErrorWrapper{cfg: cfg}, nil
}

// Wrap returns a callable that delegates to fn and logs matched errors.
func (w *ErrorWrapper) Wrap(fn Callable) Callable {
	return w.wrapNamed(callableName(fn), fn)
}

func (w *ErrorWrapper) wrapNamed(name string, fn Callable) Callable {
	return func(ctx context.Context, args Args) (any, error) {
		ctx = w.cfg.callContext(ctx)

		result, err := fn(ctx, args)
		if err == nil {
			return result, nil
		}

		if !w.cfg.matches(err) {
			return result, err
		}

		extras := w.cfg.extras(ctx, name)
		extras[w.cfg.errorVar] = err

		msg, fmtErr := w.cfg.buildMessage(args, extras)
		if fmtErr != nil {
			return nil, fmtErr
		}

		w.cfg.resolveLogger().Log(ctx, w.cfg.level, msg)

		if w.cfg.reraise {
			return result, err
		}

		return nil, nil
	}
}

/***** on-exception *****/

// ExceptionWrapper is the OnError specialization that always logs through
// the sink's stack-trace path at error level.
type ExceptionWrapper struct {
	cfg *config
}

// OnException creates an on-error wrapper that emits matched errors through
// Logger.Exception, which attaches a stack trace. The level is fixed at
// LevelError; requesting a different one via WithLevel is a non-fatal
// configuration warning and is ignored.
func OnException(message string, sig Signature, opts ...Option) (*ExceptionWrapper, error) {
	cfg, err := newConfig(LevelError, message, sig, opts...)
	if err != nil {
		return nil, err
	}

	if cfg.levelOverridden && cfg.level != LevelError {
		cfg.warn("the on-exception variant always logs at error level, the requested level is ignored")
	}
	cfg.level = LevelError

	return &ExceptionWrapper{cfg: cfg}, nil
}

// Wrap returns a callable that delegates to fn and logs matched errors with
// a stack trace.
func (w *ExceptionWrapper) Wrap(fn Callable) Callable {
	return w.wrapNamed(callableName(fn), fn)
}

func (w *ExceptionWrapper) wrapNamed(name string, fn Callable) Callable {
	return func(ctx context.Context, args Args) (any, error) {
		ctx = w.cfg.callContext(ctx)

		result, err := fn(ctx, args)
		if err == nil {
			return result, nil
		}

		if !w.cfg.matches(err) {
			return result, err
		}

		extras := w.cfg.extras(ctx, name)
		extras[w.cfg.errorVar] = err

		msg, fmtErr := w.cfg.buildMessage(args, extras)
		if fmtErr != nil {
			return nil, fmtErr
		}

		w.cfg.resolveLogger().Exception(ctx, msg, err)

		if w.cfg.reraise {
			return result, err
		}

		return nil, nil
	}
}

// Compile-time checks that all variants implement Wrapper.
var (
	_ Wrapper = (*StartWrapper)(nil)
	_ Wrapper = (*EndWrapper)(nil)
	_ Wrapper = (*ErrorWrapper)(nil)
	_ Wrapper = (*ExceptionWrapper)(nil)
)
