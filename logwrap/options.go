package logwrap

import (
	"log/slog"
)

// Default format variable names for the injected extra values.
const (
	DefaultCallableVariable = "callable"
	DefaultResultVariable   = "result"
	DefaultErrorVariable    = "e"
)

// Option defines a functional option for configuring a policy wrapper.
type Option func(*config) error

// WithLogger sets an externally supplied sink for the wrapper.
// It is mutually exclusive with WithHandler; supplying both is a non-fatal
// configuration warning and the handler is ignored.
func WithLogger(logger Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithHandler sets an slog.Handler as the wrapper's output sink, used only
// when no Logger is supplied via WithLogger.
func WithHandler(handler slog.Handler) Option {
	return func(c *config) error {
		c.handler = handler
		return nil
	}
}

// WithLoggerName sets the name of the lazily acquired sink, used when
// neither a Logger nor a handler is supplied. Defaults to DefaultLoggerName.
func WithLoggerName(name string) Option {
	return func(c *config) error {
		if name == "" {
			return ErrEmptyLoggerName
		}

		c.loggerName = name

		return nil
	}
}

// WithLevel overrides the wrapper's log level.
// On the OnException variant the level is fixed at LevelError; requesting a
// different one is a non-fatal configuration warning and is ignored.
func WithLevel(level Level) Option {
	return func(c *config) error {
		c.level = level
		c.levelOverridden = true

		return nil
	}
}

// WithCallableVariable sets the format variable name under which the wrapped
// callable is exposed to the template. Defaults to "callable".
func WithCallableVariable(name string) Option {
	return func(c *config) error {
		if name == "" {
			return ErrEmptyFormatVariable
		}

		c.callableVar = name

		return nil
	}
}

// WithResultVariable sets the format variable name under which the returned
// value is exposed to the template (on-end variant). Defaults to "result".
func WithResultVariable(name string) Option {
	return func(c *config) error {
		if name == "" {
			return ErrEmptyFormatVariable
		}

		c.resultVar = name

		return nil
	}
}

// WithErrorVariable sets the format variable name under which the returned
// error is exposed to the template (on-error variants). Defaults to "e".
func WithErrorVariable(name string) Option {
	return func(c *config) error {
		if name == "" {
			return ErrEmptyFormatVariable
		}

		c.errorVar = name

		return nil
	}
}

// OnErrors configures the error filter of the on-error variants.
// An error is logged only when at least one matcher reports it; a wrapper
// without matchers catches nothing and passes every error through unlogged.
func OnErrors(matchers ...ErrorMatcher) Option {
	return func(c *config) error {
		c.matchers = append(c.matchers, matchers...)
		return nil
	}
}

// WithReraise controls whether a matched, logged error is returned to the
// caller (true, the default) or swallowed, making the wrapped call return
// the absent value for that invocation (false).
func WithReraise(reraise bool) Option {
	return func(c *config) error {
		c.reraise = reraise
		return nil
	}
}

// WithCallID exposes a per-invocation correlation ID to the template as the
// {call_id} format variable. The ID lives in the call's context, so stacked
// wrappers around one invocation share one ID.
func WithCallID() Option {
	return func(c *config) error {
		c.callID = true
		return nil
	}
}
