package logwrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	pkgerrors "github.com/pkg/errors"
)

// DefaultLoggerName is the named sink used when a wrapper is configured with
// neither a Logger, a slog.Handler nor an explicit logger name.
const DefaultLoggerName = "logwrap"

const (
	logAttrError = "error"
	logAttrStack = "stack"
)

// Logger is the external logging facility consumed by the policy wrappers.
// It is deliberately dependency-free so that any logging backend can be
// plugged in: slog (NewSlogLogger), OpenTelemetry (the oteladapters
// subpackage), or a custom implementation.
//
// The variadic args are interpreted as key-value pairs, slog style.
type Logger interface {
	// Log emits one record at the given level.
	Log(ctx context.Context, level Level, msg string, args ...any)

	// Exception emits one record at error level with the failed call's
	// error and a stack trace attached.
	Exception(ctx context.Context, msg string, err error, args ...any)
}

/***** slog-backed Logger *****/

type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger adapts a *slog.Logger to the Logger interface.
// The Exception path attaches the error and a stack trace: the error's own
// stack when it carries one (github.com/pkg/errors style), the current
// goroutine's stack otherwise.
func NewSlogLogger(l *slog.Logger) Logger {
	return &slogLogger{l: l}
}

func (s *slogLogger) Log(ctx context.Context, level Level, msg string, args ...any) {
	s.l.Log(ctx, level.SlogLevel(), msg, args...)
}

func (s *slogLogger) Exception(ctx context.Context, msg string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error(), logAttrStack, StackTrace(err)}
	allArgs = append(allArgs, args...)
	s.l.Log(ctx, slog.LevelError, msg, allArgs...)
}

// stackTracer is the interface of errors created by github.com/pkg/errors.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackTrace renders a stack trace for the Exception path of a Logger
// implementation, preferring the stack captured at the error's origin over
// the stack of the logging call site.
func StackTrace(err error) string {
	var st stackTracer
	if errors.As(err, &st) {
		return fmt.Sprintf("%+v", st.StackTrace())
	}

	return string(debug.Stack())
}

// Ensure slogLogger implements Logger.
var _ Logger = (*slogLogger)(nil)

/***** named sink registry *****/

// loggerRegistry memoizes named sinks so that repeated lazy acquisitions of
// the same name share one Logger. Creation is idempotent and side-effect
// light; the lock only guards the map itself.
var loggerRegistry = struct {
	mu    sync.Mutex
	sinks map[string]Logger
}{sinks: make(map[string]Logger)}

// GetLogger returns the named sink, creating it on first use.
// Created sinks are backed by slog.Default with the name attached as the
// "logger" attribute.
func GetLogger(name string) Logger {
	loggerRegistry.mu.Lock()
	defer loggerRegistry.mu.Unlock()

	if sink, ok := loggerRegistry.sinks[name]; ok {
		return sink
	}

	sink := NewSlogLogger(slog.Default().With("logger", name))
	loggerRegistry.sinks[name] = sink

	return sink
}
