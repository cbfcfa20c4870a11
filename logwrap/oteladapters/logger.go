// Package oteladapters provides OpenTelemetry implementations of the
// logwrap.Logger interface for users who want plug-and-play trace-correlated
// logging without implementing the interface themselves.
package oteladapters

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log"

	"github.com/logwrap/logwrap-go/logwrap"
)

const (
	attrError = "error"
	attrStack = "exception.stacktrace"
)

// SlogBridgeLogger implements logwrap.Logger using the OpenTelemetry slog
// bridge. This is the recommended implementation as it provides automatic
// trace correlation and works seamlessly with Go's standard log/slog package.
type SlogBridgeLogger struct {
	logger *slog.Logger
}

// NewSlogBridgeLogger creates a Logger backed by the OpenTelemetry slog
// bridge with automatic trace correlation, using the global OpenTelemetry
// LoggerProvider.
func NewSlogBridgeLogger(name string) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: otelslog.NewLogger(name)}
}

// NewSlogBridgeLoggerWithHandler creates a Logger over the provided
// slog.Handler as-is, without OpenTelemetry trace correlation. For trace
// correlation, use NewSlogBridgeLogger instead.
func NewSlogBridgeLoggerWithHandler(handler slog.Handler) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: slog.New(handler)}
}

// Log emits one record at the given level.
func (l *SlogBridgeLogger) Log(ctx context.Context, level logwrap.Level, msg string, args ...any) {
	l.logger.Log(ctx, level.SlogLevel(), msg, args...)
}

// Exception emits one record at error level with the error and its stack
// trace attached.
func (l *SlogBridgeLogger) Exception(ctx context.Context, msg string, err error, args ...any) {
	allArgs := []any{attrError, err.Error(), attrStack, logwrap.StackTrace(err)}
	allArgs = append(allArgs, args...)
	l.logger.Log(ctx, slog.LevelError, msg, allArgs...)
}

// Ensure SlogBridgeLogger implements logwrap.Logger.
var _ logwrap.Logger = (*SlogBridgeLogger)(nil)

// OTelLogger implements logwrap.Logger using the OpenTelemetry logging API
// directly. This provides more control over log record creation but requires
// manual setup of the logger.
type OTelLogger struct {
	logger log.Logger
}

// NewOTelLogger creates a Logger over the OpenTelemetry logging API.
func NewOTelLogger(logger log.Logger) *OTelLogger {
	return &OTelLogger{logger: logger}
}

// Log emits one record at the given level.
func (l *OTelLogger) Log(ctx context.Context, level logwrap.Level, msg string, args ...any) {
	l.emit(ctx, severity(level), msg, args...)
}

// Exception emits one record at error severity with the error and its stack
// trace attached.
func (l *OTelLogger) Exception(ctx context.Context, msg string, err error, args ...any) {
	allArgs := []any{attrError, err.Error(), attrStack, logwrap.StackTrace(err)}
	allArgs = append(allArgs, args...)
	l.emit(ctx, log.SeverityError, msg, allArgs...)
}

// emit creates and emits an OpenTelemetry log record with the given severity.
func (l *OTelLogger) emit(ctx context.Context, sev log.Severity, msg string, args ...any) {
	record := log.Record{}
	record.SetSeverity(sev)
	record.SetBody(log.StringValue(msg))

	// Args come in key-value pairs like slog
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			record.AddAttributes(log.String(key, stringValue(args[i+1])))
		}
	}

	l.logger.Emit(ctx, record)
}

// severity maps a logwrap.Level to an OpenTelemetry severity.
func severity(level logwrap.Level) log.Severity {
	switch level {
	case logwrap.LevelDebug:
		return log.SeverityDebug
	case logwrap.LevelInfo:
		return log.SeverityInfo
	case logwrap.LevelWarn:
		return log.SeverityWarn
	case logwrap.LevelError:
		return log.SeverityError
	default:
		return log.SeverityInfo
	}
}

// stringValue converts any value to string for OpenTelemetry attributes.
func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return slog.AnyValue(v).String()
}

// Ensure OTelLogger implements logwrap.Logger.
var _ logwrap.Logger = (*OTelLogger)(nil)
