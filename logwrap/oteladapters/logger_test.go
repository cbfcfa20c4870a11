package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log/noop"

	"github.com/logwrap/logwrap-go/logwrap"
	"github.com/logwrap/logwrap-go/logwrap/oteladapters"
)

func Test_SlogBridgeLogger_WithHandler_Log(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)

	logger.Log(context.Background(), logwrap.LevelDebug, "something happened", "key", "value")

	output := buf.String()
	assert.Contains(t, output, `"level":"DEBUG"`)
	assert.Contains(t, output, `"msg":"something happened"`)
	assert.Contains(t, output, `"key":"value"`)
}

func Test_SlogBridgeLogger_WithHandler_Exception(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, nil)
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)

	logger.Exception(context.Background(), "call failed", pkgerrors.New("broken"))

	output := buf.String()
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, `"msg":"call failed"`)
	assert.Contains(t, output, `"error":"broken"`)
	assert.Contains(t, output, `"exception.stacktrace":`)
}

func Test_SlogBridgeLogger_DoesNotPanicWithGlobalProvider(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLogger("adapter-check")

	assert.NotPanics(t, func() {
		logger.Log(context.Background(), logwrap.LevelInfo, "hello")
		logger.Exception(context.Background(), "boom", pkgerrors.New("broken"))
	})
}

func Test_OTelLogger_DoesNotPanic(t *testing.T) {
	provider := noop.NewLoggerProvider()
	logger := oteladapters.NewOTelLogger(provider.Logger("adapter-check"))

	assert.NotPanics(t, func() {
		logger.Log(context.Background(), logwrap.LevelWarn, "hello", "key", "value", "count", 3)
		logger.Exception(context.Background(), "boom", pkgerrors.New("broken"))
	})
}

func Test_SlogBridgeLogger_AsWrapperSink(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, nil)
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)

	sig, err := logwrap.NewSignature(logwrap.P("name"))
	require.NoError(t, err)

	wrapper, err := logwrap.OnException("greeting {name} failed: {e}", sig,
		logwrap.WithLogger(logger),
		logwrap.OnErrors(logwrap.MatchAll()))
	require.NoError(t, err)

	greet := logwrap.Wrap1(func(_ context.Context, _ string) (string, error) {
		return "", pkgerrors.New("broken")
	}, wrapper)

	_, err = greet(context.Background(), "world")
	require.Error(t, err)

	output := buf.String()
	assert.Contains(t, output, `"msg":"greeting world failed: broken"`)
	assert.Contains(t, output, `"exception.stacktrace":`)
}
