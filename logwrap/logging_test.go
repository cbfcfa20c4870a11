package logwrap

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SlogLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.Log(context.Background(), LevelDebug, "something happened", "key", "value")

	output := buf.String()
	assert.Contains(t, output, `"level":"DEBUG"`)
	assert.Contains(t, output, `"msg":"something happened"`)
	assert.Contains(t, output, `"key":"value"`)
}

func Test_SlogLogger_Exception_AttachesErrorAndStack(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	logger.Exception(context.Background(), "call failed", pkgerrors.New("broken"))

	output := buf.String()
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, `"msg":"call failed"`)
	assert.Contains(t, output, `"error":"broken"`)
	assert.Contains(t, output, `"stack":`)
}

func Test_StackTrace_PrefersTheErrorsOwnStack(t *testing.T) {
	err := pkgerrors.New("broken")

	trace := StackTrace(err)

	require.NotEmpty(t, trace)
	assert.Contains(t, trace, "Test_StackTrace_PrefersTheErrorsOwnStack", "the stack captured at the error's origin is used")
}

func Test_StackTrace_FallsBackToTheCurrentGoroutine(t *testing.T) {
	err := context.Canceled

	trace := StackTrace(err)

	assert.NotEmpty(t, trace)
	assert.Contains(t, trace, "goroutine")
}

func Test_GetLogger_MemoizesNamedSinks(t *testing.T) {
	first := GetLogger("memoization-check")
	second := GetLogger("memoization-check")
	other := GetLogger("memoization-check-other")

	assert.Same(t, first, second, "repeated acquisitions of one name share one sink")
	assert.NotSame(t, first, other)
}

func Test_GetLogger_AttachesTheNameAsAttribute(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(previous)

	logger := GetLogger("attribute-check")
	logger.Log(context.Background(), LevelInfo, "hello")

	assert.Contains(t, buf.String(), `"logger":"attribute-check"`)
}
