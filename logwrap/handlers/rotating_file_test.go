package handlers_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logwrap/logwrap-go/logwrap"
	"github.com/logwrap/logwrap-go/logwrap/handlers"
)

func Test_NewRotatingFileHandler_RequiresAFilePath(t *testing.T) {
	_, err := handlers.NewRotatingFileHandler(handlers.RotatingFileConfig{})

	assert.ErrorIs(t, err, handlers.ErrEmptyFilePath)
}

func Test_NewRotatingFileHandler_WritesTextRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	handler, err := handlers.NewRotatingFileHandler(handlers.RotatingFileConfig{FilePath: path})
	require.NoError(t, err)

	slog.New(handler).Info("something happened", "key", "value")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "msg=\"something happened\"")
	assert.Contains(t, string(content), "key=value")
}

func Test_NewRotatingFileHandler_WritesJSONRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	handler, err := handlers.NewRotatingFileHandler(handlers.RotatingFileConfig{
		FilePath: path,
		Format:   handlers.FormatJSON,
	})
	require.NoError(t, err)

	slog.New(handler).Error("call failed")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"level":"ERROR"`)
	assert.Contains(t, string(content), `"msg":"call failed"`)
}

func Test_NewRotatingFileHandler_CreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "app.log")

	handler, err := handlers.NewRotatingFileHandler(handlers.RotatingFileConfig{FilePath: path})
	require.NoError(t, err)

	slog.New(handler).Info("hello")

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func Test_NewRotatingFileHandler_HonorsTheLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	handler, err := handlers.NewRotatingFileHandler(handlers.RotatingFileConfig{
		FilePath: path,
		Level:    slog.LevelWarn,
	})
	require.NoError(t, err)

	logger := slog.New(handler)
	logger.Info("filtered out")
	logger.Warn("kept")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "filtered out")
	assert.Contains(t, string(content), "kept")
}

func Test_RotatingFileHandler_AsWrapperSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	handler, err := handlers.NewRotatingFileHandler(handlers.RotatingFileConfig{
		FilePath: path,
		Format:   handlers.FormatJSON,
	})
	require.NoError(t, err)

	sig, err := logwrap.NewSignature(logwrap.P("name"))
	require.NoError(t, err)

	start, err := logwrap.OnStart(logwrap.LevelInfo, "greeting {name}", sig,
		logwrap.WithHandler(handler))
	require.NoError(t, err)

	greet := logwrap.Wrap1(func(_ context.Context, name string) (string, error) {
		return "hello " + name, nil
	}, start)

	_, err = greet(context.Background(), "world")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"greeting world"`)
}
