package logwrap

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Level_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{level: LevelDebug, expected: "debug"},
		{level: LevelInfo, expected: "info"},
		{level: LevelWarn, expected: "warn"},
		{level: LevelError, expected: "error"},
		{level: Level(42), expected: "info"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.level.String())
		})
	}
}

func Test_ParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelWarn, ParseLevel("warn"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"), "unknown names fall back to info")
}

func Test_Level_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelDebug.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LevelInfo.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LevelWarn.SlogLevel())
	assert.Equal(t, slog.LevelError, LevelError.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Level(42).SlogLevel())
}
