package logwrap

import (
	"log/slog"
)

// Level is the severity at which a policy wrapper emits its log records.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

const (
	levelNameDebug = "debug"
	levelNameInfo  = "info"
	levelNameWarn  = "warn"
	levelNameError = "error"
)

// String returns the lowercase name of the level, "info" for unknown values.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return levelNameDebug
	case LevelInfo:
		return levelNameInfo
	case LevelWarn:
		return levelNameWarn
	case LevelError:
		return levelNameError
	default:
		return levelNameInfo
	}
}

// ParseLevel converts a level name to a Level.
// Unknown names fall back to LevelInfo as a safe default.
func ParseLevel(name string) Level {
	switch name {
	case levelNameDebug:
		return LevelDebug
	case levelNameInfo:
		return LevelInfo
	case levelNameWarn:
		return LevelWarn
	case levelNameError:
		return LevelError
	default:
		return LevelInfo
	}
}

// SlogLevel maps a Level to the equivalent slog.Level.
func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
