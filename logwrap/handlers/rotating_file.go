// Package handlers provides slog.Handler implementations for use with the
// WithHandler option.
package handlers

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Supported output formats for the rotating file handler.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Rotation defaults.
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 7
)

var ErrEmptyFilePath = errors.New("empty log file path supplied")

// RotatingFileConfig configures a rotating log file sink.
type RotatingFileConfig struct {
	// FilePath is the path of the active log file. Required.
	FilePath string

	// Format selects the record encoding: "text" (default) or "json".
	Format string

	// Level is the minimum level the handler emits. Defaults to info.
	Level slog.Leveler

	// MaxSizeMB is the maximum size of the active file in megabytes before
	// rotation. Defaults to 100.
	MaxSizeMB int

	// MaxBackups is the number of rotated files to keep. Defaults to 3.
	MaxBackups int

	// MaxAgeDays is the maximum age of rotated files in days. Defaults to 7.
	MaxAgeDays int

	// Compress gzips rotated files.
	Compress bool
}

// NewRotatingFileHandler creates an slog.Handler that writes through an
// automatically rotated log file. The directory of the file is created when
// missing.
func NewRotatingFileHandler(cfg RotatingFileConfig) (slog.Handler, error) {
	if cfg.FilePath == "" {
		return nil, ErrEmptyFilePath
	}

	if dir := filepath.Dir(cfg.FilePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, err
		}
	}

	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = DefaultMaxSizeMB
	}

	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = DefaultMaxBackups
	}

	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = DefaultMaxAgeDays
	}

	var w io.Writer = &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	if cfg.Format == FormatJSON {
		return slog.NewJSONHandler(w, opts), nil
	}

	return slog.NewTextHandler(w, opts), nil
}
