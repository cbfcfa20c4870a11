package testdoubles

import (
	"context"
	"sync"

	"github.com/logwrap/logwrap-go/logwrap"
)

// LoggerSpy is a logwrap.Logger implementation that captures emitted records
// for testing the policy wrappers' emission behavior.
type LoggerSpy struct {
	mu      sync.Mutex
	records []SpyLogRecord
}

// SpyLogRecord represents one recorded emission.
type SpyLogRecord struct {
	Level     logwrap.Level
	Message   string
	Err       error
	Exception bool
	Args      []any
	Context   context.Context
}

// NewLoggerSpy creates a new LoggerSpy instance.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{}
}

// Log implements the Logger interface for testing.
func (s *LoggerSpy) Log(ctx context.Context, level logwrap.Level, msg string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{
		Level:   level,
		Message: msg,
		Args:    args,
		Context: ctx,
	})
}

// Exception implements the Logger interface for testing.
func (s *LoggerSpy) Exception(ctx context.Context, msg string, err error, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{
		Level:     logwrap.LevelError,
		Message:   msg,
		Err:       err,
		Exception: true,
		Args:      args,
		Context:   ctx,
	})
}

// Reset clears all recorded emissions.
func (s *LoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
}

// Records returns a copy of all recorded emissions in order.
func (s *LoggerSpy) Records() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.records...)
}

// RecordCount returns the total number of recorded emissions.
func (s *LoggerSpy) RecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// HasLog checks if a record with the given level and message exists.
func (s *LoggerSpy) HasLog(level logwrap.Level, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level == level && record.Message == message {
			return true
		}
	}

	return false
}

// ExceptionRecords returns only the records emitted through the Exception path.
func (s *LoggerSpy) ExceptionRecords() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []SpyLogRecord
	for _, record := range s.records {
		if record.Exception {
			out = append(out, record)
		}
	}

	return out
}

// Compile-time check to ensure LoggerSpy implements the Logger interface.
var _ logwrap.Logger = (*LoggerSpy)(nil)
