// Demo of the wrapper library against a small in-memory key-value store.
// It wires every policy variant: entry and exit logging around reads and
// writes, an error filter with re-raise on lookups, the exception variant
// with a stack trace for corrupted entries, and a rotating log file sink.
//
// Run it with:
//
//	go run ./example/demo/cmd -level debug -logfile /tmp/demo.log
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	pkgerrors "github.com/pkg/errors"

	"github.com/logwrap/logwrap-go/logwrap"
	"github.com/logwrap/logwrap-go/logwrap/handlers"
)

var (
	errNotFound  = errors.New("key not found")
	errCorrupted = errors.New("entry corrupted")
)

type store struct {
	entries map[string]string
}

func (s *store) get(_ context.Context, key string) (string, error) {
	value, ok := s.entries[key]
	if !ok {
		return "", errNotFound
	}

	if value == "" {
		return "", pkgerrors.WithStack(errCorrupted)
	}

	return value, nil
}

func (s *store) put(_ context.Context, key, value string) (string, error) {
	s.entries[key] = value
	return value, nil
}

func main() {
	levelName := flag.String("level", "info", "minimum log level (debug, info, warn, error)")
	logFile := flag.String("logfile", "", "optional rotating log file, stderr when empty")
	flag.Parse()

	handler, err := buildHandler(*levelName, *logFile)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	s := &store{entries: map[string]string{"greeting": "hello", "broken": ""}}

	getSig, err := logwrap.NewSignature(logwrap.P("key"))
	if err != nil {
		log.Fatalf("Failed to declare the get signature: %v", err)
	}

	putSig, err := logwrap.NewSignature(logwrap.P("key"), logwrap.P("value"))
	if err != nil {
		log.Fatalf("Failed to declare the put signature: %v", err)
	}

	getStart, err := logwrap.OnStart(logwrap.LevelDebug, "looking up {key} [{call_id}]", getSig,
		logwrap.WithHandler(handler), logwrap.WithCallID())
	if err != nil {
		log.Fatalf("Failed to build the wrapper: %v", err)
	}

	getEnd, err := logwrap.OnEnd(logwrap.LevelInfo, "{key} resolved to {result:q} [{call_id}]", getSig,
		logwrap.WithHandler(handler), logwrap.WithCallID())
	if err != nil {
		log.Fatalf("Failed to build the wrapper: %v", err)
	}

	getMissing, err := logwrap.OnError(logwrap.LevelWarn, "lookup of {key} failed: {e}", getSig,
		logwrap.WithHandler(handler),
		logwrap.OnErrors(logwrap.ErrorIs(errNotFound)),
		logwrap.WithReraise(false))
	if err != nil {
		log.Fatalf("Failed to build the wrapper: %v", err)
	}

	getCorrupted, err := logwrap.OnException("lookup of {key} hit a corrupted entry", getSig,
		logwrap.WithHandler(handler),
		logwrap.OnErrors(logwrap.ErrorIs(errCorrupted)))
	if err != nil {
		log.Fatalf("Failed to build the wrapper: %v", err)
	}

	putEnd, err := logwrap.OnEnd(logwrap.LevelInfo, "stored {value:q} under {key}", putSig,
		logwrap.WithHandler(handler))
	if err != nil {
		log.Fatalf("Failed to build the wrapper: %v", err)
	}

	get := logwrap.Wrap1(s.get, getStart, getMissing, getCorrupted, getEnd)
	put := logwrap.Wrap2(s.put, putEnd)

	ctx := context.Background()

	if _, err := put(ctx, "farewell", "goodbye"); err != nil {
		log.Fatalf("Put failed: %v", err)
	}

	// A hit logs on entry and on success.
	if _, err := get(ctx, "greeting"); err != nil {
		log.Fatalf("Get failed: %v", err)
	}

	// A miss is logged at warn level and swallowed.
	if value, err := get(ctx, "unknown"); err == nil {
		log.Printf("Miss yielded the absent value %q", value)
	}

	// A corrupted entry goes through the exception path with a stack trace.
	if _, err := get(ctx, "broken"); err != nil {
		log.Printf("Corrupted entry re-raised as expected: %v", err)
	}
}

func buildHandler(levelName, logFile string) (slog.Handler, error) {
	level := logwrap.ParseLevel(levelName).SlogLevel()

	if logFile == "" {
		return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}), nil
	}

	return handlers.NewRotatingFileHandler(handlers.RotatingFileConfig{
		FilePath: logFile,
		Format:   handlers.FormatJSON,
		Level:    level,
	})
}
