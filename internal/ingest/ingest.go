// Package ingest provides the raw-line sources of the pipeline: a file
// reader, a non-recursive directory reader, and a bounded UDP syslog
// listener. Sources produce trimmed, non-blank RawLines; ordering across
// sources is irrelevant because aggregation re-sorts by timestamp.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/crimson-sun/winnow/internal/model"
)

// Config holds source-specific settings. Each source reads only the
// fields it needs.
type Config struct {
	Path        string        // file or directory path
	Host        string        // UDP bind address
	Port        int           // UDP bind port
	MaxLogs     int           // UDP: stop after this many accepted lines
	IdleTimeout time.Duration // UDP: stop after this long without a datagram (0 = never)
}

// Source produces raw log lines from one input. Collect blocks until the
// source is exhausted (or, for UDP, bounded) and returns everything it
// read. Only the fatal conditions of the source abort with an error;
// malformed content degrades silently.
type Source interface {
	Collect(ctx context.Context, cfg Config) ([]model.RawLine, error)
}

// Constructor is a function that creates a new Source instance.
type Constructor func() Source

var registry = map[string]Constructor{}

// Register adds a source constructor under the given name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the source constructor for the given name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown ingest source: %s", name)
	}
	return ctor, nil
}

// Sources returns the names of all registered sources.
func Sources() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
