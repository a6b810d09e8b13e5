// Package pipeline wires ingestion, normalization and window aggregation
// into a strict staged batch: every source is drained into one raw-line
// buffer, the buffer is normalized in insertion order, and only then are
// windows computed.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/crimson-sun/winnow/internal/feature"
	"github.com/crimson-sun/winnow/internal/ingest"
	"github.com/crimson-sun/winnow/internal/model"
	"github.com/crimson-sun/winnow/internal/normalize"
)

// Pipeline accumulates raw lines from any number of sources and computes
// the windowed feature table over the merged stream. Not safe for
// concurrent use.
type Pipeline struct {
	normalizer *normalize.Normalizer
	window     time.Duration
	raw        []model.RawLine
}

// New creates a Pipeline with the given window length.
func New(window time.Duration) *Pipeline {
	return &Pipeline{
		normalizer: normalize.New(),
		window:     window,
	}
}

// Add appends raw lines to the buffer in insertion order. Ordering across
// sources is irrelevant: aggregation re-sorts by timestamp.
func (p *Pipeline) Add(lines []model.RawLine) {
	p.raw = append(p.raw, lines...)
}

// Collect drains a named source into the buffer. Only the source's fatal
// conditions (missing file, unreadable directory, failed bind) surface.
func (p *Pipeline) Collect(ctx context.Context, name string, cfg ingest.Config) error {
	ctor, err := ingest.Get(name)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	lines, err := ctor().Collect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	p.Add(lines)
	return nil
}

// Events normalizes the full buffer and returns one event per raw line.
// This is the single materialization point: no event is windowed before
// every ingestion call has completed.
func (p *Pipeline) Events() []model.NormalizedEvent {
	events := make([]model.NormalizedEvent, len(p.raw))
	for i, line := range p.raw {
		events[i] = p.normalizer.Normalize(line)
	}
	slog.Debug("normalized events", "count", len(events))
	return events
}

// Features runs the remaining stages and returns the feature table. A run
// always completes: timestamp-less input yields zero rows, never an error.
func (p *Pipeline) Features() []model.FeatureRecord {
	records := feature.Aggregate(p.Events(), p.window)
	slog.Info("feature table computed", "raw_lines", len(p.raw), "windows", len(records))
	return records
}
