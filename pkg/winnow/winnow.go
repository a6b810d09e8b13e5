package winnow

import (
	"context"
	"io"
	"time"

	"github.com/crimson-sun/winnow/internal/ingest"
	"github.com/crimson-sun/winnow/internal/model"
	"github.com/crimson-sun/winnow/internal/output"
	"github.com/crimson-sun/winnow/internal/pipeline"
)

// Pipeline is the public batch pipeline: chain any number of Ingest*
// calls, then read Events or Features. Not safe for concurrent use.
type Pipeline struct {
	p    *pipeline.Pipeline
	opts options
}

// New creates a Pipeline.
func New(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{
		p:    pipeline.New(o.window),
		opts: o,
	}
}

// IngestFile reads one log file into the pipeline. A missing or
// unreadable file is an error; undecodable bytes and blank lines are
// dropped silently.
func (pl *Pipeline) IngestFile(path string) error {
	return pl.p.Collect(context.Background(), "file", ingest.Config{Path: path})
}

// IngestDir reads every regular file directly inside a directory
// (non-recursive) into the pipeline.
func (pl *Pipeline) IngestDir(path string) error {
	return pl.p.Collect(context.Background(), "dir", ingest.Config{Path: path})
}

// IngestUDP listens for syslog datagrams until the configured max-log
// count, the idle timeout, or ctx cancellation. Failing to bind is an
// error; everything after a successful bind degrades instead of failing.
func (pl *Pipeline) IngestUDP(ctx context.Context) error {
	return pl.p.Collect(ctx, "udp", ingest.Config{
		Host:        pl.opts.udpHost,
		Port:        pl.opts.udpPort,
		MaxLogs:     pl.opts.udpMaxLogs,
		IdleTimeout: pl.opts.udpIdleTimeout,
	})
}

// Events returns one normalized event per ingested line, in insertion
// order.
func (pl *Pipeline) Events() []Event {
	internal := pl.p.Events()
	events := make([]Event, len(internal))
	for i, ev := range internal {
		events[i] = Event(ev)
	}
	return events
}

// Features computes and returns the windowed feature table. Timestamp-less
// input yields an empty (never nil) table.
func (pl *Pipeline) Features() []FeatureRecord {
	internal := pl.p.Features()
	records := make([]FeatureRecord, len(internal))
	for i, r := range internal {
		records[i] = FeatureRecord(r)
	}
	return records
}

// ExportCSV writes the feature table as CSV, header always included.
func (pl *Pipeline) ExportCSV(w io.Writer) error {
	return output.WriteCSV(w, pl.p.Features())
}

// ExportJSON writes the feature table as a JSON record array with
// ISO-8601 timestamps.
func (pl *Pipeline) ExportJSON(w io.Writer) error {
	return output.WriteJSON(w, pl.p.Features())
}

// FeatureColumns returns the declared output column names in order; the
// schema holds even for a zero-row table.
func FeatureColumns() []string {
	return model.FeatureColumns()
}

// FeaturesFromFiles ingests the given files and returns the feature
// table in one call.
func FeaturesFromFiles(paths []string, window time.Duration) ([]FeatureRecord, error) {
	p := New(WithWindow(window))
	for _, path := range paths {
		if err := p.IngestFile(path); err != nil {
			return nil, err
		}
	}
	return p.Features(), nil
}
