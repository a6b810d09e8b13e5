package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/crimson-sun/winnow/internal/ingest"
	"github.com/crimson-sun/winnow/internal/model"
)

func rawLines(texts ...string) []model.RawLine {
	lines := make([]model.RawLine, len(texts))
	for i, t := range texts {
		lines[i] = model.RawLine{Source: "test", Text: t}
	}
	return lines
}

func TestPipelineEndToEnd(t *testing.T) {
	p := New(60 * time.Second)
	p.Add(rawLines(
		"Jan 1 00:00:05 host1 sshd[123]: Failed password for invalid user bob from 10.0.0.5 port 22 ssh2",
		"Jan 1 00:00:50 host1 sshd[123]: Accepted password for alice from 10.0.0.6",
	))

	records := p.Features()
	if len(records) != 1 {
		t.Fatalf("expected exactly 1 window, got %d", len(records))
	}
	r := records[0]
	if r.EventCount != 2 {
		t.Errorf("event_count = %d, want 2", r.EventCount)
	}
	if r.FailedAuthCount != 1 {
		t.Errorf("failed_auth_count = %d, want 1", r.FailedAuthCount)
	}
	if r.InvalidUserCount != 1 {
		t.Errorf("invalid_user_count = %d, want 1", r.InvalidUserCount)
	}
	if r.DistinctHosts != 1 {
		t.Errorf("distinct_hosts = %d, want 1", r.DistinctHosts)
	}
	if r.DistinctProcesses != 1 {
		t.Errorf("distinct_processes = %d, want 1", r.DistinctProcesses)
	}
}

func TestPipelineEmptyInput(t *testing.T) {
	p := New(time.Minute)
	records := p.Features()
	if records == nil {
		t.Fatal("expected empty table, got nil")
	}
	if len(records) != 0 {
		t.Fatalf("expected 0 records, got %d", len(records))
	}
}

func TestPipelineTimestamplessInputCompletes(t *testing.T) {
	p := New(time.Minute)
	p.Add(rawLines("no structure here", "none here either"))

	events := p.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	records := p.Features()
	if len(records) != 0 {
		t.Fatalf("expected 0 windows for timestamp-less input, got %d", len(records))
	}
}

func TestPipelineOneEventPerLine(t *testing.T) {
	p := New(time.Minute)
	p.Add(rawLines(
		"Jan 1 00:00:05 host1 sshd[123]: ok",
		"garbage",
		"Jan 1 00:00:06 host2 cron[9]: ran job",
	))
	events := p.Events()
	if len(events) != 3 {
		t.Fatalf("expected one event per raw line, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Message == "" {
			t.Errorf("event %d has an empty message", i)
		}
	}
}

func TestPipelineMergesSourcesBeforeWindowing(t *testing.T) {
	// Two sources added out of chronological order: windowing re-sorts,
	// so the result is identical either way.
	older := rawLines("Jan 1 00:00:05 host1 sshd[1]: a")
	newer := rawLines("Jan 1 00:01:30 host2 sshd[2]: b")

	forward := New(time.Minute)
	forward.Add(older)
	forward.Add(newer)

	backward := New(time.Minute)
	backward.Add(newer)
	backward.Add(older)

	f := forward.Features()
	b := backward.Features()
	if len(f) != len(b) {
		t.Fatalf("window count differs by ingestion order: %d vs %d", len(f), len(b))
	}
	for i := range f {
		if f[i] != b[i] {
			t.Errorf("window %d differs by ingestion order:\n  %+v\n  %+v", i, f[i], b[i])
		}
	}
}

func TestPipelineCollectFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "auth.log")
	content := "Jan 1 00:00:05 host1 sshd[123]: Failed password for invalid user bob from 10.0.0.5 port 22 ssh2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	p := New(time.Minute)
	if err := p.Collect(context.Background(), "file", ingest.Config{Path: path}); err != nil {
		t.Fatalf("collect: %v", err)
	}
	records := p.Features()
	if len(records) != 1 || records[0].EventCount != 1 {
		t.Fatalf("unexpected feature table: %+v", records)
	}
}

func TestPipelineCollectUnknownSource(t *testing.T) {
	p := New(time.Minute)
	if err := p.Collect(context.Background(), "smoke-signal", ingest.Config{}); err == nil {
		t.Fatal("expected an error for an unknown source")
	}
}
