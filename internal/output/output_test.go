package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/crimson-sun/winnow/internal/model"
)

func sampleRecords() []model.FeatureRecord {
	start := time.Date(2026, 1, 1, 0, 0, 5, 0, time.UTC)
	return []model.FeatureRecord{
		{
			WindowStart:       start,
			WindowEnd:         start.Add(time.Minute),
			EventCount:        2,
			UniqueMessages:    2,
			DistinctHosts:     1,
			DistinctProcesses: 1,
			AvgMsgLength:      52.5,
			FailedAuthCount:   1,
			InvalidUserCount:  1,
			EntropyTokens:     3.25,
		},
	}
}

func TestWriteCSVHeaderAlwaysPresent(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading csv back: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only for an empty run, got %d rows", len(rows))
	}
	want := model.FeatureColumns()
	for i, col := range rows[0] {
		if col != want[i] {
			t.Errorf("column %d: got %q, want %q", i, col, want[i])
		}
	}
}

func TestWriteCSVRows(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRecords()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading csv back: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	row := rows[1]
	if row[0] != "2026-01-01T00:00:05Z" {
		t.Errorf("expected ISO-8601 window_start, got %q", row[0])
	}
	if row[1] != "2026-01-01T00:01:05Z" {
		t.Errorf("expected ISO-8601 window_end, got %q", row[1])
	}
	if row[2] != "2" {
		t.Errorf("expected event_count 2, got %q", row[2])
	}
	if row[6] != "52.5" {
		t.Errorf("expected avg_msg_length 52.5, got %q", row[6])
	}
	if row[9] != "3.25" {
		t.Errorf("expected entropy_tokens 3.25, got %q", row[9])
	}
}

func TestWriteJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("expected empty array, got %q", got)
	}
}

func TestWriteJSONColumnNames(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleRecords()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding json back: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 record, got %d", len(decoded))
	}
	for _, col := range model.FeatureColumns() {
		if _, ok := decoded[0][col]; !ok {
			t.Errorf("missing column %q in json output", col)
		}
	}
	if decoded[0]["window_start"] != "2026-01-01T00:00:05Z" {
		t.Errorf("expected ISO-8601 timestamp, got %v", decoded[0]["window_start"])
	}
	if decoded[0]["event_count"] != float64(2) {
		t.Errorf("expected event_count 2, got %v", decoded[0]["event_count"])
	}
}
