package feature

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/crimson-sun/winnow/internal/model"
)

// Substrings counted per window. Matching is case-insensitive, as the
// auth failures they flag appear capitalized in the wild
// ("Failed password for invalid user ...").
const (
	failedAuthMarker  = "failed password"
	invalidUserMarker = "invalid user"
)

// Aggregate partitions timestamped events into consecutive half-open
// windows of the given length, anchored at the earliest timestamp, and
// returns one FeatureRecord per non-empty window in ascending
// window_start order.
//
// Events without a timestamp cannot be placed and are excluded. Empty
// windows produce no row. An event exactly on a boundary belongs to the
// window starting at that instant.
func Aggregate(events []model.NormalizedEvent, window time.Duration) []model.FeatureRecord {
	timestamped := make([]model.NormalizedEvent, 0, len(events))
	for _, ev := range events {
		if !ev.Timestamp.IsZero() {
			timestamped = append(timestamped, ev)
		}
	}
	if len(timestamped) == 0 {
		return []model.FeatureRecord{}
	}

	sort.SliceStable(timestamped, func(i, j int) bool {
		return timestamped[i].Timestamp.Before(timestamped[j].Timestamp)
	})

	anchor := timestamped[0].Timestamp
	var records []model.FeatureRecord
	start := 0
	for start < len(timestamped) {
		// The window holding this event: [anchor + k*window, anchor + (k+1)*window).
		k := timestamped[start].Timestamp.Sub(anchor) / window
		wStart := anchor.Add(k * window)
		wEnd := wStart.Add(window)

		end := start
		for end < len(timestamped) && timestamped[end].Timestamp.Before(wEnd) {
			end++
		}
		records = append(records, summarize(timestamped[start:end], wStart, wEnd))
		start = end
	}
	return records
}

// summarize computes the feature vector of one non-empty window.
func summarize(events []model.NormalizedEvent, wStart, wEnd time.Time) model.FeatureRecord {
	messages := make([]string, len(events))
	uniqueMsgs := make(map[string]struct{})
	hosts := make(map[string]struct{})
	procs := make(map[string]struct{})
	totalLen := 0
	failedAuth := 0
	invalidUser := 0

	for i, ev := range events {
		messages[i] = ev.Message
		uniqueMsgs[ev.Message] = struct{}{}
		if ev.Host != "" {
			hosts[ev.Host] = struct{}{}
		}
		if ev.Process != "" {
			procs[ev.Process] = struct{}{}
		}
		totalLen += utf8.RuneCountInString(ev.Message)

		lower := strings.ToLower(ev.Message)
		if strings.Contains(lower, failedAuthMarker) {
			failedAuth++
		}
		if strings.Contains(lower, invalidUserMarker) {
			invalidUser++
		}
	}

	return model.FeatureRecord{
		WindowStart:       wStart,
		WindowEnd:         wEnd,
		EventCount:        len(events),
		UniqueMessages:    len(uniqueMsgs),
		DistinctHosts:     len(hosts),
		DistinctProcesses: len(procs),
		AvgMsgLength:      float64(totalLen) / float64(len(events)),
		FailedAuthCount:   failedAuth,
		InvalidUserCount:  invalidUser,
		EntropyTokens:     TokenEntropy(messages),
	}
}
