package model

import "time"

// FeatureRecord is one row of the output feature table: the statistics of
// a single non-empty time window. Field order matches the column order
// exporters must honor.
type FeatureRecord struct {
	WindowStart       time.Time `json:"window_start"`
	WindowEnd         time.Time `json:"window_end"`
	EventCount        int       `json:"event_count"`
	UniqueMessages    int       `json:"unique_messages"`
	DistinctHosts     int       `json:"distinct_hosts"`
	DistinctProcesses int       `json:"distinct_processes"`
	AvgMsgLength      float64   `json:"avg_msg_length"`
	FailedAuthCount   int       `json:"failed_auth_count"`
	InvalidUserCount  int       `json:"invalid_user_count"`
	EntropyTokens     float64   `json:"entropy_tokens"`
}

// FeatureColumns returns the declared column names in output order. The
// schema is stable even when a run produces zero rows.
func FeatureColumns() []string {
	return []string{
		"window_start",
		"window_end",
		"event_count",
		"unique_messages",
		"distinct_hosts",
		"distinct_processes",
		"avg_msg_length",
		"failed_auth_count",
		"invalid_user_count",
		"entropy_tokens",
	}
}
