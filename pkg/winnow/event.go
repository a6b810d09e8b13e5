package winnow

import "time"

// Event is one normalized log line. Every field except Message is
// optional: a zero Timestamp, empty string or PID 0 means the field was
// absent or unparseable. Message is never empty — on a parse failure it
// is the entire raw line.
type Event struct {
	Timestamp time.Time
	Host      string
	Process   string
	PID       int
	Message   string
	SrcIP     string
	User      string
}

// FeatureRecord is one row of the feature table: the statistics of a
// single non-empty time window.
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
