package normalize

import (
	"time"

	"github.com/araddon/dateparse"
)

// stampLayout is the classic year-less BSD syslog timestamp; "_2" accepts
// both "Jan  1" and "Jan 12".
const stampLayout = "Jan _2 15:04:05"

// parseTimestamp converts a timestamp token into a UTC time, returning
// the zero time when nothing fits. The syslog stamp is tried first (with
// the current year injected, since the format carries none), then
// dateparse handles everything else the loose token shape lets through.
func parseTimestamp(token string) time.Time {
	if ts, err := time.Parse(stampLayout, token); err == nil {
		now := time.Now().UTC()
		return time.Date(now.Year(), ts.Month(), ts.Day(), ts.Hour(), ts.Minute(), ts.Second(), 0, time.UTC)
	}
	if ts, err := dateparse.ParseAny(token); err == nil {
		return ts.UTC()
	}
	return time.Time{}
}
