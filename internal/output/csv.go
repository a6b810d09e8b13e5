package output

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/crimson-sun/winnow/internal/model"
)

// WriteCSV writes the feature table as CSV. The header row is always
// emitted so downstream consumers see a stable schema even for an empty
// run. Timestamps are ISO-8601 (RFC 3339).
func WriteCSV(w io.Writer, records []model.FeatureRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(model.FeatureColumns()); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.WindowStart.Format(time.RFC3339),
			r.WindowEnd.Format(time.RFC3339),
			itoa(r.EventCount),
			itoa(r.UniqueMessages),
			itoa(r.DistinctHosts),
			itoa(r.DistinctProcesses),
			ftoa(r.AvgMsgLength),
			itoa(r.FailedAuthCount),
			itoa(r.InvalidUserCount),
			ftoa(r.EntropyTokens),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
