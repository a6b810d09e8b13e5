package output

import (
	"encoding/json"
	"io"

	"github.com/crimson-sun/winnow/internal/model"
)

// WriteJSON writes the feature table as a record-array JSON document with
// ISO-8601 timestamps (time.Time's RFC 3339 encoding). An empty run
// serializes as "[]", never "null".
func WriteJSON(w io.Writer, records []model.FeatureRecord) error {
	if records == nil {
		records = []model.FeatureRecord{}
	}
	enc := json.NewEncoder(w)
	return enc.Encode(records)
}
