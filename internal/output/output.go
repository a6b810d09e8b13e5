// Package output serializes the feature table. The pipeline itself ends
// at []model.FeatureRecord; these writers are the downstream collaborator
// the CLI hands that table to. Both formats preserve the declared column
// names and order exactly, including at zero rows.
package output

import (
	"io"

	"github.com/crimson-sun/winnow/internal/model"
)

// Writer serializes a complete feature table to an io.Writer.
type Writer func(w io.Writer, records []model.FeatureRecord) error
