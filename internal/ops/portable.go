package ops

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mbellows/gigbook/internal/cli"
	"github.com/mbellows/gigbook/internal/model"
)

// ExportJSON writes the collection as a pretty-printed JSON array,
// the same shape as the durable slot and the import format.
func ExportJSON(w io.Writer, gigs []model.Gig) error {
	if gigs == nil {
		gigs = []model.Gig{}
	}
	data, err := json.MarshalIndent(gigs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode gigs: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ExportFileName returns the default backup file name for the given
// day, e.g. my-gigs-backup-2025-06-01.json.
func ExportFileName(now time.Time) string {
	return "my-gigs-backup-" + now.Format("2006-01-02") + ".json"
}

// DecodeImport parses an import payload. The top level must be a JSON
// array of gig-shaped objects; anything else is rejected with a
// ValidationError. Per-record validation happens later, in ReplaceAll
// or MergeImport.
func DecodeImport(data []byte) ([]model.Gig, error) {
	trimmed := strings.TrimSpace(string(data))
	if !strings.HasPrefix(trimmed, "[") {
		return nil, &cli.ValidationError{Message: "import payload must be a JSON array of gigs"}
	}

	var gigs []model.Gig
	if err := json.Unmarshal(data, &gigs); err != nil {
		return nil, &cli.ValidationError{Message: fmt.Sprintf("import payload is not valid JSON: %v", err)}
	}
	return gigs, nil
}
