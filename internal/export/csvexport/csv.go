// Package csvexport writes tabular exports as CSV attachments.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"net/http"
)

// Document is a flat table ready to be serialized.
type Document struct {
	Headers []string
	Rows    [][]string
}

// WriteHTTP serializes the document to the response as a downloadable
// attachment. Headers must be set before the first row is written, so any
// row-level error after that point can only be surfaced in logs.
func WriteHTTP(w http.ResponseWriter, filename string, doc Document) error {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	cw := csv.NewWriter(w)
	if err := cw.Write(doc.Headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range doc.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
