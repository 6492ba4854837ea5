package report

import (
	"encoding/json"
	"io"
)

// JSONReporter renders the full report document as indented JSON.
type JSONReporter struct {
	Writer io.Writer
}

// Generate writes the report data as JSON.
func (r *JSONReporter) Generate(data Data) error {
	enc := json.NewEncoder(r.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
