package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvHeader is the stable export schema. Grouped and ungrouped output
// use the same columns so downstream sinks never see a schema change.
var csvHeader = []string{"module", "resource_type", "resource_name", "provider", "instance_count"}

// CSVReporter renders rows as CSV for export.
type CSVReporter struct {
	Writer io.Writer
}

// Generate writes the header and one record per row. An empty result
// produces a header-only file.
func (r *CSVReporter) Generate(data Data) error {
	w := csv.NewWriter(r.Writer)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range data.Rows {
		record := []string{
			row.Module,
			row.ResourceType,
			row.ResourceName,
			row.Provider,
			strconv.Itoa(row.InstanceCount),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
