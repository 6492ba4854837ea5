package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// TextReporter renders a human-readable report.
type TextReporter struct {
	Writer io.Writer
}

// Generate writes the rows as an aligned table, or the summary section
// when one is attached. Empty results get an explicit message rather
// than a bare empty table.
func (r *TextReporter) Generate(data Data) error {
	fmt.Fprintf(r.Writer, "%s %s — %s\n", data.Tool, data.Version, sourceLabel(data.Source))

	if data.Summary != nil {
		return r.writeSummary(data)
	}

	if len(data.Rows) == 0 {
		fmt.Fprintln(r.Writer, "\nNo matching resources found.")
		return nil
	}

	title := "Extracted managed resources"
	if data.Grouped {
		title = "Grouped resources"
	}
	fmt.Fprintf(r.Writer, "\n%s:\n", title)

	w := tabwriter.NewWriter(r.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MODULE\tTYPE\tNAME\tPROVIDER\tINSTANCES")
	for _, row := range data.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			row.Module, row.ResourceType, row.ResourceName, row.Provider, row.InstanceCount)
	}
	return w.Flush()
}

func (r *TextReporter) writeSummary(data Data) error {
	s := data.Summary

	fmt.Fprintln(r.Writer, "\nSummary:")
	if data.Config.OnlyHashi {
		fmt.Fprintf(r.Writer, "  HashiCorp related resource instances: %d\n", s.HashiInstances)
	} else {
		fmt.Fprintf(r.Writer, "  Total resource instances: %d\n", s.TotalInstances)
		fmt.Fprintf(r.Writer, "  HashiCorp related resource instances: %d\n", s.HashiInstances)
	}
	fmt.Fprintf(r.Writer, "  Unique resources: %d\n", s.UniqueResources)
	fmt.Fprintf(r.Writer, "  Unique resource types: %d\n", s.UniqueTypes)

	if s.TotalInstances == 0 {
		fmt.Fprintln(r.Writer, "\nNo matching resources found.")
		return nil
	}

	fmt.Fprintln(r.Writer, "\nResource types by instance count:")
	for _, fc := range s.ByType {
		fmt.Fprintf(r.Writer, "  %-50s %d\n", fc.Value, fc.Count)
	}

	fmt.Fprintln(r.Writer, "\nResource names by instance count:")
	for _, fc := range s.ByName {
		fmt.Fprintf(r.Writer, "  %-50s %d\n", fc.Value, fc.Count)
	}
	return nil
}

func sourceLabel(s Source) string {
	if len(s.Files) == 1 {
		return s.Files[0]
	}
	return fmt.Sprintf("%d state files", len(s.Files))
}
