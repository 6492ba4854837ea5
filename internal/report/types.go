package report

import (
	"time"

	"github.com/glimpsovstar/terraform-rum-analysis/internal/analyzer"
	"github.com/glimpsovstar/terraform-rum-analysis/internal/extract"
)

// Data is the report document handed to a Reporter.
type Data struct {
	Tool      string            `json:"tool"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Source    Source            `json:"source"`
	Config    ReportConfig      `json:"config"`
	Rows      []extract.Row     `json:"rows"`
	Grouped   bool              `json:"grouped,omitempty"`
	Summary   *analyzer.Summary `json:"summary,omitempty"`
}

// Source identifies the state files the rows were extracted from.
type Source struct {
	Files []string `json:"files"`
}

// ReportConfig echoes the filter configuration used for the run.
type ReportConfig struct {
	ResourceType string   `json:"resource_type,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
	ExcludeHashi bool     `json:"exclude_hashi,omitempty"`
	OnlyHashi    bool     `json:"only_hashi,omitempty"`
	Dedupe       string   `json:"dedupe,omitempty"`
}

// Reporter renders report data to its destination.
type Reporter interface {
	Generate(data Data) error
}
