package commands

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/glimpsovstar/terraform-rum-analysis/internal/analyzer"
	"github.com/glimpsovstar/terraform-rum-analysis/internal/extract"
	"github.com/glimpsovstar/terraform-rum-analysis/internal/report"
	"github.com/glimpsovstar/terraform-rum-analysis/internal/state"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// loadConcurrency caps how many state files are read and extracted at once.
const loadConcurrency = 4

var extractFlags struct {
	resourceType  string
	keywords      []string
	excludeHashi  bool
	onlyHashi     bool
	group         bool
	count         bool
	aggregate     bool
	dedupe        string
	hashiPrefixes []string
	format        string
	outputFile    string
}

var extractCmd = &cobra.Command{
	Use:   "extract [flags] STATE_FILE...",
	Short: "Extract managed resources from Terraform state files",
	Long: `Extract managed resource instances from one or more raw Terraform state
files. Data resources and housekeeping pseudo-resources (terraform_data,
null_resource) are excluded. Results can be filtered, deduplicated, grouped,
aggregated, and exported as text, JSON, or CSV.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractFlags.resourceType, "resource-type", "r", "", "Restrict extraction to one exact resource type")
	extractCmd.Flags().StringSliceVar(&extractFlags.keywords, "keywords", nil, "Keep only resources whose name contains one of these keywords")
	extractCmd.Flags().BoolVar(&extractFlags.excludeHashi, "exclude-hashi", false, "Exclude HashiCorp-prefixed resources (tfe_, vault_)")
	extractCmd.Flags().BoolVar(&extractFlags.onlyHashi, "only-hashi", false, "Only show HashiCorp-prefixed resources")
	extractCmd.Flags().BoolVarP(&extractFlags.group, "group", "G", false, "Group by module, type, name, and provider")
	extractCmd.Flags().BoolVarP(&extractFlags.count, "count", "n", false, "Only print the number of resource instances")
	extractCmd.Flags().BoolVarP(&extractFlags.aggregate, "aggregate", "A", false, "Print aggregate statistics instead of rows")
	extractCmd.Flags().StringVar(&extractFlags.dedupe, "dedupe", "", "Deduplicate rows: full or type+name")
	extractCmd.Flags().StringSliceVar(&extractFlags.hashiPrefixes, "hashi-prefixes", nil, "Override HashiCorp type prefixes")
	extractCmd.Flags().StringVar(&extractFlags.format, "format", "text", "Output format: text, json, csv")
	extractCmd.Flags().StringVarP(&extractFlags.outputFile, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.MarkFlagsMutuallyExclusive("exclude-hashi", "only-hashi")
}

func runExtract(cmd *cobra.Command, args []string) error {
	applyConfigDefaults()

	if extractFlags.dedupe != "" && !extract.ValidScope(extract.Scope(extractFlags.dedupe)) {
		return fmt.Errorf("unsupported dedupe scope: %s (use full or type+name)", extractFlags.dedupe)
	}

	opts := extract.Options{
		ResourceType:  extractFlags.resourceType,
		Keywords:      extractFlags.keywords,
		ExcludeHashi:  extractFlags.excludeHashi,
		OnlyHashi:     extractFlags.onlyHashi,
		HashiPrefixes: extractFlags.hashiPrefixes,
	}

	// Aggregate mode keeps its scalar totals over the full eligible set:
	// the hashi exclusion then applies to the frequency tables only.
	excludeHashiFromFrequency := extractFlags.aggregate && opts.ExcludeHashi
	if excludeHashiFromFrequency {
		opts.ExcludeHashi = false
	}

	results, err := extractAll(args, opts)
	if err != nil {
		return enhanceError("extract resources", err)
	}

	rows := make([]extract.Row, 0)
	hashiCount := 0
	for _, res := range results {
		rows = append(rows, res.Rows...)
		hashiCount += res.HashiCount
	}
	slog.Debug("Extraction complete", "files", len(args), "rows", len(rows), "hashi_instances", hashiCount)

	if extractFlags.dedupe != "" {
		rows = extract.Dedupe(rows, extract.Scope(extractFlags.dedupe))
	}

	if extractFlags.count {
		fmt.Fprintf(cmd.OutOrStdout(), "Total number of resource instances: %d\n", len(rows))
		return nil
	}

	data := report.Data{
		Tool:      "tfrum",
		Version:   version,
		Timestamp: time.Now().UTC(),
		Source:    report.Source{Files: args},
		Config: report.ReportConfig{
			ResourceType: extractFlags.resourceType,
			Keywords:     extractFlags.keywords,
			ExcludeHashi: extractFlags.excludeHashi,
			OnlyHashi:    extractFlags.onlyHashi,
			Dedupe:       extractFlags.dedupe,
		},
		Rows: rows,
	}

	if extractFlags.aggregate {
		data.Summary = analyzer.Analyze(rows, analyzer.Config{
			HashiCount:                hashiCount,
			ExcludeHashiFromFrequency: excludeHashiFromFrequency,
			HashiPrefixes:             extractFlags.hashiPrefixes,
		})
	}

	if extractFlags.group {
		data.Rows = analyzer.Group(data.Rows)
		data.Grouped = true
	}

	reporter, err := selectReporter(extractFlags.format, extractFlags.outputFile)
	if err != nil {
		return err
	}
	return reporter.Generate(data)
}

// extractAll loads and extracts the given state files concurrently,
// keeping results in argument order. Each file's pipeline runs
// synchronously; only the per-file work is parallel.
func extractAll(paths []string, opts extract.Options) ([]*extract.Result, error) {
	results := make([]*extract.Result, len(paths))

	var g errgroup.Group
	g.SetLimit(loadConcurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			st, err := state.Load(path)
			if err != nil {
				return err
			}
			res, err := extract.Extract(st, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func applyConfigDefaults() {
	if extractFlags.format == "text" && cfg.Format != "" {
		extractFlags.format = cfg.Format
	}
	if len(extractFlags.hashiPrefixes) == 0 && len(cfg.HashiPrefixes) > 0 {
		extractFlags.hashiPrefixes = cfg.HashiPrefixes
	}
	if extractFlags.dedupe == "" && cfg.Dedupe != "" {
		extractFlags.dedupe = cfg.Dedupe
	}
}

func selectReporter(format, outputFile string) (report.Reporter, error) {
	w := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, fmt.Errorf("create output file: %w", err)
		}
		w = f
	}

	switch format {
	case "text":
		return &report.TextReporter{Writer: w}, nil
	case "json":
		return &report.JSONReporter{Writer: w}, nil
	case "csv":
		return &report.CSVReporter{Writer: w}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use text, json, or csv)", format)
	}
}
