package analyzer

import (
	"sort"
	"strings"

	"github.com/glimpsovstar/terraform-rum-analysis/internal/extract"
)

// Analyze computes scalar totals and frequency tables over extracted
// rows. Scalars always cover the full input; the frequency tables
// cover the policy-filtered subset when an exclusion policy is active.
func Analyze(rows []extract.Row, cfg Config) *Summary {
	summary := &Summary{
		TotalInstances: len(rows),
		HashiInstances: cfg.HashiCount,
	}

	names := make(map[string]bool)
	types := make(map[string]bool)
	for _, row := range rows {
		names[row.ResourceName] = true
		types[row.ResourceType] = true
	}
	summary.UniqueResources = len(names)
	summary.UniqueTypes = len(types)

	freqRows := rows
	if cfg.ExcludeHashiFromFrequency {
		prefixes := cfg.HashiPrefixes
		if len(prefixes) == 0 {
			prefixes = extract.DefaultHashiPrefixes
		}
		freqRows = make([]extract.Row, 0, len(rows))
		for _, row := range rows {
			if hasAnyPrefix(row.ResourceType, prefixes) {
				continue
			}
			freqRows = append(freqRows, row)
		}
	}

	summary.ByType = frequency(freqRows, func(r extract.Row) string { return r.ResourceType })
	summary.ByName = frequency(freqRows, func(r extract.Row) string { return r.ResourceName })

	return summary
}

// frequency builds a value -> count table ordered by descending count,
// ties broken by first appearance.
func frequency(rows []extract.Row, field func(extract.Row) string) []FieldCount {
	counts := make(map[string]int, len(rows))
	order := make([]string, 0, len(rows))
	for _, row := range rows {
		v := field(row)
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	table := make([]FieldCount, 0, len(order))
	for _, v := range order {
		table = append(table, FieldCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})
	return table
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
