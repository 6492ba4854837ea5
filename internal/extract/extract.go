package extract

import (
	"github.com/glimpsovstar/terraform-rum-analysis/internal/state"
)

// Options control which rows the extractor keeps.
type Options struct {
	// ResourceType restricts extraction to one exact type when non-empty.
	ResourceType string
	// Keywords, when non-empty, keep only resources whose name contains
	// one of the keywords (case-insensitive).
	Keywords []string
	// ExcludeHashi drops rows from HashiCorp-classified resources.
	// OnlyHashi keeps nothing else. The flags are mutually exclusive at
	// the command boundary; if both reach this point, exclusion wins.
	ExcludeHashi bool
	OnlyHashi    bool
	// HashiPrefixes override the default classification prefixes.
	HashiPrefixes []string
}

// Result carries the filtered rows plus the hashi instance counter.
//
// HashiCount is measured over the eligible (managed, non-housekeeping)
// population before the exclude/only flags are applied, so aggregate
// reports can state how many hashi-origin instances existed even when
// they are dropped from the returned rows.
type Result struct {
	Rows       []Row
	HashiCount int
}

// Extract flattens the eligible resources of a state document and
// applies the configured filters. An absent resources list yields an
// empty result, not an error.
func Extract(st *state.State, opts Options) (*Result, error) {
	res := &Result{Rows: make([]Row, 0)}

	for idx, r := range st.Resources {
		if err := validateIdentity(r, idx); err != nil {
			return nil, err
		}
		if !IsReal(r) {
			continue
		}

		hashi := IsHashi(r, opts.HashiPrefixes)
		if hashi {
			res.HashiCount += len(r.Instances)
		}

		if opts.ResourceType != "" && !MatchesType(r, opts.ResourceType) {
			continue
		}
		if len(opts.Keywords) > 0 && !MatchesKeyword(r.Name, opts.Keywords) {
			continue
		}
		if opts.ExcludeHashi && hashi {
			continue
		}
		if !opts.ExcludeHashi && opts.OnlyHashi && !hashi {
			continue
		}

		for range r.Instances {
			res.Rows = append(res.Rows, newRow(r))
		}
	}

	return res, nil
}
