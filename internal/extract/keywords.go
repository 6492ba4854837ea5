package extract

import (
	"fmt"

	"github.com/glimpsovstar/terraform-rum-analysis/internal/state"
	"github.com/zclconf/go-cty/cty"
)

// KeywordMatch is one instance whose name attribute contains a
// configured keyword, flagging it as a likely throwaway resource.
type KeywordMatch struct {
	ResourceType string
	ResourceName string
	Attributes   cty.Value
}

// MatchKeywords scans every instance in the document for a name
// attribute containing one of the keywords. Instances without a string
// name attribute can never match and are skipped. An empty keyword
// list falls back to the defaults.
func MatchKeywords(st *state.State, keywords []string) ([]KeywordMatch, error) {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}

	var matches []KeywordMatch
	for _, r := range st.Resources {
		for _, inst := range r.Instances {
			name := inst.StringAttr("name")
			if name == "" || !MatchesKeyword(name, keywords) {
				continue
			}
			attrs, err := inst.DecodeAttributes()
			if err != nil {
				return nil, fmt.Errorf("decode attributes of %s.%s: %w", r.Type, r.Name, err)
			}
			matches = append(matches, KeywordMatch{
				ResourceType: r.Type,
				ResourceName: name,
				Attributes:   attrs,
			})
		}
	}
	return matches, nil
}

// DedupeKeywordMatches keeps the first match per (type, name) pair,
// collapsing duplicates that differ only by module or provider.
func DedupeKeywordMatches(matches []KeywordMatch) []KeywordMatch {
	type key struct{ t, n string }
	seen := make(map[key]bool, len(matches))
	out := make([]KeywordMatch, 0, len(matches))
	for _, m := range matches {
		k := key{m.ResourceType, m.ResourceName}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, m)
	}
	return out
}
