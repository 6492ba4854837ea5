package extract

import (
	"strings"

	"github.com/glimpsovstar/terraform-rum-analysis/internal/state"
)

// DefaultKeywords flag resources that look like throwaway or test
// artifacts by their name.
var DefaultKeywords = []string{"demo", "test", "temp", "tmp", "example"}

// DefaultHashiPrefixes classify resource types that belong to the
// HashiCorp provider namespaces billed differently from cloud resources.
var DefaultHashiPrefixes = []string{"tfe_", "vault_"}

// housekeepingTypes are bookkeeping pseudo-resources that never
// represent real infrastructure.
var housekeepingTypes = map[string]bool{
	"terraform_data": true,
	"null_resource":  true,
}

// IsManaged reports whether the resource's lifecycle is controlled by
// Terraform, as opposed to a read-only data lookup.
func IsManaged(r state.Resource) bool {
	return r.Mode == state.ModeManaged
}

// IsHousekeeping reports whether the resource type is a bookkeeping
// pseudo-resource.
func IsHousekeeping(r state.Resource) bool {
	return housekeepingTypes[r.Type]
}

// IsReal is the standard eligibility filter: managed and not a
// housekeeping pseudo-resource.
func IsReal(r state.Resource) bool {
	return IsManaged(r) && !IsHousekeeping(r)
}

// MatchesType reports exact equality on the resource type.
func MatchesType(r state.Resource, target string) bool {
	return r.Type == target
}

// IsHashi reports whether the resource type starts with any of the
// given prefixes. An empty prefix list falls back to the defaults.
func IsHashi(r state.Resource, prefixes []string) bool {
	if len(prefixes) == 0 {
		prefixes = DefaultHashiPrefixes
	}
	for _, p := range prefixes {
		if strings.HasPrefix(r.Type, p) {
			return true
		}
	}
	return false
}

// MatchesKeyword reports whether the lower-cased name contains any of
// the lower-cased keywords as a substring.
func MatchesKeyword(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
