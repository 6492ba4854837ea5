package extract

// Scope selects which fields the deduplicator compares.
type Scope string

const (
	// ScopeFull compares all row fields.
	ScopeFull Scope = "full"
	// ScopeTypeName compares resource_type and resource_name only,
	// collapsing duplicates that differ by module or provider.
	ScopeTypeName Scope = "type+name"
)

// ValidScope reports whether s names a supported dedup scope.
func ValidScope(s Scope) bool {
	return s == ScopeFull || s == ScopeTypeName
}

// Dedupe removes duplicate rows under the given scope, keeping the
// first occurrence in original order. Deduplicating an already
// deduplicated sequence is a no-op.
func Dedupe(rows []Row, scope Scope) []Row {
	seen := make(map[Row]bool, len(rows))
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		key := row
		if scope == ScopeTypeName {
			key = Row{ResourceType: row.ResourceType, ResourceName: row.ResourceName}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, row)
	}
	return out
}
