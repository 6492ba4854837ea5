package analyzer

// FieldCount is one entry of a frequency table: a distinct field value
// and its occurrence count.
type FieldCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Summary holds aggregated statistics about extracted rows.
type Summary struct {
	TotalInstances  int          `json:"total_instances"`
	UniqueResources int          `json:"unique_resources"`
	UniqueTypes     int          `json:"unique_types"`
	HashiInstances  int          `json:"hashi_instances"`
	ByType          []FieldCount `json:"by_type"`
	ByName          []FieldCount `json:"by_name"`
}

// Config controls aggregation behavior.
type Config struct {
	// HashiCount is the extractor's pre-exclusion hashi instance
	// counter, passed through to the summary.
	HashiCount int
	// ExcludeHashiFromFrequency removes hashi-prefixed types from the
	// frequency tables while leaving the scalar totals computed over
	// the full row set. The two counts do not coincide when hashi
	// resources are present.
	ExcludeHashiFromFrequency bool
	// HashiPrefixes override the default classification prefixes.
	HashiPrefixes []string
}
