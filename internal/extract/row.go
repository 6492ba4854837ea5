package extract

import (
	"fmt"

	"github.com/glimpsovstar/terraform-rum-analysis/internal/state"
)

// Row is the uniform tabular unit the pipeline operates on: one row
// per resource instance. Field names are the stable export schema, so
// JSON and CSV sinks see identical columns in every operating mode.
type Row struct {
	Module        string `json:"module"`
	ResourceType  string `json:"resource_type"`
	ResourceName  string `json:"resource_name"`
	Provider      string `json:"provider"`
	InstanceCount int    `json:"instance_count"`
}

// StructuralError reports a resource entry that is missing one of its
// identifying fields. It indicates an unsupported document shape (for
// example a plan export) rather than a missing or corrupt file.
type StructuralError struct {
	Index int
	Field string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("resource at index %d is missing required field %q", e.Index, e.Field)
}

// Flatten converts the state document into rows, one per (resource,
// instance) pair, preserving document order. Optional fields get their
// sentinel defaults here; a missing type or name is fatal because those
// are the identifying keys of every downstream stage.
func Flatten(st *state.State) ([]Row, error) {
	rows := make([]Row, 0)
	for idx, r := range st.Resources {
		if err := validateIdentity(r, idx); err != nil {
			return nil, err
		}
		for range r.Instances {
			rows = append(rows, newRow(r))
		}
	}
	return rows, nil
}

func validateIdentity(r state.Resource, idx int) error {
	if r.Type == "" {
		return &StructuralError{Index: idx, Field: "type"}
	}
	if r.Name == "" {
		return &StructuralError{Index: idx, Field: "name"}
	}
	return nil
}

func newRow(r state.Resource) Row {
	module := r.Module
	if module == "" {
		module = state.RootModule
	}
	provider := r.Provider
	if provider == "" {
		provider = state.UnknownProvider
	}
	return Row{
		Module:        module,
		ResourceType:  r.Type,
		ResourceName:  r.Name,
		Provider:      provider,
		InstanceCount: 1,
	}
}
