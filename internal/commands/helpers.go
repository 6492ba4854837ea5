package commands

import (
	"errors"
	"fmt"

	"github.com/glimpsovstar/terraform-rum-analysis/internal/extract"
	"github.com/glimpsovstar/terraform-rum-analysis/internal/state"
)

// enhanceError wraps an error with context and an operator hint for the
// known failure classes: missing source, undecodable source, and
// unsupported document shape.
func enhanceError(action string, err error) error {
	var hint string
	var structural *extract.StructuralError
	switch {
	case errors.Is(err, state.ErrNotFound):
		hint = "Check the file path, or export the state first: terraform state pull > terraform.tfstate"
	case errors.Is(err, state.ErrMalformed):
		hint = "The file is not valid JSON. tfrum expects a raw terraform.tfstate document"
	case errors.As(err, &structural):
		hint = "The document shape is not a raw state file; plan files and 'terraform show -json' exports are not supported"
	}

	if hint != "" {
		return fmt.Errorf("%s: %w\n  hint: %s", action, err, hint)
	}
	return fmt.Errorf("%s: %w", action, err)
}
