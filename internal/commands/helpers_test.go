package commands

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glimpsovstar/terraform-rum-analysis/internal/extract"
	"github.com/glimpsovstar/terraform-rum-analysis/internal/state"
)

func TestEnhanceError_NotFound(t *testing.T) {
	err := enhanceError("load state file", fmt.Errorf("%w: missing.tfstate", state.ErrNotFound))
	if !errors.Is(err, state.ErrNotFound) {
		t.Fatal("expected wrapped error to keep its identity")
	}
	if !strings.Contains(err.Error(), "hint:") {
		t.Fatal("expected a hint for missing files")
	}
	if !strings.Contains(err.Error(), "terraform state pull") {
		t.Fatalf("expected state pull hint, got %v", err)
	}
}

func TestEnhanceError_Malformed(t *testing.T) {
	err := enhanceError("load state file", fmt.Errorf("%w: bad.tfstate", state.ErrMalformed))
	if !strings.Contains(err.Error(), "not valid JSON") {
		t.Fatalf("expected malformed hint, got %v", err)
	}
}

func TestEnhanceError_Structural(t *testing.T) {
	err := enhanceError("extract resources", &extract.StructuralError{Index: 3, Field: "type"})
	if !strings.Contains(err.Error(), "not a raw state file") {
		t.Fatalf("expected document shape hint, got %v", err)
	}

	var structural *extract.StructuralError
	if !errors.As(err, &structural) {
		t.Fatal("expected wrapped error to keep its type")
	}
}

func TestEnhanceError_Unknown(t *testing.T) {
	err := enhanceError("extract resources", errors.New("boom"))
	if strings.Contains(err.Error(), "hint:") {
		t.Fatalf("expected no hint for unknown errors, got %v", err)
	}
	if !strings.Contains(err.Error(), "extract resources: boom") {
		t.Fatalf("expected action prefix, got %v", err)
	}
}
