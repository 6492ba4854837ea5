package extract

import (
	"testing"

	"github.com/glimpsovstar/terraform-rum-analysis/internal/state"
)

// scenarioState is the reference document: two managed resources plus
// a housekeeping null_resource and a data lookup.
func scenarioState() *state.State {
	return &state.State{Resources: []state.Resource{
		resource("managed", "aws_instance", "web", 2),
		resource("managed", "tfe_workspace", "ws", 1),
		resource("managed", "null_resource", "dummy", 1),
		resource("data", "aws_ami", "ubuntu", 1),
	}}
}

func TestExtract_Scenario(t *testing.T) {
	res, err := Extract(scenarioState(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(res.Rows))
	}
	if res.HashiCount != 1 {
		t.Fatalf("expected hashi count 1, got %d", res.HashiCount)
	}

	types := make(map[string]bool)
	for _, row := range res.Rows {
		types[row.ResourceType] = true
	}
	if len(types) != 2 {
		t.Fatalf("expected 2 unique types, got %d", len(types))
	}
	if types["null_resource"] {
		t.Fatal("expected null_resource to be excluded")
	}
	if types["aws_ami"] {
		t.Fatal("expected data resource to be excluded")
	}
}

func TestExtract_FilterMonotonicity(t *testing.T) {
	st := scenarioState()
	all, err := Flatten(st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := Extract(st, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Rows) > len(all) {
		t.Fatalf("filtering increased row count: %d > %d", len(res.Rows), len(all))
	}
}

func TestExtract_ExcludeHashi(t *testing.T) {
	res, err := Extract(scenarioState(), Options{ExcludeHashi: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Rows))
	}
	for _, row := range res.Rows {
		if row.ResourceType == "tfe_workspace" {
			t.Fatal("expected tfe_workspace to be excluded")
		}
	}
	// The counter reflects the pre-exclusion population.
	if res.HashiCount != 1 {
		t.Fatalf("expected hashi count 1 despite exclusion, got %d", res.HashiCount)
	}
}

func TestExtract_OnlyHashi(t *testing.T) {
	res, err := Extract(scenarioState(), Options{OnlyHashi: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(res.Rows))
	}
	if res.Rows[0].ResourceType != "tfe_workspace" {
		t.Fatalf("expected tfe_workspace, got %s", res.Rows[0].ResourceType)
	}
	if res.HashiCount != 1 {
		t.Fatalf("expected hashi count 1, got %d", res.HashiCount)
	}
}

func TestExtract_HashiCountIndependentOfFlags(t *testing.T) {
	st := scenarioState()
	for _, opts := range []Options{
		{},
		{ExcludeHashi: true},
		{OnlyHashi: true},
	} {
		res, err := Extract(st, opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.HashiCount != 1 {
			t.Fatalf("opts %+v: expected hashi count 1, got %d", opts, res.HashiCount)
		}
	}
}

func TestExtract_BothFlagsExclusionWins(t *testing.T) {
	res, err := Extract(scenarioState(), Options{ExcludeHashi: true, OnlyHashi: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, row := range res.Rows {
		if row.ResourceType == "tfe_workspace" {
			t.Fatal("expected exclusion to win over only-hashi")
		}
	}
	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Rows))
	}
}

func TestExtract_ResourceTypeFilter(t *testing.T) {
	res, err := Extract(scenarioState(), Options{ResourceType: "aws_instance"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Rows))
	}
	for _, row := range res.Rows {
		if row.ResourceType != "aws_instance" {
			t.Fatalf("expected only aws_instance rows, got %s", row.ResourceType)
		}
	}
}

func TestExtract_KeywordFilter(t *testing.T) {
	st := &state.State{Resources: []state.Resource{
		resource("managed", "aws_s3_bucket", "demo-bucket", 1),
		resource("managed", "aws_s3_bucket", "prod-bucket", 1),
		resource("managed", "aws_instance", "Test-VM", 1),
	}}

	res, err := Extract(st, Options{Keywords: DefaultKeywords})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Rows))
	}
	for _, row := range res.Rows {
		if row.ResourceName == "prod-bucket" {
			t.Fatal("expected prod-bucket not to match")
		}
	}
}

func TestExtract_EmptyResources(t *testing.T) {
	res, err := Extract(&state.State{}, Options{})
	if err != nil {
		t.Fatalf("expected empty result, got error: %v", err)
	}
	if len(res.Rows) != 0 {
		t.Fatalf("expected 0 rows, got %d", len(res.Rows))
	}
	if res.HashiCount != 0 {
		t.Fatalf("expected hashi count 0, got %d", res.HashiCount)
	}
}

func TestExtract_StructuralError(t *testing.T) {
	st := &state.State{Resources: []state.Resource{
		{Mode: "managed", Type: "aws_instance", Instances: instances(1)},
	}}
	if _, err := Extract(st, Options{}); err == nil {
		t.Fatal("expected structural error for missing name")
	}
}
