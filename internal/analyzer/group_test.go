package analyzer

import (
	"testing"

	"github.com/glimpsovstar/terraform-rum-analysis/internal/extract"
	"github.com/google/go-cmp/cmp"
)

func TestGroup_SumsInstanceCounts(t *testing.T) {
	rows := []extract.Row{
		row("root", "aws_instance", "web"),
		row("root", "aws_instance", "web"),
		row("root", "tfe_workspace", "ws"),
	}

	groups := Group(rows)

	want := []extract.Row{
		{Module: "root", ResourceType: "aws_instance", ResourceName: "web", Provider: "aws", InstanceCount: 2},
		{Module: "root", ResourceType: "tfe_workspace", ResourceName: "ws", Provider: "aws", InstanceCount: 1},
	}
	if diff := cmp.Diff(want, groups); diff != "" {
		t.Fatalf("unexpected groups (-want +got):\n%s", diff)
	}
}

func TestGroup_SumConservation(t *testing.T) {
	rows := []extract.Row{
		row("root", "aws_instance", "web"),
		row("root", "aws_instance", "web"),
		row("module.app", "aws_instance", "web"),
		row("root", "aws_s3_bucket", "logs"),
		row("root", "aws_s3_bucket", "logs"),
	}

	groups := Group(rows)

	sum := 0
	for _, g := range groups {
		sum += g.InstanceCount
	}
	if sum != len(rows) {
		t.Fatalf("expected group sums to conserve row count %d, got %d", len(rows), sum)
	}
}

func TestGroup_DistinctTuplesStayApart(t *testing.T) {
	rows := []extract.Row{
		row("root", "aws_instance", "web"),
		row("module.app", "aws_instance", "web"),
		{Module: "root", ResourceType: "aws_instance", ResourceName: "web", Provider: "aws.eu", InstanceCount: 1},
	}

	groups := Group(rows)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups for 3 distinct key tuples, got %d", len(groups))
	}
}

func TestGroup_Empty(t *testing.T) {
	groups := Group(nil)
	if len(groups) != 0 {
		t.Fatalf("expected 0 groups, got %d", len(groups))
	}
}
