package commands

import (
	"fmt"

	"github.com/glimpsovstar/terraform-rum-analysis/internal/extract"
	"github.com/glimpsovstar/terraform-rum-analysis/internal/state"
	"github.com/spf13/cobra"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

var instancesFlags struct {
	resourceType string
	detailed     bool
}

var instancesCmd = &cobra.Command{
	Use:   "instances -r TYPE STATE_FILE",
	Short: "Extract unique instances of one resource type",
	Long: `Extract every instance of one exact resource type from a Terraform state
file and deduplicate instances with identical attribute values. Useful for
types like azuread_group_member where count or for_each expansion produces
many near-identical instances.`,
	Args: cobra.ExactArgs(1),
	RunE: runInstances,
}

func init() {
	instancesCmd.Flags().StringVarP(&instancesFlags.resourceType, "resource-type", "r", "", "Resource type to extract (required)")
	instancesCmd.Flags().BoolVarP(&instancesFlags.detailed, "detailed", "D", false, "Print each unique instance's attributes")
	_ = instancesCmd.MarkFlagRequired("resource-type")
}

func runInstances(cmd *cobra.Command, args []string) error {
	st, err := state.Load(args[0])
	if err != nil {
		return enhanceError("load state file", err)
	}

	recs, err := extract.CollectInstances(st, instancesFlags.resourceType)
	if err != nil {
		return enhanceError("collect instances", err)
	}

	out := cmd.OutOrStdout()
	if len(recs) == 0 {
		fmt.Fprintf(out, "No %s instances found in the state file.\n", instancesFlags.resourceType)
		return nil
	}

	unique := extract.DedupeInstances(recs)

	fmt.Fprintf(out, "%s extraction summary:\n", instancesFlags.resourceType)
	fmt.Fprintf(out, "  Total instances found: %d\n", len(recs))
	fmt.Fprintf(out, "  Unique instances: %d\n", len(unique))

	if instancesFlags.detailed {
		fmt.Fprintln(out, "\nUnique instances:")
		for _, rec := range unique {
			raw, err := ctyjson.Marshal(rec.Attributes, rec.Attributes.Type())
			if err != nil {
				return fmt.Errorf("encode attributes of %s: %w", rec.Address, err)
			}
			fmt.Fprintf(out, "%s: %s\n", rec.Address, raw)
		}
	}
	return nil
}
