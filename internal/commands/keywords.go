package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/glimpsovstar/terraform-rum-analysis/internal/extract"
	"github.com/glimpsovstar/terraform-rum-analysis/internal/state"
	"github.com/spf13/cobra"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

var keywordsFlags struct {
	keywords   []string
	attributes bool
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords [flags] STATE_FILE",
	Short: "Find throwaway-looking resources by name keywords",
	Long: `Scan a Terraform state file for resource instances whose name attribute
contains one of the keywords (default: demo, test, temp, tmp, example).
Such resources are often ephemeral leftovers worth monitoring or cleaning up,
and their workspaces may be candidates for Terraform Cloud ephemeral workspaces.`,
	Args: cobra.ExactArgs(1),
	RunE: runKeywords,
}

func init() {
	keywordsCmd.Flags().StringSliceVar(&keywordsFlags.keywords, "keywords", nil, "Override the default keyword set")
	keywordsCmd.Flags().BoolVarP(&keywordsFlags.attributes, "attributes", "D", false, "Include decoded attributes for each match")
}

func runKeywords(cmd *cobra.Command, args []string) error {
	keywords := keywordsFlags.keywords
	if len(keywords) == 0 {
		keywords = cfg.Keywords
	}
	if len(keywords) == 0 {
		keywords = extract.DefaultKeywords
	}

	st, err := state.Load(args[0])
	if err != nil {
		return enhanceError("load state file", err)
	}

	matches, err := extract.MatchKeywords(st, keywords)
	if err != nil {
		return enhanceError("match keywords", err)
	}
	unique := extract.DedupeKeywordMatches(matches)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Keywords used for filtering: %s\n", strings.Join(keywords, ", "))

	if len(matches) == 0 {
		fmt.Fprintln(out, "\nNo matching resources found.")
		return nil
	}

	typeCounts := make(map[string]int)
	typeOrder := make([]string, 0)
	for _, m := range unique {
		if typeCounts[m.ResourceType] == 0 {
			typeOrder = append(typeOrder, m.ResourceType)
		}
		typeCounts[m.ResourceType]++
	}

	fmt.Fprintf(out, "Total matching instances: %d\n", len(matches))
	fmt.Fprintf(out, "Unique matching instances: %d\n", len(unique))
	fmt.Fprintf(out, "Unique resource types: %d\n", len(typeOrder))
	fmt.Fprintln(out, "Matches per resource type:")
	for _, t := range typeOrder {
		fmt.Fprintf(out, "  %-50s %d\n", t, typeCounts[t])
	}

	fmt.Fprintln(out, "\nUnique matching resources:")
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tNAME")
	for _, m := range unique {
		fmt.Fprintf(w, "%s\t%s\n", m.ResourceType, m.ResourceName)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if keywordsFlags.attributes {
		fmt.Fprintln(out, "\nAttributes:")
		for _, m := range unique {
			raw, err := ctyjson.Marshal(m.Attributes, m.Attributes.Type())
			if err != nil {
				return fmt.Errorf("encode attributes of %s %q: %w", m.ResourceType, m.ResourceName, err)
			}
			fmt.Fprintf(out, "%s %q: %s\n", m.ResourceType, m.ResourceName, raw)
		}
	}
	return nil
}
