package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initFlags struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a sample config file",
	Long:  `Creates a sample .tfrum.yaml config file in the current directory.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initFlags.force, "force", false, "Overwrite an existing file")
}

const sampleConfig = `# tfrum configuration
# Default output format: text, json, or csv
format: text

# Keyword set used by the keywords command
keywords:
  - demo
  - test
  - temp
  - tmp
  - example

# Resource type prefixes classified as HashiCorp-related
hashi_prefixes:
  - tfe_
  - vault_

# Default row deduplication scope: full or type+name (empty: off)
dedupe: ""
`

func runInit(cmd *cobra.Command, _ []string) error {
	configPath := ".tfrum.yaml"

	if err := writeIfNotExists(configPath, sampleConfig, initFlags.force); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nNext steps:")
	fmt.Fprintln(cmd.OutOrStdout(), "  1. Edit .tfrum.yaml to customize defaults")
	fmt.Fprintln(cmd.OutOrStdout(), "  2. Run: tfrum extract terraform.tfstate")
	return nil
}

func writeIfNotExists(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
