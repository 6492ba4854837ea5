package commands

import (
	"log/slog"

	"github.com/glimpsovstar/terraform-rum-analysis/internal/config"
	"github.com/glimpsovstar/terraform-rum-analysis/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string
	commit  string
	date    string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tfrum",
	Short: "tfrum — Terraform state resource analysis",
	Long: `tfrum extracts, filters, and aggregates managed resources from raw Terraform
state files. It counts resources under management (RUM), flags throwaway-looking
resources by name keywords, classifies HashiCorp-prefixed resource types, and
groups resources by module, type, name, and provider for export.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)
		loaded, err := config.Load(".")
		if err != nil {
			slog.Warn("Failed to load config file", "error", err)
		} else {
			cfg = loaded
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with injected build info.
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(instancesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
