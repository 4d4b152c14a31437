package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tidyss/tidyss/internal/config"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for tidyss
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tidyss",
		Short: "FASTQ discovery and tidy sample sheets",
		Long: `Tidyss inspects FASTQ sequencing read files, classifying filenames and
sequence identifiers against known naming conventions to extract sample
name, lane, read number, instrument, run and flow-cell metadata.

Discovered files are aggregated into a sample sheet grouped by sample and
read group (flow-cell + lane), serialized as YAML or JSON.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "path to config file (default .tidyss.yaml if present)")
	cmd.PersistentFlags().String("log-level", "", "log verbosity: trace, debug, info, warn, error")

	// Add subcommands
	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewDiscoverCommand())

	return cmd
}

// loadConfig resolves effective configuration for a subcommand: the config
// file layered under any persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}
