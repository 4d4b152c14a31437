package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tidyss/tidyss/internal/inspect"
)

// NewCheckCommand creates and returns the check subcommand
func NewCheckCommand() *cobra.Command {
	var countReads bool

	cmd := &cobra.Command{
		Use:   "check <fastq-file>...",
		Short: "Inspect FASTQ files and print their extracted metadata",
		Long: `Inspect one or more FASTQ files: classify the filename and the first
sequence identifier against the known naming conventions and print the
resulting record as a YAML document, one document per file.

Fields that no pattern extracted are rendered as null. With --reads the
whole file is scanned and the read count included in the record.

Exit code: 0 on success, 1 if any file is missing, unreadable or not a
FASTQ file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args, countReads, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&countReads, "reads", false, "count the reads in each file (reads the whole file)")

	return cmd
}

// runCheck inspects each path in turn, fail-fast: the first unreadable or
// unrecognized file aborts the command.
func runCheck(paths []string, countReads bool, output io.Writer) error {
	for i, path := range paths {
		rec, err := inspect.Inspect(path)
		if err != nil {
			return err
		}

		if countReads {
			n, err := inspect.CountReads(path)
			if err != nil {
				return err
			}
			rec.Reads = &n
		}

		if i > 0 {
			fmt.Fprintln(output, "---")
		}
		data, err := yaml.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to serialize record for %s: %w", path, err)
		}
		if _, err := output.Write(data); err != nil {
			return err
		}
	}
	return nil
}
