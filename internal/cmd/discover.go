package cmd

import (
	"fmt"
	"io"
	"regexp"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tidyss/tidyss/internal/config"
	"github.com/tidyss/tidyss/internal/filelock"
	"github.com/tidyss/tidyss/internal/fileutil"
	"github.com/tidyss/tidyss/internal/inspect"
	"github.com/tidyss/tidyss/internal/logger"
	"github.com/tidyss/tidyss/internal/models"
)

// discoverOptions captures the discover subcommand's flags.
type discoverOptions struct {
	out    string
	format string
	filter string
	append string
	loader string
	quiet  bool
}

// NewDiscoverCommand creates and returns the discover subcommand
func NewDiscoverCommand() *cobra.Command {
	var opts discoverOptions

	cmd := &cobra.Command{
		Use:   "discover <path>...",
		Short: "Discover FASTQ files and build a sample sheet",
		Long: `Search one or more paths for FASTQ files (.fastq, .fastq.gz, .fq,
.fq.gz), inspect each file's name and first sequence identifier, and report
what was found.

Without -o, a tab-separated table (filename pattern, seqid pattern, path)
is printed to stdout. With -o, discovered files are aggregated into a
sample sheet grouped by sample and read group and written to the given
path, or to stdout when the path is '-'; the table then goes to stderr
unless -q is set.

Unreadable files inside a tree are skipped with a warning; only a missing
search path aborts the run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runDiscover(cfg, args, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write a sample sheet to this path ('-' for stdout)")
	cmd.Flags().StringVar(&opts.format, "format", "", "sample sheet format: yaml or json (default from config)")
	cmd.Flags().StringVarP(&opts.filter, "filter", "f", "", "regex applied to candidate paths")
	cmd.Flags().StringVarP(&opts.append, "append", "a", "", "merge newly discovered samples into this existing sample sheet")
	cmd.Flags().StringVarP(&opts.loader, "loader", "l", "yaml", "format of the existing sample sheet given to --append")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress the summary table on stderr")

	return cmd
}

// runDiscover walks every root, inspects candidates in deterministic order,
// and emits either the summary table or an aggregated sample sheet.
// Discovery is best-effort: a bad file is skipped with a warning, keeping
// any partial record, so one broken file never voids the run.
func runDiscover(cfg *config.Config, roots []string, opts discoverOptions, stdout, stderr io.Writer) error {
	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	log.Debugf("discovery run %s", uuid.NewString())

	scanOpts := fileutil.ScanOptions{ExtraExtensions: cfg.Extensions}
	if opts.filter != "" {
		re, err := regexp.Compile(opts.filter)
		if err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
		scanOpts.Filter = re
	}

	var records []*models.Record
	for _, root := range roots {
		result, err := fileutil.ScanDirectory(root, scanOpts)
		if err != nil {
			return err
		}
		for _, werr := range result.Errors {
			log.Warnf("%v", werr)
		}

		for _, path := range result.Files {
			rec, err := inspect.Inspect(path)
			if err != nil {
				log.Warnf("%v", err)
				if rec == nil {
					continue
				}
			}
			records = append(records, rec)
		}
	}
	log.Debugf("inspected %d file(s)", len(records))

	if opts.out == "" {
		writeSummary(stdout, records)
		return nil
	}
	if !opts.quiet {
		writeSummary(stderr, records)
	}

	sheet := models.BuildSampleSheet(records, func(c models.Collision) {
		log.Warnf("sample %s readgroup %s read %s: %s replaces %s",
			c.Sample, c.ReadGroup, c.Read, c.Incoming, c.Existing)
	})

	if opts.append != "" {
		existing, err := models.LoadSampleSheet(opts.append, opts.loader)
		if err != nil {
			return err
		}
		existing.Merge(sheet)
		sheet = existing
	}

	format := opts.format
	if format == "" {
		format = cfg.Format
	}
	data, err := sheet.Marshal(format)
	if err != nil {
		return err
	}

	if opts.out == "-" {
		_, err := stdout.Write(data)
		return err
	}

	// Lock around the write so concurrent runs appending to the same
	// sheet serialize cleanly.
	lock := filelock.NewFileLock(opts.out + ".lock")
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	if err := filelock.AtomicWrite(opts.out, data); err != nil {
		return err
	}
	log.Infof("wrote sample sheet with %d sample(s) to %s", len(sheet.Samples), opts.out)
	return nil
}

// writeSummary prints the tab-separated discovery table, header row first.
// Pattern names that did not resolve are printed as null.
func writeSummary(w io.Writer, records []*models.Record) {
	fmt.Fprintln(w, "Filename\tSequenceID\tPath")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			models.StringValue(rec.FilenamePattern, "null"),
			models.StringValue(rec.SeqIDPattern, "null"),
			rec.Path)
	}
}
