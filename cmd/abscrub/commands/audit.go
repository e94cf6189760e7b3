package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/abscrub/internal/logger"
	"github.com/jmylchreest/abscrub/pkg/audit"
	"github.com/jmylchreest/abscrub/pkg/corpus"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect cleaner output against the raw abstracts",
	Long: `Audit commands walk records one at a time. After each record a rule
line with the record index is printed; press Enter to continue or type
anything and press Enter to stop.`,
}

var auditDiffCmd = &cobra.Command{
	Use:   "diff [file...]",
	Short: "Show a unified diff for every abstract the cleaner modified",
	Long: `Clean the abstracts and show a unified line diff (raw -> cleaned) for
every record whose text changed.

Examples:
  abscrub audit diff -i day1.tsv
  abscrub audit diff -i day1.tsv --start 1200 --preset audit
  abscrub audit diff -i day1.tsv --non-interactive --format json -o diffs.json`,
	RunE: runAuditDiff,
}

var auditSearchCmd = &cobra.Command{
	Use:   "search PATTERN [file...]",
	Short: "Walk the abstracts matching a pattern",
	Long: `Print every raw abstract matching PATTERN. The pattern uses the
cleaner's flags: case-insensitive, multiline, dot matches newline and
whitespace ignored (escape literal spaces as '\ ').

Example:
  abscrub audit search -i day1.tsv 'supported\ by'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAuditSearch,
}

var auditExtractCmd = &cobra.Command{
	Use:   "extract PATTERN [file...]",
	Short: "Extract capture groups from every abstract",
	Long: `Collect the capture groups of every occurrence of PATTERN across the raw
abstracts, one row per (record index, occurrence). Occurrences where a
group did not participate are skipped.

Example:
  abscrub audit extract -i day1.tsv '(\d+)\ mice' --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAuditExtract,
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(auditDiffCmd, auditSearchCmd, auditExtractCmd)

	auditCmd.PersistentFlags().Bool("plain", false, "disable colored output")

	flags := auditDiffCmd.Flags()
	flags.Int("start", 0, "skip modified records with a smaller index")
	flags.Bool("non-interactive", false, "write all diffs instead of prompting")
	flags.StringP("output", "o", "", "output file for --non-interactive (default: stdout)")
	flags.String("format", "json", "output format for --non-interactive: tsv, json, jsonl, yaml")

	flags = auditExtractCmd.Flags()
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "tsv", "output format: tsv, json, jsonl, yaml")
}

// loadTable reads the inputs without cleaning them.
func loadTable(ctx context.Context, cmd *cobra.Command, args []string) (*corpus.Table, error) {
	paths, err := inputs(cmd, args)
	if err != nil {
		return nil, err
	}
	t, err := corpus.LoadTSV(ctx, paths...)
	if err != nil {
		logError("%v", err)
		return nil, err
	}
	if !t.HasColumn(corpus.AbstractColumn) {
		err := corpus.ErrMissingField
		logError("%v: column %q", err, corpus.AbstractColumn)
		return nil, err
	}
	return t, nil
}

// newAuditor builds an interactive auditor on stdin/stdout.
func newAuditor(cmd *cobra.Command) *audit.Auditor {
	var opts []audit.Option
	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		opts = append(opts, audit.WithPlain())
	}
	return audit.New(os.Stdout, audit.NewLinePrompter(os.Stdin), opts...)
}

func runAuditDiff(cmd *cobra.Command, args []string) error {
	setup()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	t, err := loadTable(ctx, cmd, args)
	if err != nil {
		return err
	}
	cfg, err := buildConfig()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}
	c, err := corpus.NewCleaner(cfg)
	if err != nil {
		return err
	}

	t = t.DropMissing(corpus.AbstractColumn)
	raw := t.Column(corpus.AbstractColumn)
	cleaned, stats := c.CleanText(t.Records)
	logger.Debug("cleaning stats", "matches", stats.TotalMatches(), "funding_exempt", stats.FundingExempt)

	if nonInteractive, _ := cmd.Flags().GetBool("non-interactive"); nonInteractive {
		diffs, err := audit.Diffs(raw, cleaned)
		if err != nil {
			logError("%v", err)
			return err
		}
		writer, closeWriter, err := openWriter(cmd)
		if err != nil {
			return err
		}
		items := make([]any, len(diffs))
		for i, d := range diffs {
			items[i] = d
		}
		if err := writer.WriteAll(items); err != nil {
			_ = closeWriter()
			return err
		}
		logInfo("%d modified documents", len(diffs))
		return closeWriter()
	}

	start, _ := cmd.Flags().GetInt("start")
	shown, err := newAuditor(cmd).CheckClean(raw, cleaned, start)
	logger.Debug("audit diff finished", "shown", shown)
	return err
}

func runAuditSearch(cmd *cobra.Command, args []string) error {
	setup()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	t, err := loadTable(ctx, cmd, args[1:])
	if err != nil {
		return err
	}
	shown, err := newAuditor(cmd).SearchText(t, args[0])
	if err != nil {
		logError("%v", err)
		return err
	}
	logger.Debug("audit search finished", "shown", shown)
	return nil
}

func runAuditExtract(cmd *cobra.Command, args []string) error {
	setup()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	t, err := loadTable(ctx, cmd, args[1:])
	if err != nil {
		return err
	}
	extracts, err := audit.ExtractText(t, args[0])
	if err != nil {
		logError("%v", err)
		return err
	}

	writer, closeWriter, err := openWriter(cmd)
	if err != nil {
		return err
	}
	items := make([]any, len(extracts))
	for i, e := range extracts {
		items[i] = e
	}
	if err := writer.WriteAll(items); err != nil {
		_ = closeWriter()
		return err
	}
	logInfo("%d matches", len(extracts))
	return closeWriter()
}
