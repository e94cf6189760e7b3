package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/abscrub/internal/logger"
	"github.com/jmylchreest/abscrub/pkg/corpus"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file...]",
	Short: "Clean the abstracts of one or more TSV exports",
	Long: `Load TSV exports (concatenated in order, reindexed from 0), drop
records without an abstract, clean every abstract and drop records whose
cleaned text is empty. The output carries all input columns plus
abstract_text__has_authors, abstract_text__is_cleaned and
abstract_text__cleaned.

Examples:
  abscrub clean -i day1.tsv -i day2.tsv -o cleaned.tsv
  abscrub clean -i day1.tsv --format jsonl --preset audit
  abscrub clean -i day1.tsv --no-clean --format yaml`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()
	flags.Bool("no-clean", false, "skip cleaning (no derived columns)")
	flags.Bool("no-drop", false, "keep records without an abstract or with an empty cleaned text")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "tsv", "output format: tsv, json, jsonl, yaml")
	flags.Bool("report", false, "print the per-phase match statistics")
}

func runClean(cmd *cobra.Command, args []string) error {
	setup()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	paths, err := inputs(cmd, args)
	if err != nil {
		return err
	}
	logger.Debug("inputs", "count", len(paths), "paths", paths)

	cfg, err := buildConfig()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}
	noClean, _ := cmd.Flags().GetBool("no-clean")
	noDrop, _ := cmd.Flags().GetBool("no-drop")
	cfg.Clean = !noClean
	cfg.Drop = !noDrop

	table, report, err := corpus.GetData(ctx, paths, cfg)
	if err != nil {
		logError("%v", err)
		return err
	}

	writer, closeWriter, err := openWriter(cmd)
	if err != nil {
		return err
	}
	if err := writer.WriteAll(table.Rows()); err != nil {
		_ = closeWriter()
		logger.Error("failed to write output", "error", err)
		return err
	}
	if err := closeWriter(); err != nil {
		logger.Error("failed to write output", "error", err)
		return err
	}

	logInfo("%s", report)
	if showStats, _ := cmd.Flags().GetBool("report"); showStats && report.Stats != nil {
		logInfo("%s", report.Stats)
	}
	return nil
}
