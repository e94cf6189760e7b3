// Package commands implements the CLI commands for abscrub.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/abscrub/internal/logger"
	"github.com/jmylchreest/abscrub/internal/output"
	"github.com/jmylchreest/abscrub/pkg/cleaner/abstract"
	"github.com/jmylchreest/abscrub/pkg/corpus"
)

var rootCmd = &cobra.Command{
	Use:   "abscrub",
	Short: "Strip boilerplate from conference abstracts",
	Long: `abscrub cleans the abstract_text column of tab-separated conference
submission exports. It removes "Abstract:" labels, section headers,
keyword lines, acknowledgments, references and trailing funding
statements, and flags abstracts that open with an author block.

Examples:
  # Clean two exports into one table
  abscrub clean -i day1.tsv -i day2.tsv -o cleaned.tsv

  # Walk every modified abstract as a line diff, starting at index 300
  abscrub audit diff -i day1.tsv --preset audit --start 300

  # Find abstracts that still mention a funding agency
  abscrub audit search -i day1.tsv 'national\ science\ foundation'`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.abscrub.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "suppress progress output")
	flags.Bool("json-logs", false, "log as JSON")

	// Cleaner settings shared by every command
	flags.StringSliceP("input", "i", nil, "TSV file(s) to read, concatenated in order (can be repeated)")
	flags.String("preset", "default", "cleaner preset: default, audit, legacy")
	flags.Int("min-length", corpus.DefaultMinLength, "exclude abstracts shorter than this many characters")
	flags.Bool("drop-placeholders", false, "also exclude placeholder (lorem ipsum) abstracts")
	flags.Float64("author-window", abstract.DefaultAuthorWindow, "leading fraction of text scanned for author lines")
	flags.Bool("strip-markup", false, "strip inline HTML before matching")
	flags.Bool("normalize-unicode", false, "normalize text to NFC before matching")
	flags.Duration("match-timeout", 0, "per-pattern match timeout (0 = preset default)")
	flags.IntP("concurrency", "c", 0, "cleaning goroutines (0 = GOMAXPROCS)")

	for _, name := range []string{"config", "debug", "quiet", "json-logs", "preset", "min-length",
		"drop-placeholders", "author-window", "strip-markup", "normalize-unicode", "match-timeout", "concurrency"} {
		_ = viper.BindPFlag(viperKey(name), flags.Lookup(name))
	}
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".abscrub")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("ABSCRUB")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup initializes logging from the global flags.
func setup() {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("json_logs"),
	})
}

// viperKey maps a flag name to its config key.
func viperKey(flag string) string {
	key := []rune(flag)
	for i, r := range key {
		if r == '-' {
			key[i] = '_'
		}
	}
	return string(key)
}

// inputs returns --input paths followed by positional paths.
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	paths, _ := cmd.Flags().GetStringSlice("input")
	paths = append(paths, args...)
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no input files (use -i)", corpus.ErrEmptyInput)
	}
	return paths, nil
}

// buildConfig assembles the corpus config from the preset, then applies
// config-file, environment and flag overrides.
func buildConfig() (*corpus.Config, error) {
	cc, err := abstract.Preset(viper.GetString("preset"))
	if err != nil {
		return nil, err
	}
	if viper.IsSet("author_window") {
		cc.AuthorWindow = viper.GetFloat64("author_window")
	}
	if viper.IsSet("match_timeout") && viper.GetDuration("match_timeout") > 0 {
		cc.MatchTimeout = viper.GetDuration("match_timeout")
	}
	if viper.GetBool("strip_markup") {
		cc.StripMarkup = true
	}
	if viper.GetBool("normalize_unicode") {
		cc.NormalizeUnicode = true
	}
	cc.Debug = viper.GetBool("debug")

	cfg := corpus.DefaultConfig()
	cfg.Cleaner = cc
	if viper.IsSet("min_length") {
		cfg.MinLength = viper.GetInt("min_length")
	}
	if viper.GetBool("drop_placeholders") {
		cfg.DropPlaceholders = true
	}
	cfg.Concurrency = viper.GetInt("concurrency")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// openWriter creates the output writer for --output/--format. The returned
// close function flushes the writer and closes the file.
func openWriter(cmd *cobra.Command) (output.Writer, func() error, error) {
	outFile := os.Stdout
	outPath, _ := cmd.Flags().GetString("output")
	if outPath != "" {
		f, err := os.Create(outPath) //#nosec G304 -- CLI tool writes to user-specified output file
		if err != nil {
			logger.Error("failed to create output file", "path", outPath, "error", err)
			return nil, nil, err
		}
		outFile = f
	}

	formatStr, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return nil, nil, err
	}
	writer, err := output.NewWriter(outFile, format)
	if err != nil {
		logger.Error("failed to create output writer", "format", formatStr, "error", err)
		return nil, nil, err
	}

	closeFn := func() error {
		werr := writer.Close()
		if outFile != os.Stdout {
			if err := outFile.Close(); err != nil && werr == nil {
				werr = err
			}
		}
		return werr
	}
	return writer, closeFn, nil
}
