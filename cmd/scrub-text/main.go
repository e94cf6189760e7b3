// scrub-text is a standalone CLI tool for testing and developing the
// abstract cleaner on a single abstract.
//
// Usage:
//
//	scrub-text [options] [file]
//
// Examples:
//
//	# Clean an abstract from a file and show stats
//	scrub-text abstract.txt
//
//	# Clean as record 968 (funding-exempt)
//	scrub-text -index 968 abstract.txt
//
//	# Compare the presets
//	scrub-text -compare abstract.txt
//
//	# Show how each line of the author window is classified
//	scrub-text -classify abstract.txt
//
//	# Read from stdin, print only the cleaned text
//	pbpaste | scrub-text -q
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jmylchreest/abscrub/internal/logger"
	"github.com/jmylchreest/abscrub/pkg/cleaner/abstract"
)

var (
	// Input options
	fileInput = flag.String("f", "", "Read the abstract from file instead of stdin")
	index     = flag.Int("index", abstract.NoIndex, "Record index (funding exceptions apply by index)")

	// Config options
	preset        = flag.String("preset", "default", "Use preset: default, audit, legacy")
	window        = flag.Float64("window", abstract.DefaultAuthorWindow, "Author window fraction")
	markup        = flag.Bool("markup", false, "Strip inline HTML first")
	removeAuthors = flag.Bool("remove-authors", false, "Drop author/affiliation lines from the author window before cleaning")

	// Output options
	outputFile = flag.String("o", "", "Write cleaned output to file")
	classify   = flag.Bool("classify", false, "Print the line classification of the author window and exit")
	jsonStats  = flag.Bool("json", false, "Output stats as JSON")
	verbose    = flag.Bool("v", false, "Verbose output (show warnings and per-phase debug logs)")
	quiet      = flag.Bool("q", false, "Quiet mode (no stats, only content)")

	// Compare mode
	compare = flag.Bool("compare", false, "Compare the presets")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "scrub-text - Test tool for the abstract cleaner\n\n")
		fmt.Fprintf(os.Stderr, "Usage: scrub-text [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  scrub-text abstract.txt\n")
		fmt.Fprintf(os.Stderr, "  scrub-text -index 968 abstract.txt\n")
		fmt.Fprintf(os.Stderr, "  scrub-text -compare abstract.txt\n")
		fmt.Fprintf(os.Stderr, "  scrub-text -classify abstract.txt\n")
	}

	flag.Parse()

	logger.Init(logger.Options{Debug: *verbose, Quiet: *quiet})

	// Get input source
	var text string
	var source string
	var err error

	switch {
	case *fileInput != "":
		text, err = readFile(*fileInput)
		source = *fileInput
	case flag.NArg() > 0:
		text, err = readFile(flag.Arg(0))
		source = flag.Arg(0)
	default:
		var data []byte
		data, err = io.ReadAll(os.Stdin)
		text = string(data)
		source = "stdin"
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if strings.TrimSpace(text) == "" {
		fmt.Fprintf(os.Stderr, "Error: empty input\n")
		os.Exit(1)
	}

	if *classify {
		printClassification(text)
		return
	}

	if *removeAuthors {
		text = abstract.RemoveLinesLikeAuthors(text, *window)
	}

	// Compare mode
	if *compare {
		runComparison(text, source)
		return
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Run cleaner
	c := abstract.New(cfg)
	result := c.CleanRecord(*index, text)

	// Output stats
	if !*quiet {
		if *jsonStats {
			outputJSONStats(result, source, c.HasAuthors(text))
		} else {
			outputTextStats(result, source, c.HasAuthors(text))
		}
	}

	// Output warnings
	if *verbose && result.HasWarnings() {
		fmt.Fprintf(os.Stderr, "\nWarnings:\n")
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "  %s\n", w.String())
		}
	}

	// Output content
	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(result.Content), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		if !*quiet {
			fmt.Fprintf(os.Stderr, "\nWritten to %s\n", *outputFile)
		}
	} else if !*quiet {
		fmt.Println("\n--- Cleaned Abstract ---")
		fmt.Println(result.Content)
	} else {
		fmt.Println(result.Content)
	}
}

func buildConfig() (*abstract.Config, error) {
	cfg, err := abstract.Preset(*preset)
	if err != nil {
		return nil, err
	}

	// Override with flags
	cfg.AuthorWindow = *window
	if *markup {
		cfg.StripMarkup = true
	}
	cfg.Debug = *verbose

	return cfg, cfg.Validate()
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- CLI tool reads user-specified file
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", path, err)
	}
	return string(data), nil
}

func outputTextStats(result *abstract.Result, source string, hasAuthors bool) {
	fmt.Fprintf(os.Stderr, "\n=== Abstract Cleaner Stats ===\n")
	fmt.Fprintf(os.Stderr, "Source: %s\n", source)
	fmt.Fprintf(os.Stderr, "Has authors: %t\n", hasAuthors)
	fmt.Fprintf(os.Stderr, "%s", result.Stats.String())
}

func outputJSONStats(result *abstract.Result, source string, hasAuthors bool) {
	stats := struct {
		Source     string          `json:"source"`
		HasAuthors bool            `json:"has_authors"`
		Stats      *abstract.Stats `json:"stats"`
		Reduced    float64         `json:"reduction_percent"`
	}{
		Source:     source,
		HasAuthors: hasAuthors,
		Stats:      result.Stats,
		Reduced:    result.Stats.ReductionPercent(),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(stats)
}

func printClassification(text string) {
	lines := strings.Split(text, "\n")
	limit := int(float64(len([]rune(text))) * *window)

	fmt.Printf("%-6s %-6s %6s %6s  %s\n", "Author", "Email", "Words", "Ratio", "Line")
	seen := 0
	for _, line := range lines {
		if seen > limit {
			break
		}
		seen += len([]rune(line)) + 1

		class := abstract.ClassifyLine(line)
		fmt.Printf("%-6t %-6t %6d %6.2f  %s\n",
			class.IsAuthorAffiliation(),
			abstract.IsEmailAddress(line),
			len(class.Words),
			class.Ratio(),
			truncate(line, 60))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func runComparison(text string, source string) {
	presets := []struct {
		name string
		cfg  *abstract.Config
	}{
		{"default", abstract.DefaultConfig()},
		{"audit", abstract.PresetAudit()},
		{"legacy", abstract.PresetLegacy()},
	}

	fmt.Printf("\n=== Preset Comparison for %s ===\n", source)
	fmt.Printf("Input size: %d bytes\n\n", len(text))
	fmt.Printf("%-10s %10s %10s %8s %10s\n", "Preset", "Output", "Matches", "Reduce%", "Time")
	fmt.Printf("%-10s %10s %10s %8s %10s\n", "------", "------", "-------", "-------", "----")

	for _, p := range presets {
		c := abstract.New(p.cfg)
		result := c.CleanRecord(*index, text)

		fmt.Printf("%-10s %10d %10d %7.1f%% %10v\n",
			p.name,
			result.Stats.OutputBytes,
			result.Stats.TotalMatches(),
			result.Stats.ReductionPercent(),
			result.Stats.Duration.Round(time.Microsecond))
	}

	fmt.Println()
}
