// compare_cleaners.go - Compare the phased cleaner with the legacy single pass
//
// Usage: go run scripts/compare_cleaners.go <export.tsv> [more.tsv...]
//
// Example:
//   go run scripts/compare_cleaners.go abstracts-day1.tsv
//   diff /tmp/abstracts_phased.txt /tmp/abstracts_legacy.txt

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jmylchreest/abscrub/pkg/cleaner"
	"github.com/jmylchreest/abscrub/pkg/cleaner/abstract"
	"github.com/jmylchreest/abscrub/pkg/corpus"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/compare_cleaners.go <export.tsv> [more.tsv...]")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  go run scripts/compare_cleaners.go abstracts-day1.tsv")
		os.Exit(1)
	}

	table, err := corpus.LoadTSV(context.Background(), os.Args[1:]...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading TSV: %v\n", err)
		os.Exit(1)
	}
	texts := table.Column(corpus.AbstractColumn)

	fmt.Printf("Abstracts: %d\n\n", texts.Len())

	methods := []struct {
		name string
		path string
		c    cleaner.Cleaner
	}{
		{"noop", "", cleaner.NewNoop()},
		{"phased", "/tmp/abstracts_phased.txt", abstract.New(abstract.PresetAudit())},
		{"legacy", "/tmp/abstracts_legacy.txt", abstract.New(abstract.PresetLegacy())},
		{"markup+phased", "/tmp/abstracts_markup.txt", cleaner.NewChain(cleaner.NewMarkup(), abstract.New(abstract.PresetAudit()))},
	}

	outputs := make(map[string]map[int]string, len(methods))
	fmt.Println(strings.Repeat("=", 61))
	fmt.Printf("%-16s %12s %12s %10s\n", "Method", "Bytes", "Changed", "Reduce%")
	fmt.Println(strings.Repeat("=", 61))

	for _, m := range methods {
		out := make(map[int]string, texts.Len())
		var sb strings.Builder
		inBytes, outBytes, changed := 0, 0, 0

		texts.Each(func(index int, text string) bool {
			cleaned, err := m.c.Clean(text)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: index %d: %v\n", m.name, index, err)
				cleaned = text
			}
			out[index] = cleaned
			inBytes += len(text)
			outBytes += len(cleaned)
			if cleaned != text {
				changed++
			}
			fmt.Fprintf(&sb, "%s%d\n%s\n", strings.Repeat("-", 70), index, cleaned)
			return true
		})
		outputs[m.name] = out

		reduction := 0.0
		if inBytes > 0 {
			reduction = float64(inBytes-outBytes) / float64(inBytes) * 100
		}
		fmt.Printf("%-16s %12d %12d %9.1f%%\n", m.name, outBytes, changed, reduction)

		if m.path != "" {
			os.WriteFile(m.path, []byte(sb.String()), 0644)
		}
	}

	// Records where the two strategies disagree
	disagree := 0
	for idx, phased := range outputs["phased"] {
		if outputs["legacy"][idx] != phased {
			disagree++
		}
	}
	fmt.Printf("\nPhased and legacy disagree on %d of %d abstracts\n", disagree, texts.Len())
	fmt.Println("\nFiles saved for diff:")
	for _, m := range methods {
		if m.path != "" {
			fmt.Printf("  %s\n", m.path)
		}
	}
}
