package audit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/jmylchreest/abscrub/pkg/corpus"
)

// Diff is the unified line diff between a raw and a cleaned text.
type Diff struct {
	Index int      `json:"index" yaml:"index"`
	Lines []string `json:"diff" yaml:"diff"`
}

// String joins the diff lines.
func (d Diff) String() string {
	return strings.Join(d.Lines, "\n")
}

// Header returns the TSV column names.
func (d Diff) Header() []string {
	return []string{"index", "diff"}
}

// Strings returns the TSV cells.
func (d Diff) Strings() []string {
	return []string{strconv.Itoa(d.Index), d.String()}
}

// UnifiedDiff returns the unified diff lines of a against b, split on
// newlines, without trailing line terminators.
func UnifiedDiff(a, b string) ([]string, error) {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "raw",
		ToFile:   "cleaned",
		Eol:      "\n",
		Context:  3,
	})
	if err != nil {
		return nil, err
	}
	return splitDiff(text), nil
}

func splitDiff(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Diffs aligns raw to cleaned by index and returns a diff for every record
// whose texts differ, in cleaned's order. A cleaned index missing from raw
// is corpus.ErrIndexMisalignment.
func Diffs(raw, cleaned *corpus.Series) ([]Diff, error) {
	pairs, err := raw.Compare(cleaned)
	if err != nil {
		return nil, err
	}
	diffs := make([]Diff, 0, len(pairs))
	for _, p := range pairs {
		lines, err := UnifiedDiff(p.Left, p.Right)
		if err != nil {
			return nil, fmt.Errorf("diff index %d: %w", p.Index, err)
		}
		diffs = append(diffs, Diff{Index: p.Index, Lines: lines})
	}
	return diffs, nil
}

// DiffMap returns Diffs as index -> diff text.
func DiffMap(raw, cleaned *corpus.Series) (map[int]string, error) {
	diffs, err := Diffs(raw, cleaned)
	if err != nil {
		return nil, err
	}
	out := make(map[int]string, len(diffs))
	for _, d := range diffs {
		out[d.Index] = d.String()
	}
	return out, nil
}

// CheckClean prints the diff of every modified record whose index is at
// least start, pausing after each one. It returns the number of diffs
// shown.
func (a *Auditor) CheckClean(raw, cleaned *corpus.Series, start int) (int, error) {
	diffs, err := Diffs(raw, cleaned)
	if err != nil {
		return 0, err
	}
	if len(diffs) == 0 {
		fmt.Fprintln(a.out, "No differences found.")
		return 0, nil
	}

	fmt.Fprintf(a.out, "Found %d modified documents.\n\n", len(diffs))
	shown := 0
	for _, d := range diffs {
		if d.Index < start {
			continue
		}
		for _, line := range d.Lines {
			fmt.Fprintln(a.out, a.styles.DiffLine(line))
		}
		shown++

		ok, err := a.pause(d.Index)
		if err != nil {
			return shown, err
		}
		if !ok {
			fmt.Fprint(a.out, "\nInterrupted!\n\n")
			break
		}
	}
	return shown, nil
}
