package audit

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dlclark/regexp2"

	"github.com/jmylchreest/abscrub/pkg/cleaner/abstract"
	"github.com/jmylchreest/abscrub/pkg/corpus"
)

// ErrNoCaptureGroup indicates an extraction pattern without any group.
var ErrNoCaptureGroup = errors.New("pattern has no capture group")

// Match returns the indices of records whose abstract matches pattern,
// compiled with the cleaner's flags.
func Match(t *corpus.Table, pattern string) ([]int, error) {
	re, err := abstract.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}
	return match(t, re)
}

func match(t *corpus.Table, re *regexp2.Regexp) ([]int, error) {
	var out []int
	var matchErr error
	t.Column(corpus.AbstractColumn).Each(func(index int, text string) bool {
		ok, err := re.MatchString(text)
		if err != nil {
			matchErr = fmt.Errorf("index %d: %w", index, err)
			return false
		}
		if ok {
			out = append(out, index)
		}
		return true
	})
	return out, matchErr
}

// SearchText prints every record whose abstract matches pattern, with the
// matches highlighted, pausing after each one. It returns the number of
// records shown.
func (a *Auditor) SearchText(t *corpus.Table, pattern string) (int, error) {
	re, err := abstract.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("compile %q: %w", pattern, err)
	}
	indices, err := match(t, re)
	if err != nil {
		return 0, err
	}

	texts := t.Column(corpus.AbstractColumn)
	shown := 0
	for _, idx := range indices {
		text, _ := texts.Get(idx)
		highlighted, err := re.ReplaceFunc(text, func(m regexp2.Match) string {
			return a.styles.Highlight(m.String())
		}, -1, -1)
		if err != nil {
			return shown, fmt.Errorf("index %d: %w", idx, err)
		}
		fmt.Fprintln(a.out, highlighted)
		shown++

		ok, err := a.pause(idx)
		if err != nil || !ok {
			return shown, err
		}
	}
	return shown, nil
}

// Extract is one pattern occurrence in one record.
type Extract struct {
	Index  int      `json:"index" yaml:"index"`
	Match  int      `json:"match" yaml:"match"`
	Groups []string `json:"groups" yaml:"groups"`
}

// Header returns the TSV column names, one per capture group.
func (e Extract) Header() []string {
	h := []string{"index", "match"}
	for i := range e.Groups {
		h = append(h, "group_"+strconv.Itoa(i+1))
	}
	return h
}

// Strings returns the TSV cells.
func (e Extract) Strings() []string {
	return append([]string{strconv.Itoa(e.Index), strconv.Itoa(e.Match)}, e.Groups...)
}

// ExtractText returns the capture groups of every occurrence of pattern
// across all abstracts, keyed by record index and occurrence number.
// Occurrences where a group did not participate are dropped; the
// occurrence number still counts them.
func ExtractText(t *corpus.Table, pattern string) ([]Extract, error) {
	re, err := abstract.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}
	groups := re.GetGroupNumbers()
	if len(groups) <= 1 {
		return nil, ErrNoCaptureGroup
	}

	var out []Extract
	var extractErr error
	t.Column(corpus.AbstractColumn).Each(func(index int, text string) bool {
		m, err := re.FindStringMatch(text)
		for n := 0; m != nil && err == nil; n++ {
			if ex, ok := extract(m, groups[1:]); ok {
				ex.Index, ex.Match = index, n
				out = append(out, ex)
			}
			m, err = re.FindNextMatch(m)
		}
		if err != nil {
			extractErr = fmt.Errorf("index %d: %w", index, err)
			return false
		}
		return true
	})
	return out, extractErr
}

func extract(m *regexp2.Match, numbers []int) (Extract, bool) {
	ex := Extract{Groups: make([]string, 0, len(numbers))}
	for _, n := range numbers {
		g := m.GroupByNumber(n)
		if g == nil || len(g.Captures) == 0 {
			return Extract{}, false
		}
		ex.Groups = append(ex.Groups, g.String())
	}
	return ex, true
}
