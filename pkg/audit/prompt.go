// Package audit provides the interactive tools used to verify and tune the
// abstract cleaner: a diff walker over raw vs cleaned text, a pattern
// search and a submatch extractor.
package audit

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Prompter is the suspend point of an interactive walk. Continue blocks
// for one line of operator input and reports whether to go on.
type Prompter interface {
	Continue() (bool, error)
}

// LinePrompter reads operator input line by line: an empty line continues,
// anything else halts. End of input halts as well.
type LinePrompter struct {
	r *bufio.Reader
}

// NewLinePrompter creates a prompter reading from r.
func NewLinePrompter(r io.Reader) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(r)}
}

// Continue reads one line.
func (p *LinePrompter) Continue() (bool, error) {
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	return strings.TrimRight(line, "\r\n") == "", nil
}

// Always is a Prompter that never halts, for non-interactive dumps.
type Always struct{}

// Continue returns true.
func (Always) Continue() (bool, error) {
	return true, nil
}
