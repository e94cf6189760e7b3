package audit

import (
	"fmt"
	"io"
)

// Auditor walks records for manual review, printing to out and pausing
// on prompt after each entry.
type Auditor struct {
	out    io.Writer
	prompt Prompter
	styles *Styles
}

// Option configures an Auditor.
type Option func(*Auditor)

// WithStyles overrides the rendering styles.
func WithStyles(s *Styles) Option {
	return func(a *Auditor) {
		a.styles = s
	}
}

// WithPlain disables color output.
func WithPlain() Option {
	return WithStyles(PlainStyles())
}

// New creates an Auditor. A nil prompt never halts.
func New(out io.Writer, prompt Prompter, opts ...Option) *Auditor {
	if prompt == nil {
		prompt = Always{}
	}
	a := &Auditor{
		out:    out,
		prompt: prompt,
		styles: NewStyles(out),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// pause prints the rule line for index and waits for the operator.
// It returns false when the walk should stop.
func (a *Auditor) pause(index int) (bool, error) {
	fmt.Fprintf(a.out, "\n%s\n\n", a.styles.RuleLine(index))
	return a.prompt.Continue()
}
