package audit

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RuleWidth is the number of dashes in the separator printed after each
// entry, before its index.
const RuleWidth = 70

// Styles render diff lines and separators. Colors are only emitted when
// the writer is a color-capable terminal.
type Styles struct {
	Added   lipgloss.Style
	Removed lipgloss.Style
	Hunk    lipgloss.Style
	Rule    lipgloss.Style
	Match   lipgloss.Style
}

// NewStyles builds styles bound to w.
func NewStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return &Styles{
		Added:   base.Foreground(lipgloss.Color("2")),
		Removed: base.Foreground(lipgloss.Color("1")),
		Hunk:    base.Foreground(lipgloss.Color("6")),
		Rule:    base.Faint(true),
		Match:   base.Bold(true).Underline(true),
	}
}

// PlainStyles never emit escape codes.
func PlainStyles() *Styles {
	r := lipgloss.NewRenderer(io.Discard)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return &Styles{Added: base, Removed: base, Hunk: base, Rule: base, Match: base}
}

// DiffLine renders a single unified-diff line.
func (s *Styles) DiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return line
	case strings.HasPrefix(line, "+"):
		return s.Added.Render(line)
	case strings.HasPrefix(line, "-"):
		return s.Removed.Render(line)
	case strings.HasPrefix(line, "@@"):
		return s.Hunk.Render(line)
	default:
		return line
	}
}

// Highlight renders a search match. Lines are styled one at a time so a
// match spanning lines is not padded into a block.
func (s *Styles) Highlight(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = s.Match.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// RuleLine renders the separator annotated with index.
func (s *Styles) RuleLine(index int) string {
	return s.Rule.Render(strings.Repeat("-", RuleWidth) + strconv.Itoa(index))
}
