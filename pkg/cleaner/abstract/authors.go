package abstract

import "strings"

// DefaultAuthorWindow is the leading fraction of an abstract scanned for
// an author block.
const DefaultAuthorWindow = 0.5

// splitWindow cuts text at window (a fraction of its character count).
func splitWindow(text string, window float64) (head, tail string) {
	if window <= 0 {
		return "", text
	}
	runes := []rune(text)
	split := int(float64(len(runes)) * window)
	if split > len(runes) {
		split = len(runes)
	}
	return string(runes[:split]), string(runes[split:])
}

// HasAuthors reports whether any line inside the leading window looks like
// an author/affiliation or email line. The last line of the window is
// skipped since the cut usually lands mid-sentence.
func HasAuthors(text string, window float64) bool {
	head, _ := splitWindow(text, window)
	lines := strings.Split(head, "\n")
	for _, line := range lines[:len(lines)-1] {
		if IsAuthorLine(line) {
			return true
		}
	}
	return false
}

// RemoveLinesLikeAuthors drops author-like lines from the leading window
// and reassembles the text with the untouched tail. Removal is too
// unreliable to run unattended; audit its output before keeping it.
func RemoveLinesLikeAuthors(text string, window float64) string {
	head, tail := splitWindow(text, window)
	lines := strings.Split(head, "\n")
	last := lines[len(lines)-1]

	kept := make([]string, 0, len(lines))
	for _, line := range lines[:len(lines)-1] {
		if !IsAuthorLine(line) {
			kept = append(kept, line)
		}
	}
	return strings.Join(append(kept, last), "\n") + tail
}
