package cleaner

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// WhitespaceCleaner collapses every whitespace run, newlines included,
// into a single space and trims the ends.
type WhitespaceCleaner struct{}

// NewWhitespace creates a whitespace-collapsing cleaner.
func NewWhitespace() *WhitespaceCleaner {
	return &WhitespaceCleaner{}
}

// Clean collapses whitespace.
func (c *WhitespaceCleaner) Clean(text string) (string, error) {
	return CollapseWhitespace(text), nil
}

// Name returns the cleaner type.
func (c *WhitespaceCleaner) Name() string {
	return "whitespace"
}

// CollapseWhitespace joins all lines of text with single spaces.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
}

// UnicodeCleaner rewrites text to Unicode normalization form C so that
// decomposed accents (e.g. "références") match the same
// patterns as their precomposed forms.
type UnicodeCleaner struct{}

// NewUnicode creates an NFC-normalizing cleaner.
func NewUnicode() *UnicodeCleaner {
	return &UnicodeCleaner{}
}

// Clean returns text in NFC.
func (c *UnicodeCleaner) Clean(text string) (string, error) {
	if norm.NFC.IsNormalString(text) {
		return text, nil
	}
	return norm.NFC.String(text), nil
}

// Name returns the cleaner type.
func (c *UnicodeCleaner) Name() string {
	return "unicode"
}
