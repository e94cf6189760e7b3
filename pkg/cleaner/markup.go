package cleaner

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	// tagRegex detects markup; text without a tag is never parsed.
	tagRegex       = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9]*(?:\s[^<>]*)?/?>`)
	lineBreakRegex = regexp.MustCompile(`(?i)<br\s*/?>|</p\s*>|</div\s*>|</li\s*>`)
)

// MarkupCleaner strips inline HTML from abstracts exported by submission
// systems that store rich text (<i>, <sup>, <br> ...). Block and break
// tags become newlines so the line-oriented patterns keep working.
type MarkupCleaner struct{}

// NewMarkup creates a markup-stripping cleaner.
func NewMarkup() *MarkupCleaner {
	return &MarkupCleaner{}
}

// Clean removes tags and decodes entities. Text without any tag is
// returned unchanged so that literal "<" and "&" survive.
func (c *MarkupCleaner) Clean(text string) (string, error) {
	if !tagRegex.MatchString(text) {
		return text, nil
	}
	text = lineBreakRegex.ReplaceAllString(text, "$0\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		// Fallback: strip tags via regex
		return tagRegex.ReplaceAllString(text, ""), nil
	}

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(s.Text())
	})
	return sb.String(), nil
}

// Name returns the cleaner type.
func (c *MarkupCleaner) Name() string {
	return "markup"
}
