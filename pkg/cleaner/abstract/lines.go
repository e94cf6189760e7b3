package abstract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// AuthorConnectors are lowercase words that commonly appear inside author
// and affiliation lines ("University of X", "Smith and Doe").
var AuthorConnectors = []string{"and", "of", "at", "in", "de", "et", "und"}

const (
	// MinAuthorWords is the word count a line must exceed to qualify.
	MinAuthorWords = 4
	// AuthorRatio is the author-like word fraction a line must exceed.
	AuthorRatio = 0.8
)

var (
	emailRegex = regexp2.MustCompile(`[\w-]+@[\w-]+\.[\w-]+`, regexp2.None)

	hyphenPeriodRegex = regexp2.MustCompile(`[-.]`, regexp2.None)
	digitsRegex       = regexp2.MustCompile(`\d+`, regexp2.None)
	// Lowercase single letters only: capital initials stay and count as
	// author-like. The letter alternative must come first, an empty
	// punctuation match would otherwise always win.
	punctLetterRegex = regexp2.MustCompile(`\b[a-z]\b|[^\w\s,]+`, regexp2.None)
)

// IsEmailAddress reports whether line contains something shaped like
// local-part@domain.tld.
func IsEmailAddress(line string) bool {
	ok, err := emailRegex.MatchString(line)
	return err == nil && ok
}

// LineClass is the word breakdown behind IsAuthorAffiliation.
type LineClass struct {
	Words       []string
	AuthorWords []string
}

// Ratio returns the fraction of author-like words.
func (c LineClass) Ratio() float64 {
	if len(c.Words) == 0 {
		return 0
	}
	return float64(len(c.AuthorWords)) / float64(len(c.Words))
}

// IsAuthorAffiliation applies the density thresholds.
func (c LineClass) IsAuthorAffiliation() bool {
	return len(c.Words) > MinAuthorWords && c.Ratio() > AuthorRatio
}

// ClassifyLine normalizes line and splits it into words, marking the
// author-like ones. It is exposed for tuning the heuristic.
func ClassifyLine(line string) LineClass {
	line = replaceAll(hyphenPeriodRegex, line, " ")
	line = strings.ReplaceAll(line, ",", " , ")
	line = replaceAll(digitsRegex, line, "")
	line = replaceAll(punctLetterRegex, line, "")

	class := LineClass{Words: strings.Fields(line)}
	for _, w := range class.Words {
		if isAuthorWord(w) {
			class.AuthorWords = append(class.AuthorWords, w)
		}
	}
	return class
}

// IsAuthorAffiliation reports whether line looks like a list of author
// names or institutions: more than four words, over 80% of which are
// capitalized, bare commas, or connector words.
func IsAuthorAffiliation(line string) bool {
	return ClassifyLine(line).IsAuthorAffiliation()
}

// IsAuthorLine combines both line classifiers.
func IsAuthorLine(line string) bool {
	return IsAuthorAffiliation(line) || IsEmailAddress(line)
}

func isAuthorWord(w string) bool {
	if w == "," {
		return true
	}
	if r, _ := utf8.DecodeRuneInString(w); unicode.IsUpper(r) {
		return true
	}
	for _, c := range AuthorConnectors {
		if strings.EqualFold(w, c) {
			return true
		}
	}
	return false
}

// replaceAll is a timeout-free replace; these patterns are linear.
func replaceAll(re *regexp2.Regexp, s, repl string) string {
	out, err := re.Replace(s, repl, -1, -1)
	if err != nil {
		return s
	}
	return out
}
