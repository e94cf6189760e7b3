package abstract

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// PatternVersion identifies the current revision of the pattern library.
// Bump it together with FundingExceptionsVersion whenever a pattern changes.
const PatternVersion = "2019.3"

// Flags is the matching mode shared by every pattern: case-insensitive,
// ^/$ at line boundaries, "." across newlines, and insignificant literal
// whitespace so fragments can be laid out for readability.
const Flags = regexp2.IgnoreCase | regexp2.Multiline | regexp2.Singleline | regexp2.IgnorePatternWhitespace

// NumberingPrefix tolerates "1.", "1)", "I.", "IV)", bare punctuation or
// nothing before a header. A roman numeral must be followed by punctuation
// so a leading pronoun or word such as "I references" is never consumed.
const NumberingPrefix = `[^\n\w]* (?: (?: \d | [ivx]{1,4} (?=[^\n\w\s]) )? [^\n\w]* )`

// SectionNames are the structural headers stripped by the section phase.
var SectionNames = []string{
	`backgrounds?`,
	`conclusions?`,
	`discussions?`,
	`experiments?`,
	`experimental`,
	`intro`,
	`introductions?`,
	`materials?`,
	`methods?`,
	`motivations?`,
	`perspectives?`,
	`prospects?`,
	`objectives?`,
	`outlooks?`,
	`overviews?`,
	`results?`,
	`key\ results?`,
	`significance`,
	`summary`,
}

// FundingCues are the words that mark a trailing funding statement.
var FundingCues = []string{
	`fund[eis]`,
	`financ`,
	`supported\ by`,
	`support\ of`,
	`support\ from`,
	`grant`,
}

// AndSections joins two fragments with an "and"/"&" joiner, catching
// combined headers such as "Results and Discussion".
func AndSections(a, b string) string {
	return a + `\s* (?: and | & ) \s*` + b
}

// Alternation joins fragments with "|".
func Alternation(fragments ...string) string {
	return strings.Join(fragments, "|")
}

// SectionAlternation returns every ordered pair of names joined by
// AndSections, followed by the single names. Pairs come first so that
// "Results and Discussion" is consumed as one header.
func SectionAlternation(names []string) string {
	fragments := make([]string, 0, len(names)*len(names))
	for i, a := range names {
		for j, b := range names {
			if i == j {
				continue
			}
			fragments = append(fragments, AndSections(a, b))
		}
	}
	fragments = append(fragments, names...)
	return Alternation(fragments...)
}

// Phase names a group of patterns applied together.
type Phase string

const (
	PhaseAbstractMarker Phase = "abstract_marker"
	PhaseSections       Phase = "sections"
	PhaseTail           Phase = "tail"
	PhaseFunding        Phase = "funding"
	PhaseCombined       Phase = "combined"
)

// Fragment sources, exported for tooling that wants to recompose them.
var (
	AbstractMarkerPatterns = []string{
		`(?: ^ | .* \n)` + NumberingPrefix + `abstract [^\n\w,]* [\n:]`,
	}

	SectionPatterns = []string{
		`^` + NumberingPrefix + `keys?\ ?words? (?: [^\n\w]* \n )? [^\n]*`,
		`^` + NumberingPrefix + `(?:` + SectionAlternation(SectionNames) + `) (?: \ * section)? (?: [^\n\w]* \n | \s* [^\n\w\s,&]+ )`,
	}

	TailPatterns = []string{
		`^` + NumberingPrefix + `ac?knowled?ge?m?ents? :? .*`,
		`^` + NumberingPrefix + `r[eé]f[eé]rences? \s* :? .*`,
		`^ [^\n\w]* [12] [^\n\w]+ \w [^\n]+ (?<!\d)(?:1[6789]|20)[0-9]{2}(?!\d) .*`,
	}

	// The funding line must follow another line, so text that is a single
	// line (such as already collapsed output) is never erased.
	FundingPatterns = []string{
		`( (?<=\n) [^\n]* (?:` + Alternation(FundingCues...) + `) [^\n]* \s* ) \z`,
	}
)

// Patterns holds the compiled matchers. It is immutable after construction
// and safe for concurrent use.
type Patterns struct {
	AbstractMarker *regexp2.Regexp
	Sections       *regexp2.Regexp
	Tail           *regexp2.Regexp
	Funding        *regexp2.Regexp

	// Combined is phases 1-3 as a single alternation.
	Combined *regexp2.Regexp
}

var defaultPatterns = MustCompilePatterns(0)

// DefaultPatterns returns the process-wide compiled pattern set, which
// has no match timeout.
func DefaultPatterns() *Patterns {
	return defaultPatterns
}

// Compile compiles a pattern with the shared Flags.
func Compile(expr string) (*regexp2.Regexp, error) {
	return regexp2.Compile(expr, Flags)
}

// CompilePatterns compiles the library. A positive timeout bounds every
// evaluation of the returned matchers.
func CompilePatterns(timeout time.Duration) (*Patterns, error) {
	p := &Patterns{}
	sources := []struct {
		dst  **regexp2.Regexp
		expr string
	}{
		{&p.AbstractMarker, Alternation(AbstractMarkerPatterns...)},
		{&p.Sections, Alternation(SectionPatterns...)},
		{&p.Tail, Alternation(TailPatterns...)},
		{&p.Funding, Alternation(FundingPatterns...)},
		{&p.Combined, Alternation(
			Alternation(AbstractMarkerPatterns...),
			Alternation(SectionPatterns...),
			Alternation(TailPatterns...),
		)},
	}

	for _, src := range sources {
		re, err := Compile(src.expr)
		if err != nil {
			return nil, fmt.Errorf("compile pattern: %w", err)
		}
		if timeout > 0 {
			re.MatchTimeout = timeout
		}
		*src.dst = re
	}
	return p, nil
}

// MustCompilePatterns is like CompilePatterns but panics on error.
func MustCompilePatterns(timeout time.Duration) *Patterns {
	p, err := CompilePatterns(timeout)
	if err != nil {
		panic(err)
	}
	return p
}

// ExceptionSet is a read-only set of record indices.
type ExceptionSet struct {
	version string
	indices map[int]struct{}
}

// NewExceptionSet builds a set from indices.
func NewExceptionSet(version string, indices ...int) ExceptionSet {
	m := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		m[i] = struct{}{}
	}
	return ExceptionSet{version: version, indices: m}
}

// Contains reports whether index is exempt.
func (s ExceptionSet) Contains(index int) bool {
	_, ok := s.indices[index]
	return ok
}

// Len returns the number of exempt indices.
func (s ExceptionSet) Len() int {
	return len(s.indices)
}

// Version returns the pattern version the set was audited against.
func (s ExceptionSet) Version() string {
	return s.version
}

// FundingExceptionsVersion must equal PatternVersion; re-audit the set
// whenever FundingPatterns change.
const FundingExceptionsVersion = "2019.3"

// FundingExceptions lists records whose trailing line matches the funding
// pattern but is scientific content.
var FundingExceptions = NewExceptionSet(FundingExceptionsVersion,
	23, 968, 999, 1243, 1373, 1416, 1469, 1560, 1700, 1710,
)
