package abstract

import (
	"testing"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAndSections(t *testing.T) {
	got := AndSections(`results?`, `discussions?`)
	assert.Equal(t, `results?\s* (?: and | & ) \s*discussions?`, got)
}

func TestSectionAlternation(t *testing.T) {
	got := SectionAlternation([]string{"a", "b", "c"})

	want := Alternation(
		AndSections("a", "b"), AndSections("a", "c"),
		AndSections("b", "a"), AndSections("b", "c"),
		AndSections("c", "a"), AndSections("c", "b"),
		"a", "b", "c",
	)
	assert.Equal(t, want, got)
}

func TestSectionAlternation_Pairs(t *testing.T) {
	re, err := Compile(`^(?:` + SectionAlternation(SectionNames) + `)$`)
	require.NoError(t, err)

	ok, err := re.MatchString("Results and Discussion")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = re.MatchString("Discussion & Results")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = re.MatchString("Results and Results")
	require.NoError(t, err)
	assert.False(t, ok, "a name is never paired with itself")
}

func TestDefaultPatterns(t *testing.T) {
	p := DefaultPatterns()
	require.NotNil(t, p)
	assert.NotNil(t, p.AbstractMarker)
	assert.NotNil(t, p.Sections)
	assert.NotNil(t, p.Tail)
	assert.NotNil(t, p.Funding)
	assert.NotNil(t, p.Combined)
	assert.Same(t, p, DefaultPatterns())
}

func TestCompilePatterns_Timeout(t *testing.T) {
	p, err := CompilePatterns(50 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, p.Sections.MatchTimeout)
	assert.Equal(t, 50*time.Millisecond, p.Funding.MatchTimeout)
}

func TestCompile_Flags(t *testing.T) {
	re, err := Compile(`supported\ by .* grant`)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"case_insensitive", "SUPPORTED BY the NSF GRANT", true},
		{"dot_matches_newline", "supported by\nthe NSF grant", true},
		{"pattern_whitespace_ignored", "supported bythe grant", false},
		{"no_match", "funded by the NSF", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := re.MatchString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestPatternMatches(t *testing.T) {
	p := DefaultPatterns()

	tests := []struct {
		name  string
		re    *regexp2.Regexp
		input string
		want  string // "" means no match
	}{
		{"marker_leading", p.AbstractMarker, "Abstract: We studied X.", "Abstract:"},
		{"marker_numbered", p.AbstractMarker, "1. Abstract\nWe studied X.", "1. Abstract\n"},
		{"marker_after_title", p.AbstractMarker, "A title\nAbstract\nWe studied X.", "A title\nAbstract\n"},
		{"marker_inline_word", p.AbstractMarker, "Intro line\nWe studied the abstract: X", ""},
		{"section_single", p.Sections, "Results: Y happened.", "Results:"},
		{"section_pair", p.Sections, "Results and Discussion:\nY happened.", "Results and Discussion:\n"},
		{"section_named_section", p.Sections, "Methods section:\nZ was used.", "Methods section:\n"},
		{"section_numbered", p.Sections, "1. Introduction\nWe measured Y.", "1. Introduction\n"},
		{"section_roman", p.Sections, "I. Introduction\nWe studied X.", "I. Introduction\n"},
		{"section_roman_paren", p.Sections, "IV) Methods: Z was used.", "IV) Methods:"},
		{"section_key_results", p.Sections, "Key results - Y happened.", "Key results -"},
		{"keywords_line", p.Sections, "Keywords: cancer, mice\nWe studied X.", "Keywords: cancer, mice"},
		{"section_mid_line", p.Sections, "We report results: Y.", ""},
		{"tail_acknowledgments", p.Tail, "We studied X.\nAcknowledgments\nThanks to all.", "Acknowledgments\nThanks to all."},
		{"tail_references", p.Tail, "We studied X.\nReferences: 1. Smith J 2019.", "References: 1. Smith J 2019."},
		{"tail_bibliography", p.Tail, "We studied X.\n1. Smith J, Doe A. Nature 2019;12:3-4.", "1. Smith J, Doe A. Nature 2019;12:3-4."},
		{"tail_no_year", p.Tail, "We studied X.\n1. Smith J, Doe A. Nature.", ""},
		{"tail_not_bibliography", p.Tail, "We used 12 mice in 2019.", ""},
		{"funding_last_line", p.Funding, "We studied X.\nFunded by the Wellcome Trust.\n", "Funded by the Wellcome Trust.\n"},
		{"funding_single_line", p.Funding, "We studied grant allocation in labs. Other results here.", ""},
		{"tail_leading_pronoun", p.Tail, "I references the earlier work.\nWe studied X.", ""},
		{"funding_not_last_line", p.Funding, "This grant paid for X.\nWe studied X.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.re.FindStringMatch(tt.input)
			require.NoError(t, err)
			if tt.want == "" {
				assert.Nil(t, m)
				return
			}
			require.NotNil(t, m)
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestExceptionSet(t *testing.T) {
	s := NewExceptionSet("test", 1, 2, 2, 3)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(4))
	assert.Equal(t, "test", s.Version())

	var empty ExceptionSet
	assert.False(t, empty.Contains(0))
	assert.Equal(t, 0, empty.Len())
}

func TestFundingExceptions(t *testing.T) {
	assert.Equal(t, 10, FundingExceptions.Len())
	for _, idx := range []int{23, 968, 999, 1243, 1373, 1416, 1469, 1560, 1700, 1710} {
		assert.True(t, FundingExceptions.Contains(idx), "index %d", idx)
	}
	assert.False(t, FundingExceptions.Contains(NoIndex))
	assert.Equal(t, PatternVersion, FundingExceptions.Version())
}
