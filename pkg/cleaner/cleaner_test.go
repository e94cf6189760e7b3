package cleaner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- NoopCleaner Tests ---

func TestNoopCleaner_Clean(t *testing.T) {
	c := NewNoop()

	tests := []struct {
		name  string
		input string
	}{
		{"empty_string", ""},
		{"plain_text", "We studied X."},
		{"multi_line", "Background:\nWe studied X.\n"},
		{"whitespace", "  \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Clean(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestNoopCleaner_Name(t *testing.T) {
	assert.Equal(t, "noop", NewNoop().Name())
}

// --- ChainCleaner Tests ---

type upperCleaner struct{}

func (upperCleaner) Clean(text string) (string, error) {
	out := []rune(text)
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - 'a' + 'A'
		}
	}
	return string(out), nil
}

func (upperCleaner) Name() string { return "upper" }

type failingCleaner struct{ err error }

func (f failingCleaner) Clean(string) (string, error) { return "", f.err }

func (f failingCleaner) Name() string { return "failing" }

func TestChainCleaner_Empty(t *testing.T) {
	c := NewChain()

	got, err := c.Clean("unchanged content")
	require.NoError(t, err)
	assert.Equal(t, "unchanged content", got)
	assert.Equal(t, 0, c.Len())
}

func TestChainCleaner_Order(t *testing.T) {
	c := NewChain(NewWhitespace(), upperCleaner{})

	got, err := c.Clean("  we  studied\n\nx ")
	require.NoError(t, err)
	assert.Equal(t, "WE STUDIED X", got)
	assert.Equal(t, 2, c.Len())
}

func TestChainCleaner_ErrorStopsChain(t *testing.T) {
	boom := errors.New("boom")
	c := NewChain(NewNoop(), failingCleaner{err: boom}, upperCleaner{})

	got, err := c.Clean("text")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failing")
	assert.Empty(t, got)
}

func TestChainCleaner_Name(t *testing.T) {
	c := NewChain(NewMarkup(), NewUnicode(), NewWhitespace())
	assert.Equal(t, "chain(markup->unicode->whitespace)", c.Name())
}

// --- WhitespaceCleaner Tests ---

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only_whitespace", " \n\t ", ""},
		{"newlines", "We studied X.\nY happened.", "We studied X. Y happened."},
		{"runs", "  a \t\t b\n\n\nc  ", "a b c"},
		{"already_clean", "a b c", "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollapseWhitespace(tt.input))

			got, err := NewWhitespace().Clean(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// --- UnicodeCleaner Tests ---

func TestUnicodeCleaner_Clean(t *testing.T) {
	decomposed := "re\u0301fe\u0301rences"
	precomposed := "r\u00e9f\u00e9rences"

	got, err := NewUnicode().Clean(decomposed)
	require.NoError(t, err)
	assert.Equal(t, precomposed, got)

	got, err = NewUnicode().Clean(precomposed)
	require.NoError(t, err)
	assert.Equal(t, precomposed, got)
}

// --- MarkupCleaner Tests ---

func TestMarkupCleaner_Clean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		absent   []string
	}{
		{
			name:     "inline_tags",
			input:    "We studied <i>E. coli</i> at 37<sup>o</sup>C.",
			contains: []string{"We studied E. coli at 37oC."},
			absent:   []string{"<i>", "</sup>"},
		},
		{
			name:     "entities",
			input:    "<b>X</b> &amp; Y",
			contains: []string{"X & Y"},
		},
		{
			name:     "paragraphs_become_lines",
			input:    "<p>Background</p><p>We studied X.</p>",
			contains: []string{"Background\nWe studied X."},
		},
		{
			name:     "breaks_become_lines",
			input:    "Results:<br/>Y happened.",
			contains: []string{"Results:\nY happened."},
		},
	}

	c := NewMarkup()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Clean(tt.input)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, bad := range tt.absent {
				assert.NotContains(t, got, bad)
			}
		})
	}
}

func TestMarkupCleaner_PlainTextUntouched(t *testing.T) {
	inputs := []string{
		"p < 0.05 & n > 10",
		"Background: a<b for all samples",
		"",
	}
	c := NewMarkup()
	for _, in := range inputs {
		got, err := c.Clean(in)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}

func TestMarkupCleaner_Name(t *testing.T) {
	assert.Equal(t, "markup", NewMarkup().Name())
}

// Interface compliance
var (
	_ Cleaner = (*NoopCleaner)(nil)
	_ Cleaner = (*ChainCleaner)(nil)
	_ Cleaner = (*WhitespaceCleaner)(nil)
	_ Cleaner = (*UnicodeCleaner)(nil)
	_ Cleaner = (*MarkupCleaner)(nil)
)
