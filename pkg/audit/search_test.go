package audit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tbl := newTable(
		"We studied X.",
		"This work was Supported By the NSF.",
		"",
		"Supported\nby a grant.",
	)

	indices, err := Match(tbl, `supported \s+ by`)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, indices)

	_, err = Match(tbl, `(`)
	assert.Error(t, err)
}

func TestSearchText(t *testing.T) {
	tbl := newTable(
		"We studied X.",
		"This work was supported by the NSF.",
		"Funding: supported by the ERC.",
	)

	t.Run("halts_on_input", func(t *testing.T) {
		var out bytes.Buffer
		a := New(&out, NewLinePrompter(strings.NewReader("q\n")), WithPlain())

		shown, err := a.SearchText(tbl, `supported\ by`)
		require.NoError(t, err)
		assert.Equal(t, 1, shown)
		assert.Contains(t, out.String(), "This work was supported by the NSF.")
		assert.Contains(t, out.String(), strings.Repeat("-", RuleWidth)+"1")
		assert.NotContains(t, out.String(), "ERC")
	})

	t.Run("walk_all", func(t *testing.T) {
		var out bytes.Buffer
		shown, err := New(&out, NewLinePrompter(strings.NewReader("\n\n")), WithPlain()).SearchText(tbl, `supported\ by`)
		require.NoError(t, err)
		assert.Equal(t, 2, shown)
		assert.Contains(t, out.String(), "ERC")
		assert.NotContains(t, out.String(), "We studied X.")
	})

	t.Run("highlights_matches", func(t *testing.T) {
		styles := PlainStyles()
		styles.Match = styles.Match.Transform(func(s string) string { return "[" + s + "]" })

		var out bytes.Buffer
		a := New(&out, Always{}, WithStyles(styles))
		shown, err := a.SearchText(newTable("Supported\nby a grant, supported by the NSF."), `supported \s+ by`)
		require.NoError(t, err)
		assert.Equal(t, 1, shown)
		assert.True(t, strings.HasPrefix(out.String(), "[Supported]\n[by] a grant, [supported by] the NSF.\n"), out.String())
	})

	t.Run("bad_pattern", func(t *testing.T) {
		_, err := New(&bytes.Buffer{}, nil).SearchText(tbl, `[`)
		assert.Error(t, err)
	})
}

func TestExtractText(t *testing.T) {
	tbl := newTable(
		"We used 12 mice, 4 rats and 7 mice.",
		"No animals were harmed.",
		"",
		"5 mice",
	)

	got, err := ExtractText(tbl, `(\d+)\ (mice)?`)
	require.NoError(t, err)

	// "4 " has no second group: dropped, but still counted
	assert.Equal(t, []Extract{
		{Index: 0, Match: 0, Groups: []string{"12", "mice"}},
		{Index: 0, Match: 2, Groups: []string{"7", "mice"}},
		{Index: 3, Match: 0, Groups: []string{"5", "mice"}},
	}, got)
}

func TestExtractText_Errors(t *testing.T) {
	tbl := newTable("12 mice")

	_, err := ExtractText(tbl, `\d+\ mice`)
	assert.ErrorIs(t, err, ErrNoCaptureGroup)

	_, err = ExtractText(tbl, `(?:\d+)\ mice`)
	assert.ErrorIs(t, err, ErrNoCaptureGroup)

	_, err = ExtractText(tbl, `(\d+`)
	assert.Error(t, err)
}

func TestExtract_Tabular(t *testing.T) {
	e := Extract{Index: 3, Match: 1, Groups: []string{"12", "mice"}}
	assert.Equal(t, []string{"index", "match", "group_1", "group_2"}, e.Header())
	assert.Equal(t, []string{"3", "1", "12", "mice"}, e.Strings())
}
