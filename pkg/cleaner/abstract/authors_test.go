package abstract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var body = strings.Repeat("we observed a significant increase ", 6)

func TestHasAuthors(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		window float64
		want   bool
	}{
		{
			name:   "author_block",
			text:   "John A. Smith, Jane B. Doe and Mary Lee\nDepartment of Biology, University of Oslo\n" + body,
			window: DefaultAuthorWindow,
			want:   true,
		},
		{
			name:   "email_line",
			text:   "j.smith@example.org\n" + body,
			window: DefaultAuthorWindow,
			want:   true,
		},
		{
			name:   "no_authors",
			text:   "Background: We studied X.\nResults: Y happened.\n" + body,
			window: DefaultAuthorWindow,
			want:   false,
		},
		{
			name:   "authors_outside_window",
			text:   body + body + "\nJohn A. Smith, Jane B. Doe and Mary Lee\n" + body,
			window: DefaultAuthorWindow,
			want:   false,
		},
		{
			// the last (cut) line of the window is never inspected
			name:   "window_cut_inside_author_line",
			text:   "John A. Smith, Jane B. Doe and Mary Lee",
			window: 1,
			want:   false,
		},
		{
			name:   "zero_window",
			text:   "John A. Smith, Jane B. Doe and Mary Lee\n" + body,
			window: 0,
			want:   false,
		},
		{
			name:   "empty",
			text:   "",
			window: DefaultAuthorWindow,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAuthors(tt.text, tt.window))
		})
	}
}

func TestRemoveLinesLikeAuthors(t *testing.T) {
	t.Run("drops_author_and_email_lines", func(t *testing.T) {
		text := "John A. Smith, Jane B. Doe and Mary Lee\njohn@example.org\n" + body
		assert.Equal(t, body, RemoveLinesLikeAuthors(text, DefaultAuthorWindow))
	})

	t.Run("keeps_content_lines", func(t *testing.T) {
		text := "A study of X\nJohn A. Smith, Jane B. Doe and Mary Lee\n" + body
		assert.Equal(t, "A study of X\n"+body, RemoveLinesLikeAuthors(text, DefaultAuthorWindow))
	})

	t.Run("tail_untouched", func(t *testing.T) {
		text := body + body + "\nJohn A. Smith, Jane B. Doe and Mary Lee"
		assert.Equal(t, text, RemoveLinesLikeAuthors(text, DefaultAuthorWindow))
	})

	t.Run("no_authors", func(t *testing.T) {
		assert.Equal(t, body, RemoveLinesLikeAuthors(body, DefaultAuthorWindow))
	})
}
