package abstract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailAddress(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"embedded", "contact me at a.b@example.com", true},
		{"bare", "jane-doe@uni-x.org", true},
		{"corresponding_author", "*Corresponding author: j.smith@lab.ac.uk", true},
		{"none", "no address here", false},
		{"at_sign_only", "measured @ 37 degrees", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmailAddress(tt.line))
		})
	}
}

func TestIsAuthorAffiliation(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"author_list", "John A. Smith, Jane B. Doe and Mary Lee", true},
		{"affiliation", "Department of Biology, University of Oslo, Norway", true},
		{"numbered_affiliations", "1Institut Pasteur, 2Universite de Paris, France", true},
		{"hyphenated_names", "Jean-Luc Picard, Anne-Marie Dupont, Paris", true},
		{"sentence", "we observed a significant increase in expression levels", false},
		{"capitalized_sentence", "We observed a significant increase in expression levels", false},
		{"too_short", "John Smith, Jane", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAuthorAffiliation(tt.line))
		})
	}
}

func TestClassifyLine(t *testing.T) {
	c := ClassifyLine("John A. Smith, Jane B. Doe and Mary Lee")
	assert.Equal(t, []string{"John", "A", "Smith", ",", "Jane", "B", "Doe", "and", "Mary", "Lee"}, c.Words)
	assert.Len(t, c.AuthorWords, 10)
	assert.InDelta(t, 1.0, c.Ratio(), 1e-9)
	assert.True(t, c.IsAuthorAffiliation())

	c = ClassifyLine("we observed a significant increase in expression levels")
	assert.NotContains(t, c.Words, "a", "single lowercase letters are dropped")
	assert.Equal(t, []string{"in"}, c.AuthorWords)
	assert.False(t, c.IsAuthorAffiliation())

	assert.Zero(t, ClassifyLine("").Ratio())
}

func TestIsAuthorLine(t *testing.T) {
	assert.True(t, IsAuthorLine("John A. Smith, Jane B. Doe and Mary Lee"))
	assert.True(t, IsAuthorLine("contact: a.b@example.com"))
	assert.False(t, IsAuthorLine("We studied X."))
}
