package version

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmylchreest/abscrub/pkg/cleaner/abstract"
)

func TestString_Dirty(t *testing.T) {
	orig := Dirty
	defer func() { Dirty = orig }()

	Dirty = "true"
	assert.Equal(t, Version+"-dirty", String())

	Dirty = "false"
	assert.Equal(t, Version, String())
}

func TestFull_IncludesPatternVersions(t *testing.T) {
	full := Full()
	assert.Contains(t, full, "abscrub ")
	assert.Contains(t, full, abstract.PatternVersion)
	assert.Contains(t, full, abstract.FundingExceptionsVersion)
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, abstract.PatternVersion, info.PatternVersion)
	assert.NotEmpty(t, info.GoVersion)
}
