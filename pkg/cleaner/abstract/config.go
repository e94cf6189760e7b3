// Package abstract provides the heuristic boilerplate scrubber for
// conference abstracts. It strips "Abstract:" labels, section headers,
// keyword lines, acknowledgments, references and trailing funding
// statements while leaving the scientific content in place.
package abstract

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config defines all configuration options for the abstract cleaner.
type Config struct {
	// === Strip phases, applied in this order ===

	// StripAbstractMarker removes a leading "Abstract:" label, and any
	// lines before the last line carrying one.
	StripAbstractMarker bool `json:"strip_abstract_marker" yaml:"strip_abstract_marker"`

	// StripSections removes section header labels and keyword lines.
	StripSections bool `json:"strip_sections" yaml:"strip_sections"`

	// StripTail removes acknowledgments, references and bibliography
	// blocks through the end of the text.
	StripTail bool `json:"strip_tail" yaml:"strip_tail"`

	// StripFunding removes a trailing funding statement line unless the
	// record index is in FundingExceptions.
	StripFunding bool `json:"strip_funding" yaml:"strip_funding"`

	// CombinedPass replaces every match of a single alternation of the
	// marker, section and tail patterns in one pass over the original
	// text instead of running them as ordered phases.
	CombinedPass bool `json:"combined_pass" yaml:"combined_pass"`

	// === Pre/post processing ===

	// StripMarkup removes inline HTML before matching.
	StripMarkup bool `json:"strip_markup" yaml:"strip_markup"`

	// NormalizeUnicode rewrites input to NFC before matching.
	NormalizeUnicode bool `json:"normalize_unicode" yaml:"normalize_unicode"`

	// CollapseWhitespace joins the remaining lines into a single
	// space-separated paragraph.
	CollapseWhitespace bool `json:"collapse_whitespace" yaml:"collapse_whitespace"`

	// === Heuristics ===

	// AuthorWindow is the leading fraction of the text scanned by
	// HasAuthors. Default: 0.5.
	AuthorWindow float64 `json:"author_window" yaml:"author_window" validate:"gte=0,lte=1"`

	// MatchTimeout bounds a single pattern evaluation. Zero disables it.
	MatchTimeout time.Duration `json:"match_timeout" yaml:"match_timeout" validate:"gte=0"`

	// FundingExceptions are record indices exempt from StripFunding.
	FundingExceptions ExceptionSet `json:"-" yaml:"-"`

	// Debug enables per-phase debug logging.
	Debug bool `json:"debug" yaml:"debug"`
}

// DefaultConfig runs every strip phase in order and collapses the result
// into a single paragraph.
func DefaultConfig() *Config {
	return &Config{
		StripAbstractMarker: true,
		StripSections:       true,
		StripTail:           true,
		StripFunding:        true,
		CombinedPass:        false,

		StripMarkup:        false,
		NormalizeUnicode:   false,
		CollapseWhitespace: true,

		AuthorWindow:      DefaultAuthorWindow,
		MatchTimeout:      2 * time.Second,
		FundingExceptions: FundingExceptions,
	}
}

// PresetAudit keeps line structure so line diffs against the raw text
// show exactly what each phase removed.
func PresetAudit() *Config {
	cfg := DefaultConfig()
	cfg.CollapseWhitespace = false
	return cfg
}

// PresetLegacy reproduces the historic single-pass behaviour: one
// alternation replaced everywhere, no whitespace handling. The pass
// removes every match of the combined alternation, not only the first,
// because the historic str.replace call did.
func PresetLegacy() *Config {
	cfg := DefaultConfig()
	cfg.CombinedPass = true
	cfg.CollapseWhitespace = false
	return cfg
}

// Preset returns a named preset: "default", "audit" or "legacy".
func Preset(name string) (*Config, error) {
	switch name {
	case "", "default":
		return DefaultConfig(), nil
	case "audit":
		return PresetAudit(), nil
	case "legacy":
		return PresetLegacy(), nil
	default:
		return nil, fmt.Errorf("unknown preset %q (want default, audit or legacy)", name)
	}
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid cleaner config: %w", err)
	}
	return nil
}

// Merge merges another config into this one.
// Boolean options from other win when true; numeric options win when
// positive; a non-empty exception set replaces this one.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	merged := *c

	if other.StripAbstractMarker {
		merged.StripAbstractMarker = true
	}
	if other.StripSections {
		merged.StripSections = true
	}
	if other.StripTail {
		merged.StripTail = true
	}
	if other.StripFunding {
		merged.StripFunding = true
	}
	if other.CombinedPass {
		merged.CombinedPass = true
	}
	if other.StripMarkup {
		merged.StripMarkup = true
	}
	if other.NormalizeUnicode {
		merged.NormalizeUnicode = true
	}
	if other.CollapseWhitespace {
		merged.CollapseWhitespace = true
	}
	if other.Debug {
		merged.Debug = true
	}

	if other.AuthorWindow > 0 {
		merged.AuthorWindow = other.AuthorWindow
	}
	if other.MatchTimeout > 0 {
		merged.MatchTimeout = other.MatchTimeout
	}
	if other.FundingExceptions.Len() > 0 {
		merged.FundingExceptions = other.FundingExceptions
	}

	return &merged
}
