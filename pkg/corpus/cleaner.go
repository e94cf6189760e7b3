package corpus

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/sourcegraph/conc/iter"

	"github.com/jmylchreest/abscrub/internal/logger"
	"github.com/jmylchreest/abscrub/pkg/cleaner/abstract"
)

// PlaceholderPrefix opens submissions that were never filled in.
const PlaceholderPrefix = "Lorem ipsum dolor sit amet"

// DefaultMinLength is the character count below which an abstract is
// excluded from cleaning.
const DefaultMinLength = 100

// LegacyFilterComposition reproduces the historic validity filter, where
// the placeholder result was computed and then overwritten by the length
// filter, so placeholder texts of 100+ characters were still cleaned.
// Set Config.DropPlaceholders to apply both rules.
const LegacyFilterComposition = true

// Config configures record-level cleaning.
type Config struct {
	// Clean runs the cleaner and fills the derived columns.
	Clean bool `json:"clean" yaml:"clean"`

	// Drop removes records without an abstract before cleaning and
	// records whose cleaned text is empty after it.
	Drop bool `json:"drop" yaml:"drop"`

	// DropPlaceholders also excludes texts starting with PlaceholderPrefix.
	DropPlaceholders bool `json:"drop_placeholders" yaml:"drop_placeholders"`

	// MinLength excludes texts shorter than this many characters.
	MinLength int `json:"min_length" yaml:"min_length" validate:"gte=0"`

	// Concurrency bounds the cleaning goroutines; 0 uses GOMAXPROCS.
	Concurrency int `json:"concurrency" yaml:"concurrency" validate:"gte=0"`

	// Cleaner configures the text scrubber. Nil uses abstract.DefaultConfig.
	Cleaner *abstract.Config `json:"cleaner" yaml:"cleaner"`
}

// DefaultConfig returns the get_data defaults: clean and drop.
func DefaultConfig() *Config {
	return &Config{
		Clean:            true,
		Drop:             true,
		DropPlaceholders: !LegacyFilterComposition,
		MinLength:        DefaultMinLength,
		Cleaner:          abstract.DefaultConfig(),
	}
}

// Validate checks field constraints, including the cleaner config.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid corpus config: %w", err)
	}
	return nil
}

// Cleaner cleans records with an abstract.Cleaner.
type Cleaner struct {
	config *Config
	text   *abstract.Cleaner
}

// NewCleaner validates config and builds a Cleaner.
// If config is nil, DefaultConfig() is used.
func NewCleaner(config *Config) (*Cleaner, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Cleaner == nil {
		merged := *config
		merged.Cleaner = abstract.DefaultConfig()
		config = &merged
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Cleaner{
		config: config,
		text:   abstract.New(config.Cleaner),
	}, nil
}

// Text returns the underlying text cleaner.
func (c *Cleaner) Text() *abstract.Cleaner {
	return c.text
}

// HasAuthors reports whether text opens with an author block.
func (c *Cleaner) HasAuthors(text string) bool {
	return c.text.HasAuthors(text)
}

// Exclusion reasons returned by Valid.
const (
	ReasonMissing     = "missing"
	ReasonPlaceholder = "placeholder"
	ReasonTooShort    = "too_short"
)

// Valid applies the validity rules to text and returns the reason it is
// excluded, or "" when it is kept.
func (c *Cleaner) Valid(text string) string {
	if utf8.RuneCountInString(text) < c.config.MinLength {
		return ReasonTooShort
	}
	if c.config.DropPlaceholders && strings.HasPrefix(text, PlaceholderPrefix) {
		return ReasonPlaceholder
	}
	return ""
}

// CleanText cleans the abstract of every valid record and returns the
// cleaned texts keyed by record index, in input order. Records without an
// abstract or failing a validity rule are left out.
func (c *Cleaner) CleanText(records []Record) (*Series, *abstract.Stats) {
	valid := make([]Record, 0, len(records))
	placeholders := 0
	for _, r := range records {
		text, ok := r.AbstractText()
		if !ok {
			continue
		}
		if strings.HasPrefix(text, PlaceholderPrefix) {
			placeholders++
		}
		if c.Valid(text) != "" {
			continue
		}
		valid = append(valid, r)
	}
	if placeholders > 0 && !c.config.DropPlaceholders {
		logger.Debug("placeholder abstracts kept by legacy filter composition", "count", placeholders)
	}

	mapper := iter.Mapper[Record, *abstract.Result]{MaxGoroutines: c.config.Concurrency}
	results := mapper.Map(valid, func(r *Record) *abstract.Result {
		text, _ := r.AbstractText()
		return c.text.CleanRecord(r.Index, text)
	})

	stats := abstract.NewStats()
	out := &Series{pos: make(map[int]int, len(valid))}
	for i, res := range results {
		stats.Add(res.Stats)
		out.append(valid[i].Index, res.Content)
	}
	return out, stats
}

// CleanRecords returns a CleanedRecord for every record, in order.
// Records left out by CleanText get an empty cleaned text and Excluded.
func (c *Cleaner) CleanRecords(records []Record) ([]CleanedRecord, *abstract.Stats) {
	cleaned, stats := c.CleanText(records)

	mapper := iter.Mapper[Record, bool]{MaxGoroutines: c.config.Concurrency}
	hasAuthors := mapper.Map(records, func(r *Record) bool {
		text, _ := r.AbstractText()
		return c.text.HasAuthors(text)
	})

	out := make([]CleanedRecord, len(records))
	for i, r := range records {
		raw, _ := r.AbstractText()
		text, ok := cleaned.Get(r.Index)
		out[i] = CleanedRecord{
			Index:      r.Index,
			Cleaned:    text,
			HasAuthors: hasAuthors[i],
			IsCleaned:  text != raw,
			Excluded:   !ok,
		}
	}
	return out, stats
}
