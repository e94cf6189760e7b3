package corpus

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/abscrub/internal/logger"
	"github.com/jmylchreest/abscrub/pkg/cleaner/abstract"
)

// Report holds the record counts at each pipeline stage.
type Report struct {
	Loaded            int             `json:"loaded"`
	WithAbstract      int             `json:"with_abstract"`
	Cleaned           int             `json:"cleaned"`
	Excluded          int             `json:"excluded"`
	KeptAfterCleaning int             `json:"kept_after_cleaning"`
	Stats             *abstract.Stats `json:"stats,omitempty"`
}

// String returns a one-line summary.
func (r *Report) String() string {
	return fmt.Sprintf("found %s, kept %s with abstract, cleaned %s, excluded %s, kept %s after cleaning",
		humanize.Comma(int64(r.Loaded)),
		humanize.Comma(int64(r.WithAbstract)),
		humanize.Comma(int64(r.Cleaned)),
		humanize.Comma(int64(r.Excluded)),
		humanize.Comma(int64(r.KeptAfterCleaning)))
}

// GetData loads the TSV sources and runs Process over them.
func GetData(ctx context.Context, paths []string, config *Config) (*Table, *Report, error) {
	t, err := LoadTSV(ctx, paths...)
	if err != nil {
		return nil, nil, err
	}
	return Process(ctx, t, config)
}

// Process runs the drop/clean/drop stages over t and returns a new table.
// The input table is not modified.
func Process(ctx context.Context, t *Table, config *Config) (*Table, *Report, error) {
	c, err := NewCleaner(config)
	if err != nil {
		return nil, nil, err
	}
	config = c.config

	if (config.Clean || config.Drop) && !t.HasColumn(AbstractColumn) {
		return nil, nil, fmt.Errorf("%w: column %q", ErrMissingField, AbstractColumn)
	}

	report := &Report{Loaded: t.Len()}
	logger.Info("found entries", "count", report.Loaded)

	if config.Drop {
		t = t.DropMissing(AbstractColumn)
		logger.Info("kept entries containing an abstract", "count", t.Len())
	}
	report.WithAbstract = t.Len()

	if config.Clean {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		cleaned, stats := c.CleanRecords(t.Records)
		report.Stats = stats

		out := &Table{Columns: t.Columns, Records: make([]Record, len(t.Records))}
		for i, r := range t.Records {
			derived := cleaned[i]
			r.Derived = &derived
			out.Records[i] = r
			if derived.IsCleaned {
				report.Cleaned++
			}
			if derived.Excluded {
				report.Excluded++
			}
		}
		t = out
		logger.Info("cleaned entries", "count", report.Cleaned, "excluded", report.Excluded)
		logger.Debug("cleaning stats", "matches", stats.TotalMatches(), "funding_exempt", stats.FundingExempt)

		if config.Drop {
			t = t.Filter(func(r Record) bool {
				return r.Derived.Cleaned != ""
			})
			logger.Info("kept entries after cleaning", "count", t.Len())
		}
	}
	report.KeptAfterCleaning = t.Len()

	return t, report, nil
}
