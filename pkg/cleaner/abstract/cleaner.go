package abstract

import (
	"time"

	"github.com/dlclark/regexp2"

	"github.com/jmylchreest/abscrub/internal/logger"
	"github.com/jmylchreest/abscrub/pkg/cleaner"
)

// NoIndex marks text that does not belong to an indexed record. Such text
// is never funding-exempt.
const NoIndex = -1

var _ cleaner.Cleaner = (*Cleaner)(nil)

// Cleaner strips boilerplate from abstract text. It implements the
// cleaner.Cleaner interface and is safe for concurrent use.
type Cleaner struct {
	config   *Config
	patterns *Patterns
	pre      []cleaner.Cleaner
}

// New creates a new Cleaner with the given configuration.
// If config is nil, DefaultConfig() is used.
func New(config *Config) *Cleaner {
	if config == nil {
		config = DefaultConfig()
	}

	patterns := DefaultPatterns()
	if config.MatchTimeout > 0 {
		patterns = MustCompilePatterns(config.MatchTimeout)
	}

	var pre []cleaner.Cleaner
	if config.StripMarkup {
		pre = append(pre, cleaner.NewMarkup())
	}
	if config.NormalizeUnicode {
		pre = append(pre, cleaner.NewUnicode())
	}

	return &Cleaner{
		config:   config,
		patterns: patterns,
		pre:      pre,
	}
}

// Name returns the cleaner name for logging.
func (c *Cleaner) Name() string {
	return "abstract"
}

// Config returns the configuration in use.
func (c *Cleaner) Config() *Config {
	return c.config
}

// Clean strips boilerplate from text that has no record index.
func (c *Cleaner) Clean(text string) (string, error) {
	result := c.CleanRecord(NoIndex, text)
	return result.Content, nil
}

// HasAuthors reports whether text opens with an author block, using the
// configured window.
func (c *Cleaner) HasAuthors(text string) bool {
	return HasAuthors(text, c.config.AuthorWindow)
}

// CleanRecord strips boilerplate from the text of record index and
// returns the content with stats.
func (c *Cleaner) CleanRecord(index int, text string) *Result {
	start := time.Now()
	result := &Result{Stats: NewStats()}
	result.Stats.InputBytes = len(text)

	content, err := c.run(index, text, result)
	if err != nil {
		// Graceful degradation: return original content with warning
		content = text
		result.Error = err
		logger.Warn("cleaning failed, keeping original text", "index", index, "error", err)
	}

	result.Content = content
	result.Stats.OutputBytes = len(content)
	result.Stats.Duration = time.Since(start)
	return result
}

func (c *Cleaner) run(index int, text string, result *Result) (string, error) {
	var err error
	for _, p := range c.pre {
		if text, err = p.Clean(text); err != nil {
			result.AddWarning("", "pre-processing failed", p.Name())
			return "", err
		}
	}

	if c.config.CombinedPass {
		if text, err = c.strip(PhaseCombined, c.patterns.Combined, text, -1, result); err != nil {
			return "", err
		}
	} else {
		// Order matters: the marker phase may consume leading lines the
		// section phase would otherwise see. Sections repeat because
		// stacked headers ("Background: Objectives:") only reach a line
		// start once the header before them is gone.
		phases := []struct {
			enabled bool
			phase   Phase
			re      *regexp2.Regexp
			count   int
			repeat  bool
		}{
			{c.config.StripAbstractMarker, PhaseAbstractMarker, c.patterns.AbstractMarker, 1, false},
			{c.config.StripSections, PhaseSections, c.patterns.Sections, -1, true},
			{c.config.StripTail, PhaseTail, c.patterns.Tail, 1, false},
		}
		for _, ph := range phases {
			if !ph.enabled {
				continue
			}
			if ph.repeat {
				text, err = c.stripUntilStable(ph.phase, ph.re, text, result)
			} else {
				text, err = c.strip(ph.phase, ph.re, text, ph.count, result)
			}
			if err != nil {
				return "", err
			}
		}
	}

	if c.config.StripFunding {
		if c.config.FundingExceptions.Contains(index) {
			result.Stats.FundingExempt++
		} else if text, err = c.strip(PhaseFunding, c.patterns.Funding, text, 1, result); err != nil {
			return "", err
		}
	}

	if c.config.CollapseWhitespace {
		text = cleaner.CollapseWhitespace(text)
	}
	return text, nil
}

// strip removes up to count matches of re (all when count is -1).
func (c *Cleaner) strip(phase Phase, re *regexp2.Regexp, text string, count int, result *Result) (string, error) {
	matches, removed := 0, 0
	out, err := re.ReplaceFunc(text, func(m regexp2.Match) string {
		matches++
		removed += len(m.String())
		return ""
	}, -1, count)
	if err != nil {
		result.AddWarning(phase, "pattern evaluation failed", err.Error())
		return "", err
	}

	result.Stats.RecordPhase(phase, matches, removed)
	if c.config.Debug && matches > 0 {
		logger.Debug("phase stripped text", "phase", phase, "matches", matches, "bytes", removed)
	}
	return out, nil
}

// stripUntilStable removes all matches of re, repeating until a pass
// leaves text unchanged. Every pass that matches shortens the text.
func (c *Cleaner) stripUntilStable(phase Phase, re *regexp2.Regexp, text string, result *Result) (string, error) {
	for {
		out, err := c.strip(phase, re, text, -1, result)
		if err != nil || out == text {
			return out, err
		}
		text = out
	}
}
