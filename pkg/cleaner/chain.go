package cleaner

import (
	"fmt"
	"strings"
)

// ChainCleaner applies multiple cleaners in sequence.
type ChainCleaner struct {
	cleaners []Cleaner
}

// NewChain creates a cleaner that applies the given cleaners in order.
//
// Example:
//
//	chain := cleaner.NewChain(
//	    cleaner.NewMarkup(),
//	    abstract.New(nil),
//	)
func NewChain(cleaners ...Cleaner) *ChainCleaner {
	return &ChainCleaner{
		cleaners: cleaners,
	}
}

// Clean applies all cleaners in sequence, stopping at the first error.
func (c *ChainCleaner) Clean(text string) (string, error) {
	var err error
	for _, cl := range c.cleaners {
		text, err = cl.Clean(text)
		if err != nil {
			return "", fmt.Errorf("%s: %w", cl.Name(), err)
		}
	}
	return text, nil
}

// Len returns the number of chained cleaners.
func (c *ChainCleaner) Len() int {
	return len(c.cleaners)
}

// Name returns the names of all chained cleaners.
func (c *ChainCleaner) Name() string {
	names := make([]string, len(c.cleaners))
	for i, cl := range c.cleaners {
		names[i] = cl.Name()
	}
	return "chain(" + strings.Join(names, "->") + ")"
}
