package abstract

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats captures what the cleaner removed.
type Stats struct {
	// Size metrics
	InputBytes  int `json:"input_bytes"`
	OutputBytes int `json:"output_bytes"`

	// Per-phase accounting
	PhaseMatches map[Phase]int `json:"phase_matches"` // phase -> match count
	PhaseBytes   map[Phase]int `json:"phase_bytes"`   // phase -> bytes removed

	// FundingExempt counts texts that skipped the funding phase because
	// their index is in the exception set.
	FundingExempt int `json:"funding_exempt"`

	Duration time.Duration `json:"duration_ms"`
}

// NewStats creates a new Stats instance with initialized maps.
func NewStats() *Stats {
	return &Stats{
		PhaseMatches: make(map[Phase]int),
		PhaseBytes:   make(map[Phase]int),
	}
}

// RecordPhase records matches removed by a phase.
func (s *Stats) RecordPhase(phase Phase, matches, bytes int) {
	if matches == 0 {
		return
	}
	s.PhaseMatches[phase] += matches
	s.PhaseBytes[phase] += bytes
}

// Add accumulates other into s.
func (s *Stats) Add(other *Stats) {
	if other == nil {
		return
	}
	s.InputBytes += other.InputBytes
	s.OutputBytes += other.OutputBytes
	s.FundingExempt += other.FundingExempt
	s.Duration += other.Duration
	for p, n := range other.PhaseMatches {
		s.PhaseMatches[p] += n
	}
	for p, n := range other.PhaseBytes {
		s.PhaseBytes[p] += n
	}
}

// TotalMatches returns the sum of all phase matches.
func (s *Stats) TotalMatches() int {
	total := 0
	for _, n := range s.PhaseMatches {
		total += n
	}
	return total
}

// ReductionPercent returns the percentage reduction in size.
func (s *Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %s -> %s (%.1f%% reduction)\n",
		humanize.Bytes(uint64(s.InputBytes)), humanize.Bytes(uint64(s.OutputBytes)), s.ReductionPercent()))

	if len(s.PhaseMatches) > 0 {
		phases := make([]string, 0, len(s.PhaseMatches))
		for p := range s.PhaseMatches {
			phases = append(phases, string(p))
		}
		sort.Strings(phases)

		parts := make([]string, 0, len(phases))
		for _, p := range phases {
			parts = append(parts, fmt.Sprintf("%s=%s (%s)",
				p, humanize.Comma(int64(s.PhaseMatches[Phase(p)])), humanize.Bytes(uint64(s.PhaseBytes[Phase(p)]))))
		}
		sb.WriteString("Removed by phase: ")
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString("\n")
	}

	if s.FundingExempt > 0 {
		sb.WriteString(fmt.Sprintf("Funding exempt: %d\n", s.FundingExempt))
	}

	sb.WriteString(fmt.Sprintf("Timing: %v\n", s.Duration.Round(time.Microsecond)))

	return sb.String()
}

// Warning represents a non-fatal issue encountered during cleaning.
type Warning struct {
	Phase   Phase  `json:"phase"`
	Message string `json:"message"`
	Context string `json:"context"`
}

// String returns a formatted warning message.
func (w Warning) String() string {
	if w.Context != "" {
		return fmt.Sprintf("[%s] %s (context: %s)", w.Phase, w.Message, w.Context)
	}
	return fmt.Sprintf("[%s] %s", w.Phase, w.Message)
}

// Result contains the output of a cleaning operation.
type Result struct {
	// Content is the cleaned text. When a phase fails this is the
	// original input.
	Content string `json:"content"`

	// Stats contains metrics about what was removed.
	Stats *Stats `json:"stats"`

	// Warnings contains non-fatal issues encountered.
	Warnings []Warning `json:"warnings,omitempty"`

	// Error is set when a phase failed and the input was returned as is.
	Error error `json:"-"`
}

// AddWarning adds a warning to the result.
func (r *Result) AddWarning(phase Phase, message, context string) {
	r.Warnings = append(r.Warnings, Warning{
		Phase:   phase,
		Message: message,
		Context: context,
	})
}

// HasWarnings returns true if any warnings were recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}
