package corpus

import "fmt"

// Series is an ordered sequence of text values keyed by record index.
type Series struct {
	index  []int
	values []string
	pos    map[int]int
}

// NewSeries builds a series. Index and values must have the same length
// and indices must be unique.
func NewSeries(index []int, values []string) (*Series, error) {
	if len(index) != len(values) {
		return nil, fmt.Errorf("%w: %d indices for %d values", ErrIndexMisalignment, len(index), len(values))
	}
	s := &Series{pos: make(map[int]int, len(index))}
	for i, idx := range index {
		if _, dup := s.pos[idx]; dup {
			return nil, fmt.Errorf("%w: duplicate index %d", ErrIndexMisalignment, idx)
		}
		s.append(idx, values[i])
	}
	return s, nil
}

func (s *Series) append(index int, value string) {
	s.pos[index] = len(s.index)
	s.index = append(s.index, index)
	s.values = append(s.values, value)
}

// Len returns the number of values.
func (s *Series) Len() int {
	return len(s.index)
}

// Index returns a copy of the index labels in order.
func (s *Series) Index() []int {
	return append([]int(nil), s.index...)
}

// Get returns the value at index label idx.
func (s *Series) Get(idx int) (string, bool) {
	i, ok := s.pos[idx]
	if !ok {
		return "", false
	}
	return s.values[i], true
}

// Each calls fn for every (index, value) pair in order until fn
// returns false.
func (s *Series) Each(fn func(index int, value string) bool) {
	for i, idx := range s.index {
		if !fn(idx, s.values[i]) {
			return
		}
	}
}

// Loc selects the values at the given labels, in that order. Every label
// must exist.
func (s *Series) Loc(labels []int) (*Series, error) {
	out := &Series{pos: make(map[int]int, len(labels))}
	for _, idx := range labels {
		v, ok := s.Get(idx)
		if !ok {
			return nil, fmt.Errorf("%w: index %d not found", ErrIndexMisalignment, idx)
		}
		if _, dup := out.pos[idx]; dup {
			return nil, fmt.Errorf("%w: duplicate index %d", ErrIndexMisalignment, idx)
		}
		out.append(idx, v)
	}
	return out, nil
}

// From returns the values whose label is >= start, in order.
func (s *Series) From(start int) *Series {
	out := &Series{pos: make(map[int]int)}
	for i, idx := range s.index {
		if idx >= start {
			out.append(idx, s.values[i])
		}
	}
	return out
}

// Pair is a value from each of two aligned series.
type Pair struct {
	Index int
	Left  string
	Right string
}

// Compare aligns s to other's index and returns the pairs whose values
// differ. Every label of other must exist in s.
func (s *Series) Compare(other *Series) ([]Pair, error) {
	aligned, err := s.Loc(other.index)
	if err != nil {
		return nil, err
	}
	var diffs []Pair
	for i, idx := range other.index {
		if aligned.values[i] != other.values[i] {
			diffs = append(diffs, Pair{Index: idx, Left: aligned.values[i], Right: other.values[i]})
		}
	}
	return diffs, nil
}
