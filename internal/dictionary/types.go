package dictionary

import (
	"errors"
	"sort"
)

// ErrInvalidUTF8 is returned when an input file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// LineSet is a set of normalized entries. Insertion order is not kept.
type LineSet map[string]struct{}

// NewLineSet normalizes every line and collects the non-empty results.
func NewLineSet(lines []string) LineSet {
	set := make(LineSet, len(lines))
	for _, l := range lines {
		set.Add(Normalize(l))
	}
	return set
}

// Add inserts an already normalized entry. Empty entries are ignored.
func (s LineSet) Add(entry string) {
	if entry == "" {
		return
	}
	s[entry] = struct{}{}
}

func (s LineSet) Has(entry string) bool {
	_, ok := s[entry]
	return ok
}

func (s LineSet) Len() int {
	return len(s)
}

// Sorted returns the entries in ascending byte order, which for UTF-8 is code point order.
func (s LineSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Difference returns the entries of s that are not in other.
func (s LineSet) Difference(other LineSet) LineSet {
	out := make(LineSet)
	for k := range s {
		if !other.Has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

func (s LineSet) Intersection(other LineSet) LineSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(LineSet, len(small))
	for k := range small {
		if large.Has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

// Union merges any number of sets into a new one.
func Union(sets ...LineSet) LineSet {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	out := make(LineSet, n)
	for _, s := range sets {
		for k := range s {
			out[k] = struct{}{}
		}
	}
	return out
}

// Comparison holds the outcome of comparing the original list against the public one.
type Comparison struct {
	OrigLines    []string // Raw non-empty lines, original order
	PubLines     []string
	OrigSet      LineSet
	PubSet       LineSet
	OnlyInOrig   []string // Sorted
	OnlyInPub    []string // Sorted
	Intersection []string // Sorted
}

// SurnameStats counts entries flagged by the French surname heuristic.
type SurnameStats struct {
	FrenchCount int
	Total       int
}

// Reporter receives the outcome of each pipeline stage.
type Reporter interface {
	Comparison(c *Comparison)
	MultiTokenLines(lines []string)
	ExtraTokens(tokens []string)
	SuggestionWritten(path string, entries int)
	Surnames(stats SurnameStats)
}
