package rangeset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// SetBuilder accumulates ranges for a Set. The zero value is ready to use.
type SetBuilder struct {
	in   []Range
	errs error
}

// AddRange adds all integers in r to s.
func (s *SetBuilder) AddRange(r Range) {
	if !r.IsValid() {
		s.errs = errors.Join(s.errs, fmt.Errorf("addRange(%v-%v)", r.From(), r.To()))
		return
	}
	s.in = append(s.in, r)
}

// AddSet adds all integers in b to s.
func (s *SetBuilder) AddSet(b *Set) {
	if b == nil {
		return
	}
	for _, r := range b.rr {
		s.AddRange(r)
	}
}

// Set returns the consolidated set of everything added so far, along with
// the errors collected for the ranges that were refused.
func (s *SetBuilder) Set() (*Set, error) {
	s.in = Consolidate(s.in)
	set := &Set{
		rr: append([]Range{}, s.in...),
	}
	if s.errs == nil {
		return set, nil
	}
	errs := s.errs
	s.errs = nil
	return set, errs
}

type Set struct {
	// rr is sorted and minimal: no overlapping ranges, no contiguous
	// ranges. Contains relies on this.
	rr []Range
}

// Ranges returns the minimum and sorted set of ranges that covers s.
func (s *Set) Ranges() []Range {
	return append([]Range{}, s.rr...)
}

// Len returns the number of ranges in s.
func (s *Set) Len() int {
	return len(s.rr)
}

// Size returns the number of integers in s.
func (s *Set) Size() int64 {
	return TotalCovered(s.rr)
}

// Contains returns whether p is in s.
func (s *Set) Contains(p int64) bool {
	i := sort.Search(len(s.rr), func(i int) bool { return s.rr[i].to >= p })
	return i < len(s.rr) && s.rr[i].Covers(p)
}

func (s *Set) String() string {
	parts := make([]string, 0, len(s.rr))
	for _, r := range s.rr {
		parts = append(parts, r.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}
