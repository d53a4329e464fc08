package rangeset

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is the closed interval [from, to].
type Range struct {
	from int64
	to   int64
}

func RangeFrom(from, to int64) Range {
	return Range{from: from, to: to}
}

// From returns the lower bound of r.
func (r Range) From() int64 { return r.from }

// To returns the upper bound of r.
func (r Range) To() int64 { return r.to }

// ParseRange parses a range in the "from-to" notation. A leading minus on
// either bound is read as a sign, so "-5--1" is [-5, -1].
func ParseRange(s string) (Range, error) {
	var r Range
	s = strings.TrimSpace(s)
	h := -1
	if len(s) > 1 {
		if i := strings.IndexByte(s[1:], '-'); i != -1 {
			h = i + 1
		}
	}
	if h == -1 {
		return r, fmt.Errorf("no hyphen in range %q", s)
	}
	from, to := strings.TrimSpace(s[:h]), strings.TrimSpace(s[h+1:])
	fromInt, err := strconv.ParseInt(from, 10, 64)
	if err != nil {
		return r, fmt.Errorf("invalid from %q in range %q", from, s)
	}
	toInt, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		return r, fmt.Errorf("invalid to %q in range %q", to, s)
	}
	r = RangeFrom(fromInt, toInt)
	if !r.IsValid() {
		return r, fmt.Errorf("invalid range %q: from is bigger then to", s)
	}
	return r, nil
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.from, r.to)
}

func (r Range) IsValid() bool {
	return r.from <= r.to
}

func (r Range) IsZero() bool {
	return r == Range{}
}

// Size returns the number of integers covered by r, 0 for an invalid range.
func (r Range) Size() int64 {
	if !r.IsValid() {
		return 0
	}
	return r.to - r.from + 1
}

// Covers returns whether p lies within r.
func (r Range) Covers(p int64) bool {
	return r.from <= p && p <= r.to
}

// Less orders ranges by ascending from, and by descending to on a tie so
// the wider range comes first.
func (r Range) Less(other Range) bool {
	if r.from != other.from {
		return r.from < other.from
	}
	return other.to < r.to
}

// EntirelyBefore returns whether r lies entirely before other.
func (r Range) EntirelyBefore(other Range) bool {
	return r.to < other.from
}

// Touches returns whether r ends right before other starts.
func (r Range) Touches(other Range) bool {
	return r.to < other.from && r.to+1 == other.from
}

// CoveredBy returns whether r is entirely contained within other.
func (r Range) CoveredBy(other Range) bool {
	return other.from <= r.from && r.to <= other.to
}

// InMiddleOf returns whether r is inside other, but not touching the
// edges of other.
func (r Range) InMiddleOf(other Range) bool {
	return other.from < r.from && r.to < other.to
}

// OverlapsStartOf returns whether r overlaps the start of other, but not
// all of other.
func (r Range) OverlapsStartOf(other Range) bool {
	return r.from <= other.from && other.from <= r.to && r.to < other.to
}

// OverlapsEndOf returns whether r overlaps the end of other, but not all
// of other.
func (r Range) OverlapsEndOf(other Range) bool {
	return other.from < r.from && r.from <= other.to && other.to <= r.to
}
