package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/v2/sets/treeset"
	"github.com/henderiw/freshrange/pkg/rangeset"
)

// Input is a parsed puzzle input: a block of "from-to" ranges, a blank
// line, then a block of points, one per line.
type Input struct {
	Ranges []rangeset.Range
	Points []int64
}

func ParseFile(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	in, err := Parse(f)
	if err != nil {
		return in, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// Parse reads an Input from r. Every malformed line is reported; the lines
// that did parse are still returned.
func Parse(r io.Reader) (*Input, error) {
	in := &Input{}
	var errm error

	scanner := bufio.NewScanner(r)
	points := false
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			// the first blank line after the ranges starts the points
			if len(in.Ranges) > 0 || errm != nil {
				points = true
			}
			continue
		}
		if !points {
			rng, err := rangeset.ParseRange(text)
			if err != nil {
				errm = errors.Join(errm, fmt.Errorf("line %d: %w", line, err))
				continue
			}
			in.Ranges = append(in.Ranges, rng)
			continue
		}
		p, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			errm = errors.Join(errm, fmt.Errorf("line %d: invalid point %q", line, text))
			continue
		}
		in.Points = append(in.Points, p)
	}
	if err := scanner.Err(); err != nil {
		errm = errors.Join(errm, err)
	}
	return in, errm
}

// PartOne returns the number of points covered by a range.
func (in *Input) PartOne() int {
	return rangeset.CountCovered(in.Points, in.Ranges)
}

// PartTwo returns the number of distinct integers covered by the ranges.
func (in *Input) PartTwo() int64 {
	return rangeset.TotalCovered(rangeset.Consolidate(in.Ranges))
}

// DistinctPoints returns the points without duplicates in ascending order.
func (in *Input) DistinctPoints() []int64 {
	return treeset.New[int64](in.Points...).Values()
}
