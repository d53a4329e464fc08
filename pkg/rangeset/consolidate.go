package rangeset

import (
	"sort"

	"github.com/emirpasic/gods/v2/queues/arrayqueue"
)

// CountCovered returns how many of points lie within at least one of rr.
// Duplicate points are counted once per occurrence.
func CountCovered(points []int64, rr []Range) int {
	count := 0
	for _, p := range points {
		for _, r := range rr {
			if r.Covers(p) {
				count++
				break
			}
		}
	}
	return count
}

// Disjoint returns a set of pairwise disjoint ranges covering the same
// points as rr. Ranges are kept in the order they were accepted; members
// may touch. rr is left untouched.
func Disjoint(rr []Range) []Range {
	work := arrayqueue.New[Range]()
	for _, r := range rr {
		if r.IsValid() {
			work.Enqueue(r)
		}
	}

	solutions := make([]Range, 0, len(rr))
	for !work.Empty() {
		cand, _ := work.Dequeue()
	retry:
		for {
			for _, prev := range solutions {
				switch Classify(cand, prev) {
				case OverlapNone:
					continue
				case OverlapCovered:
					break retry
				case OverlapBegin:
					cand = Range{from: prev.to + 1, to: cand.to}
				case OverlapEnd:
					cand = Range{from: cand.from, to: prev.from - 1}
				case OverlapStraddle:
					work.Enqueue(Range{from: prev.to + 1, to: cand.to})
					cand = Range{from: cand.from, to: prev.from - 1}
				}
				if !cand.IsValid() {
					break retry
				}
				// cand changed, start over against all solutions.
				continue retry
			}
			solutions = append(solutions, cand)
			break
		}
	}
	return solutions
}

// Consolidate returns the minimum and sorted set of ranges that cover rr.
func Consolidate(rr []Range) []Range {
	return Coalesce(Disjoint(rr))
}

// Coalesce sorts rr and merges overlapping and touching ranges. Invalid
// ranges are skipped. The result never aliases rr.
func Coalesce(rr []Range) []Range {
	in := make([]Range, 0, len(rr))
	for _, r := range rr {
		if r.IsValid() {
			in = append(in, r)
		}
	}
	if len(in) == 0 {
		return nil
	}

	sort.Slice(in, func(i, j int) bool { return in[i].Less(in[j]) })
	out := make([]Range, 1, len(in))
	out[0] = in[0]
	for _, r := range in[1:] {
		prev := &out[len(out)-1]
		switch {
		case prev.Touches(r):
			// prev and r touch, merge them.
			//
			//   prev     r
			// f------tf-----t
			prev.to = r.to
		case prev.EntirelyBefore(r):
			// No overlap and not adjacent, no merging possible.
			//
			//   prev       r
			// f------t  f-----t
			out = append(out, r)
		case prev.to < r.to:
			// Partial overlap, update prev.
			//
			//   prev
			// f------t
			//     f-----t
			//        r
			prev.to = r.to
		default:
			// r entirely contained in prev, nothing to do.
		}
	}
	return out
}

// TotalCovered returns the number of integers covered by rr, which must be
// pairwise disjoint.
func TotalCovered(rr []Range) int64 {
	var total int64
	for _, r := range rr {
		total += r.Size()
	}
	return total
}
