package rangeset

// Overlap describes how an existing solution range relates to a candidate
// range during consolidation.
type Overlap int

const (
	// OverlapNone: prev shares no point with the candidate.
	OverlapNone Overlap = iota
	// OverlapCovered: prev covers both endpoints of the candidate.
	OverlapCovered
	// OverlapBegin: prev covers the begin but not the end of the candidate.
	OverlapBegin
	// OverlapEnd: prev covers the end but not the begin of the candidate.
	OverlapEnd
	// OverlapStraddle: the candidate strictly contains prev on both sides.
	OverlapStraddle
)

func (o Overlap) String() string {
	switch o {
	case OverlapNone:
		return "none"
	case OverlapCovered:
		return "covered"
	case OverlapBegin:
		return "begin"
	case OverlapEnd:
		return "end"
	case OverlapStraddle:
		return "straddle"
	default:
		return "unknown"
	}
}

// Classify returns the overlap of prev onto candidate. Ranges that only
// touch at a boundary do not overlap.
func Classify(candidate, prev Range) Overlap {
	switch begin, end := prev.Covers(candidate.from), prev.Covers(candidate.to); {
	case begin && end:
		//      prev
		// f-----------t
		//    f-----t
		//   candidate
		return OverlapCovered
	case begin:
		//   prev
		// f------t
		//    f------t
		//   candidate
		return OverlapBegin
	case end:
		//           prev
		//        f------t
		//    f------t
		//   candidate
		return OverlapEnd
	case prev.InMiddleOf(candidate):
		//       prev
		//    f------t
		// f-------------t
		//    candidate
		return OverlapStraddle
	default:
		return OverlapNone
	}
}
