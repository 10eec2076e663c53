package intersect

import "sort"

// The sweep status holds the segments currently intersected by the sweep
// line, ordered from bottom to top by the ordinate at which each segment
// crosses it. It is an ordered slice of segment indices: lookups answer
// "which segments pass through this position" with a predicate-based binary
// search, and event processing replaces that contiguous sub-range in one
// operation. The position of a segment is always derived from the orientation
// predicate against its own endpoints, never from cached ordinates, so the
// order stays consistent with the intersection primitive.

// cmpAt compares where the segment crosses the sweep line against the event
// position: -1 when the segment passes below it, 0 when it passes through,
// +1 when it passes above. For vertical segments, which span a range of
// ordinates on the sweep line, the comparison is against that range.
func (si *SegmentIntersector) cmpAt(seg int, pos Point) int {
	s := si.segments[seg]
	if s.Vertical() {
		if s.B.Y < pos.Y {
			return -1
		} else if pos.Y < s.A.Y {
			return 1
		}
		return 0
	}
	return -orientation(s.A, s.B, pos)
}

// equalRange returns the half-open range [lo,hi) of status entries whose
// segments pass exactly through pos.
func (si *SegmentIntersector) equalRange(pos Point) (int, int) {
	lo := sort.Search(len(si.status), func(i int) bool {
		return 0 <= si.cmpAt(si.status[i], pos)
	})
	hi := sort.Search(len(si.status), func(i int) bool {
		return 0 < si.cmpAt(si.status[i], pos)
	})
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// statusIndex returns the position of seg in the status, or -1.
func (si *SegmentIntersector) statusIndex(seg int) int {
	for i, s := range si.status {
		if s == seg {
			return i
		}
	}
	return -1
}
