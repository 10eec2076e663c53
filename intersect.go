// Package intersect computes all the points where two or more 2D line
// segments intersect, using a Bentley-Ottmann sweep line. All geometric
// decisions are made by exact sign predicates on the input coordinates, there
// are no epsilon tolerances; a robustness patch on the sweep status absorbs
// the rounding of computed intersection positions.
package intersect

import "slices"

// SegmentContribution records one segment passing through an intersection
// point: the segment's index and the parameter in [0,1] at which it passes
// through, measured along the segment's normalized direction.
type SegmentContribution struct {
	Segment int
	T       float64
}

// PointIntersection is a position where two or more registered segments
// meet, with one contribution per segment through it.
type PointIntersection struct {
	Point
	Contributions []SegmentContribution
}

// Polyline is the contiguous range [Begin,End) of segment indices registered
// by a single AddPolyline call.
type Polyline struct {
	Begin, End int
}

// SegmentIntersector computes the intersections among a set of 2D line
// segments. Register segments with AddSegment or AddPolyline, call Compute,
// and read the result from PointIntersections. An instance is not safe for
// concurrent use, but independent instances may run in parallel.
type SegmentIntersector struct {
	segments  []Segment
	polylines []Polyline

	queue   eventQueue
	status  []int // active segment indices, ordered bottom to top
	scratch Intersections
	zs      []PointIntersection
}

func New() *SegmentIntersector {
	return &SegmentIntersector{}
}

// Clear removes all registered segments and any computed intersections,
// keeping the allocated memory for reuse.
func (si *SegmentIntersector) Clear() {
	si.segments = si.segments[:0]
	si.polylines = si.polylines[:0]
	si.queue = si.queue[:0]
	si.status = si.status[:0]
	si.zs = si.zs[:0]
}

// AddSegment registers the segment between a and b and returns its index.
// Degenerate segments (a == b) are allowed; they intersect other segments
// passing exactly through their position.
func (si *SegmentIntersector) AddSegment(a, b Point) int {
	si.segments = append(si.segments, newSegment(a, b))
	return len(si.segments) - 1
}

// AddPolyline registers one segment per consecutive pair of points and
// returns the contiguous segment index range. Fewer than two points register
// nothing.
func (si *SegmentIntersector) AddPolyline(points []Point) Polyline {
	return si.AddPolylineFunc(len(points), func(i int) Point {
		return points[i]
	})
}

// AddPolylineFunc is AddPolyline reading its n points from a callback, which
// avoids building an intermediate slice when the caller stores positions in
// its own structures.
func (si *SegmentIntersector) AddPolylineFunc(n int, at func(i int) Point) Polyline {
	begin := len(si.segments)
	if 1 < n {
		prev := at(0)
		for i := 1; i < n; i++ {
			cur := at(i)
			si.AddSegment(prev, cur)
			prev = cur
		}
	}
	polyline := Polyline{begin, len(si.segments)}
	si.polylines = append(si.polylines, polyline)
	return polyline
}

// Segments returns the registered segments, normalized. The slice is owned
// by the intersector and must not be modified.
func (si *SegmentIntersector) Segments() []Segment {
	return si.segments
}

// Polylines returns the segment index range of each AddPolyline call.
func (si *SegmentIntersector) Polylines() []Polyline {
	return si.polylines
}

// PointIntersections returns the intersections found by the last Compute, in
// non-decreasing position order (x then y). The slice is owned by the
// intersector and is invalidated by the next Compute or Clear.
func (si *SegmentIntersector) PointIntersections() []PointIntersection {
	return si.zs
}

// Compute runs the sweep over all registered segments. It resets the
// algorithm state but keeps the registered segments, so calling it twice
// yields the same result.
func (si *SegmentIntersector) Compute() {
	si.queue = si.queue[:0]
	si.status = si.status[:0]
	si.zs = si.zs[:0]

	for i, seg := range si.segments {
		si.queue = append(si.queue,
			event{seg.A, eventLeft, i},
			event{seg.B, eventRight, i})
	}
	si.queue.init()

	for 0 < len(si.queue) {
		si.processPosition()
	}
	if 0 < len(si.status) {
		panic("bug: sweep status not empty after all events")
	}
}

// processPosition pops all events at the next position and handles them as
// one batch: segments through the position are reported as an intersection
// when two or more meet, ending segments are removed, continuing and
// starting segments are reinserted in their order just right of the
// position, and newly adjacent segments are checked for future crossings.
func (si *SegmentIntersector) processPosition() {
	pos := si.queue[0].pos

	// batch with the same total order the queue is sorted by, so that NaN
	// positions compare equal to themselves and the queue always drains
	var lefts, rights, inters []int
	for 0 < len(si.queue) && cmpPoints(si.queue[0].pos, pos) == 0 {
		e := si.queue.pop()
		switch e.typ {
		case eventLeft:
			lefts = append(lefts, e.seg)
		case eventRight:
			rights = append(rights, e.seg)
		default:
			// the queue is a multiset, the same crossing may have been
			// scheduled several times
			if !slices.Contains(inters, e.seg) {
				inters = append(inters, e.seg)
			}
		}
	}

	// find the status range of segments passing through pos. Computed
	// intersection positions are rounded and may sit slightly off the
	// segments that produced them, so the range is extended to include every
	// segment named by an event of this batch.
	lo, hi := si.equalRange(pos)
	for _, seg := range inters {
		if idx := si.statusIndex(seg); idx < 0 {
			// stale, the segment already ended
		} else if idx < lo {
			lo = idx
		} else if hi <= idx {
			hi = idx + 1
		}
	}
	for _, seg := range rights {
		if si.segments[seg].Degenerate() {
			continue // never inserted
		}
		idx := si.statusIndex(seg)
		if idx < 0 {
			panic("bug: segment missing from sweep status")
		} else if idx < lo {
			lo = idx
		} else if hi <= idx {
			hi = idx + 1
		}
	}
	cross := si.status[lo:hi]

	// two or more segments through one position intersect there
	if 2 <= len(cross)+len(lefts) {
		z := PointIntersection{Point: pos}
		for _, seg := range cross {
			z.Contributions = append(z.Contributions,
				SegmentContribution{seg, si.segments[seg].param(pos)})
		}
		for _, seg := range lefts {
			z.Contributions = append(z.Contributions,
				SegmentContribution{seg, 0.0})
		}
		si.zs = append(si.zs, z)
	}

	// segments continuing past pos leave the position in slope order, from
	// bottom to top just right of the sweep line; this reorders crossing
	// segments in a single step
	outgoing := make([]int, 0, len(cross)+len(lefts))
	for _, seg := range cross {
		if cmpPoints(si.segments[seg].B, pos) != 0 {
			outgoing = append(outgoing, seg)
		}
	}
	for _, seg := range lefts {
		if !si.segments[seg].Degenerate() {
			outgoing = append(outgoing, seg)
		}
	}
	slices.SortStableFunc(outgoing, func(i, j int) int {
		return cmpFloat(si.segments[i].Slope(), si.segments[j].Slope())
	})
	si.status = slices.Replace(si.status, lo, hi, outgoing...)

	// segments that became adjacent may cross further right
	if m := len(outgoing); 0 < m {
		if 0 < lo {
			si.schedule(si.status[lo-1], si.status[lo], pos)
		}
		if lo+m < len(si.status) {
			si.schedule(si.status[lo+m-1], si.status[lo+m], pos)
		}
	} else if 0 < lo && lo < len(si.status) {
		si.schedule(si.status[lo-1], si.status[lo], pos)
	}
}

// schedule intersects two segments that became neighbors in the status and
// queues an intersection event for each crossing strictly right of pos.
// Crossings at or before pos have already been handled; collinear overlap
// endpoints coincide with segment endpoints and are covered by the left and
// right events themselves.
func (si *SegmentIntersector) schedule(sa, sb int, pos Point) {
	si.scratch = intersectSegments(si.scratch[:0], si.segments[sa], si.segments[sb])
	for _, z := range si.scratch {
		if 0 < cmpPoints(z.Point, pos) {
			si.queue.push(event{z.Point, eventIntersection, sa})
			si.queue.push(event{z.Point, eventIntersection, sb})
		}
	}
}
