package intersect

import (
	"fmt"
	"math"
)

// Segment is a straight line segment between two points. Segments are
// normalized on construction so that A is the lexicographically smaller
// endpoint; Reversed records whether the caller supplied the endpoints in
// the opposite order, so that reported parameters can be mapped back to the
// caller's direction with 1-t. A segment may be degenerate (A == B).
type Segment struct {
	A, B     Point
	Reversed bool
}

func newSegment(a, b Point) Segment {
	if cmpPoints(b, a) < 0 {
		return Segment{b, a, true}
	}
	return Segment{a, b, false}
}

// Degenerate returns true if both endpoints coincide. Compared with
// cmpPoints so that NaN coordinates compare equal to themselves and a NaN
// point segment still counts as degenerate.
func (s Segment) Degenerate() bool {
	return cmpPoints(s.A, s.B) == 0
}

// Vertical returns true if the segment is vertical.
func (s Segment) Vertical() bool {
	return s.A.X == s.B.X && s.A.Y != s.B.Y
}

// Slope returns the slope dy/dx of the segment along the normalized
// direction. Vertical segments get +Inf, since their x stays constant past
// an event they order above any segment that advances to the right.
func (s Segment) Slope() float64 {
	if s.A.X == s.B.X {
		return math.Inf(1)
	}
	return (s.B.Y - s.A.Y) / (s.B.X - s.A.X)
}

// param returns the position of p along the segment in [0,1], measured along
// the normalized direction. p is assumed to lie on the segment's supporting
// line.
func (s Segment) param(p Point) float64 {
	var t float64
	if s.Degenerate() {
		return 0.0
	} else if s.Vertical() {
		t = (p.Y - s.A.Y) / (s.B.Y - s.A.Y)
	} else {
		t = (p.X - s.A.X) / (s.B.X - s.A.X)
	}
	return clampUnit(t)
}

// contains returns true if p lies on the segment; p is assumed to lie on the
// segment's supporting line already, which reduces the test to one dimension.
func (s Segment) contains(p Point) bool {
	if s.Vertical() {
		return s.A.Y <= p.Y && p.Y <= s.B.Y
	}
	return s.A.X <= p.X && p.X <= s.B.X
}

func (s Segment) String() string {
	return fmt.Sprintf("%v--%v", s.A, s.B)
}

func clampUnit(t float64) float64 {
	if t < 0.0 {
		return 0.0
	} else if 1.0 < t {
		return 1.0
	}
	return t
}

// Intersection is a single intersection between two segments: its position
// and the parameter along each segment in [0,1]. A collinear overlap is
// reported as two intersections, one per overlap endpoint, with Overlap set.
type Intersection struct {
	Point
	T       [2]float64
	Overlap bool
}

func (z Intersection) String() string {
	overlap := ""
	if z.Overlap {
		overlap = " Overlap"
	}
	return fmt.Sprintf("(%v t={%g,%g}%v)", z.Point, z.T[0], z.T[1], overlap)
}

// Intersections is the result of intersecting two segments: no records when
// they do not meet, one record for a point intersection, and two records
// marking the endpoints of a collinear overlap.
type Intersections []Intersection

// Has returns true if there are intersections.
func (zs Intersections) Has() bool {
	return 0 < len(zs)
}

// HasOverlap returns true when the segments overlap along a shared line.
func (zs Intersections) HasOverlap() bool {
	for _, z := range zs {
		if z.Overlap {
			return true
		}
	}
	return false
}

// Intersect intersects the segments a0-a1 and b0-b1 and returns the
// intersections found, with parameters relative to the endpoint order as
// given. Any two points form a valid segment, including a0 == a1. Vertical
// segments, collinear segments, and shared endpoints are handled as
// first-class cases.
func Intersect(a0, a1, b0, b1 Point) Intersections {
	a, b := newSegment(a0, a1), newSegment(b0, b1)
	zs := intersectSegments(nil, a, b)
	for i := range zs {
		if a.Reversed {
			zs[i].T[0] = 1.0 - zs[i].T[0]
		}
		if b.Reversed {
			zs[i].T[1] = 1.0 - zs[i].T[1]
		}
	}
	return zs
}

// intersectSegments intersects two normalized segments and appends the
// intersections to zs, with T[0] along a and T[1] along b. All decisions are
// made by sign predicates, never by comparing solved parameters, so that the
// yes/no decision always agrees with the branch that computes the position.
func intersectSegments(zs Intersections, a, b Segment) Intersections {
	if cmpPoints(b.A, a.A) < 0 {
		// reorder so the segment starting first comes first, the swap is
		// undone on the reported parameters
		n := len(zs)
		zs = intersectSegments(zs, b, a)
		for i := n; i < len(zs); i++ {
			zs[i].T[0], zs[i].T[1] = zs[i].T[1], zs[i].T[0]
		}
		return zs
	}

	// degenerate segments are intersected as a point-vs-segment side test
	if a.Degenerate() {
		if b.Degenerate() {
			if a.A == b.A {
				zs = append(zs, Intersection{a.A, [2]float64{0.0, 0.0}, false})
			}
			return zs
		}
		if orientation(b.A, b.B, a.A) == 0 && b.contains(a.A) {
			zs = append(zs, Intersection{a.A, [2]float64{0.0, b.param(a.A)}, false})
		}
		return zs
	} else if b.Degenerate() {
		if orientation(a.A, a.B, b.A) == 0 && a.contains(b.A) {
			zs = append(zs, Intersection{b.A, [2]float64{a.param(b.A), 0.0}, false})
		}
		return zs
	}

	// fast reject on x ranges, a starts at or before b
	if a.B.X < b.A.X {
		return zs
	}

	ob0 := orientation(a.A, a.B, b.A)
	ob1 := orientation(a.A, a.B, b.B)
	oa0 := orientation(b.A, b.B, a.A)
	oa1 := orientation(b.A, b.B, a.B)

	if ob0 == 0 && ob1 == 0 || oa0 == 0 && oa1 == 0 {
		// collinear, overlap on the shared line
		return intersectCollinear(zs, a, b)
	}

	// shared endpoints are resolved exactly, before any numerical work
	if a.A == b.A {
		return append(zs, Intersection{a.A, [2]float64{0.0, 0.0}, false})
	} else if a.A == b.B {
		return append(zs, Intersection{a.A, [2]float64{0.0, 1.0}, false})
	} else if a.B == b.A {
		return append(zs, Intersection{a.B, [2]float64{1.0, 0.0}, false})
	} else if a.B == b.B {
		return append(zs, Intersection{a.B, [2]float64{1.0, 1.0}, false})
	}

	zeros := 0
	for _, o := range [4]int{ob0, ob1, oa0, oa1} {
		if o == 0 {
			zeros++
		}
	}
	if 2 <= zeros {
		// without a shared endpoint this can only happen when rounding made
		// near-collinear segments look inconsistent, treat all four points
		// as collinear
		return intersectCollinear(zs, a, b)
	} else if zeros == 1 {
		// three points collinear: one endpoint lies on the other segment's
		// line. Parameterize directly along that segment, independent of the
		// fourth point, so that repeated calls with shared endpoints across
		// many segment pairs stay consistent.
		if ob0 == 0 {
			if a.contains(b.A) {
				zs = append(zs, Intersection{b.A, [2]float64{a.param(b.A), 0.0}, false})
			}
		} else if ob1 == 0 {
			if a.contains(b.B) {
				zs = append(zs, Intersection{b.B, [2]float64{a.param(b.B), 1.0}, false})
			}
		} else if oa0 == 0 {
			if b.contains(a.A) {
				zs = append(zs, Intersection{a.A, [2]float64{0.0, b.param(a.A)}, false})
			}
		} else {
			if b.contains(a.B) {
				zs = append(zs, Intersection{a.B, [2]float64{1.0, b.param(a.B)}, false})
			}
		}
		return zs
	}

	if (0 < ob0) == (0 < ob1) || (0 < oa0) == (0 < oa1) {
		// no sign change on one of the segments
		return zs
	}

	// proper interior crossing, solve the 2x2 linear system for the
	// parameters with the determinant of the direction vectors as denominator
	da := a.B.Sub(a.A)
	db := b.B.Sub(b.A)
	denom := da.PerpDot(db)
	if denom == 0.0 {
		// numerically parallel despite the sign change
		return intersectCollinear(zs, a, b)
	}
	w := b.A.Sub(a.A)
	ta := clampUnit(w.PerpDot(db) / denom)
	tb := clampUnit(w.PerpDot(da) / denom)
	pos := a.A.Interpolate(a.B, ta)
	return append(zs, Intersection{pos, [2]float64{ta, tb}, false})
}

// intersectCollinear performs a 1D overlap test of two collinear segments
// along the dominant axis of a.
func intersectCollinear(zs Intersections, a, b Segment) Intersections {
	proj := func(p Point) float64 { return p.X }
	if math.Abs(a.B.X-a.A.X) < math.Abs(a.B.Y-a.A.Y) {
		proj = func(p Point) float64 { return p.Y }
	}

	aLo, aHi := a.A, a.B
	if proj(aHi) < proj(aLo) {
		aLo, aHi = aHi, aLo
	}
	bLo, bHi := b.A, b.B
	if proj(bHi) < proj(bLo) {
		bLo, bHi = bHi, bLo
	}

	p0 := aLo
	if proj(p0) < proj(bLo) {
		p0 = bLo
	}
	p1 := aHi
	if proj(bHi) < proj(p1) {
		p1 = bHi
	}
	if proj(p1) < proj(p0) {
		return zs
	} else if proj(p0) == proj(p1) {
		// touching at a single point
		return append(zs, Intersection{p0, [2]float64{a.param(p0), b.param(p0)}, false})
	}
	zs = append(zs, Intersection{p0, [2]float64{a.param(p0), b.param(p0)}, true})
	zs = append(zs, Intersection{p1, [2]float64{a.param(p1), b.param(p1)}, true})
	return zs
}
