package intersect

// The sweep relies on every "which side" question being answered by the same
// sign predicates. Two calls with mathematically identical inputs must return
// the same sign, even when the call sites rearranged the operands, otherwise
// the status structure order and the intersection primitive disagree and the
// sweep derails. For that reason there are no epsilon tolerances here: a
// tolerance in one predicate but not another breaks the consistency that the
// rest of the algorithm assumes.

// detSign returns the sign of the determinant |u v| of the two column
// vectors. The products are compared directly instead of subtracted, which
// keeps the sign stable for inputs whose difference underflows.
func detSign(u, v Point) int {
	a := u.X * v.Y
	b := v.X * u.Y
	if a < b {
		return -1
	} else if b < a {
		return 1
	}
	return 0
}

// orientation returns the side of the directed line AB that C lies on:
// +1 when C is to the left (counter-clockwise), -1 to the right, 0 when the
// three points are collinear.
func orientation(a, b, c Point) int {
	return detSign(b.Sub(a), c.Sub(a))
}
