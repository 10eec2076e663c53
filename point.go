package intersect

import (
	"fmt"
	"math"
)

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// cmpFloat orders floats totally, putting NaNs last so that sorting and
// searching never see an inconsistent order.
func cmpFloat(a, b float64) int {
	if a < b {
		return -1
	} else if b < a {
		return 1
	} else if math.IsNaN(a) {
		if math.IsNaN(b) {
			return 0
		}
		return 1
	} else if math.IsNaN(b) {
		return -1
	}
	return 0
}

// cmpPoints orders points lexicographically by x and then y. This order is
// used for segment endpoint normalization and for the event queue alike.
func cmpPoints(p, q Point) int {
	if c := cmpFloat(p.X, q.X); c != 0 {
		return c
	}
	return cmpFloat(p.Y, q.Y)
}
