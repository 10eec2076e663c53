package intersect

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	test.T(t, Point{1.0, 2.0}.Add(Point{3.0, 4.0}), Point{4.0, 6.0})
	test.T(t, Point{1.0, 2.0}.Sub(Point{3.0, 4.0}), Point{-2.0, -2.0})
	test.T(t, Point{1.0, 2.0}.Mul(2.0), Point{2.0, 4.0})
	test.Float(t, Point{1.0, 2.0}.Dot(Point{3.0, 4.0}), 11.0)
	test.Float(t, Point{1.0, 2.0}.PerpDot(Point{3.0, 4.0}), -2.0)
	test.T(t, Point{0.0, 0.0}.Interpolate(Point{2.0, 4.0}, 0.5), Point{1.0, 2.0})
	test.T(t, Point{1.0, 2.5}.String(), "(1,2.5)")
}

func TestCmpFloat(t *testing.T) {
	nan := math.NaN()
	test.T(t, cmpFloat(1.0, 2.0), -1)
	test.T(t, cmpFloat(2.0, 1.0), 1)
	test.T(t, cmpFloat(1.0, 1.0), 0)
	test.T(t, cmpFloat(math.Inf(-1), 1.0), -1)
	test.T(t, cmpFloat(1.0, math.Inf(1)), -1)

	// NaNs order last so sorting stays consistent
	test.T(t, cmpFloat(nan, 1.0), 1)
	test.T(t, cmpFloat(1.0, nan), -1)
	test.T(t, cmpFloat(nan, nan), 0)
	test.T(t, cmpFloat(math.Inf(1), nan), -1)
}

func TestCmpPoints(t *testing.T) {
	var tts = []struct {
		p, q Point
		cmp  int
	}{
		{Point{0.0, 0.0}, Point{1.0, 0.0}, -1},
		{Point{1.0, 0.0}, Point{0.0, 5.0}, 1},
		{Point{1.0, 0.0}, Point{1.0, 1.0}, -1},
		{Point{1.0, 1.0}, Point{1.0, 1.0}, 0},
		{Point{2.0, -1.0}, Point{2.0, -2.0}, 1},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, cmpPoints(tt.p, tt.q), tt.cmp)
			test.T(t, cmpPoints(tt.q, tt.p), -tt.cmp)
		})
	}
}

func TestOrientation(t *testing.T) {
	var tts = []struct {
		a, b, c Point
		sign    int
	}{
		{Point{0.0, 0.0}, Point{2.0, 0.0}, Point{1.0, 1.0}, 1},
		{Point{0.0, 0.0}, Point{2.0, 0.0}, Point{1.0, -1.0}, -1},
		{Point{0.0, 0.0}, Point{2.0, 2.0}, Point{1.0, 1.0}, 0},
		{Point{0.0, 0.0}, Point{2.0, 2.0}, Point{3.0, 3.0}, 0},
		{Point{1.0, 1.0}, Point{1.0, 3.0}, Point{0.0, 2.0}, 1},
		{Point{1.0, 1.0}, Point{1.0, 3.0}, Point{2.0, 2.0}, -1},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, orientation(tt.a, tt.b, tt.c), tt.sign)

			// reversing the line flips the side
			test.T(t, orientation(tt.b, tt.a, tt.c), -tt.sign)
		})
	}
}

func TestDetSign(t *testing.T) {
	test.T(t, detSign(Point{2.0, 0.0}, Point{0.0, 3.0}), 1)
	test.T(t, detSign(Point{0.0, 3.0}, Point{2.0, 0.0}), -1)
	test.T(t, detSign(Point{2.0, 1.0}, Point{4.0, 2.0}), 0)

	// products whose difference underflows still get the right sign
	test.T(t, detSign(Point{1e-200, 1.0}, Point{1.0, 1e-200}), -1)
	test.T(t, detSign(Point{1.0, 1e-200}, Point{1e-200, 1.0}), 1)

	// antisymmetry
	us := []Point{{2.0, 1.0}, {-1.0, 3.0}, {0.0, 1.0}, {1e-300, 1e300}}
	vs := []Point{{1.0, 1.0}, {4.0, 2.0}, {-1.0, 0.0}, {1e300, 1e-300}}
	for _, u := range us {
		for _, v := range vs {
			test.T(t, detSign(u, v), -detSign(v, u))
		}
	}
}
