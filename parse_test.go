package intersect

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestParsePath(t *testing.T) {
	var tts = []struct {
		path      string
		polylines [][]Point
	}{
		{"", nil},
		{"  ", nil},
		{"M0 0L2 2", [][]Point{{{0.0, 0.0}, {2.0, 2.0}}}},
		{"M0 0 L1 0 L1 1", [][]Point{{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}}}},
		{"M0 0 1 0 1 1", [][]Point{{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}}}},
		{"M0,0L1,1", [][]Point{{{0.0, 0.0}, {1.0, 1.0}}}},
		{"m1 1l1 0l0 1", [][]Point{{{1.0, 1.0}, {2.0, 1.0}, {2.0, 2.0}}}},
		{"M0 0H2V3", [][]Point{{{0.0, 0.0}, {2.0, 0.0}, {2.0, 3.0}}}},
		{"M1 1h2v-3", [][]Point{{{1.0, 1.0}, {3.0, 1.0}, {3.0, -2.0}}}},
		{"M0 0L1 0L1 1Z", [][]Point{{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}, {0.0, 0.0}}}},
		{"M0 0L1 0Z M2 2L3 2", [][]Point{
			{{0.0, 0.0}, {1.0, 0.0}, {0.0, 0.0}},
			{{2.0, 2.0}, {3.0, 2.0}}}},
		{"M0 0L2 2M0 2L2 0", [][]Point{
			{{0.0, 0.0}, {2.0, 2.0}},
			{{0.0, 2.0}, {2.0, 0.0}}}},
		{"M1.5 -2.5L1e1 .5", [][]Point{{{1.5, -2.5}, {10.0, 0.5}}}},
	}
	for _, tt := range tts {
		t.Run(tt.path, func(t *testing.T) {
			polylines, err := ParsePath(tt.path)
			test.Error(t, err)
			test.T(t, len(polylines), len(tt.polylines))
			for i := range polylines {
				test.T(t, polylines[i], tt.polylines[i])
			}
		})
	}
}

func TestParsePathError(t *testing.T) {
	var tts = []string{
		"L1 1",
		"0 0",
		"M0",
		"M0 0L",
		"M0 0L1",
		"M0 0C1 1 2 2 3 3",
		"M0 0A5",
		"M0 0L1 1Z2 2",
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			_, err := ParsePath(tt)
			test.That(t, err != nil)
		})
	}
}

func TestMustParsePath(t *testing.T) {
	test.T(t, len(MustParsePath("M0 0L1 1")), 1)

	defer func() {
		test.That(t, recover() != nil)
	}()
	MustParsePath("garbage")
}
