package intersect

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestWriteSVG(t *testing.T) {
	si := intersector("M0 0L2 2M0 2L2 0M1 1L1 1")
	si.Compute()

	sb := strings.Builder{}
	test.Error(t, WriteSVG(&sb, si.Segments(), si.PointIntersections()))
	s := sb.String()
	test.That(t, strings.HasPrefix(s, "<svg "))
	test.That(t, strings.HasSuffix(s, "</svg>"))
	test.T(t, strings.Count(s, "<line "), 2)
	test.T(t, strings.Count(s, "<circle "), 2) // degenerate segment and intersection point
}

func TestWriteSVGEmpty(t *testing.T) {
	sb := strings.Builder{}
	test.Error(t, WriteSVG(&sb, nil, nil))
	test.That(t, strings.Contains(sb.String(), `viewBox="-.05 -1.05 1.1 1.1"`))
}

func TestNumDec(t *testing.T) {
	test.T(t, num(1.0).String(), "1")
	test.T(t, num(0.5).String(), ".5")
	test.T(t, num(-2.0).String(), "-2")
	test.T(t, dec(0.125).String(), ".125")
}
