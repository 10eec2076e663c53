package intersect

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Precision is the number of significant digits written by WriteSVG.
const Precision = 8

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, f)
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

type dec float64

func (f dec) String() string {
	s := fmt.Sprintf("%.*f", Precision, f)
	s = string(minify.Decimal([]byte(s), Precision))
	if dec(math.MaxInt32) < f || f < dec(math.MinInt32) {
		if i := strings.IndexByte(s, '.'); i == -1 {
			s += ".0"
		}
	}
	return s
}

// WriteSVG writes the segments and their intersections as an SVG image, a
// visual check of what the sweep received and what it found. Segments are
// drawn as black lines, degenerate segments and intersection points as dots.
// The y axis is flipped so the image matches the mathematical orientation.
func WriteSVG(w io.Writer, segments []Segment, zs []PointIntersection) error {
	xmin, ymin := math.Inf(1), math.Inf(1)
	xmax, ymax := math.Inf(-1), math.Inf(-1)
	for _, seg := range segments {
		xmin = math.Min(xmin, seg.A.X)
		xmax = math.Max(xmax, math.Max(seg.A.X, seg.B.X))
		ymin = math.Min(ymin, math.Min(seg.A.Y, seg.B.Y))
		ymax = math.Max(ymax, math.Max(seg.A.Y, seg.B.Y))
	}
	if len(segments) == 0 {
		xmin, ymin, xmax, ymax = 0.0, 0.0, 1.0, 1.0
	}
	extent := math.Max(xmax-xmin, ymax-ymin)
	if extent == 0.0 {
		extent = 1.0
	}
	pad := 0.05 * extent
	strokeWidth := extent / 200.0
	radius := extent / 100.0

	b := bufio.NewWriter(w)
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%v %v %v %v">`,
		num(xmin-pad), num(-ymax-pad), num(xmax-xmin+2.0*pad), num(ymax-ymin+2.0*pad))
	fmt.Fprintf(b, `<g transform="scale(1,-1)" stroke="black" stroke-width="%v">`, dec(strokeWidth))
	for _, seg := range segments {
		if seg.Degenerate() {
			fmt.Fprintf(b, `<circle cx="%v" cy="%v" r="%v" fill="black" stroke="none"/>`,
				num(seg.A.X), num(seg.A.Y), dec(radius/2.0))
		} else {
			fmt.Fprintf(b, `<line x1="%v" y1="%v" x2="%v" y2="%v"/>`,
				num(seg.A.X), num(seg.A.Y), num(seg.B.X), num(seg.B.Y))
		}
	}
	for _, z := range zs {
		fmt.Fprintf(b, `<circle cx="%v" cy="%v" r="%v" fill="red" stroke="none"/>`,
			num(z.X), num(z.Y), dec(radius))
	}
	fmt.Fprintf(b, `</g></svg>`)
	return b.Flush()
}
