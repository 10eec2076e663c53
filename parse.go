package intersect

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

// ParsePath parses SVG path data restricted to line commands (M, L, H, V, Z,
// both absolute and relative) into one polyline per subpath. Z appends the
// subpath's starting point, closing the polyline. Coordinates following a
// moveto continue as lineto, as in SVG.
func ParsePath(s string) ([][]Point, error) {
	path := []byte(s)

	var polylines [][]Point
	var cur []Point
	var prevCmd byte
	var pos, start Point

	i := 0
	for i < len(path) {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}
		cmd := prevCmd
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("bad path: expected command at position %d", i)
		}
		if cmd != 'M' && cmd != 'm' && len(cur) == 0 {
			return nil, fmt.Errorf("bad path: must start with a moveto")
		}
		switch cmd {
		case 'M', 'm':
			a, n := parseNum(path[i:])
			if n == 0 {
				return nil, fmt.Errorf("bad path: expected number at position %d", i)
			}
			i += n
			b, n := parseNum(path[i:])
			if n == 0 {
				return nil, fmt.Errorf("bad path: expected number at position %d", i)
			}
			i += n
			if cmd == 'm' {
				a += pos.X
				b += pos.Y
			}
			if 0 < len(cur) {
				polylines = append(polylines, cur)
			}
			pos = Point{a, b}
			start = pos
			cur = []Point{pos}
			if cmd == 'M' {
				prevCmd = 'L'
			} else {
				prevCmd = 'l'
			}
		case 'L', 'l':
			a, n := parseNum(path[i:])
			if n == 0 {
				return nil, fmt.Errorf("bad path: expected number at position %d", i)
			}
			i += n
			b, n := parseNum(path[i:])
			if n == 0 {
				return nil, fmt.Errorf("bad path: expected number at position %d", i)
			}
			i += n
			if cmd == 'l' {
				a += pos.X
				b += pos.Y
			}
			pos = Point{a, b}
			cur = append(cur, pos)
			prevCmd = cmd
		case 'H', 'h':
			a, n := parseNum(path[i:])
			if n == 0 {
				return nil, fmt.Errorf("bad path: expected number at position %d", i)
			}
			i += n
			if cmd == 'h' {
				a += pos.X
			}
			pos = Point{a, pos.Y}
			cur = append(cur, pos)
			prevCmd = cmd
		case 'V', 'v':
			b, n := parseNum(path[i:])
			if n == 0 {
				return nil, fmt.Errorf("bad path: expected number at position %d", i)
			}
			i += n
			if cmd == 'v' {
				b += pos.Y
			}
			pos = Point{pos.X, b}
			cur = append(cur, pos)
			prevCmd = cmd
		case 'Z', 'z':
			if 0 < len(cur) && pos != start {
				cur = append(cur, start)
			}
			pos = start
			prevCmd = 0 // numbers may not follow a closepath
		default:
			return nil, fmt.Errorf("bad path: unsupported command %q at position %d", cmd, i-1)
		}
	}
	if 0 < len(cur) {
		polylines = append(polylines, cur)
	}
	return polylines, nil
}

// MustParsePath is ParsePath but panics on a parse error.
func MustParsePath(s string) [][]Point {
	polylines, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return polylines
}
