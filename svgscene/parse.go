package svgscene

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errParamMismatch = errors.New("param mismatch")

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

// readNumbers scans a list of numbers, as found in path data,
// points and transform arguments. Separators are optional when
// the next number starts with a sign or a second decimal point.
func readNumbers(s string) ([]float64, error) {
	var out []float64
	i := 0
	for i < len(s) {
		c := s[i]
		if c == ',' || c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			i++
			continue
		}
		start := i
		if c == '+' || c == '-' {
			i++
		}
		seenDot, seenExp := false, false
	scan:
		for i < len(s) {
			switch c := s[i]; {
			case c >= '0' && c <= '9':
			case c == '.' && !seenDot && !seenExp:
				seenDot = true
			case (c == 'e' || c == 'E') && !seenExp && i > start:
				seenExp = true
				if i+1 < len(s) && (s[i+1] == '+' || s[i+1] == '-') {
					i++
				}
			default:
				break scan
			}
			i++
		}
		if i == start {
			return out, fmt.Errorf("invalid number list %q", s)
		}
		f, err := strconv.ParseFloat(s[start:i], 64)
		if err != nil {
			return out, err
		}
		out = append(out, f)
	}
	return out, nil
}

func readTransformAttr(m1 Matrix2D, k string, points []float64) (Matrix2D, error) {
	ln := len(points)
	switch k {
	case "rotate":
		if ln == 1 {
			m1 = m1.Rotate(points[0] * math.Pi / 180)
		} else if ln == 3 {
			m1 = m1.Translate(points[1], points[2]).
				Rotate(points[0]*math.Pi/180).
				Translate(-points[1], -points[2])
		} else {
			return m1, errParamMismatch
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(points[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "skewx":
		if ln == 1 {
			m1 = m1.SkewX(points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "skewy":
		if ln == 1 {
			m1 = m1.SkewY(points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(points[0], points[0])
		} else if ln == 2 {
			m1 = m1.Scale(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(Matrix2D{
				A: points[0],
				B: points[1],
				C: points[2],
				D: points[3],
				E: points[4],
				F: points[5]})
		} else {
			return m1, errParamMismatch
		}
	default:
		return m1, errParamMismatch
	}
	return m1, nil
}

// parseTransform applies the transform list `v` after `m1`.
func parseTransform(m1 Matrix2D, v string) (Matrix2D, error) {
	ts := strings.Split(v, ")")
	for _, t := range ts {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return m1, errParamMismatch // badly formed transformation
		}
		points, err := readNumbers(d[1])
		if err != nil {
			return m1, err
		}
		m1, err = readTransformAttr(m1, strings.ToLower(strings.Trim(d[0], " ,")), points)
		if err != nil {
			return m1, err
		}
	}
	return m1, nil
}

// ParseTransform parses a transform attribute value.
func ParseTransform(v string) (Matrix2D, error) { return parseTransform(Identity, v) }

// pathCursor is used while parsing path data
type pathCursor struct {
	path             Path
	placeX, placeY   float64 // current point
	startX, startY   float64 // start of the current sub path
	cntlPtX, cntlPtY float64 // last cubic control point
	hasCubicCntlPt   bool
}

// nArgs is the number of arguments per repetition of each command
var nArgs = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'Q': 4, 'T': 2, 'C': 6, 'S': 4, 'A': 7, 'Z': 0,
}

// ParsePath parses path data, as found in the `d` attribute.
// Relative commands are resolved to absolute coordinates, H and V
// are reduced to lines, S to cubics and A to a sequence of cubics.
func ParsePath(d string) (Path, error) {
	var c pathCursor
	d = strings.TrimSpace(d)
	for len(d) > 0 {
		key := d[0]
		upper := key &^ 0x20 // ASCII upper case
		n, ok := nArgs[upper]
		if !ok {
			return c.path, fmt.Errorf("unsupported path command %q", key)
		}
		end := 1
		for end < len(d) {
			if _, isCmd := nArgs[d[end]&^0x20]; isCmd && d[end] != 'e' && d[end] != 'E' {
				break
			}
			end++
		}
		points, err := readNumbers(d[1:end])
		if err != nil {
			return c.path, err
		}
		if err := c.addSeg(key, n, points); err != nil {
			return c.path, err
		}
		d = strings.TrimSpace(d[end:])
	}
	return c.path, nil
}

func (c *pathCursor) addSeg(key byte, n int, points []float64) error {
	upper := key &^ 0x20
	rel := key != upper
	if n == 0 {
		if len(points) != 0 {
			return errParamMismatch
		}
		c.path = c.path.Close()
		c.placeX, c.placeY = c.startX, c.startY
		c.hasCubicCntlPt = false
		return nil
	}
	if len(points) == 0 || len(points)%n != 0 {
		return errParamMismatch
	}
	for i := 0; i < len(points); i += n {
		args := points[i : i+n]
		if rel {
			c.makeAbsolute(upper, args)
		}
		switch upper {
		case 'M':
			if i == 0 {
				c.path = c.path.MoveTo(args[0], args[1])
				c.startX, c.startY = args[0], args[1]
			} else { // subsequent pairs are implicit lines
				c.path = c.path.LineTo(args[0], args[1])
			}
			c.placeX, c.placeY = args[0], args[1]
		case 'L':
			c.path = c.path.LineTo(args[0], args[1])
			c.placeX, c.placeY = args[0], args[1]
		case 'H':
			c.path = c.path.LineTo(args[0], c.placeY)
			c.placeX = args[0]
		case 'V':
			c.path = c.path.LineTo(c.placeX, args[0])
			c.placeY = args[0]
		case 'Q':
			c.path = c.path.QuadTo(args[0], args[1], args[2], args[3])
			c.placeX, c.placeY = args[2], args[3]
		case 'T':
			c.path = c.path.SmoothQuadTo(args[0], args[1])
			c.placeX, c.placeY = args[0], args[1]
		case 'C':
			c.path = c.path.CubicTo(args[0], args[1], args[2], args[3], args[4], args[5])
			c.cntlPtX, c.cntlPtY = args[2], args[3]
			c.placeX, c.placeY = args[4], args[5]
		case 'S':
			x1, y1 := c.placeX, c.placeY
			if c.hasCubicCntlPt {
				x1, y1 = 2*c.placeX-c.cntlPtX, 2*c.placeY-c.cntlPtY
			}
			c.path = c.path.CubicTo(x1, y1, args[0], args[1], args[2], args[3])
			c.cntlPtX, c.cntlPtY = args[0], args[1]
			c.placeX, c.placeY = args[2], args[3]
		case 'A':
			c.addArcSeg(args)
		}
		c.hasCubicCntlPt = upper == 'C' || upper == 'S'
	}
	return nil
}

// makeAbsolute offsets the coordinates of a relative command
func (c *pathCursor) makeAbsolute(upper byte, args []float64) {
	switch upper {
	case 'H':
		args[0] += c.placeX
	case 'V':
		args[0] += c.placeY
	case 'A':
		args[5] += c.placeX
		args[6] += c.placeY
	default:
		for j := 0; j+1 < len(args); j += 2 {
			args[j] += c.placeX
			args[j+1] += c.placeY
		}
	}
}

func (c *pathCursor) addArcSeg(points []float64) {
	if points[0] == 0 || points[1] == 0 { // degenerate arc is a line
		c.path = c.path.LineTo(points[5], points[6])
		c.placeX, c.placeY = points[5], points[6]
		return
	}
	ra, rb := math.Abs(points[0]), math.Abs(points[1])
	cx, cy := findEllipseCenter(&ra, &rb, points[2]*math.Pi/180, c.placeX, c.placeY,
		points[5], points[6], points[4] == 0, points[3] == 0)
	arc := [7]float64{ra, rb, points[2], points[3], points[4], points[5], points[6]}
	c.placeX, c.placeY = c.path.addArc(arc[:], cx, cy, c.placeX, c.placeY)
}

// readPoints parses a polygon or polyline `points` attribute.
func readPoints(v string) ([]float64, error) {
	points, err := readNumbers(v)
	if err != nil {
		return nil, err
	}
	if len(points)%2 != 0 {
		return nil, errors.New("polygon has odd number of points")
	}
	return points, nil
}
