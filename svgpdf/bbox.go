package svgpdf

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// pathBounds accumulates the bounding box of a path, used to
// resolve gradients in object bounding box units.
type pathBounds struct {
	current fixed.Point26_6
	box     fixed.Rectangle26_6
	empty   bool
}

func (b *pathBounds) Clear() { *b = pathBounds{empty: true} }

func (b *pathBounds) extend(s segment) {
	r := s.bounds()
	if b.empty {
		b.box, b.empty = r, false
	} else {
		include(&b.box, r.Min)
		include(&b.box, r.Max)
	}
	b.current = s[len(s)-1]
}

func (b *pathBounds) Start(a fixed.Point26_6)              { b.extend(segment{a}) }
func (b *pathBounds) Line(p fixed.Point26_6)               { b.extend(segment{b.current, p}) }
func (b *pathBounds) QuadBezier(c, p fixed.Point26_6)      { b.extend(segment{b.current, c, p}) }
func (b *pathBounds) CubeBezier(c1, c2, p fixed.Point26_6) { b.extend(segment{b.current, c1, c2, p}) }

// center returns the middle of the box, in pixels.
func (b *pathBounds) center() (x, y int) {
	return int((b.box.Min.X + b.box.Max.X) / 128), int((b.box.Min.Y + b.box.Max.Y) / 128)
}

func include(r *fixed.Rectangle26_6, p fixed.Point26_6) {
	r.Min.X, r.Min.Y = min(r.Min.X, p.X), min(r.Min.Y, p.Y)
	r.Max.X, r.Max.Y = max(r.Max.X, p.X), max(r.Max.Y, p.Y)
}

// segment is a point, a line, or a quadratic or cubic Bézier curve,
// given by its 1 to 4 control points.
type segment []fixed.Point26_6

// at evaluates the curve at t, with de Casteljau's algorithm.
func (s segment) at(t float64) (x, y float64) {
	var xs, ys [4]float64
	for i, p := range s {
		xs[i], ys[i] = fixedTof(p)
	}
	for n := len(s) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			xs[i] += t * (xs[i+1] - xs[i])
			ys[i] += t * (ys[i+1] - ys[i])
		}
	}
	return xs[0], ys[0]
}

// extrema returns the parameters in ]0, 1[ where the derivative
// of one of the coordinates vanishes.
func (s segment) extrema() []float64 {
	if len(s) < 3 {
		return nil
	}
	var out []float64
	for _, coord := range [2]func(fixed.Point26_6) fixed.Int26_6{
		func(p fixed.Point26_6) fixed.Int26_6 { return p.X },
		func(p fixed.Point26_6) fixed.Int26_6 { return p.Y },
	} {
		// control values of the derivative, up to a constant factor
		var d [3]float64
		for i := 0; i+1 < len(s); i++ {
			d[i] = float64(coord(s[i+1])-coord(s[i])) / 64
		}
		var roots []float64
		if len(s) == 3 {
			roots = polynomialRoots(0, d[1]-d[0], d[0])
		} else {
			roots = polynomialRoots(d[0]-2*d[1]+d[2], 2*(d[1]-d[0]), d[0])
		}
		for _, t := range roots {
			if 0 < t && t < 1 {
				out = append(out, t)
			}
		}
	}
	return out
}

// bounds returns the tight bounding box of the segment.
func (s segment) bounds() fixed.Rectangle26_6 {
	box := fixed.Rectangle26_6{Min: s[0], Max: s[0]}
	include(&box, s[len(s)-1])
	for _, t := range s.extrema() {
		include(&box, fToFixed(s.at(t)))
	}
	return box
}

// polynomialRoots returns the real roots of at² + bt + c.
func polynomialRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	delta := b*b - 4*a*c
	switch {
	case delta < 0:
		return nil
	case delta == 0:
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(delta)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
