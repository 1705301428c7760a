package svgscene

import (
	"strings"
)

// This file defines the basic path structure

// Point is a position in user space.
type Point struct{ X, Y float64 }

// Operation groups the different SVG commands
type Operation interface {
	// add itself on the drawer `d`, after aplying the transform `M`
	drawTo(d Drawer, M Matrix2D, pen *pen)
	// write the command to `b`
	appendTo(b *strings.Builder)
}

type MoveTo Point

type LineTo Point

type QuadTo [2]Point

// SmoothQuadTo is a quadratic bezier curve whose control point
// is the reflection of the previous one.
type SmoothQuadTo Point

type CubicTo [3]Point

type Close struct{}

// pen tracks the state needed to resolve smooth curves
type pen struct {
	start, current, ctrl Point
	hasCtrl              bool
}

func (pen *pen) moveTo(p Point) {
	pen.start, pen.current, pen.hasCtrl = p, p, false
}

// starts a new path at the given point.
func (op MoveTo) drawTo(d Drawer, M Matrix2D, pen *pen) {
	d.Stop(false) // implicit close if currently in path.
	pen.moveTo(Point(op))
	d.Start(M.tr(Point(op)))
}

// draw a line
func (op LineTo) drawTo(d Drawer, M Matrix2D, pen *pen) {
	pen.current, pen.hasCtrl = Point(op), false
	d.Line(M.tr(Point(op)))
}

// draw a quadratic bezier curve
func (op QuadTo) drawTo(d Drawer, M Matrix2D, pen *pen) {
	pen.ctrl, pen.current, pen.hasCtrl = op[0], op[1], true
	d.QuadBezier(M.tr(op[0]), M.tr(op[1]))
}

func (op SmoothQuadTo) drawTo(d Drawer, M Matrix2D, pen *pen) {
	QuadTo{pen.reflectedCtrl(), Point(op)}.drawTo(d, M, pen)
}

// reflectedCtrl returns the control point of a smooth quadratic segment
func (pen *pen) reflectedCtrl() Point {
	if !pen.hasCtrl {
		return pen.current
	}
	return Point{2*pen.current.X - pen.ctrl.X, 2*pen.current.Y - pen.ctrl.Y}
}

// draw a cubic bezier curve
func (op CubicTo) drawTo(d Drawer, M Matrix2D, pen *pen) {
	pen.current, pen.hasCtrl = op[2], false
	d.CubeBezier(M.tr(op[0]), M.tr(op[1]), M.tr(op[2]))
}

func (op Close) drawTo(d Drawer, _ Matrix2D, pen *pen) {
	pen.current, pen.hasCtrl = pen.start, false
	d.Stop(true)
}

func appendPoints(b *strings.Builder, cmd byte, pts ...Point) {
	b.WriteByte(cmd)
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(FormatNumber(p.X))
		b.WriteByte(' ')
		b.WriteString(FormatNumber(p.Y))
	}
}

func (op MoveTo) appendTo(b *strings.Builder)       { appendPoints(b, 'M', Point(op)) }
func (op LineTo) appendTo(b *strings.Builder)       { appendPoints(b, 'L', Point(op)) }
func (op QuadTo) appendTo(b *strings.Builder)       { appendPoints(b, 'Q', op[0], op[1]) }
func (op SmoothQuadTo) appendTo(b *strings.Builder) { appendPoints(b, 'T', Point(op)) }
func (op CubicTo) appendTo(b *strings.Builder)      { appendPoints(b, 'C', op[0], op[1], op[2]) }
func (op Close) appendTo(b *strings.Builder)        { b.WriteByte('Z') }

// Path describes a sequence of basic SVG operations.
// Higher-level shapes may be reduced to a path.
type Path []Operation

// String returns the path data, as used in the `d` attribute,
// for instance "M170 260 Q200 285 230 260".
func (p Path) String() string {
	var b strings.Builder
	for i, op := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		op.appendTo(&b)
	}
	return b.String()
}

// drawTo sends the path to `d`, transformed by `M`.
func (p Path) drawTo(d Drawer, M Matrix2D) {
	var pen pen
	for _, op := range p {
		op.drawTo(d, M, &pen)
	}
	d.Stop(false)
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// MoveTo starts a new sub path at (x, y).
func (p Path) MoveTo(x, y float64) Path { return append(p, MoveTo{x, y}) }

// LineTo adds a linear segment to the current sub path.
func (p Path) LineTo(x, y float64) Path { return append(p, LineTo{x, y}) }

// QuadTo adds a quadratic segment with control point (cx, cy).
func (p Path) QuadTo(cx, cy, x, y float64) Path {
	return append(p, QuadTo{{cx, cy}, {x, y}})
}

// SmoothQuadTo adds a quadratic segment reflecting the previous control point.
func (p Path) SmoothQuadTo(x, y float64) Path { return append(p, SmoothQuadTo{x, y}) }

// CubicTo adds a cubic segment.
func (p Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) Path {
	return append(p, CubicTo{{c1x, c1y}, {c2x, c2y}, {x, y}})
}

// Close joins the ends of the current sub path.
func (p Path) Close() Path { return append(p, Close{}) }
