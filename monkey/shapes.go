package monkey

import (
	"strconv"

	"github.com/benoitkugler/forkmonkey/placement"
	"github.com/benoitkugler/forkmonkey/svgscene"
)

type elements = []*svgscene.Element

// canvas is the geometry shared by the layer renderers.
// All the fragments are laid out on integer coordinates relative
// to the canvas center.
type canvas struct {
	w, h   int
	cx, cy int
	seed   placement.Seed
}

func newCanvas(w, h int, seed placement.Seed) canvas {
	return canvas{w: w, h: h, cx: w / 2, cy: h / 2, seed: seed}
}

func num(v int) string { return strconv.Itoa(v) }

func rect(x, y, w, h int) *svgscene.Element {
	return svgscene.Rect(float64(x), float64(y), float64(w), float64(h))
}

// sizedRect is a rectangle positioned at the origin of its user space,
// without x and y attributes.
func sizedRect(w, h int) *svgscene.Element {
	return svgscene.New("rect").SetNum("width", float64(w)).SetNum("height", float64(h))
}

func roundedRect(x, y, w, h, r int) *svgscene.Element {
	return rect(x, y, w, h).SetNum("rx", float64(r))
}

func circle(cx, cy, r int) *svgscene.Element {
	return svgscene.Circle(float64(cx), float64(cy), float64(r))
}

func ellipse(cx, cy, rx, ry int) *svgscene.Element {
	return svgscene.Ellipse(float64(cx), float64(cy), float64(rx), float64(ry))
}

func line(x1, y1, x2, y2 int) *svgscene.Element {
	return svgscene.Line(float64(x1), float64(y1), float64(x2), float64(y2))
}

func polygon(coords ...int) *svgscene.Element {
	fs := make([]float64, len(coords))
	for i, c := range coords {
		fs[i] = float64(c)
	}
	return svgscene.Polygon(fs...)
}

func glyph(x, y, size int, content string) *svgscene.Element {
	return svgscene.Text(float64(x), float64(y), content).SetNum("font-size", float64(size))
}

// curve is a single quadratic segment, from (x0, y0) to (x, y).
func curve(x0, y0, qx, qy, x, y int) svgscene.Path {
	return svgscene.Path{}.
		MoveTo(float64(x0), float64(y0)).
		QuadTo(float64(qx), float64(qy), float64(x), float64(y))
}

func path(p svgscene.Path) *svgscene.Element { return svgscene.PathElement(p) }

// outline returns an unfilled stroke.
func outline(e *svgscene.Element, color string, width float64) *svgscene.Element {
	return e.Stroke(color, width).Fill("none")
}
