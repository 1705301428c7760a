// Implements a PDF backend to render SVG drawings,
// by writing content streams with github.com/benoitkugler/pdf.
//
// Gradients are approximated by a uniform color, sampled at the center
// of the painted path. Text and clip regions are not supported.
package svgpdf

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/benoitkugler/forkmonkey/svgraster"
	"github.com/benoitkugler/forkmonkey/svgscene"
	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgscene.Driver  = Renderer{}
	_ svgscene.Filler  = (*filler)(nil)
	_ svgscene.Stroker = (*stroker)(nil)
)

// Renderer writes the paths into a content stream.
// The coordinates are the SVG ones: the caller is responsible for
// the flip to the PDF orientation.
type Renderer struct {
	pdf                 *contentstream.Appearance
	fillOpacityStates   map[float64]*model.GraphicState
	strokeOpacityStates map[float64]*model.GraphicState
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(cs *contentstream.Appearance) Renderer {
	return Renderer{
		pdf:                 cs,
		fillOpacityStates:   make(map[float64]*model.GraphicState),
		strokeOpacityStates: make(map[float64]*model.GraphicState),
	}
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf    *contentstream.Appearance
	bounds pathBounds
	color  color.NRGBA
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
	opacityStates     map[float64]*model.GraphicState
}

// implements the stroking operation
type stroker struct {
	pather
	opacityStates map[float64]*model.GraphicState
}

// SetupDrawers returns fresh drawers. When both are requested, the
// path is written twice, since a PDF painting operator ends the path.
func (r Renderer) SetupDrawers(willFill, willStroke bool) (f svgscene.Filler, s svgscene.Stroker) {
	if willFill {
		f = &filler{pather: pather{pdf: r.pdf, bounds: pathBounds{empty: true}}, useNonZeroWinding: true, opacityStates: r.fillOpacityStates}
	}
	if willStroke {
		s = &stroker{pather: pather{pdf: r.pdf, bounds: pathBounds{empty: true}}, opacityStates: r.strokeOpacityStates}
	}
	return f, s
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func fToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func (p *pather) Clear() {
	p.bounds.Clear()
}

func (p *pather) Start(a fixed.Point26_6) {
	x, y := fixedTof(a)
	p.pdf.Ops(contentstream.OpMoveTo{X: x, Y: y})
	p.bounds.Start(a)
}

func (p *pather) Line(b fixed.Point26_6) {
	x, y := fixedTof(b)
	p.pdf.Ops(contentstream.OpLineTo{X: x, Y: y})
	p.bounds.Line(b)
}

func (p *pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	cx, cy := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.Ops(contentstream.OpCurveTo1{X2: cx, Y2: cy, X3: x, Y3: y})
	p.bounds.QuadBezier(b, c)
}

func (p *pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.Ops(contentstream.OpCubicTo{X1: cx0, Y1: cy0, X2: cx1, Y2: cy1, X3: x, Y3: y})
	p.bounds.CubeBezier(b, c, d)
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.Ops(contentstream.OpClosePath{})
	}
}

// SetColor resolves the paint to a uniform color, using
// the bounding box of the path written so far.
func (p *pather) SetColor(pattern svgscene.Pattern, opacity float64) {
	if _, isGradient := pattern.(svgscene.Gradient); isGradient {
		svgscene.Logger().Debug("svgpdf: gradient approximated by a uniform color")
	}
	x, y := p.bounds.center()
	c := svgraster.ColorAt(pattern, opacity, p.bounds.box, x, y)
	if c == nil {
		p.color = color.NRGBA{}
		return
	}
	p.color = color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (p *pather) rgb() color.RGBA {
	return color.RGBA{R: p.color.R, G: p.color.G, B: p.color.B, A: 0xff}
}

// opacityState returns the name of a cached graphic state setting
// the fill (or stroke) alpha.
func (p *pather) opacityState(states map[float64]*model.GraphicState, stroke bool) model.Name {
	opacity := float64(p.color.A) / 0xff
	gs, ok := states[opacity]
	if !ok {
		gs = &model.GraphicState{BM: []model.Name{"Normal"}}
		if stroke {
			gs.CA = model.ObjFloat(opacity)
		} else {
			gs.Ca = model.ObjFloat(opacity)
		}
		states[opacity] = gs
	}
	return p.pdf.AddExtGState(gs)
}

func (f *filler) Draw() {
	f.pdf.SetColorFill(f.rgb())
	f.pdf.Ops(contentstream.OpSetExtGState{Dict: f.opacityState(f.opacityStates, false)})
	if f.useNonZeroWinding {
		f.pdf.Ops(contentstream.OpFill{})
	} else {
		f.pdf.Ops(contentstream.OpEOFill{})
	}
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (s *stroker) SetStrokeOptions(options svgscene.StrokeOptions) {
	var capStyle, joinStyle uint8
	switch options.Join.LineCap {
	case svgscene.ButtCap:
		capStyle = 0
	case svgscene.RoundCap:
		capStyle = 1
	case svgscene.SquareCap:
		capStyle = 2
	}
	switch options.Join.LineJoin {
	case svgscene.Bevel:
		joinStyle = 2
	case svgscene.Miter, svgscene.MiterClip:
		joinStyle = 0
	case svgscene.Round, svgscene.Arc, svgscene.ArcClip:
		joinStyle = 1
	}

	s.pdf.Ops(
		contentstream.OpSetDash{Dash: model.DashPattern{
			Array: options.Dash.Dash,
			Phase: options.Dash.DashOffset,
		}},
		contentstream.OpSetLineWidth{W: float64(options.LineWidth) / 64},
		contentstream.OpSetLineCap{Style: capStyle},
		contentstream.OpSetLineJoin{Style: joinStyle},
		contentstream.OpSetMiterLimit{Limit: float64(options.Join.MiterLimit) / 64},
	)
}

func (s *stroker) Draw() {
	s.pdf.SetColorStroke(s.rgb())
	s.pdf.Ops(contentstream.OpSetExtGState{Dict: s.opacityState(s.opacityStates, true)})
	s.pdf.Ops(contentstream.OpStroke{})
}

// RenderToFile renders `d` in a one page PDF file of the drawing size,
// one point per pixel.
func RenderToFile(d *svgscene.Drawing, pdfName string) error {
	if d.Width <= 0 || d.Height <= 0 {
		return errors.New("svgpdf: empty drawing")
	}
	w, h := float64(d.Width), float64(d.Height)
	pdf := contentstream.NewAppearance(w, h)
	renderer := NewRenderer(&pdf)
	pdf.Ops(
		contentstream.OpSave{},
		contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, 0, h}},
	)
	if err := d.Draw(renderer); err != nil {
		return fmt.Errorf("svgpdf: %w", err)
	}
	pdf.Ops(contentstream.OpRestore{})

	page := new(model.PageObject)
	pdf.ApplyToPageObject(page, true)
	var doc model.Document
	doc.Catalog.Pages.Kids = append(doc.Catalog.Pages.Kids, page)
	if err := doc.WriteFile(pdfName, nil); err != nil {
		return fmt.Errorf("svgpdf: writing %s: %w", pdfName, err)
	}
	return nil
}
