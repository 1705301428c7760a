// Implements a raster backend to render SVG drawings,
// by wrapping rasterx.
package svgraster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/benoitkugler/forkmonkey/svgscene"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgscene.TextDriver = (*Renderer)(nil)
	_ svgscene.ClipDriver = (*Renderer)(nil)
	_ svgscene.Filler     = filler{}
	_ svgscene.Stroker    = stroker{}
)

// painters paint into one destination image
type painters struct {
	filler  filler
	stroker stroker
}

func newPainters(img draw.Image) painters {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	// we use separated scanners to avoid shared state
	return painters{
		filler:  filler{rasterx.NewFiller(w, h, rasterx.NewScannerGV(w, h, img, b))},
		stroker: stroker{rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, img, b))},
	}
}

// Renderer paints into an RGBA image. Clip regions are supported
// by painting into an offscreen layer, composed through an alpha mask
// when the clip ends.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	img  *image.RGBA
	main painters

	// allocated on the first clip
	layer      *image.RGBA
	layerPaint painters
	mask       *image.Alpha
	maskFiller filler
	clipping   bool

	faces map[faceKey]*face
	buf   sfnt.Buffer
}

// NewRenderer returns a renderer painting into `img`.
func NewRenderer(img *image.RGBA) *Renderer {
	return &Renderer{img: img, main: newPainters(img), faces: make(map[faceKey]*face)}
}

// target returns the image currently painted
func (rd *Renderer) target() *image.RGBA {
	if rd.clipping {
		return rd.layer
	}
	return rd.img
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f svgscene.Filler, s svgscene.Stroker) {
	p := rd.main
	if rd.clipping {
		p = rd.layerPaint
	}
	if willFill {
		f = p.filler
	}
	if willStroke {
		s = p.stroker
	}
	return f, s
}

// BeginClip starts an offscreen layer, and returns the filler
// accumulating the clip mask.
func (rd *Renderer) BeginClip() svgscene.Filler {
	if rd.layer == nil {
		b := rd.img.Bounds()
		rd.layer = image.NewRGBA(b)
		rd.layerPaint = newPainters(rd.layer)
		rd.mask = image.NewAlpha(b)
		rd.maskFiller = filler{rasterx.NewFiller(b.Dx(), b.Dy(), rasterx.NewScannerGV(b.Dx(), b.Dy(), rd.mask, b))}
	} else {
		draw.Draw(rd.layer, rd.layer.Bounds(), image.Transparent, image.Point{}, draw.Src)
		draw.Draw(rd.mask, rd.mask.Bounds(), image.Transparent, image.Point{}, draw.Src)
	}
	rd.clipping = true
	return rd.maskFiller
}

// EndClip composes the layer onto the image, through the clip mask.
func (rd *Renderer) EndClip() {
	if !rd.clipping {
		return
	}
	rd.clipping = false
	draw.DrawMask(rd.img, rd.img.Bounds(), rd.layer, rd.layer.Bounds().Min, rd.mask, rd.mask.Bounds().Min, draw.Over)
}

// filler wraps a rasterx filler to implement svgscene.Filler
type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(color svgscene.Pattern, opacity float64) {
	setColorFromPattern(color, opacity, f.Scanner)
}

// stroker wraps a rasterx dasher to implement svgscene.Stroker
type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetColor(color svgscene.Pattern, opacity float64) {
	setColorFromPattern(color, opacity, s.Scanner)
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgscene.Round:     rasterx.Round,
		svgscene.Bevel:     rasterx.Bevel,
		svgscene.Miter:     rasterx.Miter,
		svgscene.MiterClip: rasterx.MiterClip,
		svgscene.Arc:       rasterx.Arc,
		svgscene.ArcClip:   rasterx.ArcClip,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgscene.NilCap:    rasterx.ButtCap,
		svgscene.ButtCap:   rasterx.ButtCap,
		svgscene.SquareCap: rasterx.SquareCap,
		svgscene.RoundCap:  rasterx.RoundCap,
	}
)

func (s stroker) SetStrokeOptions(options svgscene.StrokeOptions) {
	gap := rasterx.FlatGap
	if options.Join.LineJoin == svgscene.Round {
		gap = rasterx.RoundGap
	}
	capFunc := capToFunc[options.Join.LineCap]
	s.SetStroke(
		options.LineWidth, options.Join.MiterLimit, capFunc, capFunc, gap,
		joinToJoin[options.Join.LineJoin], options.Dash.Dash, options.Dash.DashOffset,
	)
}

func toRasterxGradient(grad svgscene.Gradient) rasterx.Gradient {
	var (
		points   [5]float64
		isRadial bool
	)
	switch dir := grad.Direction.(type) {
	case svgscene.Linear:
		points[0], points[1], points[2], points[3] = dir[0], dir[1], dir[2], dir[3]
	case svgscene.Radial:
		points[0], points[1], points[2], points[3], points[4] = dir[0], dir[1], dir[2], dir[3], dir[4] // in rasterx fr is ignored
		isRadial = true
	}
	stops := make([]rasterx.GradStop, len(grad.Stops))
	for i := range grad.Stops {
		stops[i] = rasterx.GradStop(grad.Stops[i])
	}
	return rasterx.Gradient{
		Points:   points,
		Stops:    stops,
		Bounds:   grad.Bounds,
		Matrix:   rasterx.Matrix2D(grad.Matrix),
		Spread:   rasterx.SpreadMethod(grad.Spread),
		Units:    rasterx.GradientUnits(grad.Units),
		IsRadial: isRadial,
	}
}

// paint returns the rasterx color (a color.Color or a rasterx.ColorFunc)
// for `color`. `extent` is the bounding box of the painted path, used
// by gradients in object bounding box units.
func paint(color svgscene.Pattern, opacity float64, extent fixed.Rectangle26_6) interface{} {
	switch fillerColor := color.(type) {
	case svgscene.PlainColor:
		return rasterx.ApplyOpacity(fillerColor, opacity*float64(fillerColor.A)/0xff)
	case svgscene.Gradient:
		if len(fillerColor.Stops) == 0 {
			return nil
		}
		if fillerColor.Units == svgscene.ObjectBoundingBox {
			mnx, mny := float64(extent.Min.X)/64, float64(extent.Min.Y)/64
			mxx, mxy := float64(extent.Max.X)/64, float64(extent.Max.Y)/64
			fillerColor.Bounds.X, fillerColor.Bounds.Y = mnx, mny
			fillerColor.Bounds.W, fillerColor.Bounds.H = mxx-mnx, mxy-mny
		}
		rasterxGradient := toRasterxGradient(fillerColor)
		return rasterxGradient.GetColorFunction(opacity)
	}
	return nil
}

// resolve gradient color
func setColorFromPattern(color svgscene.Pattern, opacity float64, scanner rasterx.Scanner) {
	if c := paint(color, opacity, scanner.GetPathExtent()); c != nil {
		scanner.SetColor(c)
	}
}

// ColorAt returns the color of `p` at pixel (x, y), for a path
// whose bounding box is `extent`.
// It returns nil if p is nil.
func ColorAt(p svgscene.Pattern, opacity float64, extent fixed.Rectangle26_6, x, y int) color.Color {
	switch c := paint(p, opacity, extent).(type) {
	case color.Color:
		return c
	case rasterx.ColorFunc:
		return c(x, y)
	}
	return nil
}

// patternColor returns a uniform approximation of `p`:
// gradients are reduced to their first stop.
func patternColor(p svgscene.Pattern, opacity float64) (color.Color, bool) {
	switch p := p.(type) {
	case svgscene.PlainColor:
		return rasterx.ApplyOpacity(p, opacity*float64(p.A)/0xff), true
	case svgscene.Gradient:
		if len(p.Stops) == 0 {
			return nil, false
		}
		s := p.Stops[0]
		return rasterx.ApplyOpacity(s.StopColor, s.Opacity*opacity), true
	}
	return nil, false
}

// RasterDrawing paints `d` into a new image of the drawing size.
func RasterDrawing(d *svgscene.Drawing) (*image.RGBA, error) {
	if d.Width <= 0 || d.Height <= 0 {
		return nil, errors.New("svgraster: empty drawing")
	}
	img := image.NewRGBA(image.Rect(0, 0, d.Width, d.Height))
	if err := d.Draw(NewRenderer(img)); err != nil {
		return nil, fmt.Errorf("svgraster: %w", err)
	}
	return img, nil
}

// EncodePNG paints `d` and writes it as PNG to `w`.
func EncodePNG(w io.Writer, d *svgscene.Drawing) error {
	img, err := RasterDrawing(d)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
