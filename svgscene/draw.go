package svgscene

import (
	"golang.org/x/image/math/fixed"
)

// Given a Drawing, implements how to paint it.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.

// Drawer knows how to do the actual draw operations
// but doesn't need any SVG kwowledge
// In particular, tranformations matrix are already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor set the color for the current path
	SetColor(color Pattern, opacity float64)

	// Draw fills or strokes the accumulated path using the current settings
	// depending on the filling mode
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	// When both booleans are true, one can assume that the exact same draw operations
	// will be performed on the Filler first and then on the Stroker.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// TextDriver is implemented by drivers able to paint text.
// Drivers without it silently skip text elements.
type TextDriver interface {
	Driver
	DrawText(run TextRun)
}

// ClipDriver is implemented by drivers supporting clip regions.
// BeginClip returns a Filler receiving the clip outline; everything
// painted until the matching EndClip is restricted to that outline.
// Calls may not be nested.
type ClipDriver interface {
	Driver
	BeginClip() Filler
	EndClip()
}

// TextAnchor is the horizontal alignment of a text run.
type TextAnchor uint8

const (
	AnchorStart TextAnchor = iota
	AnchorMiddle
	AnchorEnd
)

// TextRun is a single line of text, in device space.
type TextRun struct {
	Text     string
	Position fixed.Point26_6 // baseline origin, before anchoring
	Size     float64         // font size, in pixels
	Bold     bool
	Family   string
	Anchor   TextAnchor
	Color    Pattern
	Opacity  float64
}

type DashOptions struct {
	Dash       []float64 // values for the dash pattern (nil or an empty slice for no dashes)
	DashOffset float64   // starting offset into the dash array
}

// JoinMode type to specify how segments join.
type JoinMode uint8

// JoinMode constants determine how stroke segments bridge the gap at a join
// ArcClip mode is like MiterClip applied to arcs, and is not part of the SVG2.0
// standard.
const (
	Arc JoinMode = iota // New in SVG2
	Round
	Bevel
	Miter
	MiterClip // New in SVG2
	ArcClip   // Like MiterClip applied to arcs, and is not part of the SVG2.0 standard.
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "Round"
	case Bevel:
		return "Bevel"
	case Miter:
		return "Miter"
	case MiterClip:
		return "MiterClip"
	case Arc:
		return "Arc"
	case ArcClip:
		return "ArcClip"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	NilCap CapMode = iota // default value
	ButtCap
	SquareCap
	RoundCap
)

func (c CapMode) String() string {
	switch c {
	case NilCap:
		return "NilCap"
	case ButtCap:
		return "ButtCap"
	case SquareCap:
		return "SquareCap"
	case RoundCap:
		return "RoundCap"
	default:
		return "<unknown CapMode>"
	}
}

type JoinOptions struct {
	MiterLimit fixed.Int26_6 // the miter cutoff value for miter, arc, miterclip and arcClip joinModes
	LineJoin   JoinMode      // JoinMode for curve segments
	LineCap    CapMode       // capping function for both line ends
}

type StrokeOptions struct {
	LineWidth fixed.Int26_6 // width of the line
	Join      JoinOptions
	Dash      DashOptions
}

// Draw paints the drawing into the driver `d`.
// Definitions are not painted themselves: they provide the gradients
// and clip regions referenced by the layers.
// An error is returned for malformed attributes.
func (dr *Drawing) Draw(d Driver) error {
	w, err := newWalker(dr)
	if err != nil {
		return err
	}
	for _, layer := range dr.Layers {
		for _, e := range layer.Elements {
			if err := w.drawElement(d, e, DefaultStyle); err != nil {
				return err
			}
		}
	}
	return nil
}

// drawPath paints one path with the given style, following the
// filler then stroker order.
func drawPath(d Driver, path Path, style PathStyle) {
	filler, stroker := d.SetupDrawers(style.FillerColor != nil, style.LinerColor != nil)
	if filler != nil { // nil color disable filling
		filler.Clear()
		filler.SetWinding(style.UseNonZeroWinding)
		path.drawTo(filler, style.transform)
		filler.SetColor(style.FillerColor, style.FillOpacity)
		filler.Draw()
		filler.SetWinding(true) // default is true
	}

	if stroker != nil { // nil color disable lining
		stroker.Clear()
		lineCap := style.Join.LineCap
		if lineCap == NilCap {
			lineCap = DefaultStyle.Join.LineCap
		}
		scale := style.transform.scaleFactor()
		dash := style.Dash
		if len(dash.Dash) != 0 && scale != 1 {
			scaled := make([]float64, len(dash.Dash))
			for i, v := range dash.Dash {
				scaled[i] = v * scale
			}
			dash = DashOptions{Dash: scaled, DashOffset: dash.DashOffset * scale}
		}
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth: fixed.Int26_6(style.LineWidth * scale * 64),
			Join: JoinOptions{
				MiterLimit: style.Join.MiterLimit,
				LineJoin:   style.Join.LineJoin,
				LineCap:    lineCap,
			},
			Dash: dash,
		})
		path.drawTo(stroker, style.transform)
		stroker.SetColor(style.LinerColor, style.LineOpacity)
		stroker.Draw()
	}
}
