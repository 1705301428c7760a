package svgscene

import (
	"strconv"
	"strings"
)

// PathStyle holds the state of the SVG style
type PathStyle struct {
	FillOpacity, LineOpacity float64
	LineWidth                float64
	UseNonZeroWinding        bool

	Join                    JoinOptions
	Dash                    DashOptions
	FillerColor, LinerColor Pattern // either PlainColor or Gradient, nil for none

	FontSize   float64
	FontFamily string
	Bold       bool
	Anchor     TextAnchor

	transform Matrix2D // current transform
}

// DefaultStyle sets the default PathStyle to fill black, winding rule,
// full opacity, no stroke, ButtCap line end and Miter line connect.
var DefaultStyle = PathStyle{
	FillOpacity:       1.0,
	LineOpacity:       1.0,
	LineWidth:         1.0,
	UseNonZeroWinding: true,
	Join: JoinOptions{
		MiterLimit: fToFixed(4.),
		LineJoin:   Miter,
		LineCap:    ButtCap,
	},
	FillerColor: NewPlainColor(0x00, 0x00, 0x00, 0xff),
	FontSize:    16,
	transform:   Identity,
}

// Transform returns the current user space to device transform.
func (s PathStyle) Transform() Matrix2D { return s.transform }

// readPaint resolves a fill or stroke value
func (w *walker) readPaint(v string) (Pattern, error) {
	if id, ok := readURL(v); ok {
		grad, ok := w.grads[id]
		if !ok {
			return nil, nil // dangling references paint nothing
		}
		return grad, nil
	}
	optCol, err := parseSVGColor(v)
	return optCol.asPattern(), err
}

func (w *walker) readStyleAttr(curStyle *PathStyle, k, v string) error {
	var err error
	switch k {
	case "fill":
		curStyle.FillerColor, err = w.readPaint(v)
	case "stroke":
		curStyle.LinerColor, err = w.readPaint(v)
	case "fill-rule":
		curStyle.UseNonZeroWinding = v != "evenodd"
	case "stroke-linecap":
		switch v {
		case "butt":
			curStyle.Join.LineCap = ButtCap
		case "round":
			curStyle.Join.LineCap = RoundCap
		case "square":
			curStyle.Join.LineCap = SquareCap
		}
	case "stroke-linejoin":
		switch v {
		case "miter":
			curStyle.Join.LineJoin = Miter
		case "miter-clip":
			curStyle.Join.LineJoin = MiterClip
		case "arc-clip":
			curStyle.Join.LineJoin = ArcClip
		case "round":
			curStyle.Join.LineJoin = Round
		case "arc":
			curStyle.Join.LineJoin = Arc
		case "bevel":
			curStyle.Join.LineJoin = Bevel
		}
	case "stroke-miterlimit":
		var mLimit float64
		mLimit, err = parseFloat(v)
		curStyle.Join.MiterLimit = fToFixed(mLimit)
	case "stroke-width":
		curStyle.LineWidth, err = parseFloat(v)
	case "stroke-dashoffset":
		curStyle.Dash.DashOffset, err = parseFloat(v)
	case "stroke-dasharray":
		if v == "none" {
			curStyle.Dash.Dash = nil
			break
		}
		dashes := splitOnCommaOrSpace(v)
		dList := make([]float64, len(dashes))
		for i, dstr := range dashes {
			dList[i], err = parseFloat(dstr)
			if err != nil {
				return err
			}
		}
		curStyle.Dash.Dash = dList
	case "opacity", "stroke-opacity", "fill-opacity":
		var op float64
		op, err = parseFloat(v)
		if k != "stroke-opacity" {
			curStyle.FillOpacity *= op
		}
		if k != "fill-opacity" {
			curStyle.LineOpacity *= op
		}
	case "transform":
		curStyle.transform, err = parseTransform(curStyle.transform, v)
	case "font-size":
		curStyle.FontSize, err = parseFloat(strings.TrimSuffix(v, "px"))
	case "font-family":
		curStyle.FontFamily = v
	case "font-weight":
		weight, errW := strconv.Atoi(v)
		curStyle.Bold = v == "bold" || v == "bolder" || (errW == nil && weight >= 600)
	case "text-anchor":
		switch v {
		case "middle":
			curStyle.Anchor = AnchorMiddle
		case "end":
			curStyle.Anchor = AnchorEnd
		default:
			curStyle.Anchor = AnchorStart
		}
	}
	return err
}

// pushStyle returns a copy of `parent` updated by the style attributes of
// `attrs`. Note that this parses both the contents of a style attribute plus
// direct presentation attributes.
func (w *walker) pushStyle(parent PathStyle, attrs []Attr) (PathStyle, error) {
	var pairs []string
	for _, attr := range attrs {
		switch strings.ToLower(attr.Name) {
		case "style":
			pairs = append(pairs, strings.Split(attr.Value, ";")...)
		default:
			pairs = append(pairs, attr.Name+":"+attr.Value)
		}
	}
	curStyle := parent
	for _, pair := range pairs {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) == 2 {
			k := strings.TrimSpace(strings.ToLower(kv[0]))
			v := strings.TrimSpace(kv[1])
			if err := w.readStyleAttr(&curStyle, k, v); err != nil {
				return curStyle, err
			}
		}
	}
	return curStyle, nil
}

// readURL extracts the id of a "url(#id)" reference
func readURL(v string) (string, bool) {
	if !strings.HasPrefix(v, "url(") || !strings.HasSuffix(v, ")") {
		return "", false
	}
	v = strings.TrimSpace(v[4 : len(v)-1])
	v = strings.Trim(v, `'"`)
	return strings.TrimPrefix(v, "#"), true
}
