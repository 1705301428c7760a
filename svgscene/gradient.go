package svgscene

import (
	"image/color"
	"strings"
)

// GradientUnits is the type for gradient units
type GradientUnits byte

// SVG bounds paremater constants
const (
	ObjectBoundingBox GradientUnits = iota
	UserSpaceOnUse
)

// SpreadMethod is the type for spread parameters
type SpreadMethod byte

// SVG spread parameter constants
const (
	PadSpread SpreadMethod = iota
	ReflectSpread
	RepeatSpread
)

// GradStop represents a stop in the SVG 2.0 gradient specification
type GradStop struct {
	StopColor color.Color
	Offset    float64
	Opacity   float64
}

// Bounds defines a bounding box, such as a viewport
// or a path extent.
type Bounds struct{ X, Y, W, H float64 }

// Gradient holds a description of an SVG 2.0 gradient
type Gradient struct {
	Direction gradientDirecter
	Stops     []GradStop
	Bounds    Bounds
	Matrix    Matrix2D
	Spread    SpreadMethod
	Units     GradientUnits
}

// radial or linear
type gradientDirecter interface {
	isRadial() bool
}

// x1, y1, x2, y2
type Linear [4]float64

func (Linear) isRadial() bool { return false }

// cx, cy, fx, fy, r, fr
type Radial [6]float64

func (Radial) isRadial() bool { return true }

func readFraction(v string) (f float64, err error) {
	v = strings.TrimSpace(v)
	d := 1.0
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, err = parseFloat(v)
	f /= d
	return
}

func (g *Gradient) readGradAttr(attr Attr) (err error) {
	switch attr.Name {
	case "gradientTransform":
		g.Matrix, err = parseTransform(Identity, attr.Value)
	case "gradientUnits":
		switch strings.TrimSpace(attr.Value) {
		case "userSpaceOnUse":
			g.Units = UserSpaceOnUse
		case "objectBoundingBox":
			g.Units = ObjectBoundingBox
		}
	case "spreadMethod":
		switch strings.TrimSpace(attr.Value) {
		case "pad":
			g.Spread = PadSpread
		case "reflect":
			g.Spread = ReflectSpread
		case "repeat":
			g.Spread = RepeatSpread
		}
	}
	return err
}

// parseGradient builds a gradient from a linearGradient or
// radialGradient element. `viewBox` is used for user space units.
func parseGradient(e *Element, viewBox Bounds) (Gradient, error) {
	grad := Gradient{Bounds: viewBox, Matrix: Identity}
	var err error
	if e.Tag == "radialGradient" {
		direction := Radial{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}
		var setFx, setFy bool
		for _, attr := range e.Attrs {
			switch attr.Name {
			case "cx":
				direction[0], err = readFraction(attr.Value)
			case "cy":
				direction[1], err = readFraction(attr.Value)
			case "fx":
				setFx = true
				direction[2], err = readFraction(attr.Value)
			case "fy":
				setFy = true
				direction[3], err = readFraction(attr.Value)
			case "r":
				direction[4], err = readFraction(attr.Value)
			case "fr":
				direction[5], err = readFraction(attr.Value)
			default:
				err = grad.readGradAttr(attr)
			}
			if err != nil {
				return grad, err
			}
		}
		if !setFx { // set fx to cx by default
			direction[2] = direction[0]
		}
		if !setFy { // set fy to cy by default
			direction[3] = direction[1]
		}
		grad.Direction = direction
	} else {
		direction := Linear{0, 0, 1, 0}
		for _, attr := range e.Attrs {
			switch attr.Name {
			case "x1":
				direction[0], err = readFraction(attr.Value)
			case "y1":
				direction[1], err = readFraction(attr.Value)
			case "x2":
				direction[2], err = readFraction(attr.Value)
			case "y2":
				direction[3], err = readFraction(attr.Value)
			default:
				err = grad.readGradAttr(attr)
			}
			if err != nil {
				return grad, err
			}
		}
		grad.Direction = direction
	}

	for _, child := range e.Children {
		if child.Tag != "stop" {
			continue
		}
		stop, err := parseStop(child)
		if err != nil {
			return grad, err
		}
		grad.Stops = append(grad.Stops, stop)
	}
	return grad, nil
}

func parseStop(e *Element) (GradStop, error) {
	stop := GradStop{Opacity: 1.0, StopColor: color.Black}
	var pairs [][2]string
	for _, attr := range e.Attrs {
		if attr.Name == "style" {
			for _, pair := range strings.Split(attr.Value, ";") {
				kv := strings.SplitN(pair, ":", 2)
				if len(kv) == 2 {
					pairs = append(pairs, [2]string{strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])})
				}
			}
			continue
		}
		pairs = append(pairs, [2]string{attr.Name, attr.Value})
	}
	var err error
	for _, kv := range pairs {
		switch kv[0] {
		case "offset":
			stop.Offset, err = readFraction(kv[1])
		case "stop-color":
			var optColor optionnalColor
			optColor, err = parseSVGColor(kv[1])
			if optColor.valid {
				stop.StopColor = optColor.color
			}
		case "stop-opacity":
			stop.Opacity, err = parseFloat(kv[1])
		}
		if err != nil {
			return stop, err
		}
	}
	return stop, nil
}
