package svgscene

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Pattern groups a basic color and a gradient pattern
// A nil value may by used to indicated that the element
// should not be filled or stroked
type Pattern interface {
	isPattern()
}

func (PlainColor) isPattern() {}
func (Gradient) isPattern()   {}

// PlainColor is a uniform color. It implements color.Color.
type PlainColor color.RGBA

func (c PlainColor) RGBA() (r, g, b, a uint32) { return color.RGBA(c).RGBA() }

// NewPlainColor returns a PlainColor from the given channels.
func NewPlainColor(r, g, b, a uint8) PlainColor {
	return PlainColor{R: r, G: g, B: b, A: a}
}

// optionnalColor stores an optional color, where
// a zero value means "none".
type optionnalColor struct {
	valid bool
	color PlainColor
}

func (o optionnalColor) asPattern() Pattern {
	if !o.valid {
		return nil
	}
	return o.color
}

var errInvalidColor = errors.New("invalid color")

// ParseColor parses an SVG color value: "none", "#rgb", "#rrggbb",
// "rgb(r, g, b)" or a CSS color keyword. `ok` is false for "none".
func ParseColor(v string) (c PlainColor, ok bool, err error) {
	opt, err := parseSVGColor(v)
	return opt.color, opt.valid, err
}

func parseSVGColor(v string) (optionnalColor, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch {
	case v == "none" || v == "":
		return optionnalColor{}, nil
	case v == "currentcolor":
		return optionnalColor{valid: true, color: NewPlainColor(0, 0, 0, 0xff)}, nil
	case strings.HasPrefix(v, "#"):
		return parseHexColor(v[1:])
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseRGBColor(v[4 : len(v)-1])
	}
	c, ok := colornames.Map[v]
	if !ok {
		return optionnalColor{}, fmt.Errorf("%w: %q", errInvalidColor, v)
	}
	return optionnalColor{valid: true, color: PlainColor(c)}, nil
}

func parseHexColor(hex string) (optionnalColor, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return optionnalColor{}, fmt.Errorf("%w: #%s", errInvalidColor, hex)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return optionnalColor{}, fmt.Errorf("%w: #%s", errInvalidColor, hex)
	}
	return optionnalColor{valid: true, color: NewPlainColor(uint8(n>>16), uint8(n>>8), uint8(n), 0xff)}, nil
}

func parseRGBColor(args string) (optionnalColor, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return optionnalColor{}, fmt.Errorf("%w: rgb(%s)", errInvalidColor, args)
	}
	var cs [3]uint8
	for i, p := range parts {
		p = strings.TrimSpace(p)
		scale := 1.
		if strings.HasSuffix(p, "%") {
			p, scale = strings.TrimSuffix(p, "%"), 2.55
		}
		f, err := parseFloat(p)
		if err != nil {
			return optionnalColor{}, fmt.Errorf("%w: rgb(%s)", errInvalidColor, args)
		}
		f *= scale
		if f < 0 {
			f = 0
		} else if f > 255 {
			f = 255
		}
		cs[i] = uint8(f + 0.5)
	}
	return optionnalColor{valid: true, color: NewPlainColor(cs[0], cs[1], cs[2], 0xff)}, nil
}
