package monkey

import (
	"github.com/benoitkugler/forkmonkey/catalog"
	"github.com/benoitkugler/forkmonkey/svgscene"
)

// body draws the ears, the head and the muzzle, with the pattern
// overlay clipped to the head silhouette.
func body(colorID, pattern string, c canvas) elements {
	col := catalog.BodyColorOf(colorID)
	cx, cy := c.cx, c.cy
	var out elements
	for _, dx := range [2]int{-85, 85} {
		out = append(out,
			ellipse(cx+dx, cy-60, 45, 50).Fill(col.Main).Filter(shadowFilter),
			ellipse(cx+dx, cy-60, 30, 35).Fill("#FFB6C1"),
			ellipse(cx+dx, cy-55, 18, 22).Fill("#FF9999"),
		)
	}
	out = append(out,
		ellipse(cx, cy, headRX, headRY).Fill(col.Main).Filter(shadowFilter),
		ellipse(cx-20, cy-60, 50, 30).Fill(col.Highlight).Opacity(0.3),
	)
	if overlay := patternOverlay(pattern, c); len(overlay) != 0 {
		out = append(out, svgscene.Group(overlay...).Set("clip-path", ref(headClip)))
	}
	return append(out,
		ellipse(cx, cy+35, 70, 60).Fill("#FFDAB9"),
		ellipse(cx, cy+50, 55, 40).Fill("#DEB887").Opacity(0.3),
	)
}

type patternFunc func(c canvas) elements

// patterns maps every pattern drawing an overlay.
// "solid" and "none" have no entry.
var patterns = map[string]patternFunc{
	"spots":       spots,
	"stripes":     stripes,
	"stars":       glyphScatter("★", 8, 13, 17, 160, 18, "#FFD700", 0.5),
	"hearts":      glyphScatter("♥", 7, 19, 23, 140, 16, "#FF69B4", 0.4),
	"diamonds":    glyphScatter("◆", 8, 11, 13, 150, 18, "#00CED1", 0.35),
	"swirls":      swirls,
	"gradient":    skyTint,
	"nebula":      nebula,
	"lightning":   lightning,
	"flames":      flames,
	"fractals":    cosmicTint,
	"aurora":      cosmicTint,
	"quantum":     cosmicTint,
	"cosmic_dust": cosmicTint,
	"void":        cosmicTint,
}

// patternOverlay returns nil for solid, none and unknown patterns.
func patternOverlay(pattern string, c canvas) elements {
	fn := patterns[pattern]
	if fn == nil {
		return nil
	}
	return fn(c)
}

func spots(c canvas) elements {
	out := make(elements, 0, 10)
	for i := 0; i < 10; i++ {
		x, y := c.cx+c.seed.Offset(i, 7, 180), c.cy+c.seed.Offset(i, 11, 180)
		out = append(out, circle(x, y, 12).Fill("#000").Opacity(0.12))
	}
	return out
}

func stripes(c canvas) elements {
	rotation := "rotate(-15 " + num(c.cx) + " " + num(c.cy) + ")"
	out := make(elements, 0, 6)
	for i := 0; i < 6; i++ {
		stripe := rect(c.cx-110, c.cy-100+i*35, 220, 12).Fill("#000").Opacity(0.08)
		out = append(out, stripe.Set("transform", rotation))
	}
	return out
}

// glyphScatter places `count` copies of a symbol around the center,
// within a square of side `span`.
func glyphScatter(symbol string, count, mx, my, span, size int, color string, opacity float64) patternFunc {
	return func(c canvas) elements {
		out := make(elements, 0, count)
		for i := 0; i < count; i++ {
			x, y := c.cx+c.seed.Offset(i, mx, span), c.cy+c.seed.Offset(i, my, span)
			out = append(out, glyph(x, y, size, symbol).Fill(color).Opacity(opacity))
		}
		return out
	}
}

func swirls(c canvas) elements {
	out := make(elements, 0, 4)
	for i := 0; i < 4; i++ {
		ring := circle(c.cx, c.cy, 100-i*25).Fill("none").Stroke("#000", 2)
		out = append(out, ring.Opacity(0.08).Set("stroke-dasharray", "15,10"))
	}
	return out
}

func skyTint(c canvas) elements {
	return elements{ellipse(c.cx, c.cy, headRX, headRY).Fill(ref("sky-gradient")).Opacity(0.25)}
}

func nebula(c canvas) elements {
	return elements{
		ellipse(c.cx-25, c.cy-15, 45, 35).Fill("#FF00FF").Opacity(0.12),
		ellipse(c.cx+30, c.cy+25, 40, 30).Fill("#00FFFF").Opacity(0.12),
	}
}

func lightning(c canvas) elements {
	cx, cy := float64(c.cx), float64(c.cy)
	bolt := svgscene.Path{}.
		MoveTo(cx-15, cy-70).
		LineTo(cx+15, cy-10).
		LineTo(cx, cy-10).
		LineTo(cx+30, cy+50)
	return elements{outline(path(bolt), "#FFD700", 3).Opacity(0.5)}
}

func flames(c canvas) elements {
	return elements{
		ellipse(c.cx, c.cy+70, 45, 25).Fill("#FF4500").Opacity(0.2),
		ellipse(c.cx, c.cy+60, 35, 20).Fill("#FF6600").Opacity(0.15),
	}
}

// cosmicTint is shared by the whole cosmic family.
func cosmicTint(c canvas) elements {
	return elements{ellipse(c.cx, c.cy, 100, 105).Fill(ref("aurora-gradient")).Opacity(0.2)}
}
