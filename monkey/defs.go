package monkey

import (
	"github.com/benoitkugler/forkmonkey/catalog"
	"github.com/benoitkugler/forkmonkey/svgscene"
)

// Identifiers of the definitions referenced by the layers.
const (
	shadowFilter = "shadow"
	glowFilter   = "glow"
	headClip     = "head-clip"
)

// Head silhouette radii, shared by the head and its clip region.
const (
	headRX = 110
	headRY = 115
)

func percent(v float64) string { return svgscene.FormatNumber(v) + "%" }

func ref(id string) string { return "url(#" + id + ")" }

func shadowDef() *svgscene.Element {
	return svgscene.New("filter").Set("id", shadowFilter).
		Set("x", "-20%").Set("y", "-20%").Set("width", "140%").Set("height", "140%").
		Append(svgscene.New("feDropShadow").
			Set("dx", "2").Set("dy", "4").Set("stdDeviation", "3").Set("flood-opacity", "0.3"))
}

func glowDef() *svgscene.Element {
	return svgscene.New("filter").Set("id", glowFilter).
		Set("x", "-50%").Set("y", "-50%").Set("width", "200%").Set("height", "200%").
		Append(
			svgscene.New("feGaussianBlur").Set("stdDeviation", "8").Set("result", "blur"),
			svgscene.New("feMerge").Append(
				svgscene.New("feMergeNode").Set("in", "blur"),
				svgscene.New("feMergeNode").Set("in", "SourceGraphic"),
			),
		)
}

func gradientDef(g catalog.GradientDef) *svgscene.Element {
	var e *svgscene.Element
	if g.Radial {
		e = svgscene.New("radialGradient").Set("id", g.ID).
			Set("cx", percent(g.CX)).Set("cy", percent(g.CY))
	} else {
		e = svgscene.New("linearGradient").Set("id", g.ID).
			Set("x1", percent(g.X1)).Set("y1", percent(g.Y1)).
			Set("x2", percent(g.X2)).Set("y2", percent(g.Y2))
	}
	for _, s := range g.Stops {
		stop := svgscene.New("stop").Set("offset", percent(s.Offset)).Set("stop-color", s.Color)
		if s.Opacity != 0 {
			stop.SetNum("stop-opacity", s.Opacity)
		}
		e.Append(stop)
	}
	return e
}

// definitions returns the filters, the gradients of the catalog and the
// head clip region, centered on the canvas.
func definitions(c canvas) elements {
	out := elements{shadowDef(), glowDef()}
	for _, g := range catalog.Gradients {
		out = append(out, gradientDef(g))
	}
	clip := svgscene.New("clipPath").Set("id", headClip).
		Append(ellipse(c.cx, c.cy, headRX, headRY))
	return append(out, clip)
}
