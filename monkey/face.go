package monkey

import "github.com/benoitkugler/forkmonkey/svgscene"

const (
	irisBrown = "#3D2314"
	lineBrown = "#5D2E0C"
)

// eyes holds the two eye centers.
type eyes struct {
	lx, rx, y int
}

type eyesFunc func(e eyes) elements

var eyeStyles = map[string]eyesFunc{
	"sleepy":      narrowEyes,
	"zen":         narrowEyes,
	"winking":     winkingEyes,
	"surprised":   wideEyes,
	"excited":     wideEyes,
	"enlightened": glowingEyes("#E6E6FA", "#9370DB"),
	"cosmic":      glowingEyes("#E6E6FA", "#9370DB"),
	"divine":      glowingEyes("#E6E6FA", "#9370DB"),
	"legendary":   glowingEyes("#FF4500", "#FFD700"),
}

type mouthFunc func(cx, y int) elements

var mouthStyles = map[string]mouthFunc{
	"happy":       smile,
	"excited":     smile,
	"laughing":    laughingMouth,
	"surprised":   openMouth,
	"mischievous": smirk,
	"cool":        smirk,
	"wise":        softSmile,
	"zen":         softSmile,
	"enlightened": softSmile,
	"cosmic":      softSmile,
	"divine":      softSmile,
}

var browStyles = map[string]eyesFunc{
	"surprised":   raisedBrows,
	"excited":     raisedBrows,
	"mischievous": slantedBrows,
	"cool":        slantedBrows,
	"wise":        flatBrows,
	"zen":         flatBrows,
}

// face draws, in order, the eyes, the nose, the mouth and the brows.
// Expressions without a specific style get open eyes, a flat mouth
// and no brows.
func face(expression string, c canvas) elements {
	e := eyes{lx: c.cx - 38, rx: c.cx + 38, y: c.cy - 15}

	out := elements{
		ellipse(e.lx, e.y, 22, 24).Fill("#000").Opacity(0.08),
		ellipse(e.rx, e.y, 22, 24).Fill("#000").Opacity(0.08),
	}
	drawEyes := eyeStyles[expression]
	if drawEyes == nil {
		drawEyes = openEyes
	}
	out = append(out, drawEyes(e)...)

	out = append(out, nose(c.cx, c.cy+30))

	drawMouth := mouthStyles[expression]
	if drawMouth == nil {
		drawMouth = flatMouth
	}
	out = append(out, drawMouth(c.cx, c.cy+60)...)

	if drawBrows := browStyles[expression]; drawBrows != nil {
		out = append(out, drawBrows(e)...)
	}
	return out
}

func openEye(x, y int) elements {
	return elements{
		ellipse(x, y, 18, 20).Fill("white"),
		circle(x, y, 12).Fill(irisBrown),
		circle(x, y, 6).Fill("#000"),
		circle(x+4, y-4, 4).Fill("white"),
	}
}

func openEyes(e eyes) elements {
	return append(openEye(e.lx, e.y), openEye(e.rx, e.y)...)
}

func narrowEyes(e eyes) elements {
	var out elements
	for _, x := range [2]int{e.lx, e.rx} {
		out = append(out,
			ellipse(x, e.y, 18, 8).Fill("white"),
			ellipse(x, e.y+2, 10, 5).Fill(irisBrown),
		)
	}
	return out
}

func winkingEyes(e eyes) elements {
	closed := outline(path(curve(e.rx-15, e.y, e.rx, e.y+8, e.rx+15, e.y)), irisBrown, 3)
	return append(openEye(e.lx, e.y), closed)
}

func wideEyes(e eyes) elements {
	var out elements
	for _, x := range [2]int{e.lx, e.rx} {
		out = append(out,
			ellipse(x, e.y, 20, 24).Fill("white"),
			circle(x, e.y, 14).Fill(irisBrown),
			circle(x, e.y, 8).Fill("#000"),
			circle(x+5, e.y-5, 5).Fill("white"),
		)
	}
	return out
}

func glowingEyes(glow, iris string) eyesFunc {
	return func(e eyes) elements {
		var out elements
		for _, x := range [2]int{e.lx, e.rx} {
			out = append(out,
				ellipse(x, e.y, 18, 20).Fill(glow).Filter(glowFilter),
				circle(x, e.y, 10).Fill(iris),
				circle(x, e.y, 4).Fill("#FFF"),
			)
		}
		return out
	}
}

// nose is the same for every expression.
func nose(cx, y int) *svgscene.Element {
	return svgscene.Group(
		ellipse(cx, y, 25, 18).Fill("#8B4513"),
		ellipse(cx, y, 22, 15).Fill("#A0522D"),
		ellipse(cx-8, y, 5, 7).Fill(lineBrown),
		ellipse(cx+8, y, 5, 7).Fill(lineBrown),
	)
}

func smile(cx, y int) elements {
	return elements{outline(path(curve(cx-30, y, cx, y+25, cx+30, y)), lineBrown, 4)}
}

func laughingMouth(cx, y int) elements {
	return elements{
		ellipse(cx, y+5, 28, 18).Fill("#8B0000"),
		ellipse(cx, y+12, 18, 7).Fill("#FF6B6B"),
	}
}

func openMouth(cx, y int) elements {
	return elements{ellipse(cx, y+5, 16, 22).Fill("#8B0000")}
}

func smirk(cx, y int) elements {
	return elements{outline(path(curve(cx-22, y+5, cx, y, cx+25, y-8)), lineBrown, 3)}
}

func softSmile(cx, y int) elements {
	return elements{outline(path(curve(cx-22, y, cx, y+8, cx+22, y)), lineBrown, 2)}
}

func flatMouth(cx, y int) elements {
	return elements{line(cx-18, y, cx+18, y).Stroke(lineBrown, 2)}
}

func raisedBrows(e eyes) elements {
	by := e.y - 30
	return elements{
		outline(path(curve(e.lx-15, by+5, e.lx, by-5, e.lx+15, by+5)), lineBrown, 3),
		outline(path(curve(e.rx-15, by+5, e.rx, by-5, e.rx+15, by+5)), lineBrown, 3),
	}
}

func slantedBrows(e eyes) elements {
	by := e.y - 30
	return elements{
		line(e.lx-12, by, e.lx+12, by+6).Stroke(lineBrown, 3),
		line(e.rx-12, by+6, e.rx+12, by).Stroke(lineBrown, 3),
	}
}

func flatBrows(e eyes) elements {
	by := e.y - 27
	return elements{
		line(e.lx-12, by, e.lx+12, by).Stroke(lineBrown, 2),
		line(e.rx-12, by, e.rx+12, by).Stroke(lineBrown, 2),
	}
}
