package monkey

import "github.com/benoitkugler/forkmonkey/svgscene"

type specialFunc func(c canvas) elements

// specialBack is painted behind the body.
var specialBack = map[string]specialFunc{
	"aura":         aura,
	"energy":       energyRing,
	"transcendent": multiverseHalo,
	"godlike":      multiverseHalo,
	"mythical":     multiverseHalo,
}

// specialFront is painted over the accessory.
var specialFront = map[string]specialFunc{
	"sparkles":     sparkles,
	"glow":         glowRing,
	"shadow":       dropShadow,
	"particles":    particles,
	"transcendent": transcendent,
	"godlike":      godlike,
	"mythical":     mythical,
}

func special(table map[string]specialFunc, id string, c canvas) elements {
	fn := table[id]
	if fn == nil {
		return nil
	}
	return fn(c)
}

func ring(c canvas, r int, color string, width, opacity float64) *svgscene.Element {
	return circle(c.cx, c.cy, r).Fill("none").Stroke(color, width).Opacity(opacity)
}

func aura(c canvas) elements {
	return elements{
		ring(c, 160, "#9400D3", 4, 0.3),
		ring(c, 175, "#4B0082", 2, 0.2),
	}
}

func energyRing(c canvas) elements {
	return elements{ring(c, 165, "#00FFFF", 3, 0.25).Set("stroke-dasharray", "20,10")}
}

func multiverseHalo(c canvas) elements {
	return elements{circle(c.cx, c.cy, 180).Fill(ref("multiverse-gradient")).Opacity(0.15)}
}

func sparkles(c canvas) elements {
	cx, cy := c.cx, c.cy
	pos := [5][2]int{{cx - 90, cy - 90}, {cx + 90, cy - 90}, {cx - 90, cy + 90}, {cx + 90, cy + 90}, {cx, cy - 130}}
	out := make(elements, 0, len(pos))
	for _, p := range pos {
		out = append(out, glyph(p[0], p[1], 24, "✦").Fill("#FFD700"))
	}
	return out
}

func glowRing(c canvas) elements {
	return elements{ring(c, 135, "#FFD700", 6, 0.25)}
}

func dropShadow(c canvas) elements {
	return elements{ellipse(c.cx, c.cy+140, 100, 20).Fill("#000").Opacity(0.2)}
}

func particles(c canvas) elements {
	out := make(elements, 0, 12)
	for i := 0; i < 12; i++ {
		x, y := c.cx+c.seed.Offset(i, 13, 200), c.cy+c.seed.Offset(i, 17, 200)
		out = append(out, circle(x, y, 3).Fill("#FFD700").Opacity(0.6))
	}
	return out
}

func transcendent(c canvas) elements {
	return elements{ring(c, 145, "#FFD700", 4, 0.4).Filter(glowFilter)}
}

func godlike(c canvas) elements {
	crown := glyph(c.cx, c.cy-170, 36, "♔").Fill("#FFD700").Set("text-anchor", "middle")
	return elements{
		ring(c, 150, "#FFF", 3, 0.5).Filter(glowFilter),
		crown.Filter(glowFilter),
	}
}

func mythical(c canvas) elements {
	return elements{
		ring(c, 155, "#FF00FF", 3, 0.4).Filter(glowFilter),
		ring(c, 165, "#00FFFF", 2, 0.3),
	}
}
