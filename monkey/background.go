package monkey

import (
	"github.com/benoitkugler/forkmonkey/catalog"
	"github.com/benoitkugler/forkmonkey/svgscene"
)

type sceneFunc func(c canvas) elements

// sceneElements paints the decoration of scene backgrounds.
var sceneElements = map[catalog.ElementSet]sceneFunc{
	catalog.Stars:     starField,
	catalog.Trees:     trees,
	catalog.Waves:     waves,
	catalog.Peaks:     peaks,
	catalog.Buildings: buildings,
	catalog.Bubbles:   bubbles,
	catalog.Lava:      lava,
	catalog.Vortex:    vortex,
}

// background fills the whole canvas, then adds the scene decoration
// if any.
func background(id string, c canvas) elements {
	bg := catalog.BackgroundOf(id)
	switch bg.Kind {
	case catalog.Gradient:
		return elements{sizedRect(c.w, c.h).Fill(ref(bg.GradientID))}
	case catalog.Scene:
		out := elements{sizedRect(c.w, c.h).Fill(bg.Color)}
		if fn := sceneElements[bg.Elements]; fn != nil {
			out = append(out, fn(c)...)
		}
		return out
	default:
		return elements{sizedRect(c.w, c.h).Fill(bg.Color)}
	}
}

func starField(c canvas) elements {
	out := make(elements, 0, 40)
	for i := 0; i < 40; i++ {
		x, y := c.seed.Point(i+1, 7, 13, c.w, c.h)
		out = append(out, circle(x, y, 1+i%2).Fill("white").Opacity(0.4+float64(i%5)*0.1))
	}
	return out
}

func trees(c canvas) elements {
	var out elements
	ground := c.h - 20
	for i := 0; i < 5; i++ {
		x := 40 + i*80
		top := ground - (50 + c.seed.Scalar(i, 1, 30))
		out = append(out,
			polygon(x, ground, x-20, ground, x, top).Fill("#0D3D0D").Opacity(0.5),
			polygon(x, ground, x+20, ground, x, top).Fill("#1A5C1A").Opacity(0.5),
		)
	}
	return out
}

// waves are laid out on a fixed 400 unit width, whatever the canvas.
func waves(c canvas) elements {
	var out elements
	for i := 0; i < 3; i++ {
		y := float64(c.h - 50 + i*15)
		p := svgscene.Path{}.MoveTo(0, y).QuadTo(100, y-12, 200, y).SmoothQuadTo(400, y)
		out = append(out, path(p).Fill("#4169E1").Opacity(0.25-float64(i)*0.06))
	}
	return out
}

func peaks(c canvas) elements {
	h := c.h
	return elements{
		polygon(50, h, 150, h-140, 250, h).Fill("#4A5568"),
		polygon(180, h, 280, h-180, 380, h).Fill("#2D3748"),
		polygon(145, h-130, 150, h-140, 155, h-130).Fill("white"),
		polygon(275, h-170, 280, h-180, 285, h-170).Fill("white"),
	}
}

func buildings(c canvas) elements {
	var out elements
	for i := 0; i < 7; i++ {
		x, bh := i*60, 70+c.seed.Scalar(i+1, 1, 90)
		top := c.h - bh
		out = append(out, rect(x, top, 50, bh).Fill("#1A202C"))
		for wy := 10; wy < bh-10; wy += 18 {
			for wx := 8; wx < 42; wx += 14 {
				if c.seed.Add(i+wy+wx, 3) != 0 { // lit window
					out = append(out, rect(x+wx, top+wy, 6, 8).Fill("#FFD700").Opacity(0.6))
				}
			}
		}
	}
	return out
}

func bubbles(c canvas) elements {
	out := make(elements, 0, 15)
	for i := 0; i < 15; i++ {
		x, y := c.seed.Point(i+1, 17, 23, c.w, c.h)
		out = append(out, circle(x, y, 4+i%8).Fill("none").Set("stroke", "white").Opacity(0.25))
	}
	return out
}

func lava(c canvas) elements {
	out := elements{rect(0, c.h-60, c.w, 60).Fill("#FF4500").Opacity(0.6)}
	for i := 0; i < 6; i++ {
		x := 30 + c.seed.Scalar(i, 11, c.w-60)
		out = append(out, circle(x, c.h-25, 6+i%4).Fill("#FF6600"))
	}
	return out
}

func vortex(c canvas) elements {
	var out elements
	for i := 0; i < 6; i++ {
		ring := circle(c.cx, c.cy, 160-i*25).Fill("none").Stroke("#4B0082", 2)
		out = append(out, ring.Opacity(0.1+float64(i)*0.05))
	}
	return append(out, circle(c.cx, c.cy, 25).Fill("#000"))
}
