package monkey

import "github.com/benoitkugler/forkmonkey/svgscene"

type accessoryFunc func(cx, cy int) elements

// accessories are fixed fragments positioned relative to the canvas center.
// "none" and unknown values draw nothing.
var accessories = map[string]accessoryFunc{
	"simple_hat":    simpleHat,
	"bandana":       bandana,
	"bow":           bow,
	"sunglasses":    sunglasses,
	"crown":         crown,
	"headphones":    headphones,
	"monocle":       monocle,
	"halo":          halo,
	"horns":         horns,
	"wizard_hat":    wizardHat,
	"golden_crown":  goldenCrown,
	"diamond_chain": diamondChain,
	"jetpack":       jetpack,
	"wings":         wings,
	"laser_eyes":    laserEyes,
}

func accessory(id string, c canvas) elements {
	fn := accessories[id]
	if fn == nil {
		return nil
	}
	return fn(c.cx, c.cy)
}

func simpleHat(cx, cy int) elements {
	return elements{
		roundedRect(cx-45, cy-145, 90, 18, 3).Fill("#8B0000"),
		rect(cx-55, cy-130, 110, 8).Fill("#8B0000"),
	}
}

func bandana(cx, cy int) elements {
	return elements{
		outline(path(curve(cx-90, cy-80, cx, cy-110, cx+90, cy-80)), "#E74C3C", 12),
		polygon(cx-95, cy-75, cx-110, cy-40, cx-85, cy-50).Fill("#E74C3C"),
	}
}

func bow(cx, cy int) elements {
	return elements{
		ellipse(cx-70, cy-70, 20, 15).Fill("#FF69B4"),
		ellipse(cx-70, cy-70, 8, 8).Fill("#FF1493"),
		polygon(cx-70, cy-85, cx-55, cy-70, cx-70, cy-55).Fill("#FF69B4"),
	}
}

func sunglasses(cx, cy int) elements {
	return elements{
		roundedRect(cx-58, cy-25, 38, 28, 4).Fill("#000").Opacity(0.85),
		roundedRect(cx+20, cy-25, 38, 28, 4).Fill("#000").Opacity(0.85),
		line(cx-20, cy-11, cx+20, cy-11).Stroke("#000", 3),
		line(cx-58, cy-11, cx-80, cy-20).Stroke("#000", 2),
		line(cx+58, cy-11, cx+80, cy-20).Stroke("#000", 2),
	}
}

func crown(cx, cy int) elements {
	return elements{
		polygon(cx-35, cy-130, cx-20, cy-155, cx, cy-135, cx+20, cy-155, cx+35, cy-130).
			Fill("#FFD700").Stroke("#DAA520", 2),
		rect(cx-35, cy-130, 70, 12).Fill("#FFD700").Stroke("#DAA520", 2),
	}
}

func headphones(cx, cy int) elements {
	band := svgscene.Path{}.
		MoveTo(float64(cx-75), float64(cy-30)).
		QuadTo(float64(cx-75), float64(cy-100), float64(cx), float64(cy-110)).
		QuadTo(float64(cx+75), float64(cy-100), float64(cx+75), float64(cy-30))
	return elements{
		outline(path(band), "#333", 8),
		roundedRect(cx-85, cy-45, 25, 40, 5).Fill("#333"),
		roundedRect(cx+60, cy-45, 25, 40, 5).Fill("#333"),
	}
}

func monocle(cx, cy int) elements {
	return elements{
		circle(cx+38, cy-15, 22).Fill("none").Stroke("#DAA520", 3),
		line(cx+60, cy-15, cx+90, cy+40).Stroke("#DAA520", 2),
	}
}

func halo(cx, cy int) elements {
	ring := ellipse(cx, cy-150, 55, 12).Fill("none").Stroke("#FFD700", 6)
	return elements{ring.Opacity(0.85).Filter(glowFilter)}
}

func horns(cx, cy int) elements {
	left := outline(path(curve(cx-60, cy-90, cx-80, cy-150, cx-50, cy-160)), "#8B0000", 12)
	right := outline(path(curve(cx+60, cy-90, cx+80, cy-150, cx+50, cy-160)), "#8B0000", 12)
	return elements{
		left.Set("stroke-linecap", "round"),
		right.Set("stroke-linecap", "round"),
	}
}

func wizardHat(cx, cy int) elements {
	return elements{
		polygon(cx, cy-190, cx-55, cy-115, cx+55, cy-115).Fill("#4B0082"),
		ellipse(cx, cy-115, 65, 12).Fill("#4B0082"),
		glyph(cx, cy-145, 20, "★").Fill("#FFD700").Set("text-anchor", "middle"),
	}
}

func goldenCrown(cx, cy int) elements {
	return elements{
		polygon(
			cx-45, cy-130, cx-30, cy-165, cx-10, cy-140, cx+10, cy-165,
			cx+30, cy-140, cx+45, cy-165, cx+45, cy-115, cx-45, cy-115,
		).Fill("#FFD700").Stroke("#B8860B", 3),
		circle(cx, cy-155, 8).Fill("#E74C3C"),
		circle(cx-25, cy-145, 5).Fill("#3498DB"),
		circle(cx+25, cy-145, 5).Fill("#2ECC71"),
	}
}

func diamondChain(cx, cy int) elements {
	return elements{
		outline(path(curve(cx-80, cy+80, cx, cy+100, cx+80, cy+80)), "#C0C0C0", 4),
		polygon(cx, cy+85, cx+12, cy+100, cx, cy+115, cx-12, cy+100).
			Fill("#00CED1").Stroke("#87CEEB", 2),
	}
}

func jetpack(cx, cy int) elements {
	return elements{
		roundedRect(cx-50, cy+60, 20, 50, 5).Fill("#555"),
		roundedRect(cx+30, cy+60, 20, 50, 5).Fill("#555"),
		ellipse(cx-40, cy+120, 8, 15).Fill("#FF4500").Opacity(0.8),
		ellipse(cx+40, cy+120, 8, 15).Fill("#FF4500").Opacity(0.8),
	}
}

// wing returns the outline of a wing; side is -1 for the left one.
func wing(cx, cy, side int) svgscene.Path {
	x := func(dx int) float64 { return float64(cx + side*dx) }
	return svgscene.Path{}.
		MoveTo(x(100), float64(cy)).
		QuadTo(x(150), float64(cy-80), x(180), float64(cy+20)).
		QuadTo(x(140), float64(cy+10), x(100), float64(cy+30))
}

func wings(cx, cy int) elements {
	return elements{
		path(wing(cx, cy, -1)).Fill("#E6E6FA").Opacity(0.8),
		path(wing(cx, cy, 1)).Fill("#E6E6FA").Opacity(0.8),
	}
}

func laserEyes(cx, cy int) elements {
	return elements{
		line(cx-38, cy-15, cx-150, cy+50).Stroke("#FF0000", 4).Opacity(0.7),
		line(cx+38, cy-15, cx+150, cy+50).Stroke("#FF0000", 4).Opacity(0.7),
	}
}
