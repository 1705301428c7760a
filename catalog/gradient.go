package catalog

// Stop is a gradient color stop. Offset is a percentage.
type Stop struct {
	Offset  float64
	Color   string
	Opacity float64 // 0 means unset (fully opaque)
}

// GradientDef is a paint definition referenced by id from fills.
// Coordinates are percentages of the painted shape bounding box.
type GradientDef struct {
	ID             string
	Radial         bool
	X1, Y1, X2, Y2 float64 // linear
	CX, CY         float64 // radial
	Stops          []Stop
}

func linear(id string, x1, y1, x2, y2 float64, stops ...Stop) GradientDef {
	return GradientDef{ID: id, X1: x1, Y1: y1, X2: x2, Y2: y2, Stops: stops}
}

func radial(id string, cx, cy float64, stops ...Stop) GradientDef {
	return GradientDef{ID: id, Radial: true, CX: cx, CY: cy, Stops: stops}
}

// Gradients lists every paint definition, in document order.
// Body colors and backgrounds reference them by ID.
var Gradients = [...]GradientDef{
	linear("rainbow-body", 0, 0, 100, 100,
		Stop{0, "#FF6B6B", 0}, Stop{25, "#FFE66D", 0}, Stop{50, "#4ECDC4", 0},
		Stop{75, "#45B7D1", 0}, Stop{100, "#DDA0DD", 0}),
	radial("galaxy-body", 30, 30,
		Stop{0, "#E6E6FA", 0}, Stop{50, "#9370DB", 0}, Stop{100, "#1A0033", 0}),
	linear("holo-body", 0, 0, 100, 100,
		Stop{0, "#FF00FF", 0}, Stop{50, "#00FFFF", 0}, Stop{100, "#FFFF00", 0}),
	linear("sky-gradient", 0, 0, 0, 100,
		Stop{0, "#87CEEB", 0}, Stop{100, "#E0F4FF", 0}),
	linear("grass-gradient", 0, 0, 0, 100,
		Stop{0, "#90EE90", 0}, Stop{100, "#228B22", 0}),
	linear("sunset-gradient", 0, 0, 0, 100,
		Stop{0, "#FF6B6B", 0}, Stop{50, "#FFE66D", 0}, Stop{100, "#4ECDC4", 0}),
	linear("aurora-gradient", 0, 0, 100, 100,
		Stop{0, "#0D1B2A", 0}, Stop{30, "#00FF7F", 0}, Stop{70, "#FF00FF", 0}, Stop{100, "#0D1B2A", 0}),
	radial("multiverse-gradient", 50, 50,
		Stop{0, "#FFD700", 0}, Stop{40, "#FF00FF", 0}, Stop{70, "#00FFFF", 0}, Stop{100, "#000", 0}),
	linear("rift-gradient", 0, 0, 100, 100,
		Stop{0, "#000", 0}, Stop{30, "#9400D3", 0}, Stop{50, "#00FFFF", 0},
		Stop{70, "#9400D3", 0}, Stop{100, "#000", 0}),
	linear("heaven-gradient", 0, 0, 0, 100,
		Stop{0, "#FFF", 0}, Stop{50, "#FFD700", 0.3}, Stop{100, "#F0F8FF", 0}),
}

// LookupGradient returns the definition registered under id.
func LookupGradient(id string) (GradientDef, bool) {
	for _, g := range Gradients {
		if g.ID == id {
			return g, true
		}
	}
	return GradientDef{}, false
}
