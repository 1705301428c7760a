package catalog

// BackgroundKind selects how a background is painted.
type BackgroundKind uint8

const (
	Solid    BackgroundKind = iota // flat Color
	Gradient                       // full canvas filled with GradientID
	Scene                          // flat Color plus a decorative element set
)

func (k BackgroundKind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Gradient:
		return "gradient"
	case Scene:
		return "scene"
	default:
		return "<unknown BackgroundKind>"
	}
}

// ElementSet names the decoration drawn over a scene background.
type ElementSet string

const (
	Stars     ElementSet = "stars"
	Trees     ElementSet = "trees"
	Waves     ElementSet = "waves"
	Peaks     ElementSet = "peaks"
	Buildings ElementSet = "buildings"
	Bubbles   ElementSet = "bubbles"
	Lava      ElementSet = "lava"
	Vortex    ElementSet = "vortex"
)

// Background describes one background trait value.
type Background struct {
	Kind       BackgroundKind
	Color      string     // Solid and Scene
	GradientID string     // Gradient
	Elements   ElementSet // Scene
}

// DefaultBackground is used for unknown background identifiers.
const DefaultBackground = "white"

var backgrounds = map[string]Background{
	"white":          {Kind: Solid, Color: "#F8F9FA"},
	"blue_sky":       {Kind: Gradient, GradientID: "sky-gradient"},
	"green_grass":    {Kind: Gradient, GradientID: "grass-gradient"},
	"sunset":         {Kind: Gradient, GradientID: "sunset-gradient"},
	"forest":         {Kind: Scene, Color: "#1A4D1A", Elements: Trees},
	"beach":          {Kind: Scene, Color: "#F0E68C", Elements: Waves},
	"mountains":      {Kind: Scene, Color: "#708090", Elements: Peaks},
	"city":           {Kind: Scene, Color: "#2C3E50", Elements: Buildings},
	"space":          {Kind: Scene, Color: "#0D1B2A", Elements: Stars},
	"underwater":     {Kind: Scene, Color: "#006994", Elements: Bubbles},
	"volcano":        {Kind: Scene, Color: "#1A0A00", Elements: Lava},
	"aurora":         {Kind: Gradient, GradientID: "aurora-gradient"},
	"multiverse":     {Kind: Gradient, GradientID: "multiverse-gradient"},
	"black_hole":     {Kind: Scene, Color: "#000000", Elements: Vortex},
	"dimension_rift": {Kind: Gradient, GradientID: "rift-gradient"},
	"heaven":         {Kind: Gradient, GradientID: "heaven-gradient"},
}

// LookupBackground returns the background registered for id, and whether
// id was known. Unknown ids get the DefaultBackground.
func LookupBackground(id string) (Background, bool) {
	b, ok := backgrounds[id]
	if !ok {
		return backgrounds[DefaultBackground], false
	}
	return b, true
}

// BackgroundOf is LookupBackground without the presence flag.
func BackgroundOf(id string) Background {
	b, _ := LookupBackground(id)
	return b
}
