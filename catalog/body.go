// Package catalog holds the static palettes the monkey renderer maps trait
// values to. Every lookup is total: an unknown identifier resolves to the
// category default.
package catalog

// BodyColor is the color triple used to paint the head and ears.
// Main may be a paint reference such as "url(#galaxy-body)".
type BodyColor struct {
	Main, Shadow, Highlight string
}

// DefaultBodyColor is used for unknown body color identifiers.
const DefaultBodyColor = "brown"

var bodyColors = map[string]BodyColor{
	"brown":       {"#8B4513", "#5D2E0C", "#A0522D"},
	"tan":         {"#D2B48C", "#B8956E", "#E8D4B8"},
	"beige":       {"#F5F5DC", "#D4D4B8", "#FFFFF0"},
	"gray":        {"#808080", "#5A5A5A", "#A0A0A0"},
	"golden":      {"#FFD700", "#B8860B", "#FFEC8B"},
	"silver":      {"#C0C0C0", "#909090", "#E8E8E8"},
	"copper":      {"#B87333", "#8B5A2B", "#D4A574"},
	"bronze":      {"#CD7F32", "#8B5A2B", "#DAA06D"},
	"blue":        {"#4169E1", "#2E4A9E", "#6B8BF5"},
	"purple":      {"#9370DB", "#6A4FA0", "#B19CD9"},
	"green":       {"#32CD32", "#228B22", "#7CFC00"},
	"pink":        {"#FF69B4", "#DB4D91", "#FFB6C1"},
	"rainbow":     {"url(#rainbow-body)", "#9400D3", "#FFD700"},
	"galaxy":      {"url(#galaxy-body)", "#1A0033", "#E6E6FA"},
	"holographic": {"url(#holo-body)", "#4B0082", "#FFFFFF"},
	"crystal":     {"#E0FFFF", "#87CEEB", "#FFFFFF"},
}

// LookupBodyColor returns the palette registered for id, and whether
// id was known. Unknown ids get the DefaultBodyColor palette.
func LookupBodyColor(id string) (BodyColor, bool) {
	c, ok := bodyColors[id]
	if !ok {
		return bodyColors[DefaultBodyColor], false
	}
	return c, true
}

// BodyColorOf is LookupBodyColor without the presence flag.
func BodyColorOf(id string) BodyColor {
	c, _ := LookupBodyColor(id)
	return c
}
