// Package monkey renders a DNA into a layered SVG drawing.
//
// Rendering is total: every trait value missing from the dispatch tables
// falls back to the default visual of its category, so that any DNA,
// including the zero value, yields a complete drawing.
// The renderers share no mutable state and may be called concurrently.
package monkey

import (
	"github.com/benoitkugler/forkmonkey/catalog"
	"github.com/benoitkugler/forkmonkey/dna"
	"github.com/benoitkugler/forkmonkey/placement"
	"github.com/benoitkugler/forkmonkey/svgscene"
)

// Layer names, in painting order.
const (
	LayerBackground   = "background"
	LayerSpecialBack  = "special-back"
	LayerBody         = "body"
	LayerFace         = "face"
	LayerAccessory    = "accessory"
	LayerSpecialFront = "special-front"
	LayerBadge        = "badge"
)

// LayerOrder lists the layers of a rendered Drawing, bottom first.
var LayerOrder = [...]string{
	LayerBackground, LayerSpecialBack, LayerBody, LayerFace,
	LayerAccessory, LayerSpecialFront, LayerBadge,
}

// Render builds the drawing of `d` on a `width` x `height` canvas.
// Non positive sizes are clamped to 1.
func Render(d dna.DNA, width, height int) *svgscene.Drawing {
	width, height = max(width, 1), max(height, 1)
	for _, cat := range dna.Categories {
		if v := d.Trait(cat); !catalog.Known(cat, v) {
			unknownTrait(cat.String(), v)
		}
	}

	c := newCanvas(width, height, placement.FromFingerprint(d.Fingerprint()))
	sp := d.Trait(dna.Special)
	layers := [len(LayerOrder)]elements{
		background(d.Trait(dna.Background), c),
		special(specialBack, sp, c),
		body(d.Trait(dna.BodyColor), d.Trait(dna.Pattern), c),
		face(d.Trait(dna.FaceExpression), c),
		accessory(d.Trait(dna.Accessory), c),
		special(specialFront, sp, c),
		badge(d.Rarity(), d.Generation(), c),
	}

	out := &svgscene.Drawing{
		Width:  width,
		Height: height,
		Defs:   definitions(c),
		Layers: make([]svgscene.Layer, len(LayerOrder)),
	}
	for i, name := range LayerOrder {
		out.Layers[i] = svgscene.Layer{Name: name, Elements: layers[i]}
	}
	return out
}

// RenderThumbnail is Render on a square canvas.
func RenderThumbnail(d dna.DNA, size int) *svgscene.Drawing {
	return Render(d, size, size)
}

// RenderSVG returns the serialized drawing of `d`.
func RenderSVG(d dna.DNA, width, height int) ([]byte, error) {
	return Render(d, width, height).MarshalSVG()
}
