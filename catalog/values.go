package catalog

import (
	"sort"

	"github.com/benoitkugler/forkmonkey/dna"
)

var (
	expressions = []string{
		"happy", "excited", "laughing", "surprised", "sleepy", "zen", "winking",
		"mischievous", "cool", "wise", "enlightened", "cosmic", "divine", "legendary",
	}
	accessories = []string{
		"none", "simple_hat", "bandana", "bow", "sunglasses", "crown", "headphones",
		"monocle", "halo", "horns", "wizard_hat", "golden_crown", "diamond_chain",
		"jetpack", "wings", "laser_eyes",
	}
	patterns = []string{
		"solid", "none", "spots", "stripes", "stars", "hearts", "diamonds", "swirls",
		"gradient", "nebula", "lightning", "flames",
		"fractals", "aurora", "quantum", "cosmic_dust", "void",
	}
	specials = []string{
		"none", "sparkles", "glow", "shadow", "particles", "aura", "energy",
		"transcendent", "godlike", "mythical",
	}
)

func sortedKeys[T any](m map[string]T) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// values and known are filled once from the tables above,
// so that lookups during rendering do not allocate.
var (
	values = map[dna.TraitCategory][]string{}
	known  = map[dna.TraitCategory]map[string]bool{}
)

func init() {
	values[dna.BodyColor] = sortedKeys(bodyColors)
	values[dna.Background] = sortedKeys(backgrounds)
	values[dna.FaceExpression] = expressions
	values[dna.Accessory] = accessories
	values[dna.Pattern] = patterns
	values[dna.Special] = specials
	for c, vs := range values {
		set := make(map[string]bool, len(vs))
		for _, v := range vs {
			set[v] = true
		}
		known[c] = set
	}
}

// Values returns the trait values the renderer has a dedicated visual for,
// for the given category. The returned slice is a fresh copy.
func Values(c dna.TraitCategory) []string {
	return append([]string(nil), values[c]...)
}

// Known reports whether value is listed by Values(c).
func Known(c dna.TraitCategory, value string) bool {
	return known[c][value]
}
