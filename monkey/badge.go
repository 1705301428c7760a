package monkey

import (
	"github.com/benoitkugler/forkmonkey/svgscene"
)

// Tier is a rarity band, shown on the badge.
type Tier struct {
	Label string
	Color string
	Min   float64 // inclusive lower bound of the rarity score
}

// Tiers are sorted by decreasing lower bound.
var Tiers = [...]Tier{
	{"LEGENDARY", "#FFD700", 80},
	{"RARE", "#9370DB", 60},
	{"UNCOMMON", "#4ECDC4", 40},
	{"COMMON", "#A0A0A0", 0},
}

// RarityTier returns the tier of a rarity score. Scores below every
// bound (including NaN) are COMMON.
func RarityTier(score float64) Tier {
	for _, t := range Tiers {
		if score >= t.Min {
			return t
		}
	}
	return Tiers[len(Tiers)-1]
}

func badgeLabel(x, y, size int, content string) *svgscene.Element {
	return glyph(x, y, size, content).Fill("#FFF").
		Set("text-anchor", "middle").Set("font-family", "sans-serif")
}

// badge draws the tier label in the top right corner and the
// generation tag in the top left corner.
func badge(rarity float64, generation int, c canvas) elements {
	tier := RarityTier(rarity)
	label := svgscene.Group(
		sizedRect(65, 22).SetNum("rx", 4).Fill(tier.Color).Opacity(0.9),
		badgeLabel(32, 15, 8, tier.Label).Set("font-weight", "bold"),
	).Set("transform", "translate("+num(c.w-75)+", 15)")
	gen := svgscene.Group(
		sizedRect(45, 22).SetNum("rx", 4).Fill("#333").Opacity(0.8),
		badgeLabel(22, 15, 9, "Gen "+num(generation)),
	).Set("transform", "translate(10, 15)")
	return elements{label, gen}
}
