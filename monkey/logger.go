package monkey

import "github.com/benoitkugler/forkmonkey/svgscene"

// unknownTrait reports a trait value missing from a dispatch table,
// on the logger configured with svgscene.SetLogger. Rendering falls
// back to the category default and never fails.
func unknownTrait(category, value string) {
	svgscene.Logger().Debug("monkey: unknown trait value, using default", "category", category, "value", value)
}
