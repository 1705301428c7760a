package commands

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/forkmonkey/catalog"
	"github.com/benoitkugler/forkmonkey/dna"
	"github.com/spf13/cobra"
)

// TraitsCmd lists the trait values with a dedicated visual
var TraitsCmd = &cobra.Command{
	Use:   "traits [CATEGORY]",
	Short: "List the known trait values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		categories := dna.Categories[:]
		if len(args) == 1 {
			c, ok := dna.ParseCategory(args[0])
			if !ok {
				return fmt.Errorf("unknown trait category %q", args[0])
			}
			categories = []dna.TraitCategory{c}
		}
		for _, c := range categories {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", c, strings.Join(catalog.Values(c), ", "))
		}
		return nil
	},
}
