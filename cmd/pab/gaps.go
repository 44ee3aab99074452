// Gaps command analyzes what augmentation still could not cover.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brickforge/pab/internal/engine"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps <catalog.json>",
	Short: "Analyze residual gaps in an augmented catalog",
	Long: `Gaps inspects an augmented catalog, counting substitute variants as
available: pieces still missing colors, how the families' palettes differ,
and the direct/substitute availability per piece.

Example:
  pab gaps catalog_with_substitutes.json`,
	Args: cobra.ExactArgs(1),
	RunE: runGaps,
}

func runGaps(cmd *cobra.Command, args []string) error {
	cat := loadCatalogArg(args)
	analysis := engine.AnalyzeGaps(cat)

	if flagJSON {
		printJSON(analysis)
		return nil
	}

	if len(analysis.Residual) == 0 {
		fmt.Println("No residual gaps: every piece covers its family's smaller colors.")
	} else {
		fmt.Println("Residual gaps:")
		for _, gap := range analysis.Residual {
			fmt.Printf("  %s missing %d colors:", gap.Piece, len(gap.Colors))
			for _, name := range gap.Colors {
				fmt.Printf(" %s,", name)
			}
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Println("Family coverage:")
	for _, fc := range analysis.Families {
		fmt.Printf("  %s: %d colors", fc.Family, fc.Total)
		if len(fc.Exclusive) > 0 {
			fmt.Printf(" (%d exclusive)", len(fc.Exclusive))
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Println("Availability per piece:")
	for _, av := range analysis.Availability {
		fmt.Printf("  %-12s area %2d: %3d direct, %3d substituted\n",
			av.Piece, av.Area, av.Direct, av.Substituted)
	}

	fmt.Println()
	fmt.Println("Unique colors:", analysis.UniqueColors)
	return nil
}
