// Augment command fills missing colors with synthesized substitutes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brickforge/pab/internal/catalog"
	"github.com/brickforge/pab/internal/engine"
)

var augmentOut string

var augmentCmd = &cobra.Command{
	Use:   "augment <catalog.json>",
	Short: "Add substitute color variants to a catalog",
	Long: `Augment detects each piece's missing colors, synthesizes an equivalent
set of smaller pieces for every one it can, and writes the augmented
catalog document. Colors that cannot be synthesized are reported and left
missing.

Example:
  pab augment catalog.json -o catalog_with_substitutes.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAugment,
}

func init() {
	augmentCmd.Flags().StringVarP(&augmentOut, "out", "o", "catalog_with_substitutes.json", "output catalog file")
}

func runAugment(cmd *cobra.Command, args []string) error {
	cat := loadCatalogArg(args)

	idx := engine.DetectMissing(cat)
	augmented, report := engine.Augment(cat, idx)

	if err := catalog.SaveFile(augmentOut, augmented); err != nil {
		fmt.Fprintln(os.Stderr, "write catalog:", err)
		os.Exit(exitSysError)
	}

	if flagJSON {
		printJSON(report)
		return nil
	}

	printReport(report)
	fmt.Println("Wrote", augmentOut)
	return nil
}

// printReport renders a run report for human consumption.
func printReport(report *engine.Report) {
	fmt.Println("Pieces analyzed:          ", report.PiecesAnalyzed)
	fmt.Println("Pieces with missing colors:", report.PiecesWithMissing)
	fmt.Println("Missing color instances:  ", report.MissingInstances)
	fmt.Println("Substitutes added:        ", report.SubstitutesAdded)
	if report.PriceGaps > 0 {
		fmt.Println("Prices summed with gaps:  ", report.PriceGaps)
	}
	if len(report.Unresolved) > 0 {
		fmt.Println("Unresolved:")
		for _, u := range report.Unresolved {
			fmt.Printf("  %s %s (%s)\n", u.Piece, u.Color, u.Reason)
		}
	}
}
