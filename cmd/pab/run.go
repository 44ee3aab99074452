// Run command executes the full pipeline: augment, derive the universal
// palette, filter, verify.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brickforge/pab/internal/catalog"
	"github.com/brickforge/pab/internal/engine"
)

var (
	runAugmentedOut string
	runUniversalOut string
)

var runCmd = &cobra.Command{
	Use:   "run <catalog.json>",
	Short: "Run the full pipeline on a raw catalog",
	Long: `Run takes a raw catalog document through the whole pipeline: detect
missing colors, synthesize substitutes, derive the universal palette from
the augmented catalog, filter to it, and verify consistency. Both the
augmented and the universal catalogs are written.

Example:
  pab run catalog.json
  pab run --json catalog.json`,
	Args: cobra.ExactArgs(1),
	RunE: runPipeline,
}

func init() {
	runCmd.Flags().StringVar(&runAugmentedOut, "augmented-out", "catalog_with_substitutes.json", "augmented catalog file")
	runCmd.Flags().StringVar(&runUniversalOut, "universal-out", "catalog_universal.json", "universal catalog file")
}

type pipelineReport struct {
	Augment    *engine.Report    `json:"augment"`
	Palette    []string          `json:"palette"`
	Mismatches []engine.Mismatch `json:"mismatches,omitempty"`
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cat := loadCatalogArg(args)

	idx := engine.DetectMissing(cat)
	augmented, report := engine.Augment(cat, idx)
	if err := catalog.SaveFile(runAugmentedOut, augmented); err != nil {
		fmt.Fprintln(os.Stderr, "write augmented catalog:", err)
		os.Exit(exitSysError)
	}

	pal, err := engine.DeriveUniversal(augmented)
	if err != nil {
		fmt.Fprintln(os.Stderr, "derive palette:", err)
		os.Exit(exitUserError)
	}
	filtered := engine.FilterToUniversal(augmented, pal)
	mismatches := engine.Verify(filtered, pal)
	if err := catalog.SaveFile(runUniversalOut, filtered); err != nil {
		fmt.Fprintln(os.Stderr, "write universal catalog:", err)
		os.Exit(exitSysError)
	}

	if flagJSON {
		printJSON(pipelineReport{
			Augment:    report,
			Palette:    pal.Names(),
			Mismatches: mismatches,
		})
		return nil
	}

	printReport(report)
	fmt.Println("Wrote", runAugmentedOut)
	fmt.Printf("Universal palette: %d colors\n", len(pal.Names()))
	if len(mismatches) == 0 {
		fmt.Println("Verified: every piece carries exactly the universal palette.")
	} else {
		fmt.Println("Palette mismatches:")
		for _, m := range mismatches {
			fmt.Printf("  %s: missing %v, extra %v\n", m.Family, m.Missing, m.Extra)
		}
	}
	fmt.Println("Wrote", runUniversalOut)
	return nil
}
