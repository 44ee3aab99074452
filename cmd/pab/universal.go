// Universal command derives the universal palette and filters the catalog
// down to it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brickforge/pab/internal/catalog"
	"github.com/brickforge/pab/internal/engine"
	"github.com/brickforge/pab/pkg/types"
)

var universalOut string

var universalCmd = &cobra.Command{
	Use:   "universal <catalog.json>",
	Short: "Filter a catalog to its universal palette",
	Long: `Universal intersects the direct color sets of each family's reference
unit piece, drops every variant outside the intersection, removes pieces
left with no colors, and verifies that every remaining piece carries
exactly the palette.

Example:
  pab universal catalog_with_substitutes.json -o catalog_universal.json`,
	Args: cobra.ExactArgs(1),
	RunE: runUniversal,
}

func init() {
	universalCmd.Flags().StringVarP(&universalOut, "out", "o", "catalog_universal.json", "output catalog file")
}

type universalReport struct {
	Palette    []string          `json:"palette"`
	Removed    []removedColors   `json:"removed,omitempty"`
	Dropped    []string          `json:"dropped_pieces,omitempty"`
	Mismatches []engine.Mismatch `json:"mismatches,omitempty"`
}

type removedColors struct {
	Piece  string   `json:"piece"`
	Colors []string `json:"colors"`
}

func runUniversal(cmd *cobra.Command, args []string) error {
	cat := loadCatalogArg(args)

	pal, err := engine.DeriveUniversal(cat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "derive palette:", err)
		os.Exit(exitUserError)
	}

	filtered := engine.FilterToUniversal(cat, pal)
	report := universalReport{
		Palette:    pal.Names(),
		Removed:    diffRemoved(cat, filtered),
		Dropped:    diffDropped(cat, filtered),
		Mismatches: engine.Verify(filtered, pal),
	}

	if err := catalog.SaveFile(universalOut, filtered); err != nil {
		fmt.Fprintln(os.Stderr, "write catalog:", err)
		os.Exit(exitSysError)
	}

	if flagJSON {
		printJSON(report)
		return nil
	}

	fmt.Printf("Universal palette (%d colors):\n", len(report.Palette))
	for _, name := range report.Palette {
		fmt.Println("  ", name)
	}
	for _, rm := range report.Removed {
		fmt.Printf("%s: removed %d colors\n", rm.Piece, len(rm.Colors))
	}
	for _, label := range report.Dropped {
		fmt.Printf("%s: dropped (no universal colors)\n", label)
	}
	if len(report.Mismatches) == 0 {
		fmt.Println("Verified: every piece carries exactly the universal palette.")
	} else {
		fmt.Println("Palette mismatches:")
		for _, m := range report.Mismatches {
			fmt.Printf("  %s: missing %v, extra %v\n", m.Family, m.Missing, m.Extra)
		}
	}
	fmt.Println("Wrote", universalOut)
	return nil
}

// diffRemoved lists, per surviving piece, the colors filtering removed.
func diffRemoved(before, after *types.Catalog) []removedColors {
	kept := make(map[string]map[string]struct{})
	for _, p := range after.Pieces() {
		set := make(map[string]struct{}, len(p.Colors))
		for _, v := range p.Colors {
			set[v.ColorName] = struct{}{}
		}
		kept[p.Label] = set
	}

	var removed []removedColors
	for _, p := range before.Pieces() {
		set, ok := kept[p.Label]
		if !ok {
			continue
		}
		var colors []string
		for _, v := range p.Colors {
			if _, ok := set[v.ColorName]; !ok {
				colors = append(colors, v.ColorName)
			}
		}
		if len(colors) > 0 {
			removed = append(removed, removedColors{Piece: p.Label, Colors: colors})
		}
	}
	return removed
}

// diffDropped lists pieces filtering removed entirely.
func diffDropped(before, after *types.Catalog) []string {
	kept := make(map[string]struct{})
	for _, p := range after.Pieces() {
		kept[p.Label] = struct{}{}
	}
	var dropped []string
	for _, p := range before.Pieces() {
		if _, ok := kept[p.Label]; !ok {
			dropped = append(dropped, p.Label)
		}
	}
	return dropped
}
