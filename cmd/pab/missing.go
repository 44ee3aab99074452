// Missing command reports which colors each piece lacks relative to the
// strictly smaller pieces of its family.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/brickforge/pab/internal/engine"
	"github.com/brickforge/pab/pkg/types"
)

var missingCmd = &cobra.Command{
	Use:   "missing <catalog.json>",
	Short: "Report missing colors per piece",
	Long: `Missing analyzes a catalog document and reports, per piece, the colors
available on strictly smaller pieces of the same family that the piece
itself does not carry, together with the smaller pieces carrying each one.

Example:
  pab missing catalog.json
  pab missing --json catalog.json`,
	Args: cobra.ExactArgs(1),
	RunE: runMissing,
}

// missingColorOut is one missing color with the labels of the smaller
// pieces that carry it, ascending by area.
type missingColorOut struct {
	Color     string   `json:"color"`
	CarriedBy []string `json:"carried_by"`
}

type missingPieceOut struct {
	Piece   string            `json:"piece"`
	Missing []missingColorOut `json:"missing"`
}

type missingReport struct {
	Pieces            []missingPieceOut `json:"pieces"`
	PiecesAnalyzed    int               `json:"pieces_analyzed"`
	PiecesWithMissing int               `json:"pieces_with_missing_colors"`
	MissingInstances  int               `json:"missing_color_instances"`
	UniqueColors      []string          `json:"unique_colors"`
}

func runMissing(cmd *cobra.Command, args []string) error {
	cat := loadCatalogArg(args)
	idx := engine.DetectMissing(cat)

	report := missingReport{
		PiecesAnalyzed:    cat.Len(),
		PiecesWithMissing: idx.PiecesWithMissing(),
		MissingInstances:  idx.Instances(),
		UniqueColors:      uniqueDirectColors(cat),
	}
	for _, pm := range idx {
		if len(pm.Missing) == 0 {
			continue
		}
		out := missingPieceOut{Piece: pm.Piece.Label}
		for _, mc := range pm.Missing {
			carriers := make([]string, 0, len(mc.Pool))
			for _, c := range mc.Pool {
				carriers = append(carriers, c.Label)
			}
			out.Missing = append(out.Missing, missingColorOut{
				Color:     mc.Name,
				CarriedBy: carriers,
			})
		}
		report.Pieces = append(report.Pieces, out)
	}

	if flagJSON {
		printJSON(report)
		return nil
	}

	for _, p := range report.Pieces {
		fmt.Printf("%s is missing %d colors:\n", p.Piece, len(p.Missing))
		for _, mc := range p.Missing {
			fmt.Printf("  %s (on", mc.Color)
			for _, label := range mc.CarriedBy {
				fmt.Printf(" %s", label)
			}
			fmt.Println(")")
		}
	}
	fmt.Println()
	fmt.Println("Pieces analyzed:          ", report.PiecesAnalyzed)
	fmt.Println("Pieces with missing colors:", report.PiecesWithMissing)
	fmt.Println("Missing color instances:  ", report.MissingInstances)
	fmt.Println("Unique colors:            ", len(report.UniqueColors))
	for _, name := range report.UniqueColors {
		fmt.Println("  ", name)
	}
	return nil
}

// uniqueDirectColors lists every direct color in the catalog, sorted.
func uniqueDirectColors(cat *types.Catalog) []string {
	seen := make(map[string]struct{})
	for _, p := range cat.Pieces() {
		for _, name := range p.DirectColorNames() {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
