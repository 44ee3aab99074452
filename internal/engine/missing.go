package engine

import (
	"sort"

	"github.com/brickforge/pab/pkg/types"
)

// MissingColor is one color a piece lacks together with the candidate pool:
// the strictly-smaller same-family pieces that carry the color directly,
// ascending by area.
type MissingColor struct {
	Name string
	Pool []*types.PieceType
}

// PieceMissing pairs a piece with its missing colors, sorted
// lexicographically by color name for reproducible output.
type PieceMissing struct {
	Piece   *types.PieceType
	Missing []MissingColor
}

// MissingIndex lists every piece of the catalog in family order, each with
// its (possibly empty) missing-color list.
type MissingIndex []PieceMissing

// PiecesWithMissing counts index entries with at least one missing color.
func (idx MissingIndex) PiecesWithMissing() int {
	n := 0
	for _, pm := range idx {
		if len(pm.Missing) > 0 {
			n++
		}
	}
	return n
}

// Instances counts the total number of (piece, missing color) pairs.
func (idx MissingIndex) Instances() int {
	n := 0
	for _, pm := range idx {
		n += len(pm.Missing)
	}
	return n
}

// DetectMissing computes, for each piece, the colors sold on strictly
// smaller same-family pieces but not on the piece itself. Candidate pools
// only count direct variants: a substitute on a smaller piece is not a
// purchasable color. The piece's own set counts every variant, so running
// augmentation on its own output detects nothing new. A family's minimal
// piece has no smaller pieces and therefore no missing colors by
// definition.
func DetectMissing(cat *types.Catalog) MissingIndex {
	var idx MissingIndex
	for _, p := range cat.Pieces() {
		idx = append(idx, PieceMissing{
			Piece:   p,
			Missing: missingFor(cat, p),
		})
	}
	return idx
}

func missingFor(cat *types.Catalog, p *types.PieceType) []MissingColor {
	smaller := cat.Smaller(p)
	if len(smaller) == 0 {
		return nil
	}

	own := make(map[string]bool)
	for _, name := range p.ColorNames() {
		own[name] = true
	}

	// carriers keeps, per missing color, the smaller pieces that sell it
	// directly. The smaller slice is ascending by area, so each pool is too.
	carriers := make(map[string][]*types.PieceType)
	for _, q := range smaller {
		for _, name := range q.DirectColorNames() {
			if own[name] {
				continue
			}
			carriers[name] = append(carriers[name], q)
		}
	}
	if len(carriers) == 0 {
		return nil
	}

	names := make([]string, 0, len(carriers))
	for name := range carriers {
		names = append(names, name)
	}
	sort.Strings(names)

	missing := make([]MissingColor, 0, len(names))
	for _, name := range names {
		missing = append(missing, MissingColor{Name: name, Pool: carriers[name]})
	}
	return missing
}
