package engine

import (
	"errors"

	"github.com/brickforge/pab/pkg/types"
)

// Augment applies the synthesizer to every missing color in the index and
// returns a new catalog where each resolvable (piece, color) pair gained a
// substitute-backed variant. The input catalog is not modified. Failures
// are recorded in the report and the corresponding color stays missing.
func Augment(cat *types.Catalog, idx MissingIndex) (*types.Catalog, *Report) {
	clones := make(map[*types.PieceType]*types.PieceType, cat.Len())
	pieces := make([]*types.PieceType, 0, cat.Len())
	for _, p := range cat.Pieces() {
		cp := p.Clone()
		clones[p] = cp
		pieces = append(pieces, cp)
	}
	out := types.NewCatalog(pieces)

	report := &Report{
		PiecesAnalyzed:    cat.Len(),
		PiecesWithMissing: idx.PiecesWithMissing(),
		MissingInstances:  idx.Instances(),
	}

	for _, pm := range idx {
		target := clones[pm.Piece]
		if target == nil {
			// Index built from a different catalog; nothing to write to.
			continue
		}
		for _, mc := range pm.Missing {
			comp, err := Synthesize(pm.Piece, mc.Name, mc.Pool)
			if err != nil {
				report.Unresolved = append(report.Unresolved, Unresolved{
					Piece:  pm.Piece.Label,
					Color:  mc.Name,
					Reason: unresolvedReason(err),
				})
				continue
			}
			price := comp.Price
			target.Colors = append(target.Colors, types.ColorVariant{
				ColorName:    mc.Name,
				ElementID:    nil,
				RGB:          comp.RGB,
				Price:        &price,
				IsSubstitute: true,
				Substitutes:  comp.Entries,
			})
			report.SubstitutesAdded++
			report.PriceGaps += comp.PriceGaps
		}
	}
	return out, report
}

func unresolvedReason(err error) string {
	switch {
	case errors.Is(err, types.ErrNoCandidate):
		return ReasonNoCandidate
	case errors.Is(err, types.ErrUnfillable):
		return ReasonUnfillable
	default:
		return err.Error()
	}
}
