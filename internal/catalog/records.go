// Wire record structures mirroring the catalog document schema: an array of
// piece records, each with its color variants and optional substitute lines.
package catalog

import (
	"fmt"

	"github.com/brickforge/pab/pkg/types"
)

// PieceRecord is one piece type as it appears in a catalog document.
type PieceRecord struct {
	ElementID string        `json:"element_id"`
	BrickType string        `json:"brick_type"`
	NumColors int           `json:"num_colors"`
	Colors    []ColorRecord `json:"colors"`
}

// ColorRecord is one color variant. ElementID, RGB, and Price serialize as
// null when absent. IsSubstitute defaults to false and is omitted on direct
// entries; Substitutes is present only on substitute entries.
type ColorRecord struct {
	ColorName    string             `json:"color_name"`
	ElementID    *string            `json:"element_id"`
	RGB          *string            `json:"rgb"`
	Price        *float64           `json:"price"`
	IsSubstitute bool               `json:"is_substitute,omitempty"`
	Substitutes  []SubstituteRecord `json:"substitutes,omitempty"`
}

// SubstituteRecord is one line of a substitute composition.
type SubstituteRecord struct {
	BrickType string `json:"brick_type"`
	ElementID string `json:"element_id"`
	Quantity  int    `json:"quantity"`
}

// Build parses the raw records into a catalog: labels are split into family
// and dimensions, pieces are grouped by family and sorted ascending by
// area. A label that fails to parse aborts the build; the document is
// structurally invalid.
func Build(records []PieceRecord) (*types.Catalog, error) {
	pieces := make([]*types.PieceType, 0, len(records))
	for _, rec := range records {
		family, width, length, err := ParseLabel(rec.BrickType)
		if err != nil {
			return nil, fmt.Errorf("piece %s: %w", rec.ElementID, err)
		}

		p := &types.PieceType{
			BaseID: rec.ElementID,
			Label:  rec.BrickType,
			Family: family,
			Width:  width,
			Length: length,
			Colors: make([]types.ColorVariant, 0, len(rec.Colors)),
		}
		for _, c := range rec.Colors {
			p.Colors = append(p.Colors, types.ColorVariant{
				ColorName:    c.ColorName,
				ElementID:    c.ElementID,
				RGB:          c.RGB,
				Price:        c.Price,
				IsSubstitute: c.IsSubstitute,
				Substitutes:  toEntries(c.Substitutes),
			})
		}
		pieces = append(pieces, p)
	}
	return types.NewCatalog(pieces), nil
}

// Render converts a catalog back to wire records, families in lexicographic
// order and pieces ascending by area, so output documents are reproducible
// run to run. NumColors is recomputed from the variant count.
func Render(cat *types.Catalog) []PieceRecord {
	pieces := cat.Pieces()
	records := make([]PieceRecord, 0, len(pieces))
	for _, p := range pieces {
		rec := PieceRecord{
			ElementID: p.BaseID,
			BrickType: p.Label,
			NumColors: len(p.Colors),
			Colors:    make([]ColorRecord, 0, len(p.Colors)),
		}
		for _, v := range p.Colors {
			rec.Colors = append(rec.Colors, ColorRecord{
				ColorName:    v.ColorName,
				ElementID:    v.ElementID,
				RGB:          v.RGB,
				Price:        v.Price,
				IsSubstitute: v.IsSubstitute,
				Substitutes:  toRecords(v.Substitutes),
			})
		}
		records = append(records, rec)
	}
	return records
}

func toEntries(records []SubstituteRecord) []types.SubstituteEntry {
	if records == nil {
		return nil
	}
	entries := make([]types.SubstituteEntry, len(records))
	for i, r := range records {
		entries[i] = types.SubstituteEntry{
			BrickType: r.BrickType,
			ElementID: r.ElementID,
			Quantity:  r.Quantity,
		}
	}
	return entries
}

func toRecords(entries []types.SubstituteEntry) []SubstituteRecord {
	if entries == nil {
		return nil
	}
	records := make([]SubstituteRecord, len(entries))
	for i, e := range entries {
		records[i] = SubstituteRecord{
			BrickType: e.BrickType,
			ElementID: e.ElementID,
			Quantity:  e.Quantity,
		}
	}
	return records
}
