package engine

import (
	"sort"

	"github.com/brickforge/pab/pkg/types"
)

// ResidualGap is a piece still missing colors after augmentation, counting
// substitute variants on the smaller pieces as available. Residual gaps
// trace back to unresolved synthesis failures.
type ResidualGap struct {
	Piece  string   `json:"piece"`
	Colors []string `json:"colors"`
}

// FamilyColors describes one family's total color coverage. Exclusive lists
// colors the family has that at least one other family lacks.
type FamilyColors struct {
	Family    string   `json:"family"`
	Total     int      `json:"total"`
	Exclusive []string `json:"exclusive,omitempty"`
}

// Availability is the per-piece direct/substitute breakdown.
type Availability struct {
	Piece       string `json:"piece"`
	Area        int    `json:"area"`
	Direct      int    `json:"direct"`
	Substituted int    `json:"substituted"`
}

// GapAnalysis is the post-augmentation picture: what substitution still
// could not cover, how the families' palettes differ, and how much of each
// piece's range is synthesized.
type GapAnalysis struct {
	Residual     []ResidualGap  `json:"residual,omitempty"`
	Families     []FamilyColors `json:"families"`
	Availability []Availability `json:"availability"`
	UniqueColors int            `json:"unique_colors"`
}

// AnalyzeGaps inspects an augmented catalog. Unlike DetectMissing it treats
// substitute variants as available on both sides of the comparison, so a
// fully resolved catalog reports no residual gaps.
func AnalyzeGaps(cat *types.Catalog) *GapAnalysis {
	analysis := &GapAnalysis{}

	all := make(Palette)
	familySets := make(map[string]Palette)
	for _, family := range cat.FamilyNames() {
		set := make(Palette)
		for _, p := range cat.Family(family) {
			for _, name := range p.ColorNames() {
				set[name] = struct{}{}
				all[name] = struct{}{}
			}
		}
		familySets[family] = set
	}
	analysis.UniqueColors = len(all)

	for _, family := range cat.FamilyNames() {
		set := familySets[family]
		var exclusive []string
		for name := range set {
			for other, otherSet := range familySets {
				if other != family && !otherSet.Has(name) {
					exclusive = append(exclusive, name)
					break
				}
			}
		}
		sort.Strings(exclusive)
		analysis.Families = append(analysis.Families, FamilyColors{
			Family:    family,
			Total:     len(set),
			Exclusive: exclusive,
		})
	}

	for _, p := range cat.Pieces() {
		direct, substituted := 0, 0
		own := make(Palette)
		for _, v := range p.Colors {
			own[v.ColorName] = struct{}{}
			if v.IsSubstitute {
				substituted++
			} else {
				direct++
			}
		}
		analysis.Availability = append(analysis.Availability, Availability{
			Piece:       p.Label,
			Area:        p.Area(),
			Direct:      direct,
			Substituted: substituted,
		})

		var residual []string
		for _, q := range cat.Smaller(p) {
			for _, name := range q.ColorNames() {
				if !own.Has(name) {
					residual = append(residual, name)
					own[name] = struct{}{} // dedupe across smaller pieces
				}
			}
		}
		if len(residual) > 0 {
			sort.Strings(residual)
			analysis.Residual = append(analysis.Residual, ResidualGap{Piece: p.Label, Colors: residual})
		}
	}

	return analysis
}
