package engine

import (
	"sort"

	"github.com/brickforge/pab/pkg/types"
)

// Mismatch reports a family whose color set differs from the universal
// palette after filtering: the symmetric difference, split into the colors
// the family lacks and the colors it has beyond the palette. A mismatch is
// a diagnostic pointing at an upstream synthesis gap, not a crash.
type Mismatch struct {
	Family  string   `json:"family"`
	Missing []string `json:"missing,omitempty"` // in palette, absent from family
	Extra   []string `json:"extra,omitempty"`   // in family, absent from palette
}

// Verify recomputes each family's color set from the filtered catalog,
// counting both direct and substitute variants, and compares it to the
// palette. It returns one Mismatch per family whose set is not exactly the
// palette; an empty result means the catalog is palette-consistent.
func Verify(cat *types.Catalog, pal Palette) []Mismatch {
	var mismatches []Mismatch
	for _, family := range cat.FamilyNames() {
		present := make(Palette)
		for _, p := range cat.Family(family) {
			for _, name := range p.ColorNames() {
				present[name] = struct{}{}
			}
		}

		var missing, extra []string
		for name := range pal {
			if !present.Has(name) {
				missing = append(missing, name)
			}
		}
		for name := range present {
			if !pal.Has(name) {
				extra = append(extra, name)
			}
		}
		if len(missing) == 0 && len(extra) == 0 {
			continue
		}
		sort.Strings(missing)
		sort.Strings(extra)
		mismatches = append(mismatches, Mismatch{Family: family, Missing: missing, Extra: extra})
	}
	return mismatches
}
