package engine

import (
	"fmt"
	"sort"

	"github.com/brickforge/pab/pkg/types"
)

// Palette is a set of color names.
type Palette map[string]struct{}

// Has reports whether the palette contains the color.
func (pal Palette) Has(name string) bool {
	_, ok := pal[name]
	return ok
}

// Names returns the colors in lexicographic order.
func (pal Palette) Names() []string {
	names := make([]string, 0, len(pal))
	for name := range pal {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReferenceUnit returns the family's reference piece: its unique
// minimal-area piece type. Two pieces tied for the minimal area leave the
// family without a reference, which wraps types.ErrNoReferenceUnit.
func ReferenceUnit(cat *types.Catalog, family string) (*types.PieceType, error) {
	pieces := cat.Family(family)
	if len(pieces) == 0 {
		return nil, fmt.Errorf("family %s is empty: %w", family, types.ErrNoReferenceUnit)
	}
	if len(pieces) > 1 && pieces[1].Area() == pieces[0].Area() {
		return nil, fmt.Errorf("family %s: minimal area %d is ambiguous: %w",
			family, pieces[0].Area(), types.ErrNoReferenceUnit)
	}
	return pieces[0], nil
}

// DeriveUniversal intersects the direct color sets of every family's
// reference unit. The result is the palette guaranteed to exist, without
// substitution, on the smallest piece of each family. Substitute variants
// on a reference unit do not count: the universal palette is a purchasable
// guarantee, not a synthesized one.
func DeriveUniversal(cat *types.Catalog) (Palette, error) {
	var pal Palette
	for _, family := range cat.FamilyNames() {
		ref, err := ReferenceUnit(cat, family)
		if err != nil {
			return nil, err
		}

		direct := make(Palette)
		for _, name := range ref.DirectColorNames() {
			direct[name] = struct{}{}
		}

		if pal == nil {
			pal = direct
			continue
		}
		for name := range pal {
			if !direct.Has(name) {
				delete(pal, name)
			}
		}
	}
	if pal == nil {
		pal = make(Palette)
	}
	return pal, nil
}

// FilterToUniversal returns a new catalog keeping only color variants whose
// name is in the palette. Pieces left with zero colors are dropped
// entirely. The input catalog is not modified.
func FilterToUniversal(cat *types.Catalog, pal Palette) *types.Catalog {
	var pieces []*types.PieceType
	for _, p := range cat.Pieces() {
		cp := p.Clone()
		kept := cp.Colors[:0]
		for _, v := range cp.Colors {
			if pal.Has(v.ColorName) {
				kept = append(kept, v)
			}
		}
		cp.Colors = kept
		if len(cp.Colors) > 0 {
			pieces = append(pieces, cp)
		}
	}
	return types.NewCatalog(pieces)
}
