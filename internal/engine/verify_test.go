package engine

import (
	"reflect"
	"testing"

	"github.com/brickforge/pab/pkg/types"
)

func TestVerifyConsistentCatalog(t *testing.T) {
	cat := fixtureCatalog()
	aug, _ := Augment(cat, DetectMissing(cat))
	pal, err := DeriveUniversal(aug)
	if err != nil {
		t.Fatalf("DeriveUniversal failed: %v", err)
	}
	filtered := FilterToUniversal(aug, pal)

	if mismatches := Verify(filtered, pal); len(mismatches) != 0 {
		t.Errorf("Verify = %v, want no mismatches", mismatches)
	}
}

func TestVerifyReportsSymmetricDifference(t *testing.T) {
	cat := types.NewCatalog([]*types.PieceType{
		piece(types.FamilyBrick, 1, 1,
			direct("White", "a", "#f4f4f4", 0.06),
			direct("Aqua", "b", "#bce4e0", 0.06), // beyond the palette
		),
		piece(types.FamilyPlate, 1, 1,
			direct("White", "c", "#f4f4f4", 0.04),
			// lacks Bright Red from the palette
		),
	})
	pal := Palette{"White": {}, "Bright Red": {}}

	mismatches := Verify(cat, pal)
	if len(mismatches) != 2 {
		t.Fatalf("Verify = %v, want mismatches for both families", mismatches)
	}

	want := []Mismatch{
		{Family: types.FamilyBrick, Missing: []string{"Bright Red"}, Extra: []string{"Aqua"}},
		{Family: types.FamilyPlate, Missing: []string{"Bright Red"}},
	}
	if !reflect.DeepEqual(mismatches, want) {
		t.Errorf("Verify = %+v, want %+v", mismatches, want)
	}
}

func TestVerifyCountsSubstituteVariants(t *testing.T) {
	// The 1x2's Bright Red is substitute-backed; verification counts it,
	// since the universal catalog's guarantee includes synthesized colors.
	cat := types.NewCatalog([]*types.PieceType{
		piece(types.FamilyBrick, 1, 1, direct("Bright Red", "a", "#b40000", 0.06)),
		piece(types.FamilyBrick, 1, 2,
			direct("White", "b", "#f4f4f4", 0.10),
			types.ColorVariant{
				ColorName:    "Bright Red",
				RGB:          strPtr("#b40000"),
				Price:        pricePtr(0.12),
				IsSubstitute: true,
				Substitutes:  []types.SubstituteEntry{{BrickType: "BRICK 1X1", ElementID: "a", Quantity: 2}},
			},
		),
	})
	pal := Palette{"Bright Red": {}, "White": {}}

	mismatches := Verify(cat, pal)
	for _, m := range mismatches {
		for _, name := range m.Missing {
			if name == "Bright Red" {
				t.Error("substitute-backed Bright Red reported missing")
			}
		}
	}
}
