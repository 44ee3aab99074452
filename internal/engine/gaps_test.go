package engine

import (
	"testing"

	"github.com/brickforge/pab/pkg/types"
)

func TestAnalyzeGapsResidualAfterUnresolvedSynthesis(t *testing.T) {
	// Same shape as the unfillable fixture: Dark Green never makes it onto
	// the 1x5, so the gap analysis must keep reporting it.
	cat := types.NewCatalog([]*types.PieceType{
		piece(types.FamilyBrick, 1, 1, direct("White", "a", "#f4f4f4", 0.06)),
		piece(types.FamilyBrick, 1, 2, direct("White", "b", "#f4f4f4", 0.10), direct("Dark Green", "c", "#00451a", 0.10)),
		piece(types.FamilyBrick, 1, 5, direct("White", "d", "#f4f4f4", 0.20)),
	})
	aug, report := Augment(cat, DetectMissing(cat))
	if len(report.Unresolved) != 1 {
		t.Fatalf("fixture expected one unresolved color, got %v", report.Unresolved)
	}

	gaps := AnalyzeGaps(aug)
	if len(gaps.Residual) != 1 {
		t.Fatalf("Residual = %v, want one residual gap", gaps.Residual)
	}
	r := gaps.Residual[0]
	if r.Piece != "BRICK 1X5" || len(r.Colors) != 1 || r.Colors[0] != "Dark Green" {
		t.Errorf("Residual = %+v, want BRICK 1X5 missing Dark Green", r)
	}
}

func TestAnalyzeGapsAvailabilityBreakdown(t *testing.T) {
	cat := fixtureCatalog()
	aug, _ := Augment(cat, DetectMissing(cat))

	gaps := AnalyzeGaps(aug)

	byPiece := make(map[string]Availability)
	for _, a := range gaps.Availability {
		byPiece[a.Piece] = a
	}
	b24 := byPiece["BRICK 2X4"]
	if b24.Direct != 1 || b24.Substituted != 2 {
		t.Errorf("BRICK 2X4 availability = %+v, want 1 direct, 2 substituted", b24)
	}
	if b24.Area != 8 {
		t.Errorf("BRICK 2X4 area = %d, want 8", b24.Area)
	}
}

func TestAnalyzeGapsFamilyExclusives(t *testing.T) {
	cat := fixtureCatalog()
	aug, _ := Augment(cat, DetectMissing(cat))

	gaps := AnalyzeGaps(aug)

	exclusives := make(map[string][]string)
	for _, f := range gaps.Families {
		exclusives[f.Family] = f.Exclusive
	}
	// Bright Red and Dark Green exist (directly or substituted) only on
	// bricks; plates have White alone.
	brick := exclusives[types.FamilyBrick]
	if len(brick) != 2 || brick[0] != "Bright Red" || brick[1] != "Dark Green" {
		t.Errorf("BRICK exclusives = %v, want [Bright Red Dark Green]", brick)
	}
	if len(exclusives[types.FamilyPlate]) != 0 {
		t.Errorf("PLATE exclusives = %v, want none", exclusives[types.FamilyPlate])
	}
	if gaps.UniqueColors != 3 {
		t.Errorf("UniqueColors = %d, want 3", gaps.UniqueColors)
	}
}
