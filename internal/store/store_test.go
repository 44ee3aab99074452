package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brickforge/pab/internal/catalog"
	"github.com/brickforge/pab/pkg/types"
)

func strPtr(s string) *string     { return &s }
func pricePtr(f float64) *float64 { return &f }

func testRecords() []catalog.PieceRecord {
	return []catalog.PieceRecord{
		{
			ElementID: "3005",
			BrickType: "BRICK 1X1",
			NumColors: 1,
			Colors: []catalog.ColorRecord{
				{ColorName: "Bright Red", ElementID: strPtr("300521"), RGB: strPtr("#b40000"), Price: pricePtr(0.06)},
			},
		},
		{
			ElementID: "3001",
			BrickType: "BRICK 2X4",
			NumColors: 2,
			Colors: []catalog.ColorRecord{
				{ColorName: "White", ElementID: strPtr("300101"), RGB: strPtr("#f4f4f4"), Price: pricePtr(0.27)},
				{
					ColorName:    "Bright Red",
					RGB:          strPtr("#b40000"),
					Price:        pricePtr(0.48),
					IsSubstitute: true,
					Substitutes: []catalog.SubstituteRecord{
						{BrickType: "BRICK 1X1", ElementID: "300521", Quantity: 8},
					},
				},
			},
		},
	}
}

func attachedStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}
	if err := s.Attach(cfg); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	return s
}

func TestAttachCreatesCatalogFile(t *testing.T) {
	dataDir := t.TempDir()
	s := New()
	if err := s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer s.Detach()

	if _, err := os.Stat(filepath.Join(dataDir, CatalogFile)); err != nil {
		t.Errorf("catalog.json not created: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dataDir, "catalog.db")); err != nil {
		t.Errorf("catalog.db not created: %v", err)
	}
}

func TestAttachValidatesConfig(t *testing.T) {
	s := New()
	if err := s.Attach(types.Config{Backend: "bogus"}); err != types.ErrBackendUnknown {
		t.Errorf("Attach error = %v, want ErrBackendUnknown", err)
	}
}

func TestAttachTwiceFails(t *testing.T) {
	s := attachedStore(t)
	defer s.Detach()

	err := s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	if err != ErrAlreadyAttached {
		t.Errorf("second Attach = %v, want ErrAlreadyAttached", err)
	}
}

func TestDetachedOperationsFail(t *testing.T) {
	s := New()
	if _, err := s.LoadCatalog(); err != ErrDetached {
		t.Errorf("LoadCatalog on detached store = %v, want ErrDetached", err)
	}
	if err := s.SaveCatalog(nil); err != ErrDetached {
		t.Errorf("SaveCatalog on detached store = %v, want ErrDetached", err)
	}
	if err := s.Detach(); err != ErrDetached {
		t.Errorf("Detach on detached store = %v, want ErrDetached", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := attachedStore(t)
	defer s.Detach()

	if err := s.SaveCatalog(testRecords()); err != nil {
		t.Fatalf("SaveCatalog failed: %v", err)
	}

	got, err := s.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d records, want 2", len(got))
	}
	// Pieces come back ordered by family and ascending area.
	if got[0].BrickType != "BRICK 1X1" || got[1].BrickType != "BRICK 2X4" {
		t.Errorf("order = [%s %s], want ascending by area", got[0].BrickType, got[1].BrickType)
	}

	sub := got[1].Colors[1]
	if !sub.IsSubstitute {
		t.Fatal("substitute flag lost in round trip")
	}
	if sub.ElementID != nil {
		t.Error("substitute element_id should round-trip as null")
	}
	if sub.Price == nil || *sub.Price != 0.48 {
		t.Errorf("substitute price = %v, want 0.48", sub.Price)
	}
	if len(sub.Substitutes) != 1 || sub.Substitutes[0].Quantity != 8 {
		t.Errorf("substitute lines = %v, want one line of quantity 8", sub.Substitutes)
	}
}

func TestSaveWritesDocumentReloadedOnAttach(t *testing.T) {
	dataDir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

	s := New()
	if err := s.Attach(cfg); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if err := s.SaveCatalog(testRecords()); err != nil {
		t.Fatalf("SaveCatalog failed: %v", err)
	}
	if err := s.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// A fresh store rebuilt from the same data dir sees the catalog.
	s2 := New()
	if err := s2.Attach(cfg); err != nil {
		t.Fatalf("re-Attach failed: %v", err)
	}
	defer s2.Detach()

	got, err := s2.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("reloaded %d records, want 2", len(got))
	}
}

func TestSaveRejectsMalformedLabel(t *testing.T) {
	s := attachedStore(t)
	defer s.Detach()

	records := testRecords()
	records[0].BrickType = "NONSENSE"
	if err := s.SaveCatalog(records); err == nil {
		t.Error("SaveCatalog accepted a malformed label")
	}

	// The failed save must not have half-applied.
	got, err := s.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("store has %d records after failed save, want 0", len(got))
	}
}
