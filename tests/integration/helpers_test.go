// Package integration provides shared test helpers for integration tests.
package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brickforge/pab/internal/catalog"
	"github.com/brickforge/pab/internal/store"
	"github.com/brickforge/pab/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func direct(name, elementID, rgb string, price float64) catalog.ColorRecord {
	return catalog.ColorRecord{
		ColorName: name,
		ElementID: ptr(elementID),
		RGB:       ptr(rgb),
		Price:     ptr(price),
	}
}

// rawRecords is a small but complete catalog document: two families, unit
// pieces carrying more colors than the larger pieces, one color exclusive
// to a non-unit piece.
func rawRecords() []catalog.PieceRecord {
	return []catalog.PieceRecord{
		{
			ElementID: "3005",
			BrickType: "BRICK 1X1",
			NumColors: 4,
			Colors: []catalog.ColorRecord{
				direct("White", "300501", "#f4f4f4", 0.05),
				direct("Bright Blue", "300523", "#1e5aa8", 0.06),
				direct("Bright Red", "300521", "#b40000", 0.07),
				direct("Dark Green", "300528", "#00451a", 0.08),
			},
		},
		{
			ElementID: "3004",
			BrickType: "BRICK 1X2",
			NumColors: 2,
			Colors: []catalog.ColorRecord{
				direct("White", "300401", "#f4f4f4", 0.10),
				direct("Bright Blue", "300423", "#1e5aa8", 0.11),
			},
		},
		{
			ElementID: "3001",
			BrickType: "BRICK 2X4",
			NumColors: 1,
			Colors: []catalog.ColorRecord{
				direct("White", "300101", "#f4f4f4", 0.27),
			},
		},
		{
			ElementID: "3024",
			BrickType: "PLATE 1X1",
			NumColors: 2,
			Colors: []catalog.ColorRecord{
				direct("White", "302401", "#f4f4f4", 0.04),
				direct("Bright Blue", "302423", "#1e5aa8", 0.04),
			},
		},
		{
			ElementID: "3022",
			BrickType: "PLATE 2X2",
			NumColors: 3,
			Colors: []catalog.ColorRecord{
				direct("White", "302201", "#f4f4f4", 0.12),
				direct("Bright Blue", "302223", "#1e5aa8", 0.13),
				direct("Bright Yellow", "302224", "#fac80a", 0.14),
			},
		},
	}
}

// writeRawCatalog writes the fixture document to a temp file and returns
// its path.
func writeRawCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, catalog.WriteRecords(path, rawRecords()))
	return path
}

// setupStore creates a store attached to an isolated temp directory.
func setupStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	dir := t.TempDir()
	st := store.New()
	require.NoError(t, st.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	t.Cleanup(func() { st.Detach() })
	return st, dir
}
