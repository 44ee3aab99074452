// Shared helpers for pab CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/brickforge/pab/internal/catalog"
	"github.com/brickforge/pab/internal/store"
	"github.com/brickforge/pab/pkg/types"
)

// attachStore resolves the data directory, creates a catalog store, and
// attaches it. The caller must defer st.Detach().
func attachStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	st := store.New()
	if err := st.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	return st, nil
}

// loadCatalogArg reads and builds a catalog from the file path in args[0].
// Exits with a user error on a missing or malformed document.
func loadCatalogArg(args []string) *types.Catalog {
	cat, err := catalog.LoadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "load catalog:", err)
		os.Exit(exitUserError)
	}
	return cat
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}
