// Import command loads a catalog document into the store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brickforge/pab/internal/catalog"
)

var importCmd = &cobra.Command{
	Use:   "import <catalog.json>",
	Short: "Import a catalog document into the store",
	Long: `Import reads a catalog document and persists it into the data
directory's store. The document becomes the store's catalog.json and the
SQLite database is rebuilt from it.

Example:
  pab import catalog_with_substitutes.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	records, err := catalog.ReadRecords(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "read catalog:", err)
		os.Exit(exitUserError)
	}

	st, err := attachStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "import:", err)
		os.Exit(exitSysError)
	}
	defer st.Detach()

	if err := st.SaveCatalog(records); err != nil {
		fmt.Fprintln(os.Stderr, "save catalog:", err)
		os.Exit(exitSysError)
	}

	fmt.Printf("Imported %d pieces\n", len(records))
	return nil
}
