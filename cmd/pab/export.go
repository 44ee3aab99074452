// Export command writes the stored catalog back out as a document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brickforge/pab/internal/catalog"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stored catalog as a document",
	Long: `Export reads the catalog from the data directory's store and writes it
as a catalog document, or to stdout with --json.

Example:
  pab export -o catalog.json
  pab export --json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "catalog.json", "output catalog file")
}

func runExport(cmd *cobra.Command, args []string) error {
	st, err := attachStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(exitSysError)
	}
	defer st.Detach()

	records, err := st.LoadCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load catalog:", err)
		os.Exit(exitSysError)
	}

	if flagJSON {
		printJSON(records)
		return nil
	}

	if err := catalog.WriteRecords(exportOut, records); err != nil {
		fmt.Fprintln(os.Stderr, "write catalog:", err)
		os.Exit(exitSysError)
	}

	fmt.Printf("Exported %d pieces to %s\n", len(records), exportOut)
	return nil
}
