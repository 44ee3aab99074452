// Scrape command acquires the raw catalog from the Pick-a-Brick shop.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brickforge/pab/internal/catalog"
	"github.com/brickforge/pab/internal/scrape"
)

var (
	scrapeOut      string
	scrapeOnly     []string
	scrapeHeadless bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape the Pick-a-Brick shop into a catalog document",
	Long: `Scrape loads each known brick and plate page, enumerates its color
swatches, reads element IDs and prices, and writes the raw catalog
document. Set ` + scrape.EnvBrowserBin + ` to point at a specific browser binary.

Example:
  pab scrape -o catalog.json
  pab scrape --only "PLATE 2X2" -o plate_2x2.json`,
	Args: cobra.NoArgs,
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeOut, "out", "o", "catalog.json", "output catalog file")
	scrapeCmd.Flags().StringSliceVar(&scrapeOnly, "only", nil, "scrape only these labels (e.g. \"BRICK 2X4\")")
	scrapeCmd.Flags().BoolVar(&scrapeHeadless, "headless", true, "run the browser headless")
}

func runScrape(cmd *cobra.Command, args []string) error {
	if _, err := scrape.EnsureBrowser(); err != nil {
		fmt.Fprintln(os.Stderr, "scrape:", err)
		os.Exit(exitSysError)
	}

	seeds := scrape.FilterSeeds(scrape.DefaultSeeds, scrapeOnly)
	if len(seeds) == 0 {
		fmt.Fprintf(os.Stderr, "scrape: no seeds match %v\n", scrapeOnly)
		os.Exit(exitUserError)
	}

	cfg := scrape.DefaultConfig()
	cfg.Headless = scrapeHeadless

	scraper, err := scrape.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "scrape:", err)
		os.Exit(exitSysError)
	}
	defer scraper.Close()

	progress := scrape.Progress{
		Seed: func(seed scrape.Seed) {
			fmt.Fprintln(os.Stderr, "scraping", seed.Label)
		},
		Color: func(seed scrape.Seed, colorName string, ok bool) {
			if !ok {
				fmt.Fprintf(os.Stderr, "  %s: skipped %s\n", seed.Label, colorName)
			}
		},
	}

	records, err := scraper.Run(seeds, progress)
	if err != nil {
		fmt.Fprintln(os.Stderr, "scrape:", err)
		os.Exit(exitSysError)
	}

	if err := catalog.WriteRecords(scrapeOut, records); err != nil {
		fmt.Fprintln(os.Stderr, "write catalog:", err)
		os.Exit(exitSysError)
	}

	total := 0
	for _, r := range records {
		total += r.NumColors
	}
	fmt.Printf("Scraped %d pieces, %d color variants\n", len(records), total)
	fmt.Println("Wrote", scrapeOut)
	return nil
}
