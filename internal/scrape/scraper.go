// Package scrape acquires the raw catalog from the Pick-a-Brick shop with
// page automation. It is the catalog-acquisition collaborator: it produces
// the same piece records the engine consumes from a file and knows nothing
// about substitution or palettes.
package scrape

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/brickforge/pab/internal/catalog"
)

// EnvBrowserBin overrides browser autodetection with an explicit binary.
const EnvBrowserBin = "PAB_BROWSER_BIN"

// DefaultBaseURL is the shop search endpoint; the base element ID is
// appended as the query.
const DefaultBaseURL = "https://www.lego.com/en-us/pick-and-build/pick-a-brick?query="

// Config controls a scrape run.
type Config struct {
	BaseURL     string
	Headless    bool
	NavTimeout  time.Duration // per-page navigation budget
	SettleDelay time.Duration // wait after clicks for the modal to render
}

// DefaultConfig returns the settings a plain `pab scrape` uses.
func DefaultConfig() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		Headless:    true,
		NavTimeout:  45 * time.Second,
		SettleDelay: 3 * time.Second,
	}
}

// EnsureBrowser verifies a Chromium-family browser is reachable before a
// run starts, either via PAB_BROWSER_BIN or system autodetection. Failing
// early beats failing after the first navigation.
func EnsureBrowser() (string, error) {
	if bin := os.Getenv(EnvBrowserBin); bin != "" {
		if _, err := os.Stat(bin); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvBrowserBin, bin, err)
		}
		return bin, nil
	}
	bin, has := launcher.LookPath()
	if !has {
		return "", fmt.Errorf("no browser found; install one or set %s", EnvBrowserBin)
	}
	return bin, nil
}

// Scraper drives one browser across the seeds of a run.
type Scraper struct {
	cfg      Config
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// New launches a browser. Callers must Close the scraper.
func New(cfg Config) (*Scraper, error) {
	bin, err := EnsureBrowser()
	if err != nil {
		return nil, err
	}

	l := launcher.New().Bin(bin).Headless(cfg.Headless)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	return &Scraper{cfg: cfg, browser: browser, launcher: l}, nil
}

// Close shuts the browser down.
func (s *Scraper) Close() error {
	err := s.browser.Close()
	s.launcher.Cleanup()
	return err
}

// Progress receives per-seed updates during a run. Any callback may be nil.
type Progress struct {
	Seed  func(seed Seed)
	Color func(seed Seed, colorName string, ok bool)
}

// Run scrapes every seed and returns one piece record per seed. A seed
// whose page yields nothing produces a record with zero colors rather than
// failing the run; the shop hides items that are out of rotation.
func (s *Scraper) Run(seeds []Seed, progress Progress) ([]catalog.PieceRecord, error) {
	records := make([]catalog.PieceRecord, 0, len(seeds))
	for _, seed := range seeds {
		if progress.Seed != nil {
			progress.Seed(seed)
		}
		record, err := s.scrapePiece(seed, progress)
		if err != nil {
			return nil, fmt.Errorf("scrape %s: %w", seed.Label, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// colorInfo is the first pass over the color selector: name and sample for
// every swatch, by index. Element ID and price need a second pass that
// clicks each swatch.
type colorInfo struct {
	Index int     `json:"index"`
	Name  string  `json:"color_name"`
	CSS   *string `json:"css"`
}

func (s *Scraper) scrapePiece(seed Seed, progress Progress) (catalog.PieceRecord, error) {
	record := catalog.PieceRecord{ElementID: seed.BaseID, BrickType: seed.Label}

	page, err := s.browser.Page(proto.TargetCreateTarget{URL: s.cfg.BaseURL + seed.BaseID})
	if err != nil {
		return record, fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	page = page.Timeout(s.cfg.NavTimeout)
	if err := page.WaitLoad(); err != nil {
		return record, fmt.Errorf("wait load: %w", err)
	}
	time.Sleep(s.cfg.SettleDelay)

	clicked, err := page.Eval(jsClickItem)
	if err != nil {
		return record, fmt.Errorf("click item: %w", err)
	}
	if !clicked.Value.Bool() {
		// Item not in the current rotation; an empty record is still a
		// valid catalog row.
		return record, nil
	}
	time.Sleep(s.cfg.SettleDelay)

	listed, err := page.Eval(jsListColors)
	if err != nil {
		return record, fmt.Errorf("list colors: %w", err)
	}
	raw, err := listed.Value.MarshalJSON()
	if err != nil {
		return record, fmt.Errorf("decode color list: %w", err)
	}
	var infos []colorInfo
	if err := json.Unmarshal(raw, &infos); err != nil {
		return record, fmt.Errorf("decode color list: %w", err)
	}

	for _, info := range infos {
		variant, err := s.scrapeColor(page, info)
		ok := err == nil && variant != nil
		if progress.Color != nil {
			progress.Color(seed, info.Name, ok)
		}
		if !ok {
			continue
		}
		record.Colors = append(record.Colors, *variant)
	}
	record.NumColors = len(record.Colors)
	return record, nil
}

// scrapeColor clicks one swatch and reads the element ID from the URL and
// the price from the price node.
func (s *Scraper) scrapeColor(page *rod.Page, info colorInfo) (*catalog.ColorRecord, error) {
	clicked, err := page.Eval(jsClickColor, info.Index)
	if err != nil {
		return nil, fmt.Errorf("click color: %w", err)
	}
	if !clicked.Value.Bool() {
		return nil, nil
	}
	time.Sleep(s.cfg.SettleDelay / 2)

	read, err := page.Eval(jsReadSelection)
	if err != nil {
		return nil, fmt.Errorf("read selection: %w", err)
	}
	url := read.Value.Get("url").Str()
	priceText := read.Value.Get("price_text").Str()

	elementID := ElementIDFromURL(url)
	if elementID == "" {
		// Without an element ID the variant cannot be ordered; skip it.
		return nil, nil
	}

	var rgb *string
	if info.CSS != nil {
		rgb = HexFromCSS(*info.CSS)
	}
	return &catalog.ColorRecord{
		ColorName: info.Name,
		ElementID: &elementID,
		RGB:       rgb,
		Price:     ParsePrice(priceText),
	}, nil
}

// Page scripts. The shop renders client-side, so the swatch list and the
// selection state are only reachable through the DOM.
const (
	jsClickItem = `() => {
		const btn = document.querySelector('[data-test="pab-item-button"]');
		if (!btn) return false;
		btn.click();
		return true;
	}`

	jsListColors = `() => {
		const out = [];
		document.querySelectorAll('button[class*="color"]').forEach((btn, index) => {
			const name = btn.getAttribute('aria-label') || btn.getAttribute('title');
			if (!name) return;
			let css = null;
			const block = btn.querySelector('[data-test="pab-element-modal-color-block"]');
			if (block) {
				const bg = window.getComputedStyle(block).backgroundColor;
				if (bg && bg !== 'rgba(0, 0, 0, 0)') css = bg;
			}
			out.push({index: index, color_name: name, css: css});
		});
		return out;
	}`

	jsClickColor = `(index) => {
		const btn = document.querySelectorAll('button[class*="color"]')[index];
		if (!btn) return false;
		btn.click();
		return true;
	}`

	jsReadSelection = `() => {
		const priceEl = document.querySelector('[data-test="pab-item-price"]');
		return {
			url: window.location.href,
			price_text: priceEl ? priceEl.textContent.trim() : "",
		};
	}`
)
