package scrape

import (
	"fmt"
	"regexp"
	"strconv"
)

// Extraction helpers for values read off the shop page. Kept pure so the
// parsing rules are testable without a browser.

var (
	priceRe   = regexp.MustCompile(`\$([\d.]+)`)
	elementRe = regexp.MustCompile(`selectedElement=(\d+)`)
	rgbRe     = regexp.MustCompile(`rgba?\((\d+),\s*(\d+),\s*(\d+)`)
)

// ParsePrice extracts a dollar amount from a price node's text, e.g.
// "$0.27 each" -> 0.27. Returns nil when no price is present; a missing
// price is recorded as null, never as zero.
func ParsePrice(text string) *float64 {
	m := priceRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

// ElementIDFromURL extracts the selected element ID from the page URL once
// a color has been clicked, e.g. "...?selectedElement=300121" -> "300121".
func ElementIDFromURL(url string) string {
	m := elementRe.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// HexFromCSS converts a computed CSS background color, "rgb(180, 0, 0)" or
// "rgba(180, 0, 0, 1)", to "#b40000". Returns nil for transparent or
// unparsable values.
func HexFromCSS(css string) *string {
	m := rgbRe.FindStringSubmatch(css)
	if m == nil {
		return nil
	}
	r, _ := strconv.Atoi(m[1])
	g, _ := strconv.Atoi(m[2])
	b, _ := strconv.Atoi(m[3])
	if r > 255 || g > 255 || b > 255 {
		return nil
	}
	hex := fmt.Sprintf("#%02x%02x%02x", r, g, b)
	return &hex
}
