package catalog

import (
	"errors"
	"testing"

	"github.com/brickforge/pab/pkg/types"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		label      string
		wantFamily string
		wantWidth  int
		wantLength int
	}{
		{"BRICK 2X4", "BRICK", 2, 4},
		{"PLATE 1X1", "PLATE", 1, 1},
		{"BRICK 1X3", "BRICK", 1, 3},
		{"TILE 6X6", "TILE", 6, 6},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			family, width, length, err := ParseLabel(tt.label)
			if err != nil {
				t.Fatalf("ParseLabel(%q) error: %v", tt.label, err)
			}
			if family != tt.wantFamily || width != tt.wantWidth || length != tt.wantLength {
				t.Errorf("ParseLabel(%q) = (%q, %d, %d), want (%q, %d, %d)",
					tt.label, family, width, length, tt.wantFamily, tt.wantWidth, tt.wantLength)
			}
		})
	}
}

func TestParseLabelMalformed(t *testing.T) {
	labels := []string{
		"",
		"BRICK",
		"BRICK 2X4 EXTRA",
		"BRICK 2x4",    // lowercase separator
		"BRICK 24",     // no separator
		"BRICK 2X4X6",  // three dimensions
		"BRICK AXB",    // non-integer dimensions
		"BRICK 2X",     // missing length
		"BRICK 0X4",    // non-positive width
		"BRICK 2X-1",   // negative length
	}
	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			_, _, _, err := ParseLabel(label)
			if !errors.Is(err, types.ErrMalformedLabel) {
				t.Errorf("ParseLabel(%q) error = %v, want ErrMalformedLabel", label, err)
			}
		})
	}
}
