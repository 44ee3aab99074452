package engine

import (
	"github.com/brickforge/pab/pkg/types"
)

// Test fixture builders shared by the engine tests.

func strPtr(s string) *string     { return &s }
func pricePtr(f float64) *float64 { return &f }

func piece(family string, w, l int, colors ...types.ColorVariant) *types.PieceType {
	return &types.PieceType{
		Family: family,
		Width:  w,
		Length: l,
		Label:  familyLabel(family, w, l),
		Colors: colors,
	}
}

func familyLabel(family string, w, l int) string {
	digits := func(n int) string {
		if n >= 10 {
			return string(rune('0'+n/10)) + string(rune('0'+n%10))
		}
		return string(rune('0' + n))
	}
	return family + " " + digits(w) + "X" + digits(l)
}

func direct(name, elementID, rgb string, price float64) types.ColorVariant {
	return types.ColorVariant{
		ColorName: name,
		ElementID: strPtr(elementID),
		RGB:       strPtr(rgb),
		Price:     pricePtr(price),
	}
}

func directUnpriced(name, elementID string) types.ColorVariant {
	return types.ColorVariant{
		ColorName: name,
		ElementID: strPtr(elementID),
	}
}
