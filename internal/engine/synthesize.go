package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/brickforge/pab/pkg/types"
)

// Composition is a successful synthesis result: an ordered multiset of
// smaller pieces whose areas sum exactly to the target's area, all carrying
// the requested color directly.
type Composition struct {
	Entries []types.SubstituteEntry

	// Price is the sum of the contributing variants' prices, rounded to
	// two decimals. A contributor without a price counts as zero and
	// increments PriceGaps.
	Price     float64
	PriceGaps int

	// RGB is the color sample of the smallest pool piece that sells the
	// color, independent of which pieces ended up in the composition.
	RGB *string
}

// Synthesize covers the target's footprint with smaller same-family pieces
// carrying colorName. The pool must hold the strictly-smaller pieces that
// sell the color directly, ascending by area, as produced by DetectMissing.
//
// The algorithm is greedy, largest-first, over area only: it does not prove
// the composition tiles the footprint in two dimensions. Candidates are the
// pool pieces whose width and length both fit inside the target. When the
// greedy pass leaves a remainder and a unit-area candidate exists, the
// remainder is filled with unit pieces; otherwise synthesis fails with
// types.ErrUnfillable. An empty candidate set fails with
// types.ErrNoCandidate.
func Synthesize(target *types.PieceType, colorName string, pool []*types.PieceType) (*Composition, error) {
	var candidates []*types.PieceType
	for _, q := range pool {
		if q.Width <= target.Width && q.Length <= target.Length && q.HasDirectColor(colorName) {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%q on %s: %w", colorName, target.Label, types.ErrNoCandidate)
	}

	// Largest first. The stable sort keeps catalog order among equal areas,
	// so compositions are identical across runs.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Area() > candidates[j].Area()
	})

	comp := &Composition{RGB: poolRGB(pool, colorName)}
	remaining := target.Area()
	for _, c := range candidates {
		count := remaining / c.Area()
		if count == 0 {
			continue
		}
		comp.add(c, colorName, count)
		remaining -= count * c.Area()
		if remaining == 0 {
			break
		}
	}

	if remaining > 0 {
		unit := candidates[len(candidates)-1]
		if unit.Area() != 1 {
			return nil, fmt.Errorf("%q on %s: %d studs left uncovered: %w",
				colorName, target.Label, remaining, types.ErrUnfillable)
		}
		comp.add(unit, colorName, remaining)
	}

	comp.Price = math.Round(comp.Price*100) / 100
	return comp, nil
}

// add appends count pieces of c to the composition, merging with an
// existing entry for the same piece, and accumulates the price.
func (comp *Composition) add(c *types.PieceType, colorName string, count int) {
	v := c.DirectVariant(colorName)

	elementID := ""
	if v.ElementID != nil {
		elementID = *v.ElementID
	}
	if v.Price != nil {
		comp.Price += *v.Price * float64(count)
	} else {
		comp.PriceGaps++
	}

	for i := range comp.Entries {
		if comp.Entries[i].BrickType == c.Label {
			comp.Entries[i].Quantity += count
			return
		}
	}
	comp.Entries = append(comp.Entries, types.SubstituteEntry{
		BrickType: c.Label,
		ElementID: elementID,
		Quantity:  count,
	})
}

// poolRGB returns the color sample of the smallest pool piece. The pool is
// restricted to direct carriers of the color, so the first piece always has
// the variant; its sample may still be absent.
func poolRGB(pool []*types.PieceType, colorName string) *string {
	for _, q := range pool {
		if v := q.DirectVariant(colorName); v != nil {
			if v.RGB == nil {
				return nil
			}
			rgb := *v.RGB
			return &rgb
		}
	}
	return nil
}
