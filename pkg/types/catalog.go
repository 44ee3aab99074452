package types

import "sort"

// Catalog maps each family to its piece types sorted ascending by area.
// The ascending order is load-bearing: every consumer relies on "smaller"
// meaning "earlier in the family sequence". Build catalogs through
// NewCatalog so the invariant holds; a catalog is never mutated in place,
// only cloned and rebuilt.
type Catalog struct {
	families map[string][]*PieceType
}

// NewCatalog groups the pieces by family and sorts each family ascending
// by area. The sort is stable: pieces with equal area keep input order.
func NewCatalog(pieces []*PieceType) *Catalog {
	families := make(map[string][]*PieceType)
	for _, p := range pieces {
		families[p.Family] = append(families[p.Family], p)
	}
	for _, seq := range families {
		sort.SliceStable(seq, func(i, j int) bool {
			return seq[i].Area() < seq[j].Area()
		})
	}
	return &Catalog{families: families}
}

// FamilyNames returns the family tags in lexicographic order.
func (c *Catalog) FamilyNames() []string {
	names := make([]string, 0, len(c.families))
	for name := range c.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Family returns the pieces of a family, ascending by area. The returned
// slice is shared with the catalog and must not be modified.
func (c *Catalog) Family(name string) []*PieceType {
	return c.families[name]
}

// Pieces returns every piece type, families in lexicographic order and
// pieces ascending by area within each family.
func (c *Catalog) Pieces() []*PieceType {
	var all []*PieceType
	for _, name := range c.FamilyNames() {
		all = append(all, c.families[name]...)
	}
	return all
}

// Smaller returns the same-family pieces with strictly smaller area than p,
// ascending by area. Equal-area pieces are excluded: neither of two
// same-area pieces is "smaller" than the other.
func (c *Catalog) Smaller(p *PieceType) []*PieceType {
	var smaller []*PieceType
	for _, q := range c.families[p.Family] {
		if q.Area() >= p.Area() {
			break
		}
		smaller = append(smaller, q)
	}
	return smaller
}

// Len returns the total number of piece types.
func (c *Catalog) Len() int {
	n := 0
	for _, seq := range c.families {
		n += len(seq)
	}
	return n
}

// Clone returns a deep copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	pieces := make([]*PieceType, 0, c.Len())
	for _, p := range c.Pieces() {
		pieces = append(pieces, p.Clone())
	}
	return NewCatalog(pieces)
}
