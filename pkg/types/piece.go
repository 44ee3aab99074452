package types

// Known family tags. Families are open-ended; these are the two the
// Pick-a-Brick catalog ships today.
const (
	FamilyBrick = "BRICK"
	FamilyPlate = "PLATE"
)

// SubstituteEntry is one line of a substitute composition: a quantity of a
// smaller same-family piece. ElementID identifies the contributing color
// variant of that piece.
type SubstituteEntry struct {
	BrickType string // label of the smaller piece, e.g. "BRICK 1X2"
	ElementID string // element ID of the direct color variant used
	Quantity  int    // positive count of that piece
}

// ColorVariant is one color a piece type is sold in, or a synthesized
// substitute entry standing in for a color the piece is not sold in.
// ElementID, RGB, and Price are nullable in the catalog schema, hence
// pointers. Price is always populated (possibly zero) on substitutes.
type ColorVariant struct {
	ColorName    string
	ElementID    *string
	RGB          *string
	Price        *float64
	IsSubstitute bool
	Substitutes  []SubstituteEntry // non-nil iff IsSubstitute
}

// PieceType is one kind of piece: a family tag plus a stud footprint.
// Colors holds the variants in catalog order; substitute variants are
// appended after the direct ones.
type PieceType struct {
	BaseID string // base catalog element ID, e.g. "3001"
	Label  string // raw catalog label, e.g. "BRICK 2X4"
	Family string
	Width  int
	Length int
	Colors []ColorVariant
}

// Area returns the footprint in studs. It is the total ordering key within
// a family: "smaller" always means strictly smaller area.
func (p *PieceType) Area() int {
	return p.Width * p.Length
}

// Variant returns the variant with the given color name, or nil.
// Color names are unique per piece type.
func (p *PieceType) Variant(colorName string) *ColorVariant {
	for i := range p.Colors {
		if p.Colors[i].ColorName == colorName {
			return &p.Colors[i]
		}
	}
	return nil
}

// DirectVariant returns the directly purchasable variant with the given
// color name, or nil if the color is absent or substitute-only.
func (p *PieceType) DirectVariant(colorName string) *ColorVariant {
	v := p.Variant(colorName)
	if v == nil || v.IsSubstitute {
		return nil
	}
	return v
}

// HasDirectColor reports whether the piece is directly sold in the color.
func (p *PieceType) HasDirectColor(colorName string) bool {
	return p.DirectVariant(colorName) != nil
}

// ColorNames returns the names of all variants. Direct-only selection is
// done by the caller via DirectVariant.
func (p *PieceType) ColorNames() []string {
	names := make([]string, 0, len(p.Colors))
	for i := range p.Colors {
		names = append(names, p.Colors[i].ColorName)
	}
	return names
}

// DirectColorNames returns the names of the directly purchasable variants.
func (p *PieceType) DirectColorNames() []string {
	var names []string
	for i := range p.Colors {
		if !p.Colors[i].IsSubstitute {
			names = append(names, p.Colors[i].ColorName)
		}
	}
	return names
}

// Clone returns a deep copy of the piece type.
func (p *PieceType) Clone() *PieceType {
	cp := *p
	cp.Colors = make([]ColorVariant, len(p.Colors))
	for i, v := range p.Colors {
		cp.Colors[i] = v.Clone()
	}
	return &cp
}

// Clone returns a deep copy of the variant.
func (v ColorVariant) Clone() ColorVariant {
	cp := v
	if v.ElementID != nil {
		id := *v.ElementID
		cp.ElementID = &id
	}
	if v.RGB != nil {
		rgb := *v.RGB
		cp.RGB = &rgb
	}
	if v.Price != nil {
		price := *v.Price
		cp.Price = &price
	}
	if v.Substitutes != nil {
		cp.Substitutes = make([]SubstituteEntry, len(v.Substitutes))
		copy(cp.Substitutes, v.Substitutes)
	}
	return cp
}
