package engine

// Unresolved reasons, as written into the run report.
const (
	ReasonNoCandidate = "no candidate"
	ReasonUnfillable  = "unfillable"
)

// Unresolved is one (piece, color) pair the synthesizer could not cover.
// Unresolved colors are diagnostics, not errors: the run continues and the
// color simply stays missing on that piece.
type Unresolved struct {
	Piece  string `json:"piece"`
	Color  string `json:"color"`
	Reason string `json:"reason"`
}

// Report aggregates the outcome of an augmentation run.
//
// PriceGaps counts contributing variants whose price was absent and summed
// as zero. That approximation is deliberate and must stay visible to the
// operator, so it is carried here instead of being silently folded in.
type Report struct {
	PiecesAnalyzed    int          `json:"pieces_analyzed"`
	PiecesWithMissing int          `json:"pieces_with_missing_colors"`
	MissingInstances  int          `json:"missing_color_instances"`
	SubstitutesAdded  int          `json:"substitutes_added"`
	PriceGaps         int          `json:"price_gaps"`
	Unresolved        []Unresolved `json:"unresolved,omitempty"`
}
