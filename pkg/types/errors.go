package types

import "errors"

// Catalog structure errors. These are fatal: a catalog with an unparsable
// piece label is structurally invalid and the run aborts.
var (
	ErrMalformedLabel = errors.New("malformed piece-type label")
)

// Synthesis errors. These are recovered per (piece, color): the failure is
// recorded as a diagnostic and the run continues.
var (
	// ErrNoCandidate means no smaller same-family piece both fits the
	// target footprint and carries the color directly.
	ErrNoCandidate = errors.New("no substitute candidate")

	// ErrUnfillable means candidates exist but no combination covers the
	// target area exactly and no unit piece is available as filler.
	ErrUnfillable = errors.New("target area cannot be filled exactly")
)

// Palette derivation errors. Fatal: without a unique minimal reference
// piece per family there is nothing to intersect against.
var (
	ErrNoReferenceUnit = errors.New("no unique minimal reference piece")
)
