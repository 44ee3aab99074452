// Package types defines the catalog entity types (PieceType, ColorVariant,
// SubstituteEntry, Catalog), the Config type, and standard errors for the
// Pick-a-Brick substitute engine.
package types
