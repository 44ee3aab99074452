// Package engine implements the substitute-synthesis and palette-consistency
// pipeline: missing-color detection, greedy area-covering substitute
// construction, catalog augmentation, universal-palette derivation, and the
// consistency check over the filtered result.
//
// Every stage is a pure function over an immutable catalog: stages never
// mutate their input, they clone and return new state. The whole pipeline is
// a deterministic batch transformation with no I/O.
package engine
