// Package state implements the immutable editor state for codepad.
//
// A State is never mutated. Changes are described by a Transaction built
// from a State and applied with State.Apply, which returns a new State.
// Commands inspect a State and, when given a Dispatch, hand it the
// Transaction they want applied.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
package state
