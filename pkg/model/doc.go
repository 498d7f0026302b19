// Package model defines the Azul practice core's data model: tile colors,
// tile multisets, the player board, and the single State value that is
// passed across the core's public boundary.
//
// Every type here round-trips through JSON (hand-written methods in
// color.go, multiset.go and action.go; struct tags elsewhere): deserializing a serialized State or DraftAction yields an
// equal value. State is treated as an immutable value everywhere outside this
// module's own rules engine, which clones a working copy it exclusively owns
// before mutating it (see pkg/rules).
package model
