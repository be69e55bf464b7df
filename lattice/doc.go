// Package lattice implements the sparse, write-once coordinate map that
// holds a frieze pattern.
//
// A Lattice maps Coord{Row, Col} to an exact numeric.Value. Cells are
// assigned at most once: Set on an occupied coordinate fails with
// ErrDuplicateAssignment, because a frieze is filled in one deterministic
// pass and a second write can only come from an indexing bug in the
// builder. Get on an empty coordinate fails with ErrMissingEntry. There is
// no delete.
//
// Lattices are not safe for concurrent mutation; a builder owns its
// lattice until it returns it, after which the lattice is read-only.
package lattice
