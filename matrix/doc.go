// SPDX-License-Identifier: MIT

// Package matrix provides exact dense matrices over numeric.Value.
//
// The package is intentionally small: it carries what the frieze validity
// test needs (tridiagonal construction and an exact determinant) plus the
// dense export of a frieze lattice.
//
//   - Dense is row-major; At/Set are bounds-checked and return ErrOutOfRange.
//   - 0×0 matrices are legal; their determinant is 1 (empty product).
//   - Determinant uses exact Gaussian elimination, so there is no epsilon
//     and no floating-point drift.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); Determinant: O(n^3)
//     exact operations.
package matrix
