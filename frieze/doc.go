// Package frieze builds arithmetic frieze patterns on a write-once lattice.
//
// 🚀 What is a frieze pattern?
//
//	A frieze is an array of numbers bounded by a row of 0s and a row of 1s
//	in which every unit diamond
//
//	        b
//	     a     d
//	        c
//
//	satisfies a·d − b·c = 1. The pattern is stored as a symmetric lattice
//	v(i,j): v(i,i) = 0, v(i,i±1) = 1, and the row |i−j| = 2 is the quiddity row.
//
// ✨ Two seeds:
//   - BuildQuiddity: a periodic quiddity row generates a finite frieze,
//     swept with v(i,j) = (v(i,j−1)·v(i+1,j) − 1) / v(i+1,j−1) until the
//     pattern closes with a row of zeros.
//   - BuildDiagonal: one diagonal of a known frieze regenerates the pattern
//     with v(i,j) = (v(i,j−1)·v(i−1,j) + 1) / v(i−1,j−1).
//
// Seeds are checked first (determinant test for quiddity rows, local
// divisibility for diagonals). A failing check is advisory: it is logged
// through Options.Logger and returned in Frieze.Warnings, and the build goes
// on. Set Options.Strict to turn the first failure into ErrInvalidSeed.
//
// ⚙️ Usage:
//
//	opts := frieze.DefaultOptions()
//	opts.Width, opts.RowCount = 5, 5
//	f, err := frieze.BuildQuiddity(numeric.Ints(1, 1, 1), &opts)
//	fmt.Println(f) // staircase text grid
//
// Structural faults are fatal and always returned: lattice.ErrDuplicateAssignment,
// lattice.ErrMissingEntry and ErrNonExactDivision.
//
// Complexity: O(Width·RowCount) exact cell evaluations; memory O(cells).
package frieze
