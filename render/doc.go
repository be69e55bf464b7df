// Package render turns a populated frieze lattice into printable rows.
//
// Row r of a frieze is the sequence v(c, c+r) for c = 0, 1, ..., so row 0 is
// the zero border, row 1 the unit border and row 2 the quiddity row. Rows
// stop at the first coordinate the lattice does not hold; near the closing
// border of a finite frieze that is the normal way a row ends.
//
// Text lays the rows out as a staircase: row r is indented by 2r spaces and
// every value is right-aligned in a field of width 3, so each diamond of the
// pattern lines up vertically.
//
//	  0   0   0   0   0
//	    1   1   1   1   1
//	      1   1   1   1   1
//
// Matrix prints the whole lattice as a dense symmetric matrix instead.
package render
