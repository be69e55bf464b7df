// SPDX-License-Identifier: MIT

// Package matrix - Dense holds exact frieze entries for continuant determinants.
//
// Purpose:
//   - Store numeric.Value cells so tridiagonal continuants of a quiddity row
//     evaluate without rounding; 0×0 is a legal shape.
//   - Report a bad (row, col) as ErrOutOfRange tagged with the accessor.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/frieze/numeric"
)

// Matrix is the read/write surface shared by the kernels in this package.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	At(i, j int) (numeric.Value, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v numeric.Value) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Dense is a concrete row-major matrix of exact values.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []numeric.Value
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer; the zero numeric.Value is 0.
//
// Notes:
//   - Unlike float matrices, empty shapes are legal here: the frieze
//     determinant test needs the 0×0 matrix for short quiddity rows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]numeric.Value, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(op string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, matrixErrorf(fmt.Sprintf("%s(%d,%d)", op, row, col), ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (numeric.Value, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		return numeric.Value{}, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v numeric.Value) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix. Values are immutable, so a
// slice copy is a deep copy.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]numeric.Value, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer; one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	row := make([]string, m.c)
	for i := 0; i < m.r; i++ {
		for j := range row {
			row[j] = m.data[i*m.c+j].String()
		}
		fmt.Fprintf(&sb, "[%s]\n", strings.Join(row, ", "))
	}

	return sb.String()
}
