// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/frieze/numeric"
)

// NewTridiagonal builds the n×n matrix with diag on the main diagonal, off
// on both neighbouring diagonals and zeros elsewhere, n = len(diag).
//
//	[ d0  o   0  ... ]
//	[ o   d1  o  ... ]
//	[ 0   o   d2 ... ]
//
// An empty diag yields the 0×0 matrix. Determinants of these matrices are
// the continuants used by the frieze validity test.
func NewTridiagonal(diag []numeric.Value, off numeric.Value) (*Dense, error) {
	n := len(diag)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opTridiagonal, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = diag[i]
		if i+1 < n {
			m.data[i*n+i+1] = off
			m.data[(i+1)*n+i] = off
		}
	}

	return m, nil
}

// NewFromRows copies a rectangular [][]numeric.Value into a Dense.
// Ragged input fails with ErrInvalidDimensions.
func NewFromRows(rows [][]numeric.Value) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrInvalidDimensions))
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}
