// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/frieze/numeric"
)

// Determinant returns det(m) exactly.
//
// Implementation:
//   - Stage 1: ValidateSquare; copy the entries into a scratch buffer.
//   - Stage 2: Gaussian elimination column by column; the pivot is the first
//     non-zero entry at or below the diagonal (row swaps flip the sign).
//   - Stage 3: det = sign · Π pivots. A column without a pivot means det = 0.
//
// Behavior highlights:
//   - No tolerance: arithmetic is exact, zero means zero.
//   - det of the 0×0 matrix is 1.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (shape).
//   - numeric.ErrIncompatibleRadicands when entries mix radicands.
//
// Complexity:
//   - O(n^3) exact operations, O(n^2) scratch.
func Determinant(m Matrix) (numeric.Value, error) {
	if err := ValidateSquare(m); err != nil {
		return numeric.Value{}, matrixErrorf(opDeterminant, err)
	}
	n := m.Rows()
	a := make([]numeric.Value, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return numeric.Value{}, matrixErrorf(opDeterminant, err)
			}
			a[i*n+j] = v
		}
	}

	det := numeric.One()
	negate := false
	var err error
	for k := 0; k < n; k++ {
		p := k
		for p < n && a[p*n+k].IsZero() {
			p++
		}
		if p == n {
			return numeric.Zero(), nil
		}
		if p != k {
			for j := 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			negate = !negate
		}

		pivot := a[k*n+k]
		if det, err = det.Mul(pivot); err != nil {
			return numeric.Value{}, matrixErrorf(opDeterminant, err)
		}
		for i := k + 1; i < n; i++ {
			if a[i*n+k].IsZero() {
				continue
			}
			f, err := a[i*n+k].Quo(pivot)
			if err != nil {
				return numeric.Value{}, matrixErrorf(opDeterminant, err)
			}
			for j := k + 1; j < n; j++ {
				t, err := f.Mul(a[k*n+j])
				if err != nil {
					return numeric.Value{}, matrixErrorf(opDeterminant, fmt.Errorf("row %d: %w", i, err))
				}
				if a[i*n+j], err = a[i*n+j].Sub(t); err != nil {
					return numeric.Value{}, matrixErrorf(opDeterminant, fmt.Errorf("row %d: %w", i, err))
				}
			}
			a[i*n+k] = numeric.Zero()
		}
	}
	if negate {
		det = det.Neg()
	}

	return det, nil
}
