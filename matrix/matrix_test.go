// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frieze/matrix"
	"github.com/katalvlaran/frieze/numeric"
)

// ints converts a list of integers to values.
func ints(xs ...int64) []numeric.Value {
	out := make([]numeric.Value, len(xs))
	for i, x := range xs {
		out[i] = numeric.Int(x)
	}

	return out
}

// TestNewDense_Shapes covers legal empty shapes and negative rejection.
func TestNewDense_Shapes(t *testing.T) {
	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())

	_, err = matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_AtSetBounds verifies At/Set return ErrOutOfRange instead of panicking.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, numeric.Int(7)))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.True(t, v.Equal(numeric.Int(7)))

	zero, err := m.At(0, 0)
	require.NoError(t, err)
	assert.True(t, zero.IsZero(), "fresh cells read as 0")

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.EqualError(t, err, "Dense.At(2,0): matrix: index out of range")
	err = m.Set(0, -1, numeric.One())
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.EqualError(t, err, "Dense.Set(0,-1): matrix: index out of range")

	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "", empty.String())
}

// TestDense_CloneIndependent ensures Clone does not alias storage.
func TestDense_CloneIndependent(t *testing.T) {
	m, err := matrix.NewFromRows([][]numeric.Value{ints(1, 2), ints(3, 4)})
	require.NoError(t, err)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, numeric.Int(9)))

	v, _ := m.At(0, 0)
	assert.True(t, v.Equal(numeric.One()))
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestNewFromRows_Ragged rejects non-rectangular input.
func TestNewFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewFromRows([][]numeric.Value{ints(1, 2), ints(3)})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewTridiagonal_Layout checks the band structure.
func TestNewTridiagonal_Layout(t *testing.T) {
	m, err := matrix.NewTridiagonal(ints(2, 3, 4), numeric.One())
	require.NoError(t, err)
	assert.Equal(t, "[2, 1, 0]\n[1, 3, 1]\n[0, 1, 4]\n", m.String())
}

// TestDeterminant_Table covers empty, singular, pivoting and continuant cases.
func TestDeterminant_Table(t *testing.T) {
	cases := []struct {
		name string
		rows [][]numeric.Value
		want string
	}{
		{"Empty", nil, "1"},
		{"OneByOne", [][]numeric.Value{ints(5)}, "5"},
		{"TwoByTwo", [][]numeric.Value{ints(1, 2), ints(3, 4)}, "-2"},
		{"NeedsRowSwap", [][]numeric.Value{ints(0, 1), ints(1, 0)}, "-1"},
		{"Singular", [][]numeric.Value{ints(1, 2), ints(2, 4)}, "0"},
		{"ZeroColumn", [][]numeric.Value{ints(0, 1), ints(0, 2)}, "0"},
		{"ThreeByThree", [][]numeric.Value{ints(2, 0, 1), ints(1, 3, 2), ints(1, 1, 2)}, "6"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewFromRows(tc.rows)
			require.NoError(t, err)
			det, err := matrix.Determinant(m)
			require.NoError(t, err)
			assert.Equal(t, tc.want, det.String())
		})
	}
}

// TestDeterminant_Continuant checks det of the quiddity tridiagonal matrix
// of the triangle row (1,1): q0*q1 - 1 = 0.
func TestDeterminant_Continuant(t *testing.T) {
	m, err := matrix.NewTridiagonal(ints(1, 1), numeric.One())
	require.NoError(t, err)
	det, err := matrix.Determinant(m)
	require.NoError(t, err)
	assert.True(t, det.IsZero())

	// Pentagon row (1,3,1,2,2) minus its last entry: K(1,3,1,2) = 0.
	m, err = matrix.NewTridiagonal(ints(1, 3, 1, 2), numeric.One())
	require.NoError(t, err)
	det, err = matrix.Determinant(m)
	require.NoError(t, err)
	assert.True(t, det.IsZero(), "got %s", det)
}

// TestDeterminant_Algebraic checks exactness in Q(sqrt(2)).
func TestDeterminant_Algebraic(t *testing.T) {
	r2 := numeric.MustParse("sqrt(2)")
	m, err := matrix.NewTridiagonal([]numeric.Value{r2, r2}, numeric.One())
	require.NoError(t, err)
	det, err := matrix.Determinant(m)
	require.NoError(t, err)
	assert.True(t, det.Equal(numeric.One()), "sqrt(2)*sqrt(2) - 1 = 1, got %s", det)
}

// TestDeterminant_Errors covers the shape sentinels.
func TestDeterminant_Errors(t *testing.T) {
	_, err := matrix.Determinant(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Determinant(typedNil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = matrix.Determinant(m)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}
