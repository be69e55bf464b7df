package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frieze/lattice"
	"github.com/katalvlaran/frieze/numeric"
)

// TestSet_WriteOnce verifies a second write fails and keeps the first value.
func TestSet_WriteOnce(t *testing.T) {
	l := lattice.New()
	require.NoError(t, l.Set(lattice.At(1, 2), numeric.Int(3)))

	err := l.Set(lattice.At(1, 2), numeric.Int(4))
	assert.ErrorIs(t, err, lattice.ErrDuplicateAssignment)
	assert.Contains(t, err.Error(), "(1,2)", "error names the coordinate")

	v, err := l.Get(lattice.At(1, 2))
	require.NoError(t, err)
	assert.True(t, v.Equal(numeric.Int(3)), "first write wins")
	assert.Equal(t, 1, l.Len())
}

// TestGet_Missing verifies reads of absent cells fail with ErrMissingEntry.
func TestGet_Missing(t *testing.T) {
	l := lattice.New()
	_, err := l.Get(lattice.At(0, 0))
	assert.ErrorIs(t, err, lattice.ErrMissingEntry)

	_, ok := l.Lookup(lattice.At(0, 0))
	assert.False(t, ok)
	assert.False(t, l.Has(lattice.At(0, 0)))
}

// TestCoords_Sorted checks the deterministic row-major order.
func TestCoords_Sorted(t *testing.T) {
	l := lattice.New()
	for _, c := range []lattice.Coord{{2, 0}, {0, 2}, {1, 1}, {0, 1}, {1, 0}} {
		require.NoError(t, l.Set(c, numeric.One()))
	}
	assert.Equal(t, []lattice.Coord{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 0}}, l.Coords())
}

// TestCoord_Helpers covers Transpose, Offset and String.
func TestCoord_Helpers(t *testing.T) {
	c := lattice.At(3, 5)
	assert.Equal(t, lattice.At(5, 3), c.Transpose())
	assert.Equal(t, 2, c.Offset())
	assert.Equal(t, -2, c.Transpose().Offset())
	assert.Equal(t, "(3,5)", c.String())
}

// TestEqualAndSymmetric covers structural comparison helpers.
func TestEqualAndSymmetric(t *testing.T) {
	a, b := lattice.New(), lattice.New()
	for _, l := range []*lattice.Lattice{a, b} {
		require.NoError(t, l.Set(lattice.At(0, 1), numeric.One()))
		require.NoError(t, l.Set(lattice.At(1, 0), numeric.One()))
	}
	assert.True(t, a.Equal(b))
	assert.True(t, a.IsSymmetric())

	require.NoError(t, b.Set(lattice.At(0, 2), numeric.Int(2)))
	assert.False(t, a.Equal(b))
	assert.False(t, b.IsSymmetric(), "(2,0) missing")

	require.NoError(t, b.Set(lattice.At(2, 0), numeric.Int(3)))
	assert.False(t, b.IsSymmetric(), "(2,0) differs")
}

// TestToMatrix fills absent cells with zero.
func TestToMatrix(t *testing.T) {
	l := lattice.New()
	require.NoError(t, l.Set(lattice.At(0, 1), numeric.One()))
	require.NoError(t, l.Set(lattice.At(1, 2), numeric.Int(5)))

	rows, cols := l.Extent()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)

	m, err := l.ToMatrix()
	require.NoError(t, err)
	assert.Equal(t, "[0, 1, 0]\n[0, 0, 5]\n", m.String())
}
