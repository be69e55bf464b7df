package render_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frieze/frieze"
	"github.com/katalvlaran/frieze/lattice"
	"github.com/katalvlaran/frieze/numeric"
	"github.com/katalvlaran/frieze/render"
)

func quietOptions(width, rows int) *frieze.Options {
	opts := frieze.DefaultOptions()
	opts.Width, opts.RowCount = width, rows
	opts.Logger = zerolog.Nop()

	return &opts
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// TestText_Golden pins the staircase layout for finite and infinite friezes.
func TestText_Golden(t *testing.T) {
	cases := []struct {
		name  string
		kind  frieze.SeedKind
		seed  []numeric.Value
		width int
		rows  int
	}{
		{"triangle", frieze.Quiddity, numeric.Ints(1, 1, 1), 5, 5},
		{"pentagon", frieze.Quiddity, numeric.Ints(1, 3, 1, 2, 2), 5, 6},
		{"diagonal_ones", frieze.Diagonal, numeric.Ints(1, 1, 1), 3, 0},
		{"diagonal_invalid", frieze.Diagonal, numeric.Ints(2, 2), 2, 0},
	}
	g := newGoldie(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := frieze.Build(tc.kind, tc.seed, quietOptions(tc.width, tc.rows))
			require.NoError(t, err)
			g.Assert(t, tc.name, []byte(render.Text(f.Lattice, f.Width, f.Rows)))
		})
	}
}

// TestRows_StopsAtFirstGap checks that a row ends at the first absent cell
// even when later cells exist.
func TestRows_StopsAtFirstGap(t *testing.T) {
	l := lattice.New()
	require.NoError(t, l.Set(lattice.At(0, 0), numeric.Zero()))
	require.NoError(t, l.Set(lattice.At(2, 2), numeric.Zero()))
	require.NoError(t, l.Set(lattice.At(0, 1), numeric.One()))

	rows := render.Rows(l, 3, 3)
	require.Len(t, rows, 3)
	assert.Len(t, rows[0], 1, "(1,1) is absent")
	assert.Len(t, rows[1], 1)
	assert.Empty(t, rows[2])
	assert.Equal(t, "  0\n    1\n    ", render.Text(l, 3, 3))
}

// TestRows_Degenerate covers nil lattices and empty sizes.
func TestRows_Degenerate(t *testing.T) {
	assert.Len(t, render.Rows(nil, 3, 2), 2)
	assert.Empty(t, render.Rows(lattice.New(), 3, -1))
	assert.Equal(t, "", render.Text(lattice.New(), 5, 0))
	assert.Equal(t, "\n  ", render.Text(lattice.New(), 0, 2))
}

// TestMatrix renders the dense view of a small lattice.
func TestMatrix(t *testing.T) {
	l := lattice.New()
	require.NoError(t, l.Set(lattice.At(0, 1), numeric.One()))
	require.NoError(t, l.Set(lattice.At(1, 0), numeric.One()))

	s, err := render.Matrix(l)
	require.NoError(t, err)
	assert.Equal(t, "[0, 1]\n[1, 0]\n", s)

	s, err = render.Matrix(nil)
	require.NoError(t, err)
	assert.Empty(t, s)
}
