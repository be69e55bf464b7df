package frieze

import (
	"fmt"

	"github.com/katalvlaran/frieze/lattice"
	"github.com/katalvlaran/frieze/numeric"
)

// orientation maps (position k, offset o from the main diagonal) to a
// coordinate. The upper half stores (k, k+o); the lower half is its mirror.
type orientation func(k, o int) lattice.Coord

var (
	upper orientation = func(k, o int) lattice.Coord { return lattice.At(k, k+o) }
	lower orientation = func(k, o int) lattice.Coord { return lattice.At(k+o, k) }
)

// Recurrence offsets: v(i,j) = (x*y + delta) / divisor.
var (
	plusOne  = numeric.One()
	minusOne = numeric.Int(-1)
)

// filler writes one lattice on behalf of a builder. All writes go through
// put so every algebraic value is canonical before it is stored.
type filler struct {
	tag string
	l   *lattice.Lattice
}

func newFiller(tag string) *filler {
	return &filler{tag: tag, l: lattice.New()}
}

// put stores v at c. A second write to c is an indexing bug and fails with
// lattice.ErrDuplicateAssignment.
func (f *filler) put(c lattice.Coord, v numeric.Value) error {
	if !v.IsRational() {
		v = v.Simplify()
	}
	if err := f.l.Set(c, v); err != nil {
		return friezeErrorf(f.tag, err)
	}

	return nil
}

// putPair stores v at c and at its transpose; diagonal cells are stored once.
func (f *filler) putPair(c lattice.Coord, v numeric.Value) error {
	if err := f.put(c, v); err != nil {
		return err
	}
	if c.Row == c.Col {
		return nil
	}

	return f.put(c.Transpose(), v)
}

// get reads an ingredient that must already exist.
func (f *filler) get(c lattice.Coord) (numeric.Value, error) {
	v, err := f.l.Get(c)
	if err != nil {
		return numeric.Value{}, friezeErrorf(f.tag, err)
	}

	return v, nil
}

// unimodular computes (x*y + delta) / div for the cell at c. Arithmetic
// failures surface as ErrNonExactDivision tagged with the cell.
func (f *filler) unimodular(c lattice.Coord, x, y, div, delta numeric.Value) (numeric.Value, error) {
	p, err := x.Mul(y)
	if err == nil {
		p, err = p.Add(delta)
	}
	if err == nil {
		p, err = p.Quo(div)
	}
	if err != nil {
		return numeric.Value{}, cellErrorf(f.tag, c, fmt.Errorf("%w: %w", ErrNonExactDivision, err))
	}

	return p, nil
}
