package lattice

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/frieze/matrix"
	"github.com/katalvlaran/frieze/numeric"
)

// Coord identifies one lattice cell. Builders only produce non-negative
// coordinates; the lattice itself does not bound them.
type Coord struct {
	Row, Col int
}

// At is shorthand for Coord{Row: i, Col: j}.
func At(i, j int) Coord { return Coord{Row: i, Col: j} }

// Transpose returns (Col, Row).
func (c Coord) Transpose() Coord { return Coord{Row: c.Col, Col: c.Row} }

// Offset returns Col - Row: 0 on the zero border, ±1 on the unit border,
// ±2 on the seed border.
func (c Coord) Offset() int { return c.Col - c.Row }

// String formats the coordinate as (row,col).
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Lattice is a sparse write-once map from Coord to numeric.Value.
type Lattice struct {
	cells map[Coord]numeric.Value
}

// New returns an empty lattice.
func New() *Lattice {
	return &Lattice{cells: make(map[Coord]numeric.Value)}
}

// Set assigns v to c. It never overwrites: an occupied coordinate fails
// with ErrDuplicateAssignment and the stored value is left untouched.
func (l *Lattice) Set(c Coord, v numeric.Value) error {
	if _, ok := l.cells[c]; ok {
		return latticeErrorf("Set", c, ErrDuplicateAssignment)
	}
	l.cells[c] = v

	return nil
}

// Get returns the value at c or ErrMissingEntry.
func (l *Lattice) Get(c Coord) (numeric.Value, error) {
	v, ok := l.cells[c]
	if !ok {
		return numeric.Value{}, latticeErrorf("Get", c, ErrMissingEntry)
	}

	return v, nil
}

// Lookup returns the value at c and whether it is present.
func (l *Lattice) Lookup(c Coord) (numeric.Value, bool) {
	v, ok := l.cells[c]

	return v, ok
}

// Has reports whether c is assigned.
func (l *Lattice) Has(c Coord) bool {
	_, ok := l.cells[c]

	return ok
}

// Len returns the number of assigned cells.
func (l *Lattice) Len() int { return len(l.cells) }

// Coords returns every assigned coordinate in row-major order.
// Complexity: O(N log N).
func (l *Lattice) Coords() []Coord {
	out := make([]Coord, 0, len(l.cells))
	for c := range l.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return out
}

// Equal reports whether both lattices assign the same coordinates to equal values.
func (l *Lattice) Equal(o *Lattice) bool {
	if l.Len() != o.Len() {
		return false
	}
	for c, v := range l.cells {
		w, ok := o.cells[c]
		if !ok || !v.Equal(w) {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether every assigned (i,j) has its transpose (j,i)
// assigned to an equal value.
func (l *Lattice) IsSymmetric() bool {
	for c, v := range l.cells {
		w, ok := l.cells[c.Transpose()]
		if !ok || !v.Equal(w) {
			return false
		}
	}

	return true
}

// Extent returns one past the largest row and column index in use.
func (l *Lattice) Extent() (rows, cols int) {
	for c := range l.cells {
		if c.Row+1 > rows {
			rows = c.Row + 1
		}
		if c.Col+1 > cols {
			cols = c.Col + 1
		}
	}

	return rows, cols
}

// ToMatrix exports the lattice as a dense matrix sized by Extent; absent
// cells read as 0. Negative coordinates are skipped.
func (l *Lattice) ToMatrix() (*matrix.Dense, error) {
	rows, cols := l.Extent()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Lattice.ToMatrix: %w", err)
	}
	for c, v := range l.cells {
		if c.Row < 0 || c.Col < 0 {
			continue
		}
		if err = m.Set(c.Row, c.Col, v); err != nil {
			return nil, fmt.Errorf("Lattice.ToMatrix: %w", err)
		}
	}

	return m, nil
}
