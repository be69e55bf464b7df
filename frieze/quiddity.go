package frieze

import (
	"github.com/katalvlaran/frieze/lattice"
	"github.com/katalvlaran/frieze/numeric"
)

const opBuildQuiddity = "BuildQuiddity"

// BuildQuiddity fills a lattice from one period of a quiddity row.
//
// Cell (k,k+2) and its mirror hold row[(k+LeftStart) mod n]. A negative
// LeftStart is first normalised into [0,n).
//
// Implementation:
//   - Stage 1: check the row (CheckQuiddity); warnings are logged, and
//     under opts.Strict the first one is returned.
//   - Stage 2: with extent = RowCount+Width, write the zero border
//     (k,k) for k in [0,extent-2], the unit border (k,k±1) for
//     k in [1,extent-1] and the seed border for k in [0,extent-3].
//   - Stage 3: for offsets r = 3..extent-LeftStart-2 and ascending k compute
//     v(k,k+r) = (v(k,k+r-1)·v(k+1,k+r) - 1) / v(k+1,k+r-1) and, separately,
//     the mirror. An antidiagonal stops at the first k whose divisor is
//     below 1 or whose ingredients were cut off by an earlier stop.
//   - Stage 4: after each offset, the sweep ends once the anchor cell
//     (LeftStart+r, LeftStart) is missing or below 1: the frieze has closed.
//
// Width 0 or RowCount 0 yields the borders only.
//
// Errors:
//   - ErrEmptySeed, ErrBadOptions.
//   - ErrInvalidSeed (as a SeedWarning) when opts.Strict is set.
//   - ErrNonExactDivision when a step mixes incompatible radicands.
//
// Complexity: O(RowCount·(RowCount+Width)) cell evaluations.
func BuildQuiddity(row []numeric.Value, opts *Options) (*Frieze, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, friezeErrorf(opBuildQuiddity, err)
	}
	n := len(row)
	if n == 0 {
		return nil, friezeErrorf(opBuildQuiddity, ErrEmptySeed)
	}

	warnings, err := CheckQuiddity(row)
	if err != nil {
		return nil, friezeErrorf(opBuildQuiddity, err)
	}
	if err = report(o, warnings); err != nil {
		return nil, friezeErrorf(opBuildQuiddity, err)
	}

	leftStart := o.LeftStart
	if leftStart < 0 {
		leftStart = ((leftStart % n) + n) % n
	}
	extent := o.RowCount + o.Width

	f := newFiller(opBuildQuiddity)
	if err = quiddityBorders(f, row, leftStart, extent); err != nil {
		return nil, err
	}
	if o.Width > 0 && o.RowCount > 0 {
		if err = quidditySweep(f, leftStart, extent); err != nil {
			return nil, err
		}
	}

	return &Frieze{
		Kind:     Quiddity,
		Seed:     append([]numeric.Value(nil), row...),
		Lattice:  f.l,
		Width:    o.Width,
		Rows:     o.RowCount,
		Warnings: warnings,
	}, nil
}

func quiddityBorders(f *filler, row []numeric.Value, leftStart, extent int) error {
	zero, one := numeric.Zero(), numeric.One()
	for k := 0; k <= extent-2; k++ {
		if err := f.put(lattice.At(k, k), zero); err != nil {
			return err
		}
	}
	for k := 1; k <= extent-1; k++ {
		if err := f.putPair(lattice.At(k, k-1), one); err != nil {
			return err
		}
	}
	n := len(row)
	for k := 0; k <= extent-3; k++ {
		if err := f.putPair(lattice.At(k, k+2), row[(k+leftStart)%n]); err != nil {
			return err
		}
	}

	return nil
}

func quidditySweep(f *filler, leftStart, extent int) error {
	for r := 3; r <= extent-leftStart-2; r++ {
		for _, side := range [...]orientation{upper, lower} {
			if err := quiddityAntidiagonal(f, side, r, extent); err != nil {
				return err
			}
		}

		anchor, ok := f.l.Lookup(lower(leftStart, r))
		if !ok || anchor.Cmp(numeric.One()) < 0 {
			break
		}
	}

	return nil
}

// quiddityAntidiagonal fills offset r on one side, stopping at the first
// cell whose divisor is below 1 or whose inputs lie past an earlier stop.
func quiddityAntidiagonal(f *filler, side orientation, r, extent int) error {
	for k := 0; k < extent-r; k++ {
		target := side(k, r)
		div, okDiv, err := f.ingredient(side(k+1, r-2), r-2)
		if err != nil {
			return err
		}
		if !okDiv || div.Cmp(numeric.One()) < 0 {
			return nil
		}
		x, okX, err := f.ingredient(side(k, r-1), r-1)
		if err != nil {
			return err
		}
		y, okY, err := f.ingredient(side(k+1, r-1), r-1)
		if err != nil {
			return err
		}
		if !okX || !okY {
			return nil
		}

		v, err := f.unimodular(target, x, y, div, minusOne)
		if err != nil {
			return err
		}
		if err = f.put(target, v); err != nil {
			return err
		}
	}

	return nil
}

// ingredient reads a recurrence input at the given offset. Border cells
// (offset < 3) must exist. A derived cell may be missing only because an
// earlier antidiagonal stopped short of it; ok is then false.
func (f *filler) ingredient(c lattice.Coord, offset int) (numeric.Value, bool, error) {
	if offset < 3 {
		v, err := f.get(c)

		return v, err == nil, err
	}
	v, ok := f.l.Lookup(c)

	return v, ok, nil
}
