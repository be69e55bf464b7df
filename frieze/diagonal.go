package frieze

import (
	"github.com/katalvlaran/frieze/lattice"
	"github.com/katalvlaran/frieze/numeric"
)

const opBuildDiagonal = "BuildDiagonal"

// BuildDiagonal fills a lattice from one diagonal of an infinite frieze.
//
// The seed is laid along row 0 and column 0, starting at (0,2), so it
// becomes the leftmost diagonal of the rendered frieze:
//
//	(0,0)=0  (0,1)=1  (0,2)=seed[0] ... (0,n+1)=seed[n-1]  (0,n+2)=1  (0,n+3)=0
//
// Implementation:
//   - Stage 1: check the seed (CheckDiagonal); warnings are logged, and
//     under opts.Strict the first one is returned.
//   - Stage 2: with h = n+3 and extent = h+Width-1, write the zero border
//     (k,k) for k in [0,extent], the unit border (k,k±1), the seed pairs and
//     the closing zero border (r,h+r) for r in [1,extent-h].
//   - Stage 3: for r = 1..extent and c = 2..min(h, extent-r+1)-1 compute
//     v(r,r+c) = (v(r,r+c-1)·v(r-1,r+c) + 1) / v(r-1,r+c-1), then its mirror.
//
// Width 0 yields the borders only. Rows of the result is n+4.
//
// Errors:
//   - ErrEmptySeed, ErrBadOptions.
//   - ErrInvalidSeed (as a SeedWarning) when opts.Strict is set.
//   - ErrNonExactDivision at the first cell whose divisor is zero.
//
// Complexity: O(n·(n+Width)) cell evaluations.
func BuildDiagonal(seed []numeric.Value, opts *Options) (*Frieze, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, friezeErrorf(opBuildDiagonal, err)
	}
	n := len(seed)
	if n == 0 {
		return nil, friezeErrorf(opBuildDiagonal, ErrEmptySeed)
	}

	warnings, err := CheckDiagonal(seed)
	if err != nil {
		return nil, friezeErrorf(opBuildDiagonal, err)
	}
	if err = report(o, warnings); err != nil {
		return nil, friezeErrorf(opBuildDiagonal, err)
	}

	h := n + 3
	extent := h + o.Width - 1

	f := newFiller(opBuildDiagonal)
	if err = diagonalBorders(f, seed, h, extent); err != nil {
		return nil, err
	}
	if o.Width > 0 {
		if err = diagonalSweep(f, h, extent); err != nil {
			return nil, err
		}
	}

	return &Frieze{
		Kind:     Diagonal,
		Seed:     append([]numeric.Value(nil), seed...),
		Lattice:  f.l,
		Width:    o.Width,
		Rows:     n + 4,
		Warnings: warnings,
	}, nil
}

func diagonalBorders(f *filler, seed []numeric.Value, h, extent int) error {
	zero, one := numeric.Zero(), numeric.One()
	for k := 0; k <= extent; k++ {
		if err := f.put(lattice.At(k, k), zero); err != nil {
			return err
		}
	}
	if err := f.putPair(lattice.At(0, h), zero); err != nil {
		return err
	}
	for k := 1; k <= extent; k++ {
		if err := f.putPair(lattice.At(k, k-1), one); err != nil {
			return err
		}
	}
	for k, v := range seed {
		if err := f.putPair(lattice.At(0, k+2), v); err != nil {
			return err
		}
	}
	if err := f.putPair(lattice.At(0, h-1), one); err != nil {
		return err
	}
	for r := 1; r <= extent-h; r++ {
		if err := f.putPair(lattice.At(r, h+r), zero); err != nil {
			return err
		}
	}

	return nil
}

func diagonalSweep(f *filler, h, extent int) error {
	for r := 1; r <= extent; r++ {
		end := h
		if extent-r+1 < end {
			end = extent - r + 1
		}
		for _, side := range [...]orientation{upper, lower} {
			for c := 2; c < end; c++ {
				// side(r, c) is (r, r+c) or its mirror; ingredients follow.
				target := side(r, c)
				x, err := f.get(side(r, c-1))
				if err != nil {
					return err
				}
				y, err := f.get(side(r-1, c+1))
				if err != nil {
					return err
				}
				div, err := f.get(side(r-1, c))
				if err != nil {
					return err
				}
				v, err := f.unimodular(target, x, y, div, plusOne)
				if err != nil {
					return err
				}
				if err = f.put(target, v); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
