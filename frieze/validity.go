package frieze

import (
	"fmt"

	"github.com/katalvlaran/frieze/matrix"
	"github.com/katalvlaran/frieze/numeric"
)

const (
	opCheckQuiddity = "CheckQuiddity"
	opCheckDiagonal = "CheckDiagonal"
)

// CheckQuiddity runs the finite-frieze determinant test on one period of a
// quiddity row q of length n.
//
// Implementation:
//   - Stage 1: build three tridiagonal matrices with unit off-diagonals:
//     A over q[0..n-2], B over q[1..n-1] (A rotated by one step) and
//     C over q[1..n-2] (the reduced form).
//   - Stage 2: require det A = 0, det B = 0, det C = 1.
//
// A failing row yields one SeedWarning with Index -1. The test is necessary
// but not sufficient for every period, so its verdict is advice only; the
// row may still be a subsequence of a longer valid period.
//
// Errors:
//   - ErrEmptySeed for an empty row.
//   - numeric errors when entries mix radicands.
func CheckQuiddity(row []numeric.Value) ([]SeedWarning, error) {
	n := len(row)
	if n == 0 {
		return nil, friezeErrorf(opCheckQuiddity, ErrEmptySeed)
	}

	reducedEnd := n - 1
	if reducedEnd < 1 {
		reducedEnd = 1
	}
	bands := [3][]numeric.Value{row[:n-1], row[1:], row[1:reducedEnd]}
	want := [3]numeric.Value{numeric.Zero(), numeric.Zero(), numeric.One()}

	var dets [3]numeric.Value
	ok := true
	for i, band := range bands {
		m, err := matrix.NewTridiagonal(band, numeric.One())
		if err != nil {
			return nil, friezeErrorf(opCheckQuiddity, err)
		}
		if dets[i], err = matrix.Determinant(m); err != nil {
			return nil, friezeErrorf(opCheckQuiddity, err)
		}
		ok = ok && dets[i].Equal(want[i])
	}
	if ok {
		return nil, nil
	}

	return []SeedWarning{{
		Kind:  Quiddity,
		Index: -1,
		Reason: fmt.Sprintf("determinants (%s, %s, %s), want (0, 0, 1): not the quiddity row of a finite frieze pattern,"+
			" although it could be a subsequence of a periodic quiddity row which does produce one",
			dets[0], dets[1], dets[2]),
	}}, nil
}

// IsValidQuiddity reports whether row passes CheckQuiddity.
func IsValidQuiddity(row []numeric.Value) (bool, error) {
	w, err := CheckQuiddity(row)
	if err != nil {
		return false, err
	}

	return len(w) == 0, nil
}

// CheckDiagonal tests that a diagonal seed can generate a positive integer
// frieze: with the seed padded by 1 on both ends, every consecutive triple
// (a, b, c) needs (a+c)/b to be an integer, since each such quotient is a
// later recurrence division. One SeedWarning is produced per offending seed
// index (the index of b).
func CheckDiagonal(seed []numeric.Value) ([]SeedWarning, error) {
	n := len(seed)
	if n == 0 {
		return nil, friezeErrorf(opCheckDiagonal, ErrEmptySeed)
	}

	padded := make([]numeric.Value, 0, n+2)
	padded = append(padded, numeric.One())
	padded = append(padded, seed...)
	padded = append(padded, numeric.One())

	var warnings []SeedWarning
	for k := 1; k <= n; k++ {
		a, b, c := padded[k-1], padded[k], padded[k+1]
		sum, err := a.Add(c)
		if err != nil {
			return nil, friezeErrorf(opCheckDiagonal, err)
		}
		if b.IsZero() {
			warnings = append(warnings, SeedWarning{Kind: Diagonal, Index: k - 1, Reason: "zero entry"})
			continue
		}
		q, err := sum.Quo(b)
		if err != nil {
			return nil, friezeErrorf(opCheckDiagonal, err)
		}
		if !q.IsInteger() {
			warnings = append(warnings, SeedWarning{
				Kind:   Diagonal,
				Index:  k - 1,
				Reason: fmt.Sprintf("(%s + %s) / %s = %s is not an integer; not the diagonal of a positive integer frieze pattern", a, c, b, q),
			})
		}
	}

	return warnings, nil
}

// report logs every warning and, under Strict, converts the first one into
// the returned error.
func report(opts Options, warnings []SeedWarning) error {
	for _, w := range warnings {
		opts.Logger.Warn().
			Str("kind", w.Kind.String()).
			Int("index", w.Index).
			Str("reason", w.Reason).
			Msg("seed check failed")
	}
	if opts.Strict && len(warnings) > 0 {
		return warnings[0]
	}

	return nil
}
