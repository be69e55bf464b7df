package frieze

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/frieze/lattice"
	"github.com/katalvlaran/frieze/numeric"
	"github.com/katalvlaran/frieze/render"
)

// SeedKind selects the builder.
type SeedKind int

const (
	// Quiddity seeds are one period of a quiddity row.
	Quiddity SeedKind = iota

	// Diagonal seeds are one diagonal of a frieze, borders excluded.
	Diagonal
)

// String returns the canonical kind name.
func (k SeedKind) String() string {
	switch k {
	case Quiddity:
		return "quiddity"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("SeedKind(%d)", int(k))
	}
}

// ParseSeedKind accepts "quid", "quiddity", "diag", "diagonal" and the
// legacy misspelling "diaganol", case-insensitively.
func ParseSeedKind(s string) (SeedKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quid", "quiddity":
		return Quiddity, nil
	case "diag", "diagonal", "diaganol":
		return Diagonal, nil
	default:
		return 0, fmt.Errorf("ParseSeedKind(%q): %w", s, ErrUnknownSeedKind)
	}
}

// SeedWarning describes one failed seed check. It is an error that matches
// ErrInvalidSeed, so Strict builds return it directly.
type SeedWarning struct {
	Kind   SeedKind
	Index  int // offending seed index; -1 when the whole row fails
	Reason string
}

// Error implements error.
func (w SeedWarning) Error() string {
	if w.Index < 0 {
		return fmt.Sprintf("%s seed: %s", w.Kind, w.Reason)
	}

	return fmt.Sprintf("%s seed, position %d: %s", w.Kind, w.Index, w.Reason)
}

// Unwrap lets errors.Is(w, ErrInvalidSeed) succeed.
func (w SeedWarning) Unwrap() error { return ErrInvalidSeed }

// Frieze is a populated lattice together with the parameters it was built
// with. Treat it as read-only.
type Frieze struct {
	Kind     SeedKind
	Seed     []numeric.Value
	Lattice  *lattice.Lattice
	Width    int // columns to render
	Rows     int // rows to render, counting the 0 and 1 rows
	Warnings []SeedWarning
}

// Valid reports whether the seed passed its checks.
func (f *Frieze) Valid() bool { return len(f.Warnings) == 0 }

// Grid returns the rendered rows; see render.Rows.
func (f *Frieze) Grid() [][]numeric.Value {
	return render.Rows(f.Lattice, f.Width, f.Rows)
}

// String renders the frieze as a staircase text grid.
func (f *Frieze) String() string {
	return render.Text(f.Lattice, f.Width, f.Rows)
}
