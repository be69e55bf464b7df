package frieze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/frieze/lattice"
)

// Sentinel errors for frieze construction.
var (
	// ErrEmptySeed indicates a quiddity row or diagonal with no entries.
	ErrEmptySeed = errors.New("frieze: seed must be non-empty")

	// ErrBadOptions indicates negative Width or RowCount.
	ErrBadOptions = errors.New("frieze: invalid options")

	// ErrInvalidSeed is matched by every SeedWarning. Builders return it only
	// when Options.Strict is set.
	ErrInvalidSeed = errors.New("frieze: invalid seed")

	// ErrNonExactDivision indicates a recurrence step whose quotient has no
	// exact value (zero divisor or mixed radicands).
	ErrNonExactDivision = errors.New("frieze: non-exact division")

	// ErrUnknownSeedKind indicates an unrecognised seed kind name.
	ErrUnknownSeedKind = errors.New("frieze: unknown seed kind")
)

// friezeErrorf wraps err with an operation tag.
func friezeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps err with an operation tag and the cell being computed.
func cellErrorf(tag string, c lattice.Coord, err error) error {
	return fmt.Errorf("%s at %v: %w", tag, c, err)
}
