package lattice

import (
	"errors"
	"fmt"
)

// Sentinel errors for lattice operations.
var (
	// ErrDuplicateAssignment indicates a second write to an occupied coordinate.
	ErrDuplicateAssignment = errors.New("lattice: coordinate already assigned")

	// ErrMissingEntry indicates a read of a coordinate that was never assigned.
	ErrMissingEntry = errors.New("lattice: coordinate not assigned")
)

// latticeErrorf tags err with the method name and the offending coordinate.
func latticeErrorf(method string, c Coord, err error) error {
	return fmt.Errorf("Lattice.%s%v: %w", method, c, err)
}
