package frieze

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Defaults of the demonstration printer.
const (
	// DefaultWidth is the number of columns handed to the renderer.
	DefaultWidth = 5

	// DefaultRowCount is the number of frieze rows (counting the 0 and 1 rows).
	DefaultRowCount = 4

	// DefaultLeftStart puts row[0] at (0,2).
	DefaultLeftStart = 0
)

// Options configures both builders.
//
// Fields:
//   - Width    : columns to build and render; 0 builds the borders only.
//   - LeftStart: rotation of the quiddity row: (k,k+2) holds
//     row[(k+LeftStart) mod n]. Negative values are normalised mod n.
//     Ignored by BuildDiagonal.
//   - RowCount : frieze rows to build for quiddity seeds; 0 builds the
//     borders only. BuildDiagonal derives its own row count (len(seed)+4).
//   - Strict   : abort with ErrInvalidSeed on the first seed-check failure
//     instead of warning and continuing.
//   - Logger   : receives seed warnings. The zero Logger discards them.
//
// Example:
//
//	opts := frieze.DefaultOptions()
//	opts.Width = 8
//	opts.Strict = true
//	f, err := frieze.BuildQuiddity(row, &opts)
type Options struct {
	Width     int
	LeftStart int
	RowCount  int
	Strict    bool
	Logger    zerolog.Logger
}

// DefaultOptions returns Width=5, LeftStart=0, RowCount=4, Strict=false and
// the global zerolog logger.
func DefaultOptions() Options {
	return Options{
		Width:     DefaultWidth,
		LeftStart: DefaultLeftStart,
		RowCount:  DefaultRowCount,
		Strict:    false,
		Logger:    log.Logger,
	}
}

// resolve applies defaults for a nil pointer and validates the result.
func resolve(opts *Options) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	if opts.Width < 0 {
		return Options{}, fmt.Errorf("Width=%d: %w", opts.Width, ErrBadOptions)
	}
	if opts.RowCount < 0 {
		return Options{}, fmt.Errorf("RowCount=%d: %w", opts.RowCount, ErrBadOptions)
	}

	return *opts, nil
}
