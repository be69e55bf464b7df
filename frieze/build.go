package frieze

import (
	"fmt"

	"github.com/katalvlaran/frieze/numeric"
)

// Build dispatches to BuildQuiddity or BuildDiagonal by kind.
func Build(kind SeedKind, seed []numeric.Value, opts *Options) (*Frieze, error) {
	switch kind {
	case Quiddity:
		return BuildQuiddity(seed, opts)
	case Diagonal:
		return BuildDiagonal(seed, opts)
	default:
		return nil, fmt.Errorf("Build(%v): %w", kind, ErrUnknownSeedKind)
	}
}

// BuildNamed parses kind with ParseSeedKind and seed entries with
// numeric.Parse, then calls Build.
func BuildNamed(kind string, seed []string, opts *Options) (*Frieze, error) {
	k, err := ParseSeedKind(kind)
	if err != nil {
		return nil, err
	}
	values, err := ParseSeed(seed)
	if err != nil {
		return nil, err
	}

	return Build(k, values, opts)
}

// ParseSeed parses every entry with numeric.Parse.
func ParseSeed(seed []string) ([]numeric.Value, error) {
	out := make([]numeric.Value, len(seed))
	for i, s := range seed {
		v, err := numeric.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("seed[%d]: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}
