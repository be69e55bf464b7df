package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/frieze/lattice"
	"github.com/katalvlaran/frieze/numeric"
)

const (
	fieldWidth = 3
	indentStep = 2
)

// Rows collects rows 0..rows-1 of the frieze, each at most width values
// long. A nil lattice or non-positive size yields an empty (non-nil) slice
// of the requested length, clamped at 0.
func Rows(l *lattice.Lattice, width, rows int) [][]numeric.Value {
	if rows < 0 {
		rows = 0
	}
	out := make([][]numeric.Value, rows)
	if l == nil {
		return out
	}
	for r := 0; r < rows; r++ {
		line := make([]numeric.Value, 0, max(width, 0))
		for c := 0; c < width; c++ {
			v, ok := l.Lookup(lattice.At(c, c+r))
			if !ok {
				break
			}
			line = append(line, v)
		}
		out[r] = line
	}

	return out
}

// Text renders Rows as a staircase grid. Lines are joined by "\n" with no
// trailing newline; a row with no values still contributes its indent.
func Text(l *lattice.Lattice, width, rows int) string {
	grid := Rows(l, width, rows)
	lines := make([]string, len(grid))
	for r, row := range grid {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = fmt.Sprintf("%*s", fieldWidth, v.String())
		}
		lines[r] = strings.Repeat(" ", indentStep*r) + strings.Join(fields, " ")
	}

	return strings.Join(lines, "\n")
}

// Matrix renders the full lattice as a dense matrix, one bracketed row per
// line; absent cells print as 0.
func Matrix(l *lattice.Lattice) (string, error) {
	if l == nil {
		return "", nil
	}
	m, err := l.ToMatrix()
	if err != nil {
		return "", fmt.Errorf("render.Matrix: %w", err)
	}

	return m.String(), nil
}
