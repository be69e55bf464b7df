package commands

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/frieze/frieze"
	"github.com/katalvlaran/frieze/render"
)

// buildFlags are shared by the quiddity and diagonal commands.
type buildFlags struct {
	width     int
	rows      int
	leftStart int
	strict    bool
	matrix    bool
}

func (f *buildFlags) register(cmd *cobra.Command, kind frieze.SeedKind) {
	cmd.Flags().IntVarP(&f.width, "width", "w", frieze.DefaultWidth, "number of columns to build and print")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "fail instead of warning when the seed check fails")
	cmd.Flags().BoolVar(&f.matrix, "matrix", false, "print the whole lattice as a matrix")
	if kind == frieze.Quiddity {
		cmd.Flags().IntVarP(&f.rows, "rows", "r", frieze.DefaultRowCount, "number of frieze rows, counting the 0 and 1 rows")
		cmd.Flags().IntVarP(&f.leftStart, "leftstart", "l", frieze.DefaultLeftStart, "rotation of the quiddity row")
	}
}

func (f *buildFlags) options() frieze.Options {
	opts := frieze.DefaultOptions()
	opts.Width = f.width
	opts.RowCount = f.rows
	opts.LeftStart = f.leftStart
	opts.Strict = f.strict
	opts.Logger = log.Logger

	return opts
}

func newBuildCommand(kind frieze.SeedKind, use, short, example string) *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Example: example,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := frieze.ParseSeed(args)
			if err != nil {
				return err
			}
			opts := flags.options()
			log.Debug().
				Str("kind", kind.String()).
				Int("width", opts.Width).
				Int("rows", opts.RowCount).
				Int("leftstart", opts.LeftStart).
				Msg("Building frieze")

			f, err := frieze.Build(kind, seed, &opts)
			if err != nil {
				return err
			}

			return printFrieze(cmd.OutOrStdout(), f, flags.matrix)
		},
	}
	flags.register(cmd, kind)

	return cmd
}

func newQuiddityCommand() *cobra.Command {
	return newBuildCommand(frieze.Quiddity,
		"quiddity <entry>...",
		"Build a finite frieze from one period of its quiddity row",
		`  # Pentagon frieze, six rows
  frieze quiddity 1 3 1 2 2 --rows 6

  # Start the row at its second entry
  frieze quiddity 1 3 1 2 2 --leftstart 1`,
	)
}

func newDiagonalCommand() *cobra.Command {
	return newBuildCommand(frieze.Diagonal,
		"diagonal <entry>...",
		"Build an infinite frieze from one of its diagonals",
		`  frieze diagonal 1 2 3 --width 6`,
	)
}

func printFrieze(w io.Writer, f *frieze.Frieze, asMatrix bool) error {
	if asMatrix {
		s, err := render.Matrix(f.Lattice)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)

		return err
	}
	_, err := fmt.Fprintln(w, f)

	return err
}
