package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/frieze/frieze"
)

func newCheckCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <quiddity|diagonal> <entry>...",
		Short: "Check whether a seed generates a positive integer frieze",
		Long: `Check runs the seed test without building the frieze.

Quiddity rows get the determinant test on one period; diagonals get the
local divisibility test on every consecutive triple. The command prints
"ok" or one line per failed check.`,
		Example: `  frieze check quid 1 3 1 2 2
  frieze check diag 1 3 1 --strict`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := frieze.ParseSeedKind(args[0])
			if err != nil {
				return err
			}
			seed, err := frieze.ParseSeed(args[1:])
			if err != nil {
				return err
			}

			var warnings []frieze.SeedWarning
			switch kind {
			case frieze.Quiddity:
				warnings, err = frieze.CheckQuiddity(seed)
			default:
				warnings, err = frieze.CheckDiagonal(seed)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(warnings) == 0 {
				_, err = fmt.Fprintln(out, "ok")

				return err
			}
			for _, w := range warnings {
				if _, err = fmt.Fprintln(out, w.Error()); err != nil {
					return err
				}
			}
			if strict {
				return warnings[0]
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when a check fails")

	return cmd
}
