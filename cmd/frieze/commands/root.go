// Package commands holds the cobra command tree of the frieze CLI.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// Execute runs the root command.
func Execute(ctx context.Context, version, commit string) error {
	return NewRootCommand(version, commit).ExecuteContext(ctx)
}

// NewRootCommand assembles the command tree.
func NewRootCommand(version, commit string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "frieze",
		Short: "Build arithmetic frieze patterns",
		Long: `frieze computes Coxeter-Conway frieze patterns with exact arithmetic.

A frieze is grown either from one period of its quiddity row (a finite,
periodic frieze) or from one of its diagonals (an infinite frieze). Seeds
are checked first; a failing check is logged as a warning unless --strict
is given, in which case the command fails.

Seed values may be integers, fractions or square-root terms:
  1   3/2   sqrt(2)   1+sqrt(5)`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newQuiddityCommand())
	rootCmd.AddCommand(newDiagonalCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newRenderCommand())

	return rootCmd
}
