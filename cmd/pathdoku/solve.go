package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/pathdoku/internal/domain"
	"svw.info/pathdoku/internal/paths"
	"svw.info/pathdoku/internal/solver"
)

func newSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <puzzle> [puzzle...]",
		Short: "Solve puzzles given as 81-character strings (digits and '.')",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The universe is puzzle-independent; build it once for the batch.
			s := solver.NewPathSolver(paths.Universe())
			for _, arg := range args {
				b, err := domain.Parse(arg)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "Invalid board format:", err)
					continue
				}
				out, st, err := s.Solve(cmd.Context(), b)
				switch {
				case errors.Is(err, solver.ErrNoSolution):
					fmt.Fprintln(cmd.OutOrStdout(), "No solution found")
				case err != nil:
					return err
				default:
					fmt.Fprintln(cmd.OutOrStdout(), out)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Solution took %v\n", st.Duration)
			}
			return nil
		},
	}
}
