package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pathdoku",
		Short:         "Sudoku solving by disjoint digit paths",
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCommand())
	root.AddCommand(newServeCommand())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
