package main

import (
	"github.com/gingerrexayers/mdcheck-go/internal/mdcheck/commands"
	"github.com/spf13/cobra"
)

// NewCalcCommand creates the 'calc' command, which prints a file's digest.
func NewCalcCommand(runner *commands.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <file>",
		Short: "Print the MD5 digest of a file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return failIf(runner.Calc(args[0]))
		},
	}
}
