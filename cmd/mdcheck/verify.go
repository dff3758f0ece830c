package main

import (
	"github.com/gingerrexayers/mdcheck-go/internal/mdcheck/commands"
	"github.com/spf13/cobra"
)

// NewVerifyCommand creates the 'verify' command for a single file.
func NewVerifyCommand(runner *commands.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file> <digest>",
		Short: "Verify a file against an expected MD5 digest.",
		Long: `Computes the digest of a file and compares it with the expected value.
The comparison ignores case. Exits non-zero on a mismatch or when the file
cannot be read.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return failIf(runner.Verify(args[0], args[1]))
		},
	}
}
