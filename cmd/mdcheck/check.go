package main

import (
	"github.com/gingerrexayers/mdcheck-go/internal/mdcheck/commands"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the 'check' command, which verifies a manifest.
func NewCheckCommand(runner *commands.Runner) *cobra.Command {
	var opts commands.CheckOptions

	cmd := &cobra.Command{
		Use:   "check <manifest>",
		Short: "Verify every entry of an MD5 manifest.",
		Long: `Reads a manifest and verifies each listed file, reporting every result.
Blank lines and lines starting with '#' are skipped. Relative paths are
resolved against --directory, or the current directory when it is not set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return failIf(runner.Check(args[0], opts))
		},
	}

	cmd.Flags().StringVarP(&opts.BaseDir, "directory", "d", "", "The directory manifest paths are relative to")

	return cmd
}
