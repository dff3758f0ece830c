package main

import (
	"github.com/gingerrexayers/mdcheck-go/internal/mdcheck/commands"
	"github.com/gingerrexayers/mdcheck-go/internal/mdcheck/lib"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewGenCommand creates the 'gen' command, which writes a manifest for a tree.
func NewGenCommand(runner *commands.Runner) *cobra.Command {
	var opts commands.GenerateOptions

	cmd := &cobra.Command{
		Use:   "gen <directory>",
		Short: "Generate an MD5 manifest for a directory tree.",
		Long: `Walks the directory recursively and writes one "<digest> *<path>" line per
file, with paths relative to the directory. Patterns in the directory's
` + lib.IgnoreFilename + ` file and --exclude flags leave matching paths out.
Files that cannot be read are reported and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return failIf(runner.Generate(args[0], opts))
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "The manifest file to write (defaults to <directory name>"+lib.ManifestExtension+")")
	addExcludeFlag(cmd.Flags(), &opts.Excludes)

	return cmd
}

// addExcludeFlag registers the repeatable --exclude pattern flag.
func addExcludeFlag(flags *pflag.FlagSet, excludes *[]string) {
	flags.StringArrayVar(excludes, "exclude", nil, "A gitignore-style pattern to leave out (repeatable)")
}
