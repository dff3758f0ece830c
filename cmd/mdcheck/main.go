package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gingerrexayers/mdcheck-go/internal/mdcheck/commands"
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the CLI. The runner's streams are shared by every
// subcommand.
func NewRootCommand(runner *commands.Runner) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "mdcheck",
		Short: "Compute and verify MD5 checksums for files and directory trees.",
		Example: `  mdcheck calc file.txt
  mdcheck verify file.txt d41d8cd98f00b204e9800998ecf8427e
  mdcheck gen ./directory
  mdcheck check checksums.md5`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(runner.Err, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
	}
	rootCmd.SetOut(runner.Out)
	rootCmd.SetErr(runner.Err)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug tracing to stderr")

	// Add commands
	rootCmd.AddCommand(NewCalcCommand(runner))
	rootCmd.AddCommand(NewVerifyCommand(runner))
	rootCmd.AddCommand(NewGenCommand(runner))
	rootCmd.AddCommand(NewCheckCommand(runner))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// failIf converts an operation's boolean outcome into the error cobra needs to
// make the process exit non-zero.
func failIf(ok bool) error {
	if !ok {
		return commands.ErrFailed
	}
	return nil
}

// run executes the CLI with args. Failures that operations have not already
// reported are written to the runner's error stream.
func run(runner *commands.Runner, args []string) error {
	rootCmd := NewRootCommand(runner)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, commands.ErrFailed) {
		fmt.Fprintln(runner.Err, "Error:", err)
	}
	return err
}

func main() {
	if err := run(commands.NewRunner(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
