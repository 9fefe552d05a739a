// Package cli implements the silo command tree.
package cli

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"silo/internal/log"
)

// app holds state shared by every subcommand of one invocation.
type app struct {
	logLevel string
	logger   zerolog.Logger
}

// NewRootCommand returns the silo root command writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "silo",
		Short: "silo draws bounded random values and formats collections",
		Long: `silo exposes two small utilities from the command line:
drawing values uniformly between two bounds, and printing a sequence as
"[e1, e2, ..., en]".`,
		SilenceUsage:  true,
		SilenceErrors: true, // Execute logs them
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = log.WithComponent(log.New(log.Config{
				Level:  a.logLevel,
				Output: cmd.ErrOrStderr(),
			}), cmd.Name())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to $"+log.LevelEnv)

	root.AddCommand(
		newRandCommand(a),
		newFmtCommand(a),
		newRangeCommand(a),
	)
	return root
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		// PersistentPreRun may not have run (e.g. unknown flag), so build a logger here.
		l := log.New(log.Config{Output: stderr})
		l.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}
