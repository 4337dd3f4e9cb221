package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagVerbose bool

	logger *zap.Logger

	// exitCode is set by subcommands before returning; main reads it
	// after Execute returns since cobra's own exit path only covers
	// argument/usage errors, not the solver's own Sat/Unsat/Error tags.
	exitCode int
)

var rootCmd = &cobra.Command{
	Use:           "wspsolve",
	Short:         "Workflow satisfiability problem solver",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if flagVerbose {
			config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		var err error
		logger, err = config.Build()

		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(newSolveCmd())
}
