// Command wspsolve is the CLI for the workflow satisfiability solver:
// `wspsolve solve <instance-path> <result-path>`. It
// selects a default back-end, enables every constraint family, logs via
// go.uber.org/zap (the theRebelliousNerd-codenerd pattern: a package-
// level *zap.Logger built in PersistentPreRunE, synced in
// PersistentPostRun), and exits 0 for a completed decision (Sat/Unsat),
// non-zero for Error.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if exitCode == 0 {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}
