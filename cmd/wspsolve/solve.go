package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wsp/parser"
	"github.com/katalvlaran/wsp/report"
	"github.com/katalvlaran/wsp/result"
	"github.com/katalvlaran/wsp/solver"
)

var flagDeadline time.Duration

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <instance-path> <result-path>",
		Short: "Solve a workflow satisfiability instance and write the result report",
		Args:  cobra.ExactArgs(2),
		RunE:  runSolve,
	}
	cmd.Flags().DurationVar(&flagDeadline, "deadline", 0, "wall-clock budget for the search (0 = no deadline)")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	instancePath, resultPath := args[0], args[1]

	inst, err := parser.ParseFile(instancePath)
	if err != nil {
		logger.Error("failed to parse instance", zap.String("path", instancePath), zap.Error(err))
		exitCode = 2

		return fmt.Errorf("parse %s: %w", instancePath, err)
	}

	opts := solver.Options{}
	if flagDeadline > 0 {
		opts.Deadline = time.Now().Add(flagDeadline)
	}

	s, err := solver.New(inst, opts)
	if err != nil {
		exitCode = 2

		return err
	}

	build := s.Build()
	logger.Info("build complete", zap.Bool("feasible", build.Feasible), zap.Int("conflicts", len(build.Conflicts)))

	res := s.Solve()
	if res.Status == result.StatusSat {
		unique, uerr := s.CheckUnique(res.Assignment)
		if uerr == nil {
			res.Unique = unique
		} else {
			logger.Warn("uniqueness check failed", zap.Error(uerr))
		}
	}

	logger.Info("solve complete", zap.String("status", res.Status.String()), zap.Duration("time", res.SolveTime))

	if err := os.WriteFile(resultPath, []byte(report.Human(inst, build, res)), 0o644); err != nil {
		exitCode = 2

		return fmt.Errorf("write %s: %w", resultPath, err)
	}
	if res.Status == result.StatusSat {
		if err := os.WriteFile(resultPath+".map", []byte(report.Machine(res)), 0o644); err != nil {
			exitCode = 2

			return fmt.Errorf("write %s.map: %w", resultPath, err)
		}
	}

	switch res.Status {
	case result.StatusSat, result.StatusUnsat:
		exitCode = 0
	default:
		exitCode = 1
	}

	return nil
}
