package solver

import (
	"fmt"
	"time"

	"github.com/katalvlaran/wsp/analyzer"
	"github.com/katalvlaran/wsp/constraint"
	"github.com/katalvlaran/wsp/core"
	"github.com/katalvlaran/wsp/result"
)

// BuildReport is the outcome of Solver.Build: the static feasibility
// verdict from package analyzer, made available to a caller (and to
// package report) before any search runs.
type BuildReport struct {
	Feasible  bool
	Conflicts []result.Conflict
}

// Solver runs Build, Solve and CheckUnique in that order over one
// Instance and one active-constraint set.
type Solver struct {
	inst *core.Instance
	opts Options

	built bool
	build BuildReport
}

// New constructs a Solver, normalizing opts in place.
func New(inst *core.Instance, opts Options) (*Solver, error) {
	opts.normalize()
	if _, ok := registry[opts.Backend]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}

	return &Solver{inst: inst, opts: opts}, nil
}

// Build runs the static feasibility analysis. It never searches and
// always returns promptly.
func (s *Solver) Build() BuildReport {
	feasible, conflicts := analyzer.AnalyzeActive(s.inst, s.opts.activeSet())
	s.build = BuildReport{Feasible: feasible, Conflicts: conflicts}
	s.built = true
	if s.opts.Progress.OnBuildDone != nil {
		s.opts.Progress.OnBuildDone(feasible, len(conflicts))
	}

	return s.build
}

func (s *Solver) deadline() (time.Time, bool) {
	if dl, ok := s.opts.Ctx.Deadline(); ok {
		return dl, true
	}
	if !s.opts.Deadline.IsZero() {
		return s.opts.Deadline, true
	}

	return time.Time{}, false
}

// Solve runs the registered back-end's exhaustive search and returns a
// fully classified Result. Static infeasibility detected by Build
// short-circuits the search entirely -- an Unsat Result is returned
// directly, citing Build's conflicts, since the back-end cannot do better
// than a hard static conflict already ruled out.
//
// A Sat verdict from the back-end is never trusted blindly: every active
// constraint is re-verified against the returned Assignment, and any
// violation is surfaced as a StatusError result instead of ever letting
// an internally inconsistent assignment reach a caller tagged Sat.
func (s *Solver) Solve() result.Result {
	if !s.built {
		return result.Error(s.opts.Backend, 0, ErrBuildRequired.Error())
	}
	if !s.build.Feasible {
		return result.Unsat(s.opts.Backend, 0, "static analysis found a hard conflict", s.build.Conflicts)
	}

	entry := registry[s.opts.Backend]
	active := s.opts.activeSet()
	dl, hasDeadline := s.deadline()

	start := time.Now()
	assignment, found, err := entry.solve(s.inst, active, dl, hasDeadline)
	elapsed := time.Since(start)

	if s.opts.Progress.OnSolveDone != nil {
		defer func() {
			status := "SAT"
			if err != nil {
				status = "ERROR"
			} else if !found {
				status = "UNSAT"
			}
			s.opts.Progress.OnSolveDone(status, elapsed)
		}()
	}

	if err != nil {
		return result.Error(s.opts.Backend, elapsed, err.Error())
	}
	if !found {
		return result.Unsat(s.opts.Backend, elapsed, "exhaustive search found no satisfying assignment", nil)
	}

	if violations := s.verify(assignment); len(violations) > 0 {
		res := result.Error(s.opts.Backend, elapsed, "internal inconsistency: back-end assignment fails verification")
		res.Violations = violations

		return res
	}

	return result.Sat(s.opts.Backend, elapsed, assignment, result.UniqueUnknown)
}

// CheckUnique runs the blocking-clause-style second search for a Sat
// Result's Assignment and returns the tri-state uniqueness verdict.
func (s *Solver) CheckUnique(first core.Assignment) (result.Unique, error) {
	entry := registry[s.opts.Backend]
	active := s.opts.activeSet()
	dl, hasDeadline := s.deadline()

	return entry.unique(s.inst, active, first, dl, hasDeadline)
}

func (s *Solver) verify(a core.Assignment) []result.Violation {
	var out []result.Violation
	active := s.opts.activeSet()
	isActive := func(k core.Kind) bool {
		if active == nil {
			return true
		}

		return active[k]
	}

	out = append(out, constraint.VerifyAuthorization(s.inst, a)...)
	for _, c := range s.inst.Constraints() {
		if !isActive(c.Kind()) {
			continue
		}
		out = append(out, constraint.Verify(s.inst, c, a)...)
	}

	return out
}
