package backend

import (
	"errors"
	"time"

	"github.com/katalvlaran/wsp/constraint"
	"github.com/katalvlaran/wsp/core"
	"github.com/katalvlaran/wsp/result"
)

// pickStep selects the next unassigned step by MRV (smallest remaining
// domain), tie-broken by constraint degree (most constraints touching
// it) and then lowest step id, for deterministic, reproducible search
// order. Iterating steps in ascending order and only replacing the
// incumbent on a strictly better score makes the lowest-id tie-break
// automatic.
func (e *engine) pickStep() (int, bool) {
	best, bestSize, bestDegree := -1, -1, -1
	for s := 0; s < e.numSteps; s++ {
		if e.assigned(s) {
			continue
		}
		size := e.domainCount[s]
		degree := len(e.stepConstraints[s])
		if best == -1 || size < bestSize || (size == bestSize && degree > bestDegree) {
			best, bestSize, bestDegree = s, size, degree
		}
	}

	return best, best != -1
}

// deadlineHit polls the wall clock on every node. Unlike lvlath/tsp's
// numeric inner loop (checked every 4096 node events because its per-node
// cost is a handful of float comparisons), each WSP node here already
// does constraint propagation work comparable to a time.Now() call, and
// WSP instances are small enough that a coarser interval could let an
// already-expired deadline go unnoticed for an entire fast search.
func (e *engine) deadlineHit() bool {
	e.nodes++
	if !e.useDeadline {
		return false
	}

	return time.Now().After(e.deadline)
}

// leafOK independently re-verifies a complete assignment against every
// active constraint before the search accepts it: propagation is an
// optimization, this is the soundness backstop.
func (e *engine) leafOK(a core.Assignment) bool {
	for _, c := range e.inst.Constraints() {
		if !e.isActive(c.Kind()) {
			continue
		}
		if len(constraint.Verify(e.inst, c, a)) > 0 {
			return false
		}
	}

	return true
}

func assignmentEquals(a, b core.Assignment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// dfs performs the core recursive search. A nil error with found=false
// means the subtree is exhausted (or, under CheckUnique, every leaf
// reached equals uniqueTarget); a non-nil error is either ErrTimeout or
// the variable manager's internal-inconsistency error, which should never
// happen but is propagated rather than trusted away if it does.
func (e *engine) dfs() (bool, error) {
	if e.deadlineHit() {
		return false, ErrTimeout
	}

	s, ok := e.pickStep()
	if !ok {
		a, err := e.currentAssignment()
		if err != nil {
			return false, err
		}
		if e.uniqueTarget != nil && assignmentEquals(a, e.uniqueTarget) {
			return false, nil
		}
		if e.leafOK(a) {
			e.result = a

			return true, nil
		}

		return false, nil
	}

	for u := 0; u < e.numUsers; u++ {
		if !e.domain[s][u] {
			continue
		}
		mark := e.mark()
		e.assignment[s] = u
		ok := e.propagate(s, u)
		if ok {
			found, err := e.dfs()
			if err != nil {
				e.undo(mark)
				e.assignment[s] = -1

				return false, err
			}
			if found {
				return true, nil
			}
		}
		e.undo(mark)
		e.assignment[s] = -1
	}

	return false, nil
}

// Solve runs the reference backtracking search to completion or deadline.
// A nil error with found=false means the instance is exhaustively unsat
// under the active-constraint set; ErrTimeout means the deadline elapsed
// with no verdict reached.
func Solve(inst *core.Instance, active map[core.Kind]bool, deadline time.Time, useDeadline bool) (core.Assignment, bool, error) {
	e := newEngine(inst, active, deadline, useDeadline)
	found, err := e.dfs()
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	return e.result, true, nil
}

// CheckUnique re-runs the search looking for any satisfying assignment
// other than first, emulating a SAT blocking clause without needing a
// boolean-formula back-end: the search tree is identical to Solve's,
// except a leaf equal to first is rejected and the search continues.
func CheckUnique(inst *core.Instance, active map[core.Kind]bool, first core.Assignment, deadline time.Time, useDeadline bool) (result.Unique, error) {
	e := newEngine(inst, active, deadline, useDeadline)
	e.uniqueTarget = first
	found, err := e.dfs()
	if err != nil {
		if errors.Is(err, ErrTimeout) {
			return result.UniqueUnknown, nil
		}

		return result.UniqueFalse, err
	}
	if found {
		return result.UniqueFalse, nil
	}

	return result.UniqueTrue, nil
}
