package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wsp/core"
	"github.com/katalvlaran/wsp/result"
	"github.com/katalvlaran/wsp/solver"
)

func fullAuth(numUsers, numSteps int) [][]bool {
	auth := make([][]bool, numUsers)
	for u := range auth {
		row := make([]bool, numSteps)
		for s := range row {
			row[s] = true
		}
		auth[u] = row
	}

	return auth
}

func TestSolver_SatRoundTrip(t *testing.T) {
	inst, err := core.NewInstance(2, 2, fullAuth(2, 2), []core.Constraint{core.NewSeparationOfDuty(0, 0, 1)})
	require.NoError(t, err)

	s, err := solver.New(inst, solver.Options{})
	require.NoError(t, err)

	report := s.Build()
	require.True(t, report.Feasible)

	res := s.Solve()
	require.Equal(t, result.StatusSat, res.Status)
	assert.NotEqual(t, res.Assignment[0], res.Assignment[1])

	unique, err := s.CheckUnique(res.Assignment)
	require.NoError(t, err)
	assert.Equal(t, result.UniqueFalse, unique)
}

func TestSolver_StaticUnsatShortCircuits(t *testing.T) {
	auth := [][]bool{{false, true}}
	inst, err := core.NewInstance(2, 1, auth, nil)
	require.NoError(t, err)

	s, err := solver.New(inst, solver.Options{})
	require.NoError(t, err)

	report := s.Build()
	require.False(t, report.Feasible)

	res := s.Solve()
	assert.Equal(t, result.StatusUnsat, res.Status)
	require.NotEmpty(t, res.Conflicts)
}

func TestSolver_BuildRequiredBeforeSolve(t *testing.T) {
	inst, err := core.NewInstance(1, 1, fullAuth(1, 1), nil)
	require.NoError(t, err)

	s, err := solver.New(inst, solver.Options{})
	require.NoError(t, err)

	res := s.Solve()
	assert.Equal(t, result.StatusError, res.Status)
}

func TestSolver_UnknownBackend(t *testing.T) {
	inst, err := core.NewInstance(1, 1, fullAuth(1, 1), nil)
	require.NoError(t, err)

	_, err = solver.New(inst, solver.Options{Backend: "does-not-exist"})
	require.Error(t, err)
	assert.ErrorIs(t, err, solver.ErrUnknownBackend)
}

func TestSolver_ActiveConstraintSubset(t *testing.T) {
	auth := [][]bool{{true, false}, {false, true}}
	inst, err := core.NewInstance(2, 2, auth, []core.Constraint{core.NewBindingOfDuty(0, 0, 1)})
	require.NoError(t, err)

	s, err := solver.New(inst, solver.Options{Active: []core.Kind{}})
	require.NoError(t, err)

	report := s.Build()
	_ = report // the analyzer also skips the inactive BoD constraint

	res := s.Solve()
	require.Equal(t, result.StatusSat, res.Status)
}
