package backend_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wsp/backend"
	"github.com/katalvlaran/wsp/core"
	"github.com/katalvlaran/wsp/result"
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

func TestSolve_SeparationOfDuty(t *testing.T) {
	inst, err := core.NewInstance(2, 2, fullAuth(2, 2), []core.Constraint{core.NewSeparationOfDuty(0, 0, 1)})
	require.NoError(t, err)

	a, found, err := backend.Solve(inst, nil, time.Time{}, false)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotEqual(t, a[0], a[1])
}

func TestSolve_BindingOfDuty(t *testing.T) {
	inst, err := core.NewInstance(2, 2, fullAuth(2, 2), []core.Constraint{core.NewBindingOfDuty(0, 0, 1)})
	require.NoError(t, err)

	a, found, err := backend.Solve(inst, nil, time.Time{}, false)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, a[0], a[1])
}

func TestSolve_Unsat(t *testing.T) {
	auth := [][]bool{{true, false}, {false, true}}
	inst, err := core.NewInstance(2, 2, auth, []core.Constraint{core.NewBindingOfDuty(0, 0, 1)})
	require.NoError(t, err)

	_, found, err := backend.Solve(inst, nil, time.Time{}, false)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSolve_AtMostK(t *testing.T) {
	inst, err := core.NewInstance(4, 2, fullAuth(2, 4), []core.Constraint{core.NewAtMostK(0, 2, []int{0, 1, 2, 3})})
	require.NoError(t, err)

	a, found, err := backend.Solve(inst, nil, time.Time{}, false)
	require.NoError(t, err)
	require.True(t, found)
	counts := map[int]int{}
	for _, u := range a {
		counts[u]++
	}
	for _, c := range counts {
		assert.LessOrEqual(t, c, 2)
	}
}

func TestSolve_OneTeam(t *testing.T) {
	inst, err := core.NewInstance(2, 3, fullAuth(3, 2), []core.Constraint{core.NewOneTeam(0, []int{0, 1}, [][]int{{0, 1}, {2}})})
	require.NoError(t, err)

	a, found, err := backend.Solve(inst, nil, time.Time{}, false)
	require.NoError(t, err)
	require.True(t, found)
	inTeamA := (a[0] == 0 || a[0] == 1) && (a[1] == 0 || a[1] == 1)
	inTeamB := a[0] == 2 && a[1] == 2
	assert.True(t, inTeamA || inTeamB)
}

func TestSolve_SuperUserAtLeast(t *testing.T) {
	inst, err := core.NewInstance(2, 3, fullAuth(3, 2), []core.Constraint{core.NewSuperUserAtLeast(0, []int{0, 1}, 1, []int{2})})
	require.NoError(t, err)

	a, found, err := backend.Solve(inst, nil, time.Time{}, false)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, a[0] == 2 || a[1] == 2 || a[0] != a[1])
}

func TestSolve_AssignmentDependent(t *testing.T) {
	inst, err := core.NewInstance(2, 2, fullAuth(2, 2), []core.Constraint{core.NewAssignmentDependent(0, 0, 1, []int{0}, []int{1})})
	require.NoError(t, err)

	a, found, err := backend.Solve(inst, nil, time.Time{}, false)
	require.NoError(t, err)
	require.True(t, found)
	if a[0] == 0 {
		assert.Equal(t, 1, a[1])
	}
}

func TestSolve_ActiveConstraintToggleOff(t *testing.T) {
	auth := [][]bool{{true, false}, {false, true}}
	inst, err := core.NewInstance(2, 2, auth, []core.Constraint{core.NewBindingOfDuty(0, 0, 1)})
	require.NoError(t, err)

	active := map[core.Kind]bool{core.KindBindingOfDuty: false}
	_, found, err := backend.Solve(inst, active, time.Time{}, false)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestCheckUnique(t *testing.T) {
	inst, err := core.NewInstance(1, 2, fullAuth(2, 1), nil)
	require.NoError(t, err)

	a, found, err := backend.Solve(inst, nil, time.Time{}, false)
	require.NoError(t, err)
	require.True(t, found)

	unique, err := backend.CheckUnique(inst, nil, a, time.Time{}, false)
	require.NoError(t, err)
	assert.Equal(t, result.UniqueFalse, unique)
}

func TestCheckUnique_TrueWhenForced(t *testing.T) {
	auth := [][]bool{{true, false}, {false, true}}
	inst, err := core.NewInstance(2, 2, auth, nil)
	require.NoError(t, err)

	a, found, err := backend.Solve(inst, nil, time.Time{}, false)
	require.NoError(t, err)
	require.True(t, found)

	unique, err := backend.CheckUnique(inst, nil, a, time.Time{}, false)
	require.NoError(t, err)
	assert.Equal(t, result.UniqueTrue, unique)
}

func TestSolve_Timeout(t *testing.T) {
	inst, err := core.NewInstance(1, 2, fullAuth(2, 1), nil)
	require.NoError(t, err)

	_, _, err = backend.Solve(inst, nil, time.Now().Add(-time.Second), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.ErrTimeout)
}
