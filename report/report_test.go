package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wsp/core"
	"github.com/katalvlaran/wsp/report"
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

func TestHuman_Sat(t *testing.T) {
	inst, err := core.NewInstance(2, 2, fullAuth(2, 2), []core.Constraint{core.NewSeparationOfDuty(0, 0, 1)})
	require.NoError(t, err)

	res := result.Sat("backtracking", 5*time.Millisecond, core.Assignment{0, 1}, result.UniqueTrue)
	build := solver.BuildReport{Feasible: true}

	out := report.Human(inst, build, res)
	assert.Contains(t, out, "SAT")
	assert.Contains(t, out, "Step 1: User 1")
	assert.Contains(t, out, "Step 2: User 2")
	assert.Contains(t, out, "Separation-of-duty")
}

func TestHuman_Unsat(t *testing.T) {
	inst, err := core.NewInstance(2, 2, fullAuth(2, 2), nil)
	require.NoError(t, err)

	res := result.Unsat("backtracking", 0, "no authorized user", []result.Conflict{{Rule: "NoAuthorizedUser", Message: "step s1 has no authorized user"}})
	build := solver.BuildReport{Feasible: false, Conflicts: res.Conflicts}

	out := report.Human(inst, build, res)
	assert.Contains(t, out, "UNSAT")
	assert.Contains(t, out, "no authorized user")
	assert.Contains(t, out, "NoAuthorizedUser")
}

func TestMachine_Sat(t *testing.T) {
	res := result.Sat("backtracking", 0, core.Assignment{1, 0}, result.UniqueUnknown)
	out := report.Machine(res)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "s1 u2", lines[0])
	assert.Equal(t, "s2 u1", lines[1])
}

func TestMachine_NonSatIsEmpty(t *testing.T) {
	res := result.Unsat("backtracking", 0, "x", nil)
	assert.Empty(t, report.Machine(res))
}
