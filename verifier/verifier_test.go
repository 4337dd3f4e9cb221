package verifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wsp/core"
	"github.com/katalvlaran/wsp/verifier"
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

func TestVerify_CleanAssignment(t *testing.T) {
	inst, err := core.NewInstance(2, 2, fullAuth(2, 2), []core.Constraint{core.NewSeparationOfDuty(0, 0, 1)})
	require.NoError(t, err)

	assert.Empty(t, verifier.Verify(inst, core.Assignment{0, 1}, nil))
}

func TestVerify_CatchesViolation(t *testing.T) {
	inst, err := core.NewInstance(2, 2, fullAuth(2, 2), []core.Constraint{core.NewSeparationOfDuty(0, 0, 1)})
	require.NoError(t, err)

	violations := verifier.Verify(inst, core.Assignment{0, 0}, nil)
	require.Len(t, violations, 1)
	assert.Equal(t, core.KindSeparationOfDuty, violations[0].Kind)
}

func TestVerify_CatchesUnauthorized(t *testing.T) {
	auth := [][]bool{{true, false}, {false, true}}
	inst, err := core.NewInstance(2, 2, auth, nil)
	require.NoError(t, err)

	violations := verifier.Verify(inst, core.Assignment{1, 1}, nil)
	require.Len(t, violations, 1)
	assert.Equal(t, core.KindAuthorization, violations[0].Kind)
}

func TestVerify_InactiveKindIgnored(t *testing.T) {
	inst, err := core.NewInstance(2, 2, fullAuth(2, 2), []core.Constraint{core.NewSeparationOfDuty(0, 0, 1)})
	require.NoError(t, err)

	active := map[core.Kind]bool{core.KindSeparationOfDuty: false}
	assert.Empty(t, verifier.Verify(inst, core.Assignment{0, 0}, active))
}
