package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wsp/constraint"
	"github.com/katalvlaran/wsp/core"
)

func auth2x2(full bool) [][]bool {
	return [][]bool{
		{full, full},
		{full, full},
	}
}

func TestFeasibility_SoD(t *testing.T) {
	auth := [][]bool{{true, true}, {false, false}} // only u0 is authorized, for both steps
	inst, err := core.NewInstance(2, 2, auth, nil)
	require.NoError(t, err)

	ok, reasons := constraint.Feasibility(inst, core.NewSeparationOfDuty(0, 0, 1))
	assert.False(t, ok)
	assert.NotEmpty(t, reasons)
}

func TestFeasibility_BoD(t *testing.T) {
	auth := [][]bool{{true, false}, {false, true}}
	inst, err := core.NewInstance(2, 2, auth, nil)
	require.NoError(t, err)

	ok, reasons := constraint.Feasibility(inst, core.NewBindingOfDuty(0, 0, 1))
	assert.False(t, ok)
	assert.Contains(t, reasons[0], "no user authorized for both")
}

func TestVerify_SoDAndBoD(t *testing.T) {
	auth := auth2x2(true)
	inst, err := core.NewInstance(2, 2, auth, nil)
	require.NoError(t, err)

	sod := core.NewSeparationOfDuty(0, 0, 1)
	violations := constraint.Verify(inst, sod, core.Assignment{0, 0})
	assert.Len(t, violations, 1)

	violations = constraint.Verify(inst, sod, core.Assignment{0, 1})
	assert.Empty(t, violations)

	bod := core.NewBindingOfDuty(1, 0, 1)
	violations = constraint.Verify(inst, bod, core.Assignment{0, 1})
	assert.Len(t, violations, 1)
	violations = constraint.Verify(inst, bod, core.Assignment{0, 0})
	assert.Empty(t, violations)
}

func TestVerify_AtMostK(t *testing.T) {
	auth := [][]bool{{true, true, true, true}, {true, true, true, true}}
	inst, err := core.NewInstance(4, 2, auth, nil)
	require.NoError(t, err)

	c := core.NewAtMostK(0, 2, []int{0, 1, 2, 3})
	violations := constraint.Verify(inst, c, core.Assignment{0, 0, 0, 1})
	assert.Len(t, violations, 1)

	violations = constraint.Verify(inst, c, core.Assignment{0, 0, 1, 1})
	assert.Empty(t, violations)
}

func TestVerify_OneTeam(t *testing.T) {
	auth := [][]bool{{true, true}, {true, true}, {true, true}}
	inst, err := core.NewInstance(2, 3, auth, nil)
	require.NoError(t, err)

	c := core.NewOneTeam(0, []int{0, 1}, [][]int{{0, 1}, {2}})
	violations := constraint.Verify(inst, c, core.Assignment{0, 1})
	assert.Empty(t, violations)

	violations = constraint.Verify(inst, c, core.Assignment{0, 2})
	assert.Len(t, violations, 1)
}

func TestVerify_SUAL(t *testing.T) {
	auth := [][]bool{{true, true, true}, {true, true, true}, {true, true, true}}
	inst, err := core.NewInstance(3, 3, auth, nil)
	require.NoError(t, err)

	c := core.NewSuperUserAtLeast(0, []int{0, 1, 2}, 1, []int{2})
	violations := constraint.Verify(inst, c, core.Assignment{2, 2, 2})
	assert.Empty(t, violations)

	violations = constraint.Verify(inst, c, core.Assignment{0, 0, 0})
	assert.Len(t, violations, 1)
}

func TestVerify_AssignmentDependent(t *testing.T) {
	auth := auth2x2(true)
	inst, err := core.NewInstance(2, 2, auth, nil)
	require.NoError(t, err)

	c := core.NewAssignmentDependent(0, 0, 1, []int{0}, []int{1})
	violations := constraint.Verify(inst, c, core.Assignment{0, 1})
	assert.Empty(t, violations)

	violations = constraint.Verify(inst, c, core.Assignment{0, 0})
	assert.Len(t, violations, 1)

	violations = constraint.Verify(inst, c, core.Assignment{1, 0})
	assert.Empty(t, violations, "source condition not triggered")
}

func TestVerifyAuthorization(t *testing.T) {
	auth := [][]bool{{true, false}, {false, true}}
	inst, err := core.NewInstance(2, 2, auth, nil)
	require.NoError(t, err)

	violations := constraint.VerifyAuthorization(inst, core.Assignment{0, 1})
	assert.Empty(t, violations)

	violations = constraint.VerifyAuthorization(inst, core.Assignment{1, 1})
	assert.Len(t, violations, 1)
}
