package constraint

import (
	"fmt"

	"github.com/katalvlaran/wsp/core"
	"github.com/katalvlaran/wsp/result"
)

// Verify independently re-checks one constraint against a complete
// assignment. It never consults how the back-end arrived at the
// assignment; it only looks at the final steps->users mapping and the
// Instance's authorization relation.
func Verify(inst *core.Instance, c core.Constraint, a core.Assignment) []result.Violation {
	switch v := c.(type) {
	case core.SeparationOfDuty:
		return verifySoD(c, v, a)
	case core.BindingOfDuty:
		return verifyBoD(c, v, a)
	case core.AtMostK:
		return verifyAtMostK(c, v, a)
	case core.OneTeam:
		return verifyCoverage(c, v.Steps, v.Teams, a, "one-team")
	case core.SuperUserAtLeast:
		return verifySUAL(c, v, a)
	case core.WangLi:
		return verifyCoverage(c, v.Steps, v.Departments, a, "wang-li")
	case core.AssignmentDependent:
		return verifyAssignmentDependent(c, v, a)
	default:
		return nil
	}
}

// VerifyAuthorization checks the implicit exactly-one-authorized-user
// relation directly against the Instance, since authorization has no
// core.Constraint value of its own.
func VerifyAuthorization(inst *core.Instance, a core.Assignment) []result.Violation {
	var out []result.Violation
	for s, u := range a {
		if !inst.IsAuthorized(u, s) {
			out = append(out, result.Violation{
				Kind:    core.KindAuthorization,
				Message: fmt.Sprintf("authorization: user u%d is not authorized for step s%d", u+1, s+1),
			})
		}
	}

	return out
}

func verifySoD(c core.Constraint, v core.SeparationOfDuty, a core.Assignment) []result.Violation {
	if a[v.S1] == a[v.S2] {
		return []result.Violation{{
			ConstraintID: c.ID(),
			Kind:         core.KindSeparationOfDuty,
			Message:      fmt.Sprintf("separation-of-duty(s%d,s%d): both assigned to u%d", v.S1+1, v.S2+1, a[v.S1]+1),
		}}
	}

	return nil
}

func verifyBoD(c core.Constraint, v core.BindingOfDuty, a core.Assignment) []result.Violation {
	if a[v.S1] != a[v.S2] {
		return []result.Violation{{
			ConstraintID: c.ID(),
			Kind:         core.KindBindingOfDuty,
			Message:      fmt.Sprintf("binding-of-duty(s%d,s%d): assigned to u%d and u%d", v.S1+1, v.S2+1, a[v.S1]+1, a[v.S2]+1),
		}}
	}

	return nil
}

func verifyAtMostK(c core.Constraint, v core.AtMostK, a core.Assignment) []result.Violation {
	counts := make(map[int]int)
	for _, s := range v.Steps {
		counts[a[s]]++
	}
	var out []result.Violation
	for u, n := range counts {
		if n > v.K {
			out = append(out, result.Violation{
				ConstraintID: c.ID(),
				Kind:         core.KindAtMostK,
				Message:      fmt.Sprintf("at-most-k(%d): user u%d assigned to %d of the constrained steps", v.K, u+1, n),
			})
		}
	}

	return out
}

func verifyCoverage(c core.Constraint, steps []int, teams [][]int, a core.Assignment, label string) []result.Violation {
	memberOf := func(u int) bool {
		for _, team := range teams {
			inTeam := false
			for _, m := range team {
				if m == u {
					inTeam = true
					break
				}
			}
			if !inTeam {
				continue
			}
			// team contains u; check every other step's assignee is also in this team
			allIn := true
			for _, s := range steps {
				assignee := a[s]
				found := false
				for _, m := range team {
					if m == assignee {
						found = true
						break
					}
				}
				if !found {
					allIn = false
					break
				}
			}
			if allIn {
				return true
			}
		}

		return false
	}

	if len(steps) == 0 {
		return nil
	}
	if !memberOf(a[steps[0]]) {
		return []result.Violation{{
			ConstraintID: c.ID(),
			Kind:         c.Kind(),
			Message:      fmt.Sprintf("%s: assignees are not all members of a single team/department", label),
		}}
	}

	return nil
}

func verifySUAL(c core.Constraint, v core.SuperUserAtLeast, a core.Assignment) []result.Violation {
	distinct := make(map[int]struct{})
	for _, s := range v.Steps {
		distinct[a[s]] = struct{}{}
	}
	if len(distinct) > v.H {
		return nil
	}
	supers := make(map[int]struct{}, len(v.Supers))
	for _, u := range v.Supers {
		supers[u] = struct{}{}
	}
	for u := range distinct {
		if _, ok := supers[u]; ok {
			return nil
		}
	}

	return []result.Violation{{
		ConstraintID: c.ID(),
		Kind:         core.KindSuperUserAtLeast,
		Message:      fmt.Sprintf("super-user-at-least(h=%d): %d distinct users assigned and none is a super user", v.H, len(distinct)),
	}}
}

func verifyAssignmentDependent(c core.Constraint, v core.AssignmentDependent, a core.Assignment) []result.Violation {
	inSource := false
	for _, u := range v.Source {
		if a[v.S1] == u {
			inSource = true
			break
		}
	}
	if !inSource {
		return nil
	}
	for _, u := range v.Target {
		if a[v.S2] == u {
			return nil
		}
	}

	return []result.Violation{{
		ConstraintID: c.ID(),
		Kind:         core.KindAssignmentDependent,
		Message:      fmt.Sprintf("assignment-dependent(s%d,s%d): s%d's assignee u%d is in source but s%d's assignee u%d is not in target", v.S1+1, v.S2+1, v.S1+1, a[v.S1]+1, v.S2+1, a[v.S2]+1),
	}}
}
