package constraint

import (
	"fmt"

	"github.com/katalvlaran/wsp/core"
)

// Feasibility runs the static, polynomial-time check for one constraint.
// It returns ok=true with a nil slice when the constraint cannot be
// statically refuted; otherwise ok=false and one or more human-readable
// reasons naming the rule that failed.
func Feasibility(inst *core.Instance, c core.Constraint) (bool, []string) {
	switch v := c.(type) {
	case core.SeparationOfDuty:
		return feasibilitySoD(inst, v)
	case core.BindingOfDuty:
		return feasibilityBoD(inst, v)
	case core.AtMostK:
		return feasibilityAtMostK(inst, v)
	case core.OneTeam:
		return feasibilityCoverage(inst, v.Steps, v.Teams, "One-team")
	case core.SuperUserAtLeast:
		return feasibilitySUAL(inst, v)
	case core.WangLi:
		return feasibilityCoverage(inst, v.Steps, v.Departments, "Wang-Li")
	case core.AssignmentDependent:
		return feasibilityAssignmentDependent(inst, v)
	default:
		return true, nil
	}
}

func union(a, b []int) map[int]struct{} {
	u := make(map[int]struct{}, len(a)+len(b))
	for _, x := range a {
		u[x] = struct{}{}
	}
	for _, x := range b {
		u[x] = struct{}{}
	}

	return u
}

func intersects(set map[int]struct{}, list []int) bool {
	for _, x := range list {
		if _, ok := set[x]; ok {
			return true
		}
	}

	return false
}

func feasibilitySoD(inst *core.Instance, c core.SeparationOfDuty) (bool, []string) {
	u := union(inst.AuthorizedUsers(c.S1), inst.AuthorizedUsers(c.S2))
	if len(u) < 2 {
		return false, []string{fmt.Sprintf("separation-of-duty(s%d,s%d): fewer than 2 distinct authorized users across both steps", c.S1+1, c.S2+1)}
	}

	return true, nil
}

func feasibilityBoD(inst *core.Instance, c core.BindingOfDuty) (bool, []string) {
	set := make(map[int]struct{})
	for _, u := range inst.AuthorizedUsers(c.S1) {
		set[u] = struct{}{}
	}
	if !intersects(set, inst.AuthorizedUsers(c.S2)) {
		return false, []string{fmt.Sprintf("no user authorized for both s%d and s%d", c.S1+1, c.S2+1)}
	}

	return true, nil
}

func feasibilityAtMostK(inst *core.Instance, c core.AtMostK) (bool, []string) {
	set := make(map[int]struct{})
	for _, s := range c.Steps {
		for _, u := range inst.AuthorizedUsers(s) {
			set[u] = struct{}{}
		}
	}
	if len(set)*c.K < len(c.Steps) {
		return false, []string{fmt.Sprintf("at-most-k(%d): only %d distinct authorized users cannot cover %d steps", c.K, len(set), len(c.Steps))}
	}

	return true, nil
}

// feasibilityCoverage implements the shared OneTeam/WangLi coverage check:
// some team in teams must authorize at least one user for every step.
func feasibilityCoverage(inst *core.Instance, steps []int, teams [][]int, label string) (bool, []string) {
	for _, team := range teams {
		covers := true
		for _, s := range steps {
			if len(inst.AuthorizedUsers(s)) == 0 {
				covers = false
				break
			}
			found := false
			set := make(map[int]struct{}, len(team))
			for _, u := range team {
				set[u] = struct{}{}
			}
			for _, u := range inst.AuthorizedUsers(s) {
				if _, ok := set[u]; ok {
					found = true
					break
				}
			}
			if !found {
				covers = false
				break
			}
		}
		if covers {
			return true, nil
		}
	}

	return false, []string{fmt.Sprintf("%s: no team/department authorizes at least one user per step", label)}
}

func feasibilitySUAL(inst *core.Instance, c core.SuperUserAtLeast) (bool, []string) {
	supers := make(map[int]struct{}, len(c.Supers))
	for _, u := range c.Supers {
		supers[u] = struct{}{}
	}
	for _, s := range c.Steps {
		authed := inst.AuthorizedUsers(s)
		if len(authed) > c.H {
			continue
		}
		if !intersects(supers, authed) {
			return false, []string{fmt.Sprintf("super-user-at-least(h=%d): step s%d has <= %d authorized users and none is a super user", c.H, s+1, c.H)}
		}
	}

	return true, nil
}

func feasibilityAssignmentDependent(inst *core.Instance, c core.AssignmentDependent) (bool, []string) {
	sourceAuth := make(map[int]struct{})
	for _, u := range inst.AuthorizedUsers(c.S1) {
		sourceAuth[u] = struct{}{}
	}
	if !intersects(sourceAuth, c.Source) {
		// Source can never trigger; the implication is vacuously satisfiable.
		return true, nil
	}
	targetAuth := make(map[int]struct{})
	for _, u := range inst.AuthorizedUsers(c.S2) {
		targetAuth[u] = struct{}{}
	}
	if !intersects(targetAuth, c.Target) {
		return false, []string{fmt.Sprintf("assignment-dependent(s%d,s%d): source condition is reachable but no user authorized for s%d lies in target", c.S1+1, c.S2+1, c.S2+1)}
	}

	return true, nil
}
