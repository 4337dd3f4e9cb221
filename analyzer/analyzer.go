package analyzer

import (
	"fmt"

	"github.com/katalvlaran/wsp/constraint"
	"github.com/katalvlaran/wsp/core"
	"github.com/katalvlaran/wsp/result"
)

// Analyze runs every static feasibility check over every constraint (nil
// active) and returns whether the instance is feasible
// along with the full conflict list. See AnalyzeActive to scope the
// analysis to a subset of constraint kinds, as package solver does when
// a caller toggles families off.
//
// A false return always carries at least one conflict whose Rule names
// a hard obstruction (NoAuthorizedUser, BoDNoCommonUser, BoDSoDOverlap,
// SoDImpossible, SUALCoverage, OneTeamCoverage, WangLiCoverage,
// AssignmentDependentUnreachableTarget); a true
// return may still carry soft conflicts (AtMostKSufficiency) that the
// back-end should attempt anyway.
func Analyze(inst *core.Instance) (bool, []result.Conflict) {
	return AnalyzeActive(inst, nil)
}

// AnalyzeActive is Analyze scoped to active: nil means every kind
// participates, matching package backend's own active-set convention;
// otherwise only kinds present and true are checked. KindAuthorization's
// NoAuthorizedUser check always runs, since it is structural and not a
// toggle-able constraint family.
func AnalyzeActive(inst *core.Instance, active map[core.Kind]bool) (bool, []result.Conflict) {
	isActive := func(k core.Kind) bool {
		if active == nil {
			return true
		}

		return active[k]
	}

	var conflicts []result.Conflict
	feasible := true

	for s := 0; s < inst.NumSteps(); s++ {
		if len(inst.AuthorizedUsers(s)) == 0 {
			feasible = false
			conflicts = append(conflicts, result.Conflict{
				Rule:    "NoAuthorizedUser",
				Message: fmt.Sprintf("step s%d has no authorized user", s+1),
			})
		}
	}

	if uf := bodSoDOverlap(inst, isActive); len(uf) > 0 {
		feasible = false
		conflicts = append(conflicts, uf...)
	}

	for _, c := range inst.Constraints() {
		if !isActive(c.Kind()) {
			continue
		}
		ok, reasons := constraint.Feasibility(inst, c)
		if ok {
			continue
		}
		hard := !isSoftKind(c.Kind())
		if hard {
			feasible = false
		}
		for _, reason := range reasons {
			conflicts = append(conflicts, result.Conflict{
				Rule:    ruleName(c.Kind(), hard),
				Message: reason,
			})
		}
	}

	return feasible, conflicts
}

func isSoftKind(k core.Kind) bool {
	return k == core.KindAtMostK
}

func ruleName(k core.Kind, hard bool) string {
	suffix := "Coverage"
	switch k {
	case core.KindSeparationOfDuty:
		return "SoDImpossible"
	case core.KindBindingOfDuty:
		return "BoDNoCommonUser"
	case core.KindAtMostK:
		return "AtMostKSufficiency"
	case core.KindOneTeam:
		return "OneTeam" + suffix
	case core.KindSuperUserAtLeast:
		return "SUALCoverage"
	case core.KindWangLi:
		return "WangLi" + suffix
	case core.KindAssignmentDependent:
		return "AssignmentDependentUnreachableTarget"
	default:
		if hard {
			return "Infeasible"
		}

		return "PotentialConflict"
	}
}

// bodSoDOverlap finds SeparationOfDuty edges whose two steps are forced
// equal by a chain of BindingOfDuty constraints: such a pair is asked to
// share a user (BoD) and to use distinct users (SoD) at the same time,
// which no assignment can satisfy.
func bodSoDOverlap(inst *core.Instance, isActive func(core.Kind) bool) []result.Conflict {
	parent := make([]int, inst.NumSteps())
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}

		return parent[x]
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	if isActive(core.KindBindingOfDuty) {
		for _, c := range inst.Constraints() {
			if bod, ok := c.(core.BindingOfDuty); ok {
				union(bod.S1, bod.S2)
			}
		}
	}

	var conflicts []result.Conflict
	if !isActive(core.KindSeparationOfDuty) {
		return conflicts
	}
	for _, c := range inst.Constraints() {
		if sod, ok := c.(core.SeparationOfDuty); ok {
			if find(sod.S1) == find(sod.S2) {
				conflicts = append(conflicts, result.Conflict{
					Rule:    "BoDSoDOverlap",
					Message: fmt.Sprintf("s%d and s%d are forced equal by binding-of-duty but also required distinct by separation-of-duty", sod.S1+1, sod.S2+1),
				})
			}
		}
	}

	return conflicts
}
