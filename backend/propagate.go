package backend

import "github.com/katalvlaran/wsp/core"

// propagate applies forward checking after step s has just been assigned
// to user u, using the constraints touching s. It returns false the
// instant any domain is wiped out or an already-fixed neighbour is found
// to conflict -- the caller then undoes back to its own mark and tries
// the next value.
func (e *engine) propagate(s, u int) bool {
	for _, c := range e.stepConstraints[s] {
		switch v := c.(type) {
		case core.SeparationOfDuty:
			if !e.propagateSoD(v, s, u) {
				return false
			}
		case core.BindingOfDuty:
			if !e.propagateBoD(v, s, u) {
				return false
			}
		case core.AtMostK:
			if !e.propagateAtMostK(v, s, u) {
				return false
			}
		case core.OneTeam:
			if !e.propagateTeam(c.ID(), v.Steps, v.Teams, s, u) {
				return false
			}
		case core.WangLi:
			if !e.propagateTeam(c.ID(), v.Steps, v.Departments, s, u) {
				return false
			}
		case core.AssignmentDependent:
			if !e.propagateAssignmentDependent(v, s, u) {
				return false
			}
		case core.SuperUserAtLeast:
			// leaf safety net only, see doc.go
		}
	}

	return true
}

func (e *engine) propagateSoD(v core.SeparationOfDuty, s, u int) bool {
	other := v.S2
	if s == v.S2 {
		other = v.S1
	}
	if e.assigned(other) {
		return e.assignment[other] != u
	}
	e.removeFromDomain(other, u)

	return e.domainCount[other] > 0
}

func (e *engine) propagateBoD(v core.BindingOfDuty, s, u int) bool {
	other := v.S2
	if s == v.S2 {
		other = v.S1
	}
	if e.assigned(other) {
		return e.assignment[other] == u
	}
	e.restrictDomainToSingle(other, u)

	return e.domainCount[other] > 0
}

func (e *engine) propagateAtMostK(v core.AtMostK, s, u int) bool {
	count := e.bumpAtMostK(v.ID(), u)
	if count < v.K {
		return true
	}
	for _, other := range v.Steps {
		if other == s || e.assigned(other) {
			continue
		}
		e.removeFromDomain(other, u)
		if e.domainCount[other] == 0 {
			return false
		}
	}

	return true
}

func (e *engine) propagateTeam(constraintID int, steps []int, teams [][]int, s, u int) bool {
	membership := e.teamMembers[constraintID][u]
	oldMask := e.teamLive[constraintID]
	newMask := oldMask & membership
	if newMask == 0 {
		return false
	}
	if newMask != oldMask {
		e.trail = append(e.trail, trailEntry{kind: trailTeamMask, teamID: constraintID, oldMask: oldMask})
		e.teamLive[constraintID] = newMask

		liveUsers := make(map[int]bool)
		for i, team := range e.teamTeams[constraintID] {
			if i >= 64 {
				break
			}
			if newMask&(uint64(1)<<uint(i)) != 0 {
				for _, tu := range team {
					liveUsers[tu] = true
				}
			}
		}
		for _, other := range steps {
			if other == s || e.assigned(other) {
				continue
			}
			e.restrictDomainToSet(other, liveUsers)
			if e.domainCount[other] == 0 {
				return false
			}
		}
	}

	return true
}

func (e *engine) propagateAssignmentDependent(v core.AssignmentDependent, s, u int) bool {
	if s == v.S1 {
		if !containsInt(v.Source, u) {
			return true
		}
		if e.assigned(v.S2) {
			return containsInt(v.Target, e.assignment[v.S2])
		}
		allowed := make(map[int]bool, len(v.Target))
		for _, t := range v.Target {
			allowed[t] = true
		}
		e.restrictDomainToSet(v.S2, allowed)

		return e.domainCount[v.S2] > 0
	}

	// s == v.S2
	if containsInt(v.Target, u) {
		return true
	}
	if e.assigned(v.S1) {
		return !containsInt(v.Source, e.assignment[v.S1])
	}
	for _, src := range v.Source {
		e.removeFromDomain(v.S1, src)
	}

	return e.domainCount[v.S1] > 0
}
