package backend

import (
	"time"

	"github.com/katalvlaran/wsp/core"
	"github.com/katalvlaran/wsp/variable"
)

type trailKind int

const (
	trailDomain trailKind = iota
	trailAtMostK
	trailTeamMask
)

// trailEntry is one undoable mutation. Using a flat struct with a kind
// tag (rather than closures) keeps undo allocation-free, the same
// explicit-state preference lvlath/tsp's bbEngine shows for its hot path.
type trailEntry struct {
	kind trailKind

	// trailDomain
	step, user int

	// trailAtMostK
	ctrID, ctrUser int

	// trailTeamMask
	teamID  int
	oldMask uint64
}

// engine holds all mutable search state for one Solve or CheckUnique call.
type engine struct {
	inst *core.Instance
	vars *variable.Manager

	active map[core.Kind]bool // nil == every kind active

	numSteps, numUsers int

	domain      [][]bool // step -> user -> still a live candidate
	domainCount []int    // step -> count of true entries
	assignment  []int    // step -> user, -1 if unassigned

	stepConstraints [][]core.Constraint // step -> active constraints touching it

	atMostKCount map[int]map[int]int // constraintID -> user -> assigned count

	teamMembers map[int]map[int]uint64 // constraintID -> user -> bitmask of teams containing user
	teamTeams   map[int][][]int         // constraintID -> team member lists (for live-user recompute)
	teamLive    map[int]uint64          // constraintID -> bitmask of still-possible teams

	trail []trailEntry

	useDeadline bool
	deadline    time.Time
	nodes       int

	uniqueTarget core.Assignment // set by CheckUnique; nil during Solve
	result       core.Assignment // set by dfs once a leaf passes leafOK
}

func newEngine(inst *core.Instance, active map[core.Kind]bool, deadline time.Time, useDeadline bool) *engine {
	vars := variable.NewManager(inst)
	vars.Create()

	e := &engine{
		inst:         inst,
		vars:         vars,
		active:       active,
		numSteps:     inst.NumSteps(),
		numUsers:     inst.NumUsers(),
		atMostKCount: make(map[int]map[int]int),
		teamMembers:  make(map[int]map[int]uint64),
		teamTeams:    make(map[int][][]int),
		teamLive:     make(map[int]uint64),
		useDeadline:  useDeadline,
		deadline:     deadline,
	}

	e.domain = make([][]bool, e.numSteps)
	e.domainCount = make([]int, e.numSteps)
	e.assignment = make([]int, e.numSteps)
	e.stepConstraints = make([][]core.Constraint, e.numSteps)
	for s := 0; s < e.numSteps; s++ {
		e.assignment[s] = -1
		row := make([]bool, e.numUsers)
		count := 0
		for _, u := range e.vars.AuthorizedUsers(s) {
			row[u] = true
			count++
		}
		e.domain[s] = row
		e.domainCount[s] = count
	}

	for _, k := range core.EncodeOrder {
		if !e.isActive(k) {
			continue
		}
		for _, c := range inst.ConstraintsOfKind(k) {
			e.indexConstraint(c)
		}
	}

	return e
}

func (e *engine) isActive(k core.Kind) bool {
	if e.active == nil {
		return true
	}
	on, ok := e.active[k]
	if !ok {
		return false
	}

	return on
}

func (e *engine) touch(step int, c core.Constraint) {
	e.stepConstraints[step] = append(e.stepConstraints[step], c)
}

func (e *engine) indexConstraint(c core.Constraint) {
	switch v := c.(type) {
	case core.SeparationOfDuty:
		e.touch(v.S1, c)
		e.touch(v.S2, c)
	case core.BindingOfDuty:
		e.touch(v.S1, c)
		e.touch(v.S2, c)
	case core.AtMostK:
		e.atMostKCount[c.ID()] = make(map[int]int)
		for _, s := range v.Steps {
			e.touch(s, c)
		}
	case core.OneTeam:
		e.indexTeamConstraint(c, v.Steps, v.Teams)
	case core.WangLi:
		e.indexTeamConstraint(c, v.Steps, v.Departments)
	case core.SuperUserAtLeast:
		// No forward checking; touched only so the leaf safety net and
		// reporting see it. See doc.go for why.
		for _, s := range v.Steps {
			e.touch(s, c)
		}
	case core.AssignmentDependent:
		e.touch(v.S1, c)
		e.touch(v.S2, c)
	}
}

func (e *engine) indexTeamConstraint(c core.Constraint, steps []int, teams [][]int) {
	id := c.ID()
	membership := make(map[int]uint64)
	for i, team := range teams {
		if i >= 64 {
			break // instances with >64 teams on one constraint are not expected
		}
		bit := uint64(1) << uint(i)
		for _, u := range team {
			membership[u] |= bit
		}
	}
	n := len(teams)
	if n > 64 {
		n = 64
	}
	var full uint64
	if n == 64 {
		full = ^uint64(0)
	} else {
		full = (uint64(1) << uint(n)) - 1
	}
	e.teamMembers[id] = membership
	e.teamTeams[id] = teams
	e.teamLive[id] = full
	for _, s := range steps {
		e.touch(s, c)
	}
}

func (e *engine) assigned(step int) bool { return e.assignment[step] != -1 }

// currentAssignment re-derives a step->user assignment from the engine's
// own per-step choice through the variable manager's boolean model rather
// than copying e.assignment directly: SetModel only marks a variable true
// when the (user,step) pair was authorized at Create time, and
// AssignmentFromModel then insists on exactly one true variable per step,
// so a bug that let the search assign an unauthorized user surfaces as
// ErrInternalInconsistency here instead of silently reaching a caller.
// Only valid to call once every step has a choice.
func (e *engine) currentAssignment() (core.Assignment, error) {
	raw := make(core.Assignment, e.numSteps)
	copy(raw, e.assignment)
	e.vars.SetModel(raw)

	return e.vars.AssignmentFromModel()
}

func (e *engine) removeFromDomain(step, user int) {
	if !e.domain[step][user] {
		return
	}
	e.domain[step][user] = false
	e.domainCount[step]--
	e.trail = append(e.trail, trailEntry{kind: trailDomain, step: step, user: user})
}

func (e *engine) restrictDomainToSingle(step, user int) {
	for u := 0; u < e.numUsers; u++ {
		if u != user && e.domain[step][u] {
			e.removeFromDomain(step, u)
		}
	}
}

func (e *engine) restrictDomainToSet(step int, allowed map[int]bool) {
	for u := 0; u < e.numUsers; u++ {
		if e.domain[step][u] && !allowed[u] {
			e.removeFromDomain(step, u)
		}
	}
}

func (e *engine) bumpAtMostK(constraintID, user int) int {
	m := e.atMostKCount[constraintID]
	old := m[user]
	m[user] = old + 1
	e.trail = append(e.trail, trailEntry{kind: trailAtMostK, ctrID: constraintID, ctrUser: user})

	return m[user]
}

func (e *engine) mark() int { return len(e.trail) }

func (e *engine) undo(mark int) {
	for i := len(e.trail) - 1; i >= mark; i-- {
		t := e.trail[i]
		switch t.kind {
		case trailDomain:
			e.domain[t.step][t.user] = true
			e.domainCount[t.step]++
		case trailAtMostK:
			e.atMostKCount[t.ctrID][t.ctrUser]--
		case trailTeamMask:
			e.teamLive[t.teamID] = t.oldMask
		}
	}
	e.trail = e.trail[:mark]
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}
