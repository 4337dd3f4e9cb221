package variable

import (
	"fmt"

	"github.com/katalvlaran/wsp/core"
)

// ID is the integer handle for one x[s,u] decision variable.
type ID int

// UserVar pairs an authorized user with its variable id, in the order
// Manager.Create assigned them: ascending user id, so a caller iterating
// a step's variables gets a deterministic, search-friendly order for
// free.
type UserVar struct {
	User int
	Var  ID
}

// Manager creates and indexes one boolean decision per authorized
// (step,user) pair.
type Manager struct {
	inst *core.Instance

	stepVars [][]UserVar // step -> ascending (user,var)
	userVars []map[int]ID // user -> step -> var

	varStep []int // var -> step (reverse lookup)
	varUser []int // var -> user (reverse lookup)

	model []bool // var -> current boolean value, set via SetModel
}

// NewManager constructs a Manager over inst without creating variables
// yet; call Create to populate the indices.
func NewManager(inst *core.Instance) *Manager {
	return &Manager{inst: inst}
}

// Create builds one variable per (u,s) with auth(u,s), indexed by step and
// by user. It is idempotent-by-construction: calling it twice simply
// rebuilds the same indices, since Instance is immutable.
func (m *Manager) Create() {
	numSteps := m.inst.NumSteps()
	m.stepVars = make([][]UserVar, numSteps)
	m.varStep = nil
	m.varUser = nil
	m.userVars = make([]map[int]ID, m.inst.NumUsers())
	for u := range m.userVars {
		m.userVars[u] = make(map[int]ID)
	}

	var next ID
	for s := 0; s < numSteps; s++ {
		for _, u := range m.inst.AuthorizedUsers(s) {
			v := next
			next++
			m.stepVars[s] = append(m.stepVars[s], UserVar{User: u, Var: v})
			m.userVars[u][s] = v
			m.varStep = append(m.varStep, s)
			m.varUser = append(m.varUser, u)
		}
	}
	m.model = make([]bool, next)
}

// NumVars returns the total number of decision variables created.
func (m *Manager) NumVars() int { return len(m.varStep) }

// StepVars returns the authorized (user,var) pairs for step s, ascending
// by user id.
func (m *Manager) StepVars(s int) []UserVar { return m.stepVars[s] }

// UserVars returns the step->var map for user u.
func (m *Manager) UserVars(u int) map[int]ID { return m.userVars[u] }

// VarOf returns the variable id for (u,s), and false if u is not
// authorized for s.
func (m *Manager) VarOf(u, s int) (ID, bool) {
	v, ok := m.userVars[u][s]

	return v, ok
}

// StepOf returns the step a variable belongs to.
func (m *Manager) StepOf(v ID) int { return m.varStep[v] }

// UserOf returns the user a variable belongs to.
func (m *Manager) UserOf(v ID) int { return m.varUser[v] }

// AuthorizedUsers delegates to the underlying Instance.
func (m *Manager) AuthorizedUsers(s int) []int { return m.inst.AuthorizedUsers(s) }

// AuthorizedSteps delegates to the underlying Instance.
func (m *Manager) AuthorizedSteps(u int) []int { return m.inst.AuthorizedSteps(u) }

// DepartmentAuth returns the members of dept authorized for step s, in
// the order dept lists them.
func (m *Manager) DepartmentAuth(s int, dept []int) []int {
	var out []int
	for _, u := range dept {
		if m.inst.IsAuthorized(u, s) {
			out = append(out, u)
		}
	}

	return out
}

// SetModel loads a complete step->user assignment into the boolean model,
// setting x[s,assignment[s]] true and every other variable for step s
// false. Callers hand it a candidate solution and then call
// AssignmentFromModel to re-derive and invariant-check it.
func (m *Manager) SetModel(assignment core.Assignment) {
	for i := range m.model {
		m.model[i] = false
	}
	for s, u := range assignment {
		if v, ok := m.VarOf(u, s); ok {
			m.model[v] = true
		}
	}
}

// AssignmentFromModel re-derives step->user from the current boolean
// model. For each step it expects exactly one true variable; zero or more
// than one is ErrInternalInconsistency, never a partial result.
func (m *Manager) AssignmentFromModel() (core.Assignment, error) {
	out := make(core.Assignment, len(m.stepVars))
	for s, vars := range m.stepVars {
		found := -1
		for _, uv := range vars {
			if m.model[uv.Var] {
				if found != -1 {
					return nil, fmt.Errorf("variable: step %d has multiple true variables: %w", s, ErrInternalInconsistency)
				}
				found = uv.User
			}
		}
		if found == -1 {
			return nil, fmt.Errorf("variable: step %d has no true variable: %w", s, ErrInternalInconsistency)
		}
		out[s] = found
	}

	return out, nil
}
