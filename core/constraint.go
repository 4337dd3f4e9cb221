package core

// Constraint is the capability every constraint family implements: an
// opaque id (stable across Feasibility/Verify calls, used in
// Conflict and Violation messages) and a Kind tag used for dispatch.
//
// This is a tagged sum realized as one small concrete type per kind
// (SeparationOfDuty, BindingOfDuty, ...) rather than one field-union
// struct: each kind's parameters are named and typed, and package
// constraint's dispatch is a type switch on the concrete type to reach the
// right Feasibility/Verify implementation. See core/doc.go "Indices" for the
// 0-based convention used by every field below.
type Constraint interface {
	ID() int
	Kind() Kind
}

type base struct {
	id int
}

// ID returns the constraint's opaque identifier, assigned by the parser
// in file order (see package parser).
func (b base) ID() int { return b.id }

// SeparationOfDuty requires S1 and S2 (distinct steps) to be assigned to
// different users.
type SeparationOfDuty struct {
	base
	S1, S2 int
}

func (SeparationOfDuty) Kind() Kind { return KindSeparationOfDuty }

// NewSeparationOfDuty builds a SoD constraint with the given id.
func NewSeparationOfDuty(id, s1, s2 int) SeparationOfDuty {
	return SeparationOfDuty{base: base{id: id}, S1: s1, S2: s2}
}

// BindingOfDuty requires S1 and S2 to be assigned to the same user.
type BindingOfDuty struct {
	base
	S1, S2 int
}

func (BindingOfDuty) Kind() Kind { return KindBindingOfDuty }

// NewBindingOfDuty builds a BoD constraint with the given id.
func NewBindingOfDuty(id, s1, s2 int) BindingOfDuty {
	return BindingOfDuty{base: base{id: id}, S1: s1, S2: s2}
}

// AtMostK requires that no user is assigned to more than K of Steps.
type AtMostK struct {
	base
	K     int
	Steps []int
}

func (AtMostK) Kind() Kind { return KindAtMostK }

// NewAtMostK builds an AtMostK constraint with the given id.
func NewAtMostK(id, k int, steps []int) AtMostK {
	return AtMostK{base: base{id: id}, K: k, Steps: steps}
}

// OneTeam requires every assignee over Steps to belong to one common
// team drawn from Teams (an ordered, non-empty list of user-id sets).
type OneTeam struct {
	base
	Steps []int
	Teams [][]int
}

func (OneTeam) Kind() Kind { return KindOneTeam }

// NewOneTeam builds a OneTeam constraint with the given id.
func NewOneTeam(id int, steps []int, teams [][]int) OneTeam {
	return OneTeam{base: base{id: id}, Steps: steps, Teams: teams}
}

// SuperUserAtLeast requires that if the number of distinct users assigned
// over Steps is <= H, at least one of them is in Supers.
type SuperUserAtLeast struct {
	base
	Steps  []int
	H      int
	Supers []int
}

func (SuperUserAtLeast) Kind() Kind { return KindSuperUserAtLeast }

// NewSuperUserAtLeast builds a SUAL constraint with the given id.
func NewSuperUserAtLeast(id int, steps []int, h int, supers []int) SuperUserAtLeast {
	return SuperUserAtLeast{base: base{id: id}, Steps: steps, H: h, Supers: supers}
}

// WangLi mirrors OneTeam with Departments as the covering sets; kept as a
// distinct kind because the WSP literature treats Wang-Li and OneTeam as
// separate named families even though their encodings coincide.
type WangLi struct {
	base
	Steps       []int
	Departments [][]int
}

func (WangLi) Kind() Kind { return KindWangLi }

// NewWangLi builds a Wang-Li constraint with the given id.
func NewWangLi(id int, steps []int, departments [][]int) WangLi {
	return WangLi{base: base{id: id}, Steps: steps, Departments: departments}
}

// AssignmentDependent requires: if assignee(S1) is in Source, then
// assignee(S2) must be in Target.
type AssignmentDependent struct {
	base
	S1, S2         int
	Source, Target []int
}

func (AssignmentDependent) Kind() Kind { return KindAssignmentDependent }

// NewAssignmentDependent builds an AssignmentDependent constraint with the given id.
func NewAssignmentDependent(id, s1, s2 int, source, target []int) AssignmentDependent {
	return AssignmentDependent{base: base{id: id}, S1: s1, S2: s2, Source: source, Target: target}
}
