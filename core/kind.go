package core

// Kind tags the eight constraint families a WSP Instance may carry.
// The zero value, KindAuthorization, is the implicit exactly-one-user-per-step
// relation; it is always present but may be toggled off by a caller (see
// package solver's active-constraint set).
type Kind int

const (
	KindAuthorization Kind = iota
	KindSeparationOfDuty
	KindBindingOfDuty
	KindAtMostK
	KindOneTeam
	KindSuperUserAtLeast
	KindWangLi
	KindAssignmentDependent
)

// String renders the Kind the way the text instance format spells it,
// minus the 1-based index tokens (see package parser).
func (k Kind) String() string {
	switch k {
	case KindAuthorization:
		return "Authorisations"
	case KindSeparationOfDuty:
		return "Separation-of-duty"
	case KindBindingOfDuty:
		return "Binding-of-duty"
	case KindAtMostK:
		return "At-most-k"
	case KindOneTeam:
		return "One-team"
	case KindSuperUserAtLeast:
		return "Super-user-at-least"
	case KindWangLi:
		return "Wang-li"
	case KindAssignmentDependent:
		return "Assignment-dependent"
	default:
		return "Unknown"
	}
}

// EncodeOrder is the deterministic encoding/search order required by
// spec §5: "Authorization first, then SoD, BoD, AtMostK, OneTeam, SUAL,
// WangLi, AssignmentDependent." Families not present in an instance are
// simply skipped; the slice fixes ties when several kinds touch the same
// step.
var EncodeOrder = []Kind{
	KindAuthorization,
	KindSeparationOfDuty,
	KindBindingOfDuty,
	KindAtMostK,
	KindOneTeam,
	KindSuperUserAtLeast,
	KindWangLi,
	KindAssignmentDependent,
}
