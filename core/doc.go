// Package core defines the central Instance, Constraint, and Assignment
// types for the Workflow Satisfiability Problem (WSP), and the invariants
// that hold once an Instance has been built.
//
// An Instance bundles:
//
//	steps/users  — two fixed-size domains, addressed by 0-based integer id
//	auth         — the authorization relation auth[user][step]
//	constraints  — the eight constraint kinds from the WSP literature
//	               (Authorization, SeparationOfDuty, BindingOfDuty, AtMostK,
//	               OneTeam, SuperUserAtLeast, WangLi, AssignmentDependent)
//
// Unlike github.com/katalvlaran/lvlath's Graph, an Instance carries no
// mutex: it is immutable once NewInstance returns (see the Instance doc
// comment), so concurrent readers never contend. The parser (package
// parser) is the only producer; the analyzer, the variable manager, the
// backtracking back-end, and the verifier are all read-only collaborators
// over the same Instance.
//
// Indices:
//
//	All indices in this package are 0-based. The text instance format
//	(package parser) uses 1-based s<k>/u<k> tokens and converts at the
//	boundary; core never sees 1-based indices.
package core
