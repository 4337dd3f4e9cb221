// Package constraint holds the back-end-agnostic half of each of the
// eight constraint families -- Feasibility (static, pre-solve) and Verify
// (post-hoc, independent of any encoding).
//
// Encoding a constraint into a particular back-end's search structures is
// intentionally NOT here: a back-end may realize it as clauses,
// pseudo-boolean sums, or propagators, so encoding is inherently
// back-end shaped. Since this repo ships exactly one back-end (package
// backend, an exact backtracking search), its propagation logic lives
// there, type-switching on the concrete constraint type the same way this
// package's Feasibility/Verify do. This keeps the portable, reusable half
// (feasibility and verification, exercised by both package analyzer and
// package verifier) separate from the one back-end's internal trail and
// domain machinery.
//
// Dispatch is a plain type switch on the concrete core.Constraint type, a
// natural fit for a closed, small (eight-member) sum type in Go.
package constraint
