// Package backend implements the reference exact back-end: a backtracking
// search over one boolean decision per authorized (step,user) pair, with
// forward-checking propagation, a trail-based undo stack, and a per-node
// deadline poll -- the same engine shape as lvlath/tsp's bbEngine
// (dedicated struct, explicit state instead of closures), adjusted to
// check every node rather than every 4096: WSP instances are small
// enough, and each node already does enough propagation work, that a
// coarser interval could miss an already-expired deadline on a fast
// search entirely.
//
// Variable ordering is dynamic MRV (fewest remaining domain values),
// tie-broken by constraint degree (most constraints touching the step)
// and then lowest step id, recomputed at every node since forward
// checking shrinks domains as the search descends. Value ordering is
// ascending user id. Both are chosen for determinism: two runs over the
// same instance and the same active-constraint set visit nodes in the
// same order and return the same Assignment.
//
// Forward checking is implemented for Separation-of-duty, Binding-of-duty,
// At-most-k, One-team, Wang-li and Assignment-dependent: each assignment
// prunes the domains of steps it can affect before recursing. Super-user-
// at-least is not forward-checked -- its "at least one of at most H
// distinct users is a super-user" shape does not reduce to a simple
// per-value domain restriction -- so it relies on the leaf safety net
// below for soundness at some cost in pruning power; this matches the
// variable package's own preference for an explicit invariant re-check
// over silent trust (see variable.Manager.AssignmentFromModel).
//
// Every complete assignment the search reaches is independently re-run
// through package constraint's Verify functions before being accepted.
// This costs nothing outside of leaves and means a propagation bug can
// only cost search efficiency, never soundness.
package backend
