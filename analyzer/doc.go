// Package analyzer runs a battery of static, polynomial-time feasibility
// checks over an instance before it ever reaches a back-end, producing
// zero or more Conflicts rather than a single reason.
//
// Steps:
//  1. Authorization gap -- any step with zero authorized users.
//  2. BoD x Authorization -- every BindingOfDuty pair needs a common
//     authorized user (delegated to package constraint's per-family
//     Feasibility, since the check is identical to BoD's own feasibility
//     test).
//  3. BoD x SoD overlap -- a BindingOfDuty-forced equivalence class that
//     also carries a SeparationOfDuty edge is an unavoidable conflict,
//     found via a small union-find over BoD pairs.
//  4. Per-family Feasibility for every other constraint (package
//     constraint), classified hard or soft: AtMostK's union/k bound is the
//     one soft check, since it can be pessimistic when several AtMostK
//     constraints share steps but draw from effectively disjoint user
//     capacity; every other family's failure is a hard, genuine
//     impossibility.
//
// Time complexity: polynomial. Most checks are linear in a constraint's
// step list times the authorized-user lists of those steps; the
// OneTeam/WangLi coverage check is O(teams x steps x (team size +
// authorized users per step)).
package analyzer
