// Package variable manages one boolean decision x[s,u] per authorized
// (step,user) pair, indexed both by step and by user for O(1) lookups
// during encoding and propagation.
//
// The indexing mirrors lvlath/core's adjacencyList convention
// (map[string]map[string]struct{}) scaled down to dense integer slices,
// since step/user domains are small, fixed-size, and 0-based: a []UserVar
// per step and a map[int]ID per user play the role lvlath's nested maps
// play for vertices.
//
// The Manager itself never searches or backtracks -- that is package
// backend's job, which builds one Manager per search to index authorized
// pairs and, once a candidate assignment is complete, loads it back into
// the boolean model and re-derives step->user from that model. The
// re-derivation step insists on exactly one true variable per step rather
// than trusting the caller's bookkeeping, so a back-end bug that assigns
// a step to a user not authorized for it surfaces as an explicit error
// instead of a silently wrong result.
package variable
