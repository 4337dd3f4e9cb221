// Package result defines the Status tagged union returned by every solve:
// Sat, Unsat, or Error, plus the Conflict and Violation value types
// threaded through the analyzer (package analyzer), the back-end
// (package backend), and the verifier (package verifier).
//
// This package sits below solver/backend/verifier/report in the import
// graph so none of them need to depend on each other just to exchange a
// Result: they all depend on result instead.
package result
