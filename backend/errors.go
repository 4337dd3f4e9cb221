package backend

import "errors"

// ErrTimeout indicates the search deadline elapsed before a verdict
// (Sat or exhaustive Unsat) was reached. Callers surface this as a
// solver Error, never as a false Unsat.
var ErrTimeout = errors.New("backend: deadline exceeded before search completed")

// Name is the identifier this back-end registers under in package
// solver's back-end registry.
const Name = "backtracking"
