package variable

import "errors"

// ErrInternalInconsistency indicates AssignmentFromModel found a step with
// zero or more than one true variable: a back-end bug, surfaced so a
// caller turns it into an Error result rather than a wrong Sat.
var ErrInternalInconsistency = errors.New("variable: step has != 1 true variable")
