package solver

import "errors"

// ErrUnknownBackend indicates Options.Backend named a back-end not
// present in the registry.
var ErrUnknownBackend = errors.New("solver: unknown backend")

// ErrBuildRequired indicates Solve was called before Build, so no
// feasibility verdict is available to short-circuit on.
var ErrBuildRequired = errors.New("solver: Build must run before Solve")
