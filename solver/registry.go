package solver

import (
	"time"

	"github.com/katalvlaran/wsp/backend"
	"github.com/katalvlaran/wsp/core"
	"github.com/katalvlaran/wsp/result"
)

// DefaultBackend is the back-end name Options.normalize falls back to.
const DefaultBackend = backend.Name

// SolveFunc and UniqueFunc are the shape package backend's Solve/
// CheckUnique export; a registry entry binds a back-end name to a pair of
// these so Solver never imports package backend directly by name beyond
// registering it here, leaving room for additional back-ends later
// without touching solver.go.
type SolveFunc func(inst *core.Instance, active map[core.Kind]bool, deadline time.Time, useDeadline bool) (core.Assignment, bool, error)
type UniqueFunc func(inst *core.Instance, active map[core.Kind]bool, first core.Assignment, deadline time.Time, useDeadline bool) (result.Unique, error)

type registryEntry struct {
	solve  SolveFunc
	unique UniqueFunc
}

var registry = map[string]registryEntry{
	backend.Name: {solve: backend.Solve, unique: backend.CheckUnique},
}

// Backends lists every registered back-end name, for CLI help text and
// validation.
func Backends() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	return names
}
