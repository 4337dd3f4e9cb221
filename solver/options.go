package solver

import (
	"context"
	"time"

	"github.com/katalvlaran/wsp/core"
)

// Progress is an optional observer invoked at solve-lifecycle
// milestones; a nil Progress disables all hooks. Mirrors
// lvlath/algorithms' callback-hook options without pulling in its event
// struct hierarchy, since the solver has exactly two milestones worth
// reporting.
type Progress struct {
	OnBuildDone func(feasible bool, conflicts int)
	OnSolveDone func(status string, elapsed time.Duration)
}

// Options configures one Solver, mirroring lvlath/flow.FlowOptions: a
// flat struct with a private normalize step that fills in safe defaults,
// rather than functional options -- there is no meaningful "panic on
// nil" constructor argument here, just a handful of independent knobs.
type Options struct {
	// Ctx bounds the solve via its deadline, which takes precedence over
	// Deadline; cancelling Ctx does not stop a running search. A nil Ctx
	// normalizes to context.Background().
	Ctx context.Context

	// Deadline, if non-zero, is the wall-clock instant the back-end must
	// stop searching by. Zero means no deadline.
	Deadline time.Time

	// Active lists which constraint kinds participate in Solve/Verify.
	// Nil means every kind is active (the CLI default). KindAuthorization
	// is always enforced regardless of this set, since it is structural
	// (the variable domains never contain an unauthorized pair).
	Active []core.Kind

	// Backend selects a registered back-end by name; empty string
	// normalizes to backend.Name ("backtracking").
	Backend string

	Progress Progress
}

func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Backend == "" {
		o.Backend = DefaultBackend
	}
}

// activeSet expands Active into the map shape package backend expects:
// every core.Kind explicitly present, defaulting to true when Active is
// nil and to false for any kind omitted from a non-nil Active.
func (o *Options) activeSet() map[core.Kind]bool {
	if o.Active == nil {
		return nil // nil map == "every kind active", see package backend
	}
	set := make(map[core.Kind]bool, len(core.EncodeOrder))
	for _, k := range core.EncodeOrder {
		set[k] = false
	}
	for _, k := range o.Active {
		set[k] = true
	}

	return set
}
