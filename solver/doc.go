// Package solver exposes the three-call lifecycle a caller drives a
// solve through -- Build (static feasibility via package analyzer), Solve
// (exhaustive search via a registered back-end), and CheckUnique (the
// blocking-clause-style second search) -- plus the back-end name registry a
// caller selects a back-end through. This mirrors
// lvlath/algorithms' Options+hooks pattern (a small config struct plus
// optional progress callbacks, validated once at the top) and
// lvlath/flow.FlowOptions' ctx/epsilon normalization (a private
// normalize step that fills in safe defaults before the engine runs).
package solver
