package verifier

import (
	"github.com/katalvlaran/wsp/constraint"
	"github.com/katalvlaran/wsp/core"
	"github.com/katalvlaran/wsp/result"
)

// Verify checks a's authorization and every active constraint kind
// independently, returning every violation found (nil means a is a
// fully valid solution under active). A nil active means every kind
// participates, matching package backend and package solver's own
// convention.
func Verify(inst *core.Instance, a core.Assignment, active map[core.Kind]bool) []result.Violation {
	isActive := func(k core.Kind) bool {
		if active == nil {
			return true
		}

		return active[k]
	}

	var out []result.Violation
	out = append(out, constraint.VerifyAuthorization(inst, a)...)
	for _, c := range inst.Constraints() {
		if !isActive(c.Kind()) {
			continue
		}
		out = append(out, constraint.Verify(inst, c, a)...)
	}

	return out
}
