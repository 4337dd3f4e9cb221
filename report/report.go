package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/wsp/core"
	"github.com/katalvlaran/wsp/result"
	"github.com/katalvlaran/wsp/solver"
)

// Human renders a status line, and for Sat the per-step assignment and
// per-user distribution blocks,
// followed in every case by the analysis appendix (authorization counts,
// constraint participants, conflicts, violations).
func Human(inst *core.Instance, build solver.BuildReport, res result.Result) string {
	var b strings.Builder

	status := res.Status.String()
	fmt.Fprintf(&b, "%s  solver=%s  time=%s\n", statusStyle(status).Render(status), res.SolverName, res.SolveTime)

	switch res.Status {
	case result.StatusSat:
		fmt.Fprintf(&b, "unique=%s\n", res.Unique)
		b.WriteString(section("Assignment"))
		for s, u := range res.Assignment {
			fmt.Fprintf(&b, "Step %d: User %d\n", s+1, u+1)
		}
		b.WriteString(section("Per-user distribution"))
		dist := make(map[int][]int)
		for s, u := range res.Assignment {
			dist[u] = append(dist[u], s+1)
		}
		for u := 0; u < inst.NumUsers(); u++ {
			steps := dist[u]
			sort.Ints(steps)
			fmt.Fprintf(&b, "User %d: %d step(s) %v\n", u+1, len(steps), steps)
		}
	case result.StatusUnsat:
		fmt.Fprintf(&b, "reason: %s\n", res.Reason)
	case result.StatusError:
		fmt.Fprintf(&b, "message: %s\n", res.Message)
	}

	b.WriteString(appendix(inst, build, res))

	return b.String()
}

func section(title string) string {
	return "\n" + styleHeader.Render(title) + "\n"
}

func appendix(inst *core.Instance, build solver.BuildReport, res result.Result) string {
	var b strings.Builder
	b.WriteString(section("Analysis appendix"))

	b.WriteString(styleDim.Render("Authorization counts per step:") + "\n")
	for s := 0; s < inst.NumSteps(); s++ {
		fmt.Fprintf(&b, "  s%d: %d authorized user(s)\n", s+1, len(inst.AuthorizedUsers(s)))
	}
	b.WriteString(styleDim.Render("Authorization counts per user:") + "\n")
	for u := 0; u < inst.NumUsers(); u++ {
		fmt.Fprintf(&b, "  u%d: %d authorized step(s)\n", u+1, len(inst.AuthorizedSteps(u)))
	}

	b.WriteString(styleDim.Render("Constraints:") + "\n")
	for _, c := range inst.Constraints() {
		fmt.Fprintf(&b, "  [%d] %s: %s\n", c.ID(), c.Kind(), participants(c))
	}

	b.WriteString(styleDim.Render("Conflicts:") + "\n")
	if len(build.Conflicts) == 0 {
		b.WriteString("  none\n")
	}
	for _, cf := range build.Conflicts {
		fmt.Fprintf(&b, "  %s: %s\n", cf.Rule, cf.Message)
	}

	b.WriteString(styleDim.Render("Violations:") + "\n")
	if len(res.Violations) == 0 {
		b.WriteString("  none\n")
	}
	for _, v := range res.Violations {
		fmt.Fprintf(&b, "  [%d] %s: %s\n", v.ConstraintID, v.Kind, v.Message)
	}

	return b.String()
}

// participants renders the users/steps a constraint's definition names,
// for the analysis appendix's "every constraint with participating
// users" requirement.
func participants(c core.Constraint) string {
	render1 := func(s int) string { return fmt.Sprintf("s%d", s+1) }
	renderSteps := func(steps []int) string {
		parts := make([]string, len(steps))
		for i, s := range steps {
			parts[i] = render1(s)
		}

		return strings.Join(parts, ",")
	}
	renderUsers := func(users []int) string {
		parts := make([]string, len(users))
		for i, u := range users {
			parts[i] = fmt.Sprintf("u%d", u+1)
		}

		return strings.Join(parts, ",")
	}
	renderTeams := func(teams [][]int) string {
		parts := make([]string, len(teams))
		for i, t := range teams {
			parts[i] = "(" + renderUsers(t) + ")"
		}

		return strings.Join(parts, " ")
	}

	switch v := c.(type) {
	case core.SeparationOfDuty:
		return fmt.Sprintf("%s,%s", render1(v.S1), render1(v.S2))
	case core.BindingOfDuty:
		return fmt.Sprintf("%s,%s", render1(v.S1), render1(v.S2))
	case core.AtMostK:
		return fmt.Sprintf("k=%d steps=%s", v.K, renderSteps(v.Steps))
	case core.OneTeam:
		return fmt.Sprintf("steps=%s teams=%s", renderSteps(v.Steps), renderTeams(v.Teams))
	case core.WangLi:
		return fmt.Sprintf("steps=%s departments=%s", renderSteps(v.Steps), renderTeams(v.Departments))
	case core.SuperUserAtLeast:
		return fmt.Sprintf("h=%d steps=%s supers=%s", v.H, renderSteps(v.Steps), renderUsers(v.Supers))
	case core.AssignmentDependent:
		return fmt.Sprintf("%s->%s source=%s target=%s", render1(v.S1), render1(v.S2), renderUsers(v.Source), renderUsers(v.Target))
	default:
		return ""
	}
}

// Machine renders the machine-readable step->user mapping, one
// "s<i> u<j>" line per step, 1-based. Empty for non-Sat results, since
// there is no assignment to report.
func Machine(res result.Result) string {
	if res.Status != result.StatusSat {
		return ""
	}
	var b strings.Builder
	for s, u := range res.Assignment {
		fmt.Fprintf(&b, "s%d u%d\n", s+1, u+1)
	}

	return b.String()
}
