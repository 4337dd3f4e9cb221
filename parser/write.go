package parser

import (
	"fmt"
	"io"

	"github.com/katalvlaran/wsp/core"
)

// Write serializes inst back into the text instance format, one
// constraint per line in the Instance's stored order. It is the inverse
// of Parse/ParseFile up to constraint ordering and is exercised by the
// parser's own round-trip test.
func Write(w io.Writer, inst *core.Instance) error {
	if _, err := fmt.Fprintf(w, "#Steps: %d\n#Users: %d\n#Constraints: %d\n", inst.NumSteps(), inst.NumUsers(), len(inst.Constraints())); err != nil {
		return err
	}
	for u := 0; u < inst.NumUsers(); u++ {
		steps := inst.AuthorizedSteps(u)
		if len(steps) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "Authorisations u%d", u+1); err != nil {
			return err
		}
		for _, s := range steps {
			if _, err := fmt.Fprintf(w, " s%d", s+1); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	for _, c := range inst.Constraints() {
		if err := writeConstraint(w, c); err != nil {
			return err
		}
	}

	return nil
}

func writeUsers(w io.Writer, us []int) error {
	if _, err := fmt.Fprint(w, " ("); err != nil {
		return err
	}
	for _, u := range us {
		if _, err := fmt.Fprintf(w, " u%d", u+1); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, " )")

	return err
}

func writeSteps(w io.Writer, steps []int) error {
	for _, s := range steps {
		if _, err := fmt.Fprintf(w, " s%d", s+1); err != nil {
			return err
		}
	}

	return nil
}

func writeConstraint(w io.Writer, c core.Constraint) error {
	switch v := c.(type) {
	case core.SeparationOfDuty:
		_, err := fmt.Fprintf(w, "Separation-of-duty s%d s%d\n", v.S1+1, v.S2+1)

		return err
	case core.BindingOfDuty:
		_, err := fmt.Fprintf(w, "Binding-of-duty s%d s%d\n", v.S1+1, v.S2+1)

		return err
	case core.AtMostK:
		if _, err := fmt.Fprintf(w, "At-most-k %d", v.K); err != nil {
			return err
		}
		if err := writeSteps(w, v.Steps); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)

		return err
	case core.OneTeam:
		return writeTeamShaped(w, "One-team", v.Steps, v.Teams)
	case core.WangLi:
		return writeTeamShaped(w, "Wang-li", v.Steps, v.Departments)
	case core.SuperUserAtLeast:
		if _, err := fmt.Fprintf(w, "Super-user-at-least %d", v.H); err != nil {
			return err
		}
		if err := writeSteps(w, v.Steps); err != nil {
			return err
		}
		if err := writeUsers(w, v.Supers); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)

		return err
	case core.AssignmentDependent:
		if _, err := fmt.Fprintf(w, "Assignment-dependent s%d s%d", v.S1+1, v.S2+1); err != nil {
			return err
		}
		if err := writeUsers(w, v.Source); err != nil {
			return err
		}
		if err := writeUsers(w, v.Target); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)

		return err
	default:
		return nil
	}
}

func writeTeamShaped(w io.Writer, keyword string, steps []int, teams [][]int) error {
	if _, err := fmt.Fprint(w, keyword); err != nil {
		return err
	}
	if err := writeSteps(w, steps); err != nil {
		return err
	}
	for _, team := range teams {
		if err := writeUsers(w, team); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)

	return err
}
