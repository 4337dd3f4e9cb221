package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/wsp/core"
)

var (
	stepsHeaderRe      = regexp.MustCompile(`(?i)^#Steps:\s*(\d+)\s*$`)
	usersHeaderRe      = regexp.MustCompile(`(?i)^#Users:\s*(\d+)\s*$`)
	constraintsHeaderRe = regexp.MustCompile(`(?i)^#Constraints:\s*(\d+)\s*$`)
)

// ParseFile reads and parses an instance file from path.
func ParseFile(path string) (*core.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: cannot open %s: %w", path, err)
	}
	defer f.Close()

	return parseReader(f)
}

// Parse parses instance text held entirely in memory.
func Parse(text string) (*core.Instance, error) {
	return parseReader(strings.NewReader(text))
}

func parseReader(r io.Reader) (*core.Instance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	numSteps, err := readHeader(scanner, stepsHeaderRe, "#Steps")
	if err != nil {
		return nil, err
	}
	numUsers, err := readHeader(scanner, usersHeaderRe, "#Users")
	if err != nil {
		return nil, err
	}
	if _, err := readHeader(scanner, constraintsHeaderRe, "#Constraints"); err != nil {
		return nil, err
	}

	b := newBuilder(numSteps, numUsers)

	lineNo := 3
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := b.parseLine(lineNo, line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parser: read error: %w", err)
	}

	return b.build()
}

func readHeader(scanner *bufio.Scanner, re *regexp.Regexp, name string) (int, error) {
	if !scanner.Scan() {
		return 0, &ParseError{Category: MissingHeader, Message: fmt.Sprintf("expected %s header, found end of input", name)}
	}
	line := scanner.Text()
	m := re.FindStringSubmatch(line)
	if m == nil {
		return 0, &ParseError{Category: MissingHeader, Excerpt: strings.TrimSpace(line), Message: fmt.Sprintf("expected %s header", name)}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, &ParseError{Category: MissingHeader, Excerpt: strings.TrimSpace(line), Message: fmt.Sprintf("%s value is not an integer", name)}
	}

	return n, nil
}

// builder accumulates parsed auth rows and constraints before delegating
// to core.NewInstance, which runs the final structural validation.
type builder struct {
	numSteps int
	numUsers int
	auth     [][]bool
	cons     []core.Constraint
	nextID   int
}

func newBuilder(numSteps, numUsers int) *builder {
	auth := make([][]bool, numUsers)
	for u := range auth {
		auth[u] = make([]bool, numSteps)
	}

	return &builder{numSteps: numSteps, numUsers: numUsers, auth: auth}
}

func (b *builder) build() (*core.Instance, error) {
	inst, err := core.NewInstance(b.numSteps, b.numUsers, b.auth, b.cons)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	return inst, nil
}

func (b *builder) parseLine(lineNo int, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	keyword := strings.ToLower(fields[0])

	switch keyword {
	case "authorisations", "authorizations":
		return b.parseAuthorisations(lineNo, line, fields)
	case "separation-of-duty":
		return b.parseSoDOrBoD(lineNo, line, fields, true)
	case "binding-of-duty":
		return b.parseSoDOrBoD(lineNo, line, fields, false)
	case "at-most-k":
		return b.parseAtMostK(lineNo, line, fields)
	case "one-team":
		return b.parseTeamShaped(lineNo, line, fields, true)
	case "wang-li":
		return b.parseTeamShaped(lineNo, line, fields, false)
	case "super-user-at-least":
		return b.parseSUAL(lineNo, line, fields)
	case "assignment-dependent":
		return b.parseAssignmentDependent(lineNo, line, fields)
	default:
		return badLine(lineNo, line, "unrecognized keyword %q", fields[0])
	}
}

func badLine(lineNo int, line, format string, args ...interface{}) error {
	return &ParseError{Category: BadLine, Line: lineNo, Excerpt: line, Message: fmt.Sprintf(format, args...)}
}

func indexErr(lineNo int, line, format string, args ...interface{}) error {
	return &ParseError{Category: IndexOutOfRange, Line: lineNo, Excerpt: line, Message: fmt.Sprintf(format, args...)}
}

func parseIndexToken(tok, prefix string) (int, bool) {
	if !strings.HasPrefix(strings.ToLower(tok), prefix) || len(tok) <= len(prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(tok[len(prefix):])
	if err != nil || n < 1 {
		return 0, false
	}

	return n - 1, true
}

func parseStepToken(tok string) (int, bool) { return parseIndexToken(tok, "s") }
func parseUserToken(tok string) (int, bool) { return parseIndexToken(tok, "u") }

func (b *builder) checkStep(lineNo int, line string, s int) error {
	if s < 0 || s >= b.numSteps {
		return indexErr(lineNo, line, "step index %d out of range [1,%d]", s+1, b.numSteps)
	}

	return nil
}

func (b *builder) checkUser(lineNo int, line string, u int) error {
	if u < 0 || u >= b.numUsers {
		return indexErr(lineNo, line, "user index %d out of range [1,%d]", u+1, b.numUsers)
	}

	return nil
}

func (b *builder) parseAuthorisations(lineNo int, line string, fields []string) error {
	if len(fields) < 2 {
		return badLine(lineNo, line, "Authorisations requires a user token")
	}
	u, ok := parseUserToken(fields[1])
	if !ok {
		return badLine(lineNo, line, "expected u<i> token, got %q", fields[1])
	}
	if err := b.checkUser(lineNo, line, u); err != nil {
		return err
	}
	for _, tok := range fields[2:] {
		s, ok := parseStepToken(tok)
		if !ok {
			return badLine(lineNo, line, "expected s<j> token, got %q", tok)
		}
		if err := b.checkStep(lineNo, line, s); err != nil {
			return err
		}
		b.auth[u][s] = true
	}

	return nil
}

func (b *builder) parseSoDOrBoD(lineNo int, line string, fields []string, sod bool) error {
	if len(fields) != 3 {
		return badLine(lineNo, line, "expected exactly two step tokens")
	}
	s1, ok1 := parseStepToken(fields[1])
	s2, ok2 := parseStepToken(fields[2])
	if !ok1 || !ok2 {
		return badLine(lineNo, line, "expected two s<j> tokens")
	}
	if err := b.checkStep(lineNo, line, s1); err != nil {
		return err
	}
	if err := b.checkStep(lineNo, line, s2); err != nil {
		return err
	}
	id := b.nextID
	b.nextID++
	if sod {
		b.cons = append(b.cons, core.NewSeparationOfDuty(id, s1, s2))
	} else {
		b.cons = append(b.cons, core.NewBindingOfDuty(id, s1, s2))
	}

	return nil
}

func (b *builder) parseAtMostK(lineNo int, line string, fields []string) error {
	if len(fields) < 4 {
		return badLine(lineNo, line, "At-most-k requires k and at least two step tokens")
	}
	k, err := strconv.Atoi(fields[1])
	if err != nil || k < 1 {
		return badLine(lineNo, line, "expected integer k >= 1, got %q", fields[1])
	}
	steps, err := b.parseStepList(lineNo, line, fields[2:])
	if err != nil {
		return err
	}
	if len(steps) < 2 {
		return badLine(lineNo, line, "At-most-k requires at least two steps")
	}
	id := b.nextID
	b.nextID++
	b.cons = append(b.cons, core.NewAtMostK(id, k, steps))

	return nil
}

func (b *builder) parseStepList(lineNo int, line string, toks []string) ([]int, error) {
	var steps []int
	for _, tok := range toks {
		s, ok := parseStepToken(tok)
		if !ok {
			return nil, badLine(lineNo, line, "expected s<j> token, got %q", tok)
		}
		if err := b.checkStep(lineNo, line, s); err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}

	return steps, nil
}

// parseTeamShaped handles "One-team (s<j>)+ ( ( u<j>+ ) )+" and the
// identically-shaped Wang-li line.
func (b *builder) parseTeamShaped(lineNo int, line string, fields []string, oneTeam bool) error {
	rest := fields[1:]
	i := 0
	var steps []int
	for i < len(rest) && rest[i] != "(" {
		s, ok := parseStepToken(rest[i])
		if !ok {
			return badLine(lineNo, line, "expected s<j> token, got %q", rest[i])
		}
		if err := b.checkStep(lineNo, line, s); err != nil {
			return err
		}
		steps = append(steps, s)
		i++
	}
	if len(steps) == 0 {
		return badLine(lineNo, line, "expected at least one step token")
	}

	teams, err := b.parseTeamLists(lineNo, line, rest[i:])
	if err != nil {
		return err
	}
	if len(teams) == 0 {
		return &ParseError{Category: EmptyTeamList, Line: lineNo, Excerpt: line, Message: "expected at least one parenthesized team/department list"}
	}

	id := b.nextID
	b.nextID++
	if oneTeam {
		b.cons = append(b.cons, core.NewOneTeam(id, steps, teams))
	} else {
		b.cons = append(b.cons, core.NewWangLi(id, steps, teams))
	}

	return nil
}

// parseTeamLists parses a sequence of "( u<j>+ )" groups.
func (b *builder) parseTeamLists(lineNo int, line string, toks []string) ([][]int, error) {
	var teams [][]int
	i := 0
	for i < len(toks) {
		if toks[i] != "(" {
			return nil, badLine(lineNo, line, "expected '(' to start a team list, got %q", toks[i])
		}
		i++
		var team []int
		for i < len(toks) && toks[i] != ")" {
			u, ok := parseUserToken(toks[i])
			if !ok {
				return nil, badLine(lineNo, line, "expected u<j> token inside team list, got %q", toks[i])
			}
			if err := b.checkUser(lineNo, line, u); err != nil {
				return nil, err
			}
			team = append(team, u)
			i++
		}
		if i >= len(toks) {
			return nil, badLine(lineNo, line, "unterminated team list, missing ')'")
		}
		i++ // consume ')'
		if len(team) == 0 {
			return nil, &ParseError{Category: EmptyTeamList, Line: lineNo, Excerpt: line, Message: "team/department list has no users"}
		}
		teams = append(teams, team)
	}

	return teams, nil
}

func (b *builder) parseSUAL(lineNo int, line string, fields []string) error {
	if len(fields) < 4 {
		return badLine(lineNo, line, "Super-user-at-least requires h, steps, and a super-user list")
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil || h < 0 {
		return badLine(lineNo, line, "expected integer h >= 0, got %q", fields[1])
	}
	rest := fields[2:]
	i := 0
	var steps []int
	for i < len(rest) && rest[i] != "(" {
		s, ok := parseStepToken(rest[i])
		if !ok {
			return badLine(lineNo, line, "expected s<j> token, got %q", rest[i])
		}
		if err := b.checkStep(lineNo, line, s); err != nil {
			return err
		}
		steps = append(steps, s)
		i++
	}
	if len(steps) == 0 {
		return badLine(lineNo, line, "expected at least one step token")
	}
	teams, err := b.parseTeamLists(lineNo, line, rest[i:])
	if err != nil {
		return err
	}
	if len(teams) != 1 {
		return badLine(lineNo, line, "expected exactly one parenthesized super-user list")
	}

	id := b.nextID
	b.nextID++
	b.cons = append(b.cons, core.NewSuperUserAtLeast(id, steps, h, teams[0]))

	return nil
}

func (b *builder) parseAssignmentDependent(lineNo int, line string, fields []string) error {
	if len(fields) < 3 {
		return badLine(lineNo, line, "Assignment-dependent requires two step tokens and two parenthesized lists")
	}
	s1, ok1 := parseStepToken(fields[1])
	s2, ok2 := parseStepToken(fields[2])
	if !ok1 || !ok2 {
		return badLine(lineNo, line, "expected two s<j> tokens")
	}
	if err := b.checkStep(lineNo, line, s1); err != nil {
		return err
	}
	if err := b.checkStep(lineNo, line, s2); err != nil {
		return err
	}
	teams, err := b.parseTeamLists(lineNo, line, fields[3:])
	if err != nil {
		return err
	}
	if len(teams) != 2 {
		return badLine(lineNo, line, "expected exactly two parenthesized user lists (source, target)")
	}

	id := b.nextID
	b.nextID++
	b.cons = append(b.cons, core.NewAssignmentDependent(id, s1, s2, teams[0], teams[1]))

	return nil
}
