// Package report renders a human-readable record (status, solver name,
// timing, per-user step distribution, violation list, conflict list) and
// a machine-readable step->user mapping, both from a solver.Solver's
// result.Result and solver.BuildReport.
//
// Styling borrows the open-platform-model-cli pattern of a small,
// named color palette plus semantic styles built on
// charmbracelet/lipgloss -- used narrowly here (a status banner and
// section headers), never as a TUI widget tree: this is a batch report
// for a terminal or a file, not an interactive shell or a plotting
// surface. Text content, not layout, carries the report's information.
package report
