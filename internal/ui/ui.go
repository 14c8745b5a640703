// Package ui prints the user-facing status lines of the CLI.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	stepColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen, color.Bold)
	failColor    = color.New(color.FgRed, color.Bold)
	hintColor    = color.New(color.FgHiBlack)
	warnColor    = color.New(color.FgYellow)
)

// SetColor disables ANSI colors for every Printer when enabled is false.
// It never turns them on: fatih/color already decides that from the
// terminal, NO_COLOR and TERM.
func SetColor(enabled bool) {
	if !enabled {
		color.NoColor = true
	}
}

// Printer writes status lines to a single writer.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Step announces a stage of work.
func (p *Printer) Step(format string, args ...any) {
	stepColor.Fprintln(p.w, fmt.Sprintf(format, args...))
}

// Success reports a completed operation.
func (p *Printer) Success(format string, args ...any) {
	successColor.Fprintln(p.w, fmt.Sprintf(format, args...))
}

// Fail reports an error.
func (p *Printer) Fail(format string, args ...any) {
	failColor.Fprintln(p.w, fmt.Sprintf(format, args...))
}

// Warn reports a non-fatal problem.
func (p *Printer) Warn(format string, args ...any) {
	warnColor.Fprintln(p.w, fmt.Sprintf(format, args...))
}

// Hint prints secondary detail such as file listings.
func (p *Printer) Hint(format string, args ...any) {
	hintColor.Fprintln(p.w, fmt.Sprintf(format, args...))
}

// Plain prints an uncolored line.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintln(p.w, fmt.Sprintf(format, args...))
}

// Check prints a doctor-style status line, e.g. "  [ OK ] yarn found".
func (p *Printer) Check(status, format string, args ...any) {
	c := hintColor
	switch status {
	case StatusOK:
		c = successColor
	case StatusWarn:
		c = warnColor
	case StatusFail, StatusMiss:
		c = failColor
	}
	fmt.Fprintf(p.w, "  %s %s\n", c.Sprintf("[%s]", status), fmt.Sprintf(format, args...))
}

// Doctor statuses.
const (
	StatusOK   = " OK "
	StatusWarn = "WARN"
	StatusFail = "FAIL"
	StatusMiss = "MISS"
	StatusInfo = "INFO"
)
