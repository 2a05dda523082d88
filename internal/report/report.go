// Package report aggregates per-declaration lowering outcomes across a
// run and renders a human-readable summary, the same "collect then
// summarize" shape the teacher's benchmark harness uses for a batch of
// evaluation results.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	swifterrors "github.com/swiftlower/swiftlower/internal/errors"
)

// Outcome classifies one declaration's result.
type Outcome int

const (
	OutcomeLowered Outcome = iota
	OutcomeWarning
	OutcomeError
)

// Entry is one declaration's outcome, ready to render.
type Entry struct {
	Name    string
	Outcome Outcome
	Report  *swifterrors.Report // nil when Outcome == OutcomeLowered
}

// Run collects entries across an entire visitor walk (possibly over
// several files) and renders a summary.
type Run struct {
	Entries []Entry
}

// New creates an empty Run.
func New() *Run { return &Run{} }

// AddLowered records a declaration that lowered cleanly.
func (r *Run) AddLowered(name string) {
	r.Entries = append(r.Entries, Entry{Name: name, Outcome: OutcomeLowered})
}

// AddDiagnostic records a declaration that produced a warning or error,
// classified by the report's code ("VIS001"/"VIS003" are
// warnings; everything else is an error).
func (r *Run) AddDiagnostic(name string, rep *swifterrors.Report) {
	outcome := OutcomeError
	if rep.Code == swifterrors.VIS001 || rep.Code == swifterrors.VIS003 {
		outcome = OutcomeWarning
	}
	r.Entries = append(r.Entries, Entry{Name: name, Outcome: outcome, Report: rep})
}

// Counts tallies entries by outcome.
func (r *Run) Counts() (lowered, warnings, errors int) {
	for _, e := range r.Entries {
		switch e.Outcome {
		case OutcomeLowered:
			lowered++
		case OutcomeWarning:
			warnings++
		case OutcomeError:
			errors++
		}
	}
	return
}

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// Summary renders a colorized, multi-line report suitable for a CLI.
func (r *Run) Summary() string {
	var b strings.Builder
	lowered, warnings, errs := r.Counts()

	for _, e := range r.Entries {
		switch e.Outcome {
		case OutcomeLowered:
			fmt.Fprintf(&b, "%s %s\n", green("lowered"), e.Name)
		case OutcomeWarning:
			fmt.Fprintf(&b, "%s %s: %s\n", yellow("warn   "), e.Name, e.Report.Message)
		case OutcomeError:
			fmt.Fprintf(&b, "%s %s: %s\n", red("error  "), e.Name, e.Report.Message)
		}
	}

	fmt.Fprintf(&b, "\n%s %d lowered, %d warnings, %d errors\n",
		bold("summary:"), lowered, warnings, errs)
	return b.String()
}
