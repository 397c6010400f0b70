// Package report aggregates per-directive outcomes into the run summary that
// drives user-facing output and the process exit code.
package report

import (
	"fmt"

	"github.com/bianoble/ai-config-sync/internal/plan"
)

// Status classifies the outcome of one directive.
type Status string

const (
	StatusSucceeded            Status = "succeeded"
	StatusSkippedMissingSource Status = "skipped_missing_source"
	StatusFailed               Status = "failed"
)

// Outcome is the result of executing one directive. Every directive yields
// exactly one outcome, in submission order.
type Outcome struct {
	Directive plan.Directive
	Status    Status

	// Message holds captured tool output or error text.
	Message string
}

// RunReport is the ordered sequence of outcomes for one run.
type RunReport struct {
	Outcomes []Outcome
}

// Add appends an outcome.
func (r *RunReport) Add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Counts returns the number of succeeded, skipped and failed outcomes.
func (r *RunReport) Counts() (succeeded, skipped, failed int) {
	for _, o := range r.Outcomes {
		switch o.Status {
		case StatusSucceeded:
			succeeded++
		case StatusSkippedMissingSource:
			skipped++
		case StatusFailed:
			failed++
		}
	}
	return
}

// ExitCode is 0 when no outcome failed. Skips are soft warnings and do not
// affect the exit code.
func (r *RunReport) ExitCode() int {
	_, _, failed := r.Counts()
	if failed > 0 {
		return 1
	}
	return 0
}

// Summary renders the final one-line count summary.
func (r *RunReport) Summary() string {
	succeeded, skipped, failed := r.Counts()
	return fmt.Sprintf("%d succeeded, %d skipped, %d failed", succeeded, skipped, failed)
}
