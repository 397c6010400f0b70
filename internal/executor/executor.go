// Package executor consumes transfer directives strictly one at a time,
// invoking the mirroring tool for remote directives and a plain local copy
// for reconciliation directives. No retries; exactly one outcome per
// directive, appended to the run report in submission order.
package executor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bianoble/ai-config-sync/internal/mirror"
	"github.com/bianoble/ai-config-sync/internal/plan"
	"github.com/bianoble/ai-config-sync/internal/reconcile"
	"github.com/bianoble/ai-config-sync/internal/report"
	log "github.com/sirupsen/logrus"
)

// Executor runs planned directives sequentially.
type Executor struct {
	Runner mirror.Runner

	// Verbose is passed through to the mirroring tool.
	Verbose bool

	// ExtraOpts are appended to every mirroring-tool invocation.
	ExtraOpts []string

	// Progress, when set, is called with each outcome as it is produced, so
	// warnings and failures surface per-directive rather than only at the
	// end of the run.
	Progress func(report.Outcome)
}

// ExecuteAll runs every directive in order and returns the aggregated report.
func (e *Executor) ExecuteAll(ctx context.Context, directives []plan.Directive) *report.RunReport {
	rep := &report.RunReport{}
	for _, d := range directives {
		o := e.Execute(ctx, d)
		rep.Add(o)
		if e.Progress != nil {
			e.Progress(o)
		}
	}
	return rep
}

// Execute runs a single directive. A local source that does not exist yields
// skipped_missing_source without invoking the tool; this is the executor's
// sole pre-flight validation. Remote sources are not checked — their absence
// is only discoverable via the transfer attempt itself and surfaces as a
// failure with the tool's own error.
func (e *Executor) Execute(ctx context.Context, d plan.Directive) report.Outcome {
	if d.SourceIsLocal() {
		if _, err := os.Stat(strings.TrimSuffix(d.Source, "/")); os.IsNotExist(err) {
			log.WithFields(log.Fields{"entry": d.EntryID, "path": d.Source}).
				Warn("Source does not exist; skipping")
			return report.Outcome{
				Directive: d,
				Status:    report.StatusSkippedMissingSource,
				Message:   fmt.Sprintf("source %s does not exist", d.Source),
			}
		}
	}

	if d.Remote {
		return e.executeRemote(ctx, d)
	}
	return e.executeLocal(d)
}

func (e *Executor) executeRemote(ctx context.Context, d plan.Directive) report.Outcome {
	opts := mirror.Options{
		Archive:  true,
		Compress: true,
		Update:   d.ProtectNewer,
		Verbose:  e.Verbose,
		DryRun:   d.DryRun,
		Delete:   d.Directory,
		Extra:    e.ExtraOpts,
	}

	log.WithFields(log.Fields{"entry": d.EntryID, "source": d.Source, "destination": d.Destination}).
		Debug("Invoking mirroring tool")

	res, err := e.Runner.Mirror(ctx, d.Source, d.Destination, opts)
	if err != nil {
		return report.Outcome{Directive: d, Status: report.StatusFailed, Message: err.Error()}
	}
	if !res.Success {
		msg := strings.TrimSpace(res.Stderr)
		if msg == "" {
			msg = strings.TrimSpace(res.Stdout)
		}
		if msg == "" {
			msg = fmt.Sprintf("mirroring tool exited with code %d", res.ExitCode)
		}
		return report.Outcome{Directive: d, Status: report.StatusFailed, Message: msg}
	}
	return report.Outcome{Directive: d, Status: report.StatusSucceeded, Message: strings.TrimSpace(res.Stdout)}
}

func (e *Executor) executeLocal(d plan.Directive) report.Outcome {
	if d.DryRun {
		return report.Outcome{
			Directive: d,
			Status:    report.StatusSucceeded,
			Message:   fmt.Sprintf("would copy %s to %s", d.Source, d.Destination),
		}
	}
	if err := reconcile.Copy(d.Source, d.Destination, d.Directory); err != nil {
		return report.Outcome{Directive: d, Status: report.StatusFailed, Message: err.Error()}
	}
	return report.Outcome{Directive: d, Status: report.StatusSucceeded}
}
