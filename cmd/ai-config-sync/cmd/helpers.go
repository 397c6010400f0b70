package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/bianoble/ai-config-sync/internal/backup"
	"github.com/bianoble/ai-config-sync/internal/config"
	"github.com/bianoble/ai-config-sync/internal/executor"
	"github.com/bianoble/ai-config-sync/internal/mapping"
	"github.com/bianoble/ai-config-sync/internal/mirror"
	"github.com/bianoble/ai-config-sync/internal/plan"
	"github.com/bianoble/ai-config-sync/internal/report"
	"github.com/bianoble/ai-config-sync/internal/resolve"
)

// baseOptions collects the persistent flags shared by every command.
func baseOptions() config.Options {
	return config.Options{
		RemoteUser:  remoteUser,
		RemoteHost:  remoteHost,
		RemoteDir:   remoteDir,
		WindowsUser: windowsUser,
		Verbose:     verbose,
	}
}

// newTable builds the mapping table, merging a custom overlay when --mappings
// is given.
func newTable() (*mapping.Table, error) {
	var custom []mapping.ConfigEntry
	if mappingsPath != "" {
		entries, err := mapping.LoadOverlay(mappingsPath)
		if err != nil {
			return nil, err
		}
		custom = entries
	}
	return mapping.NewTable(custom)
}

// runSync is the shared push/pull driver: build the runtime config, plan the
// directives, execute them sequentially, and render the report.
func runSync(ctx context.Context, op plan.Operation, opts config.Options) error {
	cfg, err := config.Build(opts)
	if err != nil {
		return err
	}

	table, err := newTable()
	if err != nil {
		return err
	}

	resolver, err := resolve.NewResolver()
	if err != nil {
		return err
	}

	if op == plan.Pull && cfg.Backup && !cfg.DryRun {
		root, err := backup.DefaultRoot()
		if err != nil {
			return err
		}
		dir, err := backup.Snapshot(root, table.AllEntries(), *cfg, resolver)
		if err != nil {
			return fmt.Errorf("creating backup: %w", err)
		}
		info("Backed up local files to %s", dir)
	}

	planner := &plan.Planner{Resolver: resolver}
	directives, err := planner.Plan(table.AllEntries(), *cfg, op)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		info("Dry run: nothing will be modified.")
	}

	eng := &executor.Executor{
		Runner:    &mirror.RsyncRunner{},
		Verbose:   cfg.Verbose,
		ExtraOpts: cfg.RsyncOpts,
		Progress:  printOutcome,
	}
	rep := eng.ExecuteAll(ctx, directives)

	info("")
	info("%s complete: %s.", titleFor(op), rep.Summary())

	if rep.ExitCode() != 0 {
		_, _, failed := rep.Counts()
		return fmt.Errorf("%d transfer(s) failed", failed)
	}
	return nil
}

func titleFor(op plan.Operation) string {
	if op == plan.Pull {
		return "Pull"
	}
	return "Push"
}

// printOutcome renders one directive's outcome as it happens.
func printOutcome(o report.Outcome) {
	switch o.Status {
	case report.StatusSucceeded:
		info("  ok       %s", describe(o.Directive))
		if o.Message != "" {
			detail("%s", o.Message)
		}
	case report.StatusSkippedMissingSource:
		info("  skipped  %s (missing source)", describe(o.Directive))
	case report.StatusFailed:
		errorf("%s: %s", describe(o.Directive), o.Message)
	}
}

func describe(d plan.Directive) string {
	if d.Kind == plan.KindReconcile {
		return d.EntryID + " (reconcile)"
	}
	return d.EntryID
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("    "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
