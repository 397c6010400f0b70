// Package aisync provides the public Go library API for ai-config-sync.
//
// It wires the mapping table, path resolver, transfer planner and executor
// into a Client for embedding the sync logic in other Go programs.
//
// # Basic Usage
//
//	client, err := aisync.New(aisync.Options{
//	    Config: aisync.RuntimeConfig{
//	        RemoteUser: "alice",
//	        RemoteHost: "example.com",
//	        RemoteDir:  "~/sync-files/ai-agents-related",
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := client.Push(ctx)
package aisync

import (
	"context"
	"fmt"

	"github.com/bianoble/ai-config-sync/internal/config"
	"github.com/bianoble/ai-config-sync/internal/executor"
	"github.com/bianoble/ai-config-sync/internal/mapping"
	"github.com/bianoble/ai-config-sync/internal/mirror"
	"github.com/bianoble/ai-config-sync/internal/plan"
	"github.com/bianoble/ai-config-sync/internal/reconcile"
	"github.com/bianoble/ai-config-sync/internal/resolve"
)

// Options configures a Client.
type Options struct {
	// Config is the resolved runtime configuration. RemoteUser and
	// RemoteHost are required.
	Config RuntimeConfig

	// CustomEntries extend or override the built-in mapping table by ID.
	CustomEntries []ConfigEntry

	// Runner overrides the mirroring-tool invocation; nil uses rsync from
	// PATH. Tests inject fakes here.
	Runner mirror.Runner

	// Progress, when set, receives each outcome as it is produced.
	Progress func(Outcome)
}

// Client plans and executes sync runs against one remote server.
type Client struct {
	cfg        RuntimeConfig
	table      *mapping.Table
	resolver   *resolve.Resolver
	planner    *plan.Planner
	executor   *executor.Executor
	reconciler *reconcile.Reconciler
}

// New validates the options and builds a Client.
func New(opts Options) (*Client, error) {
	if opts.Config.RemoteUser == "" {
		return nil, &config.ConfigurationError{Field: "remote-user", Reason: "required"}
	}
	if opts.Config.RemoteHost == "" {
		return nil, &config.ConfigurationError{Field: "remote-host", Reason: "required"}
	}
	if opts.Config.RemoteDir == "" {
		opts.Config.RemoteDir = config.DefaultRemoteDir
	}
	if opts.Config.Primary == "" {
		opts.Config.Primary = SideLinux
	}
	if opts.Config.Primary == SideWindows && !opts.Config.WindowsEnabled() {
		return nil, &config.ConfigurationError{Field: "primary", Reason: "primary environment 'windows' requires a Windows user"}
	}

	table, err := mapping.NewTable(opts.CustomEntries)
	if err != nil {
		return nil, err
	}

	resolver, err := resolve.NewResolver()
	if err != nil {
		return nil, err
	}

	runner := opts.Runner
	if runner == nil {
		runner = &mirror.RsyncRunner{}
	}

	return &Client{
		cfg:      opts.Config,
		table:    table,
		resolver: resolver,
		planner:  &plan.Planner{Resolver: resolver},
		executor: &executor.Executor{
			Runner:    runner,
			Verbose:   opts.Config.Verbose,
			ExtraOpts: opts.Config.RsyncOpts,
			Progress:  opts.Progress,
		},
		reconciler: &reconcile.Reconciler{Resolver: resolver},
	}, nil
}

// Entries returns the mapping table in stable order.
func (c *Client) Entries() []ConfigEntry {
	return c.table.AllEntries()
}

// Plan returns the ordered directives for an operation without executing
// anything.
func (c *Client) Plan(op Operation) ([]Directive, error) {
	return c.planner.Plan(c.table.AllEntries(), c.cfg, op)
}

// Push plans and executes an upload run.
func (c *Client) Push(ctx context.Context) (*RunReport, error) {
	return c.run(ctx, Push)
}

// Pull plans and executes a download run.
func (c *Client) Pull(ctx context.Context) (*RunReport, error) {
	return c.run(ctx, Pull)
}

func (c *Client) run(ctx context.Context, op Operation) (*RunReport, error) {
	directives, err := c.planner.Plan(c.table.AllEntries(), c.cfg, op)
	if err != nil {
		return nil, err
	}
	return c.executor.ExecuteAll(ctx, directives), nil
}

// Reconcile runs the cross-environment copy for one dual-environment entry
// without touching the remote.
func (c *Client) Reconcile(entryID string, direction Operation) (ConsolidationResult, error) {
	entry, ok := c.table.Lookup(entryID)
	if !ok {
		return ConsolidationResult{}, fmt.Errorf("unknown mapping entry '%s'", entryID)
	}
	return c.reconciler.Reconcile(entry, c.cfg, direction)
}
