package aisync

import (
	"context"
	"testing"

	"github.com/bianoble/ai-config-sync/internal/mirror"
)

// nopRunner reports success for every transfer without touching anything.
type nopRunner struct {
	calls int
}

func (n *nopRunner) Mirror(ctx context.Context, source, destination string, opts mirror.Options) (mirror.Result, error) {
	n.calls++
	return mirror.Result{Success: true}, nil
}

func TestNewRequiresRemote(t *testing.T) {
	if _, err := New(Options{Config: RuntimeConfig{RemoteHost: "example.com"}}); err == nil {
		t.Fatal("expected error for missing remote user")
	}
	if _, err := New(Options{Config: RuntimeConfig{RemoteUser: "alice"}}); err == nil {
		t.Fatal("expected error for missing remote host")
	}
}

func TestNewDefaults(t *testing.T) {
	client, err := New(Options{Config: RuntimeConfig{RemoteUser: "alice", RemoteHost: "example.com"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if client.cfg.RemoteDir == "" {
		t.Error("RemoteDir default not applied")
	}
	if client.cfg.Primary != SideLinux {
		t.Errorf("Primary = %q, want linux", client.cfg.Primary)
	}
}

func TestNewRejectsWindowsPrimaryWithoutUser(t *testing.T) {
	_, err := New(Options{Config: RuntimeConfig{
		RemoteUser: "alice",
		RemoteHost: "example.com",
		Primary:    SideWindows,
	}})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestPlanPushLinuxOnly(t *testing.T) {
	client, err := New(Options{Config: RuntimeConfig{RemoteUser: "alice", RemoteHost: "example.com"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	directives, err := client.Plan(Push)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(directives) != len(client.Entries()) {
		t.Errorf("got %d directives for %d entries", len(directives), len(client.Entries()))
	}
	for _, d := range directives {
		if !d.Remote {
			t.Errorf("%s: expected only remote transfers without a Windows user", d.EntryID)
		}
	}
}

func TestPushRunsEveryDirective(t *testing.T) {
	runner := &nopRunner{}
	var progressed int
	client, err := New(Options{
		Config:   RuntimeConfig{RemoteUser: "alice", RemoteHost: "example.com"},
		Runner:   runner,
		Progress: func(Outcome) { progressed++ },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	directives, err := client.Plan(Push)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	rep, err := client.Push(context.Background())
	if err != nil {
		t.Fatalf("Push: %v", err)
	}
	if len(rep.Outcomes) != len(directives) {
		t.Errorf("got %d outcomes for %d directives", len(rep.Outcomes), len(directives))
	}
	if progressed != len(directives) {
		t.Errorf("progress called %d times", progressed)
	}
	if rep.ExitCode() != 0 {
		t.Errorf("ExitCode = %d", rep.ExitCode())
	}
}

func TestReconcileUnknownEntry(t *testing.T) {
	client, err := New(Options{Config: RuntimeConfig{RemoteUser: "alice", RemoteHost: "example.com"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := client.Reconcile("nonexistent", Push); err == nil {
		t.Fatal("expected error for unknown entry")
	}
}

func TestCustomEntriesExtendTable(t *testing.T) {
	client, err := New(Options{
		Config: RuntimeConfig{RemoteUser: "alice", RemoteHost: "example.com"},
		CustomEntries: []ConfigEntry{{
			ID:              "aider-config",
			Kind:            "file",
			LinuxPath:       "~/.aider.conf.yml",
			RemoteNameLinux: "aider.linux.yml",
		}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	found := false
	for _, e := range client.Entries() {
		if e.ID == "aider-config" {
			found = true
		}
	}
	if !found {
		t.Error("custom entry missing from table")
	}
}
