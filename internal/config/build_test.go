package config

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func clearSyncEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{"SYNC_USER", "SYNC_HOST", "SYNC_DIR", "WIN_USER"} {
		t.Setenv(v, "")
	}
}

func TestBuildFlagsOnly(t *testing.T) {
	clearSyncEnv(t)

	cfg, err := Build(Options{RemoteUser: "alice", RemoteHost: "example.com"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if cfg.RemoteUser != "alice" || cfg.RemoteHost != "example.com" {
		t.Errorf("remote = %s@%s", cfg.RemoteUser, cfg.RemoteHost)
	}
	if cfg.RemoteDir != DefaultRemoteDir {
		t.Errorf("RemoteDir = %q, want default %q", cfg.RemoteDir, DefaultRemoteDir)
	}
	if cfg.Primary != SideLinux {
		t.Errorf("Primary = %q, want linux", cfg.Primary)
	}
	if cfg.WindowsEnabled() {
		t.Error("windows should be disabled without a Windows user")
	}
}

func TestBuildEnvFallback(t *testing.T) {
	clearSyncEnv(t)
	t.Setenv("SYNC_USER", "bob")
	t.Setenv("SYNC_HOST", "backup.local")
	t.Setenv("SYNC_DIR", "~/custom-dir")
	t.Setenv("WIN_USER", "bob_w")

	cfg, err := Build(Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if cfg.RemoteUser != "bob" || cfg.RemoteHost != "backup.local" {
		t.Errorf("remote = %s@%s", cfg.RemoteUser, cfg.RemoteHost)
	}
	if cfg.RemoteDir != "~/custom-dir" {
		t.Errorf("RemoteDir = %q", cfg.RemoteDir)
	}
	if cfg.WindowsUser != "bob_w" {
		t.Errorf("WindowsUser = %q", cfg.WindowsUser)
	}
}

func TestBuildFlagsBeatEnv(t *testing.T) {
	clearSyncEnv(t)
	t.Setenv("SYNC_USER", "bob")
	t.Setenv("SYNC_HOST", "backup.local")

	cfg, err := Build(Options{RemoteUser: "alice", RemoteHost: "example.com"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if cfg.RemoteUser != "alice" || cfg.RemoteHost != "example.com" {
		t.Errorf("CLI flags should win, got %s@%s", cfg.RemoteUser, cfg.RemoteHost)
	}
}

func TestBuildMissingRequired(t *testing.T) {
	clearSyncEnv(t)

	tests := []struct {
		name  string
		opts  Options
		field string
	}{
		{"missing user", Options{RemoteHost: "example.com"}, "remote-user"},
		{"missing host", Options{RemoteUser: "alice"}, "remote-host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.opts)
			var cerr *ConfigurationError
			if !errors.As(err, &cerr) {
				t.Fatalf("want ConfigurationError, got %v", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cerr.Field, tt.field)
			}
		})
	}
}

func TestBuildPrimary(t *testing.T) {
	clearSyncEnv(t)

	base := Options{RemoteUser: "alice", RemoteHost: "example.com"}

	cfg, err := Build(withPrimary(base, "windows", "alice_w"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if cfg.Primary != SideWindows {
		t.Errorf("Primary = %q", cfg.Primary)
	}

	// windows primary without a Windows user is a configuration error.
	if _, err := Build(withPrimary(base, "windows", "")); err == nil {
		t.Fatal("expected error for windows primary without Windows user")
	}

	if _, err := Build(withPrimary(base, "macos", "")); err == nil {
		t.Fatal("expected error for unknown primary")
	} else if !strings.Contains(err.Error(), "'linux' or 'windows'") {
		t.Errorf("unexpected error: %v", err)
	}
}

func withPrimary(o Options, primary, winUser string) Options {
	o.Primary = primary
	o.WindowsUser = winUser
	return o
}

func TestBuildRsyncOptsSplit(t *testing.T) {
	clearSyncEnv(t)

	cfg, err := Build(Options{
		RemoteUser: "alice",
		RemoteHost: "example.com",
		RsyncOpts:  "--bwlimit=1000  --partial",
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []string{"--bwlimit=1000", "--partial"}
	if !reflect.DeepEqual(cfg.RsyncOpts, want) {
		t.Errorf("RsyncOpts = %v, want %v", cfg.RsyncOpts, want)
	}
}

func TestRemoteSpec(t *testing.T) {
	cfg := RuntimeConfig{RemoteUser: "alice", RemoteHost: "example.com"}
	if got := cfg.RemoteSpec(); got != "alice@example.com" {
		t.Errorf("RemoteSpec = %q", got)
	}
}
