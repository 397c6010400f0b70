package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultRemoteDir is used when neither --remote-dir nor SYNC_DIR is given.
const DefaultRemoteDir = "~/sync-files/ai-agents-related"

// Options carries raw CLI flag values prior to environment fallback.
// Empty strings mean "not given on the command line".
type Options struct {
	RemoteUser  string
	RemoteHost  string
	RemoteDir   string
	WindowsUser string
	Primary     string

	Force   bool
	DryRun  bool
	Verbose bool
	Backup  bool

	// RsyncOpts is the raw --rsync-opts value, split on whitespace.
	RsyncOpts string
}

// Build resolves Options into a RuntimeConfig.
//
// Precedence: CLI flags > environment variables > defaults. A .env file in
// the working directory is loaded first (it never overrides variables already
// present in the environment). Fallback variables: SYNC_USER, SYNC_HOST,
// SYNC_DIR, WIN_USER.
func Build(opts Options) (*RuntimeConfig, error) {
	_ = godotenv.Load() // a missing .env is fine

	remoteUser := fallback(opts.RemoteUser, "SYNC_USER", "")
	remoteHost := fallback(opts.RemoteHost, "SYNC_HOST", "")
	remoteDir := fallback(opts.RemoteDir, "SYNC_DIR", DefaultRemoteDir)
	windowsUser := fallback(opts.WindowsUser, "WIN_USER", "")

	if remoteUser == "" {
		return nil, &ConfigurationError{Field: "remote-user", Reason: "required — set --remote-user or SYNC_USER"}
	}
	if remoteHost == "" {
		return nil, &ConfigurationError{Field: "remote-host", Reason: "required — set --remote-host or SYNC_HOST"}
	}

	primary, err := parsePrimary(opts.Primary)
	if err != nil {
		return nil, err
	}
	if primary == SideWindows && windowsUser == "" {
		return nil, &ConfigurationError{Field: "primary", Reason: "primary environment 'windows' requires --windows-user or WIN_USER"}
	}

	return &RuntimeConfig{
		RemoteUser:  remoteUser,
		RemoteHost:  remoteHost,
		RemoteDir:   remoteDir,
		WindowsUser: windowsUser,
		Primary:     primary,
		Force:       opts.Force,
		DryRun:      opts.DryRun,
		Verbose:     opts.Verbose,
		Backup:      opts.Backup,
		RsyncOpts:   strings.Fields(opts.RsyncOpts),
	}, nil
}

func parsePrimary(raw string) (Side, error) {
	switch raw {
	case "", string(SideLinux):
		return SideLinux, nil
	case string(SideWindows):
		return SideWindows, nil
	default:
		return "", &ConfigurationError{Field: "primary", Reason: "must be 'linux' or 'windows', got '" + raw + "'"}
	}
}

func fallback(flagValue, envVar, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return def
}
