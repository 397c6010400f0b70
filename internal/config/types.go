package config

import "fmt"

// Side identifies one of the two local environments.
type Side string

const (
	SideLinux   Side = "linux"
	SideWindows Side = "windows"
)

// RuntimeConfig holds the resolved operational parameters for one run.
// Constructed once from CLI flags and environment fallbacks, then passed
// explicitly to each component; never mutated afterwards.
type RuntimeConfig struct {
	RemoteUser  string
	RemoteHost  string
	RemoteDir   string
	WindowsUser string // empty disables all Windows-side work

	// Primary is the source-of-truth environment for dual-environment
	// entries during a push. Defaults to linux, the environment the
	// process runs on.
	Primary Side

	Force   bool
	DryRun  bool
	Verbose bool
	Backup  bool

	// RsyncOpts are extra options passed through to every mirroring-tool
	// invocation.
	RsyncOpts []string
}

// WindowsEnabled reports whether Windows-side paths and directives are in
// scope for this run.
func (c RuntimeConfig) WindowsEnabled() bool {
	return c.WindowsUser != ""
}

// RemoteSpec returns the user@host prefix for remote path specifiers.
func (c RuntimeConfig) RemoteSpec() string {
	return c.RemoteUser + "@" + c.RemoteHost
}

// ConfigurationError reports a missing or inconsistent runtime parameter.
// It is fatal: no directive runs after one is raised.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
}
