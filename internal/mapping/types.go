package mapping

// Kind distinguishes single files from directory trees.
type Kind string

const (
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
)

// ConfigEntry describes one logical configuration artifact: where it lives on
// the Linux side, where its Windows counterpart lives (if any), and how it is
// named in the remote sync directory.
//
// Dual-environment entries (instruction files that exist on both sides but
// are stored once remotely) carry a single canonical RemoteName and have the
// environment distinction resolved locally before upload. All other entries
// keep separate per-environment remote copies under RemoteNameLinux and
// RemoteNameWindows.
type ConfigEntry struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description,omitempty"`
	Kind        Kind   `yaml:"kind"`

	// LinuxPath may start with "~", expanded at resolve time.
	LinuxPath string `yaml:"linux_path"`

	// WindowsPathTemplate contains the {WIN_USER} placeholder. Empty means
	// the artifact has no Windows counterpart.
	WindowsPathTemplate string `yaml:"windows_path,omitempty"`

	DualEnvironment bool `yaml:"dual_environment,omitempty"`

	// RemoteName is the canonical remote name for dual-environment entries.
	RemoteName string `yaml:"remote_name,omitempty"`

	// Per-environment remote names for entries kept separate on the remote.
	RemoteNameLinux   string `yaml:"remote_name_linux,omitempty"`
	RemoteNameWindows string `yaml:"remote_name_windows,omitempty"`
}

// IsDirectory reports whether the entry mirrors a directory tree rather than
// a single file.
func (e ConfigEntry) IsDirectory() bool {
	return e.Kind == KindDirectory
}

// HasWindows reports whether the entry has a Windows counterpart.
func (e ConfigEntry) HasWindows() bool {
	return e.WindowsPathTemplate != ""
}
