// Package resolve turns mapping entries into concrete filesystem paths and
// remote specifiers. Resolution is pure: the invoking user's home directory
// is captured once at construction, and a fixed (entry, config, side) triple
// always resolves to the same path within a run.
package resolve

import (
	"fmt"
	"path"
	"strings"

	"github.com/bianoble/ai-config-sync/internal/config"
	"github.com/bianoble/ai-config-sync/internal/mapping"
	homedir "github.com/mitchellh/go-homedir"
)

const winUserToken = "{WIN_USER}"

// Resolver expands mapping templates against a RuntimeConfig.
type Resolver struct {
	home string
}

// NewResolver creates a Resolver bound to the invoking user's home directory.
func NewResolver() (*Resolver, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	return &Resolver{home: home}, nil
}

// NewResolverWithHome creates a Resolver with an explicit home directory.
// Used by tests to resolve against a temp dir.
func NewResolverWithHome(home string) *Resolver {
	return &Resolver{home: home}
}

// Local returns the absolute local path for an entry on the given side.
// Directory entries keep a trailing slash so the mirroring tool copies tree
// contents rather than nesting the source directory.
func (r *Resolver) Local(entry mapping.ConfigEntry, cfg config.RuntimeConfig, side config.Side) (string, error) {
	switch side {
	case config.SideLinux:
		return r.normalize(entry, r.expandHome(entry.LinuxPath)), nil
	case config.SideWindows:
		if !cfg.WindowsEnabled() {
			return "", &config.ConfigurationError{Field: "windows-user", Reason: "windows path requested but no Windows user is configured"}
		}
		if !entry.HasWindows() {
			return "", fmt.Errorf("entry '%s' has no windows path", entry.ID)
		}
		p := strings.ReplaceAll(entry.WindowsPathTemplate, winUserToken, cfg.WindowsUser)
		return r.normalize(entry, p), nil
	default:
		return "", fmt.Errorf("unknown side '%s'", side)
	}
}

// Remote returns the user@host:path specifier for an entry's remote copy on
// the given side. Dual-environment entries resolve to the single canonical
// remote name regardless of side.
func (r *Resolver) Remote(entry mapping.ConfigEntry, cfg config.RuntimeConfig, side config.Side) (string, error) {
	var name string
	switch {
	case entry.DualEnvironment:
		name = entry.RemoteName
	case side == config.SideLinux:
		name = entry.RemoteNameLinux
	case side == config.SideWindows:
		if !cfg.WindowsEnabled() {
			return "", &config.ConfigurationError{Field: "windows-user", Reason: "windows remote path requested but no Windows user is configured"}
		}
		name = entry.RemoteNameWindows
	default:
		return "", fmt.Errorf("unknown side '%s'", side)
	}
	if name == "" {
		return "", fmt.Errorf("entry '%s' has no remote name for side '%s'", entry.ID, side)
	}

	base := strings.TrimSuffix(cfg.RemoteDir, "/")
	spec := cfg.RemoteSpec() + ":" + base + "/" + strings.TrimSuffix(name, "/")
	if entry.IsDirectory() {
		spec += "/"
	}
	return spec, nil
}

// expandHome expands a leading "~" to the resolver's home directory.
func (r *Resolver) expandHome(p string) string {
	if p == "~" {
		return r.home
	}
	if strings.HasPrefix(p, "~/") {
		return r.home + "/" + strings.TrimPrefix(p, "~/")
	}
	return p
}

// normalize cleans a local path while preserving the trailing slash that
// directory entries rely on for content-mirroring semantics.
func (r *Resolver) normalize(entry mapping.ConfigEntry, p string) string {
	cleaned := path.Clean(p)
	if entry.IsDirectory() {
		cleaned += "/"
	}
	return cleaned
}
