// Package backup snapshots local configuration files before a pull
// overwrites them. Snapshots are plain copies under a timestamped directory
// in the user's home, one subtree per environment side.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bianoble/ai-config-sync/internal/config"
	"github.com/bianoble/ai-config-sync/internal/mapping"
	"github.com/bianoble/ai-config-sync/internal/reconcile"
	"github.com/bianoble/ai-config-sync/internal/resolve"
	homedir "github.com/mitchellh/go-homedir"
)

// DefaultRoot returns the backup root directory under the user's home.
func DefaultRoot() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".ai-config-sync", "backups"), nil
}

// Snapshot copies every existing local path for the given entries into a new
// timestamped directory under root and returns that directory. Missing local
// paths are ignored; there is nothing to protect.
func Snapshot(root string, entries []mapping.ConfigEntry, cfg config.RuntimeConfig, res *resolve.Resolver) (string, error) {
	dir := filepath.Join(root, time.Now().Format("20060102-150405"))

	for _, entry := range entries {
		sides := []config.Side{config.SideLinux}
		if entry.HasWindows() && cfg.WindowsEnabled() {
			sides = append(sides, config.SideWindows)
		}
		for _, side := range sides {
			src, err := res.Local(entry, cfg, side)
			if err != nil {
				return "", err
			}
			if _, statErr := os.Stat(strings.TrimSuffix(src, "/")); os.IsNotExist(statErr) {
				continue
			}

			dst := filepath.Join(dir, string(side), entry.ID)
			if !entry.IsDirectory() {
				dst = filepath.Join(filepath.Dir(dst), entry.ID+filepath.Ext(src))
			}
			if err := reconcile.Copy(src, dst, entry.IsDirectory()); err != nil {
				return "", fmt.Errorf("backing up '%s': %w", entry.ID, err)
			}
		}
	}

	return dir, nil
}
