// Package reconcile keeps the Windows and Linux copies of dual-environment
// entries consistent around a transfer: on push the declared primary
// environment is copied onto the other side before upload; on pull the
// freshly downloaded Linux copy is distributed to Windows. Reconciliation
// copies always overwrite — the source side is authoritative.
package reconcile

import (
	"fmt"
	"os"

	"github.com/bianoble/ai-config-sync/internal/config"
	"github.com/bianoble/ai-config-sync/internal/mapping"
	"github.com/bianoble/ai-config-sync/internal/plan"
	"github.com/bianoble/ai-config-sync/internal/resolve"
	log "github.com/sirupsen/logrus"
)

// ConsolidationResult reports whether a reconciliation copy took place.
type ConsolidationResult struct {
	Applied       bool
	SkippedReason string
}

// Reconciler performs the cross-environment copy for dual-environment
// entries. Local filesystem only; no network calls.
type Reconciler struct {
	Resolver *resolve.Resolver
}

// Reconcile copies the authoritative side of a dual-environment entry onto
// the other side. Push copies primary onto the other environment; pull copies
// the Linux path (holding the just-downloaded canonical copy) onto Windows.
// A missing source is a soft skip, logged as a warning.
func (r *Reconciler) Reconcile(entry mapping.ConfigEntry, cfg config.RuntimeConfig, direction plan.Operation) (ConsolidationResult, error) {
	if !entry.DualEnvironment {
		return ConsolidationResult{SkippedReason: "not a dual-environment entry"}, nil
	}
	if !cfg.WindowsEnabled() {
		return ConsolidationResult{SkippedReason: "windows sync disabled"}, nil
	}

	var srcSide, dstSide config.Side
	switch direction {
	case plan.Push:
		srcSide = cfg.Primary
		dstSide = config.SideLinux
		if srcSide == config.SideLinux {
			dstSide = config.SideWindows
		}
	case plan.Pull:
		srcSide, dstSide = config.SideLinux, config.SideWindows
	default:
		return ConsolidationResult{}, fmt.Errorf("unknown direction '%s'", direction)
	}

	src, err := r.Resolver.Local(entry, cfg, srcSide)
	if err != nil {
		return ConsolidationResult{}, err
	}
	dst, err := r.Resolver.Local(entry, cfg, dstSide)
	if err != nil {
		return ConsolidationResult{}, err
	}

	if _, statErr := os.Stat(src); os.IsNotExist(statErr) {
		log.WithFields(log.Fields{"entry": entry.ID, "path": src}).
			Warn("Reconciliation source does not exist; skipping")
		return ConsolidationResult{SkippedReason: fmt.Sprintf("source %s does not exist", src)}, nil
	}

	if err := Copy(src, dst, entry.IsDirectory()); err != nil {
		return ConsolidationResult{}, fmt.Errorf("reconciling '%s': %w", entry.ID, err)
	}
	return ConsolidationResult{Applied: true}, nil
}
