// Package plan turns the mapping table into an ordered list of transfer
// directives for one push or pull run. Planning is deterministic: identical
// inputs always produce directive sequences equal in content and order.
package plan

import (
	"fmt"

	"github.com/bianoble/ai-config-sync/internal/config"
	"github.com/bianoble/ai-config-sync/internal/mapping"
	"github.com/bianoble/ai-config-sync/internal/resolve"
)

// Planner builds transfer directives from mapping entries.
type Planner struct {
	Resolver *resolve.Resolver
}

// Plan iterates entries in table order and emits the directives for the
// given operation. For dual-environment entries the local reconciliation
// copy is positioned immediately before the upload (push) or immediately
// after the download (pull); sibling directives of one entry are never
// reordered.
func (p *Planner) Plan(entries []mapping.ConfigEntry, cfg config.RuntimeConfig, op Operation) ([]Directive, error) {
	var directives []Directive

	for _, entry := range entries {
		var ds []Directive
		var err error
		switch op {
		case Push:
			ds, err = p.planPush(entry, cfg)
		case Pull:
			ds, err = p.planPull(entry, cfg)
		default:
			return nil, fmt.Errorf("unknown operation '%s'", op)
		}
		if err != nil {
			return nil, fmt.Errorf("planning entry '%s': %w", entry.ID, err)
		}
		directives = append(directives, ds...)
	}

	for _, d := range directives {
		if d.Source == d.Destination {
			return nil, fmt.Errorf("entry '%s': source and destination are identical (%s)", d.EntryID, d.Source)
		}
	}

	return directives, nil
}

func (p *Planner) planPush(entry mapping.ConfigEntry, cfg config.RuntimeConfig) ([]Directive, error) {
	if entry.DualEnvironment && cfg.WindowsEnabled() {
		// Reconcile the primary environment onto the other side, then
		// upload the primary copy as the single canonical remote file.
		primarySide, otherSide := sides(cfg.Primary)
		primary, err := p.Resolver.Local(entry, cfg, primarySide)
		if err != nil {
			return nil, err
		}
		other, err := p.Resolver.Local(entry, cfg, otherSide)
		if err != nil {
			return nil, err
		}
		remote, err := p.Resolver.Remote(entry, cfg, primarySide)
		if err != nil {
			return nil, err
		}
		return []Directive{
			p.directive(entry, cfg, KindReconcile, primary, other, false),
			p.directive(entry, cfg, KindTransfer, primary, remote, true),
		}, nil
	}

	// Single-environment entries (and dual entries with Windows disabled)
	// upload each in-scope side separately.
	var ds []Directive
	for _, side := range scopeSides(entry, cfg) {
		local, err := p.Resolver.Local(entry, cfg, side)
		if err != nil {
			return nil, err
		}
		remote, err := p.Resolver.Remote(entry, cfg, side)
		if err != nil {
			return nil, err
		}
		ds = append(ds, p.directive(entry, cfg, KindTransfer, local, remote, true))
	}
	return ds, nil
}

func (p *Planner) planPull(entry mapping.ConfigEntry, cfg config.RuntimeConfig) ([]Directive, error) {
	if entry.DualEnvironment {
		// Download the canonical remote copy to Linux, then distribute it
		// to Windows when Windows operations are enabled.
		linux, err := p.Resolver.Local(entry, cfg, config.SideLinux)
		if err != nil {
			return nil, err
		}
		remote, err := p.Resolver.Remote(entry, cfg, config.SideLinux)
		if err != nil {
			return nil, err
		}
		ds := []Directive{
			p.directive(entry, cfg, KindTransfer, remote, linux, true),
		}
		if cfg.WindowsEnabled() {
			windows, err := p.Resolver.Local(entry, cfg, config.SideWindows)
			if err != nil {
				return nil, err
			}
			ds = append(ds, p.directive(entry, cfg, KindReconcile, linux, windows, false))
		}
		return ds, nil
	}

	var ds []Directive
	for _, side := range scopeSides(entry, cfg) {
		local, err := p.Resolver.Local(entry, cfg, side)
		if err != nil {
			return nil, err
		}
		remote, err := p.Resolver.Remote(entry, cfg, side)
		if err != nil {
			return nil, err
		}
		ds = append(ds, p.directive(entry, cfg, KindTransfer, remote, local, true))
	}
	return ds, nil
}

func (p *Planner) directive(entry mapping.ConfigEntry, cfg config.RuntimeConfig, kind DirectiveKind, src, dst string, remote bool) Directive {
	protect := false
	if kind == KindTransfer {
		protect = !cfg.Force
	}
	return Directive{
		EntryID:      entry.ID,
		Description:  entry.Description,
		Source:       src,
		Destination:  dst,
		Remote:       remote,
		Directory:    entry.IsDirectory(),
		ProtectNewer: protect,
		DryRun:       cfg.DryRun,
		Kind:         kind,
	}
}

// scopeSides returns the local sides in scope for a non-reconciled transfer:
// Linux always, Windows only when the entry has a Windows counterpart and a
// Windows user is configured.
func scopeSides(entry mapping.ConfigEntry, cfg config.RuntimeConfig) []config.Side {
	out := []config.Side{config.SideLinux}
	if entry.HasWindows() && cfg.WindowsEnabled() {
		out = append(out, config.SideWindows)
	}
	return out
}

// sides returns (primary, other) for a primary-environment selection.
func sides(primary config.Side) (config.Side, config.Side) {
	if primary == config.SideWindows {
		return config.SideWindows, config.SideLinux
	}
	return config.SideLinux, config.SideWindows
}
