package mapping

import (
	"fmt"
	"strings"
)

// builtinEntries is the static registry of supported configuration artifacts.
// Adding support for a new AI-agent tool means adding entries here (or in a
// custom mappings overlay); the resolver, planner and executor are generic
// over entry attributes.
var builtinEntries = []ConfigEntry{
	// Claude Code
	{
		ID:                  "claude-json",
		Description:         "Claude config",
		Kind:                KindFile,
		LinuxPath:           "~/.claude.json",
		WindowsPathTemplate: "/mnt/c/Users/{WIN_USER}/.claude.json",
		RemoteNameLinux:     "claude.linux.json",
		RemoteNameWindows:   "claude.windows.json",
	},
	{
		ID:                  "claude-instructions",
		Description:         "Claude instructions",
		Kind:                KindFile,
		LinuxPath:           "~/.claude/CLAUDE.md",
		WindowsPathTemplate: "/mnt/c/Users/{WIN_USER}/.claude/CLAUDE.md",
		DualEnvironment:     true,
		RemoteName:          "CLAUDE.md",
	},
	{
		ID:                  "claude-agents",
		Description:         "Claude agents",
		Kind:                KindDirectory,
		LinuxPath:           "~/.claude/agents/",
		WindowsPathTemplate: "/mnt/c/Users/{WIN_USER}/.claude/agents/",
		DualEnvironment:     true,
		RemoteName:          "claude-agents/",
	},

	// Gemini CLI
	{
		ID:                  "gemini-settings",
		Description:         "Gemini settings",
		Kind:                KindFile,
		LinuxPath:           "~/.gemini/settings.json",
		WindowsPathTemplate: "/mnt/c/Users/{WIN_USER}/.gemini/settings.json",
		RemoteNameLinux:     "gemini.linux.json",
		RemoteNameWindows:   "gemini.windows.json",
	},
	{
		ID:                  "gemini-instructions",
		Description:         "Gemini instructions",
		Kind:                KindFile,
		LinuxPath:           "~/.gemini/GEMINI.md",
		WindowsPathTemplate: "/mnt/c/Users/{WIN_USER}/.gemini/GEMINI.md",
		DualEnvironment:     true,
		RemoteName:          "GEMINI.md",
	},

	// Codex
	{
		ID:                  "codex-config",
		Description:         "Codex config",
		Kind:                KindFile,
		LinuxPath:           "~/.codex/config.toml",
		WindowsPathTemplate: "/mnt/c/Users/{WIN_USER}/.codex/config.toml",
		RemoteNameLinux:     "codex.linux.toml",
		RemoteNameWindows:   "codex.windows.toml",
	},
	{
		ID:                  "codex-instructions",
		Description:         "Codex agents file",
		Kind:                KindFile,
		LinuxPath:           "~/.codex/AGENTS.md",
		WindowsPathTemplate: "/mnt/c/Users/{WIN_USER}/.codex/AGENTS.md",
		DualEnvironment:     true,
		RemoteName:          "AGENTS.md",
	},

	// Cline
	{
		ID:                  "cline-mcp-settings",
		Description:         "Cline MCP settings",
		Kind:                KindFile,
		LinuxPath:           "~/.vscode-server/data/User/globalStorage/saoudrizwan.claude-dev/settings/cline_mcp_settings.json",
		WindowsPathTemplate: "/mnt/c/Users/{WIN_USER}/AppData/Roaming/Code/User/globalStorage/saoudrizwan.claude-dev/settings/cline_mcp_settings.json",
		RemoteNameLinux:     "cline.linux.json",
		RemoteNameWindows:   "cline.windows.json",
	},
	{
		ID:                  "cline-rules",
		Description:         "Cline rules",
		Kind:                KindDirectory,
		LinuxPath:           "~/Cline/Rules/",
		WindowsPathTemplate: "/mnt/c/Users/{WIN_USER}/Documents/Cline/Rules/",
		DualEnvironment:     true,
		RemoteName:          "cline-rules/",
	},
}

// Table is the registry of configuration entries. Built once at startup from
// the built-in entries plus optional custom overrides; never mutated after.
type Table struct {
	entries []ConfigEntry
}

// NewTable creates a Table from the built-in entries merged with optional
// custom entries. A custom entry whose ID matches a built-in replaces it in
// place; new IDs are appended in the order given, so table order stays stable
// and reproducible.
func NewTable(custom []ConfigEntry) (*Table, error) {
	entries := make([]ConfigEntry, len(builtinEntries))
	copy(entries, builtinEntries)

	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.ID] = i
	}

	for _, c := range custom {
		if err := ValidateEntry(c); err != nil {
			return nil, err
		}
		if i, ok := index[c.ID]; ok {
			entries[i] = c
		} else {
			index[c.ID] = len(entries)
			entries = append(entries, c)
		}
	}

	return &Table{entries: entries}, nil
}

// AllEntries returns every entry in stable table order. The returned slice is
// a copy; callers may not mutate the registry.
func (t *Table) AllEntries() []ConfigEntry {
	out := make([]ConfigEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// EntriesRequiringWindows returns the entries that have a Windows counterpart,
// in table order.
func (t *Table) EntriesRequiringWindows() []ConfigEntry {
	var out []ConfigEntry
	for _, e := range t.entries {
		if e.HasWindows() {
			out = append(out, e)
		}
	}
	return out
}

// Lookup returns the entry with the given ID.
func (t *Table) Lookup(id string) (ConfigEntry, bool) {
	for _, e := range t.entries {
		if e.ID == id {
			return e, true
		}
	}
	return ConfigEntry{}, false
}

// ValidateEntry checks an entry for structural correctness.
func ValidateEntry(e ConfigEntry) error {
	if e.ID == "" {
		return fmt.Errorf("mapping entry: 'id' is required")
	}
	if e.Kind != KindFile && e.Kind != KindDirectory {
		return fmt.Errorf("mapping entry '%s': kind must be 'file' or 'directory', got '%s'", e.ID, e.Kind)
	}
	if e.LinuxPath == "" {
		return fmt.Errorf("mapping entry '%s': 'linux_path' is required", e.ID)
	}
	if e.DualEnvironment {
		if e.WindowsPathTemplate == "" {
			return fmt.Errorf("mapping entry '%s': dual-environment entries need a 'windows_path'", e.ID)
		}
		if e.RemoteName == "" {
			return fmt.Errorf("mapping entry '%s': dual-environment entries need a canonical 'remote_name'", e.ID)
		}
	} else {
		if e.RemoteNameLinux == "" {
			return fmt.Errorf("mapping entry '%s': 'remote_name_linux' is required", e.ID)
		}
		if e.HasWindows() && e.RemoteNameWindows == "" {
			return fmt.Errorf("mapping entry '%s': 'remote_name_windows' is required when a windows path is set", e.ID)
		}
	}
	if e.WindowsPathTemplate != "" && !strings.Contains(e.WindowsPathTemplate, "{WIN_USER}") {
		return fmt.Errorf("mapping entry '%s': 'windows_path' must contain the {WIN_USER} placeholder", e.ID)
	}
	return nil
}
