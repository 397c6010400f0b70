package mapping

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverlay(t *testing.T) {
	path := writeOverlay(t, `
entries:
  - id: aider-config
    kind: file
    linux_path: ~/.aider.conf.yml
    remote_name_linux: aider.linux.yml
  - id: claude-instructions
    kind: file
    linux_path: ~/notes/CLAUDE.md
    windows_path: /mnt/c/Users/{WIN_USER}/notes/CLAUDE.md
    dual_environment: true
    remote_name: CLAUDE.md
`)

	entries, err := LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ID != "aider-config" || entries[0].Kind != KindFile {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if !entries[1].DualEnvironment || entries[1].RemoteName != "CLAUDE.md" {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestLoadOverlayInvalidEntry(t *testing.T) {
	path := writeOverlay(t, `
entries:
  - id: broken
    kind: file
`)
	_, err := LoadOverlay(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "'linux_path' is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadOverlayMissingFile(t *testing.T) {
	_, err := LoadOverlay(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadOverlayBadYAML(t *testing.T) {
	path := writeOverlay(t, "entries: [unterminated")
	_, err := LoadOverlay(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
}
