// Package probe performs the pre-flight SSH reachability check. The probe
// shells out to the ssh binary in BatchMode, the same transport the mirroring
// tool uses, so a passing probe means a transfer can reach the host.
package probe

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/bianoble/ai-config-sync/internal/config"
)

// DefaultTimeout bounds the connection attempt, not the whole session.
const DefaultTimeout = 5 * time.Second

// Args builds the ssh argument vector for a connectivity probe.
func Args(cfg config.RuntimeConfig, timeout time.Duration) []string {
	secs := int(timeout.Seconds())
	if secs < 1 {
		secs = 1
	}
	return []string{
		"-o", "BatchMode=yes",
		"-o", "ConnectTimeout=" + strconv.Itoa(secs),
		cfg.RemoteSpec(),
		"exit", "0",
	}
}

// Check verifies that the remote host accepts an SSH session.
func Check(ctx context.Context, cfg config.RuntimeConfig, timeout time.Duration) error {
	cmd := exec.CommandContext(ctx, "ssh", Args(cfg, timeout)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := bytes.TrimSpace(stderr.Bytes())
		if len(msg) > 0 {
			return fmt.Errorf("ssh %s: %s", cfg.RemoteSpec(), msg)
		}
		return fmt.Errorf("ssh %s: %w", cfg.RemoteSpec(), err)
	}
	return nil
}
