// Package mirror wraps the external mirroring tool (rsync). The tool is a
// black box: given a source, a destination and behavior flags it performs a
// recursive, permission-preserving copy, locally or over SSH, and reports
// success or failure plus captured output.
package mirror

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Options controls one mirroring-tool invocation.
type Options struct {
	Archive  bool
	Compress bool

	// Update skips destination files with a newer modification time.
	Update bool

	Verbose bool
	DryRun  bool

	// Delete removes destination files absent from the source, so directory
	// mirrors converge to the source tree.
	Delete bool

	// Extra options are appended verbatim, ahead of source and destination.
	Extra []string
}

// Result captures one invocation's exit status and output.
type Result struct {
	Success  bool
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes mirror transfers. Implemented by RsyncRunner; tests inject
// fakes.
type Runner interface {
	Mirror(ctx context.Context, source, destination string, opts Options) (Result, error)
}

// Args builds the argument vector for one invocation without executing it.
func Args(source, destination string, opts Options) []string {
	var args []string
	if opts.Archive {
		args = append(args, "-a")
	}
	if opts.Compress {
		args = append(args, "-z")
	}
	if opts.Update {
		args = append(args, "--update")
	}
	if opts.Verbose {
		args = append(args, "-v")
	}
	if opts.DryRun {
		args = append(args, "--dry-run")
	}
	if opts.Delete {
		args = append(args, "--delete")
	}
	args = append(args, "--human-readable", "--mkpath")
	args = append(args, opts.Extra...)
	return append(args, source, destination)
}

// RsyncRunner shells out to the rsync binary.
type RsyncRunner struct {
	// Binary overrides the executable name; empty means "rsync" from PATH.
	Binary string
}

// Mirror runs one rsync invocation and waits for it to complete. A nonzero
// exit from the tool is reported in the Result, not as an error; the error
// return is reserved for failures to run the tool at all.
func (r *RsyncRunner) Mirror(ctx context.Context, source, destination string, opts Options) (Result, error) {
	bin := r.Binary
	if bin == "" {
		bin = "rsync"
	}

	cmd := exec.CommandContext(ctx, bin, Args(source, destination, opts)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		res.Success = true
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return res, err
}
