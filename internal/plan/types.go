package plan

import "strings"

// Operation is the direction of a run.
type Operation string

const (
	Push Operation = "push"
	Pull Operation = "pull"
)

// DirectiveKind separates mirror transfers from local reconciliation copies.
type DirectiveKind string

const (
	KindTransfer  DirectiveKind = "transfer"
	KindReconcile DirectiveKind = "reconcile"
)

// Directive is one planned copy operation, produced by the Planner and
// consumed exactly once by the Executor.
type Directive struct {
	EntryID     string
	Description string

	Source      string
	Destination string

	// Remote is true when the directive crosses the local/remote boundary
	// and must go through the mirroring tool. Reconciliation copies stay
	// local.
	Remote bool

	// Directory directives mirror a whole tree rather than a single file.
	Directory bool

	// ProtectNewer skips destination files with a newer modification time.
	// Always false for reconciliation copies: the declared source of truth
	// overwrites unconditionally.
	ProtectNewer bool

	DryRun bool

	Kind DirectiveKind
}

// SourceIsLocal reports whether the directive's source is a local filesystem
// path (as opposed to a user@host:path remote specifier). Only local sources
// get a pre-flight existence check; remote existence is only discoverable by
// attempting the transfer.
func (d Directive) SourceIsLocal() bool {
	return !isRemoteSpec(d.Source)
}

// isRemoteSpec reports whether a path is a user@host:path specifier.
func isRemoteSpec(p string) bool {
	at := strings.Index(p, "@")
	if at < 0 {
		return false
	}
	return strings.Contains(p[at:], ":")
}
