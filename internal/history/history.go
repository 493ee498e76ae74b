// Package history resolves per-file modification recency from version
// control. A Provider is chosen once at scan start: git-backed when the
// scanned root is inside a work tree, a no-op otherwise.
package history

import (
	"context"
	"time"
)

// Status describes what the provider knows about a file.
type Status int

const (
	// StatusNoVCS means no version control is present for the scan root.
	StatusNoVCS Status = iota
	// StatusUntracked means the file has no commit history (also used for
	// renamed files and timed-out queries).
	StatusUntracked
	// StatusTracked means a last-commit timestamp was resolved.
	StatusTracked
)

// Result is the outcome of a single history query.
type Result struct {
	Status       Status
	LastModified time.Time
}

// AgeDays returns whole days since the last commit, or 0 when untracked.
func (r Result) AgeDays(now time.Time) int {
	if r.Status != StatusTracked {
		return 0
	}
	age := now.Sub(r.LastModified)
	if age < 0 {
		return 0
	}
	return int(age.Hours() / 24)
}

// Provider answers last-modification queries for files under a scan root.
type Provider interface {
	// Available reports whether version control history exists at all.
	Available() bool
	// LastModified resolves the last-commit time for a repo-relative path.
	// Implementations degrade to StatusUntracked rather than returning an
	// error for per-file conditions.
	LastModified(ctx context.Context, relPath string) Result
}

// NoopProvider is used when the scanned tree is not under version control.
// Every query answers no-vcs.
type NoopProvider struct{}

// Available implements Provider.
func (NoopProvider) Available() bool { return false }

// LastModified implements Provider.
func (NoopProvider) LastModified(ctx context.Context, relPath string) Result {
	return Result{Status: StatusNoVCS}
}

// Detect probes the root once and returns the matching provider.
func Detect(ctx context.Context, root string) Provider {
	if isGitWorkTree(ctx, root) {
		return NewGitProvider(root)
	}
	return NoopProvider{}
}
