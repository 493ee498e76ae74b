package history

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// queryTimeout bounds every git invocation so a slow or wedged repository
// degrades a single file to untracked instead of stalling the scan.
const queryTimeout = 2 * time.Second

// GitProvider resolves last-commit timestamps by shelling out to git,
// one bounded call per artifact.
type GitProvider struct {
	root string
}

// NewGitProvider creates a provider rooted at the given work tree.
func NewGitProvider(root string) *GitProvider {
	return &GitProvider{root: root}
}

// Available implements Provider.
func (p *GitProvider) Available() bool { return true }

// LastModified implements Provider. Renamed or never-committed files
// produce empty output and are reported as untracked; so are timeouts.
func (p *GitProvider) LastModified(ctx context.Context, relPath string) Result {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "-C", p.root,
		"log", "-1", "--format=%ct", "--", relPath)
	output, err := cmd.Output()
	if err != nil {
		return Result{Status: StatusUntracked}
	}

	epoch, err := strconv.ParseInt(strings.TrimSpace(string(output)), 10, 64)
	if err != nil {
		return Result{Status: StatusUntracked}
	}

	return Result{
		Status:       StatusTracked,
		LastModified: time.Unix(epoch, 0).UTC(),
	}
}

// isGitWorkTree reports whether root is inside a git work tree.
func isGitWorkTree(ctx context.Context, root string) bool {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "-C", root, "rev-parse", "--is-inside-work-tree")
	output, err := cmd.Output()
	if err != nil {
		return false
	}
	return bytes.Equal(bytes.TrimSpace(output), []byte("true"))
}
