package audit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauern/ctxaudit/internal/config"
	"github.com/klauern/ctxaudit/internal/history"
	"github.com/klauern/ctxaudit/internal/logging"
)

// SkillClaim is a documented skill count found in a README or plugin
// manifest, checked against the actual skill count at report time.
type SkillClaim struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// Scan holds the state of one audit run: the root, the chosen history
// provider, the policy, and the accumulated records. A Scan is single-
// owner and single-pass; nothing persists between invocations.
type Scan struct {
	Root    string
	Policy  *config.Policy
	History history.Provider
	Scorer  Scorer
	Now     time.Time

	Records     []Record
	References  []Reference
	SkillClaims []SkillClaim
	SkippedDirs int
	Partial     bool

	// ctx is the context of the running walk, threaded into history
	// queries so an interrupt also cancels in-flight VCS calls.
	ctx context.Context
}

// New creates a scan for root. Policy and provider default sensibly when
// nil so tests can construct scans piecemeal.
func New(root string, pol *config.Policy, provider history.Provider) *Scan {
	if pol == nil {
		pol = config.Default()
	}
	if provider == nil {
		provider = history.NoopProvider{}
	}
	return &Scan{
		Root:    root,
		Policy:  pol,
		History: provider,
		Scorer:  DefaultScorer(),
		Now:     time.Now().UTC(),
	}
}

// Run walks the tree and classifies every recognized artifact. It fails
// only when the root itself is missing or unreadable; per-file conditions
// become record flags. Cancellation stops the walk early and marks the
// scan partial so a best-effort report can still be rendered.
func (s *Scan) Run(ctx context.Context) error {
	s.ctx = ctx
	walker := NewWalker(s.Root, s.Policy.Exclude)

	err := walker.Walk(ctx, func(relPath string, info os.FileInfo) error {
		classify := matchRule(relPath)
		if classify == nil {
			return nil
		}

		// #nosec G304 - path is produced by the walk under the scan root
		content, readErr := os.ReadFile(filepath.Join(s.Root, filepath.FromSlash(relPath)))
		if readErr != nil {
			logging.Debug("skipping unreadable artifact", logging.Path(relPath), logging.Err(readErr))
			return nil
		}

		record := classify(s, relPath, content)
		s.Records = append(s.Records, record)
		logging.Debug("classified artifact", logging.Path(relPath), logging.Kind(string(record.Kind)))
		return nil
	})

	s.SkippedDirs = walker.Skipped

	if err != nil {
		if ctx.Err() != nil {
			s.Partial = true
			logging.Warn("scan interrupted, report will be partial", logging.Root(s.Root))
			return nil
		}
		return fmt.Errorf("scan failed: %w", err)
	}

	logging.Info("scan complete", logging.Root(s.Root), logging.Count(len(s.Records)))
	return nil
}

// checkStaleness consults the history provider for a record and attaches
// age information and staleness flags. Staleness is only judged for
// tracked files; untracked and no-vcs results leave the record untouched.
func (s *Scan) checkStaleness(r *Record) {
	ctx := s.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	result := s.History.LastModified(ctx, r.Path)
	if result.Status != history.StatusTracked {
		return
	}

	modified := result.LastModified
	r.LastModified = &modified
	r.AgeDays = result.AgeDays(s.Now)

	pol := s.Policy.Staleness
	switch {
	case r.AgeDays >= pol.CriticalDays:
		r.warn(fmt.Sprintf("stale: not updated in %d days", r.AgeDays))
	case r.AgeDays >= pol.WarnDays:
		r.warn(fmt.Sprintf("not updated in %d days", r.AgeDays))
	}
}
