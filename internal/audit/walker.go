package audit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/klauern/ctxaudit/internal/logging"
)

// Walker traverses a project tree yielding repo-relative file paths. It
// follows symlinks while tracking resolved directories to avoid cycles,
// and skips excluded or unreadable directories instead of failing.
type Walker struct {
	root    string
	exclude []string

	// Skipped counts directories passed over due to permission errors.
	Skipped int
}

// NewWalker creates a walker for root with the given exclusion globs.
// Globs are matched against each directory name and against the
// repo-relative directory path.
func NewWalker(root string, exclude []string) *Walker {
	return &Walker{root: root, exclude: exclude}
}

// WalkFunc receives a repo-relative slash-separated path and its info.
type WalkFunc func(relPath string, info os.FileInfo) error

// Walk traverses the tree. It fails only when the root itself is missing
// or unreadable; every per-directory error is recovered locally. Walk
// stops early when ctx is cancelled, leaving a partial traversal.
func (w *Walker) Walk(ctx context.Context, fn WalkFunc) error {
	info, err := os.Stat(w.root)
	if err != nil {
		return fmt.Errorf("cannot read scan root %q: %w", w.root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("scan root %q is not a directory", w.root)
	}

	visited := make(map[string]bool)
	return w.walkDir(ctx, w.root, "", visited, fn)
}

func (w *Walker) walkDir(ctx context.Context, dir, rel string, visited map[string]bool, fn WalkFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Resolve symlinks for cycle detection; unresolvable paths are skipped.
	realPath, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil
	}
	if visited[realPath] {
		return nil
	}
	visited[realPath] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		// An unreadable root is an invocation error; only subdirectories
		// are recovered locally.
		if rel == "" {
			return fmt.Errorf("cannot read scan root %q: %w", dir, err)
		}
		if os.IsPermission(err) {
			w.Skipped++
			logging.Debug("skipping unreadable directory", logging.Path(rel), logging.Err(err))
			return nil
		}
		return nil
	}

	for _, entry := range entries {
		childRel := entry.Name()
		if rel != "" {
			childRel = rel + "/" + entry.Name()
		}

		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}

		if info.IsDir() {
			if w.excluded(entry.Name(), childRel) {
				continue
			}
			if err := w.walkDir(ctx, filepath.Join(dir, entry.Name()), childRel, visited, fn); err != nil {
				return err
			}
			continue
		}

		if err := fn(childRel, info); err != nil {
			return err
		}
	}

	return nil
}

// excluded reports whether a directory matches any exclusion glob.
func (w *Walker) excluded(name, rel string) bool {
	for _, pattern := range w.exclude {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
		if strings.ContainsRune(pattern, '/') {
			if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
				return true
			}
		}
	}
	return false
}
