package audit

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
)

func collectPaths(t *testing.T, root string, exclude []string) []string {
	t.Helper()
	w := NewWalker(root, exclude)
	var paths []string
	err := w.Walk(context.Background(), func(relPath string, info os.FileInfo) error {
		paths = append(paths, relPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	sort.Strings(paths)
	return paths
}

func TestWalkerYieldsRelativeSlashPaths(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt":         "a",
		"sub/b.txt":     "b",
		"sub/deep/c.md": "c",
	})

	got := collectPaths(t, root, nil)
	want := []string{"a.txt", "sub/b.txt", "sub/deep/c.md"}

	if len(got) != len(want) {
		t.Fatalf("Walk() yielded %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalkerExclusions(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"keep.txt":              "k",
		"node_modules/x/y.txt":  "x",
		".git/config":           "g",
		"nested/node_modules/z": "z",
	})

	got := collectPaths(t, root, []string{".git", "node_modules"})
	if len(got) != 1 || got[0] != "keep.txt" {
		t.Errorf("Walk() with exclusions yielded %v, want [keep.txt]", got)
	}
}

func TestWalkerPathExclusions(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"docs/internal/secret.md": "s",
		"docs/public.md":          "p",
	})

	got := collectPaths(t, root, []string{"docs/internal"})
	if len(got) != 1 || got[0] != "docs/public.md" {
		t.Errorf("Walk() yielded %v, want [docs/public.md]", got)
	}
}

func TestWalkerSymlinkCycle(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	root := t.TempDir()
	writeTree(t, root, map[string]string{"sub/file.txt": "f"})
	// Loop back to the root from inside the tree.
	if err := os.Symlink(root, filepath.Join(root, "sub", "loop")); err != nil {
		t.Skipf("cannot create symlink: %v", err)
	}

	got := collectPaths(t, root, nil)
	if len(got) != 1 || got[0] != "sub/file.txt" {
		t.Errorf("Walk() over symlink cycle yielded %v, want [sub/file.txt]", got)
	}
}

func TestWalkerUnreadableRoot(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	writeTree(t, root, map[string]string{"CLAUDE.md": "x\n"})
	if err := os.Chmod(root, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(root, 0o755) })

	w := NewWalker(root, nil)
	err := w.Walk(context.Background(), func(relPath string, info os.FileInfo) error { return nil })
	if err == nil {
		t.Error("Walk() on unreadable root = nil, want error")
	}
	if w.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0 (root failure is fatal, not skipped)", w.Skipped)
	}
}

func TestWalkerUnreadableSubdirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"keep.txt":          "k",
		"locked/hidden.txt": "h",
	})
	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	w := NewWalker(root, nil)
	var paths []string
	err := w.Walk(context.Background(), func(relPath string, info os.FileInfo) error {
		paths = append(paths, relPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v, want nil (subdirectory errors are recovered)", err)
	}
	if len(paths) != 1 || paths[0] != "keep.txt" {
		t.Errorf("Walk() yielded %v, want [keep.txt]", paths)
	}
	if w.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", w.Skipped)
	}
}

func TestWalkerMissingRoot(t *testing.T) {
	w := NewWalker(filepath.Join(t.TempDir(), "absent"), nil)
	err := w.Walk(context.Background(), func(relPath string, info os.FileInfo) error { return nil })
	if err == nil {
		t.Error("Walk() on missing root = nil, want error")
	}
}

func TestWalkerRootIsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := NewWalker(file, nil)
	err := w.Walk(context.Background(), func(relPath string, info os.FileInfo) error { return nil })
	if err == nil {
		t.Error("Walk() on a file root = nil, want error")
	}
}

func TestWalkerCancellation(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"sub/a.txt": "a"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewWalker(root, nil)
	err := w.Walk(ctx, func(relPath string, info os.FileInfo) error { return nil })
	if err == nil {
		t.Error("Walk() on cancelled context = nil, want context error")
	}
}
