package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a buffer.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	runErr := fn()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatal(err)
	}
	return buf.String(), runErr
}

func TestRunScanMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent")
	err := Run(context.Background(), []string{"ctxaudit", "scan", missing})
	if err == nil {
		t.Error("Run() on missing root = nil, want error")
	}
}

func TestRunScanRootIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Run(context.Background(), []string{"ctxaudit", "scan", file})
	if err == nil {
		t.Error("Run() on file root = nil, want error")
	}
}

func TestRunScanJSON(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "CLAUDE.md"), []byte("# Guide\nMUST run tests.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := captureStdout(t, func() error {
		return Run(context.Background(), []string{"ctxaudit", "scan", "--json", "--no-color", root})
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var report struct {
		Verdict string `json:"verdict"`
		Records []struct {
			Path string `json:"path"`
			Kind string `json:"kind"`
		} `json:"records"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(report.Records) != 1 || report.Records[0].Kind != "root-config" {
		t.Errorf("records = %+v, want one root-config", report.Records)
	}
	if report.Verdict == "" {
		t.Error("verdict missing from JSON output")
	}
}

func TestRunScanText(t *testing.T) {
	root := t.TempDir()

	out, err := captureStdout(t, func() error {
		return Run(context.Background(), []string{"ctxaudit", "scan", "--no-color", root})
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("Verdict: Minimal")) {
		t.Errorf("text report missing verdict line:\n%s", out)
	}
}

func TestRunScanConfigFlag(t *testing.T) {
	root := t.TempDir()
	policy := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(policy, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Run(context.Background(), []string{"ctxaudit", "scan", "--config", policy, root})
	if err == nil {
		t.Error("Run() with broken policy file = nil, want error")
	}
}

func TestRunVersion(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return Run(context.Background(), []string{"ctxaudit", "version"})
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("ctxaudit version")) {
		t.Errorf("version output = %q", out)
	}
}
