package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codedigest/pkg/logging"
	"codedigest/pkg/version"

	"go.uber.org/zap"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { logging.Logger = zap.NewNop() })

	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootWritesReport(t *testing.T) {
	root := filepath.Join(t.TempDir(), "service")
	if err := os.MkdirAll(filepath.Join(root, "api"), 0o755); err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "api", "server.go"), []byte("package api\nimport \"net/http\"\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	output := filepath.Join(t.TempDir(), "digest.txt")

	stdout, err := executeRoot(t, root, "-o", output)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := "Done! Output written to " + output + "\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	for _, want := range []string{"service (root)\n    api/\n        server.go\n", "--- api/server.go ---\n"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("report is missing %q:\n%s", want, data)
		}
	}
}

func TestRootDefaultOutput(t *testing.T) {
	workDir := t.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(workDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	if _, err := executeRoot(t, t.TempDir()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if _, err := os.Stat(filepath.Join(workDir, "structure_and_files.txt")); err != nil {
		t.Fatalf("expected default output file: %v", err)
	}
}

func TestRootRequiresExactlyOneRoot(t *testing.T) {
	if _, err := executeRoot(t); err == nil {
		t.Fatal("expected an error without a root argument")
	}
	if _, err := executeRoot(t, "a", "b"); err == nil {
		t.Fatal("expected an error with two root arguments")
	}
}

func TestRootUnwritableOutputFails(t *testing.T) {
	output := filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt")
	if _, err := executeRoot(t, t.TempDir(), "--output", output); err == nil {
		t.Fatal("expected an error for an unwritable output path")
	}
}

func TestRootVersionFlag(t *testing.T) {
	stdout, err := executeRoot(t, "--version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := version.Get().String() + "\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}
