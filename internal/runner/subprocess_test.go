package runner

import (
	"bytes"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("runner tests drive sh")
	}
}

func TestRunCleanExit(t *testing.T) {
	skipOnWindows(t)

	var out bytes.Buffer
	proc := New(Config{
		Bin:    "sh",
		Args:   []string{"-c", "echo done"},
		Output: &out,
	})

	code, err := proc.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "done") {
		t.Errorf("output = %q, want it to contain %q", out.String(), "done")
	}
}

func TestRunNonZeroExitIsNotAnError(t *testing.T) {
	skipOnWindows(t)

	proc := New(Config{
		Bin:    "sh",
		Args:   []string{"-c", "exit 7"},
		Output: &bytes.Buffer{},
	})

	code, err := proc.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if code != 7 {
		t.Errorf("exit code = %d, want 7", code)
	}
}

func TestRunMergesStdoutAndStderr(t *testing.T) {
	skipOnWindows(t)

	var out bytes.Buffer
	proc := New(Config{
		Bin:    "sh",
		Args:   []string{"-c", "echo to-stdout; echo to-stderr 1>&2; echo again"},
		Output: &out,
	})

	if _, err := proc.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	for _, want := range []string{"to-stdout", "to-stderr", "again"} {
		if !strings.Contains(got, want) {
			t.Errorf("merged output = %q, missing %q", got, want)
		}
	}
	// Both streams share one pipe, so the child's ordering survives.
	if strings.Index(got, "to-stdout") > strings.Index(got, "to-stderr") {
		t.Errorf("merged output out of order: %q", got)
	}
}

func TestRunStartFailure(t *testing.T) {
	proc := New(Config{
		Bin:    filepath.Join(t.TempDir(), "no-such-binary"),
		Output: &bytes.Buffer{},
	})

	if _, err := proc.Run(); err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestRunWorkingDirectory(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	var out bytes.Buffer
	proc := New(Config{
		Bin:    "sh",
		Args:   []string{"-c", "pwd"},
		Dir:    dir,
		Output: &out,
	})

	if _, err := proc.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Resolve symlinks before comparing; macOS tempdirs live under /private.
	if !strings.Contains(out.String(), filepath.Base(dir)) {
		t.Errorf("pwd = %q, want it to end in %q", out.String(), filepath.Base(dir))
	}
}
