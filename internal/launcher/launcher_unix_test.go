//go:build unix

package launcher

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeInterpreter drops an executable shell script where the launcher
// expects the venv interpreter.
func writeInterpreter(t *testing.T, dir, venvDir, name, script string) {
	t.Helper()
	binDir := filepath.Join(dir, venvDir, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(binDir, name), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestInterpreterPath_Unix(t *testing.T) {
	l := New(Config{})
	want := filepath.Join(".venv", "bin", "python")
	if got := l.InterpreterPath(); got != want {
		t.Errorf("InterpreterPath() = %q, want %q", got, want)
	}
}

func TestRun_PropagatesChildExitCode(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeInterpreter(t, dir, ".venv", "python", "#!/bin/sh\nexit 3\n")

	var out bytes.Buffer
	res, err := New(Config{Stdout: &out}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if !res.Launched {
		t.Fatal("Launched = false, want true")
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
	if out.Len() != 0 {
		t.Errorf("guidance printed on the launch path: %q", out.String())
	}
}

func TestRun_ChildSuccessReportsZero(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeInterpreter(t, dir, ".venv", "python", "#!/bin/sh\nexit 0\n")

	res, err := New(Config{Stdout: &bytes.Buffer{}}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if !res.Launched {
		t.Fatal("Launched = false, want true")
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
}

func TestRun_PassesEntryPointAsSoleArgument(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	argsFile := filepath.Join(dir, "args.txt")
	writeInterpreter(t, dir, ".venv", "python", "#!/bin/sh\necho \"$@\" > "+argsFile+"\nexit 0\n")

	if _, err := New(Config{Stdout: &bytes.Buffer{}}).Run(context.Background()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	got, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("child did not run: %v", err)
	}
	if args := strings.TrimSpace(string(got)); args != DefaultEntryPoint {
		t.Errorf("child args = %q, want %q", args, DefaultEntryPoint)
	}
}

func TestRun_ChildInheritsStreams(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeInterpreter(t, dir, ".venv", "python", "#!/bin/sh\nread line\necho \"out:$line\"\necho \"err:$line\" >&2\nexit 0\n")

	var stdout, stderr bytes.Buffer
	cfg := Config{
		Stdin:  strings.NewReader("hello\n"),
		Stdout: &stdout,
		Stderr: &stderr,
	}
	if _, err := New(cfg).Run(context.Background()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if !strings.Contains(stdout.String(), "out:hello") {
		t.Errorf("stdout = %q, want echoed stdin", stdout.String())
	}
	if !strings.Contains(stderr.String(), "err:hello") {
		t.Errorf("stderr = %q, want echoed stdin", stderr.String())
	}
}

func TestRun_CustomLayout(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeInterpreter(t, dir, "env", "python3", "#!/bin/sh\nexit 7\n")

	cfg := Config{
		VenvDir:     "env",
		Interpreter: "python3",
		EntryPoint:  "main.py",
		Stdout:      &bytes.Buffer{},
	}
	res, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if !res.Launched {
		t.Fatal("Launched = false, want true")
	}
	if res.ExitCode != 7 {
		t.Errorf("ExitCode = %d, want 7", res.ExitCode)
	}
}
