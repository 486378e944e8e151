// Package launcher guards the start of the Python bot process. It checks
// for a virtual-environment interpreter at a fixed relative path and either
// hands the entry point to it or prints setup guidance without spawning
// anything.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

const (
	DefaultVenvDir     = ".venv"
	DefaultInterpreter = "python"
	DefaultEntryPoint  = "bot.py"
)

// waitDelay is the time to wait after the interrupt signal before the child
// is killed.
const waitDelay = 5 * time.Second

// EnvironmentMissingError reports that the expected interpreter artifact is
// absent. Run handles it locally by printing guidance; it is exported for
// callers of Check that want the structured form.
type EnvironmentMissingError struct {
	VenvDir string
	Path    string
}

func (e *EnvironmentMissingError) Error() string {
	return fmt.Sprintf("virtual environment not found at %s (missing %s)", e.VenvDir, e.Path)
}

type Config struct {
	// VenvDir is the virtual-environment directory, relative to the
	// working directory at invocation.
	VenvDir string
	// Interpreter is the interpreter binary name inside the venv.
	Interpreter string
	// EntryPoint is the application file handed to the interpreter.
	EntryPoint string

	// Standard streams for the child process and for guidance output.
	// They default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type Result struct {
	// Launched reports whether a child process was spawned.
	Launched bool
	// ExitCode is the child's exit code, or 0 on the guidance path.
	ExitCode int
}

type Launcher struct {
	cfg Config
}

func New(cfg Config) *Launcher {
	if cfg.VenvDir == "" {
		cfg.VenvDir = DefaultVenvDir
	}
	if cfg.Interpreter == "" {
		cfg.Interpreter = DefaultInterpreter
	}
	if cfg.EntryPoint == "" {
		cfg.EntryPoint = DefaultEntryPoint
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	return &Launcher{cfg: cfg}
}

// InterpreterPath returns the expected interpreter path inside the venv.
func (l *Launcher) InterpreterPath() string {
	if runtime.GOOS == "windows" {
		name := l.cfg.Interpreter
		if filepath.Ext(name) == "" {
			name += ".exe"
		}
		return filepath.Join(l.cfg.VenvDir, "Scripts", name)
	}
	return filepath.Join(l.cfg.VenvDir, "bin", l.cfg.Interpreter)
}

// Check reports whether the venv interpreter exists. A missing or
// non-regular file yields an EnvironmentMissingError.
func (l *Launcher) Check() error {
	path := l.InterpreterPath()
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &EnvironmentMissingError{VenvDir: l.cfg.VenvDir, Path: path}
		}
		return fmt.Errorf("check interpreter %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return &EnvironmentMissingError{VenvDir: l.cfg.VenvDir, Path: path}
	}
	return nil
}

// Run performs the single launch decision. If the interpreter exists it
// spawns `<interpreter> <entry-point>` with inherited streams and reports
// the child's exit code. If it does not, Run prints two guidance lines to
// stdout and returns without spawning; that path reports exit code 0.
func (l *Launcher) Run(ctx context.Context) (*Result, error) {
	if err := l.Check(); err != nil {
		var missing *EnvironmentMissingError
		if errors.As(err, &missing) {
			l.printGuidance()
			return &Result{Launched: false, ExitCode: 0}, nil
		}
		return nil, err
	}

	path := l.InterpreterPath()
	cmd := exec.CommandContext(ctx, path, l.cfg.EntryPoint)
	cmd.Stdin = l.cfg.Stdin
	cmd.Stdout = l.cfg.Stdout
	cmd.Stderr = l.cfg.Stderr
	cmd.WaitDelay = waitDelay
	setGracefulShutdown(cmd)

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &Result{Launched: true, ExitCode: exitErr.ExitCode()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("run %s %s: %w", path, l.cfg.EntryPoint, err)
	}
	return &Result{Launched: true, ExitCode: 0}, nil
}

func (l *Launcher) printGuidance() {
	fmt.Fprintf(l.cfg.Stdout, "Virtual environment not found at %s\n", l.cfg.VenvDir)
	fmt.Fprintf(l.cfg.Stdout, "Run: python3 -m venv %s && source %s/bin/activate && pip install -r requirements.txt\n", l.cfg.VenvDir, l.cfg.VenvDir)
}
