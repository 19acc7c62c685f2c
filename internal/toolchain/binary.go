// Package toolchain wraps calls to the external uv binary.
package toolchain

import (
	"bytes"
	"context"
	"os/exec"
)

// Binary wraps calls to the external uv binary. Every invocation is
// synchronous: the caller blocks until the child process exits.
type Binary struct {
	// Path is the path to the uv binary. If empty, "uv" is used from PATH.
	Path string
}

// NewBinary creates a new Binary wrapper using "uv" from PATH.
func NewBinary() *Binary {
	return &Binary{Path: "uv"}
}

// NewBinaryAt creates a Binary wrapper for an explicit uv path.
func NewBinaryAt(path string) *Binary {
	if path == "" {
		return NewBinary()
	}
	return &Binary{Path: path}
}

// Venv runs `uv venv --python <version>` in the project directory.
func (b *Binary) Venv(ctx context.Context, dir, pythonVersion string) error {
	return b.run(ctx, dir, "venv", "--python", pythonVersion)
}

// Sync runs `uv sync --all-extras` in the project directory.
func (b *Binary) Sync(ctx context.Context, dir string) error {
	return b.run(ctx, dir, "sync", "--all-extras")
}

// Lint runs `uv run ruff check src tests` in the project directory.
func (b *Binary) Lint(ctx context.Context, dir string) error {
	return b.run(ctx, dir, "run", "ruff", "check", "src", "tests")
}

// FormatCheck runs `uv run ruff format --check src tests` in the project directory.
func (b *Binary) FormatCheck(ctx context.Context, dir string) error {
	return b.run(ctx, dir, "run", "ruff", "format", "--check", "src", "tests")
}

// TypeCheck runs `uv run pyright` in the project directory.
func (b *Binary) TypeCheck(ctx context.Context, dir string) error {
	return b.run(ctx, dir, "run", "pyright")
}

// Test runs `uv run pytest` in the project directory.
func (b *Binary) Test(ctx context.Context, dir string) error {
	return b.run(ctx, dir, "run", "pytest")
}

// run executes a uv command in the specified directory, capturing both
// output streams. On a non-zero exit the captured stderr and exit code
// are returned in a *StepError; there is no retry and no timeout beyond
// context cancellation.
func (b *Binary) run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, b.path(), args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &StepError{
				Tool:     b.path(),
				Args:     args,
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}
		}
		return &StepError{
			Tool: b.path(),
			Args: args,
			// Spawn failures (binary missing, dir gone) have no child
			// exit code; report the generic failure code.
			ExitCode: 1,
			Stderr:   err.Error(),
		}
	}

	return nil
}

func (b *Binary) path() string {
	if b.Path != "" {
		return b.Path
	}
	return "uv"
}
