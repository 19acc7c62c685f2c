package toolchain

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/pybootstrap/cli/internal/errors"
)

// writeStub writes an executable shell script standing in for uv.
func writeStub(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "uv")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestRun_Success(t *testing.T) {
	stub := writeStub(t, "exit 0\n")
	b := NewBinaryAt(stub)

	assert.NoError(t, b.Sync(context.Background(), t.TempDir()))
}

func TestRun_NonZeroExit(t *testing.T) {
	stub := writeStub(t, "echo ruff found problems >&2\nexit 3\n")
	b := NewBinaryAt(stub)

	err := b.Lint(context.Background(), t.TempDir())
	require.Error(t, err)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 3, stepErr.ExitCode)
	assert.Equal(t, stub, stepErr.Tool)
	assert.Equal(t, []string{"run", "ruff", "check", "src", "tests"}, stepErr.Args)
	assert.Contains(t, stepErr.Stderr, "ruff found problems")

	assert.ErrorIs(t, err, oerrors.ErrToolchain)
}

func TestRun_StdoutOnlyFailure(t *testing.T) {
	stub := writeStub(t, "echo 1 test failed\nexit 1\n")
	b := NewBinaryAt(stub)

	err := b.Test(context.Background(), t.TempDir())

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Contains(t, stepErr.Stdout, "1 test failed")
	assert.Empty(t, stepErr.Stderr)
}

func TestRun_BinaryMissing(t *testing.T) {
	b := NewBinaryAt(filepath.Join(t.TempDir(), "no-such-uv"))

	err := b.Venv(context.Background(), t.TempDir(), "3.12")
	require.Error(t, err)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 1, stepErr.ExitCode)
	assert.NotEmpty(t, stepErr.Stderr)
}

func TestRun_RunsInDir(t *testing.T) {
	stub := writeStub(t, "pwd >&2\nexit 9\n")
	dir := t.TempDir()
	b := NewBinaryAt(stub)

	err := b.TypeCheck(context.Background(), dir)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Contains(t, stepErr.Stderr, filepath.Base(dir))
}

func TestNewBinaryAt_EmptyPathUsesPATH(t *testing.T) {
	b := NewBinaryAt("")
	assert.Equal(t, "uv", b.Path)
}
