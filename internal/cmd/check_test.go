package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/pybootstrap/cli/internal/errors"
)

func TestCheckCmd_NotAProjectDirectory(t *testing.T) {
	isolateConfig(t)
	root, _ := testRoot(t, NewCheckCmd(), "check", t.TempDir())

	err := root.Execute()
	require.Error(t, err)

	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, oerrors.ExitValidationError, exitErr.Code)
	assert.Contains(t, err.Error(), "pyproject.toml")
}

func TestCheckCmd_MissingUV(t *testing.T) {
	isolateConfig(t)
	t.Setenv("PATH", t.TempDir())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte("[project]\nname = \"x\"\n"), 0o644))

	root, _ := testRoot(t, NewCheckCmd(), "check", dir)

	err := root.Execute()
	require.Error(t, err)

	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, oerrors.ExitToolchainMissing, exitErr.Code)
}

func TestCheckCmd_TooManyArgs(t *testing.T) {
	root, _ := testRoot(t, NewCheckCmd(), "check", "a", "b")

	assert.Error(t, root.Execute())
}
