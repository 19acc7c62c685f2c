package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pybootstrap/cli/internal/bootstrap"
	oerrors "github.com/pybootstrap/cli/internal/errors"
	"github.com/pybootstrap/cli/internal/output"
	"github.com/pybootstrap/cli/internal/pipeline"
	"github.com/pybootstrap/cli/internal/toolchain"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Run the verification chain on an existing project",
		Long: `Run the verification chain on an existing project.

Executes uv sync, ruff check, ruff format --check, pyright, and pytest in
the given project directory (default: current directory). The first
failing step aborts the run with its exit code.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
}

func runCheck(c *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("resolving project directory: %w", err), oerrors.ExitGeneralError)
	}

	if _, err := os.Stat(filepath.Join(absDir, "pyproject.toml")); err != nil {
		return oerrors.NewExitError(
			oerrors.NewValidationError(
				"no pyproject.toml found; not a Python project directory",
				absDir,
				"Run pybootstrap check from a project directory, or pass one as an argument."),
			oerrors.ExitValidationError)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	if err := requireUV(cfg.UVPath); err != nil {
		return err
	}

	fmt.Fprintln(c.OutOrStdout(), output.StyleSummary.Render(fmt.Sprintf("Checking project in %s", output.StyleNoun.Render(absDir))))

	uv := toolchain.NewBinaryAt(cfg.UVPath)
	runner := pipeline.NewRunner()

	if err := runner.Run(c.Context(), bootstrap.VerifySteps(uv, absDir)); err != nil {
		return bootstrap.StepExitError(c.OutOrStdout(), err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("all checks passed"))
	return nil
}
