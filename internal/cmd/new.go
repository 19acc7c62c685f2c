// Package cmd provides the pybootstrap subcommands.
package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pybootstrap/cli/internal/bootstrap"
	"github.com/pybootstrap/cli/internal/config"
	oerrors "github.com/pybootstrap/cli/internal/errors"
	"github.com/pybootstrap/cli/internal/output"
	"github.com/pybootstrap/cli/internal/scaffold"
	"github.com/pybootstrap/cli/internal/toolchain"
	"github.com/pybootstrap/cli/internal/version"
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	var (
		dirFlag         string
		pythonFlag      string
		descriptionFlag string
		skipChecksFlag  bool
		dryRunFlag      bool
	)

	c := &cobra.Command{
		Use:   "new <project-name>",
		Short: "Scaffold a new Python project",
		Long: `Scaffold a new Python project and verify it.

Renders pyproject.toml, the src/ package layout, a smoke test, pre-commit
configuration, a GitHub Actions CI workflow, .gitignore, and README.md,
then runs uv venv, uv sync, ruff check, ruff format --check, pyright, and
pytest. Any failing step aborts the run.

Examples:
  # Scaffold a project in ./my-cool-tool
  pybootstrap new my-cool-tool

  # Scaffold under a different parent directory with a description
  pybootstrap new my-cool-tool --dir ~/src --description "Does cool things"

  # Render and install only, skip the verification checks
  pybootstrap new my-cool-tool --skip-checks

  # List the files that would be created without writing anything
  pybootstrap new my-cool-tool --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(c, args[0], dirFlag, pythonFlag, descriptionFlag, skipChecksFlag, dryRunFlag)
		},
	}

	c.Flags().StringVarP(&dirFlag, "dir", "d", "", "parent directory to create the project in (defaults to the current directory)")
	c.Flags().StringVar(&pythonFlag, "python", "", fmt.Sprintf("Python version the project requires (default %q)", config.DefaultPythonVersion))
	c.Flags().StringVar(&descriptionFlag, "description", "", "short project description")
	c.Flags().BoolVar(&skipChecksFlag, "skip-checks", false, "skip the lint/format/type-check/test chain")
	c.Flags().BoolVar(&dryRunFlag, "dry-run", false, "list the files that would be created without writing anything")

	return c
}

func runNew(c *cobra.Command, name, dir, python, description string, skipChecks, dryRun bool) error {
	if err := scaffold.ValidateProjectName(name); err != nil {
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	// Flag > env/config file > default.
	if python == "" {
		python = cfg.PythonVersion
	}
	skipChecks = skipChecks || cfg.SkipChecks

	if dryRun {
		return printPlan(c, name, python, description)
	}

	if err := requireUV(cfg.UVPath); err != nil {
		return err
	}

	return bootstrap.Run(c.Context(), bootstrap.Options{
		Name:          name,
		ParentDir:     dir,
		PythonVersion: python,
		Description:   description,
		SkipChecks:    skipChecks,
		UV:            toolchain.NewBinaryAt(cfg.UVPath),
	})
}

// printPlan lists the files a run would create, without touching the
// filesystem or the toolchain.
func printPlan(c *cobra.Command, name, python, description string) error {
	project := scaffold.NewProject(name, python, description)

	paths, err := scaffold.ListTemplateFiles(project)
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("listing project files: %w", err), oerrors.ExitGeneralError)
	}

	alignColumn := 0
	for _, p := range paths {
		if len(p) >= alignColumn {
			alignColumn = len(p) + 2
		}
	}

	entries := make([]output.FileEntry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, output.FileEntry{Path: p, Description: describeFile(p)})
	}

	fmt.Fprintln(c.OutOrStdout(), output.StyleSummary.Render(fmt.Sprintf("Files for project %s", output.StyleNoun.Render(project.Name))))
	fmt.Fprint(c.OutOrStdout(), output.RenderFileTree(entries, alignColumn))
	return nil
}

// describeFile maps a rendered file path to its listing description.
func describeFile(path string) string {
	base := filepath.Base(path)

	switch {
	case base == "pyproject.toml":
		return "project manifest (uv, ruff, pyright, pytest)"
	case base == ".pre-commit-config.yaml":
		return "pre-commit hooks"
	case base == "ci.yml":
		return "GitHub Actions workflow"
	case base == ".gitignore":
		return "ignore rules"
	case base == "README.md":
		return "project readme"
	case base == "py.typed":
		return "PEP 561 typing marker"
	case strings.HasPrefix(base, "test_"):
		return "smoke test"
	case strings.HasPrefix(path, "tests/"):
		return "test package marker"
	case base == "__init__.py":
		return "package docstring"
	default:
		return ""
	}
}

// loadConfig loads the user config honoring the global --config flag.
func loadConfig(c *cobra.Command) (*config.Config, error) {
	configFile, _ := c.Flags().GetString("config")

	cfg, err := config.NewLoader().LoadWithDefaults(configFile)
	if err != nil {
		return nil, oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	return cfg, nil
}

// requireUV fails before any step runs when the uv binary is missing.
func requireUV(uvPath string) error {
	if info := version.DetectUV(uvPath); !info.Found {
		return oerrors.NewExitError(
			oerrors.NewNotFoundError(
				"uv binary not found on PATH",
				"",
				"Install uv: https://docs.astral.sh/uv/getting-started/installation/"),
			oerrors.ExitToolchainMissing)
	}
	return nil
}
