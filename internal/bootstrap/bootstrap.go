// Package bootstrap orchestrates the scaffold-then-verify chain for a new project.
//
// The chain is strictly linear: create the target directory, render every
// template file, then invoke the uv toolchain steps one after another.
// Any failure halts the run; re-running overwrites already-rendered files
// and re-executes already-passed steps.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	oerrors "github.com/pybootstrap/cli/internal/errors"
	"github.com/pybootstrap/cli/internal/output"
	"github.com/pybootstrap/cli/internal/pipeline"
	"github.com/pybootstrap/cli/internal/scaffold"
	"github.com/pybootstrap/cli/internal/toolchain"
)

// Toolchain is the set of external uv invocations the chain needs.
// *toolchain.Binary implements it; tests substitute fakes.
type Toolchain interface {
	Venv(ctx context.Context, dir, pythonVersion string) error
	Sync(ctx context.Context, dir string) error
	Lint(ctx context.Context, dir string) error
	FormatCheck(ctx context.Context, dir string) error
	TypeCheck(ctx context.Context, dir string) error
	Test(ctx context.Context, dir string) error
}

// Options configures a bootstrap run.
type Options struct {
	// Name is the human-facing project name.
	Name string

	// ParentDir is the directory the project directory is created in.
	// Defaults to the current working directory.
	ParentDir string

	// PythonVersion is the minimum Python version the project declares.
	PythonVersion string

	// Description is the free-text project description.
	Description string

	// SkipChecks renders files and sets up the environment but skips the
	// lint/format/type-check/test chain.
	SkipChecks bool

	// UV is the toolchain used for external steps.
	UV Toolchain

	// Runner executes the step chain. Defaults to pipeline.NewRunner().
	Runner *pipeline.Runner

	// Out receives human-readable progress output. Defaults to os.Stdout.
	Out io.Writer
}

// Run scaffolds and verifies a new project.
//
// The returned error is an *oerrors.ExitError whose code propagates a
// failing toolchain step's exit code, or maps filesystem and validation
// failures to the generic codes.
func Run(ctx context.Context, opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	runner := opts.Runner
	if runner == nil {
		runner = pipeline.NewRunner()
	}

	project := scaffold.NewProject(opts.Name, opts.PythonVersion, opts.Description)

	targetDir, err := resolveTargetDir(opts.ParentDir, opts.Name)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	if info, statErr := os.Stat(targetDir); statErr == nil && info.IsDir() {
		output.Warn("target directory already exists, rendered files will be overwritten", "dir", targetDir)
	}

	fmt.Fprintln(out, output.StyleSummary.Render(fmt.Sprintf("Bootstrapping project %s", output.StyleNoun.Render(project.Name))))
	fmt.Fprintf(out, "  Directory: %s\n", targetDir)
	fmt.Fprintf(out, "  Package:   %s\n", project.PackageName)
	fmt.Fprintf(out, "  Python:    %s\n\n", project.PythonVersion)

	result, err := renderFiles(project, targetDir, out)
	if err != nil {
		return err
	}

	output.Debug("rendered project files", "count", len(result.Files), "target", targetDir)

	if err := runner.Run(ctx, steps(opts, targetDir, project.PythonVersion)); err != nil {
		return stepExitError(out, err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, output.StyleSummary.Render(fmt.Sprintf("Project %q is ready", project.Name)))
	fmt.Fprintf(out, "  cd %s\n", targetDir)
	fmt.Fprintln(out, "  git init && uv run pre-commit install")

	return nil
}

// renderFiles renders the template set and reports each created file.
func renderFiles(project scaffold.Project, targetDir string, out io.Writer) (*scaffold.GenerateResult, error) {
	generator := scaffold.NewGenerator(scaffold.GenerateOptions{TargetDir: targetDir})

	result, err := generator.Generate(project)
	if err != nil {
		if errors.Is(err, oerrors.ErrValidation) {
			return nil, oerrors.NewExitError(err, oerrors.ExitValidationError)
		}
		return nil, oerrors.NewExitError(fmt.Errorf("rendering project: %w", err), oerrors.ExitGeneralError)
	}

	for _, f := range result.Files {
		fmt.Fprintln(out, output.FormatCreatedFile(f))
	}
	fmt.Fprintln(out)

	return result, nil
}

// steps builds the ordered toolchain chain for the run.
func steps(opts Options, dir, pythonVersion string) []pipeline.Step {
	uv := opts.UV

	chain := []pipeline.Step{
		{Name: "create virtualenv", Run: func(ctx context.Context) error { return uv.Venv(ctx, dir, pythonVersion) }},
		{Name: "install dependencies", Run: func(ctx context.Context) error { return uv.Sync(ctx, dir) }},
	}

	if opts.SkipChecks {
		return chain
	}

	return append(chain,
		pipeline.Step{Name: "lint (ruff)", Run: func(ctx context.Context) error { return uv.Lint(ctx, dir) }},
		pipeline.Step{Name: "format check (ruff)", Run: func(ctx context.Context) error { return uv.FormatCheck(ctx, dir) }},
		pipeline.Step{Name: "type check (pyright)", Run: func(ctx context.Context) error { return uv.TypeCheck(ctx, dir) }},
		pipeline.Step{Name: "test (pytest)", Run: func(ctx context.Context) error { return uv.Test(ctx, dir) }},
	)
}

// VerifySteps builds the verification-only chain used by `pybootstrap check`.
func VerifySteps(uv Toolchain, dir string) []pipeline.Step {
	return []pipeline.Step{
		{Name: "install dependencies", Run: func(ctx context.Context) error { return uv.Sync(ctx, dir) }},
		{Name: "lint (ruff)", Run: func(ctx context.Context) error { return uv.Lint(ctx, dir) }},
		{Name: "format check (ruff)", Run: func(ctx context.Context) error { return uv.FormatCheck(ctx, dir) }},
		{Name: "type check (pyright)", Run: func(ctx context.Context) error { return uv.TypeCheck(ctx, dir) }},
		{Name: "test (pytest)", Run: func(ctx context.Context) error { return uv.Test(ctx, dir) }},
	}
}

// StepExitError converts a failed pipeline run into an ExitError, printing
// the failed command's captured diagnostics. The child's exit code is
// propagated when available.
func StepExitError(out io.Writer, err error) error {
	return stepExitError(out, err)
}

func stepExitError(out io.Writer, err error) error {
	var stepErr *toolchain.StepError
	if errors.As(err, &stepErr) {
		fmt.Fprintln(out, output.FormatCrossmark(fmt.Sprintf("command failed: %s", stepErr.Command())))
		if diag := stepErr.Output(); diag != "" {
			fmt.Fprintln(out, diag)
		}
		code := stepErr.ExitCode
		if code == 0 {
			code = oerrors.ExitGeneralError
		}
		return &oerrors.ExitError{Err: err, Code: code, Printed: true}
	}

	return oerrors.NewExitError(err, oerrors.ExitGeneralError)
}

// resolveTargetDir joins the parent directory and project name into an
// absolute target path.
func resolveTargetDir(parentDir, name string) (string, error) {
	if parentDir == "" {
		parentDir = "."
	}

	abs, err := filepath.Abs(filepath.Join(parentDir, name))
	if err != nil {
		return "", fmt.Errorf("resolving target directory: %w", err)
	}

	return abs, nil
}
