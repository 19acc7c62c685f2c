package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pybootstrap/cli/internal/output"
)

// Generator handles project generation from the embedded template.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// Generate renders the project template into the target directory.
//
// Rendering is idempotent: existing files are overwritten, so re-running
// with identical inputs produces byte-for-byte identical output. Any
// filesystem failure aborts immediately with no rollback of files already
// written.
func (g *Generator) Generate(data Project) (*GenerateResult, error) {
	if err := ValidateProjectName(data.Name); err != nil {
		return nil, err
	}

	if err := g.checkTargetDir(); err != nil {
		return nil, err
	}

	output.Debug("generating project",
		"name", data.Name,
		"package", data.PackageName,
		"python", data.PythonVersion,
		"target", g.opts.TargetDir)

	renderer := NewRenderer(data)
	files, err := renderer.RenderAll()
	if err != nil {
		return nil, fmt.Errorf("rendering project template: %w", err)
	}

	// Catch templates broken by the substitution values (e.g. a description
	// containing TOML or YAML metacharacters) before writing anything.
	if err := VetFiles(files); err != nil {
		return nil, err
	}

	createdFiles := make([]string, 0, len(files))
	for _, f := range files {
		targetPath := filepath.Join(g.opts.TargetDir, f.TargetPath)

		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", filepath.Dir(targetPath), err)
		}

		if err := os.WriteFile(targetPath, f.Content, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", targetPath, err)
		}

		output.Debug("created file", "path", f.TargetPath)
		createdFiles = append(createdFiles, f.TargetPath)
	}

	return &GenerateResult{
		Files:     createdFiles,
		TargetDir: g.opts.TargetDir,
	}, nil
}

// checkTargetDir validates and creates the target directory.
func (g *Generator) checkTargetDir() error {
	info, err := os.Stat(g.opts.TargetDir)
	if err == nil && !info.IsDir() {
		return fmt.Errorf("%s is not a directory", g.opts.TargetDir)
	}
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("checking target directory: %w", err)
	}

	if err := os.MkdirAll(g.opts.TargetDir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", g.opts.TargetDir, err)
	}

	return nil
}
