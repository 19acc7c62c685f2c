// Package scaffold provides the embedded project template and rendering for pybootstrap new.
package scaffold

// Project holds the data passed to template rendering.
//
// It is constructed once per run from command-line input and read-only
// thereafter.
type Project struct {
	// Name is the human-facing project name (e.g. "my-cool-tool").
	Name string

	// PackageName is the import-safe package identifier derived from Name
	// (lowercase, hyphens and dots replaced with underscores).
	PackageName string

	// PythonVersion is the minimum Python version the project declares.
	PythonVersion string

	// Description is the free-text project description.
	Description string
}

// NewProject builds a Project from a project name, deriving the package
// identifier. The derivation is deterministic: NewProject with the same
// name always yields the same PackageName.
func NewProject(name, pythonVersion, description string) Project {
	return Project{
		Name:          name,
		PackageName:   SanitizeName(name),
		PythonVersion: pythonVersion,
		Description:   description,
	}
}

// GenerateOptions configures project generation behavior.
type GenerateOptions struct {
	// TargetDir is the directory to generate the project in.
	TargetDir string
}

// GenerateResult contains the result of project generation.
type GenerateResult struct {
	// Files is the list of files created, relative to TargetDir.
	Files []string

	// TargetDir is the directory where files were created.
	TargetDir string
}
