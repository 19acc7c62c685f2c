package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// renderOrder fixes the output sequence: the manifest first, then the
// source package, tests, and tool configuration. Paths are relative to
// the embedded template root. Every embedded file must appear here;
// RenderAll rejects templates the list does not cover.
var renderOrder = []string{
	"pyproject.toml.tmpl",
	"src/__package__/__init__.py.tmpl",
	"src/__package__/py.typed",
	"tests/__init__.py",
	"tests/test___package__.py.tmpl",
	".pre-commit-config.yaml.tmpl",
	".github/workflows/ci.yml.tmpl",
	".gitignore",
	"README.md.tmpl",
}

// Renderer handles template rendering with data substitution.
// Rendering is pure: all filesystem writes live in the Generator.
type Renderer struct {
	data Project
}

// NewRenderer creates a new renderer with the given project data.
func NewRenderer(data Project) *Renderer {
	return &Renderer{data: data}
}

// RenderFile renders a single template file and returns the content.
func (r *Renderer) RenderFile(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// TemplateFile represents a file to be generated from the template.
type TemplateFile struct {
	// SourcePath is the path within the embedded filesystem.
	SourcePath string

	// TargetPath is the output path relative to the target directory,
	// with the package token substituted and the .tmpl suffix removed.
	TargetPath string

	// Content is the rendered content.
	Content []byte
}

// RenderAll renders every file in the embedded project template, in
// renderOrder. Files without a .tmpl suffix are copied verbatim.
func (r *Renderer) RenderAll() ([]TemplateFile, error) {
	if err := checkRenderOrder(); err != nil {
		return nil, err
	}

	files := make([]TemplateFile, 0, len(renderOrder))
	for _, rel := range renderOrder {
		sourcePath := templateRoot + "/" + rel

		content, err := fs.ReadFile(TemplateFS, sourcePath)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", sourcePath, err)
		}

		rendered := content
		if strings.HasSuffix(sourcePath, templateSuffix) {
			rendered, err = r.RenderFile(sourcePath, content)
			if err != nil {
				return nil, err
			}
		}

		files = append(files, TemplateFile{
			SourcePath: sourcePath,
			TargetPath: r.targetPath(sourcePath),
			Content:    rendered,
		})
	}

	return files, nil
}

// checkRenderOrder verifies that every embedded file is covered by
// renderOrder, so a template added to project/ cannot be silently
// skipped.
func checkRenderOrder() error {
	listed := make(map[string]struct{}, len(renderOrder))
	for _, rel := range renderOrder {
		listed[templateRoot+"/"+rel] = struct{}{}
	}

	return fs.WalkDir(TemplateFS, templateRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := listed[path]; !ok {
			return fmt.Errorf("embedded template %s is missing from the render order", path)
		}
		return nil
	})
}

// targetPath computes the output path for an embedded template path.
func (r *Renderer) targetPath(sourcePath string) string {
	rel := strings.TrimPrefix(sourcePath, templateRoot+"/")
	rel = strings.ReplaceAll(rel, packageToken, r.data.PackageName)
	return strings.TrimSuffix(rel, templateSuffix)
}

// ListTemplateFiles returns the target paths of all files in the project
// template for the given project, in render order, without rendering
// content.
func ListTemplateFiles(data Project) ([]string, error) {
	if err := checkRenderOrder(); err != nil {
		return nil, err
	}

	renderer := NewRenderer(data)

	files := make([]string, 0, len(renderOrder))
	for _, rel := range renderOrder {
		files = append(files, renderer.targetPath(templateRoot+"/"+rel))
	}

	return files, nil
}
