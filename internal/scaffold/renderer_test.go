package scaffold

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProject() Project {
	return NewProject("sample", "3.12", "")
}

func TestRenderAll_ManifestFirstOrder(t *testing.T) {
	files, err := NewRenderer(sampleProject()).RenderAll()
	require.NoError(t, err)

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.TargetPath)
	}

	// The manifest renders first, then the source package, tests, and
	// tool configuration.
	want := []string{
		"pyproject.toml",
		"src/sample/__init__.py",
		"src/sample/py.typed",
		"tests/__init__.py",
		"tests/test_sample.py",
		".pre-commit-config.yaml",
		".github/workflows/ci.yml",
		".gitignore",
		"README.md",
	}

	assert.Equal(t, want, paths)

	// No template artifacts in target paths
	for _, p := range paths {
		assert.False(t, strings.HasSuffix(p, ".tmpl"), "target path should not have .tmpl suffix: %s", p)
		assert.NotContains(t, p, "__package__", "target path should not contain the package token: %s", p)
	}
}

func TestRenderAll_ManifestContent(t *testing.T) {
	files, err := NewRenderer(sampleProject()).RenderAll()
	require.NoError(t, err)

	manifest := contentOf(t, files, "pyproject.toml")
	assert.Contains(t, manifest, `name = "sample"`)
	assert.Contains(t, manifest, `requires-python = ">=3.12"`)
	assert.Contains(t, manifest, `target-version = "py312"`)
	assert.Contains(t, manifest, `packages = ["src/sample"]`)
	assert.Contains(t, manifest, `known-first-party = ["sample"]`)
	assert.Contains(t, manifest, `pythonVersion = "3.12"`)
}

func TestRenderAll_SmokeTestContent(t *testing.T) {
	files, err := NewRenderer(sampleProject()).RenderAll()
	require.NoError(t, err)

	smokeTest := contentOf(t, files, "tests/test_sample.py")
	assert.Contains(t, smokeTest, "from sample import __doc__")
	assert.Contains(t, smokeTest, "assert __doc__ is not None")
}

func TestRenderAll_PackageInit(t *testing.T) {
	p := NewProject("my-tool", "3.13", "a fine tool")
	files, err := NewRenderer(p).RenderAll()
	require.NoError(t, err)

	initPy := contentOf(t, files, "src/my_tool/__init__.py")
	assert.Equal(t, "\"\"\"my-tool: a fine tool.\"\"\"\n", initPy)

	workflow := contentOf(t, files, ".github/workflows/ci.yml")
	assert.Contains(t, workflow, "uv python install 3.13")
}

func TestRenderAll_Deterministic(t *testing.T) {
	first, err := NewRenderer(sampleProject()).RenderAll()
	require.NoError(t, err)

	second, err := NewRenderer(sampleProject()).RenderAll()
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].TargetPath, second[i].TargetPath)
		assert.Equal(t, first[i].Content, second[i].Content, "content differs for %s", first[i].TargetPath)
	}
}

func TestListTemplateFiles(t *testing.T) {
	files, err := ListTemplateFiles(sampleProject())
	require.NoError(t, err)

	require.Len(t, files, 9)
	assert.Equal(t, "pyproject.toml", files[0])
	assert.Contains(t, files, "src/sample/py.typed")
}

func contentOf(t *testing.T, files []TemplateFile, targetPath string) string {
	t.Helper()
	for _, f := range files {
		if f.TargetPath == targetPath {
			return string(f.Content)
		}
	}
	t.Fatalf("file %s not rendered", targetPath)
	return ""
}
