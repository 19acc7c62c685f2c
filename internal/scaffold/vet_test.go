package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVetFiles_ValidProject(t *testing.T) {
	files, err := NewRenderer(sampleProject()).RenderAll()
	require.NoError(t, err)

	assert.NoError(t, VetFiles(files))
}

func TestVetFiles_DescriptionBreakingTOML(t *testing.T) {
	p := NewProject("sample", "3.12", `contains an unescaped " quote`)

	files, err := NewRenderer(p).RenderAll()
	require.NoError(t, err)

	err = VetFiles(files)
	assert.ErrorContains(t, err, "pyproject.toml")
}

func TestVetFiles_IgnoresNonConfigFiles(t *testing.T) {
	files := []TemplateFile{
		{TargetPath: "README.md", Content: []byte("# not: valid { toml or yaml —")},
		{TargetPath: "src/x/__init__.py", Content: []byte(`"""doc"""`)},
	}

	assert.NoError(t, VetFiles(files))
}

func TestVetFiles_BadTOML(t *testing.T) {
	files := []TemplateFile{
		{TargetPath: "pyproject.toml", Content: []byte(`name = "unterminated`)},
	}

	assert.ErrorContains(t, VetFiles(files), "not valid TOML")
}

func TestVetFiles_BadYAML(t *testing.T) {
	files := []TemplateFile{
		{TargetPath: ".pre-commit-config.yaml", Content: []byte("repos:\n  - repo: [unclosed")},
	}

	assert.ErrorContains(t, VetFiles(files), "not valid YAML")
}
