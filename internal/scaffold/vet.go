package scaffold

import (
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// VetFiles parses rendered TOML and YAML files to confirm the substitution
// values produced syntactically valid output. A description containing an
// unescaped quote would otherwise yield a pyproject.toml the toolchain
// rejects much later, with a worse message.
func VetFiles(files []TemplateFile) error {
	for _, f := range files {
		if err := vetFile(f); err != nil {
			return err
		}
	}
	return nil
}

func vetFile(f TemplateFile) error {
	switch {
	case strings.HasSuffix(f.TargetPath, ".toml"):
		var doc map[string]interface{}
		if err := toml.Unmarshal(f.Content, &doc); err != nil {
			return fmt.Errorf("rendered %s is not valid TOML: %w", f.TargetPath, err)
		}
	case isYAML(f.TargetPath):
		var doc interface{}
		if err := yaml.Unmarshal(f.Content, &doc); err != nil {
			return fmt.Errorf("rendered %s is not valid YAML: %w", f.TargetPath, err)
		}
	}
	return nil
}

func isYAML(targetPath string) bool {
	switch path.Ext(targetPath) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
