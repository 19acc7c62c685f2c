package scaffold

import "embed"

// TemplateFS holds the embedded project template. The all: prefix is
// required so dotfiles (.gitignore, .github/, .pre-commit-config.yaml)
// are included.
//
//go:embed all:project
var TemplateFS embed.FS

// templateRoot is the directory prefix of the embedded template.
const templateRoot = "project"

// packageToken is the path placeholder replaced with the derived package
// identifier when computing target paths (e.g. src/__package__/__init__.py
// becomes src/my_tool/__init__.py).
const packageToken = "__package__"

// templateSuffix marks files whose content is rendered through
// text/template; it is stripped from target paths.
const templateSuffix = ".tmpl"
