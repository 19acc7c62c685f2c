package scaffold

import (
	"fmt"
	"unicode"

	oerrors "github.com/pybootstrap/cli/internal/errors"
)

const nameHint = "Project names use letters, digits, hyphens, underscores, and dots, and start with a letter."

// ValidateProjectName checks if a project name is valid.
// Project names allow letters, digits, hyphens, underscores, and dots,
// and must start with a letter. Failures unwrap to ErrValidation so the
// caller maps them to the validation exit code.
func ValidateProjectName(name string) error {
	if name == "" {
		return oerrors.NewValidationError("project name cannot be empty", "", nameHint)
	}

	for i, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' && r != '.' {
			return oerrors.NewValidationError(
				fmt.Sprintf("project name contains invalid character %q", r), name, nameHint)
		}
		if i == 0 && !unicode.IsLetter(r) {
			return oerrors.NewValidationError("project name must start with a letter", name, nameHint)
		}
	}

	return nil
}

// SanitizeName converts a project name to a valid Python package identifier:
// lowercase, with hyphens and dots replaced by underscores.
//
// The function is idempotent: sanitizing an already-sanitized identifier
// returns it unchanged.
func SanitizeName(name string) string {
	result := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
			result = append(result, c+('a'-'A'))
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_':
			result = append(result, c)
		case c == '-' || c == '.':
			result = append(result, '_')
		}
	}

	// A Python identifier cannot start with a digit.
	if len(result) > 0 && result[0] >= '0' && result[0] <= '9' {
		result = append([]byte{'_'}, result...)
	}

	if len(result) == 0 {
		return "project"
	}

	return string(result)
}
