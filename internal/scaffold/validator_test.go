package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/pybootstrap/cli/internal/errors"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "sample", false},
		{"hyphenated name", "my-cool-tool", false},
		{"underscored name", "my_tool", false},
		{"mixed case", "My-Cool-Tool", false},
		{"with digits", "tool2", false},
		{"empty", "", true},
		{"starts with digit", "2tool", true},
		{"starts with hyphen", "-tool", true},
		{"contains space", "my tool", true},
		{"contains slash", "my/tool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, oerrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"sample", "sample"},
		{"My-Cool-Tool", "my_cool_tool"},
		{"my.tool", "my_tool"},
		{"MyTool", "mytool"},
		{"my_tool", "my_tool"},
		{"2tool", "_2tool"},
		{"---", "___"},
		{"", "project"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.input))
		})
	}
}

func TestSanitizeName_Idempotent(t *testing.T) {
	inputs := []string{"sample", "My-Cool-Tool", "my.dotted.name", "2tool", "WEIRD--Name__x"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := SanitizeName(in)
			assert.Equal(t, once, SanitizeName(once))
		})
	}
}

func TestNewProject_DerivesPackageName(t *testing.T) {
	p := NewProject("My-Cool-Tool", "3.12", "does things")

	assert.Equal(t, "My-Cool-Tool", p.Name)
	assert.Equal(t, "my_cool_tool", p.PackageName)
	assert.Equal(t, "3.12", p.PythonVersion)
	assert.Equal(t, "does things", p.Description)
}
