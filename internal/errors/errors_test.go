package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailError_Format(t *testing.T) {
	err := &DetailError{
		Type:     "validation failed",
		Message:  "project name must start with a letter",
		Location: "2tool",
		Hint:     "use letters, digits, hyphens, underscores, and dots",
	}

	msg := err.Error()
	assert.Contains(t, msg, "Error: validation failed")
	assert.Contains(t, msg, "Location: 2tool")
	assert.Contains(t, msg, "project name must start with a letter")
	assert.Contains(t, msg, "Hint: use letters")
}

func TestDetailError_OptionalFieldsOmitted(t *testing.T) {
	err := &DetailError{Type: "not found", Message: "uv binary not found"}

	msg := err.Error()
	assert.NotContains(t, msg, "Location:")
	assert.NotContains(t, msg, "Hint:")
}

func TestNewValidationError_UnwrapsToSentinel(t *testing.T) {
	err := NewValidationError("bad name", "", "")

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNewNotFoundError_UnwrapsToSentinel(t *testing.T) {
	err := NewNotFoundError("uv not on PATH", "", "install uv")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitGeneralError},
		{"validation sentinel", NewValidationError("bad", "", ""), ExitValidationError},
		{"not found sentinel", NewNotFoundError("missing", "", ""), ExitToolchainMissing},
		{"explicit exit error", NewExitError(errors.New("child failed"), 7), 7},
		{"wrapped exit error wins over sentinel", NewExitError(NewValidationError("bad", "", ""), 5), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	inner := NewValidationError("bad", "", "")
	err := NewExitError(inner, ExitValidationError)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, inner.Error(), err.Error())
}
