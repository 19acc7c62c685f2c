package errors

import "errors"

// Exit codes for the pybootstrap CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid user input.
	ExitValidationError = 2

	// ExitToolchainMissing indicates the uv binary was not found.
	ExitToolchainMissing = 3
)

// ExitError wraps an error with a process exit code.
//
// External toolchain failures carry the child's exit code so the CLI
// propagates it; everything else maps through ExitCodeFromError.
type ExitError struct {
	Err  error
	Code int

	// Printed marks errors the command layer has already written to the
	// terminal, so main does not print them twice.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrNotFound):
		return ExitToolchainMissing
	default:
		return ExitGeneralError
	}
}
