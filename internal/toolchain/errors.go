package toolchain

import (
	"fmt"
	"strings"

	oerrors "github.com/pybootstrap/cli/internal/errors"
)

// StepError reports a failed toolchain invocation with its captured
// error output and the child's exit code.
type StepError struct {
	// Tool is the program that was invoked.
	Tool string

	// Args is the argument vector passed to the tool.
	Args []string

	// ExitCode is the child's exit code.
	ExitCode int

	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("%s %s failed with exit code %d",
		e.Tool, strings.Join(e.Args, " "), e.ExitCode)
}

// Unwrap marks every step failure as a toolchain error.
func (e *StepError) Unwrap() error {
	return oerrors.ErrToolchain
}

// Command returns the full command line for display.
func (e *StepError) Command() string {
	return e.Tool + " " + strings.Join(e.Args, " ")
}

// Output returns the captured diagnostic text, preferring stderr but
// falling back to stdout for tools that report failures there (pytest).
func (e *StepError) Output() string {
	if strings.TrimSpace(e.Stderr) != "" {
		return e.Stderr
	}
	return e.Stdout
}
