package pipeline

import "fmt"

// StepFailedError identifies which step halted the chain.
type StepFailedError struct {
	// Step is the name of the failed step.
	Step string

	// Err is the step's error.
	Err error
}

// Error implements the error interface.
func (e *StepFailedError) Error() string {
	return fmt.Sprintf("step %q failed: %v", e.Step, e.Err)
}

// Unwrap returns the step's error.
func (e *StepFailedError) Unwrap() error {
	return e.Err
}
