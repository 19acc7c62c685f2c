// Package pipeline executes an ordered chain of named fallible steps.
//
// The chain is strictly linear: no step begins before the previous one
// completes, and the first failure halts the run. There is no retry and
// no rollback of earlier steps.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pybootstrap/cli/internal/output"
)

// Step is a named fallible action in the chain.
type Step struct {
	// Name is the human-readable step name shown next to the status.
	Name string

	// Run performs the step. A non-nil error halts the chain.
	Run func(ctx context.Context) error
}

// Runner executes steps in order with per-step progress output.
type Runner struct {
	// Out receives the per-step status lines. Defaults to os.Stdout.
	Out io.Writer

	// Spinner enables a spinner while a step runs on a TTY.
	Spinner bool
}

// NewRunner creates a Runner writing to stdout with spinners enabled.
func NewRunner() *Runner {
	return &Runner{Out: os.Stdout, Spinner: true}
}

// Run executes the steps in order. The first failing step stops the
// chain; its error is returned wrapped in a *StepFailedError. Steps
// after a failure never execute.
func (r *Runner) Run(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		if err := r.runStep(ctx, step); err != nil {
			fmt.Fprintln(r.out(), output.FormatStepLine(step.Name, output.StatusFailed))
			return &StepFailedError{Step: step.Name, Err: err}
		}
		fmt.Fprintln(r.out(), output.FormatStepLine(step.Name, output.StatusPassed))
	}
	return nil
}

func (r *Runner) runStep(ctx context.Context, step Step) error {
	if !r.Spinner {
		return step.Run(ctx)
	}
	return output.RunWithSpinner(ctx, func() error {
		return step.Run(ctx)
	}, output.WithTitle(step.Name+"..."))
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}
