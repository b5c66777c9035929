package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a run configuration that cannot produce steps.
	ErrInvalidConfig = errors.New("sim: invalid run configuration")

	// ErrInvalidState indicates the wheel state went non-finite mid-run.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")
)

// StepError wraps a failure with the step and simulation time it occurred at.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e StepError) Unwrap() error { return e.Wrapped }
