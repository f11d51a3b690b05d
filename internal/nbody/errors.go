package nbody

import (
	"errors"
	"fmt"
)

// Domain errors for simulation state.
var (
	// ErrNonPositiveMass indicates a body with mass <= 0 was supplied.
	ErrNonPositiveMass = errors.New("nbody: body mass must be positive")

	// ErrNegativeStep indicates a negative time delta was passed to Step.
	ErrNegativeStep = errors.New("nbody: negative time step")

	// ErrNoBodies indicates construction with an empty body list.
	ErrNoBodies = errors.New("nbody: at least one body required")

	// ErrNonFinite indicates a NaN or Inf component in body state.
	ErrNonFinite = errors.New("nbody: non-finite value in body state")
)

// StepError wraps an error with the tick it occurred on.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
