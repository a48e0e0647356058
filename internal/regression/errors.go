package regression

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when there are no samples to train on.
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrMalformedInput is returned when a header or row cannot be parsed.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInvalidInput is returned when a value is outside its documented bounds.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDidNotConverge is returned when training stops before the convergence test holds.
	ErrDidNotConverge = errors.New("did not converge")
)

// MalformedInputError describes the first line that failed to parse.
type MalformedInputError struct {
	Line   int
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed input at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed input: %s", e.Reason)
}

func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}

// StopReason tells why training ended without converging.
type StopReason string

const (
	StopMaxIterations StopReason = "max_iterations"
	StopDeadline      StopReason = "deadline"
	StopDiverged      StopReason = "diverged"
)

// DidNotConvergeError carries the best model found before training stopped.
type DidNotConvergeError struct {
	Iterations int
	Reason     StopReason
	Model      Model
}

func (e *DidNotConvergeError) Error() string {
	return fmt.Sprintf("did not converge after %d iterations (%s)", e.Iterations, e.Reason)
}

func (e *DidNotConvergeError) Unwrap() error {
	return ErrDidNotConverge
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
