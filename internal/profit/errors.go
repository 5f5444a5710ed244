package profit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput means the caller's algorithm list broke a precondition.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTransport means the quote request could not be completed.
	ErrTransport = errors.New("transport error")
	// ErrValidation means the response was missing or misshaping a field.
	ErrValidation = errors.New("validation error")
	// ErrNoMatch means the response was well formed but no matched
	// algorithm scored above zero.
	ErrNoMatch = errors.New("no profitable algorithm")
)

// ValidationError describes where in the response tree validation failed.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error at %s: %s", e.Path, e.Reason)
}

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(path, format string, args ...any) error {
	return &ValidationError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
