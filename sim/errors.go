package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the sentinel for hyperparameter validation failures.
// Validation runs before any random draw: a configuration that fails never
// produces partial output.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError reports which hyperparameter was rejected and why.
// It wraps ErrInvalidParameter so callers can match the class with errors.Is.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// invalidParam builds an InvalidParameterError with a formatted reason.
func invalidParam(param, format string, args ...any) error {
	return &InvalidParameterError{Param: param, Reason: fmt.Sprintf(format, args...)}
}
