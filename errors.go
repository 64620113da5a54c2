package tpep

import (
	"errors"
	"fmt"
)

// InvalidInputError reports an input outside the domain of the TPEP metrics.
//
// The arithmetic functions are total on positive integers: factorization of
// a finite n ≥ 1 always terminates and always succeeds. The only failure
// mode is a caller passing a value below 1 (or a reversed scan interval),
// which is a usage error, never a transient condition. It is always
// surfaced, never retried.
type InvalidInputError struct {
	// Value is the offending input as received.
	Value int64

	// Reason is a human-readable description.
	Reason string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %d: %s", e.Value, e.Reason)
}

// IsInvalidInput returns true if the error is an input-domain error.
// Uses errors.As to handle wrapped errors.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}

// errNonPositive builds the error for n < 1.
func errNonPositive(n int64) *InvalidInputError {
	return &InvalidInputError{
		Value:  n,
		Reason: "TPEP metrics apply to positive integers only",
	}
}
