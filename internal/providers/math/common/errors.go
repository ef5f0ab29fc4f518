package common

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a violated precondition (empty input, out of range parameter).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrLengthMismatch reports paired vectors of differing length.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrComputation reports a failure inside an underlying numeric primitive.
	ErrComputation = errors.New("computation failed")
)

// Error codes attached to failed tool results
const (
	CodeInvalidArgument = "invalid_argument"
	CodeLengthMismatch  = "length_mismatch"
	CodeComputation     = "computation"
	CodeNotFound        = "not_found"
)

// InvalidArgument wraps ErrInvalidArgument with a formatted message
func InvalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// LengthMismatch wraps ErrLengthMismatch with both lengths
func LengthMismatch(a, b int) error {
	return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, a, b)
}

// Computation wraps ErrComputation for the named operation
func Computation(op string, cause interface{}) error {
	return fmt.Errorf("%w: %s: %v", ErrComputation, op, cause)
}

// Guard runs fn and converts a panic raised by a gonum primitive into an
// ErrComputation error. Errors returned by fn pass through unchanged.
func Guard(op string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = Computation(op, r)
		}
	}()
	return fn()
}

// ErrorCode maps an error onto the code reported in failed results
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return CodeInvalidArgument
	case errors.Is(err, ErrLengthMismatch):
		return CodeLengthMismatch
	case errors.Is(err, ErrComputation):
		return CodeComputation
	default:
		return CodeComputation
	}
}
