// Package common holds what every math tool module shares.
//
// This package provides:
//   - Error taxonomy: ErrInvalidArgument, ErrLengthMismatch, ErrComputation
//   - Guard: converts panics from gonum primitives into ErrComputation
//   - Parameter extraction from tool parameter bags (GetNumbers, GetScalars, GetMatrix, ...)
//   - Input validation (NaN and Inf rejection)
//   - Result constructors carrying an error code
//
// Core numeric functions return Go errors; tool handlers turn them into
// failed results with FailureFrom so the caller sees the message and code.
//
// Example Usage:
//
//	if err := common.ValidateNumbers(samples, "samples"); err != nil {
//	    return common.FailureFrom(err)
//	}
package common
