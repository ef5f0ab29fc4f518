// Package mathcompat provides numeric routines that reproduce the results of
// common MATLAB and numpy idioms: quantiles with (2i-1)/(2n) plotting
// positions, percentiles, histogram binning, unique-value analysis, overlap
// search between vectors, and a handful of date, text and matrix helpers.
//
// The functions are pure and report invalid input through errors that wrap
// ErrInvalidArgument, ErrLengthMismatch or ErrComputation.
//
// The same routines are available as named tools through an Engine, which
// adds structured logging, Prometheus metrics and configuration from the
// environment:
//
//	engine, err := mathcompat.NewFromEnv()
//	if err != nil {
//		return err
//	}
//	res, err := engine.Execute(ctx, "math.percentile", map[string]interface{}{
//		"numbers": samples,
//		"p":       95,
//	}, nil)
package mathcompat
