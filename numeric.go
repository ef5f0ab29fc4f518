package mathcompat

import (
	"cmp"
	"iter"
	"time"

	"github.com/GriffinCanCode/mathcompat/internal/providers/math/common"
	"github.com/GriffinCanCode/mathcompat/internal/providers/math/sets"
	"github.com/GriffinCanCode/mathcompat/internal/providers/math/statistics"
	"github.com/GriffinCanCode/mathcompat/internal/providers/math/utilities"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by the numeric routines. Test with errors.Is.
var (
	ErrInvalidArgument = common.ErrInvalidArgument
	ErrLengthMismatch  = common.ErrLengthMismatch
	ErrComputation     = common.ErrComputation
)

type (
	// HistogramResult holds bin counts and the len(Counts)+1 bin edges.
	HistogramResult = statistics.HistogramResult
	// UniqueResult holds distinct values with first index, counts and inverse index.
	UniqueResult = sets.UniqueResult
	// Match is a position where two paired vectors agree.
	Match[T comparable] = sets.Match[T]
	// Stopwatch measures elapsed time between Tic and Toc.
	Stopwatch = utilities.Stopwatch
)

// Quantile estimates the q-th quantile of samples by linear interpolation
// between the sorted samples placed at plotting positions (2i-1)/(2n).
// q must be >= 0; values outside the outermost positions clamp to the
// smallest or largest sample.
func Quantile(samples []float64, q float64) (float64, error) {
	return statistics.Quantile(samples, q)
}

// Quantiles evaluates several quantiles against one sort of samples.
func Quantiles(samples []float64, qs []float64) ([]float64, error) {
	return statistics.Quantiles(samples, qs)
}

// Percentile returns Quantile(samples, p/100) for p in [0, 100].
func Percentile(samples []float64, p float64) (float64, error) {
	return statistics.Percentile(samples, p)
}

// MaxBins is the largest bin count Histogram accepts.
const MaxBins = statistics.MaxBins

// Histogram counts values in bins equal-width bins spanning [min, max].
// The last bin is closed. bins must lie in [1, MaxBins].
func Histogram(values []float64, bins int) (*HistogramResult, error) {
	return statistics.Histogram(values, bins)
}

// HistogramEdges counts values in bins bounded by explicit increasing edges.
func HistogramEdges(values []float64, edges []float64) (*HistogramResult, error) {
	return statistics.HistogramEdges(values, edges)
}

// HistogramMatrix flattens m row by row and bins the result.
func HistogramMatrix(m mat.Matrix, bins int) (*HistogramResult, error) {
	return statistics.HistogramMatrix(m, bins)
}

// UniqueOrdered returns each distinct element once, in first-seen order.
func UniqueOrdered[T comparable](values []T) []T {
	return sets.UniqueOrdered(values)
}

// UniqueRanked maps every distinct value, ascending, to a rank counting up
// from start.
func UniqueRanked[T cmp.Ordered](values []T, start int) (map[T]int, error) {
	return sets.UniqueRanked(values, start)
}

// UniqueStats returns the sorted distinct values of values with the first
// occurrence, multiplicity and inverse mapping of each.
func UniqueStats(values []float64) (*UniqueResult, error) {
	return sets.UniqueStats(values)
}

// UniqueStatsMatrix runs UniqueStats over m flattened row by row.
func UniqueStatsMatrix(m mat.Matrix) (*UniqueResult, error) {
	return sets.UniqueStatsMatrix(m)
}

// Overlap1D returns the positions where equal-length a and b agree.
func Overlap1D[T comparable](a, b []T) ([]Match[T], error) {
	return sets.Overlap1D(a, b)
}

// Overlap1DPositions lazily yields, for each element of a, the positions in
// b holding an equal value.
func Overlap1DPositions[T comparable](a, b []T) iter.Seq[[]int] {
	return sets.Overlap1DPositions(a, b)
}

// Overlap2D returns the indices of a whose value occurs in b and the indices
// of b whose value occurs in a.
func Overlap2D(a, b []float64) ([]int, []int, error) {
	return sets.Overlap2D(a, b)
}

// Datenum returns the serial day number (0000-01-01 is day 1) of t's date.
func Datenum(t time.Time) int {
	return utilities.Datenum(t)
}

// DatenumYMD returns the serial day number of a calendar date.
func DatenumYMD(year int, month time.Month, day int) (int, error) {
	return utilities.DatenumYMD(year, month, day)
}

// FromDatenum converts a serial day number to midnight UTC.
func FromDatenum(serial int) time.Time {
	return utilities.FromDatenum(serial)
}

// DateRange yields instants from start, step apart, strictly before end.
func DateRange(start, end time.Time, step time.Duration) (iter.Seq[time.Time], error) {
	return utilities.DateRange(start, end, step)
}

// Step builds a duration from day and time components.
func Step(days, hours, minutes, seconds float64) time.Duration {
	return utilities.Step(days, hours, minutes, seconds)
}

// NewStopwatch returns a running stopwatch.
func NewStopwatch() *Stopwatch {
	return utilities.NewStopwatch()
}

// FormatElapsed renders d as "Elapsed time is h:m:s <unit>.".
func FormatElapsed(d time.Duration) string {
	return utilities.FormatElapsed(d)
}

// Str2Num parses integer text as int64 and other number text as float64.
func Str2Num(s string) (interface{}, error) {
	return utilities.Str2Num(s)
}

// Num2Str renders a scalar as text.
func Num2Str(x interface{}) (string, error) {
	return utilities.Num2Str(x)
}

// Sprintf formats like fmt.Sprintf but fails on mismatched verbs.
func Sprintf(format string, args ...interface{}) (string, error) {
	return utilities.Sprintf(format, args...)
}

// Strcmp reports whether a and b are identical.
func Strcmp(a, b string) bool {
	return utilities.Strcmp(a, b)
}

// Strcat returns the upper-cased text of column in every row.
func Strcat(rows []map[string]interface{}, column string) ([]string, error) {
	return utilities.Strcat(rows, column)
}

// ZeroOrOne marks elements equal to key with 1 and the rest with 0.
func ZeroOrOne(values []string, key string) []int {
	return utilities.ZeroOrOne(values, key)
}

// Cell2Mat joins equal-length rows into a dense matrix.
func Cell2Mat(rows [][]float64) (*mat.Dense, error) {
	return utilities.Cell2Mat(rows)
}

// Cell2MatString parses "1 2; 3 4" matrix text.
func Cell2MatString(s string) (*mat.Dense, error) {
	return utilities.Cell2MatString(s)
}

// Num2Cell splits m into row copies.
func Num2Cell(m mat.Matrix) [][]float64 {
	return utilities.Num2Cell(m)
}
