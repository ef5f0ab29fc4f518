package statistics

import (
	gomath "math"
	"sort"

	"github.com/GriffinCanCode/mathcompat/internal/providers/math/common"
	"gonum.org/v1/gonum/interp"
)

// estimator interpolates a quantile against the plotting positions of a
// sorted sample.
type estimator struct {
	sorted []float64
	pos    []float64
	curve  interp.PiecewiseLinear
}

func newEstimator(samples []float64) (*estimator, error) {
	if len(samples) == 0 {
		return nil, common.InvalidArgument("samples must not be empty")
	}
	if err := common.ValidateNumbers(samples, "samples"); err != nil {
		return nil, err
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	e := &estimator{sorted: sorted}
	if len(sorted) == 1 {
		return e, nil
	}

	e.pos = plottingPositions(len(sorted))
	err := common.Guard("quantile", func() error {
		if err := e.curve.Fit(e.pos, sorted); err != nil {
			return common.Computation("quantile", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (e *estimator) at(q float64) float64 {
	if len(e.sorted) == 1 {
		return e.sorted[0]
	}
	// A knot returns its sample exactly
	if i := sort.SearchFloat64s(e.pos, q); i < len(e.pos) && e.pos[i] == q {
		return e.sorted[i]
	}
	return e.curve.Predict(q)
}

// plottingPositions returns (2i-1)/(2n) for i = 1..n. Each position is a
// single division so a request for exactly that fraction hits the knot.
func plottingPositions(n int) []float64 {
	pos := make([]float64, n)
	for i := 1; i <= n; i++ {
		pos[i-1] = float64(2*i-1) / float64(2*n)
	}
	return pos
}

func checkQuantile(q float64) error {
	if gomath.IsNaN(q) || q < 0 {
		return common.InvalidArgument("quantile %v must be >= 0", q)
	}
	return nil
}

// Quantile estimates the q-th quantile of samples.
//
// Each sorted sample i (1-based) sits at plotting position (2i-1)/(2n) and the
// result is linearly interpolated between neighbours. Requests below the
// first or above the last position return the minimum or maximum sample.
func Quantile(samples []float64, q float64) (float64, error) {
	if err := checkQuantile(q); err != nil {
		return 0, err
	}
	e, err := newEstimator(samples)
	if err != nil {
		return 0, err
	}
	return e.at(q), nil
}

// Quantiles evaluates several quantiles against a single fit of samples
func Quantiles(samples []float64, qs []float64) ([]float64, error) {
	if len(qs) == 0 {
		return nil, common.InvalidArgument("at least one quantile required")
	}
	for _, q := range qs {
		if err := checkQuantile(q); err != nil {
			return nil, err
		}
	}
	e, err := newEstimator(samples)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(qs))
	for i, q := range qs {
		out[i] = e.at(q)
	}
	return out, nil
}

// Percentile returns the p-th percentile of samples, p in [0, 100]
func Percentile(samples []float64, p float64) (float64, error) {
	if gomath.IsNaN(p) || p < 0 || p > 100 {
		return 0, common.InvalidArgument("percentile %v must be within [0, 100]", p)
	}
	return Quantile(samples, p/100)
}
