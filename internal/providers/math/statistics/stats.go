package statistics

import (
	"context"

	"github.com/GriffinCanCode/mathcompat/internal/providers/math/common"
	"github.com/GriffinCanCode/mathcompat/internal/types"
)

// StatsOps handles quantile and histogram tools using gonum
type StatsOps struct {
	*common.MathOps
}

// GetTools returns stats tool definitions
func (s *StatsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.quantile",
			Name:        "Quantile",
			Description: "Estimate quantiles with (2i-1)/2n plotting positions",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
				{Name: "q", Type: "number", Description: "Quantile (>= 0)", Required: false},
				{Name: "qs", Type: "array", Description: "Several quantiles evaluated at once", Required: false},
			},
			Returns: "number",
		},
		{
			ID:          "math.percentile",
			Name:        "Percentile",
			Description: "Calculate nth percentile",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
				{Name: "p", Type: "number", Description: "Percentile (0-100)", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.histogram",
			Name:        "Histogram",
			Description: "Histogram bin counts over equal-width or explicit bins",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers (or matrix rows)", Required: true},
				{Name: "bins", Type: "number", Description: "Number of bins (default from config)", Required: false},
				{Name: "edges", Type: "array", Description: "Explicit strictly increasing bin edges", Required: false},
			},
			Returns: "object",
		},
	}
}

// Quantile estimates one quantile ("q") or several ("qs")
func (s *StatsOps) Quantile(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok || len(numbers) == 0 {
		return common.Failure("numbers array required")
	}

	if qs, ok := common.GetNumbers(params, "qs"); ok {
		results, err := Quantiles(numbers, qs)
		if err != nil {
			return common.FailureFrom(err)
		}
		return common.Success(map[string]interface{}{"result": results})
	}

	q, ok := common.GetNumber(params, "q")
	if !ok {
		return common.Failure("q or qs parameter required")
	}

	result, err := Quantile(numbers, q)
	if err != nil {
		return common.FailureFrom(err)
	}
	return common.Success(map[string]interface{}{"result": result})
}

// Percentile calculates nth percentile
func (s *StatsOps) Percentile(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok || len(numbers) == 0 {
		return common.Failure("numbers array required")
	}

	p, ok := common.GetNumber(params, "p")
	if !ok {
		return common.Failure("p parameter required (0-100)")
	}

	result, err := Percentile(numbers, p)
	if err != nil {
		return common.FailureFrom(err)
	}
	return common.Success(map[string]interface{}{"result": result})
}

// Histogram bins numbers by explicit "edges" or by a bin count
func (s *StatsOps) Histogram(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok {
		rows, isMatrix := common.GetMatrix(params, "numbers")
		if !isMatrix {
			return common.Failure("numbers array required")
		}
		for _, row := range rows {
			numbers = append(numbers, row...)
		}
	}

	var (
		hist *HistogramResult
		err  error
	)
	if edges, ok := common.GetNumbers(params, "edges"); ok {
		hist, err = HistogramEdges(numbers, edges)
	} else {
		bins := s.DefaultBins
		if _, given := params["bins"]; given {
			if bins, ok = common.GetInt(params, "bins"); !ok {
				return common.Failure("bins must be an integer")
			}
		}
		if s.MaxBins > 0 && bins > s.MaxBins {
			return common.FailureFrom(common.InvalidArgument("bins %d exceeds the limit of %d", bins, s.MaxBins))
		}
		hist, err = Histogram(numbers, bins)
	}
	if err != nil {
		return common.FailureFrom(err)
	}

	return common.Success(map[string]interface{}{
		"counts": hist.Counts,
		"edges":  hist.Edges,
	})
}
