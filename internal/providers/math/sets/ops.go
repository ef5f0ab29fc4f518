package sets

import (
	"cmp"
	"context"
	"maps"
	"slices"

	"github.com/GriffinCanCode/mathcompat/internal/providers/math/common"
	"github.com/GriffinCanCode/mathcompat/internal/types"
)

// SetOps handles unique and overlap tools
type SetOps struct {
	*common.MathOps
}

// GetTools returns set tool definitions
func (s *SetOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.unique",
			Name:        "Unique",
			Description: "Distinct elements in first-seen order",
			Parameters: []types.Parameter{
				{Name: "values", Type: "array", Description: "Numbers, strings or booleans", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "math.uniqueRanked",
			Name:        "Unique Ranked",
			Description: "Map sorted distinct values to consecutive ranks",
			Parameters: []types.Parameter{
				{Name: "values", Type: "array", Description: "Numbers or strings", Required: true},
				{Name: "start", Type: "number", Description: "First rank (default: 0)", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "math.uniqueStats",
			Name:        "Unique Statistics",
			Description: "Distinct values with first index, counts and inverse index",
			Parameters: []types.Parameter{
				{Name: "values", Type: "array", Description: "Array of numbers (or matrix rows)", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "math.overlap1d",
			Name:        "Overlap 1D",
			Description: "Positions where two equal-length vectors agree",
			Parameters: []types.Parameter{
				{Name: "a", Type: "array", Description: "First vector", Required: true},
				{Name: "b", Type: "array", Description: "Second vector", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "math.overlap1dPositions",
			Name:        "Overlap 1D Positions",
			Description: "For each element of a, the positions in b holding the same value",
			Parameters: []types.Parameter{
				{Name: "a", Type: "array", Description: "First vector", Required: true},
				{Name: "b", Type: "array", Description: "Second vector", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "math.overlap2d",
			Name:        "Overlap 2D",
			Description: "Indices of the value intersection of two vectors",
			Parameters: []types.Parameter{
				{Name: "a", Type: "array", Description: "First vector of numbers", Required: true},
				{Name: "b", Type: "array", Description: "Second vector of numbers", Required: true},
			},
			Returns: "object",
		},
	}
}

// Unique returns the distinct values in first-seen order
func (s *SetOps) Unique(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	values, ok := common.GetScalars(params, "values")
	if !ok {
		return common.Failure("values array required")
	}
	return common.Success(map[string]interface{}{"result": UniqueOrdered(values)})
}

// UniqueRanked ranks distinct numbers or strings
func (s *SetOps) UniqueRanked(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	start := 0
	if _, given := params["start"]; given {
		var ok bool
		if start, ok = common.GetInt(params, "start"); !ok {
			return common.Failure("start must be an integer")
		}
	}

	if numbers, ok := common.GetNumbers(params, "values"); ok {
		return rankedResult(numbers, start)
	}
	if strs, ok := common.GetStrings(params, "values"); ok {
		return rankedResult(strs, start)
	}
	return common.Failure("values must be an array of numbers or an array of strings")
}

func rankedResult[T cmp.Ordered](values []T, start int) (*types.Result, error) {
	ranks, err := UniqueRanked(values, start)
	if err != nil {
		return common.FailureFrom(err)
	}

	keys := slices.Sorted(maps.Keys(ranks))
	order := make([]int, len(keys))
	for i, k := range keys {
		order[i] = ranks[k]
	}
	return common.Success(map[string]interface{}{
		"values": keys,
		"ranks":  order,
	})
}

// UniqueStats returns distinct values with their first index, counts and inverse index
func (s *SetOps) UniqueStats(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	values, ok := common.GetNumbers(params, "values")
	if !ok {
		rows, isMatrix := common.GetMatrix(params, "values")
		if !isMatrix {
			return common.Failure("values array required")
		}
		for _, row := range rows {
			values = append(values, row...)
		}
	}

	res, err := UniqueStats(values)
	if err != nil {
		return common.FailureFrom(err)
	}
	return common.Success(map[string]interface{}{
		"values":      res.Values,
		"first_index": res.FirstIndex,
		"counts":      res.Counts,
		"inverse":     res.Inverse,
	})
}

// Overlap1D pairs up equal positions of two vectors
func (s *SetOps) Overlap1D(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, ok := scalarPair(params)
	if !ok {
		return common.Failure("a and b arrays required")
	}

	matches, err := Overlap1D(a, b)
	if err != nil {
		return common.FailureFrom(err)
	}

	out := make([]map[string]interface{}, len(matches))
	for i, m := range matches {
		out[i] = map[string]interface{}{
			"index": m.Index,
			"pair":  []interface{}{m.A, m.B},
		}
	}
	return common.Success(map[string]interface{}{"result": out})
}

// Overlap1DPositions materializes the position lists for every element of a
func (s *SetOps) Overlap1DPositions(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, ok := scalarPair(params)
	if !ok {
		return common.Failure("a and b arrays required")
	}

	out := make([][]int, 0, len(a))
	for positions := range Overlap1DPositions(a, b) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, positions)
	}
	return common.Success(map[string]interface{}{"result": out})
}

// Overlap2D intersects two numeric vectors by value
func (s *SetOps) Overlap2D(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, ok := common.GetNumbers(params, "a")
	if !ok {
		return common.Failure("a array required")
	}
	b, ok := common.GetNumbers(params, "b")
	if !ok {
		return common.Failure("b array required")
	}

	ia, ib, err := Overlap2D(a, b)
	if err != nil {
		return common.FailureFrom(err)
	}
	return common.Success(map[string]interface{}{"a": ia, "b": ib})
}

func scalarPair(params map[string]interface{}) ([]interface{}, []interface{}, bool) {
	a, ok := common.GetScalars(params, "a")
	if !ok {
		return nil, nil, false
	}
	b, ok := common.GetScalars(params, "b")
	if !ok {
		return nil, nil, false
	}
	return a, b, true
}
