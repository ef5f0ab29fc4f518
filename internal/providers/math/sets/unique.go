package sets

import (
	"cmp"
	"slices"

	"github.com/GriffinCanCode/mathcompat/internal/providers/math/common"
	mapset "github.com/deckarep/golang-set/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// UniqueResult describes the distinct values of a vector.
//
// Invariants: Values is ascending, Counts sums to the input length and
// Values[Inverse[i]] equals input element i.
type UniqueResult struct {
	Values     []float64 // distinct values, ascending
	FirstIndex []int     // input index of the first occurrence of each value
	Counts     []int     // multiplicity of each value
	Inverse    []int     // slot in Values for every input element
}

// UniqueOrdered returns each distinct element once, in first-seen order
func UniqueOrdered[T comparable](values []T) []T {
	seen := mapset.NewThreadUnsafeSetWithSize[T](len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if seen.Add(v) {
			out = append(out, v)
		}
	}
	return out
}

// UniqueRanked maps every distinct value, in ascending order, to a rank
// counting up from start.
func UniqueRanked[T cmp.Ordered](values []T, start int) (map[T]int, error) {
	if len(values) == 0 {
		return nil, common.InvalidArgument("values must not be empty")
	}
	if start < 0 {
		return nil, common.InvalidArgument("start %d must be >= 0", start)
	}

	distinct := mapset.NewThreadUnsafeSet(values...).ToSlice()
	slices.Sort(distinct)

	ranks := make(map[T]int, len(distinct))
	for i, v := range distinct {
		ranks[v] = start + i
	}
	return ranks, nil
}

// UniqueStats finds the distinct values of values together with their first
// occurrence, multiplicity and the inverse mapping back onto the input.
func UniqueStats(values []float64) (*UniqueResult, error) {
	if len(values) == 0 {
		return nil, common.InvalidArgument("values must not be empty")
	}
	if err := common.ValidateNumbers(values, "values"); err != nil {
		return nil, err
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	perm := make([]int, len(values))
	floats.ArgsortStable(sorted, perm)

	res := &UniqueResult{Inverse: make([]int, len(values))}
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			res.Values = append(res.Values, v)
			// stable sort keeps the earliest input index first in each run
			res.FirstIndex = append(res.FirstIndex, perm[i])
			res.Counts = append(res.Counts, 0)
		}
		slot := len(res.Values) - 1
		res.Counts[slot]++
		res.Inverse[perm[i]] = slot
	}
	return res, nil
}

// UniqueStatsMatrix flattens m row by row before analysing it
func UniqueStatsMatrix(m mat.Matrix) (*UniqueResult, error) {
	return UniqueStats(common.Flatten(m))
}
