package statistics

import (
	"fmt"
	gomath "math"
	"sort"

	"github.com/GriffinCanCode/mathcompat/internal/providers/math/common"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// HistogramResult holds bin counts and the edges they were counted against.
// len(Edges) == len(Counts)+1.
type HistogramResult struct {
	Counts []int
	Edges  []float64
}

// MaxBins is the largest bin count Histogram accepts.
const MaxBins = 1 << 20

// Histogram counts values into the given number of equal-width bins spanning
// [min, max].
// Every bin is half open except the last, which includes max.
func Histogram(values []float64, bins int) (*HistogramResult, error) {
	if len(values) == 0 {
		return nil, common.InvalidArgument("values must not be empty")
	}
	if bins < 1 || bins > MaxBins {
		return nil, common.InvalidArgument("bins %d must be within [1, %d]", bins, MaxBins)
	}
	if err := common.ValidateNumbers(values, "values"); err != nil {
		return nil, err
	}

	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	edges := floats.Span(make([]float64, bins+1), lo, hi)
	edges[bins] = hi
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, common.Computation("histogram",
				fmt.Sprintf("%d bins over [%v, %v] do not give increasing edges", bins, lo, hi))
		}
	}
	return binCounts(values, edges)
}

// HistogramEdges counts values into the bins described by explicit, strictly
// increasing edges. Values outside [edges[0], edges[len-1]] are ignored.
func HistogramEdges(values []float64, edges []float64) (*HistogramResult, error) {
	if len(values) == 0 {
		return nil, common.InvalidArgument("values must not be empty")
	}
	if len(edges) < 2 {
		return nil, common.InvalidArgument("at least two edges required, got %d", len(edges))
	}
	if err := common.ValidateNumbers(values, "values"); err != nil {
		return nil, err
	}
	if err := common.ValidateNumbers(edges, "edges"); err != nil {
		return nil, err
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, common.InvalidArgument("edges must be strictly increasing at index %d", i)
		}
	}

	own := make([]float64, len(edges))
	copy(own, edges)
	return binCounts(values, own)
}

// HistogramMatrix flattens m row by row and bins the result
func HistogramMatrix(m mat.Matrix, bins int) (*HistogramResult, error) {
	return Histogram(common.Flatten(m), bins)
}

func binCounts(values, edges []float64) (*HistogramResult, error) {
	first, last := edges[0], edges[len(edges)-1]

	x := make([]float64, 0, len(values))
	for _, v := range values {
		if v >= first && v <= last {
			x = append(x, v)
		}
	}
	sort.Float64s(x)

	// stat.Histogram treats every bin as [lo, hi); widen the final divider
	// by one ulp so values equal to the last edge land in the last bin.
	dividers := make([]float64, len(edges))
	copy(dividers, edges)
	dividers[len(dividers)-1] = gomath.Nextafter(last, gomath.Inf(1))

	weights := make([]float64, len(edges)-1)
	err := common.Guard("histogram", func() error {
		stat.Histogram(weights, dividers, x, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}

	counts := make([]int, len(weights))
	for i, w := range weights {
		counts[i] = int(w)
	}
	return &HistogramResult{Counts: counts, Edges: edges}, nil
}
