package sets

import (
	"iter"
	"sort"

	"github.com/GriffinCanCode/mathcompat/internal/providers/math/common"
	"gonum.org/v1/gonum/floats"
)

// Match is a position where two paired vectors hold equal values
type Match[T comparable] struct {
	Index int
	A, B  T
}

// Overlap1D returns every position where a and b agree. Both vectors must
// have the same length.
func Overlap1D[T comparable](a, b []T) ([]Match[T], error) {
	if len(a) != len(b) {
		return nil, common.LengthMismatch(len(a), len(b))
	}

	out := make([]Match[T], 0)
	for i := range a {
		if a[i] == b[i] {
			out = append(out, Match[T]{Index: i, A: a[i], B: b[i]})
		}
	}
	return out, nil
}

// Overlap1DPositions lazily yields, for each element of a, the positions in b
// holding an equal value. Every pass over the sequence recomputes the lists.
func Overlap1DPositions[T comparable](a, b []T) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, x := range a {
			positions := make([]int, 0)
			for j, y := range b {
				if x == y {
					positions = append(positions, j)
				}
			}
			if !yield(positions) {
				return
			}
		}
	}
}

// Overlap2D intersects two vectors of arbitrary length by value. It returns
// the indices of a whose value occurs in b and the indices of b whose value
// occurs in a, each ordered by its own vector's ascending sort.
func Overlap2D(a, b []float64) ([]int, []int, error) {
	if err := common.ValidateNumbers(a, "a"); err != nil {
		return nil, nil, err
	}
	if err := common.ValidateNumbers(b, "b"); err != nil {
		return nil, nil, err
	}

	sortedA, permA := argsort(a)
	sortedB, permB := argsort(b)

	return matching(sortedA, permA, sortedB), matching(sortedB, permB, sortedA), nil
}

func argsort(v []float64) ([]float64, []int) {
	sorted := make([]float64, len(v))
	copy(sorted, v)
	perm := make([]int, len(v))
	floats.ArgsortStable(sorted, perm)
	return sorted, perm
}

// matching reports perm[i] for every sorted[i] with a non-empty
// [searchLeft, searchRight) range in other.
func matching(sorted []float64, perm []int, other []float64) []int {
	out := make([]int, 0)
	for i, v := range sorted {
		if searchRight(other, v)-searchLeft(other, v) > 0 {
			out = append(out, perm[i])
		}
	}
	return out
}

func searchLeft(sorted []float64, v float64) int {
	return sort.SearchFloat64s(sorted, v)
}

func searchRight(sorted []float64, v float64) int {
	return sort.Search(len(sorted), func(i int) bool { return sorted[i] > v })
}
