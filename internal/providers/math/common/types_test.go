package common

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGetNumbers(t *testing.T) {
	tests := []struct {
		name   string
		value  interface{}
		want   []float64
		wantOk bool
	}{
		{"float slice", []float64{1, 2.5}, []float64{1, 2.5}, true},
		{"mixed json numbers", []interface{}{1, int64(2), 3.5, float32(4)}, []float64{1, 2, 3.5, 4}, true},
		{"string element", []interface{}{1.0, "x"}, nil, false},
		{"not an array", 5.0, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetNumbers(map[string]interface{}{"v": tt.value}, "v")
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	n, ok := GetInt(map[string]interface{}{"n": 4.0}, "n")
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	_, ok = GetInt(map[string]interface{}{"n": 4.5}, "n")
	assert.False(t, ok)

	_, ok = GetInt(map[string]interface{}{}, "n")
	assert.False(t, ok)
}

func TestGetScalars(t *testing.T) {
	got, ok := GetScalars(map[string]interface{}{"v": []interface{}{1, "A", true, 2.0}}, "v")
	require.True(t, ok)
	assert.Equal(t, []interface{}{1.0, "A", true, 2.0}, got)

	_, ok = GetScalars(map[string]interface{}{"v": []interface{}{[]int{1}}}, "v")
	assert.False(t, ok)
}

func TestGetMatrix(t *testing.T) {
	rows, ok := GetMatrix(map[string]interface{}{
		"m": []interface{}{[]interface{}{1, 2}, []float64{3, 4}},
	}, "m")
	require.True(t, ok)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows)

	_, ok = GetMatrix(map[string]interface{}{"m": []interface{}{"row"}}, "m")
	assert.False(t, ok)
}

func TestGetTime(t *testing.T) {
	want := time.Date(2018, time.June, 12, 0, 0, 0, 0, time.UTC)

	got, ok := GetTime(map[string]interface{}{"t": "2018-06-12"}, "t")
	require.True(t, ok)
	assert.True(t, want.Equal(got))

	got, ok = GetTime(map[string]interface{}{"t": "2018-06-12T00:00:00Z"}, "t")
	require.True(t, ok)
	assert.True(t, want.Equal(got))

	_, ok = GetTime(map[string]interface{}{"t": "12/06/2018"}, "t")
	assert.False(t, ok)
}

func TestValidateNumbers(t *testing.T) {
	assert.NoError(t, ValidateNumbers([]float64{1, -2, 0}, "x"))

	err := ValidateNumbers([]float64{1, math.NaN()}, "x")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "x[1]")

	assert.ErrorIs(t, ValidateNumber(math.Inf(-1), "y"), ErrInvalidArgument)
}

func TestResults(t *testing.T) {
	res, err := Failure("bad input")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, CodeInvalidArgument, res.Code)
	assert.Equal(t, "bad input", *res.Error)

	res, _ = FailureFrom(LengthMismatch(2, 3))
	assert.Equal(t, CodeLengthMismatch, res.Code)

	res, _ = NotFound("unknown tool")
	assert.Equal(t, CodeNotFound, res.Code)

	res, _ = Success(map[string]interface{}{"result": 1})
	assert.True(t, res.Success)
	assert.Nil(t, res.Error)
}

func TestFlatten(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, Flatten(m))
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, Flatten(m.T()))
}
