package common

import (
	"fmt"
	"math"
	"time"

	"github.com/GriffinCanCode/mathcompat/internal/types"
)

// MathOps carries settings shared by every tool module
type MathOps struct {
	// DefaultBins is used by histogram tools when the call omits "bins"
	DefaultBins int
	// MaxRangePoints caps how many instants a date range tool may materialize
	MaxRangePoints int
	// MaxBins caps the bin count a histogram tool accepts
	MaxBins int
}

// DefaultOps returns the settings used when no configuration is supplied
func DefaultOps() *MathOps {
	return &MathOps{
		DefaultBins:    10,
		MaxRangePoints: 100000,
		MaxBins:        10000,
	}
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg, Code: CodeInvalidArgument}, nil
}

// FailureFrom creates a failed result carrying the error's code
func FailureFrom(err error) (*types.Result, error) {
	msg := err.Error()
	return &types.Result{Success: false, Error: &msg, Code: ErrorCode(err)}, nil
}

// NotFound creates a failed result for an unknown tool or service
func NotFound(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg, Code: CodeNotFound}, nil
}

// GetNumber extracts float64 from params with validation
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	return toFloat(val)
}

// GetInt extracts an integral number from params. Fractional values are rejected.
func GetInt(params map[string]interface{}, key string) (int, bool) {
	f, ok := GetNumber(params, key)
	if !ok || f != math.Trunc(f) || f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, false
	}
	return int(f), true
}

// GetNumbers extracts array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	switch arr := params[key].(type) {
	case []float64:
		return arr, true
	case []interface{}:
		numbers := make([]float64, 0, len(arr))
		for _, v := range arr {
			num, ok := toFloat(v)
			if !ok {
				return nil, false
			}
			numbers = append(numbers, num)
		}
		return numbers, true
	default:
		return nil, false
	}
}

// GetStrings extracts array of strings
func GetStrings(params map[string]interface{}, key string) ([]string, bool) {
	switch arr := params[key].(type) {
	case []string:
		return arr, true
	case []interface{}:
		out := make([]string, 0, len(arr))
		for _, v := range arr {
			s, ok := v.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// GetScalars extracts an array of comparable scalars (numbers, strings, bools).
// Integer types are widened to float64 so 1 and 1.0 compare equal.
func GetScalars(params map[string]interface{}, key string) ([]interface{}, bool) {
	switch arr := params[key].(type) {
	case []string:
		out := make([]interface{}, len(arr))
		for i, s := range arr {
			out[i] = s
		}
		return out, true
	case []float64:
		out := make([]interface{}, len(arr))
		for i, f := range arr {
			out[i] = f
		}
		return out, true
	case []interface{}:
		out := make([]interface{}, 0, len(arr))
		for _, v := range arr {
			switch s := v.(type) {
			case string, bool:
				out = append(out, s)
			default:
				f, ok := toFloat(v)
				if !ok {
					return nil, false
				}
				out = append(out, f)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// GetMatrix extracts a two dimensional array of numbers
func GetMatrix(params map[string]interface{}, key string) ([][]float64, bool) {
	switch rows := params[key].(type) {
	case [][]float64:
		return rows, true
	case []interface{}:
		out := make([][]float64, 0, len(rows))
		for _, row := range rows {
			nums, ok := GetNumbers(map[string]interface{}{"row": row}, "row")
			if !ok {
				return nil, false
			}
			out = append(out, nums)
		}
		return out, true
	default:
		return nil, false
	}
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

// GetTime extracts a time value given either as time.Time or as a
// "2006-01-02" / RFC 3339 string
func GetTime(params map[string]interface{}, key string) (time.Time, bool) {
	switch v := params[key].(type) {
	case time.Time:
		return v, true
	case string:
		if t, err := time.Parse(time.DateOnly, v); err == nil {
			return t, true
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func toFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// ValidateNumber checks if a number is valid (not NaN or Inf)
func ValidateNumber(x float64, name string) error {
	if math.IsNaN(x) {
		return InvalidArgument("%s is NaN", name)
	}
	if math.IsInf(x, 0) {
		return InvalidArgument("%s is infinite", name)
	}
	return nil
}

// ValidateNumbers validates an array of numbers
func ValidateNumbers(nums []float64, name string) error {
	for i, x := range nums {
		if err := ValidateNumber(x, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}
