package utilities

import (
	"context"
	"fmt"
	"time"

	"github.com/GriffinCanCode/mathcompat/internal/providers/math/common"
	"github.com/GriffinCanCode/mathcompat/internal/types"
	"gonum.org/v1/gonum/mat"
)

// UtilityOps handles date, text and matrix helper tools
type UtilityOps struct {
	*common.MathOps
}

// GetTools returns utility tool definitions
func (u *UtilityOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.datenum",
			Name:        "Date Number",
			Description: "Serial day number of a calendar date",
			Parameters: []types.Parameter{
				{Name: "date", Type: "string", Description: "Date as YYYY-MM-DD or RFC 3339", Required: false},
				{Name: "year", Type: "number", Description: "Year (with month and day)", Required: false},
				{Name: "month", Type: "number", Description: "Month 1-12", Required: false},
				{Name: "day", Type: "number", Description: "Day of month", Required: false},
			},
			Returns: "number",
		},
		{
			ID:          "math.dtrange",
			Name:        "Date Range",
			Description: "Instants from start up to (excluding) end at a fixed step",
			Parameters: []types.Parameter{
				{Name: "start", Type: "string", Description: "First instant", Required: true},
				{Name: "end", Type: "string", Description: "Exclusive upper bound", Required: true},
				{Name: "days", Type: "number", Description: "Step days", Required: false},
				{Name: "hours", Type: "number", Description: "Step hours", Required: false},
				{Name: "minutes", Type: "number", Description: "Step minutes", Required: false},
				{Name: "seconds", Type: "number", Description: "Step seconds", Required: false},
			},
			Returns: "array",
		},
		{
			ID:          "math.str2num",
			Name:        "String to Number",
			Description: "Parse text as an integer or a float",
			Parameters: []types.Parameter{
				{Name: "text", Type: "string", Description: "Number text", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.num2str",
			Name:        "Number to String",
			Description: "Render a number as text",
			Parameters: []types.Parameter{
				{Name: "value", Type: "number", Description: "Value to render", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "math.strcat",
			Name:        "Column Concatenate",
			Description: "Upper-cased text of one column across rows",
			Parameters: []types.Parameter{
				{Name: "rows", Type: "array", Description: "Array of row objects", Required: true},
				{Name: "column", Type: "string", Description: "Column name", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "math.zeroOrOne",
			Name:        "Zero or One",
			Description: "Indicator vector marking elements equal to key",
			Parameters: []types.Parameter{
				{Name: "values", Type: "array", Description: "Array of strings", Required: true},
				{Name: "key", Type: "string", Description: "Value to mark", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "math.cell2mat",
			Name:        "Cell to Matrix",
			Description: "Build a matrix from rows or from \"1 2; 3 4\" text",
			Parameters: []types.Parameter{
				{Name: "rows", Type: "array", Description: "Array of equal-length rows", Required: false},
				{Name: "text", Type: "string", Description: "Matrix text", Required: false},
			},
			Returns: "object",
		},
	}
}

// Datenum converts a date string or a year/month/day triple to a serial day
func (u *UtilityOps) Datenum(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if t, ok := common.GetTime(params, "date"); ok {
		return common.Success(map[string]interface{}{"result": Datenum(t)})
	}
	if _, given := params["date"]; given {
		return common.Failure("date must be YYYY-MM-DD or RFC 3339")
	}

	year, okY := common.GetInt(params, "year")
	month, okM := common.GetInt(params, "month")
	day, okD := common.GetInt(params, "day")
	if !okY || !okM || !okD {
		return common.Failure("date or integer year, month and day required")
	}
	if month < 1 || month > 12 {
		return common.Failure(fmt.Sprintf("month %d out of range [1, 12]", month))
	}

	serial, err := DatenumYMD(year, time.Month(month), day)
	if err != nil {
		return common.FailureFrom(err)
	}
	return common.Success(map[string]interface{}{"result": serial})
}

// DateRange materializes a date range, bounded by MaxRangePoints
func (u *UtilityOps) DateRange(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	start, ok := common.GetTime(params, "start")
	if !ok {
		return common.Failure("start date required")
	}
	end, ok := common.GetTime(params, "end")
	if !ok {
		return common.Failure("end date required")
	}

	var parts [4]float64
	for i, key := range []string{"days", "hours", "minutes", "seconds"} {
		if _, given := params[key]; !given {
			continue
		}
		v, ok := common.GetNumber(params, key)
		if !ok {
			return common.Failure(key + " must be a number")
		}
		parts[i] = v
	}

	seq, err := DateRange(start, end, Step(parts[0], parts[1], parts[2], parts[3]))
	if err != nil {
		return common.FailureFrom(err)
	}

	out := make([]string, 0)
	for t := range seq {
		if len(out) == u.MaxRangePoints {
			return common.Failure(fmt.Sprintf("range exceeds %d points", u.MaxRangePoints))
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, t.Format(time.RFC3339))
	}
	return common.Success(map[string]interface{}{"result": out, "count": len(out)})
}

// Str2Num parses number text
func (u *UtilityOps) Str2Num(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	text, ok := common.GetString(params, "text")
	if !ok {
		return common.Failure("text required")
	}

	n, err := Str2Num(text)
	if err != nil {
		return common.FailureFrom(err)
	}
	return common.Success(map[string]interface{}{"result": n})
}

// Num2Str renders a value as text
func (u *UtilityOps) Num2Str(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, ok := params["value"]
	if !ok {
		return common.Failure("value required")
	}

	s, err := Num2Str(v)
	if err != nil {
		return common.FailureFrom(err)
	}
	return common.Success(map[string]interface{}{"result": s})
}

// Strcat upper-cases one column of a row set
func (u *UtilityOps) Strcat(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	column, ok := common.GetString(params, "column")
	if !ok {
		return common.Failure("column required")
	}

	var rows []map[string]interface{}
	switch v := params["rows"].(type) {
	case []map[string]interface{}:
		rows = v
	case []interface{}:
		rows = make([]map[string]interface{}, 0, len(v))
		for _, r := range v {
			row, ok := r.(map[string]interface{})
			if !ok {
				return common.Failure("rows must be objects")
			}
			rows = append(rows, row)
		}
	default:
		return common.Failure("rows array required")
	}

	out, err := Strcat(rows, column)
	if err != nil {
		return common.FailureFrom(err)
	}
	return common.Success(map[string]interface{}{"result": out})
}

// ZeroOrOne builds an indicator vector
func (u *UtilityOps) ZeroOrOne(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	values, ok := common.GetStrings(params, "values")
	if !ok {
		return common.Failure("values array of strings required")
	}
	key, ok := common.GetString(params, "key")
	if !ok {
		return common.Failure("key required")
	}
	return common.Success(map[string]interface{}{"result": ZeroOrOne(values, key)})
}

// Cell2Mat builds a matrix from rows or matrix text
func (u *UtilityOps) Cell2Mat(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	var (
		m   *mat.Dense
		err error
	)
	if text, ok := common.GetString(params, "text"); ok {
		m, err = Cell2MatString(text)
	} else if rows, ok := common.GetMatrix(params, "rows"); ok {
		m, err = Cell2Mat(rows)
	} else {
		return common.Failure("rows array or text required")
	}
	if err != nil {
		return common.FailureFrom(err)
	}

	r, c := m.Dims()
	return common.Success(map[string]interface{}{"result": Num2Cell(m), "rows": r, "cols": c})
}
