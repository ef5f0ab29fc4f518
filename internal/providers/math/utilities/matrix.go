package utilities

import (
	"strings"

	"github.com/GriffinCanCode/mathcompat/internal/providers/math/common"
	"github.com/spf13/cast"
	"gonum.org/v1/gonum/mat"
)

// Cell2Mat joins equal-length rows into one dense matrix
func Cell2Mat(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, common.InvalidArgument("matrix must have at least one element")
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, common.LengthMismatch(cols, len(row))
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// Cell2MatString parses "1 2; 3 4" matrix text. Rows are separated by
// semicolons and elements by blanks or commas. Enclosing brackets are ignored.
func Cell2MatString(s string) (*mat.Dense, error) {
	text := strings.NewReplacer("[", "", "]", "").Replace(s)

	var rows [][]float64
	for _, line := range strings.Split(text, ";") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
		row := make([]float64, 0, len(fields))
		for _, f := range fields {
			v, err := cast.ToFloat64E(f)
			if err != nil {
				return nil, common.InvalidArgument("matrix element %q is not a number", f)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return Cell2Mat(rows)
}

// Num2Cell splits m into a slice of row copies
func Num2Cell(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}
	return out
}
