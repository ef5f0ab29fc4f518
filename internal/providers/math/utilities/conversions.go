package utilities

import (
	"fmt"
	"strings"

	"github.com/GriffinCanCode/mathcompat/internal/providers/math/common"
	"github.com/spf13/cast"
)

// Str2Num parses text as an int64 when it is a plain decimal integer and as
// a float64 otherwise.
func Str2Num(s string) (interface{}, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return nil, common.InvalidArgument("empty number text")
	}

	if digits, ok := integerText(text); ok {
		n, err := cast.ToInt64E(digits)
		if err == nil {
			return n, nil
		}
	}

	f, err := cast.ToFloat64E(text)
	if err != nil {
		return nil, common.InvalidArgument("%q is not a number", s)
	}
	return f, nil
}

// integerText reports whether s is an optionally signed run of decimal
// digits and returns it with leading zeros removed, so it is never read as
// octal.
func integerText(s string) (string, bool) {
	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}
	if s == "" {
		return "", false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", false
		}
	}

	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	if sign == "+" {
		sign = ""
	}
	return sign + s, true
}

// Num2Str renders a number (or any scalar) as text
func Num2Str(x interface{}) (string, error) {
	s, err := cast.ToStringE(x)
	if err != nil {
		return "", common.InvalidArgument("cannot render %T as text", x)
	}
	if s == "" {
		return "", common.InvalidArgument("empty value")
	}
	return s, nil
}

// Sprintf formats like fmt.Sprintf but fails on bad verbs or argument counts
func Sprintf(format string, args ...interface{}) (string, error) {
	if format == "" {
		return "", common.InvalidArgument("empty format")
	}
	out := fmt.Sprintf(format, args...)
	if strings.Contains(out, "%!") {
		return "", common.InvalidArgument("format %q does not match %d argument(s)", format, len(args))
	}
	return out, nil
}

// Strcmp reports whether two strings are identical
func Strcmp(a, b string) bool {
	return a == b
}

// Strcat collects column from every row as upper-cased text
func Strcat(rows []map[string]interface{}, column string) ([]string, error) {
	if len(rows) == 0 {
		return nil, common.InvalidArgument("rows must not be empty")
	}

	out := make([]string, 0, len(rows))
	for i, row := range rows {
		v, ok := row[column]
		if !ok {
			return nil, common.InvalidArgument("row %d has no column %q", i, column)
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, common.InvalidArgument("row %d column %q: %v", i, column, err)
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, nil
}

// ZeroOrOne marks every element equal to key with 1 and the rest with 0
func ZeroOrOne(values []string, key string) []int {
	out := make([]int, len(values))
	for i, v := range values {
		if v == key {
			out[i] = 1
		}
	}
	return out
}
