package utilities

import (
	"testing"

	"github.com/GriffinCanCode/mathcompat/internal/providers/math/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStr2Num(t *testing.T) {
	tests := []struct {
		in   string
		want interface{}
	}{
		{"5", int64(5)},
		{"-12", int64(-12)},
		{"007", int64(7)},
		{"5.2", 5.2},
		{"5.459999", 5.459999},
		{"1e3", 1000.0},
		{" 42 ", int64(42)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Str2Num(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStr2NumInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "-"} {
		_, err := Str2Num(in)
		assert.ErrorIs(t, err, common.ErrInvalidArgument, in)
	}
}

func TestNum2Str(t *testing.T) {
	s, err := Num2Str(5.2)
	require.NoError(t, err)
	assert.Equal(t, "5.2", s)

	s, err = Num2Str(42)
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	_, err = Num2Str("")
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestSprintf(t *testing.T) {
	s, err := Sprintf("%s is %d", "x", 3)
	require.NoError(t, err)
	assert.Equal(t, "x is 3", s)

	mismatched := "%s and %s"
	_, err = Sprintf(mismatched, "only one")
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = Sprintf("")
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestStrcmp(t *testing.T) {
	assert.True(t, Strcmp("abc", "abc"))
	assert.False(t, Strcmp("abc", "ABC"))
}

func TestStrcat(t *testing.T) {
	rows := []map[string]interface{}{
		{"name": "alpha", "n": 1},
		{"name": "Beta", "n": 2},
		{"name": "gamma", "n": 3},
	}

	got, err := Strcat(rows, "name")
	require.NoError(t, err)
	assert.Equal(t, []string{"ALPHA", "BETA", "GAMMA"}, got)

	got, err = Strcat(rows, "n")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	_, err = Strcat(rows, "missing")
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = Strcat(nil, "name")
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestZeroOrOne(t *testing.T) {
	assert.Equal(t, []int{1, 0, 1, 0, 0}, ZeroOrOne([]string{"A", "B", "A", "B", "C"}, "A"))
	assert.Equal(t, []int{}, ZeroOrOne([]string{}, "A"))
}
