package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniversalInt32(t *testing.T) {
	var u Universal

	tests := []struct {
		op       string
		a, b     int32
		expected int32
	}{
		{"+", 2, 3, 5},
		{"-", 2, 3, -1},
		{"*", 4, 3, 12},
		{"/", 7, 2, 3},
		{"/", -7, 2, -3},
		{"%", 17, 5, 2},
		{"%", -17, 5, -2},
		{"^", 2, 8, 256},
		{"^", 2, -1, 0},
		{" ^ ", 3, 3, 27},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			result, err := u.CalculateInt32(tt.op, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	_, err := u.CalculateInt32("/", 1, 0)
	assert.ErrorIs(t, err, ErrDivideByZero)
	_, err = u.CalculateInt32("%", 1, 0)
	assert.ErrorIs(t, err, ErrDivideByZero)
	_, err = u.CalculateInt32("&", 1, 1)
	assert.ErrorIs(t, err, ErrInvalidOperation)
	assert.Contains(t, err.Error(), "unknown operation: &")
}

func TestUniversalFloat32(t *testing.T) {
	var u Universal

	result, err := u.CalculateFloat32("/", 1, 4)
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), result)

	result, err = u.CalculateFloat32("%", 5.5, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), result)

	_, err = u.CalculateFloat32("^", 2, 3)
	assert.ErrorIs(t, err, ErrInvalidOperation)
	_, err = u.CalculateFloat32("/", 2, 0)
	assert.ErrorIs(t, err, ErrDivideByZero)
	_, err = u.CalculateFloat32("%", 2, 0)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestUniversalFloat64(t *testing.T) {
	var u Universal

	tests := []struct {
		op       string
		a, b     float64
		expected float64
	}{
		{"+", 0.5, 0.25, 0.75},
		{"-", 0.5, 0.25, 0.25},
		{"*", 1.5, 2, 3},
		{"/", 1, 8, 0.125},
		{"%", 7.5, 2, 1.5},
		{"^", 2, 0.5, 1.4142135623730951},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			result, err := u.CalculateFloat64(tt.op, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	_, err := u.CalculateFloat64("/", 1, 0)
	assert.ErrorIs(t, err, ErrDivideByZero)
	_, err = u.CalculateFloat64("%", 1, 0)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestUniversalDecimal(t *testing.T) {
	var u Universal
	d := decimal.RequireFromString

	result, err := u.CalculateDecimal("+", d("0.1"), d("0.2"))
	require.NoError(t, err)
	assert.True(t, result.Equal(d("0.3")), "got %s", result)

	result, err = u.CalculateDecimal("/", d("10"), d("4"))
	require.NoError(t, err)
	assert.True(t, result.Equal(d("2.5")), "got %s", result)

	_, err = u.CalculateDecimal("/", d("1"), decimal.Zero)
	assert.ErrorIs(t, err, ErrDivideByZero)

	for _, op := range []string{"%", "^"} {
		_, err = u.CalculateDecimal(op, d("17"), d("5"))
		assert.ErrorIs(t, err, ErrInvalidOperation, op)
	}
}

func TestUniversalInt64(t *testing.T) {
	var u Universal

	result, err := u.CalculateInt64("^", 2, 40)
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<40, result)

	result, err = u.CalculateInt64("/", -9, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), result)

	result, err = u.CalculateInt64("%", 9, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result)

	_, err = u.CalculateInt64("%", 9, 0)
	assert.ErrorIs(t, err, ErrDivideByZero)
	_, err = u.CalculateInt64("", 9, 1)
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestSupportedOperations(t *testing.T) {
	tests := []struct {
		typeName string
		expected []string
	}{
		{"decimal", []string{"+", "-", "*", "/"}},
		{"float", []string{"+", "-", "*", "/", "%"}},
		{"int", []string{"+", "-", "*", "/", "%", "^"}},
		{"LONG", []string{"+", "-", "*", "/", "%", "^"}},
		{"Double", []string{"+", "-", "*", "/", "%", "^"}},
		{"complex", []string{"+", "-", "*", "/"}},
		{"", []string{"+", "-", "*", "/"}},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			assert.Equal(t, tt.expected, SupportedOperations(tt.typeName))
		})
	}

	t.Run("returned slice is a copy", func(t *testing.T) {
		ops := SupportedOperations("int")
		ops[0] = "x"
		assert.Equal(t, "+", SupportedOperations("int")[0])
	})
}

func TestParseRepresentation(t *testing.T) {
	tests := []struct {
		name     string
		expected Representation
	}{
		{"int", Int32},
		{"INT32", Int32},
		{"float", Float32},
		{"double", Float64},
		{"float64", Float64},
		{" decimal ", Decimal64},
		{"long", Int64},
		{"int64", Int64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := ParseRepresentation(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rep)
		})
	}

	_, err := ParseRepresentation("complex128")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, "decimal", Decimal64.String())
	assert.Equal(t, "unknown", Representation(99).String())
	assert.Equal(t, []string{"+", "-", "*", "/", "%"}, Float32.Operations())
}

func TestUniversalEvaluate(t *testing.T) {
	var u Universal

	tests := []struct {
		name     string
		rep      Representation
		op, a, b string
		expected string
	}{
		{"int power", Int32, "^", "2", "8", "256"},
		{"int modulo", Int32, "%", "17", "5", "2"},
		{"float", Float32, "/", "1", "4", "0.25"},
		{"double", Float64, "*", "1.5", " 4 ", "6"},
		{"double large", Float64, "*", "1000000", "1000000", "1000000000000"},
		{"decimal", Decimal64, "+", "0.1", "0.2", "0.3"},
		{"long", Int64, "^", "10", "12", "1000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := u.Evaluate(tt.rep, tt.op, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	t.Run("unparsable operand", func(t *testing.T) {
		_, err := u.Evaluate(Int32, "+", "abc", "1")
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.NotContains(t, err.Error(), "abc")

		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("out of range operand", func(t *testing.T) {
		_, err := u.Evaluate(Int32, "+", "1", "99999999999")
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("decimal modulo unsupported", func(t *testing.T) {
		_, err := u.Evaluate(Decimal64, "%", "17", "5")
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})

	t.Run("divide by zero", func(t *testing.T) {
		for _, rep := range []Representation{Int32, Float32, Float64, Decimal64, Int64} {
			_, err := u.Evaluate(rep, "/", "5", "0")
			assert.ErrorIs(t, err, ErrDivideByZero, rep.String())
		}
	})

	t.Run("unknown representation", func(t *testing.T) {
		_, err := u.Evaluate(Representation(42), "+", "1", "2")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "5", FormatFloat(5, 64))
	assert.Equal(t, "0", FormatFloat(0, 64))
	assert.Equal(t, "-2.5", FormatFloat(-2.5, 64))
	assert.Equal(t, "1e+21", FormatFloat(1e21, 64))
	assert.Equal(t, "1e-07", FormatFloat(1e-7, 64))
	assert.Equal(t, "0.1", FormatFloat(float64(float32(0.1)), 32))
}
