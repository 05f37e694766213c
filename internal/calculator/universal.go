package calculator

import (
	gomath "math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Universal performs calculations over a fixed set of numeric
// representations. Each representation has its own hardcoded symbol table:
//
//	int, long:  + - * / % ^
//	double:     + - * / % ^
//	float:      + - * / %
//	decimal:    + - * /
//
// Integer division truncates toward zero. Power on int and long is computed
// with math.Pow and converted back, which truncates fractional results and
// is undefined for results outside the target range.
type Universal struct{}

func normalize(op string) string {
	return strings.ToLower(strings.TrimSpace(op))
}

// CalculateInt32 performs op on int32 operands.
func (Universal) CalculateInt32(op string, a, b int32) (int32, error) {
	switch normalize(op) {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	case "%":
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a % b, nil
	case "^":
		return int32(gomath.Pow(float64(a), float64(b))), nil
	default:
		return 0, unknownOperation(op)
	}
}

// CalculateFloat32 performs op on float32 operands. Power is not supported.
func (Universal) CalculateFloat32(op string, a, b float32) (float32, error) {
	switch normalize(op) {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	case "%":
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return float32(gomath.Mod(float64(a), float64(b))), nil
	default:
		return 0, unknownOperation(op)
	}
}

// CalculateFloat64 performs op on float64 operands.
func (Universal) CalculateFloat64(op string, a, b float64) (float64, error) {
	switch normalize(op) {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	case "%":
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return gomath.Mod(a, b), nil
	case "^":
		return gomath.Pow(a, b), nil
	default:
		return 0, unknownOperation(op)
	}
}

// CalculateDecimal performs op on decimal operands. Modulo and power are not
// supported; division rounds to decimal.DivisionPrecision digits. Operands
// and results are limited to ±MaxDecimal and rounded to MaxDecimalScale
// fractional digits; anything larger fails with ErrInvalidArgument.
func (Universal) CalculateDecimal(op string, a, b decimal.Decimal) (decimal.Decimal, error) {
	a, okA := boundDecimal(a)
	b, okB := boundDecimal(b)
	if !okA || !okB {
		return decimal.Zero, decimalOverflow("operand")
	}

	var result decimal.Decimal
	switch normalize(op) {
	case "+":
		result = a.Add(b)
	case "-":
		result = a.Sub(b)
	case "*":
		result = a.Mul(b)
	case "/":
		if b.IsZero() {
			return decimal.Zero, ErrDivideByZero
		}
		result = a.Div(b)
	default:
		return decimal.Zero, unknownOperation(op)
	}

	result, ok := boundDecimal(result)
	if !ok {
		return decimal.Zero, decimalOverflow("result")
	}
	return result, nil
}

// CalculateInt64 performs op on int64 operands.
func (Universal) CalculateInt64(op string, a, b int64) (int64, error) {
	switch normalize(op) {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	case "%":
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a % b, nil
	case "^":
		return int64(gomath.Pow(float64(a), float64(b))), nil
	default:
		return 0, unknownOperation(op)
	}
}

// Evaluate parses both operands as rep, applies op and formats the result.
func (u Universal) Evaluate(rep Representation, op, a, b string) (string, error) {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)

	switch rep {
	case Int32:
		x, y, err := parsePair(a, b, func(s string) (int32, error) {
			v, err := strconv.ParseInt(s, 10, 32)
			return int32(v), err
		})
		if err != nil {
			return "", err
		}
		r, err := u.CalculateInt32(op, x, y)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(r), 10), nil

	case Float32:
		x, y, err := parsePair(a, b, func(s string) (float32, error) {
			v, err := strconv.ParseFloat(s, 32)
			return float32(v), err
		})
		if err != nil {
			return "", err
		}
		r, err := u.CalculateFloat32(op, x, y)
		if err != nil {
			return "", err
		}
		return FormatFloat(float64(r), 32), nil

	case Float64:
		x, y, err := parsePair(a, b, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
		if err != nil {
			return "", err
		}
		r, err := u.CalculateFloat64(op, x, y)
		if err != nil {
			return "", err
		}
		return FormatFloat(r, 64), nil

	case Decimal64:
		x, y, err := parsePair(a, b, parseDecimal)
		if err != nil {
			return "", err
		}
		r, err := u.CalculateDecimal(op, x, y)
		if err != nil {
			return "", err
		}
		return r.String(), nil

	case Int64:
		x, y, err := parsePair(a, b, func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		})
		if err != nil {
			return "", err
		}
		r, err := u.CalculateInt64(op, x, y)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(r, 10), nil

	default:
		return "", unknownRepresentation(rep)
	}
}

func parsePair[T any](a, b string, parse func(string) (T, error)) (x, y T, err error) {
	if x, err = parse(a); err != nil {
		return x, y, &ParseError{Err: err}
	}
	if y, err = parse(b); err != nil {
		return x, y, &ParseError{Err: err}
	}
	return x, y, nil
}

// FormatFloat renders f without an exponent for magnitudes in [1e-6, 1e21)
// and in shortest exponent form otherwise.
func FormatFloat(f float64, bitSize int) string {
	abs := gomath.Abs(f)
	if f == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}
