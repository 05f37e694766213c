package calculator

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// MaxDecimalScale is the number of fractional digits a decimal keeps.
const MaxDecimalScale = 28

// MaxDecimal is the largest decimal magnitude, 2^96 - 1.
var MaxDecimal = decimal.RequireFromString("79228162514264337593543950335")

const maxDecimalIntegerDigits = 29

// boundDecimal limits d to ±MaxDecimal and MaxDecimalScale fractional
// digits, reporting false on overflow. Values below the smallest scale
// become zero. Magnitude is judged from the digit count and exponent so
// large exponents are never expanded.
func boundDecimal(d decimal.Decimal) (decimal.Decimal, bool) {
	if d.IsZero() {
		return decimal.Zero, true
	}

	coefficient := d.Coefficient()
	coefficient.Abs(coefficient)
	magnitude := len(coefficient.String()) + int(d.Exponent())

	switch {
	case magnitude > maxDecimalIntegerDigits:
		return decimal.Zero, false
	case magnitude == maxDecimalIntegerDigits && d.Abs().Cmp(MaxDecimal) > 0:
		return decimal.Zero, false
	case magnitude < -MaxDecimalScale:
		return decimal.Zero, true
	}

	if d.Exponent() < -MaxDecimalScale {
		d = d.Round(MaxDecimalScale)
	}
	return d, true
}

// parseDecimal parses s and bounds it. Out-of-range input fails with
// strconv.ErrRange like the native integer parsers.
func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	bounded, ok := boundDecimal(d)
	if !ok {
		return decimal.Zero, &strconv.NumError{Func: "ParseDecimal", Num: s, Err: strconv.ErrRange}
	}
	return bounded, nil
}

func decimalOverflow(what string) error {
	return fmt.Errorf("%w: decimal %s out of range", ErrInvalidArgument, what)
}
