package utils

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// SafeFloat coerces NaN and +/-Inf to 0 so malformed upstream numbers can
// never poison an aggregate.
func SafeFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// SafeNumber dereferences an optional amount. nil, NaN and +/-Inf all read as 0.
func SafeNumber(p *float64) float64 {
	if p == nil {
		return 0
	}
	return SafeFloat(*p)
}

// ToCents converts a currency amount to integer minor units, rounding to the
// nearest cent. All internal money arithmetic runs on these integers.
func ToCents(amount float64) int64 {
	return decimal.NewFromFloat(SafeFloat(amount)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CentsToAmount converts integer minor units back to a 2-decimal currency amount.
func CentsToAmount(cents int64) float64 {
	f, _ := decimal.New(cents, -2).Float64()
	return f
}

// Round2 rounds a currency amount to 2 decimals without binary float drift.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(SafeFloat(v)).Round(2).Float64()
	return f
}

// ParseDecimal converts a string to a decimal.Decimal value.
func ParseDecimal(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, errors.New("empty decimal string")
	}

	dec, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, err
	}

	return dec, nil
}
