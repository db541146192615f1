// Package finance holds the time-value-of-money helpers used by the calculator.
package finance

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrNotFinite is returned when a rate or compounding factor overflows or is
// undefined, for example a -100% rate compounded over negative periods.
var ErrNotFinite = errors.New("result is not a finite number")

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// AnnualToMonthlyRate converts an annual percentage rate (3 means 3%) to the
// equivalent effective monthly rate: (1+r)^(1/12) - 1.
func AnnualToMonthlyRate(annualRatePercent decimal.Decimal) (decimal.Decimal, error) {
	annual := annualRatePercent.Div(hundred).InexactFloat64()
	rate := math.Pow(1+annual, 1.0/12.0) - 1
	if !isFinite(rate) {
		return decimal.Zero, fmt.Errorf("monthly rate for %s%% annual: %w", annualRatePercent, ErrNotFinite)
	}
	return decimal.NewFromFloat(rate), nil
}

// FutureValue compounds presentValue at monthlyRate over periods:
// PV * (1+rate)^periods. Periods may be fractional.
func FutureValue(monthlyRate, periods, presentValue decimal.Decimal) (decimal.Decimal, error) {
	factor := math.Pow(one.Add(monthlyRate).InexactFloat64(), periods.InexactFloat64())
	if !isFinite(factor) {
		return decimal.Zero, fmt.Errorf("compounding %s over %s periods: %w", monthlyRate, periods, ErrNotFinite)
	}
	return presentValue.Mul(decimal.NewFromFloat(factor)), nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
