// Package format renders calculator values for reports and messages.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats amount as dollars with thousands grouping, e.g. "$1,234"
// or "-$2,000.50". Amounts are rounded half away from zero to places.
func Currency(amount decimal.Decimal, places int32) string {
	rounded := amount.Round(places)
	s := grouped(rounded.Abs(), places)
	if rounded.IsNegative() {
		return "-$" + s
	}
	return "$" + s
}

// Integer formats n rounded to a whole number with thousands grouping.
func Integer(n decimal.Decimal) string {
	rounded := n.Round(0)
	s := grouped(rounded.Abs(), 0)
	if rounded.IsNegative() {
		return "-" + s
	}
	return s
}

// Percent formats a fraction (0.03) as a percentage ("3.0%" for one place).
func Percent(fraction decimal.Decimal, places int32) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(places) + "%"
}

func grouped(d decimal.Decimal, places int32) string {
	digits := int(places)
	if digits < 0 {
		digits = 0
	}
	return printer.Sprint(number.Decimal(d.InexactFloat64(),
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	))
}
