package format

import "github.com/shopspring/decimal"

// TermLabel renders a month count as "1 month" or "N months".
func TermLabel(months decimal.Decimal) string {
	if months.Round(0).Equal(decimal.NewFromInt(1)) {
		return "1 month"
	}
	return Integer(months) + " months"
}

// ScheduleCells renders one schedule month as display strings: month number,
// expenses, coverage and the coverage-minus-expenses difference.
func ScheduleCells(month int, expenses, coverage decimal.Decimal, places int32) [4]string {
	return [4]string{
		Integer(decimal.NewFromInt(int64(month))),
		Currency(expenses, places),
		Currency(coverage, places),
		Currency(coverage.Sub(expenses), places),
	}
}
