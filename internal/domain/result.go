package domain

import "github.com/shopspring/decimal"

// CalculationResult is the complete output of one calculation. Each run
// produces a new value; nothing is carried over from earlier runs.
type CalculationResult struct {
	Inputs                      CalculatorInputs `json:"inputs"`
	MonthlyDisabilityExpenses   decimal.Decimal  `json:"monthly_disability_expenses"`
	MonthlyShortfall1           decimal.Decimal  `json:"monthly_shortfall1"` // disability expenses minus current coverage, unfloored
	MonthlyShortfall2           decimal.Decimal  `json:"monthly_shortfall2"` // full coverage need once current coverage ends
	InflationDisabilityExpenses decimal.Decimal  `json:"inflation_disability_expenses"`
	UncoveredMonths             decimal.Decimal  `json:"uncovered_months"`

	ShortMessage string `json:"short_message"`
	LongMessage  string `json:"long_message"`

	// Month-indexed chart series, all of length round(LengthOfDisability).
	Expenses   []decimal.Decimal `json:"ds_expenses"`
	Coverage   []decimal.Decimal `json:"ds_coverage"`
	Categories []int             `json:"cats"`

	Schedule *ReportSchedule `json:"schedule,omitempty"`
}

// HasShortfall reports whether disability expenses exceed current coverage.
func (r *CalculationResult) HasShortfall() bool {
	return r.MonthlyShortfall1.IsPositive()
}

// MonthCount returns the number of months in the chart series.
func (r *CalculationResult) MonthCount() int {
	return len(r.Categories)
}
