// Package tuimsg holds the messages scenes send to the root model.
package tuimsg

import "github.com/shopspring/decimal"

// InputField identifies one calculator input.
type InputField int

const (
	FieldMonthlyExpenses InputField = iota
	FieldMonthlyDisabilityExpenses
	FieldLengthOfDisability
	FieldCurrentMonthlyCoverage
	FieldLengthOfCurrentCoverage
	FieldAnnualInflation
)

// InputChangedMsg signals a slider moved to a new value.
type InputChangedMsg struct {
	Field InputField
	Value decimal.Decimal
}

// ResetRequestedMsg asks the root model to clear the calculator inputs.
type ResetRequestedMsg struct{}
