package domain

import "github.com/shopspring/decimal"

// CalculatorInputs holds the caller-owned inputs of a disability calculation.
// MONTHLY_DISABILITY_EXPENSES is not part of this set: the engine owns it so it
// can apply the override-retention rule between runs.
type CalculatorInputs struct {
	MonthlyExpenses         decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"`
	LengthOfDisability      decimal.Decimal `yaml:"length_of_disability" json:"length_of_disability"`             // months
	CurrentMonthlyCoverage  decimal.Decimal `yaml:"current_monthly_coverage" json:"current_monthly_coverage"`
	LengthOfCurrentCoverage decimal.Decimal `yaml:"length_of_current_coverage" json:"length_of_current_coverage"` // months
	AnnualInflation         decimal.Decimal `yaml:"annual_inflation" json:"annual_inflation"`                     // percent, 3 means 3%
}

// InputsConfig is the on-disk form of the inputs. MonthlyDisabilityExpenses is
// optional; when omitted the input layer derives it from DEFAULT_EXPENSE_PERCENT.
type InputsConfig struct {
	CalculatorInputs          `yaml:",inline"`
	MonthlyDisabilityExpenses *decimal.Decimal `yaml:"monthly_disability_expenses,omitempty" json:"monthly_disability_expenses,omitempty"`
}

// Configuration is a complete calculator input file.
type Configuration struct {
	Inputs     InputsConfig       `yaml:"inputs" json:"inputs"`
	Parameters ParameterOverrides `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// DerivedDisabilityExpenses returns percent% of monthly expenses.
func DerivedDisabilityExpenses(expensePercent, monthlyExpenses decimal.Decimal) decimal.Decimal {
	return expensePercent.Div(decimal.NewFromInt(100)).Mul(monthlyExpenses)
}
