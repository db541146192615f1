// Package report substitutes computed values into report templates and renders
// the month-by-month schedule.
package report

import (
	"sort"
	"strings"
)

// Report tokens recognized in templates.
const (
	TokenLongMessage                 = "LONG_MESSAGE"
	TokenShortMessage                = "SHORT_MESSAGE"
	TokenMonthlyShortfall1           = "MONTHLY_SHORTFALL1"
	TokenMonthlyShortfall2           = "MONTHLY_SHORTFALL2"
	TokenMonthlyExpenses             = "MONTHLY_EXPENSES"
	TokenMonthlyDisabilityExpenses   = "MONTHLY_DISABILITY_EXPENSES"
	TokenLengthOfDisability          = "LENGTH_OF_DISABILITY"
	TokenCurrentMonthlyCoverage      = "CURRENT_MONTHLY_COVERAGE"
	TokenLengthOfCurrentCoverage     = "LENGTH_OF_CURRENT_COVERAGE"
	TokenAnnualInflation             = "ANNUAL_INFLATION"
	TokenInflationDisabilityExpenses = "INFLATION_DISABILITY_EXPENSES"
	TokenDefaultExpensePercent       = "DEFAULT_EXPENSE_PERCENT"
	TokenReportTitle                 = "REPORT_TITLE"
	TokenRepeatingGroup              = "**REPEATING GROUP**"
)

// ValueTokens lists the tokens resolved to computed or input values.
var ValueTokens = []string{
	TokenMonthlyShortfall1,
	TokenMonthlyShortfall2,
	TokenMonthlyExpenses,
	TokenMonthlyDisabilityExpenses,
	TokenLengthOfDisability,
	TokenCurrentMonthlyCoverage,
	TokenLengthOfCurrentCoverage,
	TokenAnnualInflation,
	TokenInflationDisabilityExpenses,
	TokenDefaultExpensePercent,
}

// Substitutions maps template tokens to replacement text.
type Substitutions map[string]string

// Set records a replacement for token and returns s for chaining.
func (s Substitutions) Set(token, value string) Substitutions {
	s[token] = value
	return s
}

// Apply replaces every token in template in a single left-to-right pass.
// Longer tokens win over shorter ones at the same position and replacement
// text is never rescanned, so a value can not be mistaken for a token.
// Text that matches no token is left as is.
func (s Substitutions) Apply(template string) string {
	if len(s) == 0 {
		return template
	}

	tokens := make([]string, 0, len(s))
	for token := range s {
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})

	pairs := make([]string, 0, 2*len(tokens))
	for _, token := range tokens {
		pairs = append(pairs, token, s[token])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Replace substitutes every literal occurrence of token in template.
func Replace(token, value, template string) string {
	return Substitutions{token: value}.Apply(template)
}
