package main

import (
	"fmt"

	"github.com/rgehrsitz/disabilitycalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// decimalFlag is a command-line flag holding a decimal amount.
type decimalFlag struct {
	value decimal.Decimal
}

func (f *decimalFlag) String() string { return f.value.String() }
func (f *decimalFlag) Type() string   { return "decimal" }

func (f *decimalFlag) Set(s string) error {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	f.value = v
	return nil
}

// inputFlags maps each input override flag to the field it sets.
var inputFlags = []struct {
	name  string
	usage string
	apply func(in *domain.InputsConfig, v decimal.Decimal)
}{
	{"monthly-expenses", "Override current monthly expenses", func(in *domain.InputsConfig, v decimal.Decimal) { in.MonthlyExpenses = v }},
	{"monthly-disability-expenses", "Override monthly expenses while disabled", func(in *domain.InputsConfig, v decimal.Decimal) { in.MonthlyDisabilityExpenses = &v }},
	{"length-of-disability", "Override length of disability in months", func(in *domain.InputsConfig, v decimal.Decimal) { in.LengthOfDisability = v }},
	{"current-monthly-coverage", "Override current monthly disability coverage", func(in *domain.InputsConfig, v decimal.Decimal) { in.CurrentMonthlyCoverage = v }},
	{"length-of-current-coverage", "Override length of current coverage in months", func(in *domain.InputsConfig, v decimal.Decimal) { in.LengthOfCurrentCoverage = v }},
	{"annual-inflation", "Override annual inflation percent", func(in *domain.InputsConfig, v decimal.Decimal) { in.AnnualInflation = v }},
}

func addInputFlags(cmd *cobra.Command) {
	for _, f := range inputFlags {
		cmd.Flags().Var(&decimalFlag{}, f.name, f.usage)
	}
}

// applyInputOverrides copies every explicitly set override flag into config.
func applyInputOverrides(cmd *cobra.Command, config *domain.Configuration) {
	for _, f := range inputFlags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		flag := cmd.Flags().Lookup(f.name).Value.(*decimalFlag)
		f.apply(&config.Inputs, flag.value)
	}
}
