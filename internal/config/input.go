package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rgehrsitz/disabilitycalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidInput is wrapped by every input validation failure.
var ErrInvalidInput = errors.New("invalid input")

var (
	hundred                = decimal.NewFromInt(100)
	maxDecimalPlaces int32 = 4
)

// InputParser handles parsing of calculator input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// Input is a validated configuration resolved into engine inputs.
type Input struct {
	Inputs                    domain.CalculatorInputs
	MonthlyDisabilityExpenses decimal.Decimal
	Parameters                domain.Parameters
}

// LoadFromFile loads and validates a configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates YAML configuration data
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the inputs and parameter overrides
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateInputs(&config.Inputs); err != nil {
		return fmt.Errorf("inputs validation failed: %w", err)
	}
	if _, err := ip.resolveParameters(config.Parameters); err != nil {
		return fmt.Errorf("parameters validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validateInputs(in *domain.InputsConfig) error {
	if in.MonthlyExpenses.IsNegative() {
		return fmt.Errorf("%w: monthly expenses cannot be negative", ErrInvalidInput)
	}
	if in.MonthlyDisabilityExpenses != nil && in.MonthlyDisabilityExpenses.IsNegative() {
		return fmt.Errorf("%w: monthly disability expenses cannot be negative", ErrInvalidInput)
	}
	if in.LengthOfDisability.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: length of disability must be at least 1 month", ErrInvalidInput)
	}
	if in.CurrentMonthlyCoverage.IsNegative() {
		return fmt.Errorf("%w: current monthly coverage cannot be negative", ErrInvalidInput)
	}
	if in.LengthOfCurrentCoverage.IsNegative() {
		return fmt.Errorf("%w: length of current coverage cannot be negative", ErrInvalidInput)
	}
	if in.AnnualInflation.LessThanOrEqual(hundred.Neg()) {
		return fmt.Errorf("%w: annual inflation must be greater than -100%%", ErrInvalidInput)
	}
	return nil
}

func (ip *InputParser) resolveParameters(overrides domain.ParameterOverrides) (domain.Parameters, error) {
	params, err := domain.ResolveParameters(overrides)
	if err != nil {
		return params, err
	}
	if params.DefaultExpensePercent.IsNegative() || params.DefaultExpensePercent.GreaterThan(hundred) {
		return params, fmt.Errorf("%w: %s must be between 0 and 100", ErrInvalidInput, domain.KeyDefaultExpensePercent)
	}
	if params.DecimalPlaces < 0 || params.DecimalPlaces > maxDecimalPlaces {
		return params, fmt.Errorf("%w: %s must be between 0 and %d", ErrInvalidInput, domain.KeyDecimalPlaces, maxDecimalPlaces)
	}
	return params, nil
}

// Resolve turns a configuration into engine inputs and parameters. An omitted
// disability expense figure defaults to DEFAULT_EXPENSE_PERCENT of monthly
// expenses.
func (ip *InputParser) Resolve(config *domain.Configuration) (*Input, error) {
	if err := ip.validateInputs(&config.Inputs); err != nil {
		return nil, fmt.Errorf("inputs validation failed: %w", err)
	}
	params, err := ip.resolveParameters(config.Parameters)
	if err != nil {
		return nil, fmt.Errorf("parameters validation failed: %w", err)
	}

	input := &Input{
		Inputs:     config.Inputs.CalculatorInputs,
		Parameters: params,
	}
	if config.Inputs.MonthlyDisabilityExpenses != nil {
		input.MonthlyDisabilityExpenses = *config.Inputs.MonthlyDisabilityExpenses
	} else {
		input.MonthlyDisabilityExpenses = domain.DerivedDisabilityExpenses(params.DefaultExpensePercent, config.Inputs.MonthlyExpenses)
	}
	return input, nil
}

// CreateExampleConfiguration creates an example configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	disability := decimal.NewFromInt(4000)
	return &domain.Configuration{
		Inputs: domain.InputsConfig{
			CalculatorInputs: domain.CalculatorInputs{
				MonthlyExpenses:         decimal.NewFromInt(5000),
				LengthOfDisability:      decimal.NewFromInt(24),
				CurrentMonthlyCoverage:  decimal.NewFromInt(2000),
				LengthOfCurrentCoverage: decimal.NewFromInt(12),
				AnnualInflation:         decimal.NewFromInt(3),
			},
			MonthlyDisabilityExpenses: &disability,
		},
		Parameters: domain.ParameterOverrides{
			domain.KeyDefaultExpensePercent: 70,
			domain.KeyDecimalPlaces:         0,
		},
	}
}

// SaveConfiguration saves a configuration to a YAML file
func SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
