package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/disabilitycalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
inputs:
  monthly_expenses: 5000
  monthly_disability_expenses: 4000
  length_of_disability: 24
  current_monthly_coverage: 2000
  length_of_current_coverage: 12
  annual_inflation: 3.5
parameters:
  DEFAULT_EXPENSE_PERCENT: 60
  DECIMAL_PLACES: 2
  REPORT_TITLE: "Household disability plan"
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()

	config, err := parser.LoadFromFile(writeFile(t, validYAML))
	require.NoError(t, err)

	in := config.Inputs
	assert.True(t, in.MonthlyExpenses.Equal(decimal.NewFromInt(5000)))
	require.NotNil(t, in.MonthlyDisabilityExpenses)
	assert.True(t, in.MonthlyDisabilityExpenses.Equal(decimal.NewFromInt(4000)))
	assert.True(t, in.LengthOfDisability.Equal(decimal.NewFromInt(24)))
	assert.True(t, in.CurrentMonthlyCoverage.Equal(decimal.NewFromInt(2000)))
	assert.True(t, in.LengthOfCurrentCoverage.Equal(decimal.NewFromInt(12)))
	assert.True(t, in.AnnualInflation.Equal(decimal.RequireFromString("3.5")))
	assert.Equal(t, "Household disability plan", config.Parameters[domain.KeyReportTitle])
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_BadYAML(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("inputs: [not a map"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration(t *testing.T) {
	base := func() *domain.Configuration {
		return NewInputParser().CreateExampleConfiguration()
	}

	tests := []struct {
		name    string
		mutate  func(c *domain.Configuration)
		wantErr error
		errText string
	}{
		{
			name:   "example is valid",
			mutate: func(c *domain.Configuration) {},
		},
		{
			name:    "negative expenses",
			mutate:  func(c *domain.Configuration) { c.Inputs.MonthlyExpenses = decimal.NewFromInt(-1) },
			wantErr: ErrInvalidInput,
			errText: "monthly expenses",
		},
		{
			name: "negative disability expenses",
			mutate: func(c *domain.Configuration) {
				v := decimal.NewFromInt(-5)
				c.Inputs.MonthlyDisabilityExpenses = &v
			},
			wantErr: ErrInvalidInput,
			errText: "monthly disability expenses",
		},
		{
			name:    "zero length of disability",
			mutate:  func(c *domain.Configuration) { c.Inputs.LengthOfDisability = decimal.Zero },
			wantErr: ErrInvalidInput,
			errText: "length of disability",
		},
		{
			name:    "negative coverage",
			mutate:  func(c *domain.Configuration) { c.Inputs.CurrentMonthlyCoverage = decimal.NewFromInt(-1) },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative coverage length",
			mutate:  func(c *domain.Configuration) { c.Inputs.LengthOfCurrentCoverage = decimal.NewFromInt(-1) },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "inflation at -100",
			mutate:  func(c *domain.Configuration) { c.Inputs.AnnualInflation = decimal.NewFromInt(-100) },
			wantErr: ErrInvalidInput,
			errText: "annual inflation",
		},
		{
			name:   "deflation allowed",
			mutate: func(c *domain.Configuration) { c.Inputs.AnnualInflation = decimal.NewFromInt(-2) },
		},
		{
			name:    "expense percent over 100",
			mutate:  func(c *domain.Configuration) { c.Parameters[domain.KeyDefaultExpensePercent] = 120 },
			wantErr: ErrInvalidInput,
			errText: domain.KeyDefaultExpensePercent,
		},
		{
			name:    "decimal places out of range",
			mutate:  func(c *domain.Configuration) { c.Parameters[domain.KeyDecimalPlaces] = 6 },
			wantErr: ErrInvalidInput,
			errText: domain.KeyDecimalPlaces,
		},
		{
			name:    "unknown parameter",
			mutate:  func(c *domain.Configuration) { c.Parameters["MSG_BOGUS"] = "x" },
			wantErr: domain.ErrUnknownParameter,
		},
		{
			name:    "message of wrong type",
			mutate:  func(c *domain.Configuration) { c.Parameters[domain.KeyMsgShort1] = 12 },
			wantErr: domain.ErrParameterType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := base()
			tt.mutate(config)

			err := NewInputParser().ValidateConfiguration(config)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.errText != "" {
				assert.Contains(t, err.Error(), tt.errText)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.Parse([]byte(validYAML))
	require.NoError(t, err)

	input, err := parser.Resolve(config)
	require.NoError(t, err)

	assert.True(t, input.MonthlyDisabilityExpenses.Equal(decimal.NewFromInt(4000)))
	assert.True(t, input.Parameters.DefaultExpensePercent.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, int32(2), input.Parameters.DecimalPlaces)
	assert.Equal(t, "Household disability plan", input.Parameters.ReportTitle)
	assert.Equal(t, domain.DefaultParameters().MsgShort1, input.Parameters.MsgShort1)
}

func TestResolve_DerivesDisabilityExpenses(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.Parse([]byte(`
inputs:
  monthly_expenses: 5000
  length_of_disability: 24
  current_monthly_coverage: 2000
  length_of_current_coverage: 12
  annual_inflation: 3
`))
	require.NoError(t, err)
	assert.Nil(t, config.Inputs.MonthlyDisabilityExpenses)

	input, err := parser.Resolve(config)
	require.NoError(t, err)

	assert.True(t, input.MonthlyDisabilityExpenses.Equal(decimal.NewFromInt(3500)),
		"got %s", input.MonthlyDisabilityExpenses)
	assert.Equal(t, domain.DefaultParameters(), input.Parameters)
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "example.yaml")

	require.NoError(t, SaveConfiguration(parser.CreateExampleConfiguration(), path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	input, err := parser.Resolve(loaded)
	require.NoError(t, err)
	assert.True(t, input.Inputs.MonthlyExpenses.Equal(decimal.NewFromInt(5000)))
	assert.True(t, input.MonthlyDisabilityExpenses.Equal(decimal.NewFromInt(4000)))
	assert.True(t, input.Inputs.LengthOfCurrentCoverage.Equal(decimal.NewFromInt(12)))
}

func TestSaveConfiguration_BadPath(t *testing.T) {
	err := SaveConfiguration(NewInputParser().CreateExampleConfiguration(),
		filepath.Join(t.TempDir(), "missing", "dir", "out.yaml"))
	assert.Error(t, err)
}
