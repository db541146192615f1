package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/disabilitycalc/internal/calculation"
	"github.com/rgehrsitz/disabilitycalc/internal/config"
	"github.com/rgehrsitz/disabilitycalc/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pipelineConfig = `inputs:
  monthly_expenses: 5000
  length_of_disability: 24
  current_monthly_coverage: 2000
  length_of_current_coverage: 12
  annual_inflation: 3
parameters:
  DEFAULT_EXPENSE_PERCENT: 80
  REPORT_TITLE: "Household Disability Plan"
`

// loadPipelineEngine runs a configuration file through the input layer and
// engine the same way the CLI does.
func loadPipelineEngine(t *testing.T) *calculation.Engine {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pipelineConfig), 0644))

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	input, err := parser.Resolve(cfg)
	require.NoError(t, err)

	e := calculation.NewEngine(input.Parameters)
	e.SetInputs(input.Inputs)
	e.SetMonthlyDisabilityExpenses(input.MonthlyDisabilityExpenses)
	e.Calculate(true)
	return e
}

func TestPipeline_ConfigToEveryFormatter(t *testing.T) {
	e := loadPipelineEngine(t)
	r := e.Result()
	require.NotNil(t, r)
	assert.True(t, r.MonthlyShortfall1.Equal(decimal.NewFromInt(2000)), "got %s", r.MonthlyShortfall1)
	assert.True(t, r.MonthlyShortfall2.Equal(decimal.NewFromInt(4000)), "got %s", r.MonthlyShortfall2)

	for _, name := range AvailableFormatterNames() {
		t.Run(name, func(t *testing.T) {
			f, err := LookupFormatter(name)
			require.NoError(t, err)
			data, err := f.Format(e)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			switch name {
			case "console", "html":
				out := string(data)
				assert.Contains(t, out, "Household Disability Plan")
				assert.Contains(t, out, "$2,000")
				for _, token := range append(report.ValueTokens, report.TokenLongMessage, report.TokenShortMessage, report.TokenRepeatingGroup) {
					assert.NotContains(t, out, token)
				}
			case "json":
				var doc map[string]any
				require.NoError(t, json.Unmarshal(data, &doc))
				assert.Equal(t, "Household Disability Plan", doc["title"])
			case "csv":
				records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
				require.NoError(t, err)
				assert.Len(t, records, 25)
			case "pdf":
				assert.True(t, strings.HasPrefix(string(data), "%PDF"))
			}
		})
	}
}

func TestPipeline_WriteFormattedToDisk(t *testing.T) {
	e := loadPipelineEngine(t)
	target := filepath.Join(t.TempDir(), "plan.html")

	written, err := WriteFormatted(GetFormatterByName("html"), e, target)
	require.NoError(t, err)
	assert.Equal(t, target, written)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<table")
}
