package components

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParameterSlider_Clamps(t *testing.T) {
	s := NewParameterSlider("Length of disability", 500, 1, 120, 1)
	assert.Equal(t, 120.0, s.Value)

	s.SetValue(-4)
	assert.Equal(t, 1.0, s.Value)

	s.Decrement(1)
	assert.Equal(t, 1.0, s.Value)

	s.Increment(10)
	assert.Equal(t, 11.0, s.Value)
}

func TestParameterSlider_IncrementStopsAtMax(t *testing.T) {
	s := NewParameterSlider("Monthly expenses", 99950, 0, 100000, 100)
	s.Increment(1)
	assert.Equal(t, 100000.0, s.Value)
}

func TestParameterSlider_DecimalRoundsToPlaces(t *testing.T) {
	s := NewParameterSlider("Annual inflation", 2.9, 0, 20, 0.1).WithPlaces(1)
	assert.Equal(t, 2.9, s.Value)
	s.Increment(1)

	assert.True(t, s.Decimal().Equal(decimal.RequireFromString("3")), "got %s", s.Decimal())
}

func TestParameterSlider_SetDecimal(t *testing.T) {
	s := NewParameterSlider("Current coverage", 0, 0, 100000, 100)
	s.SetDecimal(decimal.NewFromInt(2000))
	assert.Equal(t, 2000.0, s.Value)
	assert.InDelta(t, 0.02, s.Percentage(), 1e-9)
}

func TestParameterSlider_Render(t *testing.T) {
	s := NewParameterSlider("Monthly expenses", 5000, 0, 100000, 100).
		WithFormatter(func(v float64) string { return "$" + decimal.NewFromFloat(v).StringFixed(0) }).
		WithDescription("Your current monthly expenses").
		WithWidth(20)

	out := s.Render()
	assert.Contains(t, out, "Monthly expenses")
	assert.Contains(t, out, "$5000")
	assert.Contains(t, out, "$100000")
	assert.NotContains(t, out, "Your current monthly expenses")

	s.SetFocused(true)
	assert.Contains(t, s.Render(), "Your current monthly expenses")
	assert.True(t, strings.HasPrefix(s.RenderCompact(), "Monthly expenses:"))
	assert.Contains(t, s.RenderCompact(), "$5000")
}

func TestParameterSlider_ZeroRange(t *testing.T) {
	s := NewParameterSlider("Fixed", 3, 3, 3, 1)
	assert.Equal(t, 0.0, s.Percentage())
}

func TestMetricGrid(t *testing.T) {
	assert.Equal(t, "", MetricGrid(nil, 3))

	cards := []*MetricCard{
		NewMetricCard("Shortfall", "$2,000").WithStatus(false, "per month"),
		NewMetricCard("Future coverage", "$4,000"),
	}
	out := MetricGrid(cards, 2)
	assert.Contains(t, out, "Shortfall")
	assert.Contains(t, out, "$4,000")
	assert.Contains(t, out, "per month")
}
