package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		places int32
		want   string
	}{
		{0, 0, "$0"},
		{2000, 0, "$2,000"},
		{1234.567, 2, "$1,234.57"},
		{3499.5, 0, "$3,500"},
		{-2000, 0, "-$2,000"},
		{-0.2, 0, "$0"},
		{1250000, 2, "$1,250,000.00"},
		{4243.6, 0, "$4,244"},
	}

	for _, tt := range tests {
		got := Currency(decimal.NewFromFloat(tt.amount), tt.places)
		assert.Equal(t, tt.want, got, "Currency(%v, %d)", tt.amount, tt.places)
	}
}

func TestInteger(t *testing.T) {
	assert.Equal(t, "24", Integer(decimal.NewFromInt(24)))
	assert.Equal(t, "1,200", Integer(decimal.NewFromInt(1200)))
	assert.Equal(t, "3", Integer(decimal.NewFromFloat(2.5)))
	assert.Equal(t, "-12", Integer(decimal.NewFromInt(-12)))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "3.0%", Percent(decimal.NewFromFloat(0.03), 1))
	assert.Equal(t, "70%", Percent(decimal.NewFromFloat(0.7), 0))
	assert.Equal(t, "2.50%", Percent(decimal.NewFromFloat(0.025), 2))
}

func TestTermLabel(t *testing.T) {
	tests := []struct {
		months int64
		want   string
	}{
		{0, "0 months"},
		{1, "1 month"},
		{2, "2 months"},
		{12, "12 months"},
		{1200, "1,200 months"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TermLabel(decimal.NewFromInt(tt.months)))
	}
}

func TestScheduleCells(t *testing.T) {
	cells := ScheduleCells(1000, decimal.NewFromInt(4000), decimal.NewFromInt(2500), 0)
	assert.Equal(t, [4]string{"1,000", "$4,000", "$2,500", "-$1,500"}, cells)

	cells = ScheduleCells(3, decimal.NewFromFloat(1234.5), decimal.Zero, 2)
	assert.Equal(t, [4]string{"3", "$1,234.50", "$0.00", "-$1,234.50"}, cells)
}
