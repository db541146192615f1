package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveParameters_Defaults(t *testing.T) {
	params, err := ResolveParameters(nil)
	require.NoError(t, err)

	assert.True(t, params.DefaultExpensePercent.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, int32(0), params.DecimalPlaces)
	assert.Equal(t, "You have no current disability shortfall.", params.MsgShort1)
	assert.Equal(t, ".", params.MsgLong2)
	assert.Contains(t, params.MsgLong3, "MONTHLY_SHORTFALL1")
	assert.Contains(t, params.MsgLong5, "MONTHLY_SHORTFALL2")
	assert.Contains(t, params.MsgLong7, "INFLATION_DISABILITY_EXPENSES")
}

func TestResolveParameters_Overrides(t *testing.T) {
	params, err := ResolveParameters(ParameterOverrides{
		KeyDefaultExpensePercent: 80,
		KeyDecimalPlaces:         2,
		KeyMsgShort1:             "Covered.",
		KeyReportTitle:           "Income Protection",
	})
	require.NoError(t, err)

	assert.True(t, params.DefaultExpensePercent.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, int32(2), params.DecimalPlaces)
	assert.Equal(t, "Covered.", params.MsgShort1)
	assert.Equal(t, "Income Protection", params.ReportTitle)
	// untouched keys keep their defaults
	assert.Equal(t, "per month.", params.MsgShort3)
}

func TestResolveParameters_NumericForms(t *testing.T) {
	for _, v := range []any{62.5, "62.5", decimal.NewFromFloat(62.5)} {
		params, err := ResolveParameters(ParameterOverrides{KeyDefaultExpensePercent: v})
		require.NoError(t, err, "value %v", v)
		assert.True(t, params.DefaultExpensePercent.Equal(decimal.NewFromFloat(62.5)), "value %v", v)
	}
}

func TestResolveParameters_Errors(t *testing.T) {
	tests := []struct {
		name      string
		overrides ParameterOverrides
		target    error
	}{
		{"unknown key", ParameterOverrides{"MSG_SHORT9": "x"}, ErrUnknownParameter},
		{"non-numeric percent", ParameterOverrides{KeyDefaultExpensePercent: "seventy"}, ErrParameterType},
		{"bool percent", ParameterOverrides{KeyDefaultExpensePercent: true}, ErrParameterType},
		{"fractional places", ParameterOverrides{KeyDecimalPlaces: 1.5}, ErrParameterType},
		{"numeric message", ParameterOverrides{KeyMsgLong1: 12}, ErrParameterType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveParameters(tt.overrides)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestResolveParameters_UnknownKeyListsKnownKeys(t *testing.T) {
	_, err := ResolveParameters(ParameterOverrides{"MSG_SHORT9": "x", "GRAPH": "y"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownParameter)
	assert.Contains(t, err.Error(), "[GRAPH MSG_SHORT9]")
	assert.Contains(t, err.Error(), "known keys: "+strings.Join(ParameterKeys(), ", "))
	assert.Contains(t, err.Error(), KeyReportTitle)
}

func TestParameterOverrides_Get(t *testing.T) {
	o := ParameterOverrides{"A": "set", "B": nil}
	assert.Equal(t, "set", o.Get("A", "default"))
	assert.Equal(t, "default", o.Get("B", "default"))
	assert.Equal(t, 7, o.Get("C", 7))

	var empty ParameterOverrides
	assert.Equal(t, "x", empty.Get("A", "x"))
}

func TestParameterKeys(t *testing.T) {
	keys := ParameterKeys()
	assert.Len(t, keys, 16)
	for _, k := range keys {
		assert.True(t, IsKnownParameter(k), k)
	}
	assert.False(t, IsKnownParameter("GRAPH"))
}

func TestDerivedDisabilityExpenses(t *testing.T) {
	got := DerivedDisabilityExpenses(decimal.NewFromInt(70), decimal.NewFromInt(5000))
	assert.True(t, got.Equal(decimal.NewFromInt(3500)), got.String())
}

func TestReportSchedule(t *testing.T) {
	var nilSchedule *ReportSchedule
	assert.Equal(t, 0, nilSchedule.Len())

	s := NewReportSchedule(-1)
	assert.Equal(t, ScheduleHeader, s.Header)
	s.AddRow(ScheduleRow{Month: 1})
	assert.Equal(t, 1, s.Len())
}
