package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Parameter keys recognized by the calculator.
const (
	KeyDefaultExpensePercent = "DEFAULT_EXPENSE_PERCENT"
	KeyDecimalPlaces         = "DECIMAL_PLACES"
	KeyMsgShort1             = "MSG_SHORT1"
	KeyMsgShort2             = "MSG_SHORT2"
	KeyMsgShort3             = "MSG_SHORT3"
	KeyMsgLong1              = "MSG_LONG1"
	KeyMsgLong2              = "MSG_LONG2"
	KeyMsgLong3              = "MSG_LONG3"
	KeyMsgLong4              = "MSG_LONG4"
	KeyMsgLong5              = "MSG_LONG5"
	KeyMsgLong6              = "MSG_LONG6"
	KeyMsgLong7              = "MSG_LONG7"
	KeyMsgGraph1             = "MSG_GRAPH1"
	KeyMsgGraph2             = "MSG_GRAPH2"
	KeyMsgGraph3             = "MSG_GRAPH3"
	KeyReportTitle           = "REPORT_TITLE"
)

var (
	// ErrUnknownParameter is returned for override keys the calculator does not recognize.
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrParameterType is returned when an override has the wrong value type.
	ErrParameterType = errors.New("invalid parameter type")
)

// Parameters is the resolved, immutable configuration of a calculator engine.
type Parameters struct {
	DefaultExpensePercent decimal.Decimal // 0-100 scale
	DecimalPlaces         int32

	MsgShort1 string
	MsgShort2 string
	MsgShort3 string

	MsgLong1 string
	MsgLong2 string
	MsgLong3 string
	MsgLong4 string
	MsgLong5 string
	MsgLong6 string
	MsgLong7 string

	MsgGraph1   string
	MsgGraph2   string
	MsgGraph3   string
	ReportTitle string
}

// DefaultParameters returns the parameter set used when no overrides are given.
func DefaultParameters() Parameters {
	return Parameters{
		DefaultExpensePercent: decimal.NewFromInt(70),
		DecimalPlaces:         0,
		MsgShort1:             "You have no current disability shortfall.",
		MsgShort2:             "Your current shortfall is",
		MsgShort3:             "per month.",
		MsgLong1:              "You need no additional coverage for the first",
		MsgLong2:              ".",
		MsgLong3:              "You need an additional MONTHLY_SHORTFALL1 coverage per month for",
		MsgLong4:              ".",
		MsgLong5:              "You will need MONTHLY_SHORTFALL2 of additional coverage for the following",
		MsgLong6:              ".",
		MsgLong7: "If you remain disabled for more than a few years, you may need to increase this coverage " +
			"to account for inflation. At the end of your anticipated LENGTH_OF_DISABILITY month disability " +
			"your expenses would be INFLATION_DISABILITY_EXPENSES after accounting for ANNUAL_INFLATION annual inflation.",
		MsgGraph1:   "Monthly disability expenses",
		MsgGraph2:   "Current insurance",
		MsgGraph3:   "Month of Disability",
		ReportTitle: "Disability Insurance Needs",
	}
}

// ParameterOverrides maps parameter keys to configured values. Values are
// numbers or strings as decoded from YAML.
type ParameterOverrides map[string]any

// Get returns the configured value for key, or defaultValue when none is set.
func (o ParameterOverrides) Get(key string, defaultValue any) any {
	if v, ok := o[key]; ok && v != nil {
		return v
	}
	return defaultValue
}

// ParameterKeys lists every recognized key in sorted order.
func ParameterKeys() []string {
	var p Parameters
	keys := []string{KeyDefaultExpensePercent, KeyDecimalPlaces}
	for k := range p.textFields() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKnownParameter reports whether key is a recognized parameter.
func IsKnownParameter(key string) bool {
	if key == KeyDefaultExpensePercent || key == KeyDecimalPlaces {
		return true
	}
	var p Parameters
	_, ok := p.textFields()[key]
	return ok
}

// ResolveParameters reads every recognized key once, falling back to defaults.
func ResolveParameters(overrides ParameterOverrides) (Parameters, error) {
	params := DefaultParameters()

	unknown := []string{}
	for key := range overrides {
		if !IsKnownParameter(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return params, fmt.Errorf("%w: %v (known keys: %s)", ErrUnknownParameter, unknown, strings.Join(ParameterKeys(), ", "))
	}

	percent, err := toDecimal(overrides.Get(KeyDefaultExpensePercent, params.DefaultExpensePercent))
	if err != nil {
		return params, fmt.Errorf("%s: %w", KeyDefaultExpensePercent, err)
	}
	params.DefaultExpensePercent = percent

	places, err := toDecimal(overrides.Get(KeyDecimalPlaces, decimal.NewFromInt32(params.DecimalPlaces)))
	if err != nil {
		return params, fmt.Errorf("%s: %w", KeyDecimalPlaces, err)
	}
	if !places.Equal(places.Truncate(0)) {
		return params, fmt.Errorf("%s: %w: must be a whole number", KeyDecimalPlaces, ErrParameterType)
	}
	params.DecimalPlaces = int32(places.IntPart())

	for key, field := range params.textFields() {
		v := overrides.Get(key, *field)
		s, ok := v.(string)
		if !ok {
			return params, fmt.Errorf("%s: %w: expected string, got %T", key, ErrParameterType, v)
		}
		*field = s
	}

	return params, nil
}

// ExpenseFraction returns DefaultExpensePercent on a 0-1 scale.
func (p Parameters) ExpenseFraction() decimal.Decimal {
	return p.DefaultExpensePercent.Div(decimal.NewFromInt(100))
}

func (p *Parameters) textFields() map[string]*string {
	return map[string]*string{
		KeyMsgShort1:   &p.MsgShort1,
		KeyMsgShort2:   &p.MsgShort2,
		KeyMsgShort3:   &p.MsgShort3,
		KeyMsgLong1:    &p.MsgLong1,
		KeyMsgLong2:    &p.MsgLong2,
		KeyMsgLong3:    &p.MsgLong3,
		KeyMsgLong4:    &p.MsgLong4,
		KeyMsgLong5:    &p.MsgLong5,
		KeyMsgLong6:    &p.MsgLong6,
		KeyMsgLong7:    &p.MsgLong7,
		KeyMsgGraph1:   &p.MsgGraph1,
		KeyMsgGraph2:   &p.MsgGraph2,
		KeyMsgGraph3:   &p.MsgGraph3,
		KeyReportTitle: &p.ReportTitle,
	}
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrParameterType, n)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: expected number, got %T", ErrParameterType, v)
	}
}
