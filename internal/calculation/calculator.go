package calculation

import (
	"unicode/utf8"

	"github.com/rgehrsitz/disabilitycalc/internal/domain"
	"github.com/rgehrsitz/disabilitycalc/internal/finance"
	"github.com/rgehrsitz/disabilitycalc/internal/format"
	"github.com/rgehrsitz/disabilitycalc/internal/report"
	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// Engine computes disability insurance needs. Callers set the inputs, call
// Calculate and then read the result or render a report with FormatReport.
//
// An Engine is a single unit of mutable state and is not safe for concurrent use.
type Engine struct {
	params domain.Parameters
	inputs domain.CalculatorInputs

	// monthlyDisabilityExpenses may be set by the caller; it is only
	// rederived when monthly expenses change between two runs.
	monthlyDisabilityExpenses decimal.Decimal
	hasRunBefore              bool
	previousMonthlyExpenses   decimal.Decimal

	result *domain.CalculationResult

	Logger Logger
}

// NewEngine creates an engine configured with params.
func NewEngine(params domain.Parameters) *Engine {
	return &Engine{
		params: params,
		Logger: NopLogger{},
	}
}

// SetLogger sets the engine logger; nil installs a NopLogger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// Parameters returns the parameters the engine was built with.
func (e *Engine) Parameters() domain.Parameters { return e.params }

// Reset zeroes the base inputs. The disability expense figure and the
// change-detection state are kept.
func (e *Engine) Reset() {
	e.inputs = domain.CalculatorInputs{}
}

// SetInputs replaces the base inputs used by the next Calculate.
func (e *Engine) SetInputs(in domain.CalculatorInputs) { e.inputs = in }

// Inputs returns the current base inputs.
func (e *Engine) Inputs() domain.CalculatorInputs { return e.inputs }

// SetMonthlyDisabilityExpenses overrides the disability expense figure.
func (e *Engine) SetMonthlyDisabilityExpenses(amount decimal.Decimal) {
	e.monthlyDisabilityExpenses = amount
}

// MonthlyDisabilityExpenses returns the current disability expense figure.
func (e *Engine) MonthlyDisabilityExpenses() decimal.Decimal { return e.monthlyDisabilityExpenses }

// HasRun reports whether Calculate has been called at least once.
func (e *Engine) HasRun() bool { return e.hasRunBefore }

// Result returns the most recent result, or nil before the first Calculate.
func (e *Engine) Result() *domain.CalculationResult { return e.result }

// Calculate runs the projection over the current inputs and replaces the
// previous result. When buildSchedule is set the result also carries the
// formatted month-by-month schedule.
func (e *Engine) Calculate(buildSchedule bool) *domain.CalculationResult {
	in := e.inputs

	// A changed expense figure clobbers any manual override, except on the
	// very first run, which keeps whatever value is present.
	if e.hasRunBefore && !in.MonthlyExpenses.Equal(e.previousMonthlyExpenses) {
		e.monthlyDisabilityExpenses = domain.DerivedDisabilityExpenses(e.params.DefaultExpensePercent, in.MonthlyExpenses)
		e.Logger.Debugf("monthly expenses changed %s -> %s, disability expenses rederived as %s",
			e.previousMonthlyExpenses, in.MonthlyExpenses, e.monthlyDisabilityExpenses)
	}
	e.previousMonthlyExpenses = in.MonthlyExpenses
	e.hasRunBefore = true

	disability := e.monthlyDisabilityExpenses
	shortfall := disability.Sub(in.CurrentMonthlyCoverage)
	futureCoverage := disability
	uncovered := in.LengthOfDisability.Sub(in.LengthOfCurrentCoverage)

	inflated, err := inflatedExpenses(in, disability)
	if err != nil {
		e.Logger.Warnf("inflation-adjusted expenses left at zero: %v", err)
	}

	result := &domain.CalculationResult{
		Inputs:                      in,
		MonthlyDisabilityExpenses:   disability,
		MonthlyShortfall1:           shortfall,
		MonthlyShortfall2:           futureCoverage,
		InflationDisabilityExpenses: inflated,
		UncoveredMonths:             uncovered,
	}
	result.ShortMessage, result.LongMessage = e.messages(shortfall, uncovered)

	months := monthCount(in.LengthOfDisability)
	result.Expenses = make([]decimal.Decimal, months)
	result.Coverage = make([]decimal.Decimal, months)
	result.Categories = make([]int, months)
	if buildSchedule {
		result.Schedule = domain.NewReportSchedule(months)
	}

	places := e.params.DecimalPlaces
	for i := 0; i < months; i++ {
		result.Expenses[i] = disability
		if in.LengthOfCurrentCoverage.GreaterThan(decimal.NewFromInt(int64(i))) {
			result.Coverage[i] = in.CurrentMonthlyCoverage
		} else {
			result.Coverage[i] = decimal.Zero
		}
		result.Categories[i] = i + 1

		if buildSchedule {
			diff := result.Coverage[i].Sub(result.Expenses[i])
			result.Schedule.AddRow(domain.ScheduleRow{
				Month:      i + 1,
				Expenses:   result.Expenses[i],
				Coverage:   result.Coverage[i],
				Difference: diff,
				Cells:      format.ScheduleCells(i+1, result.Expenses[i], result.Coverage[i], places),
			})
		}
	}

	e.Logger.Debugf("calculated %d months: shortfall %s, inflated expenses %s",
		months, shortfall.StringFixed(2), inflated.StringFixed(2))

	e.result = result
	return result
}

// messages builds the short and long narrative. The long message keeps its
// MONTHLY_SHORTFALL and inflation placeholders for FormatReport to resolve.
func (e *Engine) messages(shortfall, uncovered decimal.Decimal) (string, string) {
	p := e.params
	coveredTerm := format.TermLabel(e.inputs.LengthOfCurrentCoverage)

	var short, long string
	if !shortfall.IsPositive() {
		short = p.MsgShort1
		long = sentence(p.MsgLong1, coveredTerm, p.MsgLong2)
	} else {
		short = sentence(p.MsgShort2, format.Currency(shortfall, 0), p.MsgShort3)
		long = sentence(p.MsgLong3, coveredTerm, p.MsgLong4)
	}

	if uncovered.IsPositive() {
		long += " " + sentence(p.MsgLong5, format.TermLabel(uncovered), p.MsgLong6)
	}
	long += " " + p.MsgLong7

	return short, long
}

// sentence joins lead, middle and tail with spaces; a single-character tail
// such as "." attaches directly.
func sentence(lead, middle, tail string) string {
	if utf8.RuneCountInString(tail) == 1 {
		return lead + " " + middle + tail
	}
	return lead + " " + middle + " " + tail
}

// inflatedExpenses compounds the disability expense over the disability
// length. Degenerate inputs that overflow return zero and an error.
func inflatedExpenses(in domain.CalculatorInputs, disability decimal.Decimal) (decimal.Decimal, error) {
	monthlyRate, err := finance.AnnualToMonthlyRate(in.AnnualInflation)
	if err != nil {
		return decimal.Zero, err
	}
	return finance.FutureValue(monthlyRate, in.LengthOfDisability, disability)
}

// monthCount rounds a month length half up; negative lengths give no months.
func monthCount(length decimal.Decimal) int {
	n := length.Add(half).Floor().IntPart()
	if n < 0 {
		return 0
	}
	return int(n)
}

// FormatReport resolves the report tokens in template, rendering any
// repeating-group marker as a plain-text schedule.
func (e *Engine) FormatReport(template string) string {
	return e.FormatReportWith(template, report.TextScheduleRenderer{})
}

// FormatReportWith resolves the report tokens in template using renderer for
// the repeating-group marker. Before the first Calculate only input and
// parameter tokens are resolved; result tokens are left in place.
func (e *Engine) FormatReportWith(template string, renderer report.ScheduleRenderer) string {
	r := e.result
	if r == nil {
		e.Logger.Warnf("report formatted before any calculation; result tokens left unresolved")
	}

	// The messages carry placeholders of their own, so they go in first.
	text := template
	if r != nil {
		text = report.Substitutions{}.
			Set(report.TokenLongMessage, r.LongMessage).
			Set(report.TokenShortMessage, r.ShortMessage).
			Apply(text)
	}

	return e.valueSubstitutions(r, renderer).Apply(text)
}

func (e *Engine) valueSubstitutions(r *domain.CalculationResult, renderer report.ScheduleRenderer) report.Substitutions {
	places := e.params.DecimalPlaces
	in := e.inputs
	disability := e.monthlyDisabilityExpenses
	if r != nil {
		in = r.Inputs
		disability = r.MonthlyDisabilityExpenses
	}

	subs := report.Substitutions{}.
		Set(report.TokenMonthlyExpenses, format.Currency(in.MonthlyExpenses, places)).
		Set(report.TokenMonthlyDisabilityExpenses, format.Currency(disability, places)).
		Set(report.TokenLengthOfDisability, format.Integer(in.LengthOfDisability)).
		Set(report.TokenCurrentMonthlyCoverage, format.Currency(in.CurrentMonthlyCoverage, places)).
		Set(report.TokenLengthOfCurrentCoverage, format.Integer(in.LengthOfCurrentCoverage)).
		Set(report.TokenAnnualInflation, format.Percent(in.AnnualInflation.Div(decimal.NewFromInt(100)), 1)).
		Set(report.TokenDefaultExpensePercent, format.Percent(e.params.ExpenseFraction(), 0)).
		Set(report.TokenReportTitle, e.params.ReportTitle)

	if r != nil {
		subs.Set(report.TokenMonthlyShortfall1, format.Currency(r.MonthlyShortfall1, places)).
			Set(report.TokenMonthlyShortfall2, format.Currency(r.MonthlyShortfall2, places)).
			Set(report.TokenInflationDisabilityExpenses, format.Currency(r.InflationDisabilityExpenses, places))
		if renderer != nil {
			subs.Set(report.TokenRepeatingGroup, renderer.RenderSchedule(r.Schedule))
		}
	}
	return subs
}
