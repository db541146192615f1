package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/disabilitycalc/internal/domain"
	"github.com/rgehrsitz/disabilitycalc/internal/format"
	"github.com/rgehrsitz/disabilitycalc/internal/tui/components"
	"github.com/rgehrsitz/disabilitycalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/disabilitycalc/internal/tui/tuistyles"
)

var (
	keyUp        = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous input"))
	keyDown      = key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "next input"))
	keyLeft      = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease"))
	keyRight     = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase"))
	keyPageLeft  = key.NewBinding(key.WithKeys("shift+left", "pgdown"), key.WithHelp("shift+←", "decrease ×10"))
	keyPageRight = key.NewBinding(key.WithKeys("shift+right", "pgup"), key.WithHelp("shift+→", "increase ×10"))
	keyReset     = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset inputs"))
)

// InputBindings lists the inputs scene key bindings for the help screen.
func InputBindings() []key.Binding {
	return []key.Binding{keyUp, keyDown, keyLeft, keyRight, keyPageLeft, keyPageRight, keyReset}
}

// inputSlider pairs a slider with the input it edits.
type inputSlider struct {
	field  tuimsg.InputField
	slider *components.ParameterSlider
}

// InputsModel is the scene with one slider per calculator input and the
// live result beside them.
type InputsModel struct {
	sliders []inputSlider
	focused int

	result      *domain.CalculationResult
	longMessage string
	labels      [3]string

	width  int
	height int
}

func dollars(v float64) string  { return format.Currency(decimal.NewFromFloat(v), 0) }
func months(v float64) string   { return format.TermLabel(decimal.NewFromFloat(v)) }
func percent1(v float64) string { return decimal.NewFromFloat(v).StringFixed(1) + "%" }

// NewInputsModel creates the inputs scene with the calculator's slider ranges.
func NewInputsModel() *InputsModel {
	m := &InputsModel{
		sliders: []inputSlider{
			{tuimsg.FieldMonthlyExpenses, components.NewParameterSlider("Monthly expenses", 0, 0, 100000, 100).
				WithFormatter(dollars).
				WithDescription("What you spend each month today")},
			{tuimsg.FieldMonthlyDisabilityExpenses, components.NewParameterSlider("Monthly expenses while disabled", 0, 0, 100000, 100).
				WithFormatter(dollars).
				WithDescription("Resets to the default share of expenses when monthly expenses change")},
			{tuimsg.FieldLengthOfDisability, components.NewParameterSlider("Length of disability", 1, 1, 120, 1).
				WithFormatter(months).
				WithDescription("How long the disability is expected to last")},
			{tuimsg.FieldCurrentMonthlyCoverage, components.NewParameterSlider("Current monthly coverage", 0, 0, 100000, 100).
				WithFormatter(dollars).
				WithDescription("Disability benefits you already have")},
			{tuimsg.FieldLengthOfCurrentCoverage, components.NewParameterSlider("Length of current coverage", 0, 0, 240, 1).
				WithFormatter(months).
				WithDescription("How long your current benefits pay")},
			{tuimsg.FieldAnnualInflation, components.NewParameterSlider("Annual inflation", 0, 0, 20, 0.1).
				WithPlaces(1).
				WithFormatter(percent1).
				WithDescription("Expected yearly rise in expenses")},
		},
	}
	for _, s := range m.sliders {
		s.slider.WithWidth(30)
	}
	m.sliders[0].slider.SetFocused(true)
	return m
}

// SetSize updates the scene dimensions
func (m *InputsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetLabels sets the names of the expense series, the coverage series and the month axis.
func (m *InputsModel) SetLabels(expenses, coverage, category string) {
	m.labels = [3]string{expenses, coverage, category}
}

// SetValue moves a slider without emitting a change.
func (m *InputsModel) SetValue(field tuimsg.InputField, value decimal.Decimal) {
	for _, s := range m.sliders {
		if s.field == field {
			s.slider.SetDecimal(value)
		}
	}
}

// Value returns a slider's current value.
func (m *InputsModel) Value(field tuimsg.InputField) decimal.Decimal {
	for _, s := range m.sliders {
		if s.field == field {
			return s.slider.Decimal()
		}
	}
	return decimal.Zero
}

// Focused returns the input the focused slider edits.
func (m *InputsModel) Focused() tuimsg.InputField {
	return m.sliders[m.focused].field
}

// SetResult shows a calculation result; longMessage is the resolved narrative.
func (m *InputsModel) SetResult(result *domain.CalculationResult, longMessage string) {
	m.result = result
	m.longMessage = longMessage
}

// Update handles messages for the inputs scene
func (m *InputsModel) Update(msg tea.Msg) (*InputsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keyUp):
		m.moveFocus(-1)
	case key.Matches(keyMsg, keyDown):
		m.moveFocus(1)
	case key.Matches(keyMsg, keyLeft):
		return m, m.adjust(-1)
	case key.Matches(keyMsg, keyRight):
		return m, m.adjust(1)
	case key.Matches(keyMsg, keyPageLeft):
		return m, m.adjust(-10)
	case key.Matches(keyMsg, keyPageRight):
		return m, m.adjust(10)
	case key.Matches(keyMsg, keyReset):
		return m, func() tea.Msg { return tuimsg.ResetRequestedMsg{} }
	}
	return m, nil
}

func (m *InputsModel) moveFocus(delta int) {
	next := (m.focused + delta + len(m.sliders)) % len(m.sliders)
	m.sliders[m.focused].slider.SetFocused(false)
	m.focused = next
	m.sliders[m.focused].slider.SetFocused(true)
}

// adjust moves the focused slider by steps and reports the new value.
func (m *InputsModel) adjust(steps int) tea.Cmd {
	s := m.sliders[m.focused]
	before := s.slider.Value
	if steps > 0 {
		s.slider.Increment(steps)
	} else {
		s.slider.Decrement(-steps)
	}
	if s.slider.Value == before {
		return nil
	}
	changed := tuimsg.InputChangedMsg{Field: s.field, Value: s.slider.Decimal()}
	return func() tea.Msg { return changed }
}

// View renders the inputs scene
func (m *InputsModel) View() string {
	rendered := make([]string, len(m.sliders))
	for i, s := range m.sliders {
		rendered[i] = s.slider.Render()
	}
	left := tuistyles.BorderStyle.Render(strings.Join(rendered, "\n\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", m.renderResult())
}

func (m *InputsModel) renderResult() string {
	if m.result == nil {
		return tuistyles.BorderStyle.Render(tuistyles.SubtitleStyle.Render("Adjust an input to calculate."))
	}
	r := m.result

	cards := []*components.MetricCard{
		components.NewMetricCard("Monthly shortfall", tuistyles.FormatCurrency(decimal.Max(r.MonthlyShortfall1, decimal.Zero))).
			WithStatus(!r.HasShortfall(), shortfallNote(r)),
		components.NewMetricCard("Coverage after benefits end", tuistyles.FormatCurrency(r.MonthlyShortfall2)).
			WithDescription("per month"),
		components.NewMetricCard("Expenses after inflation", tuistyles.FormatCurrency(r.InflationDisabilityExpenses)).
			WithDescription("at month " + format.Integer(r.Inputs.LengthOfDisability)),
	}

	width := m.width - 50
	if width < 40 {
		width = 40
	}
	messageStyle := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(components.MetricGrid(cards, 3))
	b.WriteString("\n\n")
	b.WriteString(tuistyles.ParameterLabelStyle.Render(r.ShortMessage))
	b.WriteString("\n\n")
	b.WriteString(messageStyle.Render(m.longMessage))
	b.WriteString("\n\n")
	b.WriteString(tuistyles.SubtitleStyle.Render(m.seriesSummary()))
	return b.String()
}

func shortfallNote(r *domain.CalculationResult) string {
	if r.HasShortfall() {
		return "uncovered each month"
	}
	return "fully covered"
}

// seriesSummary describes the chart series in one line.
func (m *InputsModel) seriesSummary() string {
	r := m.result
	covered := 0
	for _, c := range r.Coverage {
		if c.IsPositive() {
			covered++
		}
	}
	return m.labels[0] + " vs " + m.labels[1] + " by " + m.labels[2] + ": " +
		format.Integer(decimal.NewFromInt(int64(covered))) + " of " +
		format.TermLabel(decimal.NewFromInt(int64(r.MonthCount()))) + " with benefits"
}
