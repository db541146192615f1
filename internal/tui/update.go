package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/disabilitycalc/internal/calculation"
	"github.com/rgehrsitz/disabilitycalc/internal/config"
	"github.com/rgehrsitz/disabilitycalc/internal/domain"
	"github.com/rgehrsitz/disabilitycalc/internal/format"
	"github.com/rgehrsitz/disabilitycalc/internal/output"
	"github.com/rgehrsitz/disabilitycalc/internal/report"
	"github.com/rgehrsitz/disabilitycalc/internal/tui/tuimsg"
)

var sliderFields = []tuimsg.InputField{
	tuimsg.FieldMonthlyExpenses,
	tuimsg.FieldMonthlyDisabilityExpenses,
	tuimsg.FieldLengthOfDisability,
	tuimsg.FieldCurrentMonthlyCoverage,
	tuimsg.FieldLengthOfCurrentCoverage,
	tuimsg.FieldAnnualInflation,
}

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.inputsModel.SetSize(msg.Width, msg.Height)
		m.scheduleModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		if msg.Scene == SceneSchedule && m.engine != nil {
			m.refreshSchedule()
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case StatusMsg:
		m.status = msg.Text
		return m, nil

	case ConfigLoadedMsg:
		m.loading = false
		m.config = msg.Config
		m.engine = calculation.NewEngine(msg.Input.Parameters)
		m.engine.SetInputs(msg.Input.Inputs)
		m.engine.SetMonthlyDisabilityExpenses(msg.Input.MonthlyDisabilityExpenses)

		p := msg.Input.Parameters
		m.inputsModel.SetLabels(p.MsgGraph1, p.MsgGraph2, p.MsgGraph3)
		m.scheduleModel.SetCaption(p.MsgGraph1 + " and " + p.MsgGraph2 + " by " + p.MsgGraph3)
		m.syncSliders()
		m.recalculate()
		return m, nil

	case tuimsg.InputChangedMsg:
		if m.engine == nil {
			return m, nil
		}
		m.applyInput(msg.Field, msg.Value)
		m.recalculate()
		return m, nil

	case tuimsg.ResetRequestedMsg:
		if m.engine == nil {
			return m, nil
		}
		m.engine.Reset()
		m.syncSliders()
		// Sliders clamp to their minimums; the engine follows what they show.
		for _, f := range sliderFields {
			if f != tuimsg.FieldMonthlyDisabilityExpenses {
				m.applyInput(f, m.inputsModel.Value(f))
			}
		}
		m.recalculate()
		m.status = "Inputs reset"
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		return m, navigate(SceneHelp)

	case key.Matches(msg, keys.Back):
		if m.currentScene != SceneInputs {
			back := m.previousScene
			if back == m.currentScene {
				back = SceneInputs
			}
			return m, navigate(back)
		}
		return m, nil

	case key.Matches(msg, keys.Inputs):
		if m.currentScene != SceneInputs {
			return m, navigate(SceneInputs)
		}
		return m, nil

	case key.Matches(msg, keys.Schedule):
		if m.currentScene != SceneSchedule {
			return m, navigate(SceneSchedule)
		}
		return m, nil

	case key.Matches(msg, keys.Save):
		return m, m.save()

	case key.Matches(msg, keys.Export):
		return m, m.export()
	}

	return m.updateCurrentScene(msg)
}

func navigate(scene Scene) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Scene: scene} }
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.currentScene {
	case SceneInputs:
		updated, cmd := m.inputsModel.Update(msg)
		m.inputsModel = updated
		return m, cmd
	case SceneSchedule:
		updated, cmd := m.scheduleModel.Update(msg)
		m.scheduleModel = updated
		return m, cmd
	}
	return m, nil
}

// applyInput copies one slider value into the engine.
func (m *Model) applyInput(field tuimsg.InputField, value decimal.Decimal) {
	if field == tuimsg.FieldMonthlyDisabilityExpenses {
		m.engine.SetMonthlyDisabilityExpenses(value)
		return
	}
	in := m.engine.Inputs()
	switch field {
	case tuimsg.FieldMonthlyExpenses:
		in.MonthlyExpenses = value
	case tuimsg.FieldLengthOfDisability:
		in.LengthOfDisability = value
	case tuimsg.FieldCurrentMonthlyCoverage:
		in.CurrentMonthlyCoverage = value
	case tuimsg.FieldLengthOfCurrentCoverage:
		in.LengthOfCurrentCoverage = value
	case tuimsg.FieldAnnualInflation:
		in.AnnualInflation = value
	}
	m.engine.SetInputs(in)
}

// syncSliders moves every slider to the engine's current values.
func (m *Model) syncSliders() {
	in := m.engine.Inputs()
	m.inputsModel.SetValue(tuimsg.FieldMonthlyExpenses, in.MonthlyExpenses)
	m.inputsModel.SetValue(tuimsg.FieldMonthlyDisabilityExpenses, m.engine.MonthlyDisabilityExpenses())
	m.inputsModel.SetValue(tuimsg.FieldLengthOfDisability, in.LengthOfDisability)
	m.inputsModel.SetValue(tuimsg.FieldCurrentMonthlyCoverage, in.CurrentMonthlyCoverage)
	m.inputsModel.SetValue(tuimsg.FieldLengthOfCurrentCoverage, in.LengthOfCurrentCoverage)
	m.inputsModel.SetValue(tuimsg.FieldAnnualInflation, in.AnnualInflation)
}

// recalculate runs the engine and refreshes the disability expense slider,
// which the engine rederives whenever monthly expenses change.
func (m *Model) recalculate() *domain.CalculationResult {
	result := m.engine.Calculate(false)
	m.inputsModel.SetValue(tuimsg.FieldMonthlyDisabilityExpenses, m.engine.MonthlyDisabilityExpenses())
	m.inputsModel.SetResult(result, m.engine.FormatReport(report.TokenLongMessage))
	return result
}

func (m *Model) refreshSchedule() {
	result := m.engine.Calculate(true)
	m.scheduleModel.SetSchedule(result.Schedule)
	m.inputsModel.SetResult(result, m.engine.FormatReport(report.TokenLongMessage))
}

// save writes the current inputs back to the input file.
func (m *Model) save() tea.Cmd {
	if m.engine == nil {
		return nil
	}
	mde := m.engine.MonthlyDisabilityExpenses()
	cfg := &domain.Configuration{
		Inputs: domain.InputsConfig{
			CalculatorInputs:          m.engine.Inputs(),
			MonthlyDisabilityExpenses: &mde,
		},
	}
	if m.config != nil {
		cfg.Parameters = m.config.Parameters
	}

	path := m.configPath
	if path == "" {
		path = defaultSavePath
	}
	if err := config.SaveConfiguration(cfg, path); err != nil {
		return func() tea.Msg { return ErrorMsg{Err: err} }
	}
	return func() tea.Msg { return StatusMsg{Text: "Inputs saved to " + path} }
}

// export writes the HTML report with the full schedule.
func (m *Model) export() tea.Cmd {
	if m.engine == nil {
		return nil
	}
	m.engine.Calculate(true)
	written, err := output.WriteFormatted(output.NewHTMLFormatter(""), m.engine, "")
	if err != nil {
		return func() tea.Msg { return ErrorMsg{Err: err} }
	}
	text := fmt.Sprintf("Report for %s written to %s", format.TermLabel(m.engine.Inputs().LengthOfDisability), written)
	return func() tea.Msg { return StatusMsg{Text: text} }
}
