package scenes

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/disabilitycalc/internal/domain"
	"github.com/rgehrsitz/disabilitycalc/internal/tui/tuistyles"
)

// ScheduleModel shows the month-by-month schedule in a scrollable table.
type ScheduleModel struct {
	table   table.Model
	caption string
	rows    int
	width   int
	height  int
}

// NewScheduleModel creates an empty schedule scene.
func NewScheduleModel() *ScheduleModel {
	columns := make([]table.Column, len(domain.ScheduleHeader))
	for i, title := range domain.ScheduleHeader {
		columns[i] = table.Column{Title: title, Width: 20}
	}
	columns[0].Width = 10

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Header = tuistyles.TableHeaderStyle
	styles.Selected = tuistyles.TableHighlightStyle
	t.SetStyles(styles)

	return &ScheduleModel{table: t}
}

// SetSize updates the scene dimensions
func (m *ScheduleModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if h := height - 8; h > 3 {
		m.table.SetHeight(h)
	}
}

// SetCaption sets the line shown above the table.
func (m *ScheduleModel) SetCaption(caption string) {
	m.caption = caption
}

// SetSchedule replaces the table rows.
func (m *ScheduleModel) SetSchedule(schedule *domain.ReportSchedule) {
	rows := make([]table.Row, schedule.Len())
	if schedule != nil {
		for i, r := range schedule.Rows {
			rows[i] = table.Row{r.Cells[0], r.Cells[1], r.Cells[2], r.Cells[3]}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
	m.rows = len(rows)
}

// Rows returns the number of months shown.
func (m *ScheduleModel) Rows() int { return m.rows }

// Update handles messages for the schedule scene
func (m *ScheduleModel) Update(msg tea.Msg) (*ScheduleModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the schedule scene
func (m *ScheduleModel) View() string {
	if m.rows == 0 {
		return tuistyles.BorderStyle.Render(tuistyles.SubtitleStyle.Render("No months to show."))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		tuistyles.SubtitleStyle.Render(m.caption),
		tuistyles.BorderStyle.Render(m.table.View()),
	)
}
