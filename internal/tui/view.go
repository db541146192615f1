package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/disabilitycalc/internal/domain"
	"github.com/rgehrsitz/disabilitycalc/internal/tui/scenes"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderApp(BorderStyle.Render("Loading inputs..."))
	}
	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(
			fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error()),
		))
	}

	var content string
	switch m.currentScene {
	case SceneInputs:
		content = m.inputsModel.View()
	case SceneSchedule:
		content = m.scheduleModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}
	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	contentHeight := m.height - 4
	if contentHeight < 0 {
		contentHeight = 0
	}
	container := lipgloss.NewStyle().Height(contentHeight).Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		container,
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the report title and the current scene
func (m Model) renderTitleBar() string {
	title := domain.DefaultParameters().ReportTitle
	if m.engine != nil {
		title = m.engine.Parameters().ReportTitle
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render(title),
		SubtitleStyle.Render(m.currentScene.String()),
	)
}

// renderStatusBar renders the keyboard shortcuts and the latest status note
func (m Model) renderStatusBar() string {
	shortcuts := make([]string, 0, len(keys.statusBindings()))
	for _, b := range keys.statusBindings() {
		shortcuts = append(shortcuts, formatShortcut(b))
	}
	statusText := strings.Join(shortcuts, " • ")

	if m.status != "" {
		note := InfoStyle.Render(m.status)
		gap := m.width - lipgloss.Width(statusText) - lipgloss.Width(note) - 4
		if gap < 1 {
			gap = 1
		}
		statusText += strings.Repeat(" ", gap) + note
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

func formatShortcut(b key.Binding) string {
	return StatusKeyStyle.Render(b.Help().Key) + " " + b.Help().Desc
}

// renderHelp lists every key binding
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString("GLOBAL\n")
	for _, binding := range keys.all() {
		writeHelpLine(&b, binding)
	}
	b.WriteString("\nINPUTS\n")
	for _, binding := range scenes.InputBindings() {
		writeHelpLine(&b, binding)
	}
	b.WriteString("\nSCHEDULE\n")
	b.WriteString("  ↑/↓ pgup/pgdn  scroll months\n")
	b.WriteString("\nChanging monthly expenses resets expenses while disabled to the default share.")
	return BorderStyle.Render(b.String())
}

func writeHelpLine(b *strings.Builder, binding key.Binding) {
	fmt.Fprintf(b, "  %-14s %s\n", HelpKeyStyle.Render(binding.Help().Key), HelpDescStyle.Render(binding.Help().Desc))
}
