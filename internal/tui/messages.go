package tui

import (
	"github.com/rgehrsitz/disabilitycalc/internal/config"
	"github.com/rgehrsitz/disabilitycalc/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneInputs Scene = iota
	SceneSchedule
	SceneHelp
)

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneInputs:
		return "Inputs"
	case SceneSchedule:
		return "Schedule"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ConfigLoadedMsg signals the input file has been read and resolved
type ConfigLoadedMsg struct {
	Config *domain.Configuration
	Input  *config.Input
}

// StatusMsg shows a transient note in the status bar
type StatusMsg struct {
	Text string
}
