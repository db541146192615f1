package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/disabilitycalc/internal/calculation"
	"github.com/rgehrsitz/disabilitycalc/internal/config"
	"github.com/rgehrsitz/disabilitycalc/internal/domain"
	"github.com/rgehrsitz/disabilitycalc/internal/tui/scenes"
)

// defaultSavePath is used by ctrl+s when the TUI started without an input file.
const defaultSavePath = "disability_input.yaml"

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Configuration and data
	configPath string
	config     *domain.Configuration

	// The engine is only touched from Update, never from a tea.Cmd.
	engine *calculation.Engine

	inputsModel   *scenes.InputsModel
	scheduleModel *scenes.ScheduleModel

	err     error
	loading bool
	status  string
}

// NewModel creates a new application model. An empty configPath starts from
// the example inputs.
func NewModel(configPath string) Model {
	return Model{
		currentScene:  SceneInputs,
		configPath:    configPath,
		inputsModel:   scenes.NewInputsModel(),
		scheduleModel: scenes.NewScheduleModel(),
		loading:       true,
		width:         80,
		height:        24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

// loadConfigCmd returns a command that reads and resolves the input file
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()

		var cfg *domain.Configuration
		if path == "" {
			cfg = parser.CreateExampleConfiguration()
		} else {
			var err error
			cfg, err = parser.LoadFromFile(path)
			if err != nil {
				return ErrorMsg{Err: err}
			}
		}

		input, err := parser.Resolve(cfg)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg, Input: input}
	}
}
