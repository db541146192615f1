package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the global key bindings.
type keyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Back     key.Binding
	Inputs   key.Binding
	Schedule key.Binding
	Save     key.Binding
	Export   key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Inputs:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inputs")),
	Schedule: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "schedule")),
	Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save inputs")),
	Export:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export html report")),
}

func (k keyMap) statusBindings() []key.Binding {
	return []key.Binding{k.Inputs, k.Schedule, k.Export, k.Save, k.Help, k.Quit}
}

func (k keyMap) all() []key.Binding {
	return []key.Binding{k.Inputs, k.Schedule, k.Help, k.Back, k.Save, k.Export, k.Quit}
}
