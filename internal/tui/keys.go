package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding
	Hit   key.Binding
	Retry key.Binding
	Back  key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "less")),
	Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "more")),
	Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Hit:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "stop")),
	Retry: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
	Back:  key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	Quit:  key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
}

// pageKeys adapts a set of bindings to help.KeyMap.
type pageKeys []key.Binding

func (p pageKeys) ShortHelp() []key.Binding {
	return p
}

func (p pageKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{p}
}
