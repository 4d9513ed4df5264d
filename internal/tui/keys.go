package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Delete   key.Binding
	Add      key.Binding
	Clear    key.Binding
	Copy     key.Binding
	Settings key.Binding
	Minimize key.Binding
	Quit     key.Binding

	Lighter    key.Binding
	Darker     key.Binding
	Background key.Binding
	TextColor  key.Binding
	Close      key.Binding

	Submit key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done")),
		Delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear done")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Minimize: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "hide")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Lighter:    key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→", "more opaque")),
		Darker:     key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←", "less opaque")),
		Background: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "background")),
		TextColor:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "text color")),
		Close:      key.NewBinding(key.WithKeys("esc", "s"), key.WithHelp("esc", "close")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// bindings adapts a fixed list to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func (k keyMap) helpFor(m mode) bindings {
	switch m {
	case modeAdd, modeBackground, modeTextColor:
		return bindings{k.Submit, k.Cancel}
	case modeSettings:
		return bindings{k.Darker, k.Lighter, k.Background, k.TextColor, k.Close}
	default:
		return bindings{k.Add, k.Toggle, k.Delete, k.Clear, k.Copy, k.Settings, k.Minimize, k.Quit}
	}
}
