package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the preview key bindings.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Select   key.Binding
	Back     key.Binding
	Collapse key.Binding
	Menu     key.Binding
	Platform key.Binding
	Open     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("tab", "right", "down", "l", "j"), key.WithHelp("tab/→", "next item")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "left", "up", "h", "k"), key.WithHelp("shift+tab/←", "previous item")),
		Select:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace", "b"), key.WithHelp("esc", "back")),
		Collapse: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collapse sidebar")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "toggle menu")),
		Platform: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "switch platform")),
		Open:     key.NewBinding(key.WithKeys("/", "g"), key.WithHelp("/", "open url")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Select, k.Back, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Select, k.Back},
		{k.Collapse, k.Menu, k.Platform, k.Open},
		{k.Help, k.Quit},
	}
}
