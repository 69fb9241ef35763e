package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Light  key.Binding
	Dark   key.Binding
	System key.Binding
	Next   key.Binding
	Prev   key.Binding
	Right  key.Binding
	Left   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Light:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "light")),
		Dark:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark")),
		System: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "system")),
		Next:   key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("tab", "next component")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up", "k"), key.WithHelp("shift+tab", "previous component")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next variant")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous variant")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Light, k.Dark, k.System, k.Next, k.Right, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Light, k.Dark, k.System},
		{k.Next, k.Prev, k.Right, k.Left},
		{k.Help, k.Quit},
	}
}
