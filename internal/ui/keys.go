package ui

import "github.com/charmbracelet/bubbles/key"

type menuKeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Toggle    key.Binding
	All       key.Binding
	None      key.Binding
	Calculate key.Binding
	Quit      key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Toggle, k.Calculate, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Toggle, k.All, k.None},
		{k.Calculate, k.Quit},
	}
}

type resultKeyMap struct {
	NextFormat key.Binding
	PrevFormat key.Binding
	Copy       key.Binding
	Scroll     key.Binding
	Close      key.Binding
	Quit       key.Binding
}

func (k resultKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFormat, k.Copy, k.Scroll, k.Close, k.Quit}
}

func (k resultKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFormat, k.PrevFormat},
		{k.Copy, k.Scroll},
		{k.Close, k.Quit},
	}
}

func newMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "toggle weekday"),
		),
		All: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all weekdays"),
		),
		None: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "clear weekdays"),
		),
		Calculate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "find dates"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func newResultKeyMap() resultKeyMap {
	return resultKeyMap{
		NextFormat: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next format"),
		),
		PrevFormat: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "previous format"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "k", "j", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q", "backspace"),
			key.WithHelp("esc/q", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
