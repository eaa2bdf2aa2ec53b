package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Switch, Add, Edit, Cancel, Delist, Help, Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "listings/prompts")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit prompt")),
		Cancel: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cancel prompt")),
		Delist: key.NewBinding(key.WithKeys("d", "-"), key.WithHelp("d/-", "remove listing")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save & quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delist, k.Switch, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Add, k.Edit, k.Cancel, k.Delist},
		{k.Help, k.Quit},
	}
}

// editor bindings, active while a prompt is open
type editKeyMap struct {
	Confirm, Next, Close key.Binding
}

func defaultEditKeys() editKeyMap {
	return editKeyMap{
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add to list")),
		Next:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "name/price")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "keep as prompt")),
	}
}

func (k editKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Confirm, k.Next, k.Close} }

func (k editKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
