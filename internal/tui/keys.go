package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the bindings handled by the shopping-list model itself.
// Navigation, filtering and help stay with bubbles/list.
type keyMap struct {
	Quit       key.Binding
	SwitchList key.Binding
	Add        key.Binding
	AddPhoto   key.Binding
	Move       key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Clear      key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	ConfirmYes key.Binding
	ConfirmNo  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		SwitchList: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch list"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		AddPhoto: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "add photo"),
		),
		Move: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("space", "bought/unbought"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear bought"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ConfirmYes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "clear"),
		),
		ConfirmNo: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "keep"),
		),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Add, k.AddPhoto, k.Move, k.Edit, k.Delete, k.Clear, k.SwitchList}
}
