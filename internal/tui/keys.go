package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Digits    key.Binding
	Point     key.Binding
	Operators key.Binding
	Equals    key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Digits:    key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "digits")),
		Point:     key.NewBinding(key.WithKeys("."), key.WithHelp(".", "point")),
		Operators: key.NewBinding(key.WithKeys("+", "-", "*", "/"), key.WithHelp("+-*/", "operator")),
		Equals:    key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter/=", "equals")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Point, k.Operators},
		{k.Equals, k.Backspace, k.Clear},
		{k.Help, k.Quit},
	}
}
