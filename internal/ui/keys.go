package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Down     key.Binding
	Up       key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Menu     key.Binding
	Close    key.Binding
	Select   key.Binding
	Home     key.Binding
	Jump     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "scroll")),
		Up:       key.NewBinding(key.WithKeys("k", "up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("space", "page")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b")),
		Top:      key.NewBinding(key.WithKeys("g", "home")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("g/G", "top/bottom")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
		Home:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		Jump:     key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "sections")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) shortHelp(mobile, overlay bool) []key.Binding {
	if overlay {
		return []key.Binding{k.Down, k.Select, k.Close, k.Quit}
	}
	b := []key.Binding{k.Down, k.PageDown, k.Bottom, k.Jump, k.Home}
	if mobile {
		b = append(b, k.Menu)
	}
	return append(b, k.Quit)
}

func jumpIndex(msg tea.KeyMsg) int {
	switch msg.String() {
	case "1":
		return 0
	case "2":
		return 1
	case "3":
		return 2
	}
	return -1
}

func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = helpStyle.Bold(true)
	h.Styles.ShortDesc = helpStyle
	h.Styles.ShortSeparator = helpStyle
	return h
}
