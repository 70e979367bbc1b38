package ui

import (
	uistate "github.com/atomicstack/tabdeck/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Prev key.Binding
	Next key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev tab")),
		Next: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next tab")),
		Quit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// inputFor maps a key press to its transition. Anything unbound is ignored.
func (k keyMap) inputFor(msg tea.KeyMsg) uistate.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return uistate.InputQuit
	case key.Matches(msg, k.Next):
		return uistate.InputNext
	case key.Matches(msg, k.Prev):
		return uistate.InputPrev
	default:
		return uistate.InputIgnore
	}
}
