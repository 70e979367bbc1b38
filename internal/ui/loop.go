package ui

import (
	"time"

	"github.com/atomicstack/tabdeck/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// pollMsg marks the end of a bounded input wait with no key press.
type pollMsg struct {
	at time.Time
}

func (m *Model) pollCmd() tea.Cmd {
	return tea.Tick(m.poll, func(t time.Time) tea.Msg {
		return pollMsg{at: t}
	})
}

func (m *Model) handlePollMsg(tea.Msg) tea.Cmd {
	if m.frameErr != nil {
		if err := m.frameErr(); err != nil {
			m.err = err
			events.Loop.Error(err)
			return tea.Quit
		}
	}
	return m.pollCmd()
}
