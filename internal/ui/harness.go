package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for tests. It mirrors the
// Bubble Tea runtime: one View after construction and one View after every
// Update. Returned commands are recorded but not executed, so the poll tick
// chain never runs on its own; use Tick to simulate an elapsed poll interval.
type Harness struct {
	model   *Model
	frame   string
	lastCmd tea.Cmd
}

// NewHarness creates a harness for the provided model and renders the
// initial frame.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	if model != nil {
		h.frame = model.View()
	}
	return h
}

// Send routes a message through the model and renders the resulting frame.
// The command returned by Update is handed back to the caller.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	if h.model == nil {
		return nil
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.frame = h.model.View()
	h.lastCmd = cmd
	return cmd
}

// Press sends a sequence of key messages.
func (h *Harness) Press(keys ...tea.KeyMsg) {
	for _, k := range keys {
		h.Send(k)
	}
}

// Tick simulates a poll interval elapsing without input.
func (h *Harness) Tick() tea.Cmd {
	return h.Send(pollMsg{})
}

// View returns the most recent frame.
func (h *Harness) View() string {
	return h.frame
}

// LastCmd returns the command produced by the most recent message.
func (h *Harness) LastCmd() tea.Cmd {
	return h.lastCmd
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
