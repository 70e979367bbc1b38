package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/tabdeck/internal/tabs"
	tea "github.com/charmbracelet/bubbletea"
)

func keyRight() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRight} }

func keyLeft() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyLeft} }

func keyRune(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(Options{})
	if m.Current() != 0 {
		t.Fatalf("expected initial tab 0, got %d", m.Current())
	}
	if !m.Running() {
		t.Fatalf("expected model to start running")
	}
	if m.tabs.Len() != 3 {
		t.Fatalf("expected default tab set of 3, got %d", m.tabs.Len())
	}
	if m.poll != DefaultPollInterval {
		t.Fatalf("expected default poll interval, got %v", m.poll)
	}
	if w, h := m.Size(); w != defaultWidth || h != defaultHeight {
		t.Fatalf("expected default size %dx%d, got %dx%d", defaultWidth, defaultHeight, w, h)
	}
}

func TestNewModelClampsInitialTab(t *testing.T) {
	m := NewModel(Options{InitialTab: 9})
	if m.Current() != 2 {
		t.Fatalf("expected initial tab clamped to 2, got %d", m.Current())
	}
}

func TestRightThreeTimesWrapsToFirstTab(t *testing.T) {
	h := NewHarness(NewModel(Options{}))
	h.Press(keyRight(), keyRight(), keyRight())
	if got := h.Model().Current(); got != 0 {
		t.Fatalf("expected current 0 after full wrap, got %d", got)
	}
}

func TestLeftFromFirstTabWrapsToLast(t *testing.T) {
	h := NewHarness(NewModel(Options{}))
	h.Press(keyLeft())
	if got := h.Model().Current(); got != 2 {
		t.Fatalf("expected current 2, got %d", got)
	}
}

func TestUnrecognisedKeyIsIgnored(t *testing.T) {
	h := NewHarness(NewModel(Options{InitialTab: 1}))
	h.Press(keyRune('a'))
	if got := h.Model().Current(); got != 1 {
		t.Fatalf("expected 'a' to be ignored, got current %d", got)
	}
	h.Press(keyRight())
	if got := h.Model().Current(); got != 2 {
		t.Fatalf("expected current 2 after advance, got %d", got)
	}
}

func TestQuitStopsLoopAndIgnoresLaterInput(t *testing.T) {
	h := NewHarness(NewModel(Options{InitialTab: 1}))
	cmd := h.Send(keyRune('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if h.Model().Running() {
		t.Fatalf("expected running=false after quit")
	}

	h.Press(keyRight(), keyLeft(), keyRune('q'))
	if h.LastCmd() != nil {
		t.Fatalf("expected no command after quit")
	}
	if got := h.Model().Current(); got != 1 {
		t.Fatalf("expected current unchanged after quit, got %d", got)
	}
	if h.Tick() != nil {
		t.Fatalf("expected poll chain to stop after quit")
	}
}

func TestOtherEventKindsAreIgnored(t *testing.T) {
	h := NewHarness(NewModel(Options{}))
	h.Send(tea.MouseMsg{X: 3, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	h.Send(tea.FocusMsg{})
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if got := h.Model().Current(); got != 0 {
		t.Fatalf("expected current 0, got %d", got)
	}
	if !h.Model().Running() {
		t.Fatalf("expected loop to keep running")
	}
}

func TestRenderOncePerIteration(t *testing.T) {
	h := NewHarness(NewModel(Options{}))
	msgs := []tea.Msg{
		keyRight(),
		pollMsg{},
		keyRune('x'),
		pollMsg{},
		tea.WindowSizeMsg{Width: 60, Height: 20},
		keyLeft(),
		pollMsg{},
	}
	for i, msg := range msgs {
		h.Send(msg)
		m := h.Model()
		if m.Iterations() != i+1 {
			t.Fatalf("expected %d iterations, got %d", i+1, m.Iterations())
		}
		if m.Renders() != m.Iterations()+1 {
			t.Fatalf("expected one render per iteration plus the initial frame, got %d renders for %d iterations", m.Renders(), m.Iterations())
		}
	}
}

func TestInitSchedulesPoll(t *testing.T) {
	m := NewModel(Options{PollInterval: time.Millisecond})
	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("expected poll command from Init")
	}
	if _, ok := cmd().(pollMsg); !ok {
		t.Fatalf("expected pollMsg from Init command")
	}
}

func TestPollReschedulesItself(t *testing.T) {
	h := NewHarness(NewModel(Options{PollInterval: time.Millisecond}))
	cmd := h.Tick()
	if cmd == nil {
		t.Fatalf("expected next poll to be scheduled")
	}
	if _, ok := cmd().(pollMsg); !ok {
		t.Fatalf("expected pollMsg from rescheduled command")
	}
	if got := h.Model().Current(); got != 0 {
		t.Fatalf("expected poll to leave selection unchanged, got %d", got)
	}
}

func TestFrameErrorStopsLoop(t *testing.T) {
	writeErr := errors.New("write /dev/tty: input/output error")
	var pending error
	h := NewHarness(NewModel(Options{FrameErr: func() error { return pending }}))

	if cmd := h.Tick(); cmd == nil {
		t.Fatalf("expected loop to continue without a frame error")
	}
	pending = writeErr
	cmd := h.Tick()
	if cmd == nil {
		t.Fatalf("expected quit command on frame error")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg on frame error")
	}
	if !errors.Is(h.Model().Err(), writeErr) {
		t.Fatalf("expected Err to report the write failure, got %v", h.Model().Err())
	}
	h.Press(keyRight())
	if got := h.Model().Current(); got != 0 {
		t.Fatalf("expected input ignored after failure, got current %d", got)
	}
}

func TestWindowSizeUpdatesFrame(t *testing.T) {
	h := NewHarness(NewModel(Options{}))
	h.Send(tea.WindowSizeMsg{Width: 50, Height: 12})
	if w, ht := h.Model().Size(); w != 50 || ht != 12 {
		t.Fatalf("expected 50x12, got %dx%d", w, ht)
	}
	if h.Model().content.Width != 48 || h.Model().content.Height != 7 {
		t.Fatalf("expected content viewport 48x7, got %dx%d", h.Model().content.Width, h.Model().content.Height)
	}
}

func TestCustomTabSet(t *testing.T) {
	set, err := tabs.New(tabs.Tab{Label: "Only", Content: "solo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := NewHarness(NewModel(Options{Tabs: set}))
	h.Press(keyRight(), keyLeft(), keyRight())
	if got := h.Model().Current(); got != 0 {
		t.Fatalf("expected single tab to stay selected, got %d", got)
	}
}
